package render

import (
	"errors"
	"fmt"
	"strconv"
)

// Notation selects the drawing convention for diagrams.
type Notation string

const (
	English   Notation = "English"
	French    Notation = "French"
	Russian   Notation = "Russian"
	Cartesian Notation = "Cartesian"
)

// ErrUnknownNotation is returned when a notation is not one of the four
// supported conventions, or a renderer does not support it.
var ErrUnknownNotation = errors.New("unknown drawing notation")

func (n Notation) valid() bool {
	switch n {
	case English, French, Russian, Cartesian:
		return true
	}
	return false
}

// num renders a coordinate without trailing zeros: 3 not 3.0, but 0.5 stays 0.5.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Line returns a TikZ command drawing a line from (x1,y1) to (x2,y2). A
// degenerate zero-length line renders as the empty string. The optional
// modifier sets the draw style, e.g. "[blue, ->]".
func Line(x1, y1, x2, y2 float64, modifier string) string {
	if x1 == x2 && y1 == y2 {
		return ""
	}
	return fmt.Sprintf("\\draw%s (%s,%s) -- (%s,%s);", modifier, num(x1), num(y1), num(x2), num(y2))
}

// Node returns a TikZ command placing a text node at (x,y). Empty text renders
// as the empty string.
func Node(x, y float64, text, modifier string) string {
	if text == "" {
		return ""
	}
	return fmt.Sprintf("\\draw (%s, %s) %s node{%s};", num(x), num(y), modifier, text)
}

// Document wraps TikZ commands into a standalone .tex document.
func Document(body string) string {
	return "\\documentclass[tikz]{standalone}\n" +
		"\\begin{document}\n" +
		"\\begin{tikzpicture}\n" +
		body + "\n" +
		"\\end{tikzpicture}\n" +
		"\\end{document}\n"
}
