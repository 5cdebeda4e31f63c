package render

import (
	"fmt"
	"strconv"
	"strings"

	"suanpan/internal/partition"
)

// DiagramOptions controls Young-diagram rendering.
type DiagramOptions struct {
	Notation   Notation
	X0, Y0     float64 // origin shift
	LabelParts bool    // annotate each part with its size
}

// Diagram returns TikZ commands drawing the Young diagram outline of p.
func Diagram(p partition.Partition, opts DiagramOptions) (string, error) {
	if !opts.Notation.valid() {
		return "", fmt.Errorf("%q: %w", opts.Notation, ErrUnknownNotation)
	}
	if len(p) == 0 {
		return "", nil
	}
	var out strings.Builder
	x0, y0 := opts.X0, opts.Y0
	conj := p.Conjugate()
	switch opts.Notation {
	case English:
		out.WriteString(Line(x0, y0, x0+float64(p[0]), y0, ""))
		for i, part := range p {
			row := float64(i) + 1 - y0
			out.WriteString(Line(x0, -row, x0+float64(part), -row, ""))
			if opts.LabelParts {
				out.WriteString(Node(x0-0.5, 0.5-row, strconv.Itoa(part), ""))
			}
		}
		out.WriteString(Line(x0, y0, x0, y0-float64(len(p)), ""))
		for j, col := range conj {
			x := x0 + float64(j) + 1
			out.WriteString(Line(x, y0, x, y0-float64(col), ""))
		}
	case French:
		out.WriteString(Line(x0, y0, x0+float64(p[0]), y0, ""))
		for i, part := range p {
			row := y0 + float64(i) + 1
			out.WriteString(Line(x0, row, x0+float64(part), row, ""))
			if opts.LabelParts {
				out.WriteString(Node(x0-0.5, row-0.5, strconv.Itoa(part), ""))
			}
		}
		out.WriteString(Line(x0, y0, x0, y0+float64(len(p)), ""))
		for j, col := range conj {
			x := x0 + float64(j) + 1
			out.WriteString(Line(x, y0, x, y0+float64(col), ""))
		}
	case Cartesian:
		out.WriteString(Line(x0, y0, x0, y0+float64(p[0]), ""))
		for i, part := range p {
			x := x0 + float64(i) + 1
			out.WriteString(Line(x, y0, x, y0+float64(part), ""))
			if opts.LabelParts {
				out.WriteString(Node(x-0.5, y0-0.5, strconv.Itoa(part), ""))
			}
		}
		out.WriteString(Line(x0, y0, x0+float64(len(p)), y0, ""))
		for j, col := range conj {
			y := y0 + float64(j) + 1
			out.WriteString(Line(x0, y, x0+float64(col), y, ""))
		}
	case Russian:
		out.WriteString(Line(x0, y0, x0-float64(p[0]), y0+float64(p[0]), ""))
		for i, part := range p {
			d := float64(i) + 1
			out.WriteString(Line(x0+d, y0+d, x0+d-float64(part), y0+d+float64(part), ""))
			if opts.LabelParts {
				out.WriteString(Node(x0+d, y0-1+d, strconv.Itoa(part), ""))
			}
		}
		out.WriteString(Line(x0, y0, x0+float64(len(p)), y0+float64(len(p)), ""))
		for j, col := range conj {
			d := float64(j) + 1
			out.WriteString(Line(x0-d, y0+d, x0-d+float64(col), y0+d+float64(col), ""))
		}
	}
	return out.String(), nil
}

// LabelCell returns a TikZ node placing text at cell (i, j) of a Young diagram.
// Indices are 0-based.
func LabelCell(i, j int, text string, notation Notation) (string, error) {
	x, y := float64(j), float64(i)
	switch notation {
	case English:
		return Node(x+0.5, -y-0.5, text, ""), nil
	case French:
		return Node(x+0.5, y+0.5, text, ""), nil
	case Cartesian:
		return Node(y+0.5, x+0.5, text, ""), nil
	case Russian:
		return Node(y-x, y+x+1, text, ""), nil
	}
	return "", fmt.Errorf("%q: %w", notation, ErrUnknownNotation)
}

// LabelDiagram labels every cell of p's diagram with label(i, j).
func LabelDiagram(p partition.Partition, label func(i, j int) string, notation Notation) (string, error) {
	if !notation.valid() {
		return "", fmt.Errorf("%q: %w", notation, ErrUnknownNotation)
	}
	var out strings.Builder
	for _, c := range p.Cells() {
		node, err := LabelCell(c.Row, c.Col, label(c.Row, c.Col), notation)
		if err != nil {
			return "", err
		}
		out.WriteString(node)
	}
	return out.String(), nil
}

// Ferrers returns TikZ commands drawing the Ferrers dot diagram of p. The
// Russian convention has no dot form and is rejected.
func Ferrers(p partition.Partition, notation Notation) (string, error) {
	var out strings.Builder
	for _, c := range p.Cells() {
		switch notation {
		case English:
			fmt.Fprintf(&out, "\\filldraw (%d,%d) circle (.2);", c.Col, -c.Row)
		case French:
			fmt.Fprintf(&out, "\\filldraw (%d,%d) circle (.2);", c.Col, c.Row)
		case Cartesian:
			fmt.Fprintf(&out, "\\filldraw (%d,%d) circle (.2);", c.Row, c.Col)
		default:
			return "", fmt.Errorf("%q: %w", notation, ErrUnknownNotation)
		}
	}
	return out.String(), nil
}

// Boundary returns TikZ commands drawing a coloured, labelled boundary path from
// a codec sequence (1:east, 0:north). East edges use eastCol, north edges
// northCol. Part size increases along the path, which reads right to left in the
// Russian and Cartesian conventions.
func Boundary(seq []int, eastCol, northCol string, notation Notation) (string, error) {
	var edges, labels strings.Builder
	norths := 0
	for _, code := range seq {
		if code == 0 {
			norths++
		}
	}

	emit := func(x1, y1, x2, y2 float64, col string, code int, anchor string) {
		edges.WriteString(Line(x1, y1, x2, y2, fmt.Sprintf("[%s, ->]", col)))
		labels.WriteString(Node(x1, y1, strconv.Itoa(code), fmt.Sprintf("[%s]", anchor)))
	}

	var x, y float64
	switch notation {
	case English:
		x, y = 0, float64(-norths)
		for _, code := range seq {
			if code == 0 {
				emit(x, y, x, y+1, northCol, code, "right")
				y++
			} else {
				emit(x, y, x+1, y, eastCol, code, "below right")
				x++
			}
		}
	case French:
		x, y = 0, float64(norths)
		for _, code := range seq {
			if code == 0 {
				emit(x, y, x, y-1, northCol, code, "right")
				y--
			} else {
				emit(x, y, x+1, y, eastCol, code, "above right")
				x++
			}
		}
	case Cartesian:
		x, y = float64(norths), 0
		for _, code := range seq {
			if code == 0 {
				emit(x, y, x-1, y, northCol, code, "above")
				x--
			} else {
				emit(x, y, x, y+1, eastCol, code, "above right")
				y++
			}
		}
	case Russian:
		// Both step kinds move left: the path reads right to left here.
		x, y = float64(norths), float64(norths)
		for _, code := range seq {
			if code == 0 {
				emit(x, y, x-1, y-1, northCol, code, "above left")
				x--
				y--
			} else {
				emit(x, y, x-1, y+1, eastCol, code, "above")
				x--
				y++
			}
		}
	default:
		return "", fmt.Errorf("%q: %w", notation, ErrUnknownNotation)
	}
	return edges.String() + labels.String(), nil
}
