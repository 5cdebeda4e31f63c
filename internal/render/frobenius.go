package render

import (
	"fmt"
	"strconv"
	"strings"
)

// Frobenius returns TikZ commands drawing a diagram that relates Frobenius
// coordinates to a Young diagram: the hook of each diagonal cell is outlined,
// with the arm and leg lengths as optional labels. arms and legs must have the
// same length; empty coordinates render as the empty string.
func Frobenius(arms, legs []int, opts DiagramOptions) (string, error) {
	if !opts.Notation.valid() {
		return "", fmt.Errorf("%q: %w", opts.Notation, ErrUnknownNotation)
	}
	if len(arms) != len(legs) {
		return "", fmt.Errorf("%d arms, %d legs: coordinate lists must match", len(arms), len(legs))
	}
	if len(arms) == 0 {
		return "", nil
	}
	var out strings.Builder
	x0, y0 := opts.X0, opts.Y0
	switch opts.Notation {
	case English:
		out.WriteString(Line(x0, y0, x0+float64(arms[0])+1, y0, ""))
		out.WriteString(Line(x0, y0, x0, y0-float64(legs[0])-1, ""))
		for i := range arms {
			idx, a, l := float64(i)+1, float64(arms[i]), float64(legs[i])
			out.WriteString(Line(x0+idx+a, y0-idx+1, x0+idx+a, y0-idx, ""))
			out.WriteString(Line(x0+idx-1, y0-idx, x0+idx+a, y0-idx, ""))
			out.WriteString(Line(x0+idx-1, y0-idx-l, x0+idx, y0-idx-l, ""))
			out.WriteString(Line(x0+idx, y0-idx+1, x0+idx, y0-idx-l, ""))
			if opts.LabelParts {
				if arms[i] == 0 {
					out.WriteString(Node(x0+idx+0.5, y0-idx+0.5, "0", ""))
				} else {
					out.WriteString(Node(x0+idx+0.5*a, y0-idx+0.5, strconv.Itoa(arms[i]), ""))
				}
				if legs[i] == 0 {
					out.WriteString(Node(x0+idx-0.5, y0-idx-0.5, "0", ""))
				} else {
					out.WriteString(Node(x0+idx-0.5, y0-idx-0.5*l, strconv.Itoa(legs[i]), ""))
				}
			}
		}
	case French:
		out.WriteString(Line(x0, y0, x0+float64(arms[0])+1, y0, ""))
		out.WriteString(Line(x0, y0, x0, y0+float64(legs[0])+1, ""))
		for i := range arms {
			idx, a, l := float64(i)+1, float64(arms[i]), float64(legs[i])
			out.WriteString(Line(x0+idx+a, y0+idx-1, x0+idx+a, y0+idx, ""))
			out.WriteString(Line(x0+idx-1, y0+idx, x0+idx+a, y0+idx, ""))
			out.WriteString(Line(x0+idx-1, y0+idx+l, x0+idx, y0+idx+l, ""))
			out.WriteString(Line(x0+idx, y0+idx-1, x0+idx, y0+idx+l, ""))
			if opts.LabelParts {
				if arms[i] == 0 {
					out.WriteString(Node(x0+idx+0.5, y0+idx-0.5, "0", ""))
				} else {
					out.WriteString(Node(x0+idx+0.5*a, y0+idx-0.5, strconv.Itoa(arms[i]), ""))
				}
				if legs[i] == 0 {
					out.WriteString(Node(x0+idx-0.5, y0+idx+0.5, "0", ""))
				} else {
					out.WriteString(Node(x0+idx-0.5, y0+idx+0.5*l, strconv.Itoa(legs[i]), ""))
				}
			}
		}
	case Cartesian:
		out.WriteString(Line(x0, y0, x0, y0+float64(arms[0])+1, ""))
		out.WriteString(Line(x0, y0, x0+float64(legs[0])+1, y0, ""))
		for i := range arms {
			idx, a, l := float64(i)+1, float64(arms[i]), float64(legs[i])
			out.WriteString(Line(x0+idx-1, y0+idx+a, x0+idx, y0+idx+a, ""))
			out.WriteString(Line(x0+idx, y0+idx-1, x0+idx, y0+idx+a, ""))
			out.WriteString(Line(x0+idx+l, y0+idx-1, x0+idx+l, y0+idx, ""))
			out.WriteString(Line(x0+idx-1, y0+idx, x0+idx+l, y0+idx, ""))
			if opts.LabelParts {
				if arms[i] == 0 {
					out.WriteString(Node(x0+idx-0.5, y0+idx+0.5, "0", ""))
				} else {
					out.WriteString(Node(x0+idx-0.5, y0+idx+0.5*a, strconv.Itoa(arms[i]), ""))
				}
				if legs[i] == 0 {
					out.WriteString(Node(x0+idx+0.5, y0+idx-0.5, "0", ""))
				} else {
					out.WriteString(Node(x0+idx+0.5*l, y0+idx-0.5, strconv.Itoa(legs[i]), ""))
				}
			}
		}
	case Russian:
		out.WriteString(Line(x0, y0, x0-float64(arms[0])-1, y0+float64(arms[0])+1, ""))
		out.WriteString(Line(x0, y0, x0+float64(legs[0])+1, y0+float64(legs[0])+1, ""))
		for i := range arms {
			idx, a, l := float64(i)+1, float64(arms[i]), float64(legs[i])
			out.WriteString(Line(x0-a-1, y0+2*idx+a-1, x0-a, y0+2*idx+a, ""))
			out.WriteString(Line(x0+1, y0+2*idx-1, x0-a, y0+2*idx+a, ""))
			out.WriteString(Line(x0+l+1, y0+2*idx+l-1, x0+l, y0+2*idx+l, ""))
			out.WriteString(Line(x0-1, y0+2*idx-1, x0+l, y0+2*idx+l, ""))
			if opts.LabelParts {
				if arms[i] == 0 {
					out.WriteString(Node(x0-1, y0+2*idx, "0", ""))
				} else {
					out.WriteString(Node(x0-0.5-0.5*a, y0+2*idx+0.5*a-0.5, strconv.Itoa(arms[i]), ""))
				}
				if legs[i] == 0 {
					out.WriteString(Node(x0+1, y0+2*idx, "0", ""))
				} else {
					out.WriteString(Node(x0+0.5*l+0.5, y0+2*idx+0.5*l-0.5, strconv.Itoa(legs[i]), ""))
				}
			}
		}
	}
	return out.String(), nil
}
