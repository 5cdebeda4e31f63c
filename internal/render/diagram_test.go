package render_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"suanpan/internal/partition"
	"suanpan/internal/render"
)

func TestDiagramEnglish(t *testing.T) {
	got, err := render.Diagram(partition.Must(2, 1), render.DiagramOptions{Notation: render.English})
	if err != nil {
		t.Fatalf("Diagram: %v", err)
	}
	want := `\draw (0,0) -- (2,0);` +
		`\draw (0,-1) -- (2,-1);` +
		`\draw (0,-2) -- (1,-2);` +
		`\draw (0,0) -- (0,-2);` +
		`\draw (1,0) -- (1,-2);` +
		`\draw (2,0) -- (2,-1);`
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestDiagramEmptyPartition(t *testing.T) {
	got, err := render.Diagram(partition.Must(), render.DiagramOptions{Notation: render.French})
	if err != nil {
		t.Fatalf("Diagram: %v", err)
	}
	if got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestDiagramUnknownNotation(t *testing.T) {
	_, err := render.Diagram(partition.Must(1), render.DiagramOptions{Notation: "Klingon"})
	if !errors.Is(err, render.ErrUnknownNotation) {
		t.Fatalf("got %v, want ErrUnknownNotation", err)
	}
}

func TestDiagramAllNotationsNonEmpty(t *testing.T) {
	p := partition.Must(3, 1, 1)
	for _, n := range []render.Notation{render.English, render.French, render.Russian, render.Cartesian} {
		got, err := render.Diagram(p, render.DiagramOptions{Notation: n, LabelParts: true})
		if err != nil {
			t.Fatalf("Diagram(%s): %v", n, err)
		}
		if !strings.Contains(got, `\draw`) {
			t.Fatalf("Diagram(%s): no draw commands in %q", n, got)
		}
		// Part labels must appear.
		if !strings.Contains(got, "node{3}") {
			t.Fatalf("Diagram(%s): missing part label in %q", n, got)
		}
	}
}

func TestFerrers(t *testing.T) {
	got, err := render.Ferrers(partition.Must(2, 1), render.English)
	if err != nil {
		t.Fatalf("Ferrers: %v", err)
	}
	want := `\filldraw (0,0) circle (.2);` +
		`\filldraw (1,0) circle (.2);` +
		`\filldraw (0,-1) circle (.2);`
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}

	if _, err := render.Ferrers(partition.Must(1), render.Russian); !errors.Is(err, render.ErrUnknownNotation) {
		t.Fatalf("Russian Ferrers: got %v, want ErrUnknownNotation", err)
	}
}

func TestLabelDiagram(t *testing.T) {
	got, err := render.LabelDiagram(partition.Must(2), func(i, j int) string {
		return strconv.Itoa(i + j)
	}, render.English)
	if err != nil {
		t.Fatalf("LabelDiagram: %v", err)
	}
	want := `\draw (0.5, -0.5)  node{0};\draw (1.5, -0.5)  node{1};`
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestBoundary(t *testing.T) {
	// The codec sequence of [1] is east, north. In the Russian and Cartesian
	// conventions the path reads right to left, so every edge must keep
	// moving away from its start; each case pins the exact edge chain.
	cases := []struct {
		notation render.Notation
		want     string
	}{
		{render.English,
			`\draw[blue, ->] (0,-1) -- (1,-1);\draw[orange, ->] (1,-1) -- (1,0);` +
				`\draw (0, -1) [below right] node{1};\draw (1, -1) [right] node{0};`},
		{render.French,
			`\draw[blue, ->] (0,1) -- (1,1);\draw[orange, ->] (1,1) -- (1,0);` +
				`\draw (0, 1) [above right] node{1};\draw (1, 1) [right] node{0};`},
		{render.Cartesian,
			`\draw[blue, ->] (1,0) -- (1,1);\draw[orange, ->] (1,1) -- (0,1);` +
				`\draw (1, 0) [above right] node{1};\draw (1, 1) [above] node{0};`},
		{render.Russian,
			`\draw[blue, ->] (1,1) -- (0,2);\draw[orange, ->] (0,2) -- (-1,1);` +
				`\draw (1, 1) [above] node{1};\draw (0, 2) [above left] node{0};`},
	}
	for _, tc := range cases {
		got, err := render.Boundary(partition.ZeroOneSequence(partition.Must(1)), "blue", "orange", tc.notation)
		if err != nil {
			t.Fatalf("Boundary(%s): %v", tc.notation, err)
		}
		if got != tc.want {
			t.Errorf("Boundary(%s):\ngot  %q\nwant %q", tc.notation, got, tc.want)
		}
	}

	if _, err := render.Boundary([]int{1, 0}, "blue", "orange", "Martian"); !errors.Is(err, render.ErrUnknownNotation) {
		t.Fatalf("got %v, want ErrUnknownNotation", err)
	}
}

func TestBoundaryEdgesChain(t *testing.T) {
	// Each edge must start where the previous one ended, in every notation;
	// a reversed step direction shows up as a broken or back-tracking chain.
	seq := partition.ZeroOneSequence(partition.Must(3, 1))
	for _, n := range []render.Notation{render.English, render.French, render.Russian, render.Cartesian} {
		got, err := render.Boundary(seq, "blue", "orange", n)
		if err != nil {
			t.Fatalf("Boundary(%s): %v", n, err)
		}
		edges := strings.Split(got, `\draw[`)[1:]
		if len(edges) < len(seq) {
			t.Fatalf("Boundary(%s): %d edges for %d symbols", n, len(edges), len(seq))
		}
		prevEnd := ""
		for i, e := range edges[:len(seq)] {
			parts := strings.SplitN(e, "] ", 2)
			if len(parts) != 2 {
				t.Fatalf("Boundary(%s): malformed edge %q", n, e)
			}
			stmt, _, ok := strings.Cut(parts[1], ";")
			if !ok {
				t.Fatalf("Boundary(%s): unterminated edge %q", n, e)
			}
			ends := strings.SplitN(stmt, " -- ", 2)
			if len(ends) != 2 {
				t.Fatalf("Boundary(%s): malformed edge %q", n, e)
			}
			if ends[0] == ends[1] {
				t.Fatalf("Boundary(%s): degenerate edge %q", n, e)
			}
			if i > 0 && ends[0] != prevEnd {
				t.Fatalf("Boundary(%s): edge %d starts at %s, previous ended at %s", n, i, ends[0], prevEnd)
			}
			prevEnd = ends[1]
		}
	}
}
