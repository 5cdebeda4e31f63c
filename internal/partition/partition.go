package partition

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotAPartition is returned when input parts are not weakly decreasing or negative.
var ErrNotAPartition = errors.New("parts must be weakly decreasing and non-negative")

// Partition is a weakly decreasing sequence of positive integers, the row lengths of
// a Young diagram. The zero value is the empty partition. Values are never mutated
// after construction; operations return fresh values.
type Partition []int

// Cell is a 0-indexed position (row, column) inside a Young diagram.
type Cell struct {
	Row, Col int
}

// New validates parts and returns the partition they describe. Trailing zero parts
// are trimmed; anything not weakly decreasing or negative is rejected.
func New(parts ...int) (Partition, error) {
	for i, p := range parts {
		if p < 0 {
			return nil, fmt.Errorf("part %d is %d: %w", i, p, ErrNotAPartition)
		}
		if i > 0 && p > parts[i-1] {
			return nil, fmt.Errorf("part %d exceeds part %d: %w", i, i-1, ErrNotAPartition)
		}
	}
	end := len(parts)
	for end > 0 && parts[end-1] == 0 {
		end--
	}
	if end == 0 {
		// Canonical empty partition, so structural comparisons stay trivial.
		return nil, nil
	}
	out := make(Partition, end)
	copy(out, parts[:end])
	return out, nil
}

// Must is New for inputs known to be valid; it panics otherwise.
func Must(parts ...int) Partition {
	p, err := New(parts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Size is the number of cells in the diagram, the sum of all parts.
func (p Partition) Size() int {
	n := 0
	for _, part := range p {
		n += part
	}
	return n
}

// Rows is the number of parts.
func (p Partition) Rows() int { return len(p) }

// Equal reports structural equality: the same sequence of parts.
func (p Partition) Equal(q Partition) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Conjugate returns the transposed partition, whose rows are p's columns.
func (p Partition) Conjugate() Partition {
	if len(p) == 0 {
		return nil
	}
	out := make(Partition, p[0])
	for j := range out {
		for _, part := range p {
			if part > j {
				out[j]++
			}
		}
	}
	return out
}

// Cells enumerates the diagram's cells row by row.
func (p Partition) Cells() []Cell {
	cells := make([]Cell, 0, p.Size())
	for i, part := range p {
		for j := 0; j < part; j++ {
			cells = append(cells, Cell{Row: i, Col: j})
		}
	}
	return cells
}

// Arm is the number of cells strictly to the right of (i, j) in its row.
// The cell must lie inside the diagram.
func (p Partition) Arm(i, j int) int { return p[i] - j - 1 }

// Leg is the number of cells strictly below (i, j) in its column, computed against
// the supplied conjugate. The cell must lie inside the diagram.
func (p Partition) Leg(conj Partition, i, j int) int { return conj[j] - i - 1 }

// Frobenius returns the Frobenius coordinates of p: for each cell (i, i) on the
// main diagonal, arms[i] is its arm length and legs[i] is its leg length. Both
// slices have the length of the diagonal and are nil for the empty partition.
func (p Partition) Frobenius() (arms, legs []int) {
	conj := p.Conjugate()
	for i := 0; i < len(p) && p[i] > i; i++ {
		arms = append(arms, p.Arm(i, i))
		legs = append(legs, p.Leg(conj, i, i))
	}
	return arms, legs
}

// String renders the partition as a bracketed part list, e.g. "[5, 3, 1]".
func (p Partition) String() string {
	parts := make([]string, len(p))
	for i, part := range p {
		parts[i] = strconv.Itoa(part)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
