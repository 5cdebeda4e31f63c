package abacus

import "suanpan/internal/partition"

// Colour is the colour of cell (i, j) under the (r,b) action: (i + b*j) mod r.
func Colour(i, j, r, b int) int {
	return (((i + b*j) % r) + r) % r
}

// ColourTableau returns p's diagram with every cell replaced by its colour.
func ColourTableau(p partition.Partition, r, b int) [][]int {
	rows := make([][]int, len(p))
	for i, part := range p {
		rows[i] = make([]int, part)
		for j := 0; j < part; j++ {
			rows[i][j] = Colour(i, j, r, b)
		}
	}
	return rows
}

// ColourCount counts the cells of each colour; the entries sum to p.Size().
func ColourCount(p partition.Partition, r, b int) []int {
	counts := make([]int, r)
	for _, c := range p.Cells() {
		counts[Colour(c.Row, c.Col, r, b)]++
	}
	return counts
}

// IsCore reports whether p is an (r,b)-core: no cell satisfies the congruence
// leg - b*(arm+1) = 0 mod r, i.e. no cell admits a colour-0 removable hook.
// The test is structural and independent of the abacus construction.
func IsCore(p partition.Partition, r, b int) bool {
	conj := p.Conjugate()
	for _, c := range p.Cells() {
		arm := p.Arm(c.Row, c.Col)
		leg := p.Leg(conj, c.Row, c.Col)
		if ((leg-b*(arm+1))%r+r)%r == 0 {
			return false
		}
	}
	return true
}
