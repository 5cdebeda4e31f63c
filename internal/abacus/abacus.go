package abacus

import (
	"errors"
	"fmt"

	"suanpan/internal/partition"
)

// ErrInvalidAction is returned when the (r,b) pair does not describe a
// nondegenerate action: r must be positive, and reconstruction additionally
// requires gcd(r,b) = 1 for the stepping walk to terminate.
var ErrInvalidAction = errors.New("invalid (r,b) action")

// Abacus is an ordered collection of r wires. Each wire is a finite binary
// sequence in the convention 1:north, 0:east; conceptually every wire continues
// with infinitely many trailing east symbols, which are never stored.
type Abacus [][]int

// Build distributes the boundary path of p across r wires according to the (r,b)
// action. The starting wire is the path's north count modulo r, and after each
// symbol the wire index moves by the shared stepping rule. b is taken modulo r;
// b = -1 selects the classical special-linear action b = r-1.
func Build(p partition.Partition, r, b int) (Abacus, error) {
	if r < 1 {
		return nil, fmt.Errorf("group order r = %d: %w", r, ErrInvalidAction)
	}
	b = normalize(b, r)
	seq := fromCodec(partition.ZeroOneSequence(p))

	wires := make(Abacus, r)
	wire := startWire(countOnes(seq), r)
	for _, code := range seq {
		wires[wire] = append(wires[wire], code)
		wire = step(wire, code, r, b)
	}
	return wires, nil
}

// Ones is the total number of north symbols across all wires.
func (a Abacus) Ones() int {
	total := 0
	for _, w := range a {
		total += countOnes(w)
	}
	return total
}

// step advances the wire index after reading one symbol: +b for an east symbol,
// -1 for a north symbol, modulo r. This is the single source of truth shared by
// Build and FromAbacus; the two directions must agree exactly.
func step(wire, code, r, b int) int {
	return ((wire+b*(1-code)-code)%r + r) % r
}

// startWire is the wire the walk begins on for a path holding ones north symbols.
func startWire(ones, r int) int { return ones % r }

// normalize reduces b into [0, r).
func normalize(b, r int) int { return ((b % r) + r) % r }

// fromCodec converts a codec sequence (1:east, 0:north) to wire convention.
func fromCodec(seq []int) []int { return invert(seq) }

// toCodec converts a wire-convention sequence back to the codec's expectation.
func toCodec(seq []int) []int { return invert(seq) }

// invert flips every symbol of a binary sequence.
func invert(seq []int) []int {
	out := make([]int, len(seq))
	for i, code := range seq {
		out[i] = 1 - code
	}
	return out
}

func countOnes(seq []int) int {
	n := 0
	for _, code := range seq {
		n += code
	}
	return n
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
