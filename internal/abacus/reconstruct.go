package abacus

import (
	"errors"
	"fmt"

	"suanpan/internal/partition"
	"suanpan/internal/util/deque"
)

var (
	// ErrShapeMismatch is returned when a charge or quotient tuple does not have
	// exactly r entries.
	ErrShapeMismatch = errors.New("tuple length does not match wire count")

	// ErrChargeImbalance is returned when supplied charges do not sum to zero.
	ErrChargeImbalance = errors.New("charges do not sum to zero")

	// ErrNotACore is returned when a partition supplied as a core fails IsCore.
	ErrNotACore = errors.New("partition is not an (r,b)-core")
)

// FromCoreAndQuotient reconstructs the unique partition with the given (r,b)-core
// and quotient. A nil quotient means no content, so the core itself is returned.
func FromCoreAndQuotient(core partition.Partition, quotient []partition.Partition, r, b int) (partition.Partition, error) {
	if r < 1 {
		return nil, fmt.Errorf("group order r = %d: %w", r, ErrInvalidAction)
	}
	if !IsCore(core, r, b) {
		return nil, fmt.Errorf("core %v under (%d,%d): %w", core, r, b, ErrNotACore)
	}
	if quotient == nil {
		return core, nil
	}
	charges, err := Charges(core, r, b)
	if err != nil {
		return nil, err
	}
	return FromChargesAndQuotient(charges, quotient, r, b)
}

// FromChargesAndQuotient reconstructs the unique partition with the given
// (r,b)-charge coordinates and quotient. A nil quotient stands for r empty
// partitions.
//
// Each quotient partition becomes a balanced Dyck word of a common length 2n on
// its wire, then c_max - charge[i] extra north symbols are prepended to wire i:
// prepending norths raises a wire's surplus over the reference state, and these
// counts are exactly those that make ChargesOf return the requested charges again.
func FromChargesAndQuotient(charges []int, quotient []partition.Partition, r, b int) (partition.Partition, error) {
	if r < 1 {
		return nil, fmt.Errorf("group order r = %d: %w", r, ErrInvalidAction)
	}
	if len(charges) != r {
		return nil, fmt.Errorf("%d charges for %d wires: %w", len(charges), r, ErrShapeMismatch)
	}
	sum := 0
	for _, c := range charges {
		sum += c
	}
	if sum != 0 {
		return nil, fmt.Errorf("charges %v sum to %d: %w", charges, sum, ErrChargeImbalance)
	}

	wires := make(Abacus, r)
	if quotient != nil {
		if len(quotient) != r {
			return nil, fmt.Errorf("%d quotient parts for %d wires: %w", len(quotient), r, ErrShapeMismatch)
		}
		n := 0
		for _, q := range quotient {
			if m := partition.MinDyckHalfLength(q); m > n {
				n = m
			}
		}
		for i, q := range quotient {
			word, err := partition.DyckWord(q, n)
			if err != nil {
				return nil, err
			}
			wires[i] = fromCodec(word)
		}
	}

	cMax := charges[0]
	for _, c := range charges[1:] {
		if c > cMax {
			cMax = c
		}
	}
	for i := range wires {
		extra := make([]int, cMax-charges[i])
		for j := range extra {
			extra[j] = 1
		}
		wires[i] = append(extra, wires[i]...)
	}

	return FromAbacus(wires, r, b)
}

// FromAbacus merges the wires of an abacus back into a boundary path and decodes
// the partition it represents; it is Build run in reverse token order. Passing
// r = 0 infers the wire count from the abacus.
//
// The walk pops the front symbol off the current wire, synthesizing an east symbol
// once a wire is exhausted, and advances by the same stepping rule as Build. It
// stops when every north symbol has been emitted: beyond that point all wires are
// conceptually all-east, so the path is complete.
func FromAbacus(a Abacus, r, b int) (partition.Partition, error) {
	if r == 0 {
		r = len(a)
	}
	if r < 1 {
		return nil, fmt.Errorf("group order r = %d: %w", r, ErrInvalidAction)
	}
	if len(a) != r {
		return nil, fmt.Errorf("%d wires for r = %d: %w", len(a), r, ErrShapeMismatch)
	}
	b = normalize(b, r)
	if gcd(r, b) != 1 {
		// Without coprimality the walk cycles through a strict subset of wires.
		return nil, fmt.Errorf("gcd(%d,%d) != 1: %w", r, b, ErrInvalidAction)
	}

	wires := make([]*deque.Deque[int], r)
	for i, w := range a {
		wires[i] = deque.From(w)
	}

	total := a.Ones()
	wire := startWire(total, r)
	seq := make([]int, 0, r*total)
	read := 0
	for read < total {
		code, ok := wires[wire].PopFront()
		if !ok {
			code = 0
		}
		seq = append(seq, code)
		read += code
		wire = step(wire, code, r, b)
	}

	return partition.FromZeroOne(toCodec(seq)), nil
}
