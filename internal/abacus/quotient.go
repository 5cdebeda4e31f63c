package abacus

import "suanpan/internal/partition"

// Charges computes the (r,b)-charge coordinates of p via its abacus.
func Charges(p partition.Partition, r, b int) ([]int, error) {
	a, err := Build(p, r, b)
	if err != nil {
		return nil, err
	}
	return ChargesOf(a), nil
}

// Quotient computes the (r,b)-quotient of p: each wire of the abacus decoded back
// into a partition.
//
// With classicalLabels set, the tuple is reordered as [w0, w(r-1), ..., w1]. The
// (r,r-1)-colouring maps a cell to i-j mod r while the classical content convention
// uses j-i, a reflection of indices; the reorder reconciles the b = r-1 case with
// the classical r-quotient labeling.
func Quotient(p partition.Partition, r, b int, classicalLabels bool) ([]partition.Partition, error) {
	a, err := Build(p, r, b)
	if err != nil {
		return nil, err
	}
	tuple := make([]partition.Partition, r)
	for i, wire := range a {
		tuple[i] = partition.FromZeroOne(toCodec(wire))
	}
	if classicalLabels {
		for i, j := 1, r-1; i < j; i, j = i+1, j-1 {
			tuple[i], tuple[j] = tuple[j], tuple[i]
		}
	}
	return tuple, nil
}

// Core computes the (r,b)-core of p: its own charges with all quotient content
// discarded. The result is always an (r,b)-core. Requires gcd(r,b) = 1 since the
// reconstruction walk is involved.
func Core(p partition.Partition, r, b int) (partition.Partition, error) {
	charges, err := Charges(p, r, b)
	if err != nil {
		return nil, err
	}
	return FromChargesAndQuotient(charges, nil, r, b)
}
