package abacus

// ChargesOf derives the per-wire charge coordinates of an abacus. The reference
// state holds the same total number of north symbols distributed as evenly as
// possible, with the remainder going to wires 1..(total mod r) and never to wire 0;
// the tie-break is part of the bijection and must not change. A wire's charge is
// its reference count minus its actual north count, so charges always sum to zero.
func ChargesOf(a Abacus) []int {
	r := len(a)
	total := a.Ones()

	expected := make([]int, r)
	for i := range expected {
		expected[i] = total / r
		if 0 < i && i <= total%r {
			expected[i]++
		}
	}

	charges := make([]int, r)
	for i, wire := range a {
		charges[i] = expected[i] - countOnes(wire)
	}
	return charges
}
