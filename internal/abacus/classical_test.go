package abacus_test

import (
	"sort"

	"suanpan/internal/partition"
)

// The helpers below are an independent implementation of the classical r-core
// and r-quotient through beta numbers (first-column hook lengths), used to
// cross-check the b = r-1 special case of the generalized decomposition.

// betaSet returns the beta numbers of p padded to a length divisible by r.
func betaSet(p partition.Partition, r int) []int {
	m := len(p)
	if rem := m % r; rem != 0 || m == 0 {
		m += r - rem
	}
	betas := make([]int, m)
	for i := 0; i < m; i++ {
		part := 0
		if i < len(p) {
			part = p[i]
		}
		betas[i] = part + (m - 1 - i)
	}
	return betas
}

// fromBetaSet recovers the partition whose padded beta numbers are the given set.
func fromBetaSet(betas []int) partition.Partition {
	sorted := append([]int(nil), betas...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	m := len(sorted)
	parts := make([]int, 0, m)
	for i, beta := range sorted {
		parts = append(parts, beta-(m-1-i))
	}
	p, err := partition.New(parts...)
	if err != nil {
		panic(err)
	}
	return p
}

// classicalCore removes r-rim-hooks until none remain: each removal replaces a
// beta number by beta-r when that slot is free.
func classicalCore(p partition.Partition, r int) partition.Partition {
	present := map[int]bool{}
	for _, beta := range betaSet(p, r) {
		present[beta] = true
	}
	for changed := true; changed; {
		changed = false
		for beta := range present {
			if beta >= r && !present[beta-r] {
				delete(present, beta)
				present[beta-r] = true
				changed = true
				break
			}
		}
	}
	betas := make([]int, 0, len(present))
	for beta := range present {
		betas = append(betas, beta)
	}
	return fromBetaSet(betas)
}

// classicalQuotient splits the padded beta set by residue class: component e is
// the partition whose beta numbers are the quotients of the betas congruent to
// e modulo r.
func classicalQuotient(p partition.Partition, r int) []partition.Partition {
	out := make([]partition.Partition, r)
	for e := 0; e < r; e++ {
		var class []int
		for _, beta := range betaSet(p, r) {
			if beta%r == e {
				class = append(class, beta/r)
			}
		}
		out[e] = fromBetaSet(class)
	}
	return out
}
