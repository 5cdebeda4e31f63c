package partition

import (
	"errors"
	"fmt"
)

// ErrDyckTooShort is returned when a requested Dyck half-length cannot contain the
// partition's boundary path.
var ErrDyckTooShort = errors.New("dyck half-length too short for partition")

// MinDyckHalfLength is the smallest n for which DyckWord(p, n) is defined: the
// boundary path needs Rows north steps and p[0] east steps, and a balanced word of
// length 2n holds n of each.
func MinDyckHalfLength(p Partition) int {
	n := len(p)
	if len(p) > 0 && p[0] > n {
		n = p[0]
	}
	return n
}

// DyckWord encodes p as a balanced word of length 2n in the codec convention
// (1:east, 0:north): n-Rows leading north steps, the minimal boundary sequence,
// then n-p[0] trailing east steps. Padding preserves identity under FromZeroOne,
// so words for several partitions can be aligned to a common length.
func DyckWord(p Partition, n int) ([]int, error) {
	if min := MinDyckHalfLength(p); n < min {
		return nil, fmt.Errorf("half-length %d < %d for %v: %w", n, min, p, ErrDyckTooShort)
	}
	word := make([]int, 0, 2*n)
	for i := 0; i < n-len(p); i++ {
		word = append(word, 0)
	}
	word = append(word, ZeroOneSequence(p)...)
	for len(word) < 2*n {
		word = append(word, 1)
	}
	return word, nil
}
