package partition_test

import (
	"errors"
	"reflect"
	"testing"

	"suanpan/internal/partition"
)

func TestMinDyckHalfLength(t *testing.T) {
	cases := []struct {
		p    partition.Partition
		want int
	}{
		{partition.Must(), 0},
		{partition.Must(2), 2},
		{partition.Must(1, 1, 1), 3},
		{partition.Must(3, 1), 3},
	}
	for _, tc := range cases {
		if got := partition.MinDyckHalfLength(tc.p); got != tc.want {
			t.Errorf("MinDyckHalfLength(%v): got %d, want %d", tc.p, got, tc.want)
		}
	}
}

func TestDyckWordExamples(t *testing.T) {
	word, err := partition.DyckWord(partition.Must(2), 2)
	if err != nil {
		t.Fatalf("DyckWord: %v", err)
	}
	if want := []int{0, 1, 1, 0}; !reflect.DeepEqual(word, want) {
		t.Fatalf("got %v, want %v", word, want)
	}

	word, err = partition.DyckWord(partition.Must(), 3)
	if err != nil {
		t.Fatalf("DyckWord: %v", err)
	}
	if want := []int{0, 0, 0, 1, 1, 1}; !reflect.DeepEqual(word, want) {
		t.Fatalf("empty: got %v, want %v", word, want)
	}
}

func TestDyckWordTooShort(t *testing.T) {
	_, err := partition.DyckWord(partition.Must(3, 1), 2)
	if !errors.Is(err, partition.ErrDyckTooShort) {
		t.Fatalf("got %v, want ErrDyckTooShort", err)
	}
}

func TestDyckWordBalancedAndIdentityPreserving(t *testing.T) {
	for n := 0; n < 9; n++ {
		for _, p := range partition.All(n) {
			for _, half := range []int{partition.MinDyckHalfLength(p), partition.MinDyckHalfLength(p) + 3} {
				word, err := partition.DyckWord(p, half)
				if err != nil {
					t.Fatalf("DyckWord(%v, %d): %v", p, half, err)
				}
				if len(word) != 2*half {
					t.Fatalf("DyckWord(%v, %d): length %d", p, half, len(word))
				}
				ones := 0
				for _, c := range word {
					ones += c
				}
				if ones != half {
					t.Fatalf("DyckWord(%v, %d): %d east steps, want %d", p, half, ones, half)
				}
				if back := partition.FromZeroOne(word); !back.Equal(p) {
					t.Fatalf("DyckWord(%v, %d) decodes to %v", p, half, back)
				}
			}
		}
	}
}
