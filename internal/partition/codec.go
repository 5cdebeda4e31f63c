package partition

// ZeroOneSequence encodes p's boundary path as its minimal 0-1 sequence with the
// package convention 1:east, 0:north. The walk starts below the smallest part and
// ends after the north step of the first row, so a non-empty sequence always begins
// with 1 and ends with 0. The empty partition encodes to an empty sequence.
func ZeroOneSequence(p Partition) []int {
	if len(p) == 0 {
		return nil
	}
	seq := make([]int, 0, p[0]+len(p))
	prev := 0
	for i := len(p) - 1; i >= 0; i-- {
		for e := 0; e < p[i]-prev; e++ {
			seq = append(seq, 1)
		}
		seq = append(seq, 0)
		prev = p[i]
	}
	return seq
}

// FromZeroOne decodes a boundary-path sequence (1:east, 0:north) back into a
// partition. Each north step closes a row whose length is the number of east steps
// read so far; rows therefore appear smallest first and are reversed on the way out.
// Non-minimal input is accepted: leading north steps decode to empty rows, which
// trim away, and trailing east steps close no row.
func FromZeroOne(seq []int) Partition {
	rows := make([]int, 0, len(seq))
	easts := 0
	for _, code := range seq {
		if code == 1 {
			easts++
		} else {
			rows = append(rows, easts)
		}
	}
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	end := len(rows)
	for end > 0 && rows[end-1] == 0 {
		end--
	}
	if end == 0 {
		return nil
	}
	return Partition(rows[:end])
}
