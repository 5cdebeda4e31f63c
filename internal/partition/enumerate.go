package partition

// All returns every partition of n in reverse lexicographic order, [n] first and
// the all-ones partition last. All(0) is the single empty partition.
func All(n int) []Partition {
	var out []Partition
	buf := make([]int, 0, n)
	var rec func(remaining, maxPart int)
	rec = func(remaining, maxPart int) {
		if remaining == 0 {
			p := make(Partition, len(buf))
			copy(p, buf)
			out = append(out, p)
			return
		}
		first := maxPart
		if remaining < first {
			first = remaining
		}
		for part := first; part >= 1; part-- {
			buf = append(buf, part)
			rec(remaining-part, part)
			buf = buf[:len(buf)-1]
		}
	}
	rec(n, n)
	return out
}
