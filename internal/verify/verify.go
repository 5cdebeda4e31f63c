package verify

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"suanpan/internal/abacus"
	"suanpan/internal/partition"
)

// Options bounds a sweep. Partitions of size 0..MaxSize-1 are checked against
// every action with 1 <= b < r < MaxR and gcd(r,b) = 1.
type Options struct {
	MaxR    int
	MaxSize int
	Jobs    int // concurrent r values; 0 means one goroutine per r
}

// Failure records the first counterexample found for one property.
type Failure struct {
	Property  string
	R, B      int
	Partition partition.Partition
	Detail    string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s failed for %v under (%d,%d): %s", f.Property, f.Partition, f.R, f.B, f.Detail)
}

// Report tallies a sweep.
type Report struct {
	Actions  int // coprime (r,b) pairs checked
	Checked  int // (partition, action) combinations checked
	Failures []Failure
}

// OK reports whether the sweep found no counterexample.
func (rep *Report) OK() bool { return len(rep.Failures) == 0 }

// Run sweeps all properties under the given bounds. The error return covers
// context cancellation and malformed options only; engine counterexamples land
// in the report, not the error.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.MaxR < 1 || opts.MaxSize < 1 {
		return nil, fmt.Errorf("bounds must be positive, got MaxR=%d MaxSize=%d", opts.MaxR, opts.MaxSize)
	}

	partitions := make([][]partition.Partition, opts.MaxSize)
	for n := range partitions {
		partitions[n] = partition.All(n)
	}

	rep := &Report{}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	if opts.Jobs > 0 {
		g.SetLimit(opts.Jobs)
	}
	for r := 1; r < opts.MaxR; r++ {
		r := r
		g.Go(func() error {
			local := &Report{}
			for b := 1; b <= r; b++ {
				// b = r covers the degenerate r = 1 case, where b mod r = 0
				// is the only residue; skip it for r > 1.
				if b == r && r != 1 {
					continue
				}
				if gcd(r, b) != 1 {
					continue
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				local.Actions++
				for _, byN := range partitions {
					for _, p := range byN {
						local.Checked++
						checkAll(local, p, r, b)
					}
				}
			}
			mu.Lock()
			rep.Actions += local.Actions
			rep.Checked += local.Checked
			rep.Failures = append(rep.Failures, local.Failures...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rep, nil
}

func checkAll(rep *Report, p partition.Partition, r, b int) {
	fail := func(property, format string, args ...any) {
		rep.Failures = append(rep.Failures, Failure{
			Property: property, R: r, B: b, Partition: p,
			Detail: fmt.Sprintf(format, args...),
		})
	}

	counts := abacus.ColourCount(p, r, b)
	total := 0
	for _, c := range counts {
		total += c
	}
	if total != p.Size() {
		fail("colour-count", "counts %v sum to %d, want %d", counts, total, p.Size())
	}

	a, err := abacus.Build(p, r, b)
	if err != nil {
		fail("abacus", "build: %v", err)
		return
	}
	charges := abacus.ChargesOf(a)
	sum := 0
	for _, c := range charges {
		sum += c
	}
	if sum != 0 {
		fail("charge-sum", "charges %v sum to %d", charges, sum)
	}

	back, err := abacus.FromAbacus(a, r, b)
	if err != nil {
		fail("abacus-roundtrip", "reconstruct: %v", err)
	} else if !back.Equal(p) {
		fail("abacus-roundtrip", "got %v", back)
	}

	quotient, err := abacus.Quotient(p, r, b, false)
	if err != nil {
		fail("quotient", "%v", err)
		return
	}
	core, err := abacus.Core(p, r, b)
	if err != nil {
		fail("core", "%v", err)
		return
	}
	if !abacus.IsCore(core, r, b) {
		fail("core-is-core", "core %v fails the structural test", core)
	}

	back, err = abacus.FromCoreAndQuotient(core, quotient, r, b)
	if err != nil {
		fail("core-quotient-roundtrip", "reconstruct: %v", err)
	} else if !back.Equal(p) {
		fail("core-quotient-roundtrip", "got %v from core %v quotient %v", back, core, quotient)
	}

	back, err = abacus.FromChargesAndQuotient(charges, quotient, r, b)
	if err != nil {
		fail("charges-quotient-roundtrip", "reconstruct: %v", err)
	} else if !back.Equal(p) {
		fail("charges-quotient-roundtrip", "got %v from charges %v quotient %v", back, charges, quotient)
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
