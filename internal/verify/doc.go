// Package verify runs exhaustive sweeps of the abacus engine's bijection
// properties over small partitions and all nondegenerate (r,b) actions.
//
// For every partition of size below a bound and every coprime pair 1 <= b < r
// below a bound (including the classical b = r-1 action for every r), the sweep
// checks that:
//   - the abacus round-trips exactly
//   - the core+quotient decomposition round-trips exactly
//   - the charges+quotient decomposition round-trips exactly
//   - charges sum to zero and colour counts sum to the partition size
//   - the derived core passes the structural core test
//
// The engine itself is pure and single-threaded; this driver fans the sweep out
// across values of r with an errgroup, which is the only concurrency in the
// repository.
package verify
