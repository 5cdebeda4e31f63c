// Package commands defines the suanpan CLI over the (r,b)-abacus engine.
//
// Commands
//
//   - core      Print the (r,b)-core of a partition
//   - quotient  Print the (r,b)-quotient tuple
//   - charges   Print the (r,b)-charge coordinates
//   - abacus    Print the abacus wires
//   - colours   Print colour counts or the full colour tableau
//   - build     Reconstruct a partition from core/charges and quotient data
//   - verify    Sweep round-trip properties over all small partitions and actions
//   - draw      Emit TikZ code for Young/Ferrers diagrams and boundary paths
//
// Partitions are written as comma-separated parts ("5,3,1"); "-" is the empty
// partition. Quotient tuples separate components with semicolons ("2,1;-;1").
// The action is set by the persistent -r and -b flags; b defaults to -1, the
// classical special-linear action b = r-1.
package commands
