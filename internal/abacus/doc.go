// Package abacus implements the generalized (r,b)-core and quotient decomposition
// of integer partitions under the cyclic-group colouring action, together with its
// exact inverses.
//
// # Overview
//
// A cell (i, j) of a Young diagram is coloured (i + b*j) mod r. Distributing the
// symbols of a partition's boundary path across r wires according to this action
// yields the (r,b)-abacus; reading each wire back gives the quotient tuple, and the
// per-wire surplus of north steps relative to a vacuum reference gives the charge
// coordinates. Collapsing all quotient content while preserving charges yields the
// (r,b)-core.
//
// Analysis runs partition -> abacus -> {core, quotient, charges}; synthesis runs
// {core | charges} + quotient -> abacus -> partition. Both directions share one
// stepping rule: after an east symbol the current wire advances by b, after a north
// symbol it retreats by 1, modulo r. The starting wire is the total north count
// modulo r. Changing any of these conventions breaks the bijection silently, so
// they are implemented once each (step, startWire) and never duplicated.
//
// Wires carry symbols in the convention 1:north, 0:east, the opposite of the
// partition codec. The inversion happens exactly at the codec boundary, in
// fromCodec and toCodec, keeping the codec swappable.
//
// # Errors
//
// Reconstruction validates its contract eagerly and fails fast:
//
//   - ErrInvalidAction: gcd(r, b) != 1, so the stepping walk would not visit every
//     wire and could fail to terminate
//   - ErrShapeMismatch: a charge or quotient tuple does not have exactly r entries
//   - ErrChargeImbalance: supplied charges do not sum to zero
//   - ErrNotACore: a partition supplied as a core fails the structural core test
//
// These mark malformed caller input, never transient conditions; all operations are
// pure, so a failed call has no effects to roll back.
package abacus
