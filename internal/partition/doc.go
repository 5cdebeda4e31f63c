// Package partition defines the integer-partition value type and its boundary-path
// codec, the primitive capability the abacus engine is built on.
//
// # Overview
//
// A Partition is a weakly decreasing sequence of positive integers, the row lengths
// of a Young diagram in English notation. The package provides:
//   - structural operations: size, conjugate, cell enumeration, arm and leg lengths
//   - the boundary-path codec: ZeroOneSequence and FromZeroOne
//   - balanced Dyck-word encoding with explicit padding: DyckWord
//   - enumeration of all partitions of a given size: All
//
// # Codec convention
//
// The boundary path of a diagram is read from its bottom-left corner to its top-right
// corner and encoded with 1 for an east step and 0 for a north step. Only the minimal
// segment is materialized: the true path continues with infinitely many north steps
// before it and east steps after it, so a minimal sequence never starts with 0 and
// never ends with 1. Every consumer that wants the opposite convention must flip
// symbols at this boundary; the engine does exactly that, in one place.
//
// # Errors
//
// ErrNotAPartition is returned when a constructor is given a sequence that is not
// weakly decreasing or contains a negative part.
package partition
