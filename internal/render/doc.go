// Package render produces TikZ drawing commands for partitions: Young diagram
// outlines, Ferrers dot diagrams, Frobenius-coordinate hook diagrams, per-cell
// labels, and coloured boundary paths.
//
// Every function is pure presentation: it returns a string of TikZ commands and
// performs no I/O. Diagrams can be drawn in four conventions (English, French,
// Russian, Cartesian); Document wraps a body into a standalone .tex file for
// direct compilation.
//
// Boundary takes a sequence in the partition codec convention (1:east, 0:north),
// so the engine's wire output must be re-inverted before rendering.
package render
