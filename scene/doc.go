// Package scene defines the shared data model for procedurally generated
// relational-reasoning stimuli.
//
// What:
//
//   - Object: a fixed-length feature vector ([]float64).
//   - Scene: an ordered, fixed-size collection of Objects, the atomic unit
//     a relation is evaluated over.
//   - Range: a half-open [Start, End) index range inside an Object.
//   - Layout: the stable name→Range mapping shared by every Object produced
//     under one generator configuration.
//
// Why:
//
//   - Relations and balancers address object attributes by name; the Layout
//     makes the addressing derivable at construction time, before any
//     sampling happens.
//   - Balancers mutate scenes in place; Clone produces an independent buffer
//     so pre- and post-balance scenes never alias.
//
// Invariants:
//
//   - Every Object under one Layout has identical total width.
//   - Object order within a Scene carries no semantic meaning for relation
//     evaluation but is preserved for reproducibility of mutation.
//
// Errors:
//
//   - ErrDuplicateField: a Layout was declared with a repeated field name.
//   - ErrLayoutMismatch: field names and widths disagree in length.
package scene
