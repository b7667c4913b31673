// Package dataset holds eagerly materialized (scene, label) batches and the
// introspection contract consumed by training loops and model layers.
//
// What:
//
//   - Dataset: an ordered batch of scenes with integer labels and a Geometry
//     back-reference (canvas bounds, position indices) recording how object
//     coordinates map onto the canvas.
//   - Spatial: a projection of a Dataset onto dense canvas grids, scattering
//     each object's feature vector at its integer (x, y) cell; the
//     simplified variant keeps only a chosen channel range (e.g. the type
//     one-hot slice).
//
// Lifecycle:
//
//   - Datasets are materialized once at construction, never streamed.
//     Splitting produces new Datasets over copied slice headers; the
//     underlying scenes are shared and must not be mutated afterwards.
//
// Errors:
//
//   - ErrLengthMismatch: scenes and labels of differing lengths.
//   - ErrRagged: scenes of differing shapes in one batch.
//   - ErrNoGeometry: spatial projection requested without canvas bounds.
//   - ErrOutOfCanvas: an object coordinate falls outside the canvas.
package dataset
