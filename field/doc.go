// Package field implements per-attribute samplers for synthetic object
// vectors: positional coordinates, categorical one-hots, and fixed lengths.
//
// What:
//
//   - Kind enumerates the closed set of field types.
//   - Config declares one named field with its value domain.
//   - Generator samples one (objectCount × width) block per call and exposes
//     its domain bounds for use by relation balancers.
//
// Determinism:
//
//   - Sampling draws only from the *rand.Rand passed to Sample; a nil RNG
//     falls back to a fixed deterministic stream. Same RNG state and call
//     order yield identical blocks.
//
// Invariants:
//
//   - A categorical sample always has exactly one active entry.
//   - A positional sample always lies in [MinCoord, MaxCoord).
//
// Errors:
//
//   - ErrUnknownKind: the configured kind is not in the closed set.
//   - ErrBadDomain: MaxCoord does not exceed MinCoord for a position field.
//   - ErrBadCategories: a categorical field with fewer than one category.
//   - ErrBadObjectCount: a generator built for fewer than one object.
package field
