// Package paradigm implements structured dataset builders: the layout
// strategies that place reference and target objects on a canvas, partition
// placement locations into train/test subsets, and materialize whole
// labeled datasets split by generalization axis.
//
// What:
//
//   - Source: emits reference/target object vectors (with or without an
//     explicit size attribute) with per-pool type sampling.
//   - AboveBelow / Between: the reference-inductive-bias paradigm over a
//     small target-relative grid, producing five held-out test conditions
//     crossing train/test reference locations with train/test/middle target
//     locations.
//   - OneOrTwo: the one-or-two-reference-objects paradigm, partitioning a
//     target grid into vertical bands and producing three held-out test
//     conditions (no middle zone).
//
// Lifecycle:
//
//   - A builder partitions its candidate locations at construction (fixed
//     by seed) and lazily materializes its datasets on first access,
//     caching them; repeated access is idempotent. Builders are not
//     internally synchronized; callers sharing one instance must serialize
//     access externally.
//
// Label convention:
//
//   - With "neither" augmentation enabled, labels shift up by one so label
//     0 is reserved for off-to-the-side placements; without it, labels stay
//     binary {0, 1}.
//
// Determinism:
//
//   - One seeded RNG per builder covers location shuffles, neither-class
//     sampling, and coin flips, in a fixed call order; a separate seeded
//     RNG inside the Source covers type sampling. Same seeds and call order
//     reproduce identical datasets.
package paradigm
