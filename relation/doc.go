// Package relation implements the predicates that assign labels to scenes,
// each paired with a balancer that mutates a scene to force the opposite
// label while preserving relational structure.
//
// What:
//
//   - Relation: the shared capability set, Evaluate(scene) → bool and
//     Balance(scene, current, rng) → scene.
//   - Adjacency1D / AdjacencyND: true iff any two objects sit at exactly
//     unit L1 distance in the relevant positional field(s).
//   - ColorAboveColor: true iff some above-color object's vertical
//     coordinate is ≥ every below-color object's.
//   - ObjectCount: true iff one category strictly outnumbers another.
//   - IdenticalObjects: true iff any two objects share the declared
//     property fields.
//
// Balancing contract (all variants):
//
//   - Only negative→positive flips are supported; calling Balance on a
//     positive scene returns ErrUnsupportedDirection.
//   - The scene is mutated in place and returned; scene size never changes.
//   - Label-exact: re-evaluating the relation on the returned scene yields
//     the flipped label with probability 1, not merely on average.
//
// Determinism:
//
//   - All randomness flows through the *rand.Rand passed to Balance; a nil
//     RNG falls back to a fixed deterministic stream.
//
// Errors:
//
//   - ErrMissingField / ErrFieldKind / ErrBadIndex / ErrDomainTooSmall:
//     invalid wiring, detected at construction.
//   - ErrUnsupportedDirection: Balance called on a positive scene.
//   - ErrSceneTooSmall: a pairwise balancer given fewer than two objects.
//   - ErrPlacementLimit: collision resolution exhausted its attempt bound.
package relation
