// Package scenegen assembles synthetic scenes from named field generators
// and attaches relation-derived labels, with three batch strategies.
//
// What:
//
//   - Assembler: composes fixed-width object vectors from an ordered field
//     configuration, records the index range each field owns, instantiates
//     the configured relation, and draws raw labeled batches.
//   - PostHoc: rejection-sampling balanced batches; accumulates positive and
//     negative pools across repeated draws until each holds half the target,
//     then truncates and shuffles. Terminates only probabilistically, so the
//     draw count is bounded; exhaustion fails with ErrDrawLimit. When the
//     relation's natural positive rate is extreme, use Directed instead.
//   - Directed: draws once, re-draws overshooting positive slots for a
//     bounded number of rounds, then flips the exact shortfall of negative
//     scenes in place via the relation's balancer. Deterministic, bounded,
//     and preferred whenever the balancer is implemented.
//
// Determinism:
//
//   - One *rand.Rand per Assembler, seeded at construction (WithSeed) or
//     supplied directly (WithRand). Same seed, configuration, and call order
//     yield identical batches.
//
// Errors:
//
//   - ErrNoFields / ErrNilFactory / ErrBadBatchSize: invalid construction.
//   - ErrDrawLimit: PostHoc exhausted its draw budget.
//   - ErrRecursionLimit: Directed exhausted its correction rounds; this is a
//     hard stop, never a silently unbalanced batch.
package scenegen
