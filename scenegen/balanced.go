package scenegen

import (
	"fmt"

	"github.com/katalvlaran/relgrid/scene"
)

// PostHoc draws balanced batches by rejection sampling: it repeatedly draws
// full raw batches, pools scenes by observed label, and stops once each pool
// holds half the target. Appropriate when the relation's natural positive
// rate is not extreme; otherwise prefer Directed, whose cost is bounded by
// construction.
type PostHoc struct {
	asm      *Assembler
	maxDraws int
}

// NewPostHoc wraps asm with a rejection-sampling strategy bounded by
// maxDraws full-batch draws; maxDraws ≤ 0 selects DefaultMaxDraws.
func NewPostHoc(asm *Assembler, maxDraws int) *PostHoc {
	if maxDraws <= 0 {
		maxDraws = DefaultMaxDraws
	}
	return &PostHoc{asm: asm, maxDraws: maxDraws}
}

// BalancedBatch returns 2×⌊n/2⌋ scenes holding exactly ⌊n/2⌋ of each label,
// in one final random slot permutation. A batch of 1 degenerates to a single
// raw draw. Returns ErrDrawLimit when the pools cannot be filled within the
// draw budget.
func (p *PostHoc) BalancedBatch(n int) ([]scene.Scene, []int, error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("scenegen: batch of %d: %w", n, ErrBadBatchSize)
	}
	if n == 1 {
		return p.asm.Batch(1)
	}

	half := n / 2
	var positives, negatives []scene.Scene
	for draws := 1; len(positives) < half || len(negatives) < half; draws++ {
		if draws > p.maxDraws {
			return nil, nil, fmt.Errorf("scenegen: %s: %d draws of %d: %w",
				p.asm.Relation().Name(), draws-1, n, ErrDrawLimit)
		}
		scenes, labels, err := p.asm.Batch(n)
		if err != nil {
			return nil, nil, err
		}
		for i, sc := range scenes {
			if labels[i] == 1 {
				if len(positives) < half {
					positives = append(positives, sc)
				}
			} else if len(negatives) < half {
				negatives = append(negatives, sc)
			}
		}
	}

	m := 2 * half
	combined := make([]scene.Scene, 0, m)
	combined = append(combined, positives[:half]...)
	combined = append(combined, negatives[:half]...)
	labels := make([]int, m)
	for i := 0; i < half; i++ {
		labels[i] = 1
	}

	// One final random permutation of slot order.
	perm := p.asm.rng.Perm(m)
	outScenes := make([]scene.Scene, m)
	outLabels := make([]int, m)
	for i, pi := range perm {
		outScenes[i] = combined[pi]
		outLabels[i] = labels[pi]
	}
	return outScenes, outLabels, nil
}

// Directed draws one raw batch and corrects it to an exact half/half label
// split: while positives overshoot the half target, the positive-labeled
// slots are re-drawn (bounded rounds); once they undershoot, the exact
// shortfall of uniformly chosen negative scenes is flipped in place by the
// relation's balancer. Deterministic and bounded; preferred when the
// relation implements balancing.
type Directed struct {
	asm       *Assembler
	maxRounds int
}

// NewDirected wraps asm with a directed-balancing strategy bounded by
// maxRounds correction rounds; maxRounds ≤ 0 selects DefaultMaxRounds.
func NewDirected(asm *Assembler, maxRounds int) *Directed {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	return &Directed{asm: asm, maxRounds: maxRounds}
}

// BalancedBatch returns n scenes with exactly ⌊n/2⌋ positives. A batch of 1
// degenerates to a single raw draw. Returns ErrRecursionLimit when the
// correction rounds are exhausted, wrapped with the relation name and round
// count; balancer errors (unsupported direction, placement limits)
// propagate unchanged.
func (d *Directed) BalancedBatch(n int) ([]scene.Scene, []int, error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("scenegen: batch of %d: %w", n, ErrBadBatchSize)
	}
	if n == 1 {
		return d.asm.Batch(1)
	}

	scenes, labels, err := d.asm.Batch(n)
	if err != nil {
		return nil, nil, err
	}
	half := n / 2
	positives := countOnes(labels)
	if positives == half {
		return scenes, labels, nil
	}

	// Too many positives: the balancers only flip negative→positive, so
	// overshooting slots are re-drawn instead, within the round budget.
	for rounds := 1; positives > half; rounds++ {
		if rounds > d.maxRounds {
			return nil, nil, fmt.Errorf("scenegen: %s: negative→positive after %d rounds: %w",
				d.asm.Relation().Name(), rounds-1, ErrRecursionLimit)
		}
		idxs := labelIndices(labels, 1)
		redrawn, redrawnLabels, err := d.asm.Batch(len(idxs))
		if err != nil {
			return nil, nil, err
		}
		for k, i := range idxs {
			scenes[i] = redrawn[k]
			labels[i] = redrawnLabels[k]
		}
		positives = countOnes(labels)
		if positives == half {
			return scenes, labels, nil
		}
	}

	// Undershoot: flip exactly the shortfall of random negative scenes.
	negIdxs := labelIndices(labels, 0)
	need := half - positives
	perm := d.asm.rng.Perm(len(negIdxs))
	for _, pi := range perm[:need] {
		i := negIdxs[pi]
		balanced, err := d.asm.Relation().Balance(scenes[i], false, d.asm.rng)
		if err != nil {
			return nil, nil, fmt.Errorf("scenegen: %w", err)
		}
		scenes[i] = balanced
		labels[i] = 1
	}
	return scenes, labels, nil
}

// countOnes tallies positive labels.
func countOnes(labels []int) int {
	var n int
	for _, l := range labels {
		if l == 1 {
			n++
		}
	}
	return n
}

// labelIndices returns the slot indices carrying the given label.
func labelIndices(labels []int, label int) []int {
	var out []int
	for i, l := range labels {
		if l == label {
			out = append(out, i)
		}
	}
	return out
}
