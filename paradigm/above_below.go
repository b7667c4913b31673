package paradigm

import (
	"github.com/katalvlaran/relgrid/dataset"
	"github.com/katalvlaran/relgrid/scene"
)

// AboveBelow is the above/below reference-inductive-bias builder: one
// horizontal reference per scene, with the positive-class target grid
// anchored above one reference end and the paired example mirrored below
// the opposite end.
type AboveBelow struct {
	*inductiveBias
}

// NewAboveBelow validates cfg and partitions locations; datasets are
// materialized lazily on first access.
func NewAboveBelow(cfg InductiveBiasConfig, src *Source) (*AboveBelow, error) {
	ib, err := newInductiveBias(cfg, src, func(g int) int { return g })
	if err != nil {
		return nil, err
	}
	p := &AboveBelow{inductiveBias: ib}
	p.installHooks(p.createSided, p.createMiddle)
	return p, nil
}

// createSided emits one above and one below example per (reference, grid
// cell) pair. With the left side positive, the above target anchors at the
// reference start and the below target under the reference's far end; with
// the right side positive, the two swap ends.
func (p *AboveBelow) createSided(refs, targets []Location, train bool) (*dataset.Dataset, error) {
	addNeither := p.cfg.addNeither(train)
	shift := btoi(addNeither)

	var scenes []scene.Scene
	var labels []int
	for _, ref := range refs {
		refEnd := ref.Add(p.refLen-p.grid, 0)

		for _, t := range targets {
			below := t.Add(0, p.belowOffset())
			var above, under Location
			if p.left {
				above = ref.Add(t.X, t.Y)
				under = refEnd.Add(below.X, below.Y)
			} else {
				above = refEnd.Add(t.X, t.Y)
				under = ref.Add(below.X, below.Y)
			}
			scenes = append(scenes,
				p.createInput(p.src.TargetObject(above.X, above.Y, train),
					p.src.ReferenceObject(ref.X, ref.Y, train)),
				p.createInput(p.src.TargetObject(under.X, under.Y, train),
					p.src.ReferenceObject(ref.X, ref.Y, train)))
			labels = append(labels, shift, shift+1)
		}

		if addNeither {
			locs, err := p.neitherLocations(ref, len(targets))
			if err != nil {
				return nil, err
			}
			for _, loc := range locs {
				scenes = append(scenes,
					p.createInput(p.src.TargetObject(loc.X, loc.Y, train),
						p.src.ReferenceObject(ref.X, ref.Y, train)))
				labels = append(labels, 0)
			}
		}
	}
	return p.newDataset(scenes, labels)
}

// createMiddle emits above/below pairs over the reference's interior
// columns, the region no training grid ever covers. Labels keep the
// training shift so the class space lines up with the training split.
func (p *AboveBelow) createMiddle(refs []Location) (*dataset.Dataset, error) {
	shift := btoi(p.cfg.AddNeitherTrain)

	var scenes []scene.Scene
	var labels []int
	for _, ref := range refs {
		for _, t := range p.middleTargets {
			below := t.Add(0, p.belowOffset())
			above := ref.Add(t.X, t.Y)
			under := ref.Add(below.X, below.Y)
			scenes = append(scenes,
				p.createInput(p.src.TargetObject(above.X, above.Y, false),
					p.src.ReferenceObject(ref.X, ref.Y, false)),
				p.createInput(p.src.TargetObject(under.X, under.Y, false),
					p.src.ReferenceObject(ref.X, ref.Y, false)))
			labels = append(labels, shift, shift+1)
		}
	}
	return p.newDataset(scenes, labels)
}
