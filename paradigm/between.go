package paradigm

import (
	"github.com/katalvlaran/relgrid/dataset"
	"github.com/katalvlaran/relgrid/scene"
)

// Between is the between reference-inductive-bias builder: two stacked
// horizontal references per scene, with the positive-class target grid
// between them at one end and the negative example either above both or
// below both at the opposite end.
type Between struct {
	*inductiveBias
}

// NewBetween validates cfg and partitions locations; datasets are
// materialized lazily on first access. The enumerated reference location is
// the bottom reference; the top one sits grid+1 rows higher, which the
// raised top margin keeps on canvas.
func NewBetween(cfg InductiveBiasConfig, src *Source) (*Between, error) {
	ib, err := newInductiveBias(cfg, src, func(g int) int { return 2*g + 1 })
	if err != nil {
		return nil, err
	}
	p := &Between{inductiveBias: ib}
	p.installHooks(p.createSided, p.createMiddle)
	return p, nil
}

// createSided emits one outside and one between example per (reference,
// grid cell) pair. The outside example flips a coin between above-both and
// below-both placements at the non-positive end.
func (p *Between) createSided(refs, targets []Location, train bool) (*dataset.Dataset, error) {
	addNeither := p.cfg.addNeither(train)
	shift := btoi(addNeither)

	var scenes []scene.Scene
	var labels []int
	for _, bottom := range refs {
		bottomEnd := bottom.Add(p.refLen-p.grid, 0)
		top := bottom.Add(0, p.grid+1)
		topEnd := top.Add(p.refLen-p.grid, 0)

		for _, t := range targets {
			below := t.Add(0, p.belowOffset())
			var outside, between Location
			if p.left {
				if p.rng.Float64() < 0.5 {
					outside = topEnd.Add(t.X, t.Y)
				} else {
					outside = bottomEnd.Add(below.X, below.Y)
				}
				between = bottom.Add(t.X, t.Y)
			} else {
				if p.rng.Float64() < 0.5 {
					outside = top.Add(t.X, t.Y)
				} else {
					outside = bottom.Add(below.X, below.Y)
				}
				between = bottomEnd.Add(t.X, t.Y)
			}
			scenes = append(scenes,
				p.createInput(p.src.TargetObject(outside.X, outside.Y, train),
					p.src.ReferenceObject(bottom.X, bottom.Y, train),
					p.src.ReferenceObject(top.X, top.Y, train)),
				p.createInput(p.src.TargetObject(between.X, between.Y, train),
					p.src.ReferenceObject(bottom.X, bottom.Y, train),
					p.src.ReferenceObject(top.X, top.Y, train)))
			labels = append(labels, shift, shift+1)
		}

		if addNeither {
			locs, err := p.neitherLocations(bottom, len(targets))
			if err != nil {
				return nil, err
			}
			for _, loc := range locs {
				scenes = append(scenes,
					p.createInput(p.src.TargetObject(loc.X, loc.Y, train),
						p.src.ReferenceObject(bottom.X, bottom.Y, train),
						p.src.ReferenceObject(top.X, top.Y, train)))
				labels = append(labels, 0)
			}
		}
	}
	return p.newDataset(scenes, labels)
}

// createMiddle emits triples over the references' interior columns: above
// both, below both, and between, in that order.
func (p *Between) createMiddle(refs []Location) (*dataset.Dataset, error) {
	shift := btoi(p.cfg.AddNeitherTrain)

	var scenes []scene.Scene
	var labels []int
	for _, bottom := range refs {
		top := bottom.Add(0, p.grid+1)

		for _, t := range p.middleTargets {
			below := t.Add(0, p.belowOffset())
			for _, loc := range []Location{
				top.Add(t.X, t.Y),
				bottom.Add(below.X, below.Y),
				bottom.Add(t.X, t.Y),
			} {
				scenes = append(scenes,
					p.createInput(p.src.TargetObject(loc.X, loc.Y, false),
						p.src.ReferenceObject(bottom.X, bottom.Y, false),
						p.src.ReferenceObject(top.X, top.Y, false)))
			}
			labels = append(labels, shift, shift, shift+1)
		}
	}
	return p.newDataset(scenes, labels)
}
