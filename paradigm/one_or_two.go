package paradigm

import (
	"fmt"

	"github.com/katalvlaran/relgrid/dataset"
	"github.com/katalvlaran/relgrid/scene"
)

// Defaults for OneOrTwoConfig.
const (
	// DefaultTargetGridHeight is the canonical vertical target grid extent.
	DefaultTargetGridHeight = 8
	// DefaultPropTrainTargets is the per-band fraction of target grid
	// cells assigned to training.
	DefaultPropTrainTargets = 0.5
)

// OneOrTwoConfig configures the one-or-two-reference-objects builder.
type OneOrTwoConfig struct {
	Config
	// BetweenRelation labels targets by the between relation instead of
	// above/below. It also selects two references under RefAuto.
	BetweenRelation bool
	// References overrides the reference-object count.
	References ReferenceCount
	// PropTrainTargetLocations is the per-band train fraction of target
	// grid cells; 0 selects DefaultPropTrainTargets.
	PropTrainTargetLocations float64
	// TargetGridHeight is the vertical grid extent; must be divisible by
	// 4; 0 selects DefaultTargetGridHeight.
	TargetGridHeight int
}

// OneOrTwo is the one-or-two-reference-objects builder. Scenes anchor a
// target grid of reference-length width at each reference location's
// bottom-left corner; references sit at fixed heights inside the grid and
// targets take bands above or below them. Unlike the inductive-bias
// builders there is no middle zone, so only three test conditions exist.
type OneOrTwo struct {
	*base
	gridHeight int
	twoRefs    bool

	singleHeight int
	bottomHeight int
	topHeight    int

	trainTargets []Location
	testTargets  []Location
}

// NewOneOrTwo validates cfg and partitions locations; datasets are
// materialized lazily on first access.
func NewOneOrTwo(cfg OneOrTwoConfig, src *Source) (*OneOrTwo, error) {
	h := cfg.TargetGridHeight
	if h == 0 {
		h = DefaultTargetGridHeight
	}
	if h < 4 || h%4 != 0 {
		return nil, fmt.Errorf("paradigm: target grid height %d: %w", h, ErrBadGridHeight)
	}
	prop := cfg.PropTrainTargetLocations
	if prop == 0 {
		prop = DefaultPropTrainTargets
	}
	if prop < 0 || prop > 1 {
		return nil, fmt.Errorf("paradigm: train target proportion %v: %w", prop, ErrBadProportion)
	}

	two := cfg.References == RefTwo ||
		(cfg.References == RefAuto && cfg.BetweenRelation)

	if cfg.YMarginTop < h {
		cfg.YMarginTop = h + 1 + btoi(two)
	}

	b, err := newBase(cfg.Config, src)
	if err != nil {
		return nil, err
	}

	p := &OneOrTwo{
		base:         b,
		gridHeight:   h,
		twoRefs:      two,
		singleHeight: h / 2,
		bottomHeight: h / 4,
		topHeight:    h * 3 / 4,
	}
	p.trainTargets, p.testTargets = p.splitTargetGrid(prop)

	p.buildTrain = func() (*dataset.Dataset, error) {
		return p.createSingle(p.trainRefs, p.trainTargets, true)
	}
	p.buildTests = func() (map[string]*dataset.Dataset, error) {
		conds := []struct {
			key   string
			build func() (*dataset.Dataset, error)
		}{
			{TrainReferenceTestTarget, func() (*dataset.Dataset, error) {
				return p.createSingle(p.trainRefs, p.testTargets, false)
			}},
			{TestReferenceTrainTarget, func() (*dataset.Dataset, error) {
				return p.createSingle(p.testRefs, p.trainTargets, false)
			}},
			{TestReferenceTestTarget, func() (*dataset.Dataset, error) {
				return p.createSingle(p.testRefs, p.testTargets, false)
			}},
		}
		out := make(map[string]*dataset.Dataset, len(conds))
		for _, c := range conds {
			d, err := c.build()
			if err != nil {
				return nil, err
			}
			out[c.key] = d
		}
		return out, nil
	}
	return p, nil
}

// TwoReferences reports whether scenes carry two reference objects.
func (p *OneOrTwo) TwoReferences() bool { return p.twoRefs }

// TrainTargets returns the grid cells assigned to training.
func (p *OneOrTwo) TrainTargets() []Location { return p.trainTargets }

// TestTargets returns the held-out grid cells.
func (p *OneOrTwo) TestTargets() []Location { return p.testTargets }

// splitTargetGrid enumerates the target grid band by band (bands are the
// vertical zones the reference heights cut the grid into), splits each
// band independently at prop, and concatenates the per-band splits. The
// per-band split keeps both classes represented on each side.
func (p *OneOrTwo) splitTargetGrid(prop float64) (train, test []Location) {
	type band struct{ lo, hi int }
	var bands []band
	if p.twoRefs {
		bands = []band{
			{0, p.bottomHeight},
			{p.bottomHeight, p.topHeight},
			{p.topHeight, p.gridHeight},
		}
	} else {
		bands = []band{
			{0, p.singleHeight},
			{p.singleHeight, p.gridHeight},
		}
	}

	for _, bd := range bands {
		var cells []Location
		for dx := 0; dx < p.refLen; dx++ {
			for dy := bd.lo; dy < bd.hi; dy++ {
				cells = append(cells, Location{X: dx, Y: dy})
			}
		}
		p.rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
		n := int(float64(len(cells)) * prop)
		train = append(train, cells[:n]...)
		test = append(test, cells[n:]...)
	}
	return train, test
}

// createSingle emits one example per (reference corner, grid cell) pair.
// Cells above a reference shift up to skip its row, so the reference rows
// never collide with target placements.
func (p *OneOrTwo) createSingle(refs, targets []Location, train bool) (*dataset.Dataset, error) {
	addNeither := p.cfg.addNeither(train)
	shift := btoi(addNeither)

	var scenes []scene.Scene
	var labels []int

	if p.twoRefs {
		for _, corner := range refs {
			bottomRef := corner.Add(0, p.bottomHeight)
			// +1 skips over the bottom reference's row.
			topRef := corner.Add(0, p.topHeight+1)

			for _, t := range targets {
				loc := corner.Add(t.X, t.Y)
				label := 0
				if t.Y >= p.topHeight { // above both
					loc = loc.Add(0, 2)
				} else if t.Y >= p.bottomHeight { // between
					loc = loc.Add(0, 1)
					label = 1
				}
				scenes = append(scenes,
					p.createInput(p.src.TargetObject(loc.X, loc.Y, train),
						p.src.ReferenceObject(bottomRef.X, bottomRef.Y, train),
						p.src.ReferenceObject(topRef.X, topRef.Y, train)))
				labels = append(labels, label+shift)
			}
		}
	} else {
		for _, corner := range refs {
			refLoc := corner.Add(0, p.singleHeight)

			for _, t := range targets {
				loc := corner.Add(t.X, t.Y)
				label := 0
				if t.Y >= p.singleHeight { // above
					loc = loc.Add(0, 1)
					label = 1
				}
				scenes = append(scenes,
					p.createInput(p.src.TargetObject(loc.X, loc.Y, train),
						p.src.ReferenceObject(refLoc.X, refLoc.Y, train)))
				labels = append(labels, label+shift)
			}
		}
	}

	if addNeither {
		total := len(targets) / 2
		for _, corner := range refs {
			locs, err := p.neitherLocations(corner, total)
			if err != nil {
				return nil, err
			}
			for _, loc := range locs {
				if p.twoRefs {
					bottomRef := corner.Add(0, p.bottomHeight)
					topRef := corner.Add(0, p.topHeight)
					scenes = append(scenes,
						p.createInput(p.src.TargetObject(loc.X, loc.Y, train),
							p.src.ReferenceObject(bottomRef.X, bottomRef.Y, train),
							p.src.ReferenceObject(topRef.X, topRef.Y, train)))
				} else {
					refLoc := corner.Add(0, p.singleHeight)
					scenes = append(scenes,
						p.createInput(p.src.TargetObject(loc.X, loc.Y, train),
							p.src.ReferenceObject(refLoc.X, refLoc.Y, train)))
				}
				labels = append(labels, 0)
			}
		}
	}

	return p.newDataset(scenes, labels)
}
