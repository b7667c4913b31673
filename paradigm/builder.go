package paradigm

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/relgrid/dataset"
	"github.com/katalvlaran/relgrid/scene"
)

// base carries the machinery shared by all paradigm builders: the reference
// location partition, the placement RNG, and lazy dataset materialization.
// Concrete builders install their assembly hooks at construction.
type base struct {
	cfg    Config
	src    *Source
	rng    *rand.Rand
	refLen int

	trainRefs []Location
	testRefs  []Location

	buildTrain func() (*dataset.Dataset, error)
	buildTests func() (map[string]*dataset.Dataset, error)

	built      bool
	buildErr   error
	training   *dataset.Dataset
	validation *dataset.Dataset
	tests      map[string]*dataset.Dataset
}

// newBase validates cfg, enumerates all legal reference locations under the
// configured margins, shuffles them, and splits them into train and test
// partitions. Location order before the shuffle is x-major.
func newBase(cfg Config, src *Source) (*base, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	refLen := src.ReferenceLength()

	var candidates []Location
	for x := cfg.XMargin; x < cfg.XMax-cfg.XMargin-refLen; x++ {
		for y := cfg.YMarginBottom; y < cfg.YMax-cfg.YMarginTop; y++ {
			candidates = append(candidates, Location{X: x, Y: y})
		}
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("paradigm: reference length %d on %dx%d canvas with margins (%d,%d,%d): %w",
			refLen, cfg.XMax, cfg.YMax, cfg.XMargin, cfg.YMarginBottom, cfg.YMarginTop, ErrNoLegalLocations)
	}

	rng := rngFromSeed(cfg.Seed)
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	nTrain := cfg.TrainReferenceLocations
	if nTrain == 0 {
		nTrain = int(float64(len(candidates)) * cfg.PropTrainReference)
	}
	if nTrain < 0 || nTrain > len(candidates) {
		return nil, fmt.Errorf("paradigm: %d train reference locations of %d candidates: %w",
			nTrain, len(candidates), ErrBadTrainCount)
	}

	return &base{
		cfg:       cfg,
		src:       src,
		rng:       rng,
		refLen:    refLen,
		trainRefs: candidates[:nTrain],
		testRefs:  candidates[nTrain:],
	}, nil
}

// TrainReferences returns the reference locations assigned to training.
func (b *base) TrainReferences() []Location { return b.trainRefs }

// TestReferences returns the held-out reference locations.
func (b *base) TestReferences() []Location { return b.testRefs }

// TrainingDataset materializes (once) and returns the training split.
func (b *base) TrainingDataset() (*dataset.Dataset, error) {
	if err := b.materialize(); err != nil {
		return nil, err
	}
	return b.training, nil
}

// ValidationDataset returns the validation split carved out of training.
// Returns ErrNoValidationSplit when the carve-out proportion is zero.
func (b *base) ValidationDataset() (*dataset.Dataset, error) {
	if err := b.materialize(); err != nil {
		return nil, err
	}
	if b.validation == nil {
		return nil, ErrNoValidationSplit
	}
	return b.validation, nil
}

// TestDatasets returns the held-out test conditions keyed by condition name.
// Every declared condition key is present; a condition with no legal
// placements maps to an empty dataset.
func (b *base) TestDatasets() (map[string]*dataset.Dataset, error) {
	if err := b.materialize(); err != nil {
		return nil, err
	}
	return b.tests, nil
}

// materialize runs the installed assembly hooks exactly once, caching both
// the datasets and any error.
func (b *base) materialize() error {
	if b.built {
		return b.buildErr
	}
	b.built = true

	full, err := b.buildTrain()
	if err != nil {
		b.buildErr = err
		return err
	}
	if b.cfg.PropTrainToValidation > 0 && full.Len() > 1 {
		train, valid, err := b.splitDataset(full, 1-b.cfg.PropTrainToValidation)
		if err != nil {
			b.buildErr = err
			return err
		}
		b.training, b.validation = train, valid
	} else {
		b.training = full
	}

	tests, err := b.buildTests()
	if err != nil {
		b.buildErr = err
		return err
	}
	b.tests = tests
	return nil
}

// splitDataset permutes d and splits it with the first chunk holding
// floor(len*propFirst) examples.
func (b *base) splitDataset(d *dataset.Dataset, propFirst float64) (first, second *dataset.Dataset, err error) {
	perm := b.rng.Perm(d.Len())
	n := int(float64(d.Len()) * propFirst)
	first, err = d.Select(perm[:n])
	if err != nil {
		return nil, nil, err
	}
	second, err = d.Select(perm[n:])
	if err != nil {
		return nil, nil, err
	}
	return first, second, nil
}

// geometry returns the canvas geometry recorded on every emitted dataset.
func (b *base) geometry() dataset.Geometry {
	return dataset.Geometry{
		XMax:            b.cfg.XMax,
		YMax:            b.cfg.YMax,
		PositionIndices: [2]int{0, 1},
	}
}

// newDataset wraps scenes and labels with the builder's geometry.
func (b *base) newDataset(scenes []scene.Scene, labels []int) (*dataset.Dataset, error) {
	return dataset.New(scenes, labels, b.geometry())
}

// createInput assembles one example scene: target rows first, then each
// reference's rows in order.
func (b *base) createInput(target []scene.Object, refs ...[]scene.Object) scene.Scene {
	sc := make(scene.Scene, 0, len(target))
	sc = append(sc, target...)
	for _, r := range refs {
		sc = append(sc, r...)
	}
	return sc
}

// neitherLocations samples count off-to-the-side target locations for the
// given reference: an x outside the reference's horizontal extent and any y.
// All x draws happen before all y draws.
func (b *base) neitherLocations(ref Location, count int) ([]Location, error) {
	validX := make([]int, 0, b.cfg.XMax)
	for x := 0; x < b.cfg.XMax; x++ {
		if x >= ref.X && x < ref.X+b.refLen {
			continue
		}
		validX = append(validX, x)
	}
	if len(validX) == 0 {
		return nil, fmt.Errorf("paradigm: reference at x=%d spans the full canvas width %d: %w",
			ref.X, b.cfg.XMax, ErrNoLegalLocations)
	}
	xs := make([]int, count)
	for i := range xs {
		xs[i] = validX[b.rng.Intn(len(validX))]
	}
	locs := make([]Location, count)
	for i := range locs {
		locs[i] = Location{X: xs[i], Y: b.rng.Intn(b.cfg.YMax)}
	}
	return locs, nil
}
