package paradigm

import (
	"fmt"

	"github.com/katalvlaran/relgrid/dataset"
)

// DefaultTargetGridSize is the canonical side length of the target-relative
// placement grid.
const DefaultTargetGridSize = 3

// InductiveBiasConfig configures the reference-inductive-bias builders
// (AboveBelow and Between).
type InductiveBiasConfig struct {
	Config
	// TargetGridSize is the side length g of the target grid anchored at
	// each end of the reference; 0 selects DefaultTargetGridSize.
	TargetGridSize int
	// TrainTargetLocations is the number of grid cells assigned to
	// training; 0 selects g*(g-1).
	TrainTargetLocations int
	// Side picks which reference end carries the positive grid; SideAuto
	// derives it from the seed's parity.
	Side Side
}

// inductiveBias holds the target-grid partition shared by AboveBelow and
// Between, on top of the reference-location machinery in base.
type inductiveBias struct {
	*base
	grid int
	left bool

	trainTargets  []Location
	testTargets   []Location
	middleTargets []Location
}

// newInductiveBias resolves grid defaults, raises the vertical margins so
// every grid cell stays on canvas, and partitions the target grid. The
// bottom margin needs at least g rows; the top needs minTopMargin (g for
// above/below, 2g+1 when a second reference sits above the first).
func newInductiveBias(cfg InductiveBiasConfig, src *Source, minTopMargin func(g int) int) (*inductiveBias, error) {
	g := cfg.TargetGridSize
	if g == 0 {
		g = DefaultTargetGridSize
	}
	if g < 1 {
		return nil, fmt.Errorf("paradigm: target grid size %d: %w", g, ErrBadGridSize)
	}
	if cfg.YMarginBottom < g {
		cfg.YMarginBottom = g
	}
	if top := minTopMargin(g); cfg.YMarginTop < top {
		cfg.YMarginTop = top
	}

	b, err := newBase(cfg.Config, src)
	if err != nil {
		return nil, err
	}

	nTrain := cfg.TrainTargetLocations
	if nTrain == 0 {
		nTrain = g * (g - 1)
	}
	if nTrain < 0 || nTrain > g*g {
		return nil, fmt.Errorf("paradigm: %d train target locations on a %dx%d grid: %w",
			nTrain, g, g, ErrBadTrainCount)
	}

	// Grid cells are offsets relative to a reference end: dx across the
	// grid, dy strictly above the reference row.
	cells := make([]Location, 0, g*g)
	for dx := 0; dx < g; dx++ {
		for dy := 1; dy <= g; dy++ {
			cells = append(cells, Location{X: dx, Y: dy})
		}
	}
	b.rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })

	// Middle cells sit over the reference's interior, between the two
	// end grids; empty when the reference is too short to have one.
	var middle []Location
	for dx := g; dx < b.refLen-g; dx++ {
		for dy := 1; dy <= g; dy++ {
			middle = append(middle, Location{X: dx, Y: dy})
		}
	}

	ib := &inductiveBias{
		base:          b,
		grid:          g,
		trainTargets:  cells[:nTrain],
		testTargets:   cells[nTrain:],
		middleTargets: middle,
	}
	switch cfg.Side {
	case SideLeft:
		ib.left = true
	case SideRight:
		ib.left = false
	default:
		ib.left = cfg.Seed%2 != 0
	}
	return ib, nil
}

// belowOffset mirrors a grid cell to the matching position under the
// reference row.
func (ib *inductiveBias) belowOffset() int { return -(ib.grid + 1) }

// TrainTargets returns the grid cells assigned to training.
func (ib *inductiveBias) TrainTargets() []Location { return ib.trainTargets }

// TestTargets returns the held-out grid cells.
func (ib *inductiveBias) TestTargets() []Location { return ib.testTargets }

// installHooks wires the five-condition test map and the training build
// into the lazy materialization in base. Conditions are assembled in a
// fixed order so RNG consumption is reproducible.
func (ib *inductiveBias) installHooks(
	sided func(refs, targets []Location, train bool) (*dataset.Dataset, error),
	middle func(refs []Location) (*dataset.Dataset, error),
) {
	ib.buildTrain = func() (*dataset.Dataset, error) {
		return sided(ib.trainRefs, ib.trainTargets, true)
	}
	ib.buildTests = func() (map[string]*dataset.Dataset, error) {
		conds := []struct {
			key   string
			build func() (*dataset.Dataset, error)
		}{
			{TrainReferenceTestTarget, func() (*dataset.Dataset, error) {
				return sided(ib.trainRefs, ib.testTargets, false)
			}},
			{TrainReferenceMiddleTarget, func() (*dataset.Dataset, error) {
				return middle(ib.trainRefs)
			}},
			{TestReferenceTrainTarget, func() (*dataset.Dataset, error) {
				return sided(ib.testRefs, ib.trainTargets, false)
			}},
			{TestReferenceTestTarget, func() (*dataset.Dataset, error) {
				return sided(ib.testRefs, ib.testTargets, false)
			}},
			{TestReferenceMiddleTarget, func() (*dataset.Dataset, error) {
				return middle(ib.testRefs)
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
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
