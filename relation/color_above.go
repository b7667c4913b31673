package relation

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/relgrid/field"
	"github.com/katalvlaran/relgrid/scene"
)

const nameColorAbove = "color-above-color"

// Defaults for ColorAboveOptions (no magic numbers at call sites).
const (
	// DefaultStuckToPerturbX is how many collision retries keep the x
	// coordinate fixed before the horizontal coordinate is also randomized.
	DefaultStuckToPerturbX = 10
	// DefaultMaxPlacementAttempts bounds the collision-resolution loop.
	DefaultMaxPlacementAttempts = 100
)

// ColorAboveOptions tunes the color-above-color relation.
type ColorAboveOptions struct {
	// ColorField names the one-hot categorical field carrying object color.
	ColorField string
	// AboveIndex / BelowIndex select the two categories being compared.
	AboveIndex int
	BelowIndex int
	// PositionFields names the horizontal and vertical coordinate fields,
	// in that order.
	PositionFields [2]string
	// StuckToPerturbX escalates collision resolution: after this many failed
	// attempts the horizontal coordinate is resampled too.
	StuckToPerturbX int
	// MaxPlacementAttempts is the hard bound on collision resolution;
	// exceeding it fails with ErrPlacementLimit rather than looping forever.
	MaxPlacementAttempts int
}

// DefaultColorAboveOptions returns the canonical settings: color field
// "color" comparing category 0 against 1 over ("x", "y").
func DefaultColorAboveOptions() ColorAboveOptions {
	return ColorAboveOptions{
		ColorField:           "color",
		AboveIndex:           0,
		BelowIndex:           1,
		PositionFields:       [2]string{"x", "y"},
		StuckToPerturbX:      DefaultStuckToPerturbX,
		MaxPlacementAttempts: DefaultMaxPlacementAttempts,
	}
}

// ColorAboveColor labels a scene positive iff there exists an above-color
// object whose vertical coordinate is ≥ every below-color object's vertical
// coordinate. With no above-color object the label is negative; with no
// below-color object it is vacuously positive.
type ColorAboveColor struct {
	opts       ColorAboveOptions
	pos        positional
	xRange     scene.Range
	yRange     scene.Range
	xGen       *field.Generator
	yGen       *field.Generator
	colorRange scene.Range
	colorGen   *field.Generator
	aboveHot   []float64
	belowHot   []float64
}

// NewColorAboveColor validates the wiring declared in opts against the
// layout. Returns ErrMissingField, ErrFieldKind or ErrBadIndex.
func NewColorAboveColor(layout scene.Layout, gens map[string]*field.Generator, opts ColorAboveOptions) (*ColorAboveColor, error) {
	p, err := newPositional(layout, gens, opts.PositionFields[:])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", nameColorAbove, err)
	}
	cr, cg, err := categoryField(layout, gens, opts.ColorField)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", nameColorAbove, err)
	}
	if opts.AboveIndex < 0 || opts.AboveIndex >= cg.Categories() ||
		opts.BelowIndex < 0 || opts.BelowIndex >= cg.Categories() {
		return nil, fmt.Errorf("%s: above=%d below=%d of %d categories: %w",
			nameColorAbove, opts.AboveIndex, opts.BelowIndex, cg.Categories(), ErrBadIndex)
	}
	if opts.StuckToPerturbX <= 0 {
		opts.StuckToPerturbX = DefaultStuckToPerturbX
	}
	if opts.MaxPlacementAttempts <= 0 {
		opts.MaxPlacementAttempts = DefaultMaxPlacementAttempts
	}
	return &ColorAboveColor{
		opts:       opts,
		pos:        p,
		xRange:     p.ranges[0],
		yRange:     p.ranges[1],
		xGen:       p.gens[0],
		yGen:       p.gens[1],
		colorRange: cr,
		colorGen:   cg,
		aboveHot:   oneHot(cg.Categories(), opts.AboveIndex),
		belowHot:   oneHot(cg.Categories(), opts.BelowIndex),
	}, nil
}

// Name implements Relation.
func (c *ColorAboveColor) Name() string { return nameColorAbove }

// aboveBelowYs collects the vertical coordinates of above- and below-colored
// objects in slot order.
func (c *ColorAboveColor) aboveBelowYs(sc scene.Scene) (above, below []float64) {
	for _, obj := range sc {
		switch {
		case obj.EqualSlice(c.colorRange, c.aboveHot):
			above = append(above, obj.Slice(c.yRange)[0])
		case obj.EqualSlice(c.colorRange, c.belowHot):
			below = append(below, obj.Slice(c.yRange)[0])
		}
	}
	return above, below
}

// Evaluate implements the predicate. "Some above-colored object is ≥ every
// below-colored object" is equivalent to comparing the two maxima.
// Complexity: O(objects).
func (c *ColorAboveColor) Evaluate(sc scene.Scene) bool {
	above, below := c.aboveBelowYs(sc)
	if len(above) == 0 {
		return false
	}
	if len(below) == 0 {
		return true
	}
	return maxOf(above) >= maxOf(below)
}

// Balance forces the relation positive: it guarantees an above-colored
// object exists (recoloring a random slot if needed), then relocates one
// above-colored object to a vertical coordinate ≥ the highest below-colored
// object, resampling until the target cell is unoccupied. After
// StuckToPerturbX failed attempts the horizontal coordinate is randomized
// too; after MaxPlacementAttempts the loop fails with ErrPlacementLimit.
func (c *ColorAboveColor) Balance(sc scene.Scene, current bool, rng *rand.Rand) (scene.Scene, error) {
	if err := rejectPositive(nameColorAbove, current); err != nil {
		return nil, err
	}
	if len(sc) == 0 {
		return nil, fmt.Errorf("%s: empty scene: %w", nameColorAbove, ErrSceneTooSmall)
	}
	r := balanceRNG(rng)

	// Ensure at least one above-colored object exists.
	aboveIdxs := c.matchingIndices(sc, c.aboveHot)
	if len(aboveIdxs) == 0 {
		idx := r.Intn(len(sc))
		sc[idx].CopySlice(c.colorRange, c.aboveHot)
		aboveIdxs = []int{idx}
	}

	// Floor for the relocated object's vertical coordinate.
	maxBelow := c.yGen.MinCoord()
	if _, below := c.aboveBelowYs(sc); len(below) > 0 {
		maxBelow = int(maxOf(below))
	}

	modify := aboveIdxs[r.Intn(len(aboveIdxs))]

	// Resample until the tentative cell is unoccupied, with the escalating
	// strategy and the hard attempt bound.
	for attempt := 1; ; attempt++ {
		if attempt > c.opts.MaxPlacementAttempts {
			return nil, fmt.Errorf("%s: negative→positive: %d placement attempts: %w",
				nameColorAbove, attempt-1, ErrPlacementLimit)
		}
		nx := sc[modify].Slice(c.xRange)[0]
		if attempt > c.opts.StuckToPerturbX {
			nx = float64(c.xGen.MinCoord() + r.Intn(c.xGen.MaxCoord()-c.xGen.MinCoord()))
		}
		ny := float64(maxBelow + r.Intn(c.yGen.MaxCoord()-maxBelow))
		if c.pos.occupied(sc, []float64{nx, ny}) {
			continue
		}
		sc[modify].Slice(c.xRange)[0] = nx
		sc[modify].Slice(c.yRange)[0] = ny
		return sc, nil
	}
}

// matchingIndices returns the slots whose color field equals hot exactly.
func (c *ColorAboveColor) matchingIndices(sc scene.Scene, hot []float64) []int {
	var out []int
	for i, obj := range sc {
		if obj.EqualSlice(c.colorRange, hot) {
			out = append(out, i)
		}
	}
	return out
}

// maxOf returns the maximum of a non-empty slice.
func maxOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
