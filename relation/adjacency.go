package relation

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/relgrid/field"
	"github.com/katalvlaran/relgrid/scene"
)

// File-local constants shared by the adjacency variants.
const (
	nameAdjacency1D = "adjacent-1d"
	nameAdjacencyND = "adjacent-nd"
	// unitDistanceEps absorbs float representation noise when comparing an
	// accumulated L1 distance against exactly one unit.
	unitDistanceEps = 1e-9
	// minBalanceSpan is the narrowest positional domain in which a
	// unit-distance neighbor can always be placed in-bounds.
	minBalanceSpan = 2
)

// Adjacency1D labels a scene positive iff any two objects' values in one
// positional field differ by exactly one unit.
type Adjacency1D struct {
	fieldName string
	r         scene.Range
	gen       *field.Generator
}

// NewAdjacency1D wires the relation to fieldName, which must be a position
// field with a domain at least minBalanceSpan wide.
// Returns ErrMissingField, ErrFieldKind or ErrDomainTooSmall.
func NewAdjacency1D(layout scene.Layout, gens map[string]*field.Generator, fieldName string) (*Adjacency1D, error) {
	r, g, err := positionField(layout, gens, fieldName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", nameAdjacency1D, err)
	}
	if g.MaxCoord()-g.MinCoord() < minBalanceSpan {
		return nil, fmt.Errorf("%s: field %q spans [%d,%d): %w",
			nameAdjacency1D, fieldName, g.MinCoord(), g.MaxCoord(), ErrDomainTooSmall)
	}
	return &Adjacency1D{fieldName: fieldName, r: r, gen: g}, nil
}

// Name implements Relation.
func (a *Adjacency1D) Name() string { return nameAdjacency1D }

// Evaluate reports whether any pair of objects sits at exactly unit distance
// in the relevant field.
// Complexity: O(objects²).
func (a *Adjacency1D) Evaluate(sc scene.Scene) bool {
	for i := 0; i < len(sc); i++ {
		for j := i + 1; j < len(sc); j++ {
			d := math.Abs(sc[i].Slice(a.r)[0] - sc[j].Slice(a.r)[0])
			if math.Abs(d-1) < unitDistanceEps {
				return true
			}
		}
	}
	return false
}

// Balance picks two distinct random slots, moves one onto the other's
// coordinate, then shifts it by exactly one unit; at domain edges the shift
// is redirected inward so the result stays in-bounds.
// Only negative scenes are supported.
func (a *Adjacency1D) Balance(sc scene.Scene, current bool, rng *rand.Rand) (scene.Scene, error) {
	if err := rejectPositive(nameAdjacency1D, current); err != nil {
		return nil, err
	}
	if len(sc) < 2 {
		return nil, fmt.Errorf("%s: %d objects: %w", nameAdjacency1D, len(sc), ErrSceneTooSmall)
	}
	r := balanceRNG(rng)
	perm := r.Perm(len(sc))
	modify, anchor := perm[0], perm[1]

	v := sc[anchor].Slice(a.r)[0]
	v = shiftUnit(v, a.gen, r)
	sc[modify].Slice(a.r)[0] = v
	return sc, nil
}

// shiftUnit moves v by one unit in a random direction, redirecting inward at
// the domain boundaries so the result remains in [MinCoord, MaxCoord).
func shiftUnit(v float64, g *field.Generator, rng *rand.Rand) float64 {
	switch {
	case v == float64(g.MinCoord()):
		return float64(g.MinCoord() + 1)
	case v == float64(g.MaxCoord()-1):
		return float64(g.MaxCoord() - 2)
	default:
		if rng.Intn(2) == 0 {
			return v - 1
		}
		return v + 1
	}
}

// AdjacencyND labels a scene positive iff any two objects sit at exactly
// unit L1 distance over the concatenated position fields.
type AdjacencyND struct {
	pos positional
}

// NewAdjacencyND wires the relation to the named position fields, all of
// which must span at least minBalanceSpan.
func NewAdjacencyND(layout scene.Layout, gens map[string]*field.Generator, positionFields []string) (*AdjacencyND, error) {
	if len(positionFields) == 0 {
		return nil, fmt.Errorf("%s: no position fields: %w", nameAdjacencyND, ErrMissingField)
	}
	p, err := newPositional(layout, gens, positionFields)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", nameAdjacencyND, err)
	}
	for i, g := range p.gens {
		if g.MaxCoord()-g.MinCoord() < minBalanceSpan {
			return nil, fmt.Errorf("%s: field %q spans [%d,%d): %w",
				nameAdjacencyND, p.names[i], g.MinCoord(), g.MaxCoord(), ErrDomainTooSmall)
		}
	}
	return &AdjacencyND{pos: p}, nil
}

// Name implements Relation.
func (a *AdjacencyND) Name() string { return nameAdjacencyND }

// Evaluate reports whether any pair of objects sits at exactly unit L1
// distance over the position fields.
// Complexity: O(objects² × fields).
func (a *AdjacencyND) Evaluate(sc scene.Scene) bool {
	for i := 0; i < len(sc); i++ {
		for j := i + 1; j < len(sc); j++ {
			var d float64
			for _, r := range a.pos.ranges {
				for k := r.Start; k < r.End; k++ {
					d += math.Abs(sc[i][k] - sc[j][k])
				}
			}
			if math.Abs(d-1) < unitDistanceEps {
				return true
			}
		}
	}
	return false
}

// Balance copies every position field from a random anchor slot onto another
// random slot, then perturbs one uniformly chosen axis by exactly one unit
// with the same edge redirection as the 1-D variant.
func (a *AdjacencyND) Balance(sc scene.Scene, current bool, rng *rand.Rand) (scene.Scene, error) {
	if err := rejectPositive(nameAdjacencyND, current); err != nil {
		return nil, err
	}
	if len(sc) < 2 {
		return nil, fmt.Errorf("%s: %d objects: %w", nameAdjacencyND, len(sc), ErrSceneTooSmall)
	}
	r := balanceRNG(rng)
	perm := r.Perm(len(sc))
	modify, anchor := perm[0], perm[1]

	for _, fr := range a.pos.ranges {
		sc[modify].CopySlice(fr, sc[anchor].Slice(fr))
	}

	axis := r.Intn(len(a.pos.ranges))
	fr, g := a.pos.ranges[axis], a.pos.gens[axis]
	sc[modify].Slice(fr)[0] = shiftUnit(sc[modify].Slice(fr)[0], g, r)
	return sc, nil
}
