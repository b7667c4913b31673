package relation

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/relgrid/field"
	"github.com/katalvlaran/relgrid/scene"
)

// Sentinel errors for relation construction and balancing.
var (
	// ErrMissingField indicates the layout lacks a field the relation requires.
	ErrMissingField = errors.New("relation: layout is missing a required field")
	// ErrFieldKind indicates a named field has the wrong kind for the relation.
	ErrFieldKind = errors.New("relation: field has the wrong kind for this relation")
	// ErrBadIndex indicates a category index outside the field's one-hot range.
	ErrBadIndex = errors.New("relation: category index out of range")
	// ErrBadCategorySpace indicates a categorical field too narrow for the
	// relation's balancer to recolor within.
	ErrBadCategorySpace = errors.New("relation: categorical field needs at least two categories")
	// ErrDomainTooSmall indicates a positional domain too narrow to place a
	// unit-distance neighbor in-bounds.
	ErrDomainTooSmall = errors.New("relation: position domain too small to balance")
	// ErrUnsupportedDirection indicates Balance was called on a positive scene;
	// all balancers here only convert negative scenes to positive ones.
	ErrUnsupportedDirection = errors.New("relation: balancer only flips negative scenes to positive")
	// ErrSceneTooSmall indicates a pairwise balancer received fewer than two objects.
	ErrSceneTooSmall = errors.New("relation: scene must contain at least two objects")
	// ErrPlacementLimit indicates collision resolution exceeded its attempt bound.
	ErrPlacementLimit = errors.New("relation: placement attempt limit exceeded")
)

// Relation is the shared capability set of every relation variant:
// a pure predicate over a scene plus an in-place label-flipping balancer.
//
// Balance takes exclusive ownership of sc for the duration of the mutation
// and returns it; implementations retain no reference afterwards.
type Relation interface {
	// Name identifies the relation in wrapped errors and diagnostics.
	Name() string
	// Evaluate computes the label for sc without mutating it.
	Evaluate(sc scene.Scene) bool
	// Balance mutates sc so that Evaluate flips from current to !current.
	// Only current == false is supported.
	Balance(sc scene.Scene, current bool, rng *rand.Rand) (scene.Scene, error)
}

// defaultRNGSeed is the fixed seed used when Balance receives a nil RNG.
const defaultRNGSeed int64 = 1

// balanceRNG resolves the RNG for a Balance call (nil ⇒ fixed stream).
func balanceRNG(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return rand.New(rand.NewSource(defaultRNGSeed))
	}
	return rng
}

// rejectPositive enforces the shared negative→positive contract.
func rejectPositive(name string, current bool) error {
	if current {
		return fmt.Errorf("%s: balance requested for positive scene: %w", name, ErrUnsupportedDirection)
	}
	return nil
}

// positionField resolves one named field as a positional coordinate,
// validating presence and kind.
func positionField(layout scene.Layout, gens map[string]*field.Generator, name string) (scene.Range, *field.Generator, error) {
	r, ok := layout.Range(name)
	if !ok {
		return scene.Range{}, nil, fmt.Errorf("field %q: %w", name, ErrMissingField)
	}
	g, ok := gens[name]
	if !ok {
		return scene.Range{}, nil, fmt.Errorf("field %q: %w", name, ErrMissingField)
	}
	if g.Kind() != field.KindPosition {
		return scene.Range{}, nil, fmt.Errorf("field %q is %s, want position: %w", name, g.Kind(), ErrFieldKind)
	}
	return r, g, nil
}

// categoryField resolves one named field as a one-hot categorical,
// validating presence and kind.
func categoryField(layout scene.Layout, gens map[string]*field.Generator, name string) (scene.Range, *field.Generator, error) {
	r, ok := layout.Range(name)
	if !ok {
		return scene.Range{}, nil, fmt.Errorf("field %q: %w", name, ErrMissingField)
	}
	g, ok := gens[name]
	if !ok {
		return scene.Range{}, nil, fmt.Errorf("field %q: %w", name, ErrMissingField)
	}
	if g.Kind() != field.KindCategory {
		return scene.Range{}, nil, fmt.Errorf("field %q is %s, want category: %w", name, g.Kind(), ErrFieldKind)
	}
	return r, g, nil
}

// oneHot builds a one-hot vector of the given width with index idx active.
func oneHot(width, idx int) []float64 {
	v := make([]float64, width)
	v[idx] = 1
	return v
}

// positional bundles the position-field wiring shared by relations that need
// to reason about object locations (collision checks, relocation).
type positional struct {
	names  []string
	ranges []scene.Range
	gens   []*field.Generator
}

// newPositional resolves and validates the named position fields in order.
func newPositional(layout scene.Layout, gens map[string]*field.Generator, names []string) (positional, error) {
	p := positional{
		names:  append([]string(nil), names...),
		ranges: make([]scene.Range, 0, len(names)),
		gens:   make([]*field.Generator, 0, len(names)),
	}
	for _, name := range names {
		r, g, err := positionField(layout, gens, name)
		if err != nil {
			return positional{}, err
		}
		p.ranges = append(p.ranges, r)
		p.gens = append(p.gens, g)
	}
	return p, nil
}

// occupied reports whether any object in sc sits exactly at pos, where pos
// holds the concatenated values of the position fields in declaration order.
// Complexity: O(objects × fields).
func (p positional) occupied(sc scene.Scene, pos []float64) bool {
	for _, obj := range sc {
		match := true
		k := 0
		for _, r := range p.ranges {
			for _, v := range obj.Slice(r) {
				if v != pos[k] {
					match = false
				}
				k++
			}
		}
		if match {
			return true
		}
	}
	return false
}
