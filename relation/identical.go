package relation

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/relgrid/field"
	"github.com/katalvlaran/relgrid/scene"
)

const nameIdentical = "identical-objects"

// IdenticalObjects labels a scene positive iff any two objects share
// identical values across the declared property fields (e.g. color+shape).
type IdenticalObjects struct {
	names  []string
	ranges []scene.Range
}

// NewIdenticalObjects resolves the declared property fields in order.
// Returns ErrMissingField when a name is absent from the layout.
func NewIdenticalObjects(layout scene.Layout, gens map[string]*field.Generator, propertyFields []string) (*IdenticalObjects, error) {
	if len(propertyFields) == 0 {
		return nil, fmt.Errorf("%s: no property fields: %w", nameIdentical, ErrMissingField)
	}
	ranges := make([]scene.Range, 0, len(propertyFields))
	for _, name := range propertyFields {
		r, ok := layout.Range(name)
		if !ok {
			return nil, fmt.Errorf("%s: field %q: %w", nameIdentical, name, ErrMissingField)
		}
		if _, ok = gens[name]; !ok {
			return nil, fmt.Errorf("%s: field %q: %w", nameIdentical, name, ErrMissingField)
		}
		ranges = append(ranges, r)
	}
	return &IdenticalObjects{
		names:  append([]string(nil), propertyFields...),
		ranges: ranges,
	}, nil
}

// Name implements Relation.
func (r *IdenticalObjects) Name() string { return nameIdentical }

// Evaluate reports whether any pair of objects agrees on every declared
// property field.
// Complexity: O(objects² × property width).
func (r *IdenticalObjects) Evaluate(sc scene.Scene) bool {
	for i := 0; i < len(sc); i++ {
		for j := i + 1; j < len(sc); j++ {
			if r.propertiesEqual(sc[i], sc[j]) {
				return true
			}
		}
	}
	return false
}

// Balance copies one random slot's property fields onto another distinct
// random slot, guaranteeing a matching pair.
func (r *IdenticalObjects) Balance(sc scene.Scene, current bool, rng *rand.Rand) (scene.Scene, error) {
	if err := rejectPositive(nameIdentical, current); err != nil {
		return nil, err
	}
	if len(sc) < 2 {
		return nil, fmt.Errorf("%s: %d objects: %w", nameIdentical, len(sc), ErrSceneTooSmall)
	}
	rg := balanceRNG(rng)
	perm := rg.Perm(len(sc))
	modify, anchor := perm[0], perm[1]
	for _, fr := range r.ranges {
		sc[modify].CopySlice(fr, sc[anchor].Slice(fr))
	}
	return sc, nil
}

// propertiesEqual compares two objects over the declared property ranges.
func (r *IdenticalObjects) propertiesEqual(a, b scene.Object) bool {
	for _, fr := range r.ranges {
		av, bv := a.Slice(fr), b.Slice(fr)
		for k := range av {
			if av[k] != bv[k] {
				return false
			}
		}
	}
	return true
}
