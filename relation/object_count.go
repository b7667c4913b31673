package relation

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/relgrid/field"
	"github.com/katalvlaran/relgrid/scene"
)

const nameObjectCount = "object-count"

// ObjectCount labels a scene positive iff objects matching the first
// category strictly outnumber objects matching the second.
// The two categories may live in the same field or in different fields.
type ObjectCount struct {
	firstRange  scene.Range
	secondRange scene.Range
	firstGen    *field.Generator
	secondGen   *field.Generator
	firstIdx    int
	secondIdx   int
	firstHot    []float64
	secondHot   []float64
}

// NewObjectCount validates the two categorical fields and indices.
// Returns ErrMissingField, ErrFieldKind or ErrBadIndex.
func NewObjectCount(layout scene.Layout, gens map[string]*field.Generator,
	firstField string, firstIdx int, secondField string, secondIdx int) (*ObjectCount, error) {
	fr, fg, err := categoryField(layout, gens, firstField)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", nameObjectCount, err)
	}
	sr, sg, err := categoryField(layout, gens, secondField)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", nameObjectCount, err)
	}
	if firstIdx < 0 || firstIdx >= fg.Categories() {
		return nil, fmt.Errorf("%s: first index %d of %d: %w", nameObjectCount, firstIdx, fg.Categories(), ErrBadIndex)
	}
	if secondIdx < 0 || secondIdx >= sg.Categories() {
		return nil, fmt.Errorf("%s: second index %d of %d: %w", nameObjectCount, secondIdx, sg.Categories(), ErrBadIndex)
	}
	// Balancing recolors second-category objects to some other category, so
	// the second field must offer at least one alternative.
	if sg.Categories() < 2 {
		return nil, fmt.Errorf("%s: second field has %d categories, need ≥ 2: %w",
			nameObjectCount, sg.Categories(), ErrBadCategorySpace)
	}
	return &ObjectCount{
		firstRange:  fr,
		secondRange: sr,
		firstGen:    fg,
		secondGen:   sg,
		firstIdx:    firstIdx,
		secondIdx:   secondIdx,
		firstHot:    oneHot(fg.Categories(), firstIdx),
		secondHot:   oneHot(sg.Categories(), secondIdx),
	}, nil
}

// Name implements Relation.
func (o *ObjectCount) Name() string { return nameObjectCount }

// counts tallies first- and second-category matches in one pass.
func (o *ObjectCount) counts(sc scene.Scene) (first, second int) {
	for _, obj := range sc {
		if obj.EqualSlice(o.firstRange, o.firstHot) {
			first++
		}
		if obj.EqualSlice(o.secondRange, o.secondHot) {
			second++
		}
	}
	return first, second
}

// Evaluate reports whether the first category strictly outnumbers the second.
// Complexity: O(objects × width).
func (o *ObjectCount) Evaluate(sc scene.Scene) bool {
	first, second := o.counts(sc)
	return first > second
}

// Balance flips a negative scene positive by recoloring. When the second
// category fills the scene, a uniform 1..count-1 of those objects are first
// recolored to uniformly chosen other categories to make room; then enough
// non-first objects are recolored to the first category to flip the
// inequality, with the modified count drawn uniformly from the feasible
// range [minimum needed, maximum available].
func (o *ObjectCount) Balance(sc scene.Scene, current bool, rng *rand.Rand) (scene.Scene, error) {
	if err := rejectPositive(nameObjectCount, current); err != nil {
		return nil, err
	}
	if len(sc) < 2 {
		return nil, fmt.Errorf("%s: %d objects: %w", nameObjectCount, len(sc), ErrSceneTooSmall)
	}
	r := balanceRNG(rng)

	first, second := o.counts(sc)
	minToModify := second - first + 1

	if second == len(sc) {
		// Every slot matches the second category; free some up first.
		secondIdxs := o.matching(sc, o.secondRange, o.secondHot)
		k := 1 + r.Intn(len(secondIdxs)-1)
		perm := r.Perm(len(secondIdxs))
		for _, pi := range perm[:k] {
			idx := secondIdxs[pi]
			// Move the one-hot to a uniformly chosen other category.
			next := o.otherCategory(r)
			sc[idx].Slice(o.secondRange)[o.secondIdx] = 0
			sc[idx].Slice(o.secondRange)[next] = 1
		}
		minToModify -= k
	}

	if minToModify <= 0 {
		return sc, nil
	}

	maxToModify := len(sc) - first
	num := minToModify + r.Intn(maxToModify-minToModify+1)

	nonFirst := o.nonMatching(sc, o.firstRange, o.firstHot)
	if num > len(nonFirst) {
		num = len(nonFirst)
	}
	perm := r.Perm(len(nonFirst))
	for _, pi := range perm[:num] {
		sc[nonFirst[pi]].CopySlice(o.firstRange, o.firstHot)
	}
	return sc, nil
}

// otherCategory draws a uniform category index of the second field that is
// not the second index.
func (o *ObjectCount) otherCategory(rng *rand.Rand) int {
	c := rng.Intn(o.secondGen.Categories() - 1)
	if c >= o.secondIdx {
		c++
	}
	return c
}

// matching returns slot indices whose range equals hot.
func (o *ObjectCount) matching(sc scene.Scene, r scene.Range, hot []float64) []int {
	var out []int
	for i, obj := range sc {
		if obj.EqualSlice(r, hot) {
			out = append(out, i)
		}
	}
	return out
}

// nonMatching returns slot indices whose range differs from hot.
func (o *ObjectCount) nonMatching(sc scene.Scene, r scene.Range, hot []float64) []int {
	var out []int
	for i, obj := range sc {
		if !obj.EqualSlice(r, hot) {
			out = append(out, i)
		}
	}
	return out
}
