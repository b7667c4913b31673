package scenegen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/relgrid/field"
	"github.com/katalvlaran/relgrid/relation"
	"github.com/katalvlaran/relgrid/scene"
)

// RelationFactory instantiates a relation against the assembled field layout
// and generators. Factories validate their own field wiring; a relation that
// declares reliance on an absent field fails here, at construction.
type RelationFactory func(layout scene.Layout, gens map[string]*field.Generator) (relation.Relation, error)

// Assembler composes one object vector per scene slot from named fields,
// owns the field-name→range layout, and labels each drawn scene with the
// configured relation.
//
// The layout is stable and derived at construction without sampling: ranges
// are assigned cumulatively in field declaration order.
type Assembler struct {
	objectCount int
	names       []string
	gens        map[string]*field.Generator
	layout      scene.Layout
	rel         relation.Relation
	rng         *rand.Rand
}

// New builds an Assembler for scenes of objectCount objects with the given
// ordered field configurations, then instantiates the relation via factory.
// Returns ErrNoFields, ErrNilFactory, field construction errors, layout
// errors, or the factory's own wiring errors.
// Complexity: O(len(cfgs)).
func New(objectCount int, cfgs []field.Config, factory RelationFactory, opts ...Option) (*Assembler, error) {
	if len(cfgs) == 0 {
		return nil, ErrNoFields
	}
	if factory == nil {
		return nil, ErrNilFactory
	}
	c := newConfig(opts...)

	names := make([]string, 0, len(cfgs))
	widths := make([]int, 0, len(cfgs))
	gens := make(map[string]*field.Generator, len(cfgs))
	for _, cfg := range cfgs {
		g, err := field.NewGenerator(objectCount, cfg)
		if err != nil {
			return nil, fmt.Errorf("scenegen: %w", err)
		}
		names = append(names, cfg.Name)
		widths = append(widths, g.Width())
		gens[cfg.Name] = g
	}

	layout, err := scene.NewLayout(names, widths)
	if err != nil {
		return nil, fmt.Errorf("scenegen: %w", err)
	}

	rel, err := factory(layout, gens)
	if err != nil {
		return nil, fmt.Errorf("scenegen: %w", err)
	}

	return &Assembler{
		objectCount: objectCount,
		names:       names,
		gens:        gens,
		layout:      layout,
		rel:         rel,
		rng:         c.rng,
	}, nil
}

// Layout returns the field-name→range mapping shared by every object.
func (a *Assembler) Layout() scene.Layout { return a.layout }

// ObjectWidth returns the total object vector width.
func (a *Assembler) ObjectWidth() int { return a.layout.Width() }

// ObjectCount returns the number of objects per scene.
func (a *Assembler) ObjectCount() int { return a.objectCount }

// Relation returns the relation labeling drawn scenes.
func (a *Assembler) Relation() relation.Relation { return a.rel }

// sampleScene draws one scene: every field generator contributes its
// per-object block, concatenated per slot in declaration order.
// Complexity: O(objects × width).
func (a *Assembler) sampleScene() scene.Scene {
	blocks := make([][][]float64, len(a.names))
	for k, name := range a.names {
		blocks[k] = a.gens[name].Sample(a.rng)
	}
	sc := make(scene.Scene, a.objectCount)
	for i := 0; i < a.objectCount; i++ {
		obj := make(scene.Object, 0, a.layout.Width())
		for k := range blocks {
			obj = append(obj, blocks[k][i]...)
		}
		sc[i] = obj
	}
	return sc
}

// Batch draws n raw scenes and evaluates the relation on each, with no
// balancing. Labels are 0 (negative) or 1 (positive).
// Returns ErrBadBatchSize for n < 1.
// Complexity: O(n × objects × width) plus n relation evaluations.
func (a *Assembler) Batch(n int) ([]scene.Scene, []int, error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("scenegen: batch of %d: %w", n, ErrBadBatchSize)
	}
	scenes := make([]scene.Scene, n)
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		scenes[i] = a.sampleScene()
		if a.rel.Evaluate(scenes[i]) {
			labels[i] = 1
		}
	}
	return scenes, labels, nil
}
