package scenegen_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/relgrid/field"
	"github.com/katalvlaran/relgrid/relation"
	"github.com/katalvlaran/relgrid/scene"
	"github.com/katalvlaran/relgrid/scenegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeed = 33

// adjacencyFields is the canonical assembler input used across these tests:
// five objects with one positional field.
var adjacencyFields = []field.Config{
	{Name: "x", Kind: field.KindPosition, MinCoord: 0, MaxCoord: 20},
}

// adjacencyFactory wires a 1-D adjacency relation onto the x field.
func adjacencyFactory(layout scene.Layout, gens map[string]*field.Generator) (relation.Relation, error) {
	return relation.NewAdjacency1D(layout, gens, "x")
}

// constRelation is a stub with a fixed label, for driving the balancing
// strategies into their limit paths.
type constRelation struct{ value bool }

func (c constRelation) Name() string                 { return "const" }
func (c constRelation) Evaluate(scene.Scene) bool    { return c.value }
func (c constRelation) Balance(sc scene.Scene, current bool, rng *rand.Rand) (scene.Scene, error) {
	return sc, nil
}

func constFactory(value bool) scenegen.RelationFactory {
	return func(scene.Layout, map[string]*field.Generator) (relation.Relation, error) {
		return constRelation{value: value}, nil
	}
}

// TestNew_Errors covers assembler construction failures, including wrapped
// field and relation wiring errors.
func TestNew_Errors(t *testing.T) {
	_, err := scenegen.New(5, nil, adjacencyFactory)
	assert.ErrorIs(t, err, scenegen.ErrNoFields)

	_, err = scenegen.New(5, adjacencyFields, nil)
	assert.ErrorIs(t, err, scenegen.ErrNilFactory)

	_, err = scenegen.New(0, adjacencyFields, adjacencyFactory)
	assert.ErrorIs(t, err, field.ErrBadObjectCount)

	badFields := []field.Config{
		{Name: "x", Kind: field.KindPosition, MinCoord: 9, MaxCoord: 2},
	}
	_, err = scenegen.New(5, badFields, adjacencyFactory)
	assert.ErrorIs(t, err, field.ErrBadDomain)

	missingFactory := func(layout scene.Layout, gens map[string]*field.Generator) (relation.Relation, error) {
		return relation.NewAdjacency1D(layout, gens, "z")
	}
	_, err = scenegen.New(5, adjacencyFields, missingFactory)
	assert.ErrorIs(t, err, relation.ErrMissingField)
}

// TestAssembler_LayoutAndShape verifies the derived layout: cumulative
// ranges in declaration order and the expected scene shape.
func TestAssembler_LayoutAndShape(t *testing.T) {
	cfgs := []field.Config{
		{Name: "x", Kind: field.KindPosition, MinCoord: 0, MaxCoord: 20},
		{Name: "color", Kind: field.KindCategory, Categories: 3},
		{Name: "size", Kind: field.KindLength, Value: 2},
	}
	asm, err := scenegen.New(4, cfgs, constFactory(false), scenegen.WithSeed(testSeed))
	require.NoError(t, err)

	assert.Equal(t, 4, asm.ObjectCount())
	assert.Equal(t, 5, asm.ObjectWidth())
	assert.Equal(t, []string{"x", "color", "size"}, asm.Layout().Names())

	r, ok := asm.Layout().Range("color")
	require.True(t, ok)
	assert.Equal(t, scene.Range{Start: 1, End: 4}, r)

	scenes, labels, err := asm.Batch(6)
	require.NoError(t, err)
	require.Len(t, scenes, 6)
	require.Len(t, labels, 6)
	for _, sc := range scenes {
		assert.Len(t, sc, 4)
		for _, o := range sc {
			assert.Len(t, []float64(o), 5)
			assert.Equal(t, 2.0, o[4], "length field carries its fixed value")
		}
	}
}

// TestAssembler_BatchLabelsMatchRelation checks every raw label agrees with
// re-evaluating the relation on the drawn scene.
func TestAssembler_BatchLabelsMatchRelation(t *testing.T) {
	asm, err := scenegen.New(5, adjacencyFields, adjacencyFactory, scenegen.WithSeed(testSeed))
	require.NoError(t, err)

	scenes, labels, err := asm.Batch(64)
	require.NoError(t, err)
	for i, sc := range scenes {
		want := 0
		if asm.Relation().Evaluate(sc) {
			want = 1
		}
		assert.Equal(t, want, labels[i])
	}

	_, _, err = asm.Batch(0)
	assert.ErrorIs(t, err, scenegen.ErrBadBatchSize)
}

// TestAssembler_SeedDeterminism verifies equal seeds reproduce identical
// batches and the zero seed maps onto the fixed default.
func TestAssembler_SeedDeterminism(t *testing.T) {
	a1, err := scenegen.New(5, adjacencyFields, adjacencyFactory, scenegen.WithSeed(testSeed))
	require.NoError(t, err)
	a2, err := scenegen.New(5, adjacencyFields, adjacencyFactory, scenegen.WithSeed(testSeed))
	require.NoError(t, err)

	s1, l1, err := a1.Batch(16)
	require.NoError(t, err)
	s2, l2, err := a2.Batch(16)
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
	assert.Equal(t, l1, l2)

	z, err := scenegen.New(5, adjacencyFields, adjacencyFactory, scenegen.WithSeed(0))
	require.NoError(t, err)
	d, err := scenegen.New(5, adjacencyFields, adjacencyFactory)
	require.NoError(t, err)
	sz, _, err := z.Batch(8)
	require.NoError(t, err)
	sd, _, err := d.Batch(8)
	require.NoError(t, err)
	assert.Equal(t, sd, sz, "seed zero must select the default stream")
}

// TestDirected_ExactHalf verifies the directed strategy lands on exactly
// ⌊n/2⌋ positives with every label consistent with the relation.
func TestDirected_ExactHalf(t *testing.T) {
	asm, err := scenegen.New(5, adjacencyFields, adjacencyFactory, scenegen.WithSeed(testSeed))
	require.NoError(t, err)
	gen := scenegen.NewDirected(asm, 0)

	scenes, labels, err := gen.BalancedBatch(8)
	require.NoError(t, err)
	require.Len(t, scenes, 8)

	positives := 0
	for i, sc := range scenes {
		got := asm.Relation().Evaluate(sc)
		if labels[i] == 1 {
			positives++
			assert.True(t, got, "positive-labeled scene must evaluate positive")
		} else {
			assert.False(t, got, "negative-labeled scene must evaluate negative")
		}
	}
	assert.Equal(t, 4, positives)
}

// TestDirected_FlipsShortfall uses a sparse relation whose raw positive rate
// is near zero, forcing the balancer path.
func TestDirected_FlipsShortfall(t *testing.T) {
	sparse := []field.Config{
		{Name: "x", Kind: field.KindPosition, MinCoord: 0, MaxCoord: 100},
	}
	asm, err := scenegen.New(2, sparse, adjacencyFactory, scenegen.WithSeed(testSeed))
	require.NoError(t, err)
	gen := scenegen.NewDirected(asm, 0)

	scenes, labels, err := gen.BalancedBatch(10)
	require.NoError(t, err)

	positives := 0
	for i, sc := range scenes {
		if labels[i] == 1 {
			positives++
			assert.True(t, asm.Relation().Evaluate(sc))
		}
	}
	assert.Equal(t, 5, positives)
}

// TestDirected_DegenerateAndLimit covers the batch-of-one shortcut and the
// round-limit failure with an always-positive relation.
func TestDirected_DegenerateAndLimit(t *testing.T) {
	asm, err := scenegen.New(5, adjacencyFields, adjacencyFactory, scenegen.WithSeed(testSeed))
	require.NoError(t, err)
	gen := scenegen.NewDirected(asm, 0)

	scenes, labels, err := gen.BalancedBatch(1)
	require.NoError(t, err)
	assert.Len(t, scenes, 1)
	assert.Len(t, labels, 1)

	_, _, err = gen.BalancedBatch(0)
	assert.ErrorIs(t, err, scenegen.ErrBadBatchSize)

	alwaysPos, err := scenegen.New(5, adjacencyFields, constFactory(true), scenegen.WithSeed(testSeed))
	require.NoError(t, err)
	limited := scenegen.NewDirected(alwaysPos, 2)
	_, _, err = limited.BalancedBatch(4)
	assert.ErrorIs(t, err, scenegen.ErrRecursionLimit)
}

// TestPostHoc_ExactHalf verifies rejection sampling produces 2×⌊n/2⌋ scenes
// split evenly, with labels consistent with the relation.
func TestPostHoc_ExactHalf(t *testing.T) {
	asm, err := scenegen.New(5, adjacencyFields, adjacencyFactory, scenegen.WithSeed(testSeed))
	require.NoError(t, err)
	gen := scenegen.NewPostHoc(asm, 0)

	scenes, labels, err := gen.BalancedBatch(9)
	require.NoError(t, err)
	require.Len(t, scenes, 8, "odd batch sizes round down to an even total")

	positives := 0
	for i, sc := range scenes {
		got := asm.Relation().Evaluate(sc)
		if labels[i] == 1 {
			positives++
		}
		assert.Equal(t, labels[i] == 1, got)
	}
	assert.Equal(t, 4, positives)
}

// TestPostHoc_DrawLimit forces the rejection loop over its budget with an
// always-negative relation, which can never fill the positive pool.
func TestPostHoc_DrawLimit(t *testing.T) {
	asm, err := scenegen.New(5, adjacencyFields, constFactory(false), scenegen.WithSeed(testSeed))
	require.NoError(t, err)
	gen := scenegen.NewPostHoc(asm, 2)

	_, _, err = gen.BalancedBatch(8)
	assert.ErrorIs(t, err, scenegen.ErrDrawLimit)
}

// TestWithRand_PanicsOnNil pins the explicit-RNG contract.
func TestWithRand_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { scenegen.WithRand(nil) })
}
