package relation_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/relgrid/field"
	"github.com/katalvlaran/relgrid/relation"
	"github.com/katalvlaran/relgrid/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeed = 33

// buildFields constructs a layout and matching generators from ordered field
// configurations, shared across the relation tests.
func buildFields(t *testing.T, objectCount int, cfgs []field.Config) (scene.Layout, map[string]*field.Generator) {
	t.Helper()
	names := make([]string, 0, len(cfgs))
	widths := make([]int, 0, len(cfgs))
	gens := make(map[string]*field.Generator, len(cfgs))
	for _, cfg := range cfgs {
		g, err := field.NewGenerator(objectCount, cfg)
		require.NoError(t, err)
		names = append(names, cfg.Name)
		widths = append(widths, g.Width())
		gens[cfg.Name] = g
	}
	layout, err := scene.NewLayout(names, widths)
	require.NoError(t, err)
	return layout, gens
}

func xField(min, max int) field.Config {
	return field.Config{Name: "x", Kind: field.KindPosition, MinCoord: min, MaxCoord: max}
}

func yField(min, max int) field.Config {
	return field.Config{Name: "y", Kind: field.KindPosition, MinCoord: min, MaxCoord: max}
}

// TestAdjacency1D_Evaluate covers unit-distance detection in one field.
func TestAdjacency1D_Evaluate(t *testing.T) {
	layout, gens := buildFields(t, 3, []field.Config{xField(0, 20)})
	rel, err := relation.NewAdjacency1D(layout, gens, "x")
	require.NoError(t, err)

	cases := []struct {
		name string
		xs   []float64
		want bool
	}{
		{"adjacent pair", []float64{2, 3, 10}, true},
		{"no adjacency", []float64{2, 6, 10}, false},
		{"coincident is not adjacent", []float64{5, 5, 12}, false},
		{"reverse order pair", []float64{8, 14, 7}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc := make(scene.Scene, len(tc.xs))
			for i, x := range tc.xs {
				sc[i] = scene.Object{x}
			}
			assert.Equal(t, tc.want, rel.Evaluate(sc))
		})
	}
}

// TestAdjacency1D_Construction covers the wiring error cases.
func TestAdjacency1D_Construction(t *testing.T) {
	layout, gens := buildFields(t, 3, []field.Config{
		xField(0, 20),
		{Name: "color", Kind: field.KindCategory, Categories: 2},
	})

	_, err := relation.NewAdjacency1D(layout, gens, "z")
	assert.ErrorIs(t, err, relation.ErrMissingField)

	_, err = relation.NewAdjacency1D(layout, gens, "color")
	assert.ErrorIs(t, err, relation.ErrFieldKind)

	narrowLayout, narrowGens := buildFields(t, 3, []field.Config{xField(5, 6)})
	_, err = relation.NewAdjacency1D(narrowLayout, narrowGens, "x")
	assert.ErrorIs(t, err, relation.ErrDomainTooSmall)
}

// TestAdjacency1D_BalanceFlips draws many negative scenes and checks the
// balancer always turns them positive while staying in-domain.
func TestAdjacency1D_BalanceFlips(t *testing.T) {
	layout, gens := buildFields(t, 5, []field.Config{xField(0, 20)})
	rel, err := relation.NewAdjacency1D(layout, gens, "x")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(testSeed))
	flipped := 0
	for trial := 0; trial < 200; trial++ {
		sc := make(scene.Scene, 5)
		for i := range sc {
			sc[i] = scene.Object{float64(rng.Intn(20))}
		}
		if rel.Evaluate(sc) {
			continue
		}
		out, err := rel.Balance(sc, false, rng)
		require.NoError(t, err)
		require.True(t, rel.Evaluate(out), "balanced scene must evaluate positive")
		for _, obj := range out {
			assert.GreaterOrEqual(t, obj[0], 0.0)
			assert.Less(t, obj[0], 20.0)
		}
		flipped++
	}
	assert.Positive(t, flipped, "trial set must contain negative scenes")
}

// TestAdjacency1D_BalanceEdges pins the boundary redirection: an anchor at
// the domain edge shifts inward, never out of bounds.
func TestAdjacency1D_BalanceEdges(t *testing.T) {
	layout, gens := buildFields(t, 2, []field.Config{xField(0, 3)})
	rel, err := relation.NewAdjacency1D(layout, gens, "x")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(testSeed))
	for trial := 0; trial < 50; trial++ {
		sc := scene.Scene{{0}, {0}} // both at the lower edge, not adjacent
		out, err := rel.Balance(sc, false, rng)
		require.NoError(t, err)
		assert.True(t, rel.Evaluate(out))
		for _, obj := range out {
			assert.GreaterOrEqual(t, obj[0], 0.0)
			assert.Less(t, obj[0], 3.0)
		}
	}
}

// TestAdjacency1D_BalanceErrors covers the contract violations.
func TestAdjacency1D_BalanceErrors(t *testing.T) {
	layout, gens := buildFields(t, 2, []field.Config{xField(0, 20)})
	rel, err := relation.NewAdjacency1D(layout, gens, "x")
	require.NoError(t, err)

	_, err = rel.Balance(scene.Scene{{4}, {5}}, true, nil)
	assert.ErrorIs(t, err, relation.ErrUnsupportedDirection)

	_, err = rel.Balance(scene.Scene{{4}}, false, nil)
	assert.ErrorIs(t, err, relation.ErrSceneTooSmall)
}

// TestAdjacencyND_Evaluate covers L1 unit distance over two fields.
func TestAdjacencyND_Evaluate(t *testing.T) {
	layout, gens := buildFields(t, 3, []field.Config{xField(0, 10), yField(0, 10)})
	rel, err := relation.NewAdjacencyND(layout, gens, []string{"x", "y"})
	require.NoError(t, err)

	cases := []struct {
		name string
		sc   scene.Scene
		want bool
	}{
		{"horizontal neighbor", scene.Scene{{2, 5}, {3, 5}, {8, 8}}, true},
		{"vertical neighbor", scene.Scene{{2, 5}, {2, 6}, {8, 8}}, true},
		{"diagonal is distance two", scene.Scene{{2, 5}, {3, 6}, {8, 8}}, false},
		{"coincident", scene.Scene{{2, 5}, {2, 5}, {8, 8}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rel.Evaluate(tc.sc))
		})
	}
}

// TestAdjacencyND_BalanceFlips checks negative scenes always flip positive
// with every coordinate staying in its domain.
func TestAdjacencyND_BalanceFlips(t *testing.T) {
	layout, gens := buildFields(t, 4, []field.Config{xField(0, 12), yField(0, 12)})
	rel, err := relation.NewAdjacencyND(layout, gens, []string{"x", "y"})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(testSeed))
	flipped := 0
	for trial := 0; trial < 200; trial++ {
		sc := make(scene.Scene, 4)
		for i := range sc {
			sc[i] = scene.Object{float64(rng.Intn(12)), float64(rng.Intn(12))}
		}
		if rel.Evaluate(sc) {
			continue
		}
		out, err := rel.Balance(sc, false, rng)
		require.NoError(t, err)
		require.True(t, rel.Evaluate(out))
		for _, obj := range out {
			for _, v := range obj {
				assert.GreaterOrEqual(t, v, 0.0)
				assert.Less(t, v, 12.0)
			}
		}
		flipped++
	}
	assert.Positive(t, flipped)
}

// TestAdjacencyND_Construction covers empty and invalid field lists.
func TestAdjacencyND_Construction(t *testing.T) {
	layout, gens := buildFields(t, 3, []field.Config{xField(0, 10), yField(0, 10)})

	_, err := relation.NewAdjacencyND(layout, gens, nil)
	assert.ErrorIs(t, err, relation.ErrMissingField)

	_, err = relation.NewAdjacencyND(layout, gens, []string{"x", "z"})
	assert.ErrorIs(t, err, relation.ErrMissingField)
}
