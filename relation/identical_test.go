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

// identicalFields is the layout used by the identical-objects tests:
// {x, color(2), shape(2)} with color+shape as the compared properties.
func identicalFields(t *testing.T, objectCount int) (scene.Layout, map[string]*field.Generator) {
	t.Helper()
	layout, gens := buildFields(t, objectCount, []field.Config{
		xField(0, 20),
		{Name: "color", Kind: field.KindCategory, Categories: 2},
		{Name: "shape", Kind: field.KindCategory, Categories: 2},
	})
	return layout, gens
}

// propObj builds an {x, color(2), shape(2)} object.
func propObj(x float64, color, shape int) scene.Object {
	o := scene.Object{x, 0, 0, 0, 0}
	o[1+color] = 1
	o[3+shape] = 1
	return o
}

// TestIdenticalObjects_Evaluate requires agreement on every property field,
// while ignoring the non-property ones.
func TestIdenticalObjects_Evaluate(t *testing.T) {
	layout, gens := identicalFields(t, 3)
	rel, err := relation.NewIdenticalObjects(layout, gens, []string{"color", "shape"})
	require.NoError(t, err)

	cases := []struct {
		name string
		sc   scene.Scene
		want bool
	}{
		{"identical pair, different x", scene.Scene{propObj(1, 0, 1), propObj(7, 0, 1), propObj(3, 1, 0)}, true},
		{"color matches, shape differs", scene.Scene{propObj(1, 0, 1), propObj(7, 0, 0), propObj(3, 1, 0)}, false},
		{"all distinct", scene.Scene{propObj(1, 0, 0), propObj(7, 0, 1), propObj(3, 1, 0)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rel.Evaluate(tc.sc))
		})
	}
}

// TestIdenticalObjects_Construction covers empty and unknown field lists.
func TestIdenticalObjects_Construction(t *testing.T) {
	layout, gens := identicalFields(t, 3)

	_, err := relation.NewIdenticalObjects(layout, gens, nil)
	assert.ErrorIs(t, err, relation.ErrMissingField)

	_, err = relation.NewIdenticalObjects(layout, gens, []string{"color", "texture"})
	assert.ErrorIs(t, err, relation.ErrMissingField)
}

// TestIdenticalObjects_BalanceFlips copies properties between two slots and
// must always produce a matching pair, leaving other fields untouched.
func TestIdenticalObjects_BalanceFlips(t *testing.T) {
	layout, gens := identicalFields(t, 4)
	rel, err := relation.NewIdenticalObjects(layout, gens, []string{"color", "shape"})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(testSeed))
	flipped := 0
	for trial := 0; trial < 200; trial++ {
		sc := make(scene.Scene, 4)
		for i := range sc {
			sc[i] = propObj(float64(rng.Intn(20)), rng.Intn(2), rng.Intn(2))
		}
		if rel.Evaluate(sc) {
			continue
		}
		xs := make([]float64, len(sc))
		for i := range sc {
			xs[i] = sc[i][0]
		}
		out, err := rel.Balance(sc, false, rng)
		require.NoError(t, err)
		require.True(t, rel.Evaluate(out), "balanced scene must contain an identical pair")
		for i := range out {
			assert.Equal(t, xs[i], out[i][0], "non-property fields must be untouched")
		}
		flipped++
	}
	assert.Positive(t, flipped)
}

// TestIdenticalObjects_BalanceErrors covers the contract violations.
func TestIdenticalObjects_BalanceErrors(t *testing.T) {
	layout, gens := identicalFields(t, 2)
	rel, err := relation.NewIdenticalObjects(layout, gens, []string{"color", "shape"})
	require.NoError(t, err)

	_, err = rel.Balance(scene.Scene{propObj(1, 0, 0), propObj(2, 0, 0)}, true, nil)
	assert.ErrorIs(t, err, relation.ErrUnsupportedDirection)

	_, err = rel.Balance(scene.Scene{propObj(1, 0, 0)}, false, nil)
	assert.ErrorIs(t, err, relation.ErrSceneTooSmall)
}
