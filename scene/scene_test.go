package scene_test

import (
	"testing"

	"github.com/katalvlaran/relgrid/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLayout_CumulativeRanges verifies that ranges are assigned
// cumulatively in declaration order and the total width adds up.
func TestNewLayout_CumulativeRanges(t *testing.T) {
	l, err := scene.NewLayout([]string{"x", "y", "color"}, []int{1, 1, 3})
	require.NoError(t, err)

	assert.Equal(t, 5, l.Width(), "total width must sum the field widths")
	assert.Equal(t, []string{"x", "y", "color"}, l.Names())

	r, ok := l.Range("x")
	require.True(t, ok)
	assert.Equal(t, scene.Range{Start: 0, End: 1}, r)

	r, ok = l.Range("color")
	require.True(t, ok)
	assert.Equal(t, scene.Range{Start: 2, End: 5}, r)

	_, ok = l.Range("shape")
	assert.False(t, ok, "unknown field must not resolve")
}

// TestNewLayout_Errors exercises the construction error cases.
func TestNewLayout_Errors(t *testing.T) {
	cases := []struct {
		name    string
		names   []string
		widths  []int
		wantErr error
	}{
		{"mismatched lengths", []string{"x", "y"}, []int{1}, scene.ErrLayoutMismatch},
		{"duplicate name", []string{"x", "x"}, []int{1, 1}, scene.ErrDuplicateField},
		{"zero width", []string{"x"}, []int{0}, scene.ErrBadWidth},
		{"negative width", []string{"x"}, []int{-2}, scene.ErrBadWidth},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scene.NewLayout(tc.names, tc.widths)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestObject_SliceAliasing verifies that Slice aliases the object while
// Clone detaches it.
func TestObject_SliceAliasing(t *testing.T) {
	o := scene.Object{1, 2, 3, 4}
	r := scene.Range{Start: 1, End: 3}

	o.Slice(r)[0] = 9
	assert.Equal(t, scene.Object{1, 9, 3, 4}, o, "Slice must alias the object")

	c := o.Clone()
	c[0] = 7
	assert.Equal(t, 1.0, o[0], "Clone must not share the buffer")
}

// TestObject_CopyAndEqualSlice covers range writes and exact comparison.
func TestObject_CopyAndEqualSlice(t *testing.T) {
	o := scene.Object{0, 0, 0, 0}
	r := scene.Range{Start: 2, End: 4}

	o.CopySlice(r, []float64{5, 6})
	assert.Equal(t, scene.Object{0, 0, 5, 6}, o)

	assert.True(t, o.EqualSlice(r, []float64{5, 6}))
	assert.False(t, o.EqualSlice(r, []float64{5, 7}))
	assert.False(t, o.EqualSlice(r, []float64{5}), "width mismatch must not match")
}

// TestScene_CloneIsDeep verifies scenes clone without shared buffers.
func TestScene_CloneIsDeep(t *testing.T) {
	s := scene.Scene{{1, 2}, {3, 4}}
	c := s.Clone()
	c[0][0] = 99

	assert.Equal(t, 1.0, s[0][0], "mutating the clone must not touch the source")
	assert.Equal(t, 2, s.Width())
	assert.Equal(t, 0, scene.Scene{}.Width(), "empty scene has zero width")
}
