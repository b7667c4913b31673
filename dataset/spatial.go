package dataset

import (
	"fmt"

	"github.com/katalvlaran/relgrid/scene"
)

// Spatial is a dense canvas projection of a Dataset: each item is a
// [channels][x][y] tensor where every object's feature vector is scattered
// at its integer (x, y) cell. Channels default to the full object width;
// the simplified constructor narrows them to one range.
type Spatial struct {
	labels   []int
	items    [][][][]float64
	channels int
	classes  int
}

// NewSpatial projects d onto its canvas. The dataset's Geometry must carry
// positive bounds; every object coordinate must lie on the canvas.
// Returns ErrNoGeometry or ErrOutOfCanvas.
// Complexity: O(len × objects × width + len × width × XMax × YMax).
func NewSpatial(d *Dataset) (*Spatial, error) {
	return newSpatial(d, scene.Range{Start: 0, End: d.ObjectWidth()})
}

// NewSimplifiedSpatial projects d keeping only the channels in keep,
// typically the type one-hot slice of the object vector.
func NewSimplifiedSpatial(d *Dataset, keep scene.Range) (*Spatial, error) {
	if keep.Start < 0 || keep.End > d.ObjectWidth() || keep.Width() < 1 {
		return nil, fmt.Errorf("dataset: channel range [%d,%d) of width %d: %w",
			keep.Start, keep.End, d.ObjectWidth(), ErrRagged)
	}
	return newSpatial(d, keep)
}

func newSpatial(d *Dataset, keep scene.Range) (*Spatial, error) {
	g := d.Geometry()
	if g.XMax < 1 || g.YMax < 1 {
		return nil, fmt.Errorf("dataset: canvas %d×%d: %w", g.XMax, g.YMax, ErrNoGeometry)
	}
	xi, yi := g.PositionIndices[0], g.PositionIndices[1]
	channels := keep.Width()

	items := make([][][][]float64, d.Len())
	for ex := 0; ex < d.Len(); ex++ {
		sc, _ := d.Item(ex)
		grid := make([][][]float64, channels)
		for c := range grid {
			grid[c] = make([][]float64, g.XMax)
			for x := range grid[c] {
				grid[c][x] = make([]float64, g.YMax)
			}
		}
		for _, obj := range sc {
			x, y := int(obj[xi]), int(obj[yi])
			if x < 0 || x >= g.XMax || y < 0 || y >= g.YMax {
				return nil, fmt.Errorf("dataset: object at (%d,%d) on %d×%d canvas: %w",
					x, y, g.XMax, g.YMax, ErrOutOfCanvas)
			}
			for c := 0; c < channels; c++ {
				grid[c][x][y] = obj[keep.Start+c]
			}
		}
		items[ex] = grid
	}

	return &Spatial{
		labels:   d.Labels(),
		items:    items,
		channels: channels,
		classes:  d.NumClasses(),
	}, nil
}

// Len returns the number of items.
func (s *Spatial) Len() int { return len(s.items) }

// Item returns the i-th ([channels][x][y] tensor, label) pair.
func (s *Spatial) Item(i int) ([][][]float64, int) { return s.items[i], s.labels[i] }

// Channels returns the per-cell feature depth.
func (s *Spatial) Channels() int { return s.channels }

// NumClasses returns the count of distinct labels present.
func (s *Spatial) NumClasses() int { return s.classes }
