package dataset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/relgrid/scene"
)

// Sentinel errors for dataset construction and projection.
var (
	// ErrLengthMismatch indicates scenes and labels of differing lengths.
	ErrLengthMismatch = errors.New("dataset: scenes and labels must have equal length")
	// ErrRagged indicates scenes of differing object counts or widths.
	ErrRagged = errors.New("dataset: all scenes must share one shape")
	// ErrNoGeometry indicates a spatial projection without canvas bounds.
	ErrNoGeometry = errors.New("dataset: geometry with positive canvas bounds is required")
	// ErrOutOfCanvas indicates an object coordinate outside the canvas.
	ErrOutOfCanvas = errors.New("dataset: object coordinate outside canvas bounds")
)

// Geometry is the back-reference to the generator configuration that
// produced a dataset: canvas bounds and the object-vector indices carrying
// the (x, y) coordinates. It is what makes spatial re-embedding possible
// after construction.
type Geometry struct {
	XMax, YMax      int
	PositionIndices [2]int
}

// Dataset is an eagerly materialized batch of (scene, label) pairs.
type Dataset struct {
	scenes []scene.Scene
	labels []int
	geom   Geometry
}

// New wraps scenes and labels into a Dataset. Scenes may be empty (an empty
// source location set produces an empty but valid dataset); a non-empty
// batch must be rectangular.
// Returns ErrLengthMismatch or ErrRagged.
// Complexity: O(len(scenes)).
func New(scenes []scene.Scene, labels []int, geom Geometry) (*Dataset, error) {
	if len(scenes) != len(labels) {
		return nil, fmt.Errorf("dataset: %d scenes, %d labels: %w", len(scenes), len(labels), ErrLengthMismatch)
	}
	if len(scenes) > 0 {
		objects, width := len(scenes[0]), scenes[0].Width()
		for _, sc := range scenes[1:] {
			if len(sc) != objects || sc.Width() != width {
				return nil, ErrRagged
			}
		}
	}
	return &Dataset{scenes: scenes, labels: labels, geom: geom}, nil
}

// Len returns the number of (scene, label) pairs.
func (d *Dataset) Len() int { return len(d.scenes) }

// Item returns the i-th pair. Index bounds follow Go slice semantics.
func (d *Dataset) Item(i int) (scene.Scene, int) { return d.scenes[i], d.labels[i] }

// ObjectWidth returns the object vector width (0 when empty).
func (d *Dataset) ObjectWidth() int {
	if len(d.scenes) == 0 {
		return 0
	}
	return d.scenes[0].Width()
}

// ObjectsPerScene returns the object count per scene (0 when empty).
func (d *Dataset) ObjectsPerScene() int {
	if len(d.scenes) == 0 {
		return 0
	}
	return len(d.scenes[0])
}

// NumClasses returns the count of distinct labels present.
func (d *Dataset) NumClasses() int {
	seen := make(map[int]struct{}, 4)
	for _, l := range d.labels {
		seen[l] = struct{}{}
	}
	return len(seen)
}

// Scenes returns the underlying scene slice (shared, do not mutate).
func (d *Dataset) Scenes() []scene.Scene { return d.scenes }

// Labels returns the underlying label slice (shared, do not mutate).
func (d *Dataset) Labels() []int { return d.labels }

// Geometry returns the canvas back-reference.
func (d *Dataset) Geometry() Geometry { return d.geom }

// Select builds a new Dataset over the pairs at the given indices, sharing
// the underlying scenes. Used by shuffle-then-split partitioning.
// Complexity: O(len(indices)).
func (d *Dataset) Select(indices []int) (*Dataset, error) {
	scenes := make([]scene.Scene, len(indices))
	labels := make([]int, len(indices))
	for k, i := range indices {
		scenes[k] = d.scenes[i]
		labels[k] = d.labels[i]
	}
	return New(scenes, labels, d.geom)
}
