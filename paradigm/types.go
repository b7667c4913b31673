package paradigm

import (
	"errors"
	"math/rand"
)

// Sentinel errors for builder and source construction.
var (
	// ErrNilSource indicates a builder constructed without an object source.
	ErrNilSource = errors.New("paradigm: object source must not be nil")
	// ErrBadCanvas indicates non-positive canvas bounds.
	ErrBadCanvas = errors.New("paradigm: canvas bounds must be positive")
	// ErrBadProportion indicates a split proportion outside [0,1].
	ErrBadProportion = errors.New("paradigm: proportion must lie in [0,1]")
	// ErrBadGridSize indicates a target grid size below 1.
	ErrBadGridSize = errors.New("paradigm: target grid size must be at least 1")
	// ErrBadTrainCount indicates a train target location count outside the grid.
	ErrBadTrainCount = errors.New("paradigm: train target location count out of range")
	// ErrBadGridHeight indicates a target grid height not divisible by 4.
	ErrBadGridHeight = errors.New("paradigm: target grid height must be divisible by 4")
	// ErrBadObjectLength indicates a reference/target object length below 1.
	ErrBadObjectLength = errors.New("paradigm: object length must be at least 1")
	// ErrBadTypeCount indicates an invalid object type pool configuration.
	ErrBadTypeCount = errors.New("paradigm: need ≥1 reference and train target type, ≥0 test target types")
	// ErrNoLegalLocations indicates an empty candidate-location set: the
	// margins and object lengths leave no legal placement on the canvas.
	// Detected before any sampling occurs.
	ErrNoLegalLocations = errors.New("paradigm: no legal object locations within canvas bounds")
	// ErrNoValidationSplit indicates ValidationDataset was requested with a
	// zero train-to-validation proportion.
	ErrNoValidationSplit = errors.New("paradigm: validation split is disabled")
)

// Named test-condition keys shared by the builder contract. Reference and
// target qualifiers name which location partition each side draws from.
const (
	TrainReferenceTestTarget   = "train_reference_test_target"
	TrainReferenceMiddleTarget = "train_reference_middle_target"
	TestReferenceTrainTarget   = "test_reference_train_target"
	TestReferenceTestTarget    = "test_reference_test_target"
	TestReferenceMiddleTarget  = "test_reference_middle_target"
)

// Location is one placement coordinate on the canvas.
type Location struct {
	X, Y int
}

// Add returns the location shifted by (dx, dy).
func (l Location) Add(dx, dy int) Location { return Location{X: l.X + dx, Y: l.Y + dy} }

// Side selects which horizontal side carries the positive class in the
// reference-inductive-bias paradigm.
type Side int

const (
	// SideAuto derives the side from the builder seed's parity.
	SideAuto Side = iota
	// SideLeft anchors the above/between class at the reference's left end.
	SideLeft
	// SideRight anchors it at the reference's right end.
	SideRight
)

// ReferenceCount selects one or two reference objects in the
// one-or-two-reference-objects paradigm.
type ReferenceCount int

const (
	// RefAuto uses two references iff the between relation is requested.
	RefAuto ReferenceCount = iota
	// RefOne forces a single reference object.
	RefOne
	// RefTwo forces two reference objects.
	RefTwo
)

// defaultRNGSeed is the fixed seed substituted for seed 0, keeping the zero
// configuration reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand (seed 0 ⇒ default seed).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
