package paradigm

import "fmt"

// Canonical canvas and split defaults.
const (
	// DefaultXMax is the canonical canvas width.
	DefaultXMax = 20
	// DefaultYMax is the canonical canvas height.
	DefaultYMax = 20
	// DefaultPropTrainReference is the fraction of reference locations
	// assigned to the training split.
	DefaultPropTrainReference = 0.8
	// DefaultPropTrainToValidation is the fraction of assembled training
	// examples carved off as a validation set.
	DefaultPropTrainToValidation = 0.1
)

// Config carries the canvas geometry and split proportions shared by every
// paradigm builder.
type Config struct {
	Seed int64
	XMax int
	YMax int
	// XMargin / YMarginBottom / YMarginTop shrink the legal reference
	// placement region; builders may raise them further to fit their
	// target grids.
	XMargin       int
	YMarginBottom int
	YMarginTop    int
	// AddNeitherTrain includes label-0 "neither" examples in the training
	// split, shifting the sided labels up by one. AddNeitherTest does the
	// same for the sided test conditions independently; middle-zone labels
	// always follow the training shift.
	AddNeitherTrain         bool
	AddNeitherTest          bool
	PropTrainReference      float64
	PropTrainToValidation   float64
	TrainReferenceLocations int // 0 means derive from PropTrainReference
}

// DefaultConfig returns the canonical 20x20 canvas with an 80/20 reference
// split and a 10% validation carve-out.
func DefaultConfig() Config {
	return Config{
		XMax:                  DefaultXMax,
		YMax:                  DefaultYMax,
		AddNeitherTrain:       true,
		PropTrainReference:    DefaultPropTrainReference,
		PropTrainToValidation: DefaultPropTrainToValidation,
	}
}

// addNeither selects the neither-class toggle for the given split.
func (c Config) addNeither(train bool) bool {
	if train {
		return c.AddNeitherTrain
	}
	return c.AddNeitherTest
}

func (c Config) validate() error {
	if c.XMax < 1 || c.YMax < 1 {
		return fmt.Errorf("paradigm: canvas %dx%d: %w", c.XMax, c.YMax, ErrBadCanvas)
	}
	if c.XMargin < 0 || c.YMarginBottom < 0 || c.YMarginTop < 0 {
		return fmt.Errorf("paradigm: margins (%d,%d,%d): %w",
			c.XMargin, c.YMarginBottom, c.YMarginTop, ErrBadCanvas)
	}
	if c.PropTrainReference < 0 || c.PropTrainReference > 1 {
		return fmt.Errorf("paradigm: train reference proportion %v: %w",
			c.PropTrainReference, ErrBadProportion)
	}
	if c.PropTrainToValidation < 0 || c.PropTrainToValidation >= 1 {
		return fmt.Errorf("paradigm: validation proportion %v: %w",
			c.PropTrainToValidation, ErrBadProportion)
	}
	return nil
}
