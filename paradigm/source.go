package paradigm

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/relgrid/scene"
)

// Defaults for SourceConfig.
const (
	// DefaultReferenceLength is the canonical horizontal reference length.
	DefaultReferenceLength = 9
	// DefaultTargetLength is the canonical target length.
	DefaultTargetLength = 1
)

// SourceConfig declares the object vocabulary a builder draws from.
//
// Type indices partition into three ordered pools: reference types first,
// then train target types, then test-only target types. Train-time targets
// sample from the train pool; test-time targets sample from the test pool
// when it is non-empty, otherwise from the train pool.
type SourceConfig struct {
	Seed             int64
	ReferenceLength  int
	TargetLength     int
	ReferenceTypes   int
	TrainTargetTypes int
	TestTargetTypes  int
	// WithSize selects the one-row encoding [x, y, length, type one-hot];
	// otherwise objects are emitted as length-many unit rows [x+j, y, one-hot].
	WithSize bool
}

// DefaultSourceConfig returns the canonical vocabulary: a length-9 reference,
// length-1 target, one type per pool, and no test-only types.
func DefaultSourceConfig() SourceConfig {
	return SourceConfig{
		ReferenceLength:  DefaultReferenceLength,
		TargetLength:     DefaultTargetLength,
		ReferenceTypes:   1,
		TrainTargetTypes: 1,
		TestTargetTypes:  0,
	}
}

// Source materializes reference and target object vectors for the paradigm
// builders. It owns its own seeded RNG for type sampling, separate from the
// builder's placement RNG.
type Source struct {
	cfg     SourceConfig
	rng     *rand.Rand
	nTypes  int
	nonType int
}

// NewSource validates cfg and returns a Source.
// Returns ErrBadObjectLength or ErrBadTypeCount.
func NewSource(cfg SourceConfig) (*Source, error) {
	if cfg.ReferenceLength < 1 || cfg.TargetLength < 1 {
		return nil, fmt.Errorf("paradigm: reference length %d, target length %d: %w",
			cfg.ReferenceLength, cfg.TargetLength, ErrBadObjectLength)
	}
	if cfg.ReferenceTypes < 1 || cfg.TrainTargetTypes < 1 || cfg.TestTargetTypes < 0 {
		return nil, fmt.Errorf("paradigm: reference=%d train=%d test=%d types: %w",
			cfg.ReferenceTypes, cfg.TrainTargetTypes, cfg.TestTargetTypes, ErrBadTypeCount)
	}
	nonType := 2
	if cfg.WithSize {
		nonType = 3
	}
	return &Source{
		cfg:     cfg,
		rng:     rngFromSeed(cfg.Seed),
		nTypes:  cfg.ReferenceTypes + cfg.TrainTargetTypes + cfg.TestTargetTypes,
		nonType: nonType,
	}, nil
}

// ReferenceLength returns the horizontal reference object length.
func (s *Source) ReferenceLength() int { return s.cfg.ReferenceLength }

// ObjectWidth returns the emitted object vector width.
func (s *Source) ObjectWidth() int { return s.nonType + s.nTypes }

// TypeRange returns the index range the type one-hot occupies, for use by
// simplified spatial projections.
func (s *Source) TypeRange() scene.Range {
	return scene.Range{Start: s.nonType, End: s.nonType + s.nTypes}
}

// sampleType draws a type index from the pool selected by (target, train).
func (s *Source) sampleType(target, train bool) int {
	if !target {
		if s.cfg.ReferenceTypes <= 1 {
			return 0
		}
		return s.rng.Intn(s.cfg.ReferenceTypes)
	}
	if train || s.cfg.TestTargetTypes == 0 {
		if s.cfg.TrainTargetTypes <= 1 {
			return s.cfg.ReferenceTypes
		}
		return s.cfg.ReferenceTypes + s.rng.Intn(s.cfg.TrainTargetTypes)
	}
	if s.cfg.TestTargetTypes == 1 {
		return s.cfg.ReferenceTypes + s.cfg.TrainTargetTypes
	}
	return s.cfg.ReferenceTypes + s.cfg.TrainTargetTypes + s.rng.Intn(s.cfg.TestTargetTypes)
}

// typeOneHot encodes a sampled type index.
func (s *Source) typeOneHot(target, train bool) []float64 {
	hot := make([]float64, s.nTypes)
	hot[s.sampleType(target, train)] = 1
	return hot
}

// ReferenceObject emits the reference object anchored at (x, y): one row
// when WithSize, else ReferenceLength unit rows extending rightwards. The
// type one-hot is sampled once per object.
func (s *Source) ReferenceObject(x, y int, train bool) []scene.Object {
	return s.emit(x, y, s.cfg.ReferenceLength, false, train)
}

// TargetObject emits the target object anchored at (x, y).
func (s *Source) TargetObject(x, y int, train bool) []scene.Object {
	return s.emit(x, y, s.cfg.TargetLength, true, train)
}

func (s *Source) emit(x, y, length int, target, train bool) []scene.Object {
	hot := s.typeOneHot(target, train)
	if s.cfg.WithSize {
		obj := make(scene.Object, 0, s.ObjectWidth())
		obj = append(obj, float64(x), float64(y), float64(length))
		obj = append(obj, hot...)
		return []scene.Object{obj}
	}
	rows := make([]scene.Object, length)
	for j := 0; j < length; j++ {
		obj := make(scene.Object, 0, s.ObjectWidth())
		obj = append(obj, float64(x+j), float64(y))
		obj = append(obj, hot...)
		rows[j] = obj
	}
	return rows
}
