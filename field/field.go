package field

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for field generator construction.
var (
	// ErrUnknownKind indicates a field kind outside the closed set.
	ErrUnknownKind = errors.New("field: unknown field kind")
	// ErrBadDomain indicates MaxCoord ≤ MinCoord for a position field.
	ErrBadDomain = errors.New("field: max coordinate must exceed min coordinate")
	// ErrBadCategories indicates a categorical field with fewer than one category.
	ErrBadCategories = errors.New("field: category count must be at least 1")
	// ErrBadObjectCount indicates a generator built for fewer than one object.
	ErrBadObjectCount = errors.New("field: object count must be at least 1")
)

// Kind selects the field type from a closed set.
type Kind int

const (
	// KindPosition samples an integer coordinate uniformly in [MinCoord, MaxCoord).
	KindPosition Kind = iota
	// KindCategory samples a uniform one-hot vector over Categories entries.
	KindCategory
	// KindLength emits the fixed Value (object size/length attribute).
	KindLength
)

// String renders the kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindPosition:
		return "position"
	case KindCategory:
		return "category"
	case KindLength:
		return "length"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Config declares one named field and its value domain.
// MinCoord/MaxCoord apply to KindPosition, Categories to KindCategory,
// Value to KindLength; the remaining knobs are ignored per kind.
type Config struct {
	Name       string
	Kind       Kind
	MinCoord   int
	MaxCoord   int
	Categories int
	Value      float64
}

// defaultRNGSeed is the fixed seed used when Sample receives a nil RNG.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// Generator emits one sample block per invocation for a fixed object count.
// It is a closed tagged variant keyed by Config.Kind; the known kinds are
// enumerated exhaustively at construction.
type Generator struct {
	cfg         Config
	objectCount int
	width       int
}

// NewGenerator validates cfg and returns a sampler for objectCount objects.
// Returns ErrBadObjectCount, ErrBadDomain, ErrBadCategories or ErrUnknownKind.
// Complexity: O(1).
func NewGenerator(objectCount int, cfg Config) (*Generator, error) {
	if objectCount < 1 {
		return nil, fmt.Errorf("field %q: objectCount=%d: %w", cfg.Name, objectCount, ErrBadObjectCount)
	}
	var width int
	switch cfg.Kind {
	case KindPosition:
		if cfg.MaxCoord <= cfg.MinCoord {
			return nil, fmt.Errorf("field %q: domain [%d,%d): %w", cfg.Name, cfg.MinCoord, cfg.MaxCoord, ErrBadDomain)
		}
		width = 1
	case KindCategory:
		if cfg.Categories < 1 {
			return nil, fmt.Errorf("field %q: categories=%d: %w", cfg.Name, cfg.Categories, ErrBadCategories)
		}
		width = cfg.Categories
	case KindLength:
		width = 1
	default:
		return nil, fmt.Errorf("field %q: %w", cfg.Name, ErrUnknownKind)
	}
	return &Generator{cfg: cfg, objectCount: objectCount, width: width}, nil
}

// Name returns the configured field name.
func (g *Generator) Name() string { return g.cfg.Name }

// Kind returns the configured field kind.
func (g *Generator) Kind() Kind { return g.cfg.Kind }

// Width returns the per-object sample width: 1 for scalar kinds,
// Categories for one-hot fields.
func (g *Generator) Width() int { return g.width }

// ObjectCount returns the number of rows Sample emits per call.
func (g *Generator) ObjectCount() int { return g.objectCount }

// MinCoord returns the inclusive lower coordinate bound (position fields).
func (g *Generator) MinCoord() int { return g.cfg.MinCoord }

// MaxCoord returns the exclusive upper coordinate bound (position fields).
func (g *Generator) MaxCoord() int { return g.cfg.MaxCoord }

// Categories returns the one-hot width (category fields; 0 otherwise).
func (g *Generator) Categories() int {
	if g.cfg.Kind != KindCategory {
		return 0
	}
	return g.cfg.Categories
}

// Sample draws one (ObjectCount × Width) block from rng. A nil rng falls
// back to a fixed deterministic stream, mirroring the seed-zero policy used
// across the module.
// Complexity: O(ObjectCount × Width).
func (g *Generator) Sample(rng *rand.Rand) [][]float64 {
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultRNGSeed))
	}
	out := make([][]float64, g.objectCount)
	for i := range out {
		row := make([]float64, g.width)
		switch g.cfg.Kind {
		case KindPosition:
			row[0] = float64(g.cfg.MinCoord + rng.Intn(g.cfg.MaxCoord-g.cfg.MinCoord))
		case KindCategory:
			row[rng.Intn(g.cfg.Categories)] = 1
		case KindLength:
			row[0] = g.cfg.Value
		}
		out[i] = row
	}
	return out
}
