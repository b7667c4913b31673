package scene

import "errors"

// Sentinel errors for scene layout construction.
var (
	// ErrDuplicateField indicates a repeated field name in a layout declaration.
	ErrDuplicateField = errors.New("scene: duplicate field name in layout")
	// ErrLayoutMismatch indicates names and widths of differing lengths.
	ErrLayoutMismatch = errors.New("scene: field names and widths must have equal length")
	// ErrBadWidth indicates a non-positive field width.
	ErrBadWidth = errors.New("scene: field width must be at least 1")
)

// Range is a half-open [Start, End) index range inside an Object.
type Range struct {
	Start, End int
}

// Width returns the number of vector entries the range covers.
// Complexity: O(1).
func (r Range) Width() int { return r.End - r.Start }

// Object is one fixed-length feature vector.
type Object []float64

// Slice returns the sub-vector owned by r. The returned slice aliases the
// object, so writes through it mutate the object.
// Complexity: O(1).
func (o Object) Slice(r Range) []float64 { return o[r.Start:r.End] }

// CopySlice overwrites the range r with src. src must have width r.Width().
// Complexity: O(r.Width()).
func (o Object) CopySlice(r Range, src []float64) { copy(o[r.Start:r.End], src) }

// EqualSlice reports whether the range r holds exactly the values in vals.
// Complexity: O(r.Width()).
func (o Object) EqualSlice(r Range, vals []float64) bool {
	if r.Width() != len(vals) {
		return false
	}
	for i, v := range vals {
		if o[r.Start+i] != v {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the object.
// Complexity: O(len(o)).
func (o Object) Clone() Object {
	c := make(Object, len(o))
	copy(c, o)
	return c
}

// Scene is an ordered, fixed-size collection of Objects.
type Scene []Object

// Width returns the object width, or 0 for an empty scene.
// Complexity: O(1).
func (s Scene) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy: the new scene shares no buffers with s.
// Complexity: O(objects × width).
func (s Scene) Clone() Scene {
	c := make(Scene, len(s))
	for i, o := range s {
		c[i] = o.Clone()
	}
	return c
}

// Layout records, for each named field, the contiguous index range it owns
// inside every Object produced under one generator configuration. The mapping
// is fixed at construction and derivable without sampling.
type Layout struct {
	order  []string
	ranges map[string]Range
	width  int
}

// NewLayout builds a Layout from ordered field names and their widths.
// Ranges are assigned cumulatively in declaration order.
// Returns ErrLayoutMismatch, ErrDuplicateField or ErrBadWidth on bad input.
// Complexity: O(len(names)).
func NewLayout(names []string, widths []int) (Layout, error) {
	if len(names) != len(widths) {
		return Layout{}, ErrLayoutMismatch
	}
	l := Layout{
		order:  make([]string, 0, len(names)),
		ranges: make(map[string]Range, len(names)),
	}
	for i, name := range names {
		if widths[i] < 1 {
			return Layout{}, ErrBadWidth
		}
		if _, dup := l.ranges[name]; dup {
			return Layout{}, ErrDuplicateField
		}
		l.ranges[name] = Range{Start: l.width, End: l.width + widths[i]}
		l.order = append(l.order, name)
		l.width += widths[i]
	}
	return l, nil
}

// Range returns the index range owned by name and whether it exists.
// Complexity: O(1).
func (l Layout) Range(name string) (Range, bool) {
	r, ok := l.ranges[name]
	return r, ok
}

// Names returns the field names in declaration order (a copy).
// Complexity: O(n).
func (l Layout) Names() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// Width returns the total object width implied by the layout.
// Complexity: O(1).
func (l Layout) Width() int { return l.width }
