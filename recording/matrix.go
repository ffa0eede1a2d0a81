package recording

import "math"

// Matrix is a 2D affine transformation in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// mapping a point as
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// The layout matches gg.Matrix, so a Matrix converts to one field by field.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale creates a scaling matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, E: sy}
}

// Rotate creates a rotation matrix (angle in radians, counter-clockwise
// in a y-up coordinate system).
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		A: cos, B: -sin,
		D: sin, E: cos,
	}
}

// Multiply returns m * other: the resulting matrix applies other first,
// then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// IsIdentity reports whether m is the identity within a small tolerance.
func (m Matrix) IsIdentity() bool {
	const eps = 1e-10
	return math.Abs(m.A-1) < eps && math.Abs(m.B) < eps && math.Abs(m.C) < eps &&
		math.Abs(m.D) < eps && math.Abs(m.E-1) < eps && math.Abs(m.F) < eps
}

// ScaleFactor returns the larger of the two axis scale factors. Backends
// that transform geometry themselves use it to scale stroke widths.
func (m Matrix) ScaleFactor() float64 {
	sx := math.Sqrt(m.A*m.A + m.D*m.D)
	sy := math.Sqrt(m.B*m.B + m.E*m.E)
	return math.Max(sx, sy)
}

// Determinant returns the determinant of the 2x2 part of the matrix.
// A negative determinant means the transformation flips orientation.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Rect is an axis-aligned rectangle given by its minimum and maximum
// corners. The zero Rect is the result of Bounds on an empty recording.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + width, MaxY: y + height}
}

// NewRectFromPoints creates a rectangle from two corner points.
// The points are normalized so Min <= Max.
func NewRectFromPoints(x1, y1, x2, y2 float64) Rect {
	return Rect{
		MinX: math.Min(x1, x2),
		MinY: math.Min(y1, y2),
		MaxX: math.Max(x1, x2),
		MaxY: math.Max(y1, y2),
	}
}

// X returns the minimum x coordinate.
func (r Rect) X() float64 { return r.MinX }

// Y returns the minimum y coordinate.
func (r Rect) Y() float64 { return r.MinY }

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, other.MinX),
		MinY: math.Min(r.MinY, other.MinY),
		MaxX: math.Max(r.MaxX, other.MaxX),
		MaxY: math.Max(r.MaxY, other.MaxY),
	}
}

// bboxBuilder accumulates points into a bounding box.
type bboxBuilder struct {
	rect Rect
	any  bool
}

func (b *bboxBuilder) add(x, y float64) {
	if !b.any {
		b.rect = Rect{MinX: x, MinY: y, MaxX: x, MaxY: y}
		b.any = true
		return
	}
	b.rect.MinX = math.Min(b.rect.MinX, x)
	b.rect.MinY = math.Min(b.rect.MinY, y)
	b.rect.MaxX = math.Max(b.rect.MaxX, x)
	b.rect.MaxY = math.Max(b.rect.MaxY, y)
}

func (b *bboxBuilder) addRect(r Rect) {
	if !b.any {
		b.rect = r
		b.any = true
		return
	}
	b.rect = b.rect.Union(r)
}
