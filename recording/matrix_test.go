package recording

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if m != (Matrix{A: 1, E: 1}) {
		t.Errorf("Identity() = %+v, want identity matrix", m)
	}
	if !m.IsIdentity() {
		t.Error("Identity().IsIdentity() = false, want true")
	}
}

func TestTranslateScale(t *testing.T) {
	x, y := Translate(10, 20).TransformPoint(5, 5)
	if x != 15 || y != 25 {
		t.Errorf("Translate(10, 20).TransformPoint(5, 5) = (%v, %v), want (15, 25)", x, y)
	}

	m := Scale(2, 3)
	x, y = m.TransformPoint(10, 10)
	if x != 20 || y != 30 {
		t.Errorf("Scale(2, 3).TransformPoint(10, 10) = (%v, %v), want (20, 30)", x, y)
	}
	if sf := m.ScaleFactor(); sf != 3 {
		t.Errorf("ScaleFactor() = %v, want 3", sf)
	}
}

func TestRotate(t *testing.T) {
	m := Rotate(math.Pi / 2)

	x, y := m.TransformPoint(1, 0)
	if !almostEqual(x, 0) || !almostEqual(y, 1) {
		t.Errorf("Rotate(90deg).TransformPoint(1, 0) = (%v, %v), want (0, 1)", x, y)
	}
	x, y = m.TransformPoint(0, 1)
	if !almostEqual(x, -1) || !almostEqual(y, 0) {
		t.Errorf("Rotate(90deg).TransformPoint(0, 1) = (%v, %v), want (-1, 0)", x, y)
	}
}

func TestMultiplyOrder(t *testing.T) {
	scale := Scale(2, 2)
	translate := Translate(10, 10)

	// (5,5) scaled to (10,10), then translated to (20,20).
	x, y := translate.Multiply(scale).TransformPoint(5, 5)
	if !almostEqual(x, 20) || !almostEqual(y, 20) {
		t.Errorf("translate.Multiply(scale) maps (5,5) to (%v, %v), want (20, 20)", x, y)
	}
}

func TestFlipY(t *testing.T) {
	m := FlipY(300)
	x, y := m.TransformPoint(10, 100)
	if x != 10 || y != 200 {
		t.Errorf("FlipY(300) maps (10,100) to (%v,%v), want (10,200)", x, y)
	}
	if m.Determinant() >= 0 {
		t.Errorf("FlipY determinant = %v, want negative", m.Determinant())
	}
}

func TestDeterminant(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want float64
	}{
		{"identity", Identity(), 1.0},
		{"scale 2x3", Scale(2, 3), 6.0},
		{"rotation", Rotate(math.Pi / 4), 1.0},
		{"flip", Scale(1, -1), -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Determinant(); !almostEqual(got, tt.want) {
				t.Errorf("Determinant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect(t *testing.T) {
	r := NewRect(10, 20, 100, 50)
	if r.X() != 10 || r.Y() != 20 || r.Width() != 100 || r.Height() != 50 {
		t.Errorf("NewRect(10, 20, 100, 50) = %+v", r)
	}

	p := NewRectFromPoints(5, 8, 1, 2)
	if p != (Rect{MinX: 1, MinY: 2, MaxX: 5, MaxY: 8}) {
		t.Errorf("NewRectFromPoints = %+v", p)
	}

	u := r.Union(p)
	if u != (Rect{MinX: 1, MinY: 2, MaxX: 110, MaxY: 70}) {
		t.Errorf("Union = %+v", u)
	}

	var b bboxBuilder
	b.add(3, 4)
	b.addRect(p)
	if b.rect != (Rect{MinX: 1, MinY: 2, MaxX: 5, MaxY: 8}) {
		t.Errorf("point then rect bounds = %+v", b.rect)
	}
	var only bboxBuilder
	only.addRect(r)
	if only.rect != r {
		t.Errorf("single rect bounds = %+v, want %+v", only.rect, r)
	}
}
