package recording

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/plotdraw"
)

func TestNewRecorder(t *testing.T) {
	rec := NewRecorder()

	if rec.Len() != 0 {
		t.Errorf("Len() = %d, want 0", rec.Len())
	}
	if !rec.CurrentTransform().IsIdentity() {
		t.Errorf("CurrentTransform() = %+v, want identity", rec.CurrentTransform())
	}
	if got := rec.Bounds(); got != (Rect{}) {
		t.Errorf("Bounds() = %+v, want zero rect", got)
	}
}

func TestRecorderAppendsOneCommandPerCall(t *testing.T) {
	rec := NewRecorder()
	style := plotdraw.DefaultTextStyle()

	calls := []func(){
		func() { rec.MoveTo(1, 2) },
		func() { rec.LineTo(3, 4) },
		func() { rec.CurveTo(1, 1, 2, 2, 3, 3) },
		func() { rec.QuadCurveTo(1, 1, 2, 2) },
		func() { rec.ClosePath() },
		func() { rec.Rectangle(0, 0, 10, 10) },
		func() { rec.Ellipse(5, 5, 2, 3) },
		func() { rec.Circle(5, 5, 2) },
		func() { rec.Arc(0, 0, 5, 0, math.Pi, false) },
		func() { rec.Text("hi", 1, 1, style) },
		func() { rec.PushTransform(Scale(2, 2)) },
		func() { rec.PopTransform() },
		func() { rec.PopTransform() }, // unmatched, still recorded
		func() { rec.Translate(1, 1) },
		func() { rec.Scale(2, 2) },
		func() { rec.Rotate(1) },
		func() { rec.SetStrokeColor(plotdraw.Red) },
		func() { rec.SetStrokeWidth(-3) },
		func() { rec.SetStrokeStyle(plotdraw.LineDashed) },
		func() { rec.SetFillColor(plotdraw.Blue) },
		func() { rec.SetAlpha(7) },
		func() { rec.StrokePath() },
		func() { rec.FillPath() },
		func() { rec.FillAndStrokePath() },
		func() { rec.ClipRect(0, 0, 5, 5) },
		func() { rec.ResetClip() },
		func() { rec.SaveState() },
		func() { rec.RestoreState() },
	}

	for i, call := range calls {
		call()
		if rec.Len() != i+1 {
			t.Fatalf("after call %d: Len() = %d, want %d", i, rec.Len(), i+1)
		}
	}

	rec.Clear()
	if rec.Len() != 0 {
		t.Errorf("after Clear: Len() = %d, want 0", rec.Len())
	}
	if !rec.CurrentTransform().IsIdentity() {
		t.Errorf("after Clear: CurrentTransform() = %+v, want identity", rec.CurrentTransform())
	}
}

func TestRecorderCommands(t *testing.T) {
	rec := NewRecorder()
	rec.SetStrokeColor(plotdraw.Red)
	rec.SetStrokeWidth(2)
	rec.MoveTo(10, 20)
	rec.LineTo(100, 150)
	rec.StrokePath()
	rec.Circle(1, 2, 3)
	rec.Arc(0, 0, 1, 0, 1, true)

	want := []Command{
		SetStrokeColor{Color: plotdraw.Red},
		SetStrokeWidth{Width: 2},
		MoveTo{X: 10, Y: 20},
		LineTo{X: 100, Y: 150},
		StrokePath{},
		Ellipse{CX: 1, CY: 2, RX: 3, RY: 3},
		Arc{CX: 0, CY: 0, Radius: 1, StartAngle: 0, EndAngle: 1, Clockwise: true},
	}
	if diff := cmp.Diff(want, rec.Commands()); diff != "" {
		t.Errorf("Commands() mismatch (-want +got):\n%s", diff)
	}
}

func TestRecorderCommandsIsCopy(t *testing.T) {
	rec := NewRecorder()
	rec.MoveTo(1, 1)

	cmds := rec.Commands()
	cmds[0] = LineTo{X: 9, Y: 9}

	if got := rec.Commands()[0]; got != (MoveTo{X: 1, Y: 1}) {
		t.Errorf("Commands()[0] = %v, want MoveTo{1 1}", got)
	}
}

func TestRecordingSnapshot(t *testing.T) {
	rec := NewRecorder()
	rec.MoveTo(1, 1)
	snap := rec.Recording()

	rec.LineTo(2, 2)
	rec.Clear()
	rec.Rectangle(0, 0, 1, 1)

	if snap.Len() != 1 {
		t.Fatalf("snapshot Len() = %d, want 1", snap.Len())
	}
	if got := snap.Commands()[0]; got != (MoveTo{X: 1, Y: 1}) {
		t.Errorf("snapshot command = %v, want MoveTo{1 1}", got)
	}
}

func TestPushTransformRecordsUncomposedMatrix(t *testing.T) {
	rec := NewRecorder()
	rec.Translate(10, 0)
	rec.Scale(2, 2)

	want := []Command{
		PushTransform{Matrix: Translate(10, 0)},
		PushTransform{Matrix: Scale(2, 2)},
	}
	if diff := cmp.Diff(want, rec.Commands()); diff != "" {
		t.Errorf("Commands() mismatch (-want +got):\n%s", diff)
	}

	// Scale applies first, then the translation, as in gg.Context.
	x, y := rec.CurrentTransform().TransformPoint(1, 1)
	if !almostEqual(x, 12) || !almostEqual(y, 2) {
		t.Errorf("CurrentTransform maps (1,1) to (%v,%v), want (12,2)", x, y)
	}
}

func TestPushPopRestoresTransform(t *testing.T) {
	transforms := []Matrix{
		Translate(5, -3),
		Scale(2, 0.5),
		Rotate(math.Pi / 3),
		{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6},
	}

	for depth := 0; depth < 3; depth++ {
		for _, m := range transforms {
			rec := NewRecorder()
			for i := 0; i < depth; i++ {
				rec.Rotate(0.25)
				rec.Translate(1, 2)
			}
			before := rec.CurrentTransform()

			rec.PushTransform(m)
			rec.PopTransform()

			if got := rec.CurrentTransform(); got != before {
				t.Errorf("depth %d, push %+v then pop: CurrentTransform() = %+v, want %+v",
					depth, m, got, before)
			}
		}
	}
}

func TestPopTransformAtIdentityIsNoOp(t *testing.T) {
	rec := NewRecorder()
	rec.PopTransform()
	rec.PopTransform()

	if !rec.CurrentTransform().IsIdentity() {
		t.Errorf("CurrentTransform() = %+v, want identity", rec.CurrentTransform())
	}
	if rec.Len() != 2 {
		t.Errorf("Len() = %d, want 2", rec.Len())
	}

	rec.Translate(3, 4)
	x, y := rec.CurrentTransform().TransformPoint(0, 0)
	if x != 3 || y != 4 {
		t.Errorf("after translate: (0,0) -> (%v,%v), want (3,4)", x, y)
	}
}

func TestAppend(t *testing.T) {
	rec := NewRecorder()
	rec.Append(
		MoveTo{X: 1, Y: 1},
		PushTransform{Matrix: Translate(5, 5)},
		LineTo{X: 2, Y: 2},
	)

	if rec.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", rec.Len())
	}
	x, y := rec.CurrentTransform().TransformPoint(0, 0)
	if x != 5 || y != 5 {
		t.Errorf("CurrentTransform maps origin to (%v,%v), want (5,5)", x, y)
	}

	rec.Append(PopTransform{})
	if !rec.CurrentTransform().IsIdentity() {
		t.Error("PopTransform via Append did not pop")
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name  string
		build func(r *Recorder)
		want  Rect
	}{
		{
			name:  "empty",
			build: func(*Recorder) {},
			want:  Rect{},
		},
		{
			name:  "rectangle",
			build: func(r *Recorder) { r.Rectangle(10, 20, 100, 50) },
			want:  Rect{MinX: 10, MinY: 20, MaxX: 110, MaxY: 70},
		},
		{
			name:  "ellipse",
			build: func(r *Recorder) { r.Ellipse(50, 50, 25, 15) },
			want:  Rect{MinX: 25, MinY: 35, MaxX: 75, MaxY: 65},
		},
		{
			name: "path and text",
			build: func(r *Recorder) {
				r.MoveTo(-5, 3)
				r.LineTo(7, -2)
				r.Text("x", 20, 30, plotdraw.DefaultTextStyle())
			},
			want: Rect{MinX: -5, MinY: -2, MaxX: 20, MaxY: 30},
		},
		{
			name: "curves and arcs ignored",
			build: func(r *Recorder) {
				r.MoveTo(0, 0)
				r.CurveTo(500, 500, -500, -500, 1, 1)
				r.QuadCurveTo(900, 900, 2, 2)
				r.Arc(0, 0, 1000, 0, math.Pi, false)
			},
			want: Rect{MinX: 0, MinY: 0, MaxX: 0, MaxY: 0},
		},
		{
			name: "style and transform commands ignored",
			build: func(r *Recorder) {
				r.Translate(100, 100)
				r.ClipRect(-50, -50, 500, 500)
				r.SetStrokeWidth(40)
			},
			want: Rect{},
		},
		{
			name:  "negative rectangle",
			build: func(r *Recorder) { r.Rectangle(10, 10, -5, -5) },
			want:  Rect{MinX: 5, MinY: 5, MaxX: 10, MaxY: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecorder()
			tt.build(rec)
			if got := rec.Bounds(); got != tt.want {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
			if got := rec.Recording().Bounds(); got != tt.want {
				t.Errorf("Recording().Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBoundsRectangleSize(t *testing.T) {
	rec := NewRecorder()
	rec.Rectangle(10, 20, 100, 50)
	b := rec.Bounds()
	if b.X() != 10 || b.Y() != 20 || b.Width() != 100 || b.Height() != 50 {
		t.Errorf("Bounds() = x %v y %v w %v h %v, want 10 20 100 50",
			b.X(), b.Y(), b.Width(), b.Height())
	}
}

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{MoveTo{}, "MoveTo"},
		{QuadCurveTo{}, "QuadCurveTo"},
		{Arc{}, "Arc"},
		{Text{}, "Text"},
		{PopTransform{}, "PopTransform"},
		{SetAlpha{}, "SetAlpha"},
		{FillAndStrokePath{}, "FillAndStrokePath"},
		{RestoreState{}, "RestoreState"},
	}
	for _, tt := range tests {
		if got := tt.cmd.Type().String(); got != tt.want {
			t.Errorf("%T.Type().String() = %q, want %q", tt.cmd, got, tt.want)
		}
	}
	if got := CommandType(200).String(); got != "Unknown" {
		t.Errorf("CommandType(200).String() = %q, want Unknown", got)
	}
}
