package svg

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/plotdraw"
	"github.com/gogpu/plotdraw/recording"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
	`<svg width="200" height="300" xmlns="http://www.w3.org/2000/svg">` + "\n" +
	`<rect width="100%" height="100%" fill="white"/>` + "\n"

var size = recording.Size{Width: 200, Height: 300}

func TestExporterRegistration(t *testing.T) {
	e, err := recording.NewExporter("svg")
	if err != nil {
		t.Fatalf("NewExporter(svg): %v", err)
	}
	if _, ok := e.(*Exporter); !ok {
		t.Fatalf("exporter is %T, want *svg.Exporter", e)
	}
}

func TestRenderEmpty(t *testing.T) {
	got := Render(recording.NewRecording(nil), size)
	want := header + "</svg>"
	if got != want {
		t.Errorf("Render(empty) =\n%s\nwant\n%s", got, want)
	}
}

func TestStrokedLine(t *testing.T) {
	rec := recording.NewRecorder()
	rec.SetStrokeColor(plotdraw.Red)
	rec.SetStrokeWidth(2)
	rec.MoveTo(10, 20)
	rec.LineTo(100, 150)
	rec.StrokePath()

	got := Render(rec.Recording(), size)

	if n := strings.Count(got, "<path"); n != 1 {
		t.Fatalf("got %d <path> elements, want 1:\n%s", n, got)
	}
	wantPath := `<path d="M10,280 L100,150 " fill="none" stroke="#FF0000" stroke-width="2"/>`
	if !strings.Contains(got, wantPath) {
		t.Errorf("missing %s in\n%s", wantPath, got)
	}
	if !strings.Contains(got, `width="200" height="300"`) {
		t.Errorf("document size does not match export size:\n%s", got)
	}
}

func TestText(t *testing.T) {
	rec := recording.NewRecorder()
	rec.Text("Hello World", 50, 100, plotdraw.DefaultTextStyle())

	got := Render(rec.Recording(), size)

	if n := strings.Count(got, "<text"); n != 1 {
		t.Fatalf("got %d <text> elements, want 1", n)
	}
	if !strings.Contains(got, `x="50" y="200"`) {
		t.Errorf("text not placed at y = 300-100:\n%s", got)
	}
	if !strings.Contains(got, ">Hello World</text>") {
		t.Errorf("text content missing:\n%s", got)
	}
}

func TestTextAttributes(t *testing.T) {
	rec := recording.NewRecorder()
	rec.Text(`a<b & "c" 'd'>`, 0, 0, plotdraw.DefaultTextStyle().
		WithSize(14).
		WithWeight(plotdraw.FontWeightBold).
		WithAnchor(plotdraw.AnchorEnd).
		WithColor(plotdraw.Blue))

	got := Render(rec.Recording(), size)
	want := `<text x="0" y="300" font-size="14" font-weight="bold" text-anchor="end" fill="#0000FF">` +
		`a&lt;b &amp; &quot;c&quot; &apos;d&apos;&gt;</text>` + "\n"
	if !strings.Contains(got, want) {
		t.Errorf("got\n%s\nwant element\n%s", got, want)
	}
}

func TestFlushBeforeStyleChange(t *testing.T) {
	rec := recording.NewRecorder()
	rec.MoveTo(0, 0)
	rec.LineTo(10, 10)
	rec.SetStrokeColor(plotdraw.Red)
	rec.MoveTo(20, 20)
	rec.LineTo(30, 30)

	got := Render(rec.Recording(), size)
	want := header +
		`<path d="M0,300 L10,290 " fill="none" stroke="#000000" stroke-width="1"/>` + "\n" +
		`<path d="M20,280 L30,270 " fill="none" stroke="#FF0000" stroke-width="1"/>` + "\n" +
		"</svg>"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestPathTokens(t *testing.T) {
	rec := recording.NewRecorder()
	rec.MoveTo(0, 0)
	rec.CurveTo(1, 2, 3, 4, 5, 6)
	rec.QuadCurveTo(7, 8, 9.5, 10)
	rec.ClosePath()
	rec.FillPath()

	got := Render(rec.Recording(), recording.Size{Width: 10, Height: 10})
	want := `d="M0,10 C1,8 3,6 5,4 Q7,2 9.5,0 Z "`
	if !strings.Contains(got, want) {
		t.Errorf("missing %s in\n%s", want, got)
	}
}

func TestPathAttributes(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *recording.Recorder)
		want  string
	}{
		{
			name:  "opaque fill",
			setup: func(r *recording.Recorder) { r.SetFillColor(plotdraw.Green) },
			want:  `fill="#007F00" stroke="#000000" stroke-width="1"/>`,
		},
		{
			name:  "translucent fill",
			setup: func(r *recording.Recorder) { r.SetFillColor(plotdraw.RGBA(1, 0, 0, 0.25)) },
			want:  `fill="#FF0000" fill-opacity="0.25" stroke="#000000" stroke-width="1"/>`,
		},
		{
			name:  "translucent stroke",
			setup: func(r *recording.Recorder) { r.SetStrokeColor(plotdraw.RGBA(0, 0, 1, 0.5)) },
			want:  `fill="none" stroke="#0000FF" stroke-opacity="0.5" stroke-width="1"/>`,
		},
		{
			name:  "dashed",
			setup: func(r *recording.Recorder) { r.SetStrokeStyle(plotdraw.LineDashed) },
			want:  `fill="none" stroke="#000000" stroke-width="1" stroke-dasharray="6,4"/>`,
		},
		{
			name:  "dash dot",
			setup: func(r *recording.Recorder) { r.SetStrokeStyle(plotdraw.LineDashDot) },
			want:  `stroke-dasharray="6,2,2,2"/>`,
		},
		{
			name:  "transparent fill is none",
			setup: func(r *recording.Recorder) { r.SetFillColor(plotdraw.Transparent) },
			want:  `fill="none" stroke="#000000"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := recording.NewRecorder()
			tt.setup(rec)
			rec.MoveTo(1, 1)
			rec.LineTo(2, 2)
			rec.StrokePath()

			got := Render(rec.Recording(), size)
			if !strings.Contains(got, tt.want) {
				t.Errorf("missing %s in\n%s", tt.want, got)
			}
		})
	}
}

func TestShapes(t *testing.T) {
	rec := recording.NewRecorder()
	rec.SetFillColor(plotdraw.Red)
	rec.Rectangle(10, 20, 30, 40)
	rec.Circle(50, 60, 5)

	got := Render(rec.Recording(), size)
	want := header +
		`<rect x="10" y="240" width="30" height="40" fill="#FF0000" stroke="#000000" stroke-width="1"/>` + "\n" +
		`<ellipse cx="50" cy="240" rx="5" ry="5" fill="#FF0000" stroke="#000000" stroke-width="1"/>` + "\n" +
		"</svg>"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestShapeFlushesPath(t *testing.T) {
	rec := recording.NewRecorder()
	rec.MoveTo(0, 0)
	rec.LineTo(1, 1)
	rec.Rectangle(0, 0, 1, 1)

	got := Render(rec.Recording(), size)
	path := strings.Index(got, "<path")
	rect := strings.Index(got, "<rect x=")
	if path < 0 || rect < 0 || path > rect {
		t.Errorf("path must be flushed before the rectangle:\n%s", got)
	}
}

func TestSilentCommands(t *testing.T) {
	rec := recording.NewRecorder()
	rec.MoveTo(0, 0)
	rec.Arc(10, 10, 5, 0, 3, false)
	rec.Translate(5, 5)
	rec.PopTransform()
	rec.SetAlpha(0.5)
	rec.ClipRect(0, 0, 1, 1)
	rec.ResetClip()
	rec.SaveState()
	rec.RestoreState()
	rec.LineTo(1, 1)

	got := Render(rec.Recording(), size)
	if n := strings.Count(got, "<path"); n != 1 {
		t.Fatalf("got %d paths, want 1:\n%s", n, got)
	}
	if !strings.Contains(got, `d="M0,300 L1,299 "`) {
		t.Errorf("silent commands must not split the path:\n%s", got)
	}
}

func TestExporter(t *testing.T) {
	rec := recording.NewRecorder()
	rec.MoveTo(0.123456, 0)
	rec.LineTo(1, 1)
	rec.StrokePath()
	r := rec.Recording()

	data, err := New().Export(r, size)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if string(data) != Render(r, size) {
		t.Error("Export and Render differ")
	}

	data, err = New(WithPrecision(2)).Export(r, size)
	if err != nil {
		t.Fatalf("Export with precision: %v", err)
	}
	if strings.Contains(string(data), "0.123456") {
		t.Errorf("precision not applied:\n%s", data)
	}

	data, err = New(WithMinify()).Export(r, size)
	if err != nil {
		t.Fatalf("Export with minify: %v", err)
	}
	if len(data) == 0 || len(data) >= len(Render(r, size)) {
		t.Errorf("minified output is %d bytes, want fewer than %d", len(data), len(Render(r, size)))
	}
	if !strings.Contains(string(data), "<svg") {
		t.Errorf("minified output lost the svg element:\n%s", data)
	}

	if _, err := New().Export(r, recording.Size{Width: -1, Height: 1}); !errors.Is(err, recording.ErrInvalidSize) {
		t.Errorf("invalid size error = %v, want ErrInvalidSize", err)
	}
}

func TestFormatExact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2, "2"},
		{2.5, "2.5"},
		{-0.25, "-0.25"},
		{1e21, "1000000000000000000000"},
	}
	for _, tt := range tests {
		if got := formatExact(tt.in); got != tt.want {
			t.Errorf("formatExact(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
