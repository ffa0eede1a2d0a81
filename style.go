package plotdraw

// FontWeight selects the weight of a text run.
type FontWeight uint8

const (
	FontWeightNormal FontWeight = iota
	FontWeightBold
	// FontWeightLight has no dedicated face in any backend and renders as
	// FontWeightNormal.
	FontWeightLight
)

var fontWeightNames = [...]string{
	FontWeightNormal: "normal",
	FontWeightBold:   "bold",
	FontWeightLight:  "light",
}

// String returns the CSS-style weight name.
func (w FontWeight) String() string {
	if int(w) < len(fontWeightNames) {
		return fontWeightNames[w]
	}
	return "unknown"
}

// TextAnchor is the horizontal alignment of text relative to its position.
type TextAnchor uint8

const (
	AnchorStart  TextAnchor = iota // left edge at the position
	AnchorMiddle                   // centered on the position
	AnchorEnd                      // right edge at the position
)

var textAnchorNames = [...]string{
	AnchorStart:  "start",
	AnchorMiddle: "middle",
	AnchorEnd:    "end",
}

// String returns the anchor name as used by the SVG text-anchor attribute.
func (a TextAnchor) String() string {
	if int(a) < len(textAnchorNames) {
		return textAnchorNames[a]
	}
	return "unknown"
}

// TextStyle describes how a text run is drawn.
type TextStyle struct {
	FontFamily string
	FontSize   float64
	FontWeight FontWeight
	Color      Color
	Anchor     TextAnchor
}

// DefaultTextStyle returns 12pt sans-serif black text anchored at its start.
func DefaultTextStyle() TextStyle {
	return TextStyle{
		FontFamily: "sans-serif",
		FontSize:   12,
		FontWeight: FontWeightNormal,
		Color:      Black,
		Anchor:     AnchorStart,
	}
}

// WithFamily returns a copy of s using the given font family.
func (s TextStyle) WithFamily(family string) TextStyle {
	s.FontFamily = family
	return s
}

// WithSize returns a copy of s using the given font size.
func (s TextStyle) WithSize(size float64) TextStyle {
	s.FontSize = size
	return s
}

// WithWeight returns a copy of s using the given weight.
func (s TextStyle) WithWeight(w FontWeight) TextStyle {
	s.FontWeight = w
	return s
}

// WithColor returns a copy of s using the given color.
func (s TextStyle) WithColor(c Color) TextStyle {
	s.Color = c
	return s
}

// WithAnchor returns a copy of s using the given anchor.
func (s TextStyle) WithAnchor(a TextAnchor) TextStyle {
	s.Anchor = a
	return s
}

// LineStyle selects a stroke dash pattern.
type LineStyle uint8

const (
	LineSolid LineStyle = iota
	LineDashed
	LineDotted
	LineDashDot
	LineNone
)

var lineStyleInfo = [...]struct {
	name string
	code string
	dash []float64
}{
	LineSolid:   {"solid", "-", nil},
	LineDashed:  {"dashed", "--", []float64{6, 4}},
	LineDotted:  {"dotted", ":", []float64{2, 2}},
	LineDashDot: {"dashdot", "-.", []float64{6, 2, 2, 2}},
	LineNone:    {"none", "", nil},
}

// String returns the line style name.
func (s LineStyle) String() string {
	if int(s) < len(lineStyleInfo) {
		return lineStyleInfo[s].name
	}
	return "unknown"
}

// Code returns the short symbolic code ("-", "--", ":", "-.", "").
func (s LineStyle) Code() string {
	if int(s) < len(lineStyleInfo) {
		return lineStyleInfo[s].code
	}
	return ""
}

// DashPattern returns the alternating on/off lengths for s, in the same
// unit as the stroke width. Solid and none return nil.
// The returned slice is a fresh copy.
func (s LineStyle) DashPattern() []float64 {
	if int(s) >= len(lineStyleInfo) || lineStyleInfo[s].dash == nil {
		return nil
	}
	return append([]float64(nil), lineStyleInfo[s].dash...)
}

// IsDashed reports whether s has a dash pattern.
func (s LineStyle) IsDashed() bool {
	return int(s) < len(lineStyleInfo) && lineStyleInfo[s].dash != nil
}

// ParseLineStyle maps a symbolic code back to its LineStyle.
func ParseLineStyle(code string) (LineStyle, bool) {
	for i, info := range lineStyleInfo {
		if info.code == code {
			return LineStyle(i), true
		}
	}
	return LineSolid, false
}

// MarkerStyle identifies the symbol drawn at a data point.
type MarkerStyle uint8

const (
	MarkerCircle MarkerStyle = iota
	MarkerSquare
	MarkerDiamond
	MarkerTriangleUp
	MarkerTriangleDown
	MarkerTriangleLeft
	MarkerTriangleRight
	MarkerPlus
	MarkerCross
	MarkerStar
	MarkerDot
	MarkerNone
)

var markerStyleInfo = [...]struct {
	name string
	code string
}{
	MarkerCircle:        {"circle", "o"},
	MarkerSquare:        {"square", "s"},
	MarkerDiamond:       {"diamond", "D"},
	MarkerTriangleUp:    {"triangleUp", "^"},
	MarkerTriangleDown:  {"triangleDown", "v"},
	MarkerTriangleLeft:  {"triangleLeft", "<"},
	MarkerTriangleRight: {"triangleRight", ">"},
	MarkerPlus:          {"plus", "+"},
	MarkerCross:         {"cross", "x"},
	MarkerStar:          {"star", "*"},
	MarkerDot:           {"dot", "."},
	MarkerNone:          {"none", ""},
}

// String returns the marker name.
func (m MarkerStyle) String() string {
	if int(m) < len(markerStyleInfo) {
		return markerStyleInfo[m].name
	}
	return "unknown"
}

// Code returns the short symbolic code, e.g. "o" for a circle.
func (m MarkerStyle) Code() string {
	if int(m) < len(markerStyleInfo) {
		return markerStyleInfo[m].code
	}
	return ""
}

// ParseMarkerStyle maps a symbolic code back to its MarkerStyle.
func ParseMarkerStyle(code string) (MarkerStyle, bool) {
	for i, info := range markerStyleInfo {
		if info.code == code {
			return MarkerStyle(i), true
		}
	}
	return MarkerNone, false
}
