package svg

import (
	"strings"

	"github.com/gogpu/plotdraw"
	"github.com/gogpu/plotdraw/recording"
)

// markup replays commands into SVG text. Path commands accumulate in path
// until a flush turns them into one <path> element carrying the running
// style.
type markup struct {
	out    strings.Builder
	path   strings.Builder
	height float64
	num    func(float64) string

	stroke plotdraw.Color
	fill   plotdraw.Color
	width  float64
	style  plotdraw.LineStyle

	skipped int
}

func newMarkup(height float64, num func(float64) string) *markup {
	return &markup{
		height: height,
		num:    num,
		stroke: plotdraw.Black,
		fill:   plotdraw.Transparent,
		width:  1,
		style:  plotdraw.LineSolid,
	}
}

// point writes "x,y" with y flipped.
func (m *markup) point(x, y float64) {
	m.path.WriteString(m.num(x))
	m.path.WriteByte(',')
	m.path.WriteString(m.num(m.height - y))
}

//nolint:gocyclo,cyclop // one case per command type
func (m *markup) exec(cmd recording.Command) {
	switch cmd := cmd.(type) {
	case recording.MoveTo:
		m.path.WriteByte('M')
		m.point(cmd.X, cmd.Y)
		m.path.WriteByte(' ')
	case recording.LineTo:
		m.path.WriteByte('L')
		m.point(cmd.X, cmd.Y)
		m.path.WriteByte(' ')
	case recording.CurveTo:
		m.path.WriteByte('C')
		m.point(cmd.C1X, cmd.C1Y)
		m.path.WriteByte(' ')
		m.point(cmd.C2X, cmd.C2Y)
		m.path.WriteByte(' ')
		m.point(cmd.X, cmd.Y)
		m.path.WriteByte(' ')
	case recording.QuadCurveTo:
		m.path.WriteByte('Q')
		m.point(cmd.CX, cmd.CY)
		m.path.WriteByte(' ')
		m.point(cmd.X, cmd.Y)
		m.path.WriteByte(' ')
	case recording.ClosePath:
		m.path.WriteString("Z ")

	case recording.Rectangle:
		m.flush()
		m.element("rect",
			"x", m.num(cmd.X),
			"y", m.num(m.height-cmd.Y-cmd.Height),
			"width", m.num(cmd.Width),
			"height", m.num(cmd.Height))
	case recording.Ellipse:
		m.flush()
		m.element("ellipse",
			"cx", m.num(cmd.CX),
			"cy", m.num(m.height-cmd.CY),
			"rx", m.num(cmd.RX),
			"ry", m.num(cmd.RY))
	case recording.Arc:
		// Arcs produce no markup.
		m.skipped++
	case recording.Text:
		m.flush()
		m.text(cmd)

	case recording.SetStrokeColor:
		m.flush()
		m.stroke = cmd.Color
	case recording.SetStrokeWidth:
		m.flush()
		m.width = cmd.Width
	case recording.SetStrokeStyle:
		m.flush()
		m.style = cmd.Style
	case recording.SetFillColor:
		m.flush()
		m.fill = cmd.Color
	case recording.StrokePath, recording.FillPath, recording.FillAndStrokePath:
		m.flush()
	}
}

// flush emits the accumulated path, if any, with the running style.
func (m *markup) flush() {
	if m.path.Len() == 0 {
		return
	}
	m.out.WriteString(`<path d="`)
	m.out.WriteString(m.path.String())
	m.out.WriteByte('"')
	if m.fill.IsTransparent() {
		m.attr("fill", "none")
	} else {
		m.attr("fill", m.fill.Hex())
		if m.fill.A < 1 {
			m.attr("fill-opacity", m.num(m.fill.A))
		}
	}
	m.attr("stroke", m.stroke.Hex())
	if m.stroke.A < 1 {
		m.attr("stroke-opacity", m.num(m.stroke.A))
	}
	m.attr("stroke-width", m.num(m.width))
	if dash := m.style.DashPattern(); dash != nil {
		parts := make([]string, len(dash))
		for i, d := range dash {
			parts[i] = m.num(d)
		}
		m.attr("stroke-dasharray", strings.Join(parts, ","))
	}
	m.out.WriteString("/>\n")
	m.path.Reset()
}

// element writes a self-contained shape with the running fill and stroke.
func (m *markup) element(name string, geom ...string) {
	m.out.WriteByte('<')
	m.out.WriteString(name)
	m.out.WriteByte(' ')
	for i := 0; i+1 < len(geom); i += 2 {
		if i > 0 {
			m.out.WriteByte(' ')
		}
		m.out.WriteString(geom[i])
		m.out.WriteString(`="`)
		m.out.WriteString(geom[i+1])
		m.out.WriteByte('"')
	}
	fill := "none"
	if !m.fill.IsTransparent() {
		fill = m.fill.Hex()
	}
	m.attr("fill", fill)
	m.attr("stroke", m.stroke.Hex())
	m.attr("stroke-width", m.num(m.width))
	m.out.WriteString("/>\n")
}

func (m *markup) text(t recording.Text) {
	m.out.WriteString(`<text x="`)
	m.out.WriteString(m.num(t.X))
	m.out.WriteByte('"')
	m.attr("y", m.num(m.height-t.Y))
	m.attr("font-size", m.num(t.Style.FontSize))
	if t.Style.FontWeight == plotdraw.FontWeightBold {
		m.attr("font-weight", "bold")
	}
	m.attr("text-anchor", t.Style.Anchor.String())
	m.attr("fill", t.Style.Color.Hex())
	m.out.WriteByte('>')
	m.out.WriteString(escaper.Replace(t.Text))
	m.out.WriteString("</text>\n")
}

// attr writes ` name="value"`.
func (m *markup) attr(name, value string) {
	m.out.WriteByte(' ')
	m.out.WriteString(name)
	m.out.WriteString(`="`)
	m.out.WriteString(value)
	m.out.WriteByte('"')
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)
