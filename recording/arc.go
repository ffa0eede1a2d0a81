package recording

import "math"

// arcSegment is one cubic Bézier piece of a flattened arc.
type arcSegment struct {
	c1x, c1y float64
	c2x, c2y float64
	x, y     float64
}

// flattenArc approximates an arc by cubic Béziers of at most 90 degrees
// each. It returns the start point and the segments.
//
// Counter-clockwise arcs sweep with increasing angle, clockwise arcs with
// decreasing angle. The sweep is normalized into [0, 2π] in the chosen
// direction, so start and end angles differing by a full turn or more draw
// a full circle.
func flattenArc(a Arc) (sx, sy float64, segs []arcSegment) {
	sx = a.CX + a.Radius*math.Cos(a.StartAngle)
	sy = a.CY + a.Radius*math.Sin(a.StartAngle)

	sweep := a.EndAngle - a.StartAngle
	if a.Clockwise {
		sweep = -sweep
	}
	if math.Abs(sweep) >= 2*math.Pi {
		sweep = 2 * math.Pi
	} else if sweep < 0 {
		sweep += 2 * math.Pi
	}
	if a.Clockwise {
		sweep = -sweep
	}
	if sweep == 0 || math.IsNaN(sweep) {
		return sx, sy, nil
	}

	n := max(int(math.Ceil(math.Abs(sweep)/(math.Pi/2)-1e-9)), 1)
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4) * a.Radius

	segs = make([]arcSegment, 0, n)
	angle := a.StartAngle
	for i := 0; i < n; i++ {
		next := angle + step
		sin0, cos0 := math.Sincos(angle)
		sin1, cos1 := math.Sincos(next)
		segs = append(segs, arcSegment{
			c1x: a.CX + a.Radius*cos0 - k*sin0,
			c1y: a.CY + a.Radius*sin0 + k*cos0,
			c2x: a.CX + a.Radius*cos1 + k*sin1,
			c2y: a.CY + a.Radius*sin1 - k*cos1,
			x:   a.CX + a.Radius*cos1,
			y:   a.CY + a.Radius*sin1,
		})
		angle = next
	}
	return sx, sy, segs
}
