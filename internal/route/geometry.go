// Package route holds the stylised run diagram: the slope outline, the
// dashed path the rider took and the trick markers along it.
package route

import "math"

// Point is a position in diagram units. Y grows downwards, as on screen.
type Point struct {
	X, Y float64
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Curve is a parametric curve over t in [0, 1].
type Curve interface {
	At(t float64) Point
}

// Cubic is a cubic bezier curve.
type Cubic struct {
	P0, P1, P2, P3 Point
}

func (c Cubic) At(t float64) Point {
	u := 1 - t
	a, b, cc, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return Point{
		X: a*c.P0.X + b*c.P1.X + cc*c.P2.X + d*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + cc*c.P2.Y + d*c.P3.Y,
	}
}

// Quad is a quadratic bezier curve.
type Quad struct {
	P0, P1, P2 Point
}

func (q Quad) At(t float64) Point {
	u := 1 - t
	a, b, c := u*u, 2*u*t, t*t
	return Point{
		X: a*q.P0.X + b*q.P1.X + c*q.P2.X,
		Y: a*q.P0.Y + b*q.P1.Y + c*q.P2.Y,
	}
}

// Sample returns n+1 evenly spaced points along c, endpoints included.
func Sample(c Curve, n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		pts = append(pts, c.At(float64(i)/float64(n)))
	}
	return pts
}

// Segment is a straight piece of a polyline.
type Segment struct {
	From, To Point
}

// Polyline joins consecutive points into segments.
func Polyline(pts []Point) []Segment {
	if len(pts) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		segs = append(segs, Segment{From: pts[i-1], To: pts[i]})
	}
	return segs
}

// Dashed walks the polyline through pts by arc length and keeps the "on"
// stretches of an on/off dash pattern. Dashes may span polyline vertices.
func Dashed(pts []Point, on, off float64) []Segment {
	if on <= 0 {
		return nil
	}
	if off <= 0 {
		return Polyline(pts)
	}

	var (
		dashes  []Segment
		drawing = true
		left    = on // length remaining in the current dash or gap
		start   Point
	)
	if len(pts) > 0 {
		start = pts[0]
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := a.Dist(b)
		pos := 0.0
		for segLen-pos > 1e-9 {
			step := math.Min(left, segLen-pos)
			pos += step
			left -= step
			end := a.Lerp(b, pos/segLen)
			if left > 1e-9 {
				continue
			}
			if drawing {
				// a dash crossing a vertex is kept as one chord
				if start.Dist(end) > 1e-9 {
					dashes = append(dashes, Segment{From: start, To: end})
				}
				left = off
			} else {
				start = end
				left = on
			}
			drawing = !drawing
		}
		if drawing && i == len(pts)-1 && start.Dist(b) > 1e-9 {
			dashes = append(dashes, Segment{From: start, To: b})
		}
	}
	return dashes
}
