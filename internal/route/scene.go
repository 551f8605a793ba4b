package route

// Scene is a run diagram in a fixed coordinate space of Width x Height
// units. Render scales it to whatever terminal area is available.
type Scene struct {
	Width, Height float64

	// Slope is the outline of the mountain side.
	Slope Curve
	// Path is the line the rider took down the slope, drawn dashed.
	Path Curve
	// Markers are trick locations along the path.
	Markers []Point
	// MarkerSize is the marker diameter in diagram units.
	MarkerSize float64

	// DashOn and DashOff are the path's dash pattern in diagram units.
	DashOn, DashOff float64
}

// DefaultScene returns the illustrative diagram shown for every run.
func DefaultScene() Scene {
	return Scene{
		Width:  400,
		Height: 200,
		Slope: Cubic{
			P0: Point{50, 150},
			P1: Point{150, 50},
			P2: Point{250, 100},
			P3: Point{350, 150},
		},
		Path: Quad{
			P0: Point{70, 140},
			P1: Point{200, 80},
			P2: Point{330, 140},
		},
		Markers:    []Point{{80, 135}, {200, 135}, {320, 135}},
		MarkerSize: 8,
		DashOn:     5,
		DashOff:    5,
	}
}

// curveSamples is the number of straight pieces each curve is split into.
const curveSamples = 64

// SlopeSegments returns the slope outline as a solid polyline.
func (s Scene) SlopeSegments() []Segment {
	if s.Slope == nil {
		return nil
	}
	return Polyline(Sample(s.Slope, curveSamples))
}

// PathSegments returns the visible dashes of the rider's path.
func (s Scene) PathSegments() []Segment {
	if s.Path == nil {
		return nil
	}
	return Dashed(Sample(s.Path, curveSamples*4), s.DashOn, s.DashOff)
}

// MarkerSegments outlines each marker as a small diamond.
func (s Scene) MarkerSegments() []Segment {
	r := s.MarkerSize / 2
	segs := make([]Segment, 0, len(s.Markers)*5)
	for _, m := range s.Markers {
		top := Point{m.X, m.Y - r}
		right := Point{m.X + r, m.Y}
		bottom := Point{m.X, m.Y + r}
		left := Point{m.X - r, m.Y}
		segs = append(segs,
			Segment{top, right},
			Segment{right, bottom},
			Segment{bottom, left},
			Segment{left, top},
			Segment{left, right},
		)
	}
	return segs
}
