package dim2

import "github.com/go-gl/mathgl/mgl64"

// LineStrip is a builder for a connected sequence of points, ported from
// the reference implementation's dim2::LineStrip. Each call to LineTo
// returns a new LineStrip rather than mutating in place, so callers can
// branch a partially built strip.
type LineStrip struct {
	points   []mgl64.Vec2
	enclosed bool
}

// NewLineStrip starts an empty strip.
func NewLineStrip() LineStrip {
	return LineStrip{}
}

// FromPoints starts a strip already populated with a copy of points.
func FromPoints(points []mgl64.Vec2) LineStrip {
	return LineStrip{points: append([]mgl64.Vec2(nil), points...)}
}

// LineTo appends next to the strip.
func (s LineStrip) LineTo(next mgl64.Vec2) LineStrip {
	s.points = append(append([]mgl64.Vec2(nil), s.points...), next)
	return s
}

// Enclose marks the strip as a closed loop: Build adds a final line back
// to the first point.
func (s LineStrip) Enclose() LineStrip {
	s.enclosed = true
	return s
}

// Build materializes the strip's lines into a Solid.
func (s LineStrip) Build() Solid {
	return FromLines(s.BuildLines())
}

// BuildLines materializes the strip's lines without wrapping them in a
// Solid.
func (s LineStrip) BuildLines() []Line {
	if len(s.points) < 2 {
		return nil
	}

	lines := make([]Line, 0, len(s.points))
	for i := 1; i < len(s.points); i++ {
		lines = append(lines, buildLine([]Vertex{NewVertex(s.points[i-1]), NewVertex(s.points[i])}))
	}
	if s.enclosed {
		lines = append(lines, buildLine([]Vertex{NewVertex(s.points[len(s.points)-1]), NewVertex(s.points[0])}))
	}
	return lines
}
