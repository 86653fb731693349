// Package radar computes the screen layout of a skill radar chart.
//
// The circle is split into N equal sectors starting straight up and running
// clockwise in screen coordinates (y grows downwards). A score v in [0,100]
// on axis i is placed at radius v/100*R along angle i*360/N - 90 degrees.
package radar

import (
	"errors"
	"fmt"
	"math"
)

// Default drawing constants.
const (
	DefaultSize        = 300.0
	DefaultMargin      = 40.0
	DefaultLabelOffset = 25.0
	MaxScore           = 100.0
)

// Levels are the scores at which reference polygons are drawn.
var Levels = []float64{25, 50, 75, 100}

var (
	ErrNoAxes            = errors.New("radar needs at least one axis")
	ErrMismatchedProfile = errors.New("skill names and scores differ in length")
	ErrScoreOutOfRange   = errors.New("score out of range [0,100]")
	ErrInvalidOptions    = errors.New("invalid radar options")
)

// Point is a position in screen coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Profile is the radar input: index-aligned skill names and scores.
type Profile struct {
	Names  []string
	Scores []float64
}

// Options controls the drawing area.
type Options struct {
	Size        float64 // width and height of the square drawing area
	Margin      float64 // gap between the 100% ring and the drawing edge
	LabelOffset float64 // distance of labels beyond the 100% ring
}

// DefaultOptions returns the standard 300x300 layout.
func DefaultOptions() Options {
	return Options{
		Size:        DefaultSize,
		Margin:      DefaultMargin,
		LabelOffset: DefaultLabelOffset,
	}
}

// Radius returns the maximum plotting radius R.
func (o Options) Radius() float64 {
	return o.Size/2 - o.Margin
}

// Center returns the chart center.
func (o Options) Center() Point {
	return Point{X: o.Size / 2, Y: o.Size / 2}
}

func (o Options) validate() error {
	if o.Size <= 0 || o.Margin < 0 || o.LabelOffset < 0 || o.Radius() <= 0 {
		return fmt.Errorf("%w: size=%v margin=%v label_offset=%v", ErrInvalidOptions, o.Size, o.Margin, o.LabelOffset)
	}
	return nil
}

// Axis is one spoke of the chart.
type Axis struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Angle float64 `json:"angle"` // degrees
	End   Point   `json:"end"`   // 100% point
	Data  Point   `json:"data"`  // score point
	Label Point   `json:"label"` // label anchor
}

// Ring is a reference polygon at a fixed level.
type Ring struct {
	Level  float64 `json:"level"`
	Points []Point `json:"points"`
}

// Chart is the full layout of a radar chart.
type Chart struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
	Size   float64 `json:"size"`
	Rings  []Ring  `json:"rings"`
	Axes   []Axis  `json:"axes"`
}

// Angle returns the angle in degrees of axis i out of n.
func Angle(i, n int) float64 {
	return float64(i)*(360/float64(n)) - 90
}

// position places value v on axis i of n.
func position(center Point, radius float64, i, n int, v float64) Point {
	theta := Angle(i, n) * math.Pi / 180
	r := v / MaxScore * radius
	return Point{
		X: center.X + r*math.Cos(theta),
		Y: center.Y + r*math.Sin(theta),
	}
}

// Layout computes the chart for profile p.
func Layout(p Profile, opts Options) (*Chart, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	n := len(p.Names)
	if n != len(p.Scores) {
		return nil, fmt.Errorf("%w: %d names, %d scores", ErrMismatchedProfile, n, len(p.Scores))
	}
	if n == 0 {
		return nil, ErrNoAxes
	}
	for i, score := range p.Scores {
		if math.IsNaN(score) || score < 0 || score > MaxScore {
			return nil, fmt.Errorf("%w: %s=%v", ErrScoreOutOfRange, p.Names[i], score)
		}
	}

	center := opts.Center()
	radius := opts.Radius()

	chart := &Chart{
		Center: center,
		Radius: radius,
		Size:   opts.Size,
		Rings:  make([]Ring, 0, len(Levels)),
		Axes:   make([]Axis, n),
	}

	for _, level := range Levels {
		ring := Ring{Level: level, Points: make([]Point, n)}
		for i := 0; i < n; i++ {
			ring.Points[i] = position(center, radius, i, n, level)
		}
		chart.Rings = append(chart.Rings, ring)
	}

	// Labels sit LabelOffset beyond the 100% ring
	labelScore := (radius + opts.LabelOffset) / radius * MaxScore
	for i := 0; i < n; i++ {
		chart.Axes[i] = Axis{
			Name:  p.Names[i],
			Score: p.Scores[i],
			Angle: Angle(i, n),
			End:   position(center, radius, i, n, MaxScore),
			Data:  position(center, radius, i, n, p.Scores[i]),
			Label: position(center, radius, i, n, labelScore),
		}
	}

	return chart, nil
}

// DataPolygon returns the score points in axis order.
func (c *Chart) DataPolygon() []Point {
	points := make([]Point, len(c.Axes))
	for i, axis := range c.Axes {
		points[i] = axis.Data
	}
	return points
}
