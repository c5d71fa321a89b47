// Package scene turns the current plan and tool previews into
// renderer-agnostic drawing intents. All geometry is in world coordinates;
// the renderer applies the camera transform.
package scene

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

// Line is a stroked segment. Width is in world units; the renderer scales it
// with the zoom.
type Line struct {
	A, B  cp.Vector
	Width float64
	Color color.RGBA
}

// Arc is a stroked circular arc from StartDeg sweeping SweepDeg (sign gives
// the direction).
type Arc struct {
	Center   cp.Vector
	Radius   float64
	StartDeg float64
	SweepDeg float64
	Width    float64
	Color    color.RGBA
}

// Sector is a filled pie slice with the same angle convention as Arc.
type Sector struct {
	Center   cp.Vector
	Radius   float64
	StartDeg float64
	SweepDeg float64
	Color    color.RGBA
}

// Circle is a point marker; Radius is in screen pixels so markers keep their
// size across zoom levels.
type Circle struct {
	Center cp.Vector
	Radius float64
	Fill   bool
	Color  color.RGBA
}

// Label is a text annotation; Pos is in world coordinates but the text renders
// at a fixed screen size.
type Label struct {
	Pos   cp.Vector
	Text  string
	Color color.RGBA
}

// Frame is everything to draw for one rendered frame, in draw order.
type Frame struct {
	GridLines []Line
	Lines     []Line
	Sectors   []Sector
	Arcs      []Arc
	Circles   []Circle
	Labels    []Label
}
