// Package model defines the floor-plan entities (walls, doors) and the derived
// geometry the tools and renderer need: point-on-wall projection, hit-testing,
// segment splitting around door openings, and door swing arcs.
//
// World units are centimeters; 100 units is one meter.
package model

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/floorplan/geom"
)

// MinWallLength is the shortest wall the tools will commit, in world units.
// Shorter attempts are discarded, not clamped.
const MinWallLength = 5.0

// Wall is a straight segment with thickness. Length and Angle are derived from
// the endpoints and recomputed whenever the endpoints change.
type Wall struct {
	ID        int
	Start     cp.Vector
	End       cp.Vector
	Thickness float64
	Length    float64
	Angle     float64 // degrees, direction from Start to End

	// SnapToGrid records whether grid snapping was active when the wall was
	// drawn. SnapAngle holds the angle-snap value applied to the endpoint,
	// valid only when AngleSnapped is true.
	SnapToGrid   bool
	AngleSnapped bool
	SnapAngle    float64
}

// NewWall builds a wall between two points and derives Length and Angle.
func NewWall(start, end cp.Vector, thickness float64) Wall {
	w := Wall{Start: start, End: end, Thickness: thickness}
	w.recompute()
	return w
}

func (w *Wall) recompute() {
	w.Length = w.Start.Distance(w.End)
	w.Angle = geom.DirectionDeg(w.Start, w.End)
}

// SetEndpoints moves both endpoints and rederives Length and Angle.
func (w *Wall) SetEndpoints(start, end cp.Vector) {
	w.Start = start
	w.End = end
	w.recompute()
}

// SetLength keeps the start point and current angle and moves the end point
// to the new length. Lengths below MinWallLength are ignored.
func (w *Wall) SetLength(length float64) {
	if length < MinWallLength {
		return
	}
	w.End = geom.PolarOffset(w.Start, w.Angle, length)
	w.recompute()
}

// SetAngle keeps the start point and current length and swings the end point
// to the new angle, in degrees.
func (w *Wall) SetAngle(deg float64) {
	w.End = geom.PolarOffset(w.Start, deg, w.Length)
	w.recompute()
}

// PointAt expands a parametric position in [0,1] into world coordinates.
func (w Wall) PointAt(t float64) cp.Vector {
	return geom.PointAt(w.Start, w.End, t)
}

// ProjectParam projects p onto the wall and returns the clamped parametric
// position.
func (w Wall) ProjectParam(p cp.Vector) float64 {
	return geom.ProjectParam(w.Start, w.End, p)
}

// DistanceTo returns the distance from p to the closest point on the wall's
// centerline.
func (w Wall) DistanceTo(p cp.Vector) float64 {
	return geom.DistToSegment(w.Start, w.End, p)
}

// Side classifies p against the wall's start->end direction.
func (w Wall) Side(p cp.Vector) geom.Side {
	return geom.SideOfLine(w.Start, w.End, p)
}
