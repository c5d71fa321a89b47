// Package geom holds the small 2D helpers shared by the floor-plan model and
// tools. Everything works on cp.Vector so the rest of the code can lean on the
// chipmunk vector ops instead of hand-rolled math.
package geom

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Side identifies which side of a directed line a point lies on.
type Side int

const (
	SideRight Side = iota
	SideLeft
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

func DegToRad(deg float64) float64 { return deg * math.Pi / 180 }

func RadToDeg(rad float64) float64 { return rad * 180 / math.Pi }

// NormalizeDeg wraps an angle into [-180, 180].
func NormalizeDeg(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d > 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	return d
}

// DirectionDeg returns the direction from a to b in degrees, in [-180, 180].
func DirectionDeg(a, b cp.Vector) float64 {
	return RadToDeg(b.Sub(a).ToAngle())
}

// PolarOffset returns the point at the given distance from origin along
// angleDeg.
func PolarOffset(origin cp.Vector, angleDeg, dist float64) cp.Vector {
	return origin.Add(cp.ForAngle(DegToRad(angleDeg)).Mult(dist))
}

// ProjectParam projects p onto the segment a-b and returns the parametric
// position clamped to [0, 1]. A zero-length segment projects to 0.
func ProjectParam(a, b, p cp.Vector) float64 {
	d := b.Sub(a)
	lenSq := d.LengthSq()
	if lenSq == 0 {
		return 0
	}
	return clamp01(p.Sub(a).Dot(d) / lenSq)
}

// PointAt expands a parametric position on the segment a-b back into world
// coordinates.
func PointAt(a, b cp.Vector, t float64) cp.Vector {
	return a.Lerp(b, t)
}

// DistToSegment returns the distance from p to the closest point on the
// segment a-b.
func DistToSegment(a, b, p cp.Vector) float64 {
	return p.Distance(PointAt(a, b, ProjectParam(a, b, p)))
}

// SideOfLine classifies p against the directed line a->b. The test dots the
// offset of p from a with the right-hand perpendicular (d.y, -d.x) of the line
// direction; a non-negative result is SideRight. Points exactly on the line
// count as SideRight.
func SideOfLine(a, b, p cp.Vector) Side {
	if p.Sub(a).Dot(b.Sub(a).ReversePerp()) >= 0 {
		return SideRight
	}
	return SideLeft
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
