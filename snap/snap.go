// Package snap resolves raw world points against the three snapping rules:
// wall endpoints first, then the grid, and independently of those an angle
// snap for the far end of a wall being drawn.
package snap

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/floorplan/geom"
	"github.com/milk9111/floorplan/model"
)

const (
	// EndpointRange is how close a point must be to an existing wall endpoint
	// to snap onto it, in world units.
	EndpointRange = 15.0
	// AngleRange is the tolerance around an allowed angle, in degrees.
	AngleRange = 5.0
)

// Kind says which rule produced a resolved point.
type Kind int

const (
	None Kind = iota
	Endpoint
	Grid
)

// Resolver holds the snapping configuration. It is stateless with respect to
// the plan; walls are passed per call so the resolver never sees stale data.
type Resolver struct {
	GridSize   float64
	SnapToGrid bool
	Angles     []float64
}

// Point is a resolved point plus how it was resolved.
type Point struct {
	Pos     cp.Vector
	Kind    Kind
	Snapped bool
}

// End is the resolved far end of a wall in progress: point snapping plus the
// angle-snap adjustment relative to the anchor.
type End struct {
	Point
	AngleDeg     float64
	AngleSnapped bool
}

// ResolvePoint applies endpoint snapping, then grid snapping. The two are
// mutually exclusive: a point close enough to an existing endpoint is returned
// exactly, off-grid or not, so chained walls share coordinates.
func (r *Resolver) ResolvePoint(walls []model.Wall, p cp.Vector) Point {
	if ep, ok := r.nearestEndpoint(walls, p); ok {
		return Point{Pos: ep, Kind: Endpoint, Snapped: true}
	}
	if r.SnapToGrid && r.GridSize > 0 {
		snapped := cp.Vector{
			X: math.Round(p.X/r.GridSize) * r.GridSize,
			Y: math.Round(p.Y/r.GridSize) * r.GridSize,
		}
		return Point{Pos: snapped, Kind: Grid, Snapped: !snapped.Near(p, 1e-9)}
	}
	return Point{Pos: p}
}

// ResolveEnd resolves the preview endpoint of a wall anchored at anchor:
// point snapping first, then the angle snap as an independent adjustment that
// keeps the distance from the anchor and rotates onto the nearest allowed
// angle when within tolerance.
func (r *Resolver) ResolveEnd(walls []model.Wall, anchor, p cp.Vector) End {
	res := End{Point: r.ResolvePoint(walls, p)}
	res.AngleDeg = geom.DirectionDeg(anchor, res.Pos)

	best, ok := r.nearestAngle(res.AngleDeg)
	if !ok {
		return res
	}
	dist := anchor.Distance(res.Pos)
	res.Pos = geom.PolarOffset(anchor, best, dist)
	res.AngleDeg = best
	res.AngleSnapped = true
	return res
}

func (r *Resolver) nearestEndpoint(walls []model.Wall, p cp.Vector) (cp.Vector, bool) {
	best := cp.Vector{}
	bestDist := EndpointRange
	found := false
	for _, w := range walls {
		for _, ep := range [2]cp.Vector{w.Start, w.End} {
			if d := p.Distance(ep); d <= bestDist {
				best = ep
				bestDist = d
				found = true
			}
		}
	}
	return best, found
}

func (r *Resolver) nearestAngle(raw float64) (float64, bool) {
	best := 0.0
	bestDiff := AngleRange
	found := false
	for _, a := range r.Angles {
		if diff := math.Abs(geom.NormalizeDeg(raw - a)); diff <= bestDiff {
			best = a
			bestDiff = diff
			found = true
		}
	}
	return best, found
}
