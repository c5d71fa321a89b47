package model

import (
	"sort"

	"github.com/jakecoffman/cp"
)

// Segment is a door-free stretch of a wall in parametric coordinates.
type Segment struct {
	T0, T1 float64
}

// WallSegments splits a wall around its doors: a wall with N doors renders as
// up to N+1 solid strokes. Doors are processed in Position order; each one
// removes [position - w/2L, position + w/2L] from the remaining span.
func WallSegments(w Wall, doors []Door) []Segment {
	if w.Length == 0 {
		return nil
	}
	sorted := append([]Door(nil), doors...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })

	var segs []Segment
	cursor := 0.0
	for _, d := range sorted {
		half := d.Width / (2 * w.Length)
		doorStart := d.Position - half
		if doorStart < 0 {
			doorStart = 0
		}
		doorEnd := d.Position + half
		if doorEnd > 1 {
			doorEnd = 1
		}
		if doorStart > cursor {
			segs = append(segs, Segment{T0: cursor, T1: doorStart})
		}
		if doorEnd > cursor {
			cursor = doorEnd
		}
	}
	if cursor < 1 {
		segs = append(segs, Segment{T0: cursor, T1: 1})
	}
	return segs
}

// SegmentPoints expands a parametric segment into its world endpoints.
func (w Wall) SegmentPoints(s Segment) (cp.Vector, cp.Vector) {
	return w.PointAt(s.T0), w.PointAt(s.T1)
}
