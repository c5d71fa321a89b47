package model

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/floorplan/geom"
)

// Swing is the renderable geometry of a door's opening path: a quarter-circle
// sector anchored at the hinge, the arc stroke, the straight frame line across
// the opening, and the hinge marker.
type Swing struct {
	Hinge    cp.Vector
	FrameEnd cp.Vector
	// BaseAngle is the direction from hinge to frame end, degrees.
	BaseAngle float64
	// SweepDeg is +90 for a left-opening door, -90 for right.
	SweepDeg float64
	// Radius equals the door width.
	Radius float64
}

// DoorSwing derives the swing geometry of a door on its wall. The door's two
// edge points are ordered by the hinge side before the baseline angle is
// taken.
func DoorSwing(w Wall, d Door) Swing {
	var half float64
	if w.Length > 0 {
		half = d.Width / (2 * w.Length)
	}
	t0 := d.Position - half
	if t0 < 0 {
		t0 = 0
	}
	t1 := d.Position + half
	if t1 > 1 {
		t1 = 1
	}
	hinge, frame := w.PointAt(t0), w.PointAt(t1)
	if d.Hinge == HingeEnd {
		hinge, frame = frame, hinge
	}
	sweep := -90.0
	if d.Opening == OpenLeft {
		sweep = 90
	}
	return Swing{
		Hinge:     hinge,
		FrameEnd:  frame,
		BaseAngle: geom.DirectionDeg(hinge, frame),
		SweepDeg:  sweep,
		Radius:    d.Width,
	}
}

// LeafEnd is the free end of the fully opened door leaf, at the far end of the
// swept arc.
func (s Swing) LeafEnd() cp.Vector {
	return geom.PolarOffset(s.Hinge, s.BaseAngle+s.SweepDeg, s.Radius)
}
