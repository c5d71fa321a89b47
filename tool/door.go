package tool

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/floorplan/geom"
	"github.com/milk9111/floorplan/model"
)

// Hit-test thresholds for the three door placement interactions, world units.
const (
	HingeHitRange   = 15.0
	CommitHitRange  = 25.0
	PreviewHitRange = 20.0
	// DirectionSlack extends the clickable radius of a direction region past
	// the swing radius.
	DirectionSlack = 30.0
)

type doorState interface{ doorState() }

type doorIdle struct{}

// doorAnchor is the phase after the first click fixed the hinge point on a
// wall.
type doorAnchor struct {
	wallID     int
	hinge      cp.Vector
	hingeParam float64
}

// doorEdge adds the live far-edge preview while the pointer moves along the
// wall.
type doorEdge struct {
	doorAnchor
	edge      cp.Vector
	edgeParam float64
}

// doorDirection is the phase after the second click fixed the opening width;
// the user now picks the swing direction from two quarter-circle regions.
type doorDirection struct {
	choice DirectionChoice
}

func (doorIdle) doorState()      {}
func (doorAnchor) doorState()    {}
func (doorEdge) doorState()      {}
func (doorDirection) doorState() {}

// Anchor is the fixed hinge point of a door in progress.
type Anchor struct {
	WallID     int
	Hinge      cp.Vector
	HingeParam float64
}

// EdgePreview is the live far edge of a door in progress.
type EdgePreview struct {
	Anchor
	Edge      cp.Vector
	EdgeParam float64
	Width     float64
}

// DirectionChoice is the pending door waiting for a swing direction. EndSide
// records which side of the wall the raw second click fell on; it is fixed at
// that click and not refined afterwards.
type DirectionChoice struct {
	WallID     int
	Hinge      cp.Vector
	FarEdge    cp.Vector
	HingeParam float64
	FarParam   float64
	Width      float64
	// BaseAngle is the hinge->farEdge direction in degrees; the two
	// quarter-circle regions sweep +90 and -90 degrees from it.
	BaseAngle float64
	EndSide   geom.Side
	HingeSide model.HingeSide
}

// Classify places a pointer position into one of the two direction regions.
// The angle of the pointer relative to the baseline, wrapped to [-180,180],
// selects the region: [-90,0] is the right-opening region, (0,90] the left.
// Points outside both quarter circles, or farther than radius+slack from the
// hinge, select nothing.
func (c DirectionChoice) Classify(p cp.Vector) (model.OpeningDirection, bool) {
	if c.Hinge.Distance(p) > c.Width+DirectionSlack {
		return 0, false
	}
	rel := geom.NormalizeDeg(geom.DirectionDeg(c.Hinge, p) - c.BaseAngle)
	switch {
	case rel >= -90 && rel <= 0:
		return model.OpenRight, true
	case rel > 0 && rel <= 90:
		return model.OpenLeft, true
	}
	return 0, false
}

// DoorTool is the three-stage door placement machine: a click on a wall fixes
// the hinge, a second click on the same wall fixes the far edge and width, and
// a click in one of the two quarter-circle regions picks the swing direction
// and commits.
type DoorTool struct {
	OnCommit func(model.Door)

	state doorState
}

func NewDoorTool(onCommit func(model.Door)) *DoorTool {
	return &DoorTool{OnCommit: onCommit, state: doorIdle{}}
}

// Click advances the machine with a raw world-space click point. Invalid
// clicks fail closed: anything that does not hit a wall, produces a
// sub-minimum width, or lands outside both direction regions resets to idle
// without committing.
func (t *DoorTool) Click(plan *model.Plan, p cp.Vector) {
	switch s := t.state.(type) {
	case doorIdle:
		wall, ok := plan.WallAt(p, HingeHitRange)
		if !ok {
			return
		}
		param := wall.ProjectParam(p)
		t.state = doorAnchor{wallID: wall.ID, hinge: wall.PointAt(param), hingeParam: param}
	case doorAnchor:
		t.fixEdge(plan, s, p)
	case doorEdge:
		t.fixEdge(plan, s.doorAnchor, p)
	case doorDirection:
		t.state = doorIdle{}
		dir, ok := s.choice.Classify(p)
		if !ok {
			return
		}
		if t.OnCommit != nil {
			t.OnCommit(model.Door{
				WallID:   s.choice.WallID,
				Position: (s.choice.HingeParam + s.choice.FarParam) / 2,
				Width:    s.choice.Width,
				Opening:  dir,
				Hinge:    s.choice.HingeSide,
			})
		}
	}
}

// Move updates the far-edge preview by re-projecting the pointer onto the
// anchored wall; pointer positions too far from the wall leave the preview
// untouched. The direction phase ignores moves: its hover feedback is derived
// from the live pointer by the renderer via Classify.
func (t *DoorTool) Move(plan *model.Plan, p cp.Vector) {
	anchor, ok := t.currentAnchor()
	if !ok {
		return
	}
	wall, ok := plan.Wall(anchor.wallID)
	if !ok {
		t.state = doorIdle{}
		return
	}
	if wall.DistanceTo(p) > PreviewHitRange {
		return
	}
	param := wall.ProjectParam(p)
	t.state = doorEdge{doorAnchor: anchor, edge: wall.PointAt(param), edgeParam: param}
}

// Cancel discards any door in progress.
func (t *DoorTool) Cancel() {
	t.state = doorIdle{}
}

// Active reports whether a door is in progress.
func (t *DoorTool) Active() bool {
	_, idle := t.state.(doorIdle)
	return !idle
}

// Hinge returns the fixed hinge point while one is set.
func (t *DoorTool) Hinge() (Anchor, bool) {
	if a, ok := t.currentAnchor(); ok {
		return Anchor{WallID: a.wallID, Hinge: a.hinge, HingeParam: a.hingeParam}, true
	}
	return Anchor{}, false
}

// Preview returns the live hinge-to-edge span while the pointer moves.
func (t *DoorTool) Preview() (EdgePreview, bool) {
	s, ok := t.state.(doorEdge)
	if !ok {
		return EdgePreview{}, false
	}
	return EdgePreview{
		Anchor:    Anchor{WallID: s.wallID, Hinge: s.hinge, HingeParam: s.hingeParam},
		Edge:      s.edge,
		EdgeParam: s.edgeParam,
		Width:     s.hinge.Distance(s.edge),
	}, true
}

// Pending returns the door waiting for its direction click.
func (t *DoorTool) Pending() (DirectionChoice, bool) {
	if s, ok := t.state.(doorDirection); ok {
		return s.choice, true
	}
	return DirectionChoice{}, false
}

func (t *DoorTool) currentAnchor() (doorAnchor, bool) {
	switch s := t.state.(type) {
	case doorAnchor:
		return s, true
	case doorEdge:
		return s.doorAnchor, true
	}
	return doorAnchor{}, false
}

// fixEdge handles the second click: re-project onto the anchored wall, derive
// the width, and move on to direction selection. The swing side is taken from
// the raw click point, before projection, and stays fixed.
func (t *DoorTool) fixEdge(plan *model.Plan, anchor doorAnchor, p cp.Vector) {
	wall, ok := plan.Wall(anchor.wallID)
	if !ok || wall.DistanceTo(p) > CommitHitRange {
		t.state = doorIdle{}
		return
	}
	param := wall.ProjectParam(p)
	far := wall.PointAt(param)
	width := anchor.hinge.Distance(far)
	if width < model.MinDoorWidth {
		t.state = doorIdle{}
		return
	}
	hingeSide := model.HingeStart
	if anchor.hingeParam > param {
		hingeSide = model.HingeEnd
	}
	t.state = doorDirection{choice: DirectionChoice{
		WallID:     anchor.wallID,
		Hinge:      anchor.hinge,
		FarEdge:    far,
		HingeParam: anchor.hingeParam,
		FarParam:   param,
		Width:      width,
		BaseAngle:  geom.DirectionDeg(anchor.hinge, far),
		EndSide:    wall.Side(p),
		HingeSide:  hingeSide,
	}}
}
