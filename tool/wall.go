// Package tool holds the click-driven state machines that turn pointer events
// into walls and doors. Each tool is a small tagged-union state machine: one
// unexported state type per phase and one transition method per event, so an
// illegal combination of flags cannot be represented.
package tool

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/floorplan/model"
	"github.com/milk9111/floorplan/snap"
)

type wallState interface{ wallState() }

type wallIdle struct{}

// wallStart is the phase after the first click fixed the start point.
type wallStart struct {
	start cp.Vector
}

// wallPreview tracks the live far end while the pointer moves.
type wallPreview struct {
	start cp.Vector
	end   snap.End
}

func (wallIdle) wallState()    {}
func (wallStart) wallState()   {}
func (wallPreview) wallState() {}

// WallPreview is the in-progress wall the renderer draws between clicks.
type WallPreview struct {
	Start, End   cp.Vector
	Length       float64
	AngleDeg     float64
	AngleSnapped bool
}

// WallTool is the two-click wall drawing machine: first click fixes the start
// point, pointer moves preview the far end, second click commits. Two clicks
// rather than a drag so the user can read the live length/angle feedback and
// cancel before committing.
type WallTool struct {
	Resolver  *snap.Resolver
	Thickness float64
	OnCommit  func(model.Wall)

	state wallState
}

func NewWallTool(r *snap.Resolver, thickness float64, onCommit func(model.Wall)) *WallTool {
	return &WallTool{Resolver: r, Thickness: thickness, OnCommit: onCommit, state: wallIdle{}}
}

// Click advances the machine with a raw world-space click point.
func (t *WallTool) Click(walls []model.Wall, p cp.Vector) {
	switch s := t.state.(type) {
	case wallIdle:
		start := t.Resolver.ResolvePoint(walls, p)
		t.state = wallStart{start: start.Pos}
	case wallStart:
		t.commit(walls, s.start, p)
	case wallPreview:
		t.commit(walls, s.start, p)
	}
}

// Move updates the live preview. It never commits.
func (t *WallTool) Move(walls []model.Wall, p cp.Vector) {
	switch s := t.state.(type) {
	case wallStart:
		t.state = wallPreview{start: s.start, end: t.Resolver.ResolveEnd(walls, s.start, p)}
	case wallPreview:
		t.state = wallPreview{start: s.start, end: t.Resolver.ResolveEnd(walls, s.start, p)}
	}
}

// Cancel discards any in-progress wall.
func (t *WallTool) Cancel() {
	t.state = wallIdle{}
}

// Active reports whether a wall is in progress.
func (t *WallTool) Active() bool {
	_, idle := t.state.(wallIdle)
	return !idle
}

// Preview returns the current in-progress wall, if any. In the start phase,
// before any pointer move, the preview collapses to the start point.
func (t *WallTool) Preview() (WallPreview, bool) {
	switch s := t.state.(type) {
	case wallStart:
		return WallPreview{Start: s.start, End: s.start}, true
	case wallPreview:
		return WallPreview{
			Start:        s.start,
			End:          s.end.Pos,
			Length:       s.start.Distance(s.end.Pos),
			AngleDeg:     s.end.AngleDeg,
			AngleSnapped: s.end.AngleSnapped,
		}, true
	}
	return WallPreview{}, false
}

// commit resolves the second click and either emits a wall or, below the
// minimum length, discards silently. Both paths return to idle.
func (t *WallTool) commit(walls []model.Wall, start cp.Vector, p cp.Vector) {
	t.state = wallIdle{}
	end := t.Resolver.ResolveEnd(walls, start, p)
	if start.Distance(end.Pos) < model.MinWallLength {
		return
	}
	w := model.NewWall(start, end.Pos, t.Thickness)
	w.SnapToGrid = t.Resolver.SnapToGrid
	w.AngleSnapped = end.AngleSnapped
	if end.AngleSnapped {
		w.SnapAngle = end.AngleDeg
	}
	if t.OnCommit != nil {
		t.OnCommit(w)
	}
}
