// Package editor wires the camera, snap resolver, tools, and history into one
// facade. It consumes semantic pointer/keyboard events from the host shell,
// mutates the plan, and reports every change through callbacks; it never
// touches the screen, the network, or the disk.
package editor

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/floorplan/config"
	"github.com/milk9111/floorplan/history"
	"github.com/milk9111/floorplan/model"
	"github.com/milk9111/floorplan/snap"
	"github.com/milk9111/floorplan/tool"
	"github.com/milk9111/floorplan/view"
)

// ToolKind selects which state machine receives pointer events.
type ToolKind int

const (
	ToolSelect ToolKind = iota
	ToolWall
	ToolDoor
)

func (k ToolKind) String() string {
	switch k {
	case ToolWall:
		return "Wall"
	case ToolDoor:
		return "Door"
	default:
		return "Select"
	}
}

// SelectHitRange is how close a click must be to a wall centerline to select
// it, world units.
const SelectHitRange = 15.0

// origin tags where a plan mutation came from, so only user edits are recorded
// in history. This replaces sniffing incoming arrays against stored snapshots.
type origin int

const (
	originUser origin = iota
	originHistory
	originExternal
)

// Editor is the interactive construction engine.
type Editor struct {
	cfg      config.Config
	plan     model.Plan
	camera   *view.Camera
	resolver *snap.Resolver
	wallTool *tool.WallTool
	doorTool *tool.DoorTool

	active       ToolKind
	selectedWall int
	pointer      cp.Vector

	hist *history.Log

	// Change callbacks fire after every committed mutation, including
	// undo/redo, with freshly copied slices.
	OnWallsChange func([]model.Wall)
	OnDoorsChange func([]model.Door)
}

func New(cfg config.Config) *Editor {
	e := &Editor{
		cfg:    cfg,
		plan:   model.NewPlan(nil, nil),
		camera: view.NewCamera(),
		resolver: &snap.Resolver{
			GridSize:   cfg.GridSize,
			SnapToGrid: cfg.SnapToGrid,
			Angles:     cfg.SnapAngles,
		},
	}
	e.wallTool = tool.NewWallTool(e.resolver, cfg.DefaultThickness, func(w model.Wall) {
		e.commit(func(p *model.Plan) { p.AddWall(w) })
	})
	e.doorTool = tool.NewDoorTool(func(d model.Door) {
		e.commit(func(p *model.Plan) { p.AddDoor(d) })
	})
	e.hist = history.NewLog(e.plan, 0)
	return e
}

func (e *Editor) Config() config.Config { return e.cfg }

// SetConfig applies a new configuration, e.g. after a hot reload or a panel
// toggle. In-progress drawings keep running; they pick up the new snapping on
// the next event.
func (e *Editor) SetConfig(cfg config.Config) {
	e.cfg = cfg
	e.resolver.GridSize = cfg.GridSize
	e.resolver.SnapToGrid = cfg.SnapToGrid
	e.resolver.Angles = cfg.SnapAngles
	e.wallTool.Thickness = cfg.DefaultThickness
}

func (e *Editor) Camera() *view.Camera { return e.camera }

func (e *Editor) Plan() *model.Plan { return &e.plan }

func (e *Editor) ActiveTool() ToolKind { return e.active }

// SetActiveTool switches tools, discarding any drawing in progress.
func (e *Editor) SetActiveTool(k ToolKind) {
	if k == e.active {
		return
	}
	e.wallTool.Cancel()
	e.doorTool.Cancel()
	e.active = k
}

// SetPlan replaces the collections with externally supplied ones (e.g. a
// loaded layout). External input is not a user edit: history restarts from the
// new plan instead of recording it, and nothing is echoed back through the
// callbacks.
func (e *Editor) SetPlan(walls []model.Wall, doors []model.Door) {
	e.wallTool.Cancel()
	e.doorTool.Cancel()
	e.selectedWall = 0
	e.plan = model.NewPlan(append([]model.Wall(nil), walls...), append([]model.Door(nil), doors...))
	e.hist.Reset(e.plan)
}

// SelectedWall returns the currently selected wall.
func (e *Editor) SelectedWall() (model.Wall, bool) {
	return e.plan.Wall(e.selectedWall)
}

// PointerWorld is the last seen pointer position in world coordinates.
func (e *Editor) PointerWorld() cp.Vector { return e.pointer }

// WallInProgress exposes the wall tool preview for rendering.
func (e *Editor) WallInProgress() (tool.WallPreview, bool) { return e.wallTool.Preview() }

// DoorHinge exposes the fixed hinge of a door in progress.
func (e *Editor) DoorHinge() (tool.Anchor, bool) { return e.doorTool.Hinge() }

// DoorPreview exposes the live hinge-to-edge span of a door in progress.
func (e *Editor) DoorPreview() (tool.EdgePreview, bool) { return e.doorTool.Preview() }

// DoorPending exposes the door waiting for its direction click.
func (e *Editor) DoorPending() (tool.DirectionChoice, bool) { return e.doorTool.Pending() }

// PointerDown routes a click, in container-local screen coordinates, to the
// active tool.
func (e *Editor) PointerDown(sx, sy float64) {
	p := e.camera.ScreenToWorld(sx, sy)
	e.pointer = p
	switch e.active {
	case ToolWall:
		e.wallTool.Click(e.plan.Walls, p)
	case ToolDoor:
		e.doorTool.Click(&e.plan, p)
	case ToolSelect:
		if w, ok := e.plan.WallAt(p, SelectHitRange); ok {
			e.selectedWall = w.ID
		} else {
			e.selectedWall = 0
		}
	}
}

// PointerMove updates previews; it never commits anything.
func (e *Editor) PointerMove(sx, sy float64) {
	p := e.camera.ScreenToWorld(sx, sy)
	e.pointer = p
	switch e.active {
	case ToolWall:
		e.wallTool.Move(e.plan.Walls, p)
	case ToolDoor:
		e.doorTool.Move(&e.plan, p)
	}
}

// Wheel handles scroll input at the given screen position. With the zoom
// modifier held, scrolling up zooms out by 0.95x and down zooms in by 1.05x,
// keeping the point under the cursor fixed; without it the wheel pans by the
// raw delta.
func (e *Editor) Wheel(dx, dy float64, zoomModifier bool, sx, sy float64) {
	if !zoomModifier {
		e.camera.PanBy(dx, dy)
		return
	}
	switch {
	case dy > 0:
		e.camera.ZoomAt(0.95, sx, sy)
	case dy < 0:
		e.camera.ZoomAt(1.05, sx, sy)
	}
}

// ZoomIn and ZoomOut are the keyboard zoom steps, +-10% about the viewport
// center.
func (e *Editor) ZoomIn()  { e.camera.ZoomAtCenter(1.1) }
func (e *Editor) ZoomOut() { e.camera.ZoomAtCenter(0.9) }

// Cancel aborts any drawing in progress (Escape).
func (e *Editor) Cancel() {
	e.wallTool.Cancel()
	e.doorTool.Cancel()
}

// DeleteSelected removes the selected wall and, through the plan's cascade,
// every door on it, as one undoable step.
func (e *Editor) DeleteSelected() {
	if e.selectedWall == 0 {
		return
	}
	id := e.selectedWall
	e.selectedWall = 0
	e.commit(func(p *model.Plan) { p.RemoveWall(id) })
}

// SetWallLength, SetWallAngle, and SetWallThickness are the direct property
// edits: the start point stays put and the end point is recomputed from the
// new polar parameters.
func (e *Editor) SetWallLength(id int, length float64) {
	e.editWall(id, func(w *model.Wall) { w.SetLength(length) })
}

func (e *Editor) SetWallAngle(id int, deg float64) {
	e.editWall(id, func(w *model.Wall) { w.SetAngle(deg) })
}

func (e *Editor) SetWallThickness(id int, thickness float64) {
	if thickness <= 0 {
		return
	}
	e.editWall(id, func(w *model.Wall) { w.Thickness = thickness })
}

func (e *Editor) editWall(id int, edit func(*model.Wall)) {
	w, ok := e.plan.Wall(id)
	if !ok {
		return
	}
	before := w
	edit(&w)
	if w == before {
		return
	}
	e.commit(func(p *model.Plan) { p.UpdateWall(w) })
}

func (e *Editor) Undo() {
	if p, ok := e.hist.Undo(); ok {
		e.apply(originHistory, p)
	}
}

func (e *Editor) Redo() {
	if p, ok := e.hist.Redo(); ok {
		e.apply(originHistory, p)
	}
}

func (e *Editor) CanUndo() bool { return e.hist.CanUndo() }
func (e *Editor) CanRedo() bool { return e.hist.CanRedo() }

// commit runs a user-origin mutation.
func (e *Editor) commit(mutate func(*model.Plan)) {
	mutate(&e.plan)
	e.apply(originUser, e.plan)
}

func (e *Editor) apply(src origin, p model.Plan) {
	e.plan = p
	if src == originUser {
		e.hist.Record(p)
	} else {
		// a restored snapshot may invalidate whatever a tool was mid-way
		// through
		e.wallTool.Cancel()
		e.doorTool.Cancel()
	}
	if _, ok := e.plan.Wall(e.selectedWall); !ok {
		e.selectedWall = 0
	}
	if e.OnWallsChange != nil {
		e.OnWallsChange(append([]model.Wall(nil), e.plan.Walls...))
	}
	if e.OnDoorsChange != nil {
		e.OnDoorsChange(append([]model.Door(nil), e.plan.Doors...))
	}
}
