package tool

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/floorplan/geom"
	"github.com/milk9111/floorplan/model"
)

func newDoorHarness() (*DoorTool, *model.Plan, *[]model.Door) {
	plan := model.NewPlan(nil, nil)
	plan.AddWall(model.NewWall(cp.Vector{X: 0, Y: 0}, cp.Vector{X: 100, Y: 0}, 10))
	var committed []model.Door
	dt := NewDoorTool(func(d model.Door) { committed = append(committed, d) })
	return dt, &plan, &committed
}

func TestDoorToolFullPlacement(t *testing.T) {
	dt, plan, committed := newDoorHarness()

	dt.Click(plan, cp.Vector{X: 30, Y: 5})
	a, ok := dt.Hinge()
	if !ok {
		t.Fatalf("first click on a wall should set the hinge")
	}
	if math.Abs(a.Hinge.X-30) > 1e-9 || a.Hinge.Y != 0 {
		t.Fatalf("hinge should be the clamped projection, got %v", a.Hinge)
	}
	if math.Abs(a.HingeParam-0.3) > 1e-9 {
		t.Fatalf("expected hinge param 0.3, got %v", a.HingeParam)
	}

	dt.Move(plan, cp.Vector{X: 70, Y: 8})
	p, ok := dt.Preview()
	if !ok {
		t.Fatalf("move should produce an edge preview")
	}
	if math.Abs(p.Edge.X-70) > 1e-9 || math.Abs(p.Width-40) > 1e-9 {
		t.Fatalf("expected edge (70,0) width 40, got %v width %v", p.Edge, p.Width)
	}

	dt.Click(plan, cp.Vector{X: 70, Y: 10})
	choice, ok := dt.Pending()
	if !ok {
		t.Fatalf("second click should move to direction selection")
	}
	if math.Abs(choice.Width-40) > 1e-9 {
		t.Fatalf("expected width 40, got %v", choice.Width)
	}
	if choice.HingeSide != model.HingeStart {
		t.Fatalf("hinge at the lower param should be the start side")
	}
	// raw click on the +Y side of the wall, which is the left of start->end
	if choice.EndSide != geom.SideLeft {
		t.Fatalf("expected end side left, got %v", choice.EndSide)
	}

	// click below the baseline, inside the right-opening quarter circle
	dt.Click(plan, cp.Vector{X: 40, Y: -20})
	if len(*committed) != 1 {
		t.Fatalf("expected a committed door, got %d", len(*committed))
	}
	d := (*committed)[0]
	if d.Opening != model.OpenRight {
		t.Fatalf("expected right opening, got %v", d.Opening)
	}
	if math.Abs(d.Position-0.5) > 1e-9 {
		t.Fatalf("position should be the parametric midpoint, got %v", d.Position)
	}
	if d.Hinge != model.HingeStart {
		t.Fatalf("expected hinge side start, got %v", d.Hinge)
	}
	if dt.Active() {
		t.Fatalf("tool should be idle after commit")
	}
}

func TestDoorToolLeftRegion(t *testing.T) {
	dt, plan, committed := newDoorHarness()
	dt.Click(plan, cp.Vector{X: 30, Y: 5})
	dt.Click(plan, cp.Vector{X: 70, Y: 10})
	dt.Click(plan, cp.Vector{X: 40, Y: 20}) // above the baseline
	if len(*committed) != 1 || (*committed)[0].Opening != model.OpenLeft {
		t.Fatalf("expected a left-opening door, got %v", *committed)
	}
}

func TestDoorToolHingeSideEnd(t *testing.T) {
	dt, plan, committed := newDoorHarness()
	dt.Click(plan, cp.Vector{X: 70, Y: 5})
	dt.Click(plan, cp.Vector{X: 30, Y: 5})
	choice, ok := dt.Pending()
	if !ok || choice.HingeSide != model.HingeEnd {
		t.Fatalf("hinge at the higher param should be the end side, got %v", choice.HingeSide)
	}
	if math.Abs(choice.BaseAngle-180) > 1e-9 {
		t.Fatalf("baseline should point back along the wall, got %v", choice.BaseAngle)
	}
	dt.Click(plan, cp.Vector{X: 60, Y: -10})
	if len(*committed) != 1 || (*committed)[0].Hinge != model.HingeEnd {
		t.Fatalf("expected hinge side end on the committed door, got %v", *committed)
	}
}

func TestDoorToolSubMinimumWidthDiscards(t *testing.T) {
	dt, plan, committed := newDoorHarness()
	dt.Click(plan, cp.Vector{X: 30, Y: 2})
	dt.Click(plan, cp.Vector{X: 30 + model.MinDoorWidth - 1, Y: 2})
	if len(*committed) != 0 {
		t.Fatalf("a 19-unit door must never commit, got %v", *committed)
	}
	if dt.Active() {
		t.Fatalf("tool must return to idle after the discard")
	}
}

func TestDoorToolMissedFirstClick(t *testing.T) {
	dt, plan, _ := newDoorHarness()
	dt.Click(plan, cp.Vector{X: 50, Y: HingeHitRange + 5})
	if dt.Active() {
		t.Fatalf("a click that hits no wall should stay idle")
	}
}

func TestDoorToolSecondClickTooFarCancels(t *testing.T) {
	dt, plan, committed := newDoorHarness()
	dt.Click(plan, cp.Vector{X: 30, Y: 5})
	dt.Click(plan, cp.Vector{X: 70, Y: CommitHitRange + 10})
	if dt.Active() || len(*committed) != 0 {
		t.Fatalf("second click off the wall should cancel")
	}
}

func TestDoorToolDirectionClickOutsideRegionsCancels(t *testing.T) {
	dt, plan, committed := newDoorHarness()
	dt.Click(plan, cp.Vector{X: 30, Y: 5})
	dt.Click(plan, cp.Vector{X: 70, Y: 10})
	dt.Click(plan, cp.Vector{X: 300, Y: 300})
	if len(*committed) != 0 {
		t.Fatalf("click outside both regions must not commit")
	}
	if dt.Active() {
		t.Fatalf("tool should reset to idle")
	}
}

func TestDoorToolMoveIgnoresFarPointer(t *testing.T) {
	dt, plan, _ := newDoorHarness()
	dt.Click(plan, cp.Vector{X: 30, Y: 5})
	dt.Move(plan, cp.Vector{X: 60, Y: 8})
	p1, ok := dt.Preview()
	if !ok {
		t.Fatalf("expected a preview")
	}
	dt.Move(plan, cp.Vector{X: 90, Y: PreviewHitRange + 20})
	p2, ok := dt.Preview()
	if !ok || p2.Edge != p1.Edge {
		t.Fatalf("far pointer should leave the preview untouched: %v vs %v", p2.Edge, p1.Edge)
	}
}

func TestDirectionChoiceClassify(t *testing.T) {
	choice := DirectionChoice{
		Hinge:     cp.Vector{X: 0, Y: 0},
		Width:     40,
		BaseAngle: 0,
	}
	cases := []struct {
		name    string
		p       cp.Vector
		want    model.OpeningDirection
		wantHit bool
	}{
		{"below_baseline_right", cp.Vector{X: 20, Y: -20}, model.OpenRight, true},
		{"above_baseline_left", cp.Vector{X: 20, Y: 20}, model.OpenLeft, true},
		{"on_baseline_right_wins", cp.Vector{X: 30, Y: 0}, model.OpenRight, true},
		{"behind_hinge", cp.Vector{X: -30, Y: 5}, 0, false},
		{"too_far", cp.Vector{X: 0, Y: 40 + DirectionSlack + 1}, 0, false},
		{"within_slack", cp.Vector{X: 0, Y: 40 + DirectionSlack - 1}, model.OpenLeft, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, hit := choice.Classify(c.p)
			if hit != c.wantHit {
				t.Fatalf("expected hit=%v, got %v", c.wantHit, hit)
			}
			if hit && got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}
