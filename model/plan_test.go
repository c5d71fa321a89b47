package model

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestPlanAddAssignsIDs(t *testing.T) {
	p := NewPlan(nil, nil)
	w1 := p.AddWall(NewWall(cp.Vector{}, cp.Vector{X: 100, Y: 0}, 10))
	w2 := p.AddWall(NewWall(cp.Vector{X: 100, Y: 0}, cp.Vector{X: 100, Y: 100}, 10))
	if w1.ID == 0 || w2.ID == 0 || w1.ID == w2.ID {
		t.Fatalf("expected distinct non-zero ids, got %d and %d", w1.ID, w2.ID)
	}
	d := p.AddDoor(Door{WallID: w1.ID, Position: 0.5, Width: 30})
	if d.ID == w2.ID || d.ID == 0 {
		t.Fatalf("door id collides: %d", d.ID)
	}
}

func TestPlanResumesIDsFromExternalCollections(t *testing.T) {
	walls := []Wall{{ID: 7}}
	doors := []Door{{ID: 9, WallID: 7}}
	p := NewPlan(walls, doors)
	w := p.AddWall(NewWall(cp.Vector{}, cp.Vector{X: 10, Y: 0}, 10))
	if w.ID <= 9 {
		t.Fatalf("expected id above existing maximum, got %d", w.ID)
	}
}

func TestPlanRemoveWallCascadesDoors(t *testing.T) {
	p := NewPlan(nil, nil)
	w1 := p.AddWall(NewWall(cp.Vector{}, cp.Vector{X: 100, Y: 0}, 10))
	w2 := p.AddWall(NewWall(cp.Vector{}, cp.Vector{X: 0, Y: 100}, 10))
	p.AddDoor(Door{WallID: w1.ID, Position: 0.5, Width: 30})
	keep := p.AddDoor(Door{WallID: w2.ID, Position: 0.5, Width: 30})

	if !p.RemoveWall(w1.ID) {
		t.Fatalf("expected removal to succeed")
	}
	if len(p.Walls) != 1 || p.Walls[0].ID != w2.ID {
		t.Fatalf("expected only w2 to remain, got %v", p.Walls)
	}
	if len(p.Doors) != 1 || p.Doors[0].ID != keep.ID {
		t.Fatalf("doors on deleted wall should cascade, got %v", p.Doors)
	}
	if p.RemoveWall(w1.ID) {
		t.Fatalf("second removal should report false")
	}
}

func TestPlanWallAtPicksNearestUnderThreshold(t *testing.T) {
	p := NewPlan(nil, nil)
	far := p.AddWall(NewWall(cp.Vector{X: 0, Y: 50}, cp.Vector{X: 100, Y: 50}, 10))
	near := p.AddWall(NewWall(cp.Vector{X: 0, Y: 10}, cp.Vector{X: 100, Y: 10}, 10))
	_ = far

	w, ok := p.WallAt(cp.Vector{X: 50, Y: 0}, 15)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if w.ID != near.ID {
		t.Fatalf("expected nearest wall %d, got %d", near.ID, w.ID)
	}

	if _, ok := p.WallAt(cp.Vector{X: 50, Y: 200}, 15); ok {
		t.Fatalf("expected no hit outside threshold")
	}
}

func TestPlanCloneIsIndependent(t *testing.T) {
	p := NewPlan(nil, nil)
	w := p.AddWall(NewWall(cp.Vector{}, cp.Vector{X: 100, Y: 0}, 10))
	c := p.Clone()
	c.Walls[0].Thickness = 99
	if p.Walls[0].Thickness == 99 {
		t.Fatalf("clone shares wall storage")
	}
	c.RemoveWall(w.ID)
	if len(p.Walls) != 1 {
		t.Fatalf("clone removal affected original")
	}
}

func TestPlanUpdateWall(t *testing.T) {
	p := NewPlan(nil, nil)
	w := p.AddWall(NewWall(cp.Vector{}, cp.Vector{X: 100, Y: 0}, 10))
	w.SetLength(60)
	if !p.UpdateWall(w) {
		t.Fatalf("expected update to succeed")
	}
	got, _ := p.Wall(w.ID)
	if !almostEqual(got.Length, 60) {
		t.Fatalf("expected length 60, got %v", got.Length)
	}
	if p.UpdateWall(Wall{ID: 9999}) {
		t.Fatalf("updating unknown wall should fail")
	}
}
