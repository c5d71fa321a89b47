package model

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestWallSegmentsSingleDoor(t *testing.T) {
	w := NewWall(cp.Vector{X: 0, Y: 0}, cp.Vector{X: 100, Y: 0}, 10)
	doors := []Door{{WallID: w.ID, Position: 0.5, Width: 20}}

	segs := WallSegments(w, doors)
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d: %v", len(segs), segs)
	}
	if !almostEqual(segs[0].T0, 0) || !almostEqual(segs[0].T1, 0.4) {
		t.Fatalf("expected first segment [0,0.4], got %v", segs[0])
	}
	if !almostEqual(segs[1].T0, 0.6) || !almostEqual(segs[1].T1, 1) {
		t.Fatalf("expected second segment [0.6,1], got %v", segs[1])
	}
}

func TestWallSegmentsNoDoors(t *testing.T) {
	w := NewWall(cp.Vector{}, cp.Vector{X: 100, Y: 0}, 10)
	segs := WallSegments(w, nil)
	if len(segs) != 1 || !almostEqual(segs[0].T0, 0) || !almostEqual(segs[0].T1, 1) {
		t.Fatalf("expected single full segment, got %v", segs)
	}
}

func TestWallSegmentsUnsortedDoors(t *testing.T) {
	w := NewWall(cp.Vector{}, cp.Vector{X: 200, Y: 0}, 10)
	doors := []Door{
		{Position: 0.75, Width: 20}, // opening [0.7, 0.8]
		{Position: 0.25, Width: 20}, // opening [0.2, 0.3]
	}
	segs := WallSegments(w, doors)
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %v", segs)
	}
	want := []Segment{{0, 0.2}, {0.3, 0.7}, {0.8, 1}}
	for i, s := range want {
		if !almostEqual(segs[i].T0, s.T0) || !almostEqual(segs[i].T1, s.T1) {
			t.Fatalf("segment %d: expected %v, got %v", i, s, segs[i])
		}
	}
}

func TestWallSegmentsDoorAtEndClamps(t *testing.T) {
	w := NewWall(cp.Vector{}, cp.Vector{X: 100, Y: 0}, 10)
	doors := []Door{{Position: 1, Width: 40}} // opening clamped to [0.8, 1]
	segs := WallSegments(w, doors)
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %v", segs)
	}
	if !almostEqual(segs[0].T0, 0) || !almostEqual(segs[0].T1, 0.8) {
		t.Fatalf("expected [0,0.8], got %v", segs[0])
	}
}

func TestWallSegmentsOverlappingDoors(t *testing.T) {
	w := NewWall(cp.Vector{}, cp.Vector{X: 100, Y: 0}, 10)
	doors := []Door{
		{Position: 0.4, Width: 30}, // [0.25, 0.55]
		{Position: 0.5, Width: 30}, // [0.35, 0.65]
	}
	segs := WallSegments(w, doors)
	want := []Segment{{0, 0.25}, {0.65, 1}}
	if len(segs) != len(want) {
		t.Fatalf("expected %d segments, got %v", len(want), segs)
	}
	for i, s := range want {
		if !almostEqual(segs[i].T0, s.T0) || !almostEqual(segs[i].T1, s.T1) {
			t.Fatalf("segment %d: expected %v, got %v", i, s, segs[i])
		}
	}
}

func TestSegmentPoints(t *testing.T) {
	w := NewWall(cp.Vector{X: 0, Y: 0}, cp.Vector{X: 100, Y: 0}, 10)
	a, b := w.SegmentPoints(Segment{T0: 0.2, T1: 0.7})
	if !almostEqual(a.X, 20) || !almostEqual(b.X, 70) {
		t.Fatalf("expected x 20 and 70, got %v %v", a.X, b.X)
	}
}
