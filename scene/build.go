package scene

import (
	"fmt"
	"image/color"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/floorplan/editor"
	"github.com/milk9111/floorplan/model"
)

var (
	colGrid         = color.RGBA{55, 55, 60, 255}
	colWall         = color.RGBA{225, 225, 230, 255}
	colWallSelected = color.RGBA{255, 196, 64, 255}
	colPreview      = color.RGBA{120, 190, 255, 255}
	colDoorFrame    = color.RGBA{200, 170, 120, 255}
	colSwingFill    = color.RGBA{120, 190, 255, 48}
	colSwingStroke  = color.RGBA{120, 190, 255, 160}
	colRegion       = color.RGBA{255, 255, 255, 24}
	colRegionHover  = color.RGBA{120, 255, 160, 72}
	colHinge        = color.RGBA{255, 120, 120, 255}
	colLabel        = color.RGBA{200, 200, 205, 255}
)

// Build derives the drawing intents for one frame from the editor state.
func Build(ed *editor.Editor) Frame {
	var f Frame
	cfg := ed.Config()
	plan := ed.Plan()

	if cfg.ShowGrid {
		buildGrid(&f, ed, cfg.GridSize)
	}

	selected, hasSelection := ed.SelectedWall()
	for _, w := range plan.Walls {
		col := colWall
		if hasSelection && w.ID == selected.ID {
			col = colWallSelected
		}
		for _, seg := range model.WallSegments(w, plan.DoorsOn(w.ID)) {
			a, b := w.SegmentPoints(seg)
			f.Lines = append(f.Lines, Line{A: a, B: b, Width: w.Thickness, Color: col})
		}
		if cfg.ShowMeasurements || cfg.ShowAngles {
			f.Labels = append(f.Labels, wallLabel(w, cfg.ShowMeasurements, cfg.ShowAngles))
		}
	}

	for _, d := range plan.Doors {
		w, ok := plan.Wall(d.WallID)
		if !ok {
			// stale reference in externally supplied data; skip rather than
			// crash
			continue
		}
		buildSwing(&f, model.DoorSwing(w, d))
	}

	buildWallPreview(&f, ed, cfg.ShowMeasurements, cfg.ShowAngles)
	buildDoorPreview(&f, ed)

	return f
}

func buildGrid(f *Frame, ed *editor.Editor, cell float64) {
	if cell <= 0 {
		return
	}
	cam := ed.Camera()
	vw, vh := cam.Viewport()
	if vw == 0 || vh == 0 {
		return
	}
	tl := cam.ScreenToWorld(0, 0)
	br := cam.ScreenToWorld(vw, vh)
	for x := math.Floor(tl.X/cell) * cell; x <= br.X; x += cell {
		f.GridLines = append(f.GridLines, Line{
			A: cp.Vector{X: x, Y: tl.Y}, B: cp.Vector{X: x, Y: br.Y}, Width: 0, Color: colGrid,
		})
	}
	for y := math.Floor(tl.Y/cell) * cell; y <= br.Y; y += cell {
		f.GridLines = append(f.GridLines, Line{
			A: cp.Vector{X: tl.X, Y: y}, B: cp.Vector{X: br.X, Y: y}, Width: 0, Color: colGrid,
		})
	}
}

func wallLabel(w model.Wall, lengths, angles bool) Label {
	mid := w.PointAt(0.5)
	return Label{Pos: mid, Text: formatMeasure(w.Length, w.Angle, lengths, angles), Color: colLabel}
}

func formatMeasure(length, angle float64, lengths, angles bool) string {
	switch {
	case lengths && angles:
		return fmt.Sprintf("%.0f cm  %.0f°", length, angle)
	case lengths:
		return fmt.Sprintf("%.0f cm", length)
	default:
		return fmt.Sprintf("%.0f°", angle)
	}
}

func buildSwing(f *Frame, s model.Swing) {
	f.Sectors = append(f.Sectors, Sector{
		Center: s.Hinge, Radius: s.Radius,
		StartDeg: s.BaseAngle, SweepDeg: s.SweepDeg,
		Color: colSwingFill,
	})
	f.Arcs = append(f.Arcs, Arc{
		Center: s.Hinge, Radius: s.Radius,
		StartDeg: s.BaseAngle, SweepDeg: s.SweepDeg,
		Width: 1, Color: colSwingStroke,
	})
	f.Lines = append(f.Lines, Line{A: s.Hinge, B: s.FrameEnd, Width: 2, Color: colDoorFrame})
	f.Circles = append(f.Circles, Circle{Center: s.Hinge, Radius: 4, Fill: true, Color: colHinge})
}

func buildWallPreview(f *Frame, ed *editor.Editor, lengths, angles bool) {
	p, ok := ed.WallInProgress()
	if !ok {
		return
	}
	f.Circles = append(f.Circles, Circle{Center: p.Start, Radius: 3, Fill: true, Color: colPreview})
	if p.Length == 0 {
		return
	}
	f.Lines = append(f.Lines, Line{A: p.Start, B: p.End, Width: 2, Color: colPreview})
	f.Circles = append(f.Circles, Circle{Center: p.End, Radius: 3, Fill: true, Color: colPreview})
	if lengths || angles {
		mid := p.Start.Lerp(p.End, 0.5)
		f.Labels = append(f.Labels, Label{
			Pos:   mid,
			Text:  formatMeasure(p.Length, p.AngleDeg, lengths, angles),
			Color: colPreview,
		})
	}
}

func buildDoorPreview(f *Frame, ed *editor.Editor) {
	if choice, ok := ed.DoorPending(); ok {
		hover, hoverOK := choice.Classify(ed.PointerWorld())
		right, left := colRegion, colRegion
		if hoverOK && hover == model.OpenRight {
			right = colRegionHover
		}
		if hoverOK && hover == model.OpenLeft {
			left = colRegionHover
		}
		f.Sectors = append(f.Sectors,
			Sector{Center: choice.Hinge, Radius: choice.Width, StartDeg: choice.BaseAngle, SweepDeg: -90, Color: right},
			Sector{Center: choice.Hinge, Radius: choice.Width, StartDeg: choice.BaseAngle, SweepDeg: 90, Color: left},
		)
		f.Lines = append(f.Lines, Line{A: choice.Hinge, B: choice.FarEdge, Width: 2, Color: colDoorFrame})
		f.Circles = append(f.Circles, Circle{Center: choice.Hinge, Radius: 4, Fill: true, Color: colHinge})
		return
	}

	if p, ok := ed.DoorPreview(); ok {
		f.Lines = append(f.Lines, Line{A: p.Hinge, B: p.Edge, Width: 2, Color: colPreview})
		f.Circles = append(f.Circles,
			Circle{Center: p.Hinge, Radius: 4, Fill: true, Color: colHinge},
			Circle{Center: p.Edge, Radius: 3, Fill: true, Color: colPreview},
		)
		f.Labels = append(f.Labels, Label{
			Pos:   p.Hinge.Lerp(p.Edge, 0.5),
			Text:  fmt.Sprintf("%.0f cm", p.Width),
			Color: colPreview,
		})
		return
	}

	if a, ok := ed.DoorHinge(); ok {
		f.Circles = append(f.Circles, Circle{Center: a.Hinge, Radius: 4, Fill: true, Color: colHinge})
	}
}
