// Package render draws a scene.Frame onto an ebiten image, applying the
// camera transform. It is the only package besides the root shell that knows
// about ebiten.
package render

import (
	"bytes"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/floorplan/geom"
	"github.com/milk9111/floorplan/scene"
	"github.com/milk9111/floorplan/view"
)

// arcStep is the flattening step for arc strokes, radians.
const arcStep = math.Pi / 48

type Renderer struct {
	face     text.Face
	whiteSub *ebiten.Image
}

func New() (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Renderer{
		face:     &text.GoTextFace{Source: src, Size: 12},
		whiteSub: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}, nil
}

// Draw renders the frame in order: grid, sectors, wall strokes, arcs,
// markers, labels.
func (r *Renderer) Draw(dst *ebiten.Image, f scene.Frame, cam *view.Camera) {
	for _, l := range f.GridLines {
		r.line(dst, l, cam)
	}
	for _, s := range f.Sectors {
		r.sector(dst, s, cam)
	}
	for _, l := range f.Lines {
		r.line(dst, l, cam)
	}
	for _, a := range f.Arcs {
		r.arc(dst, a, cam)
	}
	for _, c := range f.Circles {
		r.circle(dst, c, cam)
	}
	for _, l := range f.Labels {
		r.label(dst, l, cam)
	}
}

func (r *Renderer) line(dst *ebiten.Image, l scene.Line, cam *view.Camera) {
	x0, y0 := cam.WorldToScreen(l.A)
	x1, y1 := cam.WorldToScreen(l.B)
	w := float32(l.Width * cam.Zoom())
	if w < 1 {
		w = 1
	}
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), w, l.Color, true)
}

func (r *Renderer) circle(dst *ebiten.Image, c scene.Circle, cam *view.Camera) {
	x, y := cam.WorldToScreen(c.Center)
	if c.Fill {
		vector.FillCircle(dst, float32(x), float32(y), float32(c.Radius), c.Color, true)
		return
	}
	vector.StrokeCircle(dst, float32(x), float32(y), float32(c.Radius), 1, c.Color, true)
}

// arc flattens the arc into short line segments; the step is fine enough that
// the polyline is indistinguishable at the clamped zoom range.
func (r *Renderer) arc(dst *ebiten.Image, a scene.Arc, cam *view.Camera) {
	start := geom.DegToRad(a.StartDeg)
	sweep := geom.DegToRad(a.SweepDeg)
	steps := int(math.Ceil(math.Abs(sweep) / arcStep))
	if steps < 1 {
		steps = 1
	}
	w := float32(a.Width * cam.Zoom())
	if w < 1 {
		w = 1
	}
	px, py := cam.WorldToScreen(arcPoint(a, start))
	for i := 1; i <= steps; i++ {
		x, y := cam.WorldToScreen(arcPoint(a, start+sweep*float64(i)/float64(steps)))
		vector.StrokeLine(dst, float32(px), float32(py), float32(x), float32(y), w, a.Color, true)
		px, py = x, y
	}
}

func arcPoint(a scene.Arc, angle float64) cp.Vector {
	return cp.Vector{
		X: a.Center.X + math.Cos(angle)*a.Radius,
		Y: a.Center.Y + math.Sin(angle)*a.Radius,
	}
}

func (r *Renderer) sector(dst *ebiten.Image, s scene.Sector, cam *view.Camera) {
	cx, cy := cam.WorldToScreen(s.Center)
	radius := s.Radius * cam.Zoom()
	start := geom.DegToRad(s.StartDeg)
	end := start + geom.DegToRad(s.SweepDeg)
	dir := vector.Clockwise
	if s.SweepDeg < 0 {
		dir = vector.CounterClockwise
	}

	var path vector.Path
	path.MoveTo(float32(cx), float32(cy))
	path.Arc(float32(cx), float32(cy), float32(radius), float32(start), float32(end), dir)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cr := float32(s.Color.R) / 255
	cg := float32(s.Color.G) / 255
	cb := float32(s.Color.B) / 255
	ca := float32(s.Color.A) / 255
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = cr
		vs[i].ColorG = cg
		vs[i].ColorB = cb
		vs[i].ColorA = ca
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, r.whiteSub, op)
}

func (r *Renderer) label(dst *ebiten.Image, l scene.Label, cam *view.Camera) {
	x, y := cam.WorldToScreen(l.Pos)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+4, y-16)
	op.ColorScale.ScaleWithColor(l.Color)
	text.Draw(dst, l.Text, r.face, op)
}
