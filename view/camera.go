// Package view maps device coordinates to editor world coordinates under pan
// and zoom.
package view

import "github.com/jakecoffman/cp"

const (
	MinZoom = 0.1
	MaxZoom = 5.0
)

// Camera holds the pan/zoom transform of the editor viewport. Screen
// coordinates are container-local pixels; world coordinates are centimeters.
type Camera struct {
	Pan  cp.Vector
	zoom float64

	viewW, viewH float64
}

func NewCamera() *Camera {
	return &Camera{zoom: 1}
}

func (c *Camera) Zoom() float64 { return c.zoom }

// SetViewport records the viewport size in screen pixels; keyboard zoom
// centers on it.
func (c *Camera) SetViewport(w, h float64) {
	c.viewW, c.viewH = w, h
}

// Viewport returns the last recorded viewport size.
func (c *Camera) Viewport() (float64, float64) {
	return c.viewW, c.viewH
}

// ScreenToWorld maps a container-local screen point into world coordinates.
func (c *Camera) ScreenToWorld(x, y float64) cp.Vector {
	return cp.Vector{
		X: (x - c.Pan.X) / c.zoom,
		Y: (y - c.Pan.Y) / c.zoom,
	}
}

// WorldToScreen maps a world point back into container-local screen
// coordinates.
func (c *Camera) WorldToScreen(p cp.Vector) (float64, float64) {
	return p.X*c.zoom + c.Pan.X, p.Y*c.zoom + c.Pan.Y
}

// PanBy shifts the view by a raw screen-space delta.
func (c *Camera) PanBy(dx, dy float64) {
	c.Pan.X += dx
	c.Pan.Y += dy
}

// ZoomAt multiplies the zoom by factor, clamped to [MinZoom, MaxZoom], while
// keeping the world point under the given screen focus fixed.
func (c *Camera) ZoomAt(factor float64, focusX, focusY float64) {
	newZoom := clampZoom(c.zoom * factor)
	if newZoom == c.zoom {
		return
	}
	ratio := newZoom / c.zoom
	c.Pan.X = focusX - (focusX-c.Pan.X)*ratio
	c.Pan.Y = focusY - (focusY-c.Pan.Y)*ratio
	c.zoom = newZoom
}

// ZoomAtCenter zooms about the viewport center, used by the keyboard
// shortcuts.
func (c *Camera) ZoomAtCenter(factor float64) {
	c.ZoomAt(factor, c.viewW/2, c.viewH/2)
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}
