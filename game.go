package main

import (
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/floorplan/config"
	"github.com/milk9111/floorplan/editor"
	"github.com/milk9111/floorplan/render"
	"github.com/milk9111/floorplan/scene"
)

var backgroundColor = color.RGBA{28, 28, 32, 255}

type Game struct {
	ed       *editor.Editor
	renderer *render.Renderer
	ui       *ebitenui.UI
	toolBar  *ToolBar
	toggles  *TogglePanel
	input    *Input
	watcher  *config.Watcher
}

func NewGame(cfg config.Config, watcher *config.Watcher) (*Game, error) {
	renderer, err := render.New()
	if err != nil {
		return nil, err
	}

	g := &Game{
		ed:       editor.New(cfg),
		renderer: renderer,
		input:    NewInput(),
		watcher:  watcher,
	}
	g.ui, g.toolBar, g.toggles = BuildUI(g.ed.SetActiveTool, g.onToggle, cfg)
	return g, nil
}

// onToggle flips one view/snap setting and pushes the updated config into the
// editor.
func (g *Game) onToggle(mutate func(*config.Config)) {
	cfg := g.ed.Config()
	mutate(&cfg)
	g.ed.SetConfig(cfg)
	g.toggles.Sync(cfg)
}

func (g *Game) Update() error {
	g.pollConfig()
	g.input.Update()
	g.ui.Update()

	if g.input.ToolChanged {
		g.ed.SetActiveTool(g.input.ToolSelected)
		g.toolBar.SetTool(g.input.ToolSelected)
	}
	if g.input.UndoPressed {
		g.ed.Undo()
	}
	if g.input.RedoPressed {
		g.ed.Redo()
	}
	if g.input.ZoomInPressed {
		g.ed.ZoomIn()
	}
	if g.input.ZoomOutPressed {
		g.ed.ZoomOut()
	}
	if g.input.CopyPressed {
		copyDimensions(g.ed.Plan())
	}
	if g.input.CancelPressed {
		g.ed.Cancel()
	}
	if g.input.DeletePressed {
		g.ed.DeleteSelected()
	}

	// Ignore canvas interactions while the cursor is over a UI panel so
	// toolbar clicks don't also start a wall underneath.
	if !ebuiinput.UIHovered {
		if g.input.WheelX != 0 || g.input.WheelY != 0 {
			g.ed.Wheel(g.input.WheelX, g.input.WheelY, g.input.ZoomModifier, g.input.CursorX, g.input.CursorY)
		}
		if g.input.CursorMoved {
			g.ed.PointerMove(g.input.CursorX, g.input.CursorY)
		}
		if g.input.LeftPressed {
			g.ed.PointerDown(g.input.CursorX, g.input.CursorY)
		}
	}

	return nil
}

// pollConfig drains pending hot-reload events without blocking the frame.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.ed.SetConfig(cfg)
			g.toggles.Sync(cfg)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("config reload: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.renderer.Draw(screen, scene.Build(g.ed), g.ed.Camera())
	g.ui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ed.Camera().SetViewport(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}
