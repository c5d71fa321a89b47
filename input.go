package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/floorplan/editor"
)

// Input holds the polled input state for one frame.
type Input struct {
	// CursorX/Y are the cursor position in screen pixels.
	CursorX float64
	CursorY float64
	// LeftPressed is true on the frame the left mouse button was pressed.
	LeftPressed bool
	// CursorMoved is true when the cursor position changed since last frame.
	CursorMoved bool
	// WheelX/WheelY are the scroll deltas for this frame.
	WheelX float64
	WheelY float64
	// ZoomModifier is true while Ctrl or Meta is held; it turns wheel scroll
	// into zoom.
	ZoomModifier bool

	ToolSelected   editor.ToolKind
	ToolChanged    bool
	UndoPressed    bool
	RedoPressed    bool
	ZoomInPressed  bool
	ZoomOutPressed bool
	CopyPressed    bool
	CancelPressed  bool
	DeletePressed  bool

	lastX, lastY int
}

func NewInput() *Input {
	return &Input{lastX: -1, lastY: -1}
}

// Update polls the mouse and keyboard.
func (i *Input) Update() {
	mx, my := ebiten.CursorPosition()
	i.CursorX, i.CursorY = float64(mx), float64(my)
	i.CursorMoved = mx != i.lastX || my != i.lastY
	i.lastX, i.lastY = mx, my

	i.LeftPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	i.WheelX, i.WheelY = ebiten.Wheel()

	mod := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	i.ZoomModifier = mod

	i.ToolChanged = true
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		i.ToolSelected = editor.ToolSelect
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		i.ToolSelected = editor.ToolWall
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		i.ToolSelected = editor.ToolDoor
	default:
		i.ToolChanged = false
	}

	i.UndoPressed = mod && !shift && inpututil.IsKeyJustPressed(ebiten.KeyZ)
	i.RedoPressed = mod && (inpututil.IsKeyJustPressed(ebiten.KeyY) ||
		(shift && inpututil.IsKeyJustPressed(ebiten.KeyZ)))
	i.ZoomInPressed = mod && (inpututil.IsKeyJustPressed(ebiten.KeyEqual) ||
		inpututil.IsKeyJustPressed(ebiten.KeyKPAdd))
	i.ZoomOutPressed = mod && (inpututil.IsKeyJustPressed(ebiten.KeyMinus) ||
		inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract))
	i.CopyPressed = mod && inpututil.IsKeyJustPressed(ebiten.KeyC)
	i.CancelPressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.DeletePressed = inpututil.IsKeyJustPressed(ebiten.KeyDelete) ||
		inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
}
