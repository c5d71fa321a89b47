package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/floorplan/config"
	"github.com/milk9111/floorplan/editor"
)

// TogglePanel holds the view/snap toggle buttons so their labels can be kept
// in sync with the active config.
type TogglePanel struct {
	gridBtn    *widget.Button
	snapBtn    *widget.Button
	measureBtn *widget.Button
	anglesBtn  *widget.Button
}

// Sync updates the toggle labels to match cfg.
func (tp *TogglePanel) Sync(cfg config.Config) {
	if tp == nil {
		return
	}
	setToggleLabel(tp.gridBtn, "Grid", cfg.ShowGrid)
	setToggleLabel(tp.snapBtn, "Snap", cfg.SnapToGrid)
	setToggleLabel(tp.measureBtn, "Sizes", cfg.ShowMeasurements)
	setToggleLabel(tp.anglesBtn, "Angles", cfg.ShowAngles)
}

func setToggleLabel(btn *widget.Button, name string, on bool) {
	if btn == nil {
		return
	}
	state := "Off"
	if on {
		state = "On"
	}
	if text := btn.Text(); text != nil {
		text.Label = fmt.Sprintf("%s: %s", name, state)
	}
}

// BuildUI assembles the toolbar and toggle panel. onToggle receives a config
// mutation to apply; the caller owns pushing it into the editor.
func BuildUI(
	onToolSelected func(tool editor.ToolKind),
	onToggle func(mutate func(*config.Config)),
	cfg config.Config,
) (*ebitenui.UI, *ToolBar, *TogglePanel) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	toolbarContainer, toolBar := buildToolBar(ui.PrimaryTheme, &fontFace, onToolSelected, editor.ToolSelect)
	togglesContainer, toggles := buildTogglePanel(ui.PrimaryTheme, &fontFace, onToggle)
	toggles.Sync(cfg)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	toolbarContainer.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	togglesContainer.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root.AddChild(toolbarContainer)
	root.AddChild(togglesContainer)

	ui.Container = root
	return ui, toolBar, toggles
}

func buildTogglePanel(theme *widget.Theme, fontFace *text.Face, onToggle func(mutate func(*config.Config))) (*widget.Container, *TogglePanel) {
	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{40, 40, 44, 220})),
	)

	tp := &TogglePanel{}
	newToggle := func(mutate func(*config.Config)) *widget.Button {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text("", fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(110, 32),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onToggle != nil {
					onToggle(mutate)
				}
			}),
		)
		panel.AddChild(btn)
		return btn
	}

	tp.gridBtn = newToggle(func(c *config.Config) { c.ShowGrid = !c.ShowGrid })
	tp.snapBtn = newToggle(func(c *config.Config) { c.SnapToGrid = !c.SnapToGrid })
	tp.measureBtn = newToggle(func(c *config.Config) { c.ShowMeasurements = !c.ShowMeasurements })
	tp.anglesBtn = newToggle(func(c *config.Config) { c.ShowAngles = !c.ShowAngles })

	return panel, tp
}
