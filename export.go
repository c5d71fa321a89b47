package main

import (
	"fmt"
	"strings"

	"golang.design/x/clipboard"

	"github.com/milk9111/floorplan/model"
)

// dimensionsText renders the plan as a plain-text dimension list, one line
// per wall and door.
func dimensionsText(p *model.Plan) string {
	var b strings.Builder
	for _, w := range p.Walls {
		fmt.Fprintf(&b, "wall %d: %.0f cm at %.0f deg, %.0f cm thick\n", w.ID, w.Length, w.Angle, w.Thickness)
	}
	for _, d := range p.Doors {
		w, ok := p.Wall(d.WallID)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "door %d: %.0f cm on wall %d, opens %s\n", d.ID, d.Width, w.ID, d.Opening)
	}
	return b.String()
}

func copyDimensions(p *model.Plan) {
	text := dimensionsText(p)
	if text == "" {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
}
