// Package editor is the ebiten UI loop for the parameter form. The
// form is rebuilt from the state every frame: Update handles input and
// records draw commands, Draw replays them.
package editor

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/arcphys/field-editor/internal/config"
	"github.com/arcphys/field-editor/internal/params"
)

// Editor owns the form state for the lifetime of the process and is
// the only mutator of it.
type Editor struct {
	state *params.State

	ui   uiState
	cmds []drawCmd
	open map[string]bool

	scroll   float64
	contentH float64

	status    string
	statusErr bool

	quit bool
}

func New(st *params.State) *Editor {
	return &Editor{
		state: st,
		open: map[string]bool{
			"Electrostatics":    true,
			"Plane of interest": true,
			"Plot":              true,
			"Disk":              true,
		},
	}
}

func (g *Editor) Update() error {
	g.ui.beginFrame()

	g.scroll -= g.ui.wheelY * config.ScrollSpeed
	if limit := g.contentH - (config.StatusY - config.Margin); g.scroll > limit {
		g.scroll = limit
	}
	if g.scroll < 0 {
		g.scroll = 0
	}

	f := &form{
		ed: g,
		ui: &g.ui,
		x:  config.Margin,
		y:  config.Margin - g.scroll,
	}
	g.buildForm(f)
	g.contentH = f.y + g.scroll
	g.cmds = f.cmds

	g.ui.endFrame()

	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(colBg)

	for _, c := range g.cmds {
		switch c.kind {
		case cmdFillRect:
			vector.DrawFilledRect(screen, c.x, c.y, c.w, c.h, c.clr, false)
		case cmdStrokeRect:
			vector.StrokeRect(screen, c.x, c.y, c.w, c.h, c.stroke, c.clr, false)
		case cmdFillCircle:
			vector.DrawFilledCircle(screen, c.x, c.y, c.w, c.clr, false)
		case cmdStrokeCircle:
			vector.StrokeCircle(screen, c.x, c.y, c.w, c.stroke, c.clr, false)
		case cmdText:
			ebitenutil.DebugPrintAt(screen, c.text, int(c.x), int(c.y))
		}
	}

	// Status line, pinned under the form.
	vector.DrawFilledRect(screen, 0, config.StatusY-4, config.WindowWidth, config.WindowHeight-config.StatusY+4, colPanel, false)
	status := g.status
	switch {
	case g.statusErr:
		status = "Error: " + g.status
	case status == "":
		status = "Edit parameters; use Disk to load or save"
	}
	ebitenutil.DebugPrintAt(screen, status, config.Margin, config.StatusY)
}

func (g *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func (g *Editor) fail(err error) {
	g.status = err.Error()
	g.statusErr = true
}

func (g *Editor) note(msg string) {
	g.status = msg
	g.statusErr = false
}
