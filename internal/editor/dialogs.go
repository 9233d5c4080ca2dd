package editor

import (
	"errors"

	"github.com/ncruces/zenity"

	"github.com/arcphys/field-editor/internal/params"
)

// loadFromDialog asks for a parameter file and loads it into the form
// state. Cancel is a no-op; failures land on the status line.
func (g *Editor) loadFromDialog() {
	name, err := zenity.SelectFile(
		zenity.Title("Load Parameters"),
		zenity.FileFilters{{
			Name:     "JSON parameters",
			Patterns: []string{"*.json"},
		}},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.fail(err)
		}
		return
	}
	if err := params.Load(name, g.state); err != nil {
		g.fail(err)
		return
	}
	g.note("Loaded " + name)
}

func (g *Editor) saveToDialog() {
	name, err := zenity.SelectFileSave(
		zenity.Title("Save Parameters"),
		zenity.ConfirmOverwrite(),
		zenity.Filename("params.json"),
		zenity.FileFilters{{
			Name:     "JSON parameters",
			Patterns: []string{"*.json"},
		}},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.fail(err)
		}
		return
	}
	if err := params.Save(name, g.state); err != nil {
		g.fail(err)
		return
	}
	g.note("Saved " + name)
}
