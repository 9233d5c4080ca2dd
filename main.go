package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/arcphys/field-editor/internal/config"
	"github.com/arcphys/field-editor/internal/editor"
	"github.com/arcphys/field-editor/internal/params"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Electro-/Magnetostatics Editor")

	g := editor.New(params.Default())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalln(err)
	}
}
