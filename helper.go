package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/dawkrish/flappy/internal/flappy"
)

var (
	backgroundColor = color.White
	pipeColor       = color.RGBA{G: 0xff, A: 0xff}
	playerColor     = color.Black
)

func FillRect(screen *ebiten.Image, r flappy.Rect, clr color.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// FillCircle draws a disc centered on pos.
func FillCircle(screen *ebiten.Image, pos flappy.Position, radius float64, clr color.Color) {
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(radius), clr, true)
}
