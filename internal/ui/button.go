// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"who-brings-what/internal/config"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, Width, Height float32
	Text                string
	BgColor             color.RGBA
	HoverColor          color.RGBA
	TextColor           color.RGBA
}

// NewButton создает новую кнопку.
func NewButton(x, y, width, height float32, text string) *Button {
	return &Button{
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Text:       text,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHoverColor,
		TextColor:  config.TextLightColor,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx < b.X+b.Width && fy >= b.Y && fy < b.Y+b.Height
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	if b.Contains(ebiten.CursorPosition()) {
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, bg, true)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 2, config.DialogBorderColor, true)
	drawCentered(screen, b.Text, float64(b.X+b.Width/2), float64(b.Y+b.Height/2), b.TextColor)
}
