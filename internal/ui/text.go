package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Face is the font of every label. basicfont keeps the binary free of font files.
var Face text.Face = text.NewGoXFace(basicfont.Face7x13)

// drawText draws s with its baseline starting at (x, y).
func drawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y)-Face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, Face, op)
}

// drawCentered draws s centered on (cx, cy).
func drawCentered(screen *ebiten.Image, s string, cx, cy float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, Face, op)
}

// DrawLabel draws s centered on (cx, cy).
func DrawLabel(screen *ebiten.Image, s string, cx, cy float64, clr color.Color) {
	drawCentered(screen, s, cx, cy, clr)
}
