package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"who-brings-what/internal/app"
	"who-brings-what/internal/config"
	"who-brings-what/pkg/render"
)

// Action is one edit of the dialog options.
type Action int

const (
	ThicknessUp Action = iota
	ThicknessDown
	AlphaUp
	AlphaDown
	ToggleFill
	ToggleContour
	ToggleRotate
	NextStrokeColor
	NextFillColor
)

// Palette is what the color keys cycle through.
var Palette = []color.RGBA{
	{255, 0, 0, 255},
	{255, 152, 0, 255},
	{255, 235, 59, 255},
	{76, 175, 80, 255},
	{33, 150, 243, 255},
	{156, 39, 176, 255},
	{255, 255, 255, 255},
	{0, 0, 0, 255},
}

var keyActions = map[ebiten.Key]Action{
	ebiten.KeyEqual:  ThicknessUp,
	ebiten.KeyMinus:  ThicknessDown,
	ebiten.KeyPeriod: AlphaUp,
	ebiten.KeyComma:  AlphaDown,
	ebiten.KeyF:      ToggleFill,
	ebiten.KeyO:      ToggleContour,
	ebiten.KeyR:      ToggleRotate,
	ebiten.KeyS:      NextStrokeColor,
	ebiten.KeyG:      NextFillColor,
}

// OptionsPanel edits app.Options from the keyboard and shows their values.
type OptionsPanel struct {
	X, Y    int
	Options *app.Options
}

func NewOptionsPanel(x, y int, opts *app.Options) *OptionsPanel {
	return &OptionsPanel{X: x, Y: y, Options: opts}
}

// Apply performs a single edit.
func (p *OptionsPanel) Apply(a Action) {
	o := p.Options
	switch a {
	case ThicknessUp:
		o.StepThickness(1)
	case ThicknessDown:
		o.StepThickness(-1)
	case AlphaUp:
		o.StepAlpha(1)
	case AlphaDown:
		o.StepAlpha(-1)
	case ToggleFill:
		o.Fill = !o.Fill
	case ToggleContour:
		o.Contour = !o.Contour
	case ToggleRotate:
		o.RotateWithToken = !o.RotateWithToken
	case NextStrokeColor:
		o.StrokeColor = nextColor(o.StrokeColor)
	case NextFillColor:
		o.FillColor = nextColor(o.FillColor)
	}
}

func nextColor(c color.RGBA) color.RGBA {
	for i, p := range Palette {
		if p == c {
			return Palette[(i+1)%len(Palette)]
		}
	}
	return Palette[0]
}

func (p *OptionsPanel) Update() {
	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) {
			p.Apply(action)
		}
	}
}

// Lines returns the text rows of the panel.
func (p *OptionsPanel) Lines() []string {
	o := p.Options
	return []string{
		fmt.Sprintf("[S] contour color: %s   [G] fill color: %s", render.HexString(o.StrokeColor), render.HexString(o.FillColor)),
		fmt.Sprintf("[-/=] thickness: %d   [,/.] alpha: %.1f", o.Thickness, o.Alpha),
		fmt.Sprintf("[F] fill: %s   [O] contour: %s   [R] rotate with token: %s", onOff(o.Fill), onOff(o.Contour), onOff(o.RotateWithToken)),
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (p *OptionsPanel) Draw(screen *ebiten.Image) {
	for i, line := range p.Lines() {
		drawText(screen, line, p.X, p.Y+i*18, config.TextDarkColor)
	}
}
