package app

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"who-brings-what/internal/config"
	"who-brings-what/pkg/render"
	"who-brings-what/pkg/utils"
)

var ErrInvalidOptions = errors.New("app: invalid honeycomb options")

// Options are the values picked in the configuration dialog.
type Options struct {
	StrokeColor     color.RGBA
	FillColor       color.RGBA
	Thickness       int
	Alpha           float64
	Fill            bool
	Contour         bool
	RotateWithToken bool
}

// OptionsFromConfig converts the configured dialog defaults.
func OptionsFromConfig(c config.HoneycombConfig) (Options, error) {
	stroke, err := render.ParseHexColor(c.StrokeColor)
	if err != nil {
		return Options{}, fmt.Errorf("%w: stroke: %w", ErrInvalidOptions, err)
	}
	fill, err := render.ParseHexColor(c.FillColor)
	if err != nil {
		return Options{}, fmt.Errorf("%w: fill: %w", ErrInvalidOptions, err)
	}
	o := Options{
		StrokeColor:     stroke,
		FillColor:       fill,
		Thickness:       c.Thickness,
		Alpha:           c.Alpha,
		Fill:            c.Fill,
		Contour:         c.Contour,
		RotateWithToken: c.RotateWithToken,
	}
	return o, o.Validate()
}

// Validate checks the ranges of the dialog sliders.
func (o Options) Validate() error {
	if o.Thickness < config.MinThickness || o.Thickness > config.MaxThickness {
		return fmt.Errorf("%w: thickness %d", ErrInvalidOptions, o.Thickness)
	}
	if math.IsNaN(o.Alpha) || o.Alpha < config.MinAlpha || o.Alpha > config.MaxAlpha {
		return fmt.Errorf("%w: alpha %v", ErrInvalidOptions, o.Alpha)
	}
	return nil
}

// StepThickness moves the thickness slider by delta, staying in range.
func (o *Options) StepThickness(delta int) {
	o.Thickness = utils.Clamp(o.Thickness+delta, config.MinThickness, config.MaxThickness)
}

// StepAlpha moves the alpha slider by delta steps of 0.1, staying in range.
func (o *Options) StepAlpha(delta int) {
	a := o.Alpha + float64(delta)*config.AlphaStep
	o.Alpha = utils.RoundTo(utils.Clamp(a, config.MinAlpha, config.MaxAlpha), 1)
}

// Style is what the rendering layer needs from the options.
func (o Options) Style() render.Style {
	return render.Style{
		StrokeEnabled: o.Contour,
		StrokeColor:   o.StrokeColor,
		StrokeWidth:   float32(o.Thickness),
		FillEnabled:   o.Fill,
		FillColor:     o.FillColor,
		Alpha:         float32(o.Alpha),
	}
}
