// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06
	BoardRadius  = 7 // колец гексов вокруг центра доски

	DialogWidth      = 500
	DialogHeight     = 650
	DiagramSize      = 400
	DiagramHexRadius = 18.0

	ToastDuration = 3.0 // seconds
	MaxToasts     = 4

	MinThickness = 1
	MaxThickness = 10
	MinAlpha     = 0.1
	MaxAlpha     = 1.0
	AlphaStep    = 0.1
	RotationStep = 15.0 // градусов за нажатие

	TokenRadiusFactor = 0.35
	StrokeWidth       = 1.5
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	BoardCellColor    = color.RGBA{70, 100, 120, 220}
	BoardStrokeColor  = color.RGBA{110, 140, 160, 255}
	TokenColor        = color.RGBA{194, 178, 128, 255}
	TokenStrokeColor  = color.RGBA{240, 240, 240, 255}
	ControlledColor   = color.RGBA{255, 215, 0, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	DialogColor       = color.RGBA{235, 235, 235, 250}
	ShadeColor        = color.RGBA{0, 0, 0, 120}
	DialogBorderColor = color.RGBA{120, 120, 120, 255}
	ButtonColor       = color.RGBA{70, 130, 180, 255}
	ButtonHoverColor  = color.RGBA{100, 160, 210, 255}
	InfoColor         = color.RGBA{50, 120, 60, 230}
	WarnColor         = color.RGBA{170, 110, 20, 230}
)
