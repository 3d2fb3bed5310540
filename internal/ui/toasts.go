package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"

	"who-brings-what/internal/config"
)

// Level of a toast message.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
)

// Toast is a message shown in the corner for a few seconds.
type Toast struct {
	Level Level
	Text  string
	TTL   float64 // seconds left
}

// Toasts collects user notifications; it satisfies app.Notifier.
type Toasts struct {
	items    []Toast
	duration float64
	max      int
}

func NewToasts() *Toasts {
	return &Toasts{duration: config.ToastDuration, max: config.MaxToasts}
}

func (t *Toasts) Info(msg string) {
	log.Info().Str("toast", msg).Send()
	t.push(LevelInfo, msg)
}

func (t *Toasts) Warn(msg string) {
	log.Warn().Str("toast", msg).Send()
	t.push(LevelWarn, msg)
}

func (t *Toasts) push(level Level, msg string) {
	t.items = append(t.items, Toast{Level: level, Text: msg, TTL: t.duration})
	if len(t.items) > t.max {
		t.items = t.items[len(t.items)-t.max:]
	}
}

// Items returns the visible toasts, oldest first.
func (t *Toasts) Items() []Toast {
	return append([]Toast(nil), t.items...)
}

// Update ages toasts and drops the expired ones.
func (t *Toasts) Update(deltaTime float64) {
	kept := t.items[:0]
	for _, it := range t.items {
		it.TTL -= deltaTime
		if it.TTL > 0 {
			kept = append(kept, it)
		}
	}
	t.items = kept
}

func (t *Toasts) Draw(screen *ebiten.Image) {
	const (
		width  = 420
		height = 24
		margin = 8
	)
	x := float32(config.ScreenWidth - width - margin)
	for i, it := range t.items {
		y := float32(margin + i*(height+4))
		bg := config.InfoColor
		if it.Level == LevelWarn {
			bg = config.WarnColor
		}
		vector.DrawFilledRect(screen, x, y, width, height, bg, true)
		drawText(screen, it.Text, int(x)+8, int(y)+16, config.TextLightColor)
	}
}
