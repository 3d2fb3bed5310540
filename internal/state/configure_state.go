// internal/state/configure_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"

	"who-brings-what/internal/app"
	"who-brings-what/internal/config"
	"who-brings-what/internal/ui"
	"who-brings-what/pkg/render"
)

// Убеждаемся, что ConfigureState соответствует интерфейсу State
var _ State = (*ConfigureState)(nil)

// ConfigureState — диалог настройки сот поверх сцены
type ConfigureState struct {
	sm      *StateMachine
	prev    State // сцена, рисуется под диалогом
	macro   *app.Macro
	session *app.Session

	x, y    float32
	picker  *ui.Picker
	options *ui.OptionsPanel
	buttons []*ui.Button
	actions []func()
}

func NewConfigureState(sm *StateMachine, prev State, macro *app.Macro, sess *app.Session) *ConfigureState {
	cs := &ConfigureState{
		sm:      sm,
		prev:    prev,
		macro:   macro,
		session: sess,
		x:       float32(config.ScreenWidth-config.DialogWidth) / 2,
		y:       float32(config.ScreenHeight-config.DialogHeight) / 2,
	}

	opts := render.DefaultDiagramOptions
	opts.Size = config.DiagramSize
	opts.HexRadius = config.DiagramHexRadius
	pickerX := float64(cs.x) + float64(config.DialogWidth-config.DiagramSize)/2
	cs.picker = ui.NewPicker(pickerX, float64(cs.y)+70, sess.Honeycomb, sess.Orientation, opts)
	cs.options = ui.NewOptionsPanel(int(cs.x)+20, int(cs.y)+config.DiagramSize+95, &cs.session.Options)

	const (
		btnW = 120
		btnH = 36
	)
	btnY := cs.y + config.DialogHeight - btnH - 24
	gap := (float32(config.DialogWidth) - 3*btnW) / 4
	labels := []string{"Draw", "Reset", "Cancel"}
	cs.actions = []func(){cs.Confirm, cs.Reset, cs.Cancel}
	for i, label := range labels {
		x := cs.x + gap + float32(i)*(btnW+gap)
		cs.buttons = append(cs.buttons, ui.NewButton(x, btnY, btnW, btnH, label))
	}
	return cs
}

func (cs *ConfigureState) Enter() {
	log.Debug().Str("token", cs.session.Target.ID).Msg("honeycomb dialog opened")
}

func (cs *ConfigureState) Exit() {}

// Session returns the session edited by the dialog.
func (cs *ConfigureState) Session() *app.Session {
	return cs.session
}

func (cs *ConfigureState) Update(deltaTime float64) {
	// тосты сцены продолжают гаснуть под диалогом
	if scene, ok := cs.prev.(*SceneState); ok {
		scene.toasts.Update(deltaTime)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		cs.Cancel()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		cs.Confirm()
		return
	}
	cs.options.Update()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cs.Click(ebiten.CursorPosition())
	}
}

// Click routes a mouse click to a button or to the picker.
func (cs *ConfigureState) Click(x, y int) {
	for i, b := range cs.buttons {
		if b.Contains(x, y) {
			cs.actions[i]()
			return
		}
	}
	cs.picker.HandleClick(x, y)
}

// Confirm draws the honeycomb and closes the dialog. The dialog stays open when
// nothing could be drawn.
func (cs *ConfigureState) Confirm() {
	if _, err := cs.macro.Draw(cs.session); err != nil {
		log.Warn().Err(err).Str("token", cs.session.Target.ID).Msg("honeycomb not drawn")
		return
	}
	cs.sm.SetState(cs.prev)
}

// Reset drops every selected cell except the center.
func (cs *ConfigureState) Reset() {
	cs.session.Honeycomb.Reset()
}

// Cancel closes the dialog without drawing.
func (cs *ConfigureState) Cancel() {
	cs.sm.SetState(cs.prev)
}

func (cs *ConfigureState) Draw(screen *ebiten.Image) {
	if cs.prev != nil {
		cs.prev.Draw(screen)
	}
	// затемнение сцены
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.ShadeColor, false)

	vector.DrawFilledRect(screen, cs.x, cs.y, config.DialogWidth, config.DialogHeight, config.DialogColor, true)
	vector.StrokeRect(screen, cs.x, cs.y, config.DialogWidth, config.DialogHeight, 2, config.DialogBorderColor, true)

	cx := float64(cs.x) + config.DialogWidth/2
	ui.DrawLabel(screen, "Honeycomb Highlight: "+cs.session.Target.Name, cx, float64(cs.y)+20, config.TextDarkColor)
	info := fmt.Sprintf("%s, hex radius %.0fpx, %d rings", cs.session.Orientation, cs.session.HexRadius, cs.session.Honeycomb.Radius())
	ui.DrawLabel(screen, info, cx, float64(cs.y)+40, config.TextDarkColor)
	ui.DrawLabel(screen, "green: token   blue: selected   click a hex to toggle it", cx, float64(cs.y)+58, config.TextDarkColor)

	cs.picker.Draw(screen)
	selected := fmt.Sprintf("%d hex(es) selected", cs.session.Honeycomb.SelectedCount())
	ui.DrawLabel(screen, selected, cx, float64(cs.y)+config.DiagramSize+80, config.TextDarkColor)
	cs.options.Draw(screen)

	for _, b := range cs.buttons {
		b.Draw(screen)
	}
}
