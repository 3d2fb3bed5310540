package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"who-brings-what/internal/app"
	"who-brings-what/internal/config"
	"who-brings-what/internal/event"
	"who-brings-what/internal/scene"
	"who-brings-what/internal/ui"
	"who-brings-what/pkg/hexmap"
	"who-brings-what/pkg/render"
)

type fixture struct {
	sm     *StateMachine
	scene  *scene.Scene
	layer  *render.Layer
	toasts *ui.Toasts
	state  *SceneState
}

func newFixture(t *testing.T, grid scene.GridType) *fixture {
	t.Helper()
	s := scene.New(scene.Grid{Type: grid, Size: 60}, event.NewDispatcher())
	require.NoError(t, s.AddToken(scene.Token{ID: "a", Name: "Fighter", X: 100, Y: 100}))
	require.NoError(t, s.AddToken(scene.Token{ID: "b", Name: "Wizard", X: 300, Y: 100}))

	opts, err := app.OptionsFromConfig(config.Defaults().Honeycomb)
	require.NoError(t, err)

	f := &fixture{sm: NewStateMachine(), scene: s, layer: render.NewLayer(), toasts: ui.NewToasts()}
	macro := app.NewMacro(s, f.layer, f.toasts, opts, hexmap.DefaultHoneycombRadius)
	f.state = NewSceneState(f.sm, s, f.layer, macro, f.toasts, hexmap.Point{})
	f.sm.SetState(f.state)
	return f
}

func (f *fixture) lastToast(t *testing.T) string {
	t.Helper()
	items := f.toasts.Items()
	require.NotEmpty(t, items)
	return items[len(items)-1].Text
}

func TestSelectAt(t *testing.T) {
	f := newFixture(t, scene.HexOddR)

	f.state.SelectAt(130, 130, false)
	assert.True(t, f.scene.IsControlled("a"))

	f.state.SelectAt(330, 130, true)
	assert.True(t, f.scene.IsControlled("a"))
	assert.True(t, f.scene.IsControlled("b"))

	f.state.SelectAt(330, 130, false)
	assert.False(t, f.scene.IsControlled("a"))

	// shift-click on empty space keeps the selection
	f.state.SelectAt(10, 10, true)
	assert.True(t, f.scene.IsControlled("b"))

	f.state.SelectAt(10, 10, false)
	assert.Empty(t, f.scene.Controlled())
}

func TestOpenConfiguratorWithoutTarget(t *testing.T) {
	f := newFixture(t, scene.HexOddR)
	f.state.OpenConfigurator()
	assert.Same(t, f.state, f.sm.Current())
	assert.Equal(t, "Select a token first.", f.lastToast(t))
}

func TestOpenConfiguratorOnSquareGrid(t *testing.T) {
	f := newFixture(t, scene.Square)
	f.state.SelectAt(130, 130, false)
	f.state.OpenConfigurator()
	assert.Same(t, f.state, f.sm.Current())
	assert.Equal(t, "This macro only works on hexagonal grids!", f.lastToast(t))
}

func TestConfigureDrawRotateClear(t *testing.T) {
	f := newFixture(t, scene.HexOddR)
	f.state.SelectAt(130, 130, false)
	f.state.OpenConfigurator()

	cs, ok := f.sm.Current().(*ConfigureState)
	require.True(t, ok)
	assert.Equal(t, "a", cs.Session().Target.ID)
	assert.Equal(t, hexmap.PointyTop, cs.Session().Orientation)

	require.NoError(t, cs.Session().Honeycomb.Toggle(hexmap.Hex{Q: 1, R: 0}))
	cs.Confirm()
	assert.Same(t, f.state, f.sm.Current())
	require.Equal(t, 1, f.layer.Len())
	assert.Equal(t, "Honeycomb drawn with 2 hex(es)!", f.lastToast(t))

	f.state.RotateControlled(config.RotationStep)
	tok, _ := f.scene.Token("a")
	assert.Equal(t, 15.0, tok.Rotation)

	f.state.ClearHoneycomb()
	assert.Equal(t, 0, f.layer.Len())
	assert.Equal(t, "Honeycomb removed!", f.lastToast(t))

	f.state.ClearHoneycomb()
	assert.Equal(t, "No honeycomb to remove!", f.lastToast(t))
}

func TestConfigureReopenReplacesOverlay(t *testing.T) {
	f := newFixture(t, scene.HexOddQ)
	f.state.SelectAt(130, 130, false)

	f.state.OpenConfigurator()
	f.sm.Current().(*ConfigureState).Confirm()
	require.Equal(t, 1, f.layer.Len())

	// reopening removes the old honeycomb before anything is drawn
	f.state.OpenConfigurator()
	assert.Equal(t, 0, f.layer.Len())
	f.sm.Current().(*ConfigureState).Confirm()
	assert.Equal(t, 1, f.layer.Len())
}

func TestConfigureButtons(t *testing.T) {
	f := newFixture(t, scene.HexOddR)
	f.state.SelectAt(130, 130, false)
	f.state.OpenConfigurator()
	cs := f.sm.Current().(*ConfigureState)
	require.Len(t, cs.buttons, 3)

	hc := cs.Session().Honeycomb
	require.NoError(t, hc.Toggle(hexmap.Hex{Q: 0, R: 1}))
	require.Equal(t, 2, hc.SelectedCount())

	reset := cs.buttons[1]
	cs.Click(int(reset.X)+1, int(reset.Y)+1)
	assert.Equal(t, 1, hc.SelectedCount())
	assert.Same(t, cs, f.sm.Current())

	cancel := cs.buttons[2]
	cs.Click(int(cancel.X)+1, int(cancel.Y)+1)
	assert.Same(t, f.state, f.sm.Current())
	assert.Equal(t, 0, f.layer.Len())
}

func TestConfigureInvalidOptionsKeepsDialog(t *testing.T) {
	f := newFixture(t, scene.HexEvenR)
	f.state.SelectAt(130, 130, false)
	f.state.OpenConfigurator()
	cs := f.sm.Current().(*ConfigureState)

	cs.Session().Options.Thickness = 0
	cs.Confirm()
	assert.Same(t, cs, f.sm.Current())
	assert.Equal(t, 0, f.layer.Len())
}
