// internal/state/scene_state.go
package state

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"

	"who-brings-what/internal/app"
	"who-brings-what/internal/config"
	"who-brings-what/internal/scene"
	"who-brings-what/internal/ui"
	"who-brings-what/pkg/hexmap"
	"who-brings-what/pkg/render"
	"who-brings-what/pkg/utils"
)

// Убеждаемся, что SceneState соответствует интерфейсу State
var _ State = (*SceneState)(nil)

const sceneHelp = "click: select token (shift: add)   Q/E: rotate   H: honeycomb   X: clear honeycomb"

// SceneState — доска с токенами и нарисованными сотами
type SceneState struct {
	sm         *StateMachine
	scene      *scene.Scene
	layer      *render.Layer
	macro      *app.Macro
	toasts     *ui.Toasts
	origin     hexmap.Point
	boardImage *ebiten.Image // предрендеренная сетка
}

func NewSceneState(sm *StateMachine, s *scene.Scene, layer *render.Layer, macro *app.Macro, toasts *ui.Toasts, origin hexmap.Point) *SceneState {
	return &SceneState{
		sm:     sm,
		scene:  s,
		layer:  layer,
		macro:  macro,
		toasts: toasts,
		origin: origin,
	}
}

func (s *SceneState) Enter() {
	log.Debug().Int("tokens", len(s.scene.Tokens())).Msg("scene entered")
}

func (s *SceneState) Exit() {}

func (s *SceneState) Update(deltaTime float64) {
	s.toasts.Update(deltaTime)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		additive := ebiten.IsKeyPressed(ebiten.KeyShift)
		s.SelectAt(float64(x), float64(y), additive)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		s.RotateControlled(-config.RotationStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		s.RotateControlled(config.RotationStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.OpenConfigurator()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		s.ClearHoneycomb()
	}
}

// SelectAt controls the token under (x, y); an empty spot releases everything.
func (s *SceneState) SelectAt(x, y float64, additive bool) {
	tok, ok := s.scene.TokenAt(x, y)
	if !ok {
		if !additive {
			s.scene.Release()
		}
		return
	}
	var err error
	if additive {
		err = s.scene.ToggleControl(tok.ID)
	} else {
		err = s.scene.Control(tok.ID)
	}
	if err != nil {
		log.Error().Err(err).Str("token", tok.ID).Msg("failed to select token")
	}
}

// RotateControlled turns every controlled token by delta degrees.
func (s *SceneState) RotateControlled(delta float64) {
	for _, tok := range s.scene.Controlled() {
		if err := s.scene.Rotate(tok.ID, tok.Rotation+delta); err != nil {
			log.Error().Err(err).Str("token", tok.ID).Msg("failed to rotate token")
		}
	}
}

// OpenConfigurator starts a honeycomb session and shows the dialog.
func (s *SceneState) OpenConfigurator() {
	sess, err := s.macro.Begin()
	if err != nil {
		log.Debug().Err(err).Msg("honeycomb not started")
		return
	}
	s.sm.SetState(NewConfigureState(s.sm, s, s.macro, sess))
}

// ClearHoneycomb removes the honeycomb of the selected token.
func (s *SceneState) ClearHoneycomb() {
	target, err := s.scene.SelectedTarget()
	if err != nil {
		s.toasts.Warn("Select a token first.")
		return
	}
	_ = s.macro.Clear(target.ID)
}

func (s *SceneState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	if s.boardImage == nil {
		s.renderBoardImage()
	}
	screen.DrawImage(s.boardImage, nil)

	// соты рисуются под токенами
	s.layer.Draw(screen)
	s.drawTokens(screen)

	s.drawHelp(screen)
	s.toasts.Draw(screen)
}

// renderBoardImage рисует сетку доски один раз
func (s *SceneState) renderBoardImage() {
	s.boardImage = ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	grid := s.scene.Grid

	if !grid.IsHex() {
		s.renderSquareBoard(grid)
		return
	}
	o, err := grid.Orientation()
	if err != nil {
		log.Error().Err(err).Msg("failed to render board")
		return
	}

	board, err := hexmap.NewHoneycomb(config.BoardRadius)
	if err != nil {
		log.Error().Err(err).Msg("failed to build board")
		return
	}
	for _, c := range board.Cells() {
		center, err := c.ToPixel(grid.HexRadius(), o)
		if err != nil {
			log.Error().Err(err).Msg("failed to render board")
			return
		}
		vs, _ := hexmap.HexVertices(s.origin.X+center.X, s.origin.Y+center.Y, grid.HexRadius(), o)
		render.DrawPolygon(s.boardImage, vs, config.BoardCellColor, config.BoardStrokeColor, config.StrokeWidth)
	}
}

func (s *SceneState) renderSquareBoard(grid scene.Grid) {
	if grid.Type != scene.Square || grid.Size <= 0 {
		return
	}
	size := float32(grid.Size)
	n := config.BoardRadius
	for col := -n; col <= n; col++ {
		for row := -n; row <= n; row++ {
			x := float32(s.origin.X) + float32(col)*size - size/2
			y := float32(s.origin.Y) + float32(row)*size - size/2
			vector.DrawFilledRect(s.boardImage, x, y, size, size, config.BoardCellColor, false)
			vector.StrokeRect(s.boardImage, x, y, size, size, config.StrokeWidth, config.BoardStrokeColor, false)
		}
	}
}

func (s *SceneState) drawTokens(screen *ebiten.Image) {
	radius := float32(s.scene.Grid.Size * config.TokenRadiusFactor)
	for _, tok := range s.scene.Tokens() {
		c := s.scene.Center(tok)
		cx, cy := float32(c.X), float32(c.Y)

		stroke := config.TokenStrokeColor
		if s.scene.IsControlled(tok.ID) {
			stroke = config.ControlledColor
		}
		vector.DrawFilledCircle(screen, cx, cy, radius, config.TokenColor, true)
		vector.StrokeCircle(screen, cx, cy, radius, 2, stroke, true)

		// направление взгляда: 0° — вверх, по часовой стрелке
		rad := utils.DegToRad(tok.Rotation)
		fx := cx + radius*float32(math.Sin(rad))
		fy := cy - radius*float32(math.Cos(rad))
		vector.StrokeLine(screen, cx, cy, fx, fy, 2, stroke, true)

		ui.DrawLabel(screen, tok.Name, c.X, c.Y+float64(radius)+10, config.TextLightColor)
	}
}

func (s *SceneState) drawHelp(screen *ebiten.Image) {
	ui.DrawLabel(screen, sceneHelp, float64(config.ScreenWidth)/2, float64(config.ScreenHeight)-16, config.TextLightColor)
}
