package main

import (
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"who-brings-what/internal/app"
	"who-brings-what/internal/config"
	"who-brings-what/internal/event"
	"who-brings-what/internal/scene"
	"who-brings-what/internal/state"
	"who-brings-what/internal/ui"
	"who-brings-what/pkg/hexmap"
	"who-brings-what/pkg/render"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func newRunCmd(root *rootOptions) *cobra.Command {
	var pprofAddr string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the board window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if pprofAddr != "" {
				go func() {
					log.Info().Str("addr", pprofAddr).Msg("pprof listening")
					if err := http.ListenAndServe(pprofAddr, nil); err != nil {
						log.Error().Err(err).Msg("pprof stopped")
					}
				}()
			}

			sm, err := buildStateMachine(cfg)
			if err != nil {
				return err
			}
			game := &AppGame{
				stateMachine:   sm,
				lastUpdateTime: time.Now(),
			}
			ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
			ebiten.SetWindowTitle("Honeycomb Highlight")
			return ebiten.RunGame(game)
		},
	}
	cmd.Flags().StringVar(&pprofAddr, "pprof", "", "Serve net/http/pprof on this address, e.g. localhost:6060")
	return cmd
}

// buildStateMachine wires the board, the overlay layer and the macro together.
func buildStateMachine(cfg *config.File) (*state.StateMachine, error) {
	origin := hexmap.Point{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2}
	d := event.NewDispatcher()
	s, err := scene.FromConfig(cfg.Board, origin, d)
	if err != nil {
		return nil, err
	}

	defaults, err := app.OptionsFromConfig(cfg.Honeycomb)
	if err != nil {
		return nil, err
	}

	layer := render.NewLayer()
	toasts := ui.NewToasts()
	macro := app.NewMacro(s, layer, toasts, defaults, cfg.Honeycomb.Radius)

	sm := state.NewStateMachine()
	sm.SetState(state.NewSceneState(sm, s, layer, macro, toasts, origin))
	return sm, nil
}
