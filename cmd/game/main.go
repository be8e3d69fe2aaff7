// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-hex-tiles/internal/config"
	"go-hex-tiles/internal/state"
	"go-hex-tiles/internal/ui"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
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
	return a.width, a.height
}

func main() {
	configPath := flag.String("config", os.Getenv(config.ConfigPathEnv), "path to YAML config")
	skipMenu := flag.Bool("skip-menu", true, "start straight into a session")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	slog.SetDefault(logger)

	sm := state.NewStateMachine() // Создаём машину состояний
	if *skipMenu {
		gs, err := state.NewGameState(sm, cfg, logger)
		if err != nil {
			log.Fatalf("Failed to start session: %v", err)
		}
		sm.SetState(gs)
	} else {
		face, err := ui.LoadFace(24)
		if err != nil {
			log.Fatalf("Failed to load font: %v", err)
		}
		sm.SetState(state.NewMenuState(sm, cfg, logger, face))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          cfg.Window.Width,
		height:         cfg.Window.Height,
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
