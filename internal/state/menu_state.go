// internal/state/menu_state.go
package state

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-hex-tiles/internal/config"
)

// MenuState — стартовый экран, Space начинает сессию.
type MenuState struct {
	sm     *StateMachine
	cfg    *config.Config
	logger *slog.Logger
	font   font.Face
}

func NewMenuState(sm *StateMachine, cfg *config.Config, logger *slog.Logger, face font.Face) *MenuState {
	return &MenuState{sm: sm, cfg: cfg, logger: logger, font: face}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		gs, err := NewGameState(m.sm, m.cfg, m.logger)
		if err != nil {
			m.logger.Error("Cannot start session", "error", err)
			return
		}
		m.sm.SetState(gs)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	for i, line := range []string{m.cfg.Window.Title, "Space or click to start"} {
		b := text.BoundString(m.font, line)
		text.Draw(screen, line, m.font, (w-b.Dx())/2, h/2+i*30, config.TextLightColor)
	}
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
