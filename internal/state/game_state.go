// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	game "go-hex-tiles/internal/app"
	"go-hex-tiles/internal/config"
	"go-hex-tiles/internal/event"
	"go-hex-tiles/internal/ui"
	"go-hex-tiles/pkg/hexmap"
	"go-hex-tiles/pkg/render"
)

// hoverHighlight: насколько осветляется ячейка фронтира под курсором
const hoverHighlight = 0.35

// GameState — состояние игры
type GameState struct {
	sm        *StateMachine
	cfg       *config.Config
	logger    *slog.Logger
	game      *game.Game
	renderer  *render.HexRenderer
	palette   render.Palette
	infoPanel *ui.InfoPanel
	button    *ui.Button
	titleFont font.Face
}

func NewGameState(sm *StateMachine, cfg *config.Config, logger *slog.Logger) (*GameState, error) {
	opts, err := game.OptionsFromConfig(cfg, logger)
	if err != nil {
		return nil, err
	}
	face, err := ui.LoadFace(14)
	if err != nil {
		return nil, err
	}
	titleFace, err := ui.LoadFace(18)
	if err != nil {
		return nil, err
	}

	// панель подписывается до старта, чтобы увидеть стартовый тайл
	dispatcher := event.NewDispatcher()
	infoPanel := ui.NewInfoPanel(face, titleFace, dispatcher)
	opts.Dispatcher = dispatcher

	gameLogic, err := game.NewGame(opts)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	w, h := cfg.Window.Width, cfg.Window.Height
	renderer := render.NewHexRenderer(cfg.Board.HexSize, float64(w)/2, float64(h)/2)

	btnRect := image.Rect(
		w-config.ButtonWidth-config.ButtonMargin,
		h-config.ButtonHeight-config.ButtonMargin,
		w-config.ButtonMargin,
		h-config.ButtonMargin,
	)

	gs := &GameState{
		sm:        sm,
		cfg:       cfg,
		logger:    logger,
		game:      gameLogic,
		renderer:  renderer,
		palette:   defaultPalette(),
		infoPanel: infoPanel,
		button:    ui.NewButton(btnRect, "Place Hex", face),
		titleFont: titleFace,
	}
	infoPanel.SetSession(gameLogic.ID(), time.Now())
	return gs, nil
}

func defaultPalette() render.Palette {
	style := func(fill render.TileStyle) render.TileStyle {
		fill.Stroke = config.StrokeColor
		fill.Marker = config.EdgeMarkerColor
		fill.StrokeWidth = float32(config.StrokeWidth)
		return fill
	}
	return render.Palette{
		Background: config.BackgroundColor,
		Placed:     style(render.TileStyle{Fill: config.PlacedColor}),
		Candidate:  style(render.TileStyle{Fill: config.CandidateColor}),
		Frontier:   style(render.TileStyle{Fill: config.FrontierColor}),
		Blocked:    style(render.TileStyle{Fill: config.BlockedColor}),
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g, g.titleFont))
		return
	}

	if g.game.Over() {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.restart()
		}
	} else {
		g.handleInput()
	}

	g.game.Update(time.Now())
	g.button.Enabled = !g.game.Over()
	if c, ok := g.game.Candidate(); ok {
		g.infoPanel.SetLegal(c.Legal)
	} else {
		g.infoPanel.SetLegal(nil)
	}
}

func (g *GameState) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.place()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.RotateCandidate()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		// Проверяем клик по UI элементам в первую очередь
		if g.button.Contains(x, y) {
			if g.button.Press(time.Now()) {
				g.place()
			}
			return
		}
		g.handleBoardClick(g.renderer.ScreenToHex(float64(x), float64(y)))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.RotateCandidate()
	}
}

// handleBoardClick: клик по кандидату вращает его, клик по фронтиру переносит.
func (g *GameState) handleBoardClick(hex hexmap.Hex) {
	if c, ok := g.game.Candidate(); ok && c.Position.Coord == hex {
		g.game.RotateCandidate()
		return
	}
	if _, err := g.game.MoveCandidate(hex); err != nil {
		if !errors.Is(err, game.ErrNotFrontier) && !errors.Is(err, game.ErrNoLegalRotation) {
			g.logger.Warn("Move failed", "coord", hex.Key(), "error", err)
		}
	}
}

func (g *GameState) place() {
	if _, err := g.game.PlaceCandidate(); err != nil {
		g.logger.Warn("Place failed", "error", err)
	}
}

func (g *GameState) restart() {
	next, err := NewGameState(g.sm, g.cfg, g.logger)
	if err != nil {
		g.logger.Error("Restart failed", "error", err)
		return
	}
	g.sm.SetState(next)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background)

	cand, hasCand := g.game.Candidate()
	mx, my := ebiten.CursorPosition()
	hovered := g.renderer.ScreenToHex(float64(mx), float64(my))
	for _, h := range g.game.Frontier() {
		if hasCand && h == cand.Position.Coord {
			continue
		}
		style := g.palette.Frontier
		if hasCand && len(g.game.LegalAt(h)) == 0 {
			style = g.palette.Blocked
		}
		if h == hovered {
			style.Fill = render.Brighten(style.Fill, hoverHighlight)
		}
		g.renderer.DrawPlaceholder(screen, h, style)
	}

	placedStyle := g.palette.Placed
	if g.game.Over() {
		placedStyle.Fill = render.DarkenColor(placedStyle.Fill)
	}
	for _, t := range g.game.Board().Tiles() {
		id, _ := t.Handle.(game.TileID)
		pose, _ := g.game.Pose(id)
		g.renderer.DrawTile(screen, t.Tile, pose, placedStyle)
	}
	if hasCand {
		pose, _ := g.game.Pose(cand.ID)
		g.renderer.DrawTile(screen, cand.Tile, pose, g.palette.Candidate)
	}

	g.infoPanel.Draw(screen)
	g.button.Draw(screen, time.Now(), g.button.Contains(mx, my))

	if g.game.Over() {
		msg := "No more moves. Space to start again"
		b := text.BoundString(g.titleFont, msg)
		text.Draw(screen, msg, g.titleFont, (screen.Bounds().Dx()-b.Dx())/2, screen.Bounds().Dy()-config.ButtonMargin-config.TextOffsetY, config.TextLightColor)
	}
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
