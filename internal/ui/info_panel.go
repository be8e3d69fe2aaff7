// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-hex-tiles/internal/config"
	"go-hex-tiles/internal/event"
	"go-hex-tiles/pkg/hexmap"
)

const (
	panelWidth  = 380
	panelHeight = 210
	lineHeight  = 20
)

// InfoPanel is the HUD in the top-left corner. It keeps its own counters
// from session events, so it needs no access to the session itself.
type InfoPanel struct {
	fontFace      font.Face
	titleFontFace font.Face
	sessionID     string
	startedAt     time.Time

	placed      int
	frontier    int
	lastPlaced  hexmap.Position
	lastDepth   int
	candidate   event.TileData
	hasCand     bool
	legal       []int
	closed      bool
	animsPlayed uint64
}

var _ event.Listener = (*InfoPanel)(nil)

// NewInfoPanel creates the panel and subscribes it to dispatcher.
func NewInfoPanel(face, titleFace font.Face, dispatcher *event.Dispatcher) *InfoPanel {
	p := &InfoPanel{
		fontFace:      face,
		titleFontFace: titleFace,
	}
	dispatcher.SubscribeAll(p,
		event.TileDrawn, event.CandidateMoved, event.CandidateRotated, event.TilePlaced,
		event.FrontierChanged, event.AnimationFinished, event.BoardClosed)
	return p
}

func (p *InfoPanel) OnEvent(e event.Event) {
	switch e.Type {
	case event.TilePlaced:
		if d, ok := e.Data.(event.TileData); ok {
			p.placed++
			p.lastPlaced = d.Position
			p.lastDepth = d.Depth
		}
		p.hasCand = false
	case event.TileDrawn, event.CandidateMoved, event.CandidateRotated:
		if d, ok := e.Data.(event.TileData); ok {
			p.candidate = d
			p.hasCand = true
		}
	case event.FrontierChanged:
		if d, ok := e.Data.(event.FrontierData); ok {
			p.frontier = len(d.Cells)
		}
	case event.AnimationFinished:
		p.animsPlayed++
	case event.BoardClosed:
		p.closed = true
		p.hasCand = false
	}
}

// SetSession sets the id and start time shown in the footer line.
func (p *InfoPanel) SetSession(id string, startedAt time.Time) {
	p.sessionID = id
	p.startedAt = startedAt
}

// SetLegal stores the legal rotations shown for the candidate.
func (p *InfoPanel) SetLegal(legal []int) {
	p.legal = legal
}

func (p *InfoPanel) Draw(screen *ebiten.Image) {
	r := image.Rect(config.PanelMargin, config.PanelMargin, config.PanelMargin+panelWidth, config.PanelMargin+panelHeight)
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.PanelColor, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, config.PanelBorderColor, true)

	x := r.Min.X + 12
	y := r.Min.Y + 24
	title := "Hex Tiles"
	if p.closed {
		title = "Board closed"
	}
	text.Draw(screen, title, p.titleFontFace, x, y, config.TextLightColor)
	y += lineHeight + config.TextOffsetY

	lines := []string{
		fmt.Sprintf("Tiles placed: %s", humanize.Comma(int64(p.placed))),
		fmt.Sprintf("Frontier: %s cells", humanize.Comma(int64(p.frontier))),
		fmt.Sprintf("Last: %s, depth %d", p.lastPlaced.Coord.Key(), p.lastDepth),
		fmt.Sprintf("Animations played: %s", humanize.Comma(int64(p.animsPlayed))),
	}
	if p.hasCand {
		lines = append(lines, fmt.Sprintf("Candidate %s at %s rot %d %v",
			p.candidate.Tile, p.candidate.Position.Coord.Key(), p.candidate.Position.Rotation, p.legal))
	}
	lines = append(lines, fmt.Sprintf("Session %.8s, started %s", p.sessionID, humanize.Time(p.startedAt)))
	for _, l := range lines {
		text.Draw(screen, l, p.fontFace, x, y, config.TextLightColor)
		y += lineHeight
	}
}
