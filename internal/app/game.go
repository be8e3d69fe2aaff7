// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"go-hex-tiles/internal/config"
	"go-hex-tiles/internal/event"
	"go-hex-tiles/internal/tilegen"
	"go-hex-tiles/internal/utils"
	"go-hex-tiles/pkg/anim"
	"go-hex-tiles/pkg/hexmap"
)

var (
	ErrNotFrontier     = errors.New("cell is not on the frontier")
	ErrNoLegalRotation = errors.New("no legal rotation at cell")
	ErrBoardClosed     = errors.New("board closed")
)

// maxRedraws bounds how many tiles are drawn looking for one that fits
// somewhere on the frontier. Only reachable with the strict match rule.
const maxRedraws = 64

// TileID is the render handle of a tile, stable from draw to placement.
type TileID uint64

// Candidate is the tile the player is about to place.
type Candidate struct {
	ID       TileID
	Tile     hexmap.HexTile
	Position hexmap.Position
	Legal    []int // ascending legal rotations at Position.Coord
}

// Options configures a session.
type Options struct {
	Source     tilegen.Source
	Rule       hexmap.MatchRule
	Duration   time.Duration
	Pulse      float64
	Clock      func() time.Time
	Logger     *slog.Logger
	Dispatcher *event.Dispatcher
}

// OptionsFromConfig maps loaded settings onto session options.
func OptionsFromConfig(cfg *config.Config, logger *slog.Logger) (Options, error) {
	src, err := tilegen.New(cfg.Tiles)
	if err != nil {
		return Options{}, fmt.Errorf("tile source: %w", err)
	}
	return Options{
		Source:   src,
		Rule:     cfg.MatchRule(),
		Duration: cfg.Animation.Duration,
		Pulse:    cfg.Animation.PulseAmplitude,
		Logger:   logger,
	}, nil
}

// Game owns one board and everything derived from it.
type Game struct {
	id       uuid.UUID
	board    *hexmap.Board
	matcher  hexmap.Matcher
	source   tilegen.Source
	anim     *anim.Animator[TileID]
	events   *event.Dispatcher
	logger   *slog.Logger
	duration time.Duration

	frontier    []hexmap.Hex
	frontierSet map[hexmap.Hex]struct{}
	candidate   *Candidate
	poses       map[TileID]anim.Pose // позы анимируемых тайлов с последнего Update
	resting     map[TileID]hexmap.Position
	nextID      TileID
	over        bool
}

// NewGame places the six-edge starting tile at the origin and draws the first
// candidate.
func NewGame(opts Options) (*Game, error) {
	if opts.Source == nil {
		opts.Source = tilegen.NewRandomSource(utils.NewPRNGService(0), config.EdgeProbability)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Dispatcher == nil {
		opts.Dispatcher = event.NewDispatcher()
	}

	g := &Game{
		id:       uuid.New(),
		board:    hexmap.NewBoard(),
		matcher:  hexmap.Matcher{Rule: opts.Rule},
		source:   opts.Source,
		events:   opts.Dispatcher,
		duration: opts.Duration,
		poses:    make(map[TileID]anim.Pose),
		resting:  make(map[TileID]hexmap.Position),
	}
	g.logger = opts.Logger.With("session", g.id.String())
	g.anim = anim.New(
		anim.WithClock[TileID](opts.Clock),
		anim.WithPulse[TileID](opts.Pulse),
		anim.WithOnComplete(g.onAnimationDone),
	)

	start := g.allocID()
	placed, err := g.board.Place(hexmap.Origin, hexmap.FullTile(), 0, start)
	if err != nil {
		return nil, fmt.Errorf("place starting tile: %w", err)
	}
	g.logger.Info("Session started", "rule", opts.Rule.String())
	g.recordPlaced(start, placed)
	g.refreshFrontier()
	g.drawCandidate()
	return g, nil
}

func (g *Game) allocID() TileID {
	g.nextID++
	return g.nextID
}

// ID is the session identifier used in logs.
func (g *Game) ID() string { return g.id.String() }

// Board gives read access to the placed tiles.
func (g *Game) Board() hexmap.BoardReader { return g.board }

func (g *Game) Placed() int { return g.board.Len() }

// Frontier returns the current frontier in discovery order.
func (g *Game) Frontier() []hexmap.Hex {
	return slices.Clone(g.frontier)
}

func (g *Game) InFrontier(coord hexmap.Hex) bool {
	_, ok := g.frontierSet[coord]
	return ok
}

// Over reports that the frontier is empty and nothing more can be placed.
func (g *Game) Over() bool { return g.over }

// Candidate returns a copy of the current candidate.
func (g *Game) Candidate() (Candidate, bool) {
	if g.candidate == nil {
		return Candidate{}, false
	}
	c := *g.candidate
	c.Legal = slices.Clone(c.Legal)
	return c, true
}

// LegalAt lists the rotations the current candidate may take at coord.
func (g *Game) LegalAt(coord hexmap.Hex) []int {
	if g.candidate == nil || !g.InFrontier(coord) {
		return nil
	}
	return g.matcher.LegalRotations(g.board, coord, g.candidate.Tile)
}

// Animating reports whether the candidate is mid-transition.
func (g *Game) Animating() bool {
	return g.candidate != nil && g.anim.Running(g.candidate.ID)
}

// MoveCandidate sends the candidate to a frontier cell, taking the first legal
// rotation there. A move requested while the candidate is still animating
// is dropped and reports false.
func (g *Game) MoveCandidate(coord hexmap.Hex) (bool, error) {
	if g.over {
		return false, ErrBoardClosed
	}
	if !g.InFrontier(coord) {
		return false, fmt.Errorf("move to %s: %w", coord.Key(), ErrNotFrontier)
	}
	legal := g.matcher.LegalRotations(g.board, coord, g.candidate.Tile)
	if len(legal) == 0 {
		return false, fmt.Errorf("move to %s: %w", coord.Key(), ErrNoLegalRotation)
	}
	if g.anim.Running(g.candidate.ID) {
		g.logger.Debug("Move dropped, candidate busy", "coord", coord.Key())
		return false, nil
	}

	to := hexmap.Position{Coord: coord, Rotation: legal[0]}
	g.anim.Begin(g.candidate.ID, g.candidate.Position, to, g.duration)
	g.candidate.Position = to
	g.candidate.Legal = legal

	g.logger.Debug("Candidate moved", "coord", coord.Key(), "rotation", to.Rotation, "legal", legal)
	g.events.Dispatch(event.Event{Type: event.CandidateMoved, Data: g.candidateData()})
	return true, nil
}

// RotateCandidate advances to the next legal rotation, wrapping around. It
// reports false when there is nothing to rotate to or the candidate is busy.
func (g *Game) RotateCandidate() bool {
	if g.over || g.candidate == nil {
		return false
	}
	c := g.candidate
	if len(c.Legal) < 2 || g.anim.Running(c.ID) {
		return false
	}
	i := slices.Index(c.Legal, c.Position.Rotation)
	next := c.Legal[(i+1)%len(c.Legal)]

	to := hexmap.Position{Coord: c.Position.Coord, Rotation: next}
	g.anim.Begin(c.ID, c.Position, to, g.duration)
	c.Position = to

	g.logger.Debug("Candidate rotated", "coord", to.Coord.Key(), "rotation", next)
	g.events.Dispatch(event.Event{Type: event.CandidateRotated, Data: g.candidateData()})
	return true
}

// PlaceCandidate commits the candidate at its current position, recomputes
// the frontier and draws the next tile.
func (g *Game) PlaceCandidate() (hexmap.PlacedTile, error) {
	if g.over || g.candidate == nil {
		return hexmap.PlacedTile{}, ErrBoardClosed
	}
	c := g.candidate
	if !slices.Contains(c.Legal, c.Position.Rotation) {
		return hexmap.PlacedTile{}, fmt.Errorf("place at %s: %w", c.Position.Coord.Key(), ErrNoLegalRotation)
	}
	placed, err := g.board.Place(c.Position.Coord, c.Tile, c.Position.Rotation, c.ID)
	if err != nil {
		return hexmap.PlacedTile{}, fmt.Errorf("place at %s: %w", c.Position.Coord.Key(), err)
	}
	g.candidate = nil

	g.logger.Info("Tile placed",
		"coord", placed.Position.Coord.Key(),
		"rotation", placed.Position.Rotation,
		"edges", placed.Tile.String(),
		"placed", g.board.Len())
	g.recordPlaced(c.ID, placed)
	g.refreshFrontier()
	g.drawCandidate()
	return placed, nil
}

// AutoStep moves the candidate to a frontier cell picked at random, weighted
// by how many rotations fit there, and places it.
func (g *Game) AutoStep(rng *utils.PRNGService) (bool, error) {
	if g.over {
		return false, ErrBoardClosed
	}
	if g.Animating() {
		return false, nil
	}
	var cells []hexmap.Hex
	var weights []int
	for _, h := range g.frontier {
		if n := len(g.LegalAt(h)); n > 0 {
			cells = append(cells, h)
			weights = append(weights, n)
		}
	}
	if len(cells) == 0 {
		return false, ErrNoLegalRotation
	}
	target := cells[rng.ChooseWeighted(weights)]
	if _, err := g.MoveCandidate(target); err != nil {
		return false, err
	}
	if _, err := g.PlaceCandidate(); err != nil {
		return false, err
	}
	return true, nil
}

// Update samples every running animation at now. Finished tiles drop back
// to their static pose.
func (g *Game) Update(now time.Time) {
	targets := g.anim.Targets()
	slices.Sort(targets)
	for _, id := range targets {
		frame, ok := g.anim.Sample(id, now)
		if !ok {
			continue
		}
		if frame.Done {
			delete(g.poses, id)
			continue
		}
		g.poses[id] = frame.Pose
	}
}

// Pose is the render pose of a placed tile or the candidate.
func (g *Game) Pose(id TileID) (anim.Pose, bool) {
	if p, ok := g.poses[id]; ok {
		return p, true
	}
	if g.candidate != nil && g.candidate.ID == id {
		return anim.StaticPose(g.candidate.Position), true
	}
	if pos, ok := g.resting[id]; ok {
		return anim.StaticPose(pos), true
	}
	return anim.Pose{}, false
}

func (g *Game) refreshFrontier() {
	g.frontier = hexmap.Frontier(g.board)
	g.frontierSet = make(map[hexmap.Hex]struct{}, len(g.frontier))
	for _, h := range g.frontier {
		g.frontierSet[h] = struct{}{}
	}
	g.logger.Debug("Frontier recomputed", "size", len(g.frontier))
	g.events.Dispatch(event.Event{Type: event.FrontierChanged, Data: event.FrontierData{Cells: g.Frontier()}})

	if len(g.frontier) == 0 {
		g.close("frontier empty")
	}
}

// drawCandidate pulls tiles from the source until one fits at some frontier
// cell, and puts it at the first such cell.
func (g *Game) drawCandidate() {
	if g.over {
		return
	}
	for attempt := 0; attempt < maxRedraws; attempt++ {
		tile := g.source.Next()
		for _, h := range g.frontier {
			legal := g.matcher.LegalRotations(g.board, h, tile)
			if len(legal) == 0 {
				continue
			}
			id := g.allocID()
			pos := hexmap.Position{Coord: h, Rotation: legal[0]}
			g.candidate = &Candidate{ID: id, Tile: tile, Position: pos, Legal: legal}

			g.logger.Debug("Tile drawn", "id", id, "edges", tile.String(), "coord", h.Key(), "attempt", attempt)
			g.events.Dispatch(event.Event{Type: event.TileDrawn, Data: g.candidateData()})
			return
		}
	}
	g.close("no drawn tile fits the frontier")
}

func (g *Game) close(reason string) {
	g.over = true
	g.candidate = nil
	g.logger.Info("Board closed", "reason", reason, "placed", g.board.Len())
	g.events.Dispatch(event.Event{Type: event.BoardClosed, Data: g.board.Len()})
}

func (g *Game) onAnimationDone(id TileID, end hexmap.Position) {
	g.events.Dispatch(event.Event{
		Type: event.AnimationFinished,
		Data: event.TileData{ID: uint64(id), Position: end},
	})
}

func (g *Game) candidateData() event.TileData {
	c := g.candidate
	return event.TileData{ID: uint64(c.ID), Tile: c.Tile, Position: c.Position}
}

func (g *Game) recordPlaced(id TileID, p hexmap.PlacedTile) {
	g.resting[id] = p.Position
	g.events.Dispatch(event.Event{
		Type: event.TilePlaced,
		Data: event.TileData{ID: uint64(id), Tile: p.Tile, Position: p.Position, Depth: g.Depth(p.Position.Coord)},
	})
}

// Depth is the number of linked steps from coord back to the starting tile,
// or -1 when the tile is not linked to it.
func (g *Game) Depth(coord hexmap.Hex) int {
	path := hexmap.AStar(g.board, coord, hexmap.Origin)
	if path == nil {
		return -1
	}
	return len(path) - 1
}
