// internal/tilegen/tilegen.go

// Package tilegen draws candidate tiles. Every drawn tile has edge 0
// connectable; edges 1-5 are connectable independently with a configurable
// probability.
package tilegen

import (
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"go-hex-tiles/internal/config"
	"go-hex-tiles/internal/utils"
	"go-hex-tiles/pkg/hexmap"
)

// Source hands out the next candidate tile.
type Source interface {
	Next() hexmap.HexTile
}

// New builds the source selected by cfg.Generator.
func New(cfg config.TilesConfig) (Source, error) {
	rng := utils.NewPRNGService(cfg.Seed)
	switch cfg.Generator {
	case config.GeneratorRandom, "":
		return NewRandomSource(rng, cfg.EdgeProbability), nil
	case config.GeneratorNoise:
		return NewNoiseSource(rng, cfg.EdgeProbability, cfg.NoiseFrequency), nil
	default:
		return nil, fmt.Errorf("unknown tile generator %q", cfg.Generator)
	}
}

func buildTile(connect func(edge int) bool) hexmap.HexTile {
	edges := make([]int, 1, hexmap.EdgeCount)
	for e := 1; e < hexmap.EdgeCount; e++ {
		if connect(e) {
			edges = append(edges, e)
		}
	}
	return hexmap.MustHexTile(edges...)
}

// RandomSource flips an independent coin per edge.
type RandomSource struct {
	rng *utils.PRNGService
	p   float64
}

func NewRandomSource(rng *utils.PRNGService, p float64) *RandomSource {
	return &RandomSource{rng: rng, p: p}
}

func (s *RandomSource) Next() hexmap.HexTile {
	return buildTile(func(int) bool { return s.rng.Chance(s.p) })
}

// NoiseSource walks a 1D slice of simplex noise along the draw sequence and
// bends the edge probability with it, so runs of sparse and dense tiles
// follow each other. Probabilities 0 and 1 stay exact.
type NoiseSource struct {
	rng       *utils.PRNGService
	noise     opensimplex.Noise
	p         float64
	frequency float64
	drawn     int
}

func NewNoiseSource(rng *utils.PRNGService, p, frequency float64) *NoiseSource {
	return &NoiseSource{
		rng:       rng,
		noise:     opensimplex.NewNormalized(rng.Seed()),
		p:         p,
		frequency: frequency,
	}
}

func (s *NoiseSource) Next() hexmap.HexTile {
	p := s.Probability(s.drawn)
	s.drawn++
	return buildTile(func(int) bool { return s.rng.Chance(p) })
}

// Probability is the per-edge chance used for the n-th draw.
func (s *NoiseSource) Probability(n int) float64 {
	density := octaveNoise(s.noise, float64(n), 0, 3, s.frequency, 0.5)
	// density 0.5 keeps p, higher density pushes it towards 1
	gamma := math.Exp2(2 * (1 - 2*density))
	return math.Pow(s.p, gamma)
}

// octaveNoise layers several frequencies of the same noise field.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// Sequence replays a fixed list of tiles, starting over at the end.
type Sequence struct {
	tiles []hexmap.HexTile
	next  int
}

func NewSequence(tiles ...hexmap.HexTile) *Sequence {
	return &Sequence{tiles: tiles}
}

func (s *Sequence) Next() hexmap.HexTile {
	if len(s.tiles) == 0 {
		return hexmap.FullTile()
	}
	t := s.tiles[s.next%len(s.tiles)]
	s.next++
	return t
}
