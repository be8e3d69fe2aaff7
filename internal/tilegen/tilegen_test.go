package tilegen

import (
	"testing"

	"go-hex-tiles/internal/config"
	"go-hex-tiles/internal/utils"
	"go-hex-tiles/pkg/hexmap"
)

func draw(s Source, n int) []hexmap.HexTile {
	out := make([]hexmap.HexTile, n)
	for i := range out {
		out[i] = s.Next()
	}
	return out
}

func TestEdgeZeroAlwaysConnectable(t *testing.T) {
	for _, gen := range []string{config.GeneratorRandom, config.GeneratorNoise} {
		for _, p := range []float64{0, 0.3, 0.5, 1} {
			src, err := New(config.TilesConfig{Generator: gen, EdgeProbability: p, Seed: 11, NoiseFrequency: 0.2})
			if err != nil {
				t.Fatalf("New(%s): %v", gen, err)
			}
			for i, tile := range draw(src, 300) {
				if !tile.HasConnectableEdge(0) {
					t.Fatalf("%s p=%v draw %d: edge 0 missing in %v", gen, p, i, tile)
				}
			}
		}
	}
}

func TestProbabilityExtremes(t *testing.T) {
	for _, gen := range []string{config.GeneratorRandom, config.GeneratorNoise} {
		never, _ := New(config.TilesConfig{Generator: gen, EdgeProbability: 0, Seed: 3, NoiseFrequency: 0.2})
		for _, tile := range draw(never, 100) {
			if tile != hexmap.MustHexTile(0) {
				t.Fatalf("%s p=0: expected only edge 0, got %v", gen, tile)
			}
		}
		always, _ := New(config.TilesConfig{Generator: gen, EdgeProbability: 1, Seed: 3, NoiseFrequency: 0.2})
		for _, tile := range draw(always, 100) {
			if tile != hexmap.FullTile() {
				t.Fatalf("%s p=1: expected full tile, got %v", gen, tile)
			}
		}
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	for _, gen := range []string{config.GeneratorRandom, config.GeneratorNoise} {
		cfg := config.TilesConfig{Generator: gen, EdgeProbability: 0.5, Seed: 1234, NoiseFrequency: 0.2}
		a, _ := New(cfg)
		b, _ := New(cfg)
		ta, tb := draw(a, 50), draw(b, 50)
		for i := range ta {
			if ta[i] != tb[i] {
				t.Fatalf("%s: draw %d differs: %v vs %v", gen, i, ta[i], tb[i])
			}
		}
	}
}

func TestRandomSourceMixesEdges(t *testing.T) {
	src := NewRandomSource(utils.NewPRNGService(5), 0.5)
	counts := make([]int, 6)
	const n = 2000
	for _, tile := range draw(src, n) {
		for _, e := range tile.ConnectableEdges() {
			counts[e]++
		}
	}
	for e := 1; e < 6; e++ {
		if counts[e] < n/4 || counts[e] > n*3/4 {
			t.Fatalf("edge %d connectable %d/%d times", e, counts[e], n)
		}
	}
}

func TestNoiseProbabilityStaysInRange(t *testing.T) {
	src := NewNoiseSource(utils.NewPRNGService(9), 0.5, 0.15)
	for n := 0; n < 500; n++ {
		p := src.Probability(n)
		if p < 0 || p > 1 {
			t.Fatalf("draw %d: probability %v out of range", n, p)
		}
	}
}

func TestNewRejectsUnknownGenerator(t *testing.T) {
	if _, err := New(config.TilesConfig{Generator: "perlin"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestSequenceCycles(t *testing.T) {
	a, b := hexmap.MustHexTile(0), hexmap.MustHexTile(0, 3)
	s := NewSequence(a, b)
	got := draw(s, 5)
	want := []hexmap.HexTile{a, b, a, b, a}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("draw %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if NewSequence().Next() != hexmap.FullTile() {
		t.Fatalf("empty sequence should fall back to the full tile")
	}
}
