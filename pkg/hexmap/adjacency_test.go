package hexmap

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"
)

func boardWith(t *testing.T, tiles ...PlacedTile) *Board {
	t.Helper()
	b := NewBoard()
	for _, p := range tiles {
		if _, err := b.Place(p.Position.Coord, p.Tile, p.Position.Rotation, nil); err != nil {
			t.Fatalf("place %v: %v", p.Position.Coord, err)
		}
	}
	return b
}

func placed(tile HexTile, coord Hex, rot int) PlacedTile {
	return PlacedTile{Tile: tile, Position: Position{Coord: coord, Rotation: rot}}
}

// A single-edge tile at the origin and a single-edge candidate across that
// edge agree on exactly one rotation: the one turning the candidate edge onto
// the slot facing the origin.
func TestLegalRotationsSingleEdgeTable(t *testing.T) {
	for placedEdge := 0; placedEdge < 6; placedEdge++ {
		for candEdge := 0; candEdge < 6; candEdge++ {
			name := fmt.Sprintf("placed{%d}/candidate{%d}", placedEdge, candEdge)
			t.Run(name, func(t *testing.T) {
				b := boardWith(t, placed(MustHexTile(placedEdge), Origin, 0))
				coord := Origin.Neighbor(placedEdge)
				want := []int{Mod6(placedEdge + 3 - candEdge)}
				got := LegalRotations(b, coord, MustHexTile(candEdge))
				if !reflect.DeepEqual(got, want) {
					t.Fatalf("expected %v, got %v", want, got)
				}
			})
		}
	}
}

func TestLegalRotationsNorthNeighbour(t *testing.T) {
	b := boardWith(t, placed(MustHexTile(0, 2, 4), Origin, 0))
	// (0,-1) is across edge 4 of the origin; the candidate edge must face
	// slot 1 to meet it, so edge 3 needs rotation 4.
	got := LegalRotations(b, Hex{Q: 0, R: -1}, MustHexTile(3))
	if !reflect.DeepEqual(got, []int{4}) {
		t.Fatalf("expected [4], got %v", got)
	}
}

func TestLegalRotationsAccountsForNeighbourRotation(t *testing.T) {
	// Edge 0 turned by 2 points South-west, at (-1,1).
	b := boardWith(t, placed(MustHexTile(0), Origin, 2))
	coord := Hex{Q: -1, R: 1}
	got := LegalRotations(b, coord, MustHexTile(0))
	if !reflect.DeepEqual(got, []int{5}) {
		t.Fatalf("expected [5], got %v", got)
	}
	// The origin's only edge has turned away from (1,0), so nothing fits there.
	if got := LegalRotations(b, Origin.Neighbor(0), MustHexTile(0, 1, 2, 3, 4, 5)); len(got) != 0 {
		t.Fatalf("expected no legal rotation across an unconnected edge, got %v", got)
	}
}

func TestLegalRotationsAscendingWithFullNeighbour(t *testing.T) {
	b := boardWith(t, placed(FullTile(), Origin, 0))
	got := LegalRotations(b, Origin.Neighbor(1), MustHexTile(0, 1, 3))
	// Candidate must put some edge on slot 4. Edge 0 → rot 4, edge 1 → rot 3, edge 3 → rot 1.
	if !reflect.DeepEqual(got, []int{1, 3, 4}) {
		t.Fatalf("expected [1 3 4], got %v", got)
	}
}

func TestLegalRotationsEmpty(t *testing.T) {
	b := boardWith(t, placed(FullTile(), Origin, 0))
	if got := LegalRotations(b, Hex{Q: 5, R: 5}, FullTile()); len(got) != 0 {
		t.Fatalf("isolated cell: expected none, got %v", got)
	}
	if got := LegalRotations(b, Origin.Neighbor(0), Placeholder()); len(got) != 0 {
		t.Fatalf("placeholder candidate: expected none, got %v", got)
	}
	if got := LegalRotations(NewBoard(), Origin, FullTile()); len(got) != 0 {
		t.Fatalf("empty board: expected none, got %v", got)
	}
}

func TestMatchRules(t *testing.T) {
	b := boardWith(t,
		placed(FullTile(), Origin, 0),
		placed(MustHexTile(0), Hex{Q: 1, R: -1}, 0),
	)
	coord := Hex{Q: 1, R: 0}
	cand := MustHexTile(0, 1)

	anyRot := Matcher{Rule: MatchAny}.LegalRotations(b, coord, cand)
	if !reflect.DeepEqual(anyRot, []int{2, 3}) {
		t.Fatalf("any: expected [2 3], got %v", anyRot)
	}
	allRot := Matcher{Rule: MatchAll}.LegalRotations(b, coord, cand)
	if !reflect.DeepEqual(allRot, []int{2}) {
		t.Fatalf("all: expected [2], got %v", allRot)
	}
}

func TestParseMatchRule(t *testing.T) {
	for in, want := range map[string]MatchRule{"": MatchAny, "any": MatchAny, "all": MatchAll} {
		got, err := ParseMatchRule(in)
		if err != nil || got != want {
			t.Fatalf("ParseMatchRule(%q) = %v, %v", in, got, err)
		}
		if in != "" && got.String() != in {
			t.Fatalf("String() = %q, want %q", got.String(), in)
		}
	}
	if _, err := ParseMatchRule("most"); err == nil {
		t.Fatalf("expected error for unknown rule")
	}
}

func TestFrontierOfStartingTile(t *testing.T) {
	b := boardWith(t, placed(FullTile(), Origin, 0))
	n := Origin.Neighbors()
	if got := Frontier(b); !reflect.DeepEqual(got, n[:]) {
		t.Fatalf("expected %v, got %v", n, got)
	}
}

func TestFrontierUsesRotationAndSkipsOccupied(t *testing.T) {
	b := boardWith(t,
		placed(MustHexTile(0, 3), Origin, 1),
		placed(MustHexTile(4), Hex{Q: 0, R: 1}, 0),
		placed(Placeholder(), Hex{Q: 3, R: 3}, 0),
	)
	// origin: edge 0→slot 1 (0,1) occupied, edge 3→slot 4 (0,-1).
	// (0,1): edge 4 → (0,0) occupied.
	got := Frontier(b)
	if !reflect.DeepEqual(got, []Hex{{Q: 0, R: -1}}) {
		t.Fatalf("expected [(0,-1)], got %v", got)
	}
}

func TestFrontierDeduplicates(t *testing.T) {
	b := boardWith(t,
		placed(MustHexTile(0), Origin, 0),
		placed(MustHexTile(1), Hex{Q: 1, R: -1}, 0),
	)
	// both edges point at (1,0)
	got := Frontier(b)
	if !reflect.DeepEqual(got, []Hex{{Q: 1, R: 0}}) {
		t.Fatalf("expected single frontier cell, got %v", got)
	}
	if set := FrontierSet(b); len(set) != 1 {
		t.Fatalf("expected set of one, got %v", set)
	}
}

func TestFrontierDoesNotRequireReciprocity(t *testing.T) {
	b := boardWith(t, placed(MustHexTile(0), Origin, 0))
	cell := Origin.Neighbor(0)
	if _, ok := FrontierSet(b)[cell]; !ok {
		t.Fatalf("expected %v in frontier", cell)
	}
	// membership came from the origin alone; the candidate is checked later
	if got := LegalRotations(b, cell, MustHexTile(1)); !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("expected [2], got %v", got)
	}
}

func TestFrontierMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := boardWith(t, placed(FullTile(), Origin, 0))
	for step := 0; step < 200; step++ {
		before := Frontier(b)
		if len(before) == 0 {
			break
		}
		edges := []int{0}
		for e := 1; e < 6; e++ {
			if rng.Intn(2) == 0 {
				edges = append(edges, e)
			}
		}
		tile := MustHexTile(edges...)

		var target Hex
		var rots []int
		for _, i := range rng.Perm(len(before)) {
			if r := LegalRotations(b, before[i], tile); len(r) > 0 {
				target, rots = before[i], r
				break
			}
		}
		if rots == nil {
			continue
		}
		if _, err := b.Place(target, tile, rots[rng.Intn(len(rots))], nil); err != nil {
			t.Fatalf("step %d: %v", step, err)
		}

		after := FrontierSet(b)
		if _, still := after[target]; still {
			t.Fatalf("step %d: occupied cell %v still in frontier", step, target)
		}
		for _, h := range before {
			if _, ok := after[h]; !ok && h != target {
				t.Fatalf("step %d: %v dropped from frontier", step, h)
			}
		}
		if len(after) > len(before)-1+tile.EdgeCount() {
			t.Fatalf("step %d: frontier grew from %d to %d with %d edges", step, len(before), len(after), tile.EdgeCount())
		}
	}
}

func TestAdjacencyDeterministic(t *testing.T) {
	build := func() *Board {
		return boardWith(t,
			placed(FullTile(), Origin, 0),
			placed(MustHexTile(0, 2), Hex{Q: 1, R: 0}, 3),
			placed(MustHexTile(1, 5), Hex{Q: -1, R: 0}, 1),
		)
	}
	first := Frontier(build())
	for i := 0; i < 20; i++ {
		b := build()
		if got := Frontier(b); !reflect.DeepEqual(got, first) {
			t.Fatalf("frontier order changed: %v vs %v", got, first)
		}
		for _, h := range first {
			a := LegalRotations(b, h, MustHexTile(0, 3))
			c := LegalRotations(b, h, MustHexTile(0, 3))
			if !reflect.DeepEqual(a, c) {
				t.Fatalf("legal rotations differ at %v", h)
			}
		}
	}
}
