// pkg/hexmap/adjacency.go
package hexmap

import "fmt"

// MatchRule decides how many neighbours a candidate orientation has to agree with.
type MatchRule int

const (
	// MatchAny accepts a rotation when at least one candidate edge meets a
	// reciprocal connectable edge of a placed neighbour.
	MatchAny MatchRule = iota
	// MatchAll additionally requires every candidate edge that faces a placed
	// tile to be reciprocated.
	MatchAll
)

func (r MatchRule) String() string {
	switch r {
	case MatchAny:
		return "any"
	case MatchAll:
		return "all"
	}
	return fmt.Sprintf("MatchRule(%d)", int(r))
}

// ParseMatchRule maps "any" / "all" to a MatchRule.
func ParseMatchRule(s string) (MatchRule, error) {
	switch s {
	case "", "any":
		return MatchAny, nil
	case "all":
		return MatchAll, nil
	}
	return MatchAny, fmt.Errorf("unknown match rule %q", s)
}

// Matcher computes legal rotations under a rule.
type Matcher struct {
	Rule MatchRule
}

// LegalRotations returns, in ascending order, every rotation at which tile
// may be placed at coord. An empty result means coord is not placeable now.
func (m Matcher) LegalRotations(board BoardReader, coord Hex, tile HexTile) []int {
	result := make([]int, 0, EdgeCount)
	for rot := 0; rot < EdgeCount; rot++ {
		if m.legal(board, coord, tile, rot) {
			result = append(result, rot)
		}
	}
	return result
}

func (m Matcher) legal(board BoardReader, coord Hex, tile HexTile, rot int) bool {
	matched := false
	for _, e := range tile.ConnectableEdges() {
		world := WorldEdge(e, rot)
		neighbor, ok := board.Get(coord.Neighbor(world))
		if !ok {
			continue
		}
		if reciprocates(neighbor, world) {
			if m.Rule == MatchAny {
				return true
			}
			matched = true
		} else if m.Rule == MatchAll {
			return false
		}
	}
	return matched
}

// reciprocates reports whether neighbor, seen across world slot world from the
// candidate, has a connectable edge facing back.
func reciprocates(neighbor PlacedTile, world int) bool {
	back := LocalEdge(OppositeDirection(world), neighbor.Position.Rotation)
	return neighbor.Tile.HasConnectableEdge(back)
}

// LegalRotations applies the MatchAny rule.
func LegalRotations(board BoardReader, coord Hex, tile HexTile) []int {
	return Matcher{Rule: MatchAny}.LegalRotations(board, coord, tile)
}

// Frontier returns the empty cells that some placed tile's connectable edge
// points at. Order is first discovery: tiles in placement order, edges ascending.
// The neighbour's edges are not checked here; LegalRotations does that.
func Frontier(board BoardReader) []Hex {
	tiles := board.Tiles()
	seen := make(map[Hex]struct{}, len(tiles)*2)
	for _, p := range tiles {
		seen[p.Position.Coord] = struct{}{}
	}
	var frontier []Hex
	for _, p := range tiles {
		for _, e := range p.Tile.ConnectableEdges() {
			n := p.Position.Coord.Neighbor(WorldEdge(e, p.Position.Rotation))
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			frontier = append(frontier, n)
		}
	}
	return frontier
}

// FrontierSet is Frontier as a set.
func FrontierSet(board BoardReader) map[Hex]struct{} {
	f := Frontier(board)
	set := make(map[Hex]struct{}, len(f))
	for _, h := range f {
		set[h] = struct{}{}
	}
	return set
}
