// pkg/hexmap/tile.go
package hexmap

import (
	"errors"
	"fmt"
	"strings"
)

// EdgeCount is the number of edges of every tile.
const EdgeCount = 6

// ErrInvalidEdge is matched by *InvalidEdgeError.
var ErrInvalidEdge = errors.New("edge index out of range")

// InvalidEdgeError rejects an edge index outside 0..5.
type InvalidEdgeError struct {
	Edge int
}

func (e *InvalidEdgeError) Error() string {
	return fmt.Sprintf("invalid edge %d: must be in 0..%d", e.Edge, EdgeCount-1)
}

func (e *InvalidEdgeError) Is(target error) bool {
	return target == ErrInvalidEdge
}

// HexTile records which of the six edges of a tile are connectable.
// The zero value has no connectable edges and is used for frontier markers.
type HexTile struct {
	mask uint8
}

// NewHexTile builds a tile from edge indices. Duplicates are ignored.
func NewHexTile(edges ...int) (HexTile, error) {
	var t HexTile
	for _, e := range edges {
		if e < 0 || e >= EdgeCount {
			return HexTile{}, &InvalidEdgeError{Edge: e}
		}
		t.mask |= 1 << uint(e)
	}
	return t, nil
}

// MustHexTile is NewHexTile for literals; it panics on an invalid edge.
func MustHexTile(edges ...int) HexTile {
	t, err := NewHexTile(edges...)
	if err != nil {
		panic(err)
	}
	return t
}

// Placeholder returns the empty tile drawn on frontier cells.
func Placeholder() HexTile {
	return HexTile{}
}

// FullTile returns a tile connectable on all six edges.
func FullTile() HexTile {
	return HexTile{mask: 1<<EdgeCount - 1}
}

// HasConnectableEdge reports whether edge i (unrotated) is connectable.
func (t HexTile) HasConnectableEdge(i int) bool {
	if i < 0 || i >= EdgeCount {
		return false
	}
	return t.mask&(1<<uint(i)) != 0
}

// ConnectableEdges returns the connectable edge indices in ascending order.
func (t HexTile) ConnectableEdges() []int {
	edges := make([]int, 0, EdgeCount)
	for i := 0; i < EdgeCount; i++ {
		if t.HasConnectableEdge(i) {
			edges = append(edges, i)
		}
	}
	return edges
}

// EdgeCount returns the number of connectable edges.
func (t HexTile) EdgeCount() int {
	n := 0
	for m := t.mask; m != 0; m &= m - 1 {
		n++
	}
	return n
}

func (t HexTile) IsPlaceholder() bool {
	return t.mask == 0
}

// Rotated returns the tile as seen in world slots when turned by rotation.
func (t HexTile) Rotated(rotation int) HexTile {
	var r HexTile
	for _, e := range t.ConnectableEdges() {
		r.mask |= 1 << uint(WorldEdge(e, rotation))
	}
	return r
}

func (t HexTile) String() string {
	edges := t.ConnectableEdges()
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = fmt.Sprint(e)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Position is where and how a tile sits: a cell plus a rotation in 60° steps.
type Position struct {
	Coord    Hex
	Rotation int
}

// ValidRotation reports whether r is one of 0..5.
func ValidRotation(r int) bool {
	return r >= 0 && r < EdgeCount
}

// WorldEdge is the world slot occupied by edge e of a tile turned by rotation.
func WorldEdge(e, rotation int) int {
	return Mod6(e + rotation)
}

// LocalEdge is the tile edge that lands on world slot world under rotation.
func LocalEdge(world, rotation int) int {
	return Mod6(world - rotation)
}
