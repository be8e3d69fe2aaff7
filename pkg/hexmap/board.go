// pkg/hexmap/board.go
package hexmap

import (
	"errors"
	"fmt"
)

var (
	ErrOccupied        = errors.New("coordinate already occupied")
	ErrInvalidRotation = errors.New("rotation out of range")
)

// OccupiedError is returned by Place when the cell already holds a tile.
type OccupiedError struct {
	Coord Hex
}

func (e *OccupiedError) Error() string {
	return fmt.Sprintf("place %s: %v", e.Coord, ErrOccupied)
}

func (e *OccupiedError) Is(target error) bool {
	return target == ErrOccupied
}

// InvalidRotationError is returned by Place for a rotation outside 0..5.
type InvalidRotationError struct {
	Rotation int
}

func (e *InvalidRotationError) Error() string {
	return fmt.Sprintf("invalid rotation %d: must be in 0..%d", e.Rotation, EdgeCount-1)
}

func (e *InvalidRotationError) Is(target error) bool {
	return target == ErrInvalidRotation
}

// PlacedTile is a tile committed to the board. Handle is owned by the caller
// (usually whatever the renderer uses to find the tile) and never inspected.
type PlacedTile struct {
	Tile     HexTile
	Position Position
	Handle   any
}

// BoardReader is the read side of a board, all the adjacency engine needs.
type BoardReader interface {
	Get(coord Hex) (PlacedTile, bool)
	Tiles() []PlacedTile
}

// Board is the record of committed placements. Tiles live in an arena in
// placement order; index maps a cell to its slot.
type Board struct {
	tiles []PlacedTile
	index map[Hex]int
}

func NewBoard() *Board {
	return &Board{
		index: make(map[Hex]int),
	}
}

// Place commits tile at coord. It never overwrites: an occupied cell yields
// *OccupiedError and the board is left as it was.
func (b *Board) Place(coord Hex, tile HexTile, rotation int, handle any) (PlacedTile, error) {
	if _, exists := b.index[coord]; exists {
		return PlacedTile{}, &OccupiedError{Coord: coord}
	}
	if !ValidRotation(rotation) {
		return PlacedTile{}, &InvalidRotationError{Rotation: rotation}
	}
	p := PlacedTile{
		Tile:     tile,
		Position: Position{Coord: coord, Rotation: rotation},
		Handle:   handle,
	}
	b.index[coord] = len(b.tiles)
	b.tiles = append(b.tiles, p)
	return p, nil
}

func (b *Board) Get(coord Hex) (PlacedTile, bool) {
	i, ok := b.index[coord]
	if !ok {
		return PlacedTile{}, false
	}
	return b.tiles[i], true
}

func (b *Board) IsOccupied(coord Hex) bool {
	_, ok := b.index[coord]
	return ok
}

// Occupied returns every occupied cell in placement order.
func (b *Board) Occupied() []Hex {
	coords := make([]Hex, len(b.tiles))
	for i, t := range b.tiles {
		coords[i] = t.Position.Coord
	}
	return coords
}

func (b *Board) OccupiedSet() map[Hex]struct{} {
	set := make(map[Hex]struct{}, len(b.tiles))
	for _, t := range b.tiles {
		set[t.Position.Coord] = struct{}{}
	}
	return set
}

// Tiles returns a copy of the placed tiles in placement order.
func (b *Board) Tiles() []PlacedTile {
	out := make([]PlacedTile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

func (b *Board) Len() int {
	return len(b.tiles)
}
