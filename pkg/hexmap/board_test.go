package hexmap

import (
	"errors"
	"reflect"
	"testing"
)

func TestPlaceRejectsOccupied(t *testing.T) {
	b := NewBoard()
	if _, err := b.Place(Origin, FullTile(), 0, "first"); err != nil {
		t.Fatalf("unexpected place error: %v", err)
	}
	before := b.Tiles()

	_, err := b.Place(Origin, MustHexTile(0), 3, "second")
	if err == nil {
		t.Fatalf("expected occupied error, got nil")
	}
	if !errors.Is(err, ErrOccupied) {
		t.Fatalf("expected ErrOccupied, got %v", err)
	}
	var oe *OccupiedError
	if !errors.As(err, &oe) || oe.Coord != Origin {
		t.Fatalf("expected *OccupiedError at origin, got %v", err)
	}
	if !reflect.DeepEqual(b.Tiles(), before) {
		t.Fatalf("board changed after failed place")
	}
	got, _ := b.Get(Origin)
	if got.Handle != "first" || got.Tile != FullTile() || got.Position.Rotation != 0 {
		t.Fatalf("original tile overwritten: %+v", got)
	}
}

func TestPlaceRejectsBadRotation(t *testing.T) {
	b := NewBoard()
	for _, rot := range []int{-1, 6} {
		_, err := b.Place(Origin, FullTile(), rot, nil)
		if !errors.Is(err, ErrInvalidRotation) {
			t.Fatalf("rotation %d: expected ErrInvalidRotation, got %v", rot, err)
		}
	}
	if b.Len() != 0 {
		t.Fatalf("expected empty board, got %d tiles", b.Len())
	}
}

func TestBoardQueries(t *testing.T) {
	b := NewBoard()
	coords := []Hex{{0, 0}, {1, 0}, {0, -1}}
	for i, c := range coords {
		if _, err := b.Place(c, MustHexTile(0), i, i); err != nil {
			t.Fatalf("place %v: %v", c, err)
		}
	}
	if b.Len() != 3 {
		t.Fatalf("expected 3 tiles, got %d", b.Len())
	}
	if !reflect.DeepEqual(b.Occupied(), coords) {
		t.Fatalf("expected placement order %v, got %v", coords, b.Occupied())
	}
	set := b.OccupiedSet()
	for _, c := range coords {
		if _, ok := set[c]; !ok || !b.IsOccupied(c) {
			t.Fatalf("%v missing from occupied set", c)
		}
	}
	if b.IsOccupied(Hex{5, 5}) {
		t.Fatalf("unexpected occupied cell")
	}
	p, ok := b.Get(Hex{0, -1})
	if !ok || p.Position.Rotation != 2 || p.Handle != 2 {
		t.Fatalf("unexpected tile %+v", p)
	}
	if _, ok := b.Get(Hex{9, 9}); ok {
		t.Fatalf("expected miss")
	}
}

func TestTilesReturnsCopy(t *testing.T) {
	b := NewBoard()
	b.Place(Origin, FullTile(), 0, nil)
	tiles := b.Tiles()
	tiles[0].Position.Rotation = 4
	if p, _ := b.Get(Origin); p.Position.Rotation != 0 {
		t.Fatalf("board mutated through Tiles() copy")
	}
}
