// internal/event/types.go
package event

import "go-hex-tiles/pkg/hexmap"

const (
	TileDrawn         EventType = "TileDrawn"         // Новый кандидат вытянут
	CandidateMoved    EventType = "CandidateMoved"    // Кандидат перенесён на клетку фронтира
	CandidateRotated  EventType = "CandidateRotated"  // Кандидат повёрнут
	TilePlaced        EventType = "TilePlaced"        // Тайл закреплён на поле
	FrontierChanged   EventType = "FrontierChanged"   // Фронтир пересчитан
	AnimationFinished EventType = "AnimationFinished" // Анимация тайла дошла до конца
	BoardClosed       EventType = "BoardClosed"       // Фронтир пуст, ходов больше нет
)

// TileData is the payload of tile events.
type TileData struct {
	ID       uint64
	Tile     hexmap.HexTile
	Position hexmap.Position
	Depth    int // шагов по связанным рёбрам до стартового тайла, -1 если не связан
}

// FrontierData is the payload of FrontierChanged.
type FrontierData struct {
	Cells []hexmap.Hex
}
