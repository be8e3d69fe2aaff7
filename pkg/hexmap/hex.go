// pkg/hexmap/hex.go
package hexmap

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Hex is a cell of the board in axial coordinates (Q, R), flat-top layout.
type Hex struct {
	Q, R int
}

// Origin is the cell the starting tile is placed on.
var Origin = Hex{}

// CardinalDirections holds the unit offset for every edge index.
// Edges are numbered clockwise with positive y pointing South; the order is
// what edge indices and rotations are measured against, never reorder it.
var CardinalDirections = [6]Hex{
	{Q: 1, R: 0},  // Southeast
	{Q: 0, R: 1},  // South
	{Q: -1, R: 1}, // Southwest
	{Q: -1, R: 0}, // Northwest
	{Q: 0, R: -1}, // North
	{Q: 1, R: -1}, // Northeast
}

// Direction returns the unit offset for edge index dir (taken mod 6).
func Direction(dir int) Hex {
	return CardinalDirections[Mod6(dir)]
}

// OppositeDirection returns the index of the edge facing dir, (dir+3) mod 6.
func OppositeDirection(dir int) int {
	return Mod6(dir + 3)
}

// Mod6 reduces x into 0..5, also for negative x.
func Mod6(x int) int {
	m := x % 6
	if m < 0 {
		m += 6
	}
	return m
}

// Add возвращает сумму двух гексов
func (h Hex) Add(other Hex) Hex {
	return Hex{
		Q: h.Q + other.Q,
		R: h.R + other.R,
	}
}

// Subtract возвращает разность двух гексов
func (h Hex) Subtract(other Hex) Hex {
	return Hex{
		Q: h.Q - other.Q,
		R: h.R - other.R,
	}
}

// Scale multiplies a hex vector by a scalar.
func (h Hex) Scale(factor int) Hex {
	return Hex{h.Q * factor, h.R * factor}
}

// Neighbor returns the cell across edge dir.
func (h Hex) Neighbor(dir int) Hex {
	return h.Add(Direction(dir))
}

// Neighbors returns the six adjacent cells; index i is the neighbour across edge i.
func (h Hex) Neighbors() [6]Hex {
	var result [6]Hex
	for i, dir := range CardinalDirections {
		result[i] = h.Add(dir)
	}
	return result
}

// DirectionTo reports which edge of h faces other when the two cells are adjacent.
func (h Hex) DirectionTo(other Hex) (int, bool) {
	d := other.Subtract(h)
	for i, dir := range CardinalDirections {
		if dir == d {
			return i, true
		}
	}
	return 0, false
}

// Distance вычисляет расстояние между гексами
func (h Hex) Distance(to Hex) int {
	dq := h.Q - to.Q
	dr := h.R - to.R
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}

// ToCartesian projects the cell centre onto the plane for a unit hex size.
func (h Hex) ToCartesian() (x, y float64) {
	x = 1.5 * float64(h.Q)
	y = Sqrt3 * (0.5*float64(h.Q) + float64(h.R))
	return
}

// ToPixel конвертирует гекс в пиксельные координаты (flat top ориентация)
func (h Hex) ToPixel(hexSize float64) (x, y float64) {
	x, y = h.ToCartesian()
	return x * hexSize, y * hexSize
}

// PixelToHex returns the cell containing the point (x, y), relative to the
// centre of the origin cell.
func PixelToHex(x, y, hexSize float64) Hex {
	q := (2.0 / 3.0 * x) / hexSize
	r := (-1.0/3.0*x + Sqrt3/3.0*y) / hexSize
	return axialRound(q, r)
}

// Key is the canonical map key "(q,r)". ParseKey reverses it.
func (h Hex) Key() string {
	return "(" + strconv.Itoa(h.Q) + "," + strconv.Itoa(h.R) + ")"
}

func (h Hex) String() string {
	return h.Key()
}

// ParseKey parses the "(q,r)" form produced by Key.
func ParseKey(s string) (Hex, error) {
	if len(s) < 5 || s[0] != '(' || s[len(s)-1] != ')' {
		return Hex{}, fmt.Errorf("parse hex key %q: want (q,r)", s)
	}
	qs, rs, ok := strings.Cut(s[1:len(s)-1], ",")
	if !ok {
		return Hex{}, fmt.Errorf("parse hex key %q: missing comma", s)
	}
	q, err := strconv.Atoi(qs)
	if err != nil {
		return Hex{}, fmt.Errorf("parse hex key %q: q: %w", s, err)
	}
	r, err := strconv.Atoi(rs)
	if err != nil {
		return Hex{}, fmt.Errorf("parse hex key %q: r: %w", s, err)
	}
	return Hex{Q: q, R: r}, nil
}

// cornerAngle returns the angle of corner i of a flat-top hex.
func cornerAngle(i int) float64 {
	return math.Pi / 3 * float64(i)
}

// EdgeAngle is the angle (radians, y down) from the cell centre to the
// midpoint of edge i, i.e. towards CardinalDirections[i].
func EdgeAngle(i int) float64 {
	return math.Pi/6 + math.Pi/3*float64(Mod6(i))
}

// Corners returns the six corner points of the hex centred at (cx, cy),
// turned by angle radians.
func Corners(cx, cy, radius, angle float64) [6][2]float64 {
	var pts [6][2]float64
	for i := range pts {
		a := cornerAngle(i) + angle
		pts[i] = [2]float64{cx + radius*math.Cos(a), cy + radius*math.Sin(a)}
	}
	return pts
}
