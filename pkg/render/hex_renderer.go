// pkg/render/hex_renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-hex-tiles/pkg/anim"
	"go-hex-tiles/pkg/hexmap"
)

const (
	bodyRadius   = 0.95 // доля hexSize
	markerRadius = 0.7
	markerDot    = 0.1
)

// HexRenderer draws animated tiles with ebiten. Board coordinates are
// projected around a screen origin that the caller can move.
type HexRenderer struct {
	hexSize          float64
	originX, originY float64
	fillImg          *ebiten.Image
	fillVs           []ebiten.Vertex
	fillIs           []uint16
}

func NewHexRenderer(hexSize, originX, originY float64) *HexRenderer {
	fillImg := ebiten.NewImage(3, 3)
	fillImg.Fill(color.White)
	return &HexRenderer{
		hexSize: hexSize,
		originX: originX,
		originY: originY,
		fillImg: fillImg,
		fillVs:  make([]ebiten.Vertex, 0, 18),
		fillIs:  make([]uint16, 0, 18),
	}
}

// ScreenToHex maps a screen point to the cell under it.
func (r *HexRenderer) ScreenToHex(x, y float64) hexmap.Hex {
	return hexmap.PixelToHex(x-r.originX, y-r.originY, r.hexSize)
}

// Transform gives the screen centre, rotation (radians) and scale of a pose.
func (r *HexRenderer) Transform(p anim.Pose) (cx, cy, angle, scale float64) {
	cx = r.originX + p.X*r.hexSize
	cy = r.originY + p.Y*r.hexSize
	angle = p.Degrees() * math.Pi / 180
	return cx, cy, angle, p.Scale
}

// DrawTile draws the hex body and a dot on every connectable edge. Edges are
// in tile-local order; the pose rotation turns them into place.
func (r *HexRenderer) DrawTile(screen *ebiten.Image, tile hexmap.HexTile, pose anim.Pose, style TileStyle) {
	cx, cy, angle, scale := r.Transform(pose)
	size := r.hexSize * scale

	path := hexPath(cx, cy, size*bodyRadius, angle)
	r.fill(screen, &path, style.Fill)
	r.stroke(screen, &path, style.Stroke, style.StrokeWidth)

	dot := float32(size * markerDot)
	for _, e := range tile.ConnectableEdges() {
		a := hexmap.EdgeAngle(e) + angle
		mx := cx + size*markerRadius*math.Cos(a)
		my := cy + size*markerRadius*math.Sin(a)
		vector.DrawFilledCircle(screen, float32(mx), float32(my), dot, style.Marker, true)
	}
}

// DrawPlaceholder draws an empty frontier cell.
func (r *HexRenderer) DrawPlaceholder(screen *ebiten.Image, h hexmap.Hex, style TileStyle) {
	x, y := h.ToCartesian()
	cx, cy := r.originX+x*r.hexSize, r.originY+y*r.hexSize
	path := hexPath(cx, cy, r.hexSize*bodyRadius, 0)
	r.fill(screen, &path, style.Fill)
	r.stroke(screen, &path, style.Stroke, style.StrokeWidth)
}

func hexPath(cx, cy, radius, angle float64) vector.Path {
	path := vector.Path{}
	for i, pt := range hexmap.Corners(cx, cy, radius, angle) {
		if i == 0 {
			path.MoveTo(float32(pt[0]), float32(pt[1]))
		} else {
			path.LineTo(float32(pt[0]), float32(pt[1]))
		}
	}
	path.Close()
	return path
}

func (r *HexRenderer) fill(target *ebiten.Image, path *vector.Path, c color.RGBA) {
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	r.paint(target, c)
}

func (r *HexRenderer) stroke(target *ebiten.Image, path *vector.Path, c color.RGBA, width float32) {
	if width <= 0 {
		return
	}
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForStroke(r.fillVs[:0], r.fillIs[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
	})
	r.paint(target, c)
}

func (r *HexRenderer) paint(target *ebiten.Image, c color.RGBA) {
	for i := range r.fillVs {
		r.fillVs[i].SrcX = 1
		r.fillVs[i].SrcY = 1
		r.fillVs[i].ColorR = float32(c.R) / 255
		r.fillVs[i].ColorG = float32(c.G) / 255
		r.fillVs[i].ColorB = float32(c.B) / 255
		r.fillVs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
