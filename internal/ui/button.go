// internal/ui/button.go
package ui

import (
	"image"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-hex-tiles/internal/config"
	"go-hex-tiles/pkg/anim"
)

const pressPulse = 150 * time.Millisecond

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect    image.Rectangle
	Text    string
	Enabled bool

	face          font.Face
	LastClickTime time.Time
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, face font.Face) *Button {
	return &Button{
		Rect:    rect,
		Text:    label,
		Enabled: true,
		face:    face,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Press регистрирует клик. Clicks inside the cooldown or on a disabled
// button are ignored.
func (b *Button) Press(now time.Time) bool {
	if !b.Enabled {
		return false
	}
	if now.Sub(b.LastClickTime) < config.ClickCooldown*time.Millisecond {
		return false
	}
	b.LastClickTime = now
	return true
}

// scale shrinks the button briefly after a click.
func (b *Button) scale(now time.Time) float64 {
	p := anim.Progress(b.LastClickTime, b.LastClickTime.Add(pressPulse), now)
	return 1 - 0.08*math.Sin(p*math.Pi)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, now time.Time, hovered bool) {
	bg := config.ButtonColor
	switch {
	case !b.Enabled:
		bg = config.ButtonIdleColor
	case hovered:
		bg = config.ButtonHoverColor
	}

	s := b.scale(now)
	w, h := float64(b.Rect.Dx())*s, float64(b.Rect.Dy())*s
	x := float64(b.Rect.Min.X) + (float64(b.Rect.Dx())-w)/2
	y := float64(b.Rect.Min.Y) + (float64(b.Rect.Dy())-h)/2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bg, true)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, config.PanelBorderColor, true)

	bounds := text.BoundString(b.face, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, b.face, tx, ty, config.TextLightColor)
}
