// internal/ui/overlay.go
package ui

import (
	"go-arena-shooter/internal/config"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	PauseMessage    = "Paused, press P to resume"
	GameOverMessage = "GAME OVER - Press R to Restart"
	MenuMessage     = "ARENA - press SPACE to start"
)

// Overlay затемняет экран и выводит сообщение по центру.
type Overlay struct {
	fontFace font.Face
}

func NewOverlay(fontFace font.Face) *Overlay {
	return &Overlay{fontFace: fontFace}
}

// Draw рисует message поверх screen цветом textColor.
func (o *Overlay) Draw(screen *ebiten.Image, message string, textColor color.Color) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.OverlayColor, false)

	bounds := text.BoundString(o.fontFace, message)
	x := (w - bounds.Dx()) / 2
	y := h / 2
	text.Draw(screen, message, o.fontFace, x, y, textColor)
}
