// internal/ui/score_indicator.go
package ui

import (
	"go-arena-shooter/internal/config"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ScoreIndicator отображает счёт игрока.
type ScoreIndicator struct {
	X, Y     int
	fontFace font.Face
}

func NewScoreIndicator(x, y int, fontFace font.Face) *ScoreIndicator {
	return &ScoreIndicator{X: x, Y: y, fontFace: fontFace}
}

func (i *ScoreIndicator) Draw(screen *ebiten.Image, score int) {
	text.Draw(screen, "Score: "+strconv.Itoa(score), i.fontFace, i.X, i.Y, config.TextLightColor)
}
