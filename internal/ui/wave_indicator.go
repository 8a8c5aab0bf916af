// internal/ui/wave_indicator.go
package ui

import (
	"go-arena-shooter/internal/config"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y     int
	Color    color.Color
	fontFace font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int, fontFace font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:        x,
		Y:        y,
		Color:    config.TextLightColor,
		fontFace: fontFace,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор. Волны босса выделяются красным.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		return
	}

	textColor := i.Color
	if waveNumber%config.BossWaveEvery == 0 {
		textColor = config.BossWaveColor
	}
	text.Draw(screen, "Wave: "+toRoman(waveNumber), i.fontFace, i.X, i.Y, textColor)
}
