// pkg/render/color.go
package render

import (
	"go-arena-shooter/internal/config"
	"image/color"
)

// EntityColors - цвета сущностей, которые не задаются определениями врагов.
type EntityColors struct {
	Player    color.RGBA
	Aim       color.RGBA
	Bullet    color.RGBA
	HitFlash  color.RGBA
	BarBack   color.RGBA
	BarFill   color.RGBA
	LabelText color.RGBA
}

// DefaultEntityColors возвращает палитру из config.
func DefaultEntityColors() EntityColors {
	return EntityColors{
		Player:    config.PlayerColor,
		Aim:       config.AimColor,
		Bullet:    config.BulletColor,
		HitFlash:  config.HitFlashColor,
		BarBack:   config.HealthBarBack,
		BarFill:   config.HealthBarFill,
		LabelText: config.TextDarkColor,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
