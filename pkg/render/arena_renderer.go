// pkg/render/arena_renderer.go
package render

import (
	"go-arena-shooter/internal/app"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/utils"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// ArenaRenderer рисует снимок симуляции: игрока, прицел, врагов и снаряды.
type ArenaRenderer struct {
	fontFace font.Face
	colors   EntityColors
}

func NewArenaRenderer(fontFace font.Face, colors EntityColors) *ArenaRenderer {
	return &ArenaRenderer{fontFace: fontFace, colors: colors}
}

func (r *ArenaRenderer) Draw(screen *ebiten.Image, s app.Snapshot) {
	for _, b := range s.Bullets {
		drawBody(screen, b.Pos, b.Size, r.colors.Bullet)
	}

	for _, e := range s.Enemies {
		c := e.Color
		if e.Flashing {
			c = r.colors.HitFlash
		}
		if s.Paused {
			c = DarkenColor(c)
		}
		drawBody(screen, e.Pos, e.Size, c)
		r.drawHealthBar(screen, e.Pos, e.Size, 8, 3, e.HealthRatio)
		r.drawLabel(screen, e.Pos, e.Size, strconv.Itoa(e.Health))
	}

	for _, b := range s.EnemyBullets {
		drawBody(screen, b.Pos, b.Size, b.Color)
	}

	if s.GameOver {
		return
	}
	drawBody(screen, s.Player.Pos, s.Player.Size, r.colors.Player)
	ratio := float64(s.Player.Health) / float64(config.PlayerMaxHealth)
	r.drawHealthBar(screen, s.Player.Pos, s.Player.Size, config.HealthBarGap, config.HealthBarSize, ratio)
	r.drawLabel(screen, s.Player.Pos, s.Player.Size, strconv.Itoa(s.Player.Health))
	drawBody(screen, s.Aim.Pos, s.Aim.Size, r.colors.Aim)
}

func drawBody(screen *ebiten.Image, pos utils.Vec2, size int, c color.Color) {
	vector.DrawFilledRect(screen, float32(int(pos.X)), float32(int(pos.Y)), float32(size), float32(size), c, false)
}

// drawHealthBar рисует полосу здоровья на offset пикселей выше сущности.
func (r *ArenaRenderer) drawHealthBar(screen *ebiten.Image, pos utils.Vec2, width int, offset, height float32, ratio float64) {
	x := float32(int(pos.X))
	y := float32(int(pos.Y)) - offset
	vector.DrawFilledRect(screen, x, y, float32(width), height, r.colors.BarBack, false)
	fill := float32(float64(width) * utils.Clamp(ratio, 0, 1))
	if fill > 0 {
		vector.DrawFilledRect(screen, x, y, fill, height, r.colors.BarFill, false)
	}
}

// drawLabel центрирует текст внутри сущности.
func (r *ArenaRenderer) drawLabel(screen *ebiten.Image, pos utils.Vec2, size int, label string) {
	bounds := text.BoundString(r.fontFace, label)
	cx := int(pos.X) + size/2
	cy := int(pos.Y) + size/2
	x := cx - bounds.Dx()/2 - bounds.Min.X
	y := cy - bounds.Dy()/2 - bounds.Min.Y
	text.Draw(screen, label, r.fontFace, x, y, r.colors.LabelText)
}
