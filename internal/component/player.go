// internal/component/player.go
package component

import (
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/utils"
	"image"
	"math"
)

// Direction - состояние четырёх клавиш движения за один тик.
type Direction struct {
	Up, Down, Left, Right bool
}

// Player хранит позицию, здоровье и счёт игрока.
type Player struct {
	Pos    utils.Vec2 // левый верхний угол, всегда целочисленный
	Size   int
	Speed  float64
	Health int
	Score  int
}

// NewPlayer создаёт игрока с полным здоровьем в точке (x, y).
func NewPlayer(x, y int) *Player {
	return &Player{
		Pos:    utils.Vec2{X: float64(x), Y: float64(y)},
		Size:   config.PlayerSize,
		Speed:  config.PlayerSpeed,
		Health: config.PlayerMaxHealth,
	}
}

func (p *Player) Rect() image.Rectangle {
	return utils.Box(p.Pos, p.Size, p.Size)
}

// Center возвращает центр игрока (без округления).
func (p *Player) Center() utils.Vec2 {
	half := float64(p.Size) / 2
	return utils.Vec2{X: p.Pos.X + half, Y: p.Pos.Y + half}
}

// Move сдвигает игрока по нажатым направлениям и удерживает его внутри арены.
// Диагональ не нормализуется: по каждой оси игрок смещается на полную скорость.
func (p *Player) Move(dir Direction, width, height int) {
	x, y := p.Pos.X, p.Pos.Y
	if dir.Left {
		x -= p.Speed
	}
	if dir.Right {
		x += p.Speed
	}
	if dir.Up {
		y -= p.Speed
	}
	if dir.Down {
		y += p.Speed
	}

	x = utils.Clamp(x, 0, float64(width-p.Size))
	y = utils.Clamp(y, 0, float64(height-p.Size))
	p.Pos = utils.Vec2{X: math.Trunc(x), Y: math.Trunc(y)}
}

// Damage уменьшает здоровье (не ниже нуля) и сообщает, погиб ли игрок.
func (p *Player) Damage(amount int) bool {
	if amount > 0 {
		p.Health -= amount
	}
	if p.Health < 0 {
		p.Health = 0
	}
	return p.Health <= 0
}

// Heal восстанавливает здоровье, не превышая максимум.
func (p *Player) Heal(amount int) {
	if amount <= 0 {
		return
	}
	p.Health += min(amount, config.PlayerMaxHealth-p.Health)
}

// AddScore начисляет очки. Счёт никогда не уменьшается.
func (p *Player) AddScore(points int) {
	if points > 0 {
		p.Score += points
	}
}

func (p *Player) Dead() bool {
	return p.Health <= 0
}
