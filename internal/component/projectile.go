// internal/component/projectile.go
package component

import (
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/internal/utils"
	"image"
	"image/color"
)

// Bullet - пуля игрока. Скорость задаётся один раз при выстреле.
type Bullet struct {
	ID       types.EntityID
	Pos      utils.Vec2
	Velocity utils.Vec2
	Damage   int
	Size     int
}

// NewBullet создаёт пулю, летящую из start в сторону target.
// Если start совпадает с target, пуля остаётся на месте.
func NewBullet(id types.EntityID, start, target utils.Vec2) *Bullet {
	dir, _ := utils.DirectionTo(start, target)
	return &Bullet{
		ID:       id,
		Pos:      start,
		Velocity: dir.Scale(config.BulletSpeed),
		Damage:   config.BulletDamage,
		Size:     config.BulletSize,
	}
}

func (b *Bullet) Update() {
	b.Pos = b.Pos.Add(b.Velocity)
}

func (b *Bullet) Rect() image.Rectangle {
	return utils.Box(b.Pos, b.Size, b.Size)
}

// EnemyBullet - снаряд врага. Летит к точке, где игрок был в момент выстрела.
type EnemyBullet struct {
	ID       types.EntityID
	Pos      utils.Vec2 // целочисленная позиция
	Velocity utils.Vec2
	Damage   int
	Size     int
	Color    color.RGBA
}

// NewEnemyBullet создаёт снаряд из source в сторону target.
func NewEnemyBullet(id types.EntityID, source, target utils.Vec2, speed float64, damage int) *EnemyBullet {
	dir, _ := utils.DirectionTo(source, target)
	return &EnemyBullet{
		ID:       id,
		Pos:      source.Trunc(),
		Velocity: dir.Scale(speed),
		Damage:   damage,
		Size:     config.EnemyBulletSize,
		Color:    config.EnemyBulletColor,
	}
}

// Update сдвигает снаряд на целую часть скорости; дробная часть теряется каждый тик.
func (b *EnemyBullet) Update() {
	b.Pos = b.Pos.Add(b.Velocity.Trunc())
}

func (b *EnemyBullet) Rect() image.Rectangle {
	return utils.Box(b.Pos, b.Size, b.Size)
}

// OutOfBounds сообщает, вышла ли точка за пределы арены больше чем на margin.
func OutOfBounds(pos utils.Vec2, width, height int, margin float64) bool {
	x, y := float64(int(pos.X)), float64(int(pos.Y))
	return x < -margin || x > float64(width)+margin ||
		y < -margin || y > float64(height)+margin
}
