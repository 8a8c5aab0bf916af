// internal/component/behavior.go
package component

import (
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/utils"
)

// Behavior - закрытый набор вариантов поведения врага:
// Chaser (BASIC, FAST, TANK), Shooter и Boss.
type Behavior interface {
	update(e *Enemy, target utils.Vec2, dtMs float64, sink BulletSink)
}

// Chaser идёт прямо на игрока с постоянной скоростью.
type Chaser struct{}

func (Chaser) update(e *Enemy, target utils.Vec2, _ float64, _ BulletSink) {
	e.approach(target, e.Speed)
}

// Gun - перезарядка и параметры выстрела врага дальнего боя. Время в миллисекундах.
type Gun struct {
	Cooldown     float64
	Interval     float64
	BulletSpeed  float64
	BulletDamage int
}

func newGun(r *defs.RangedDefinition) Gun {
	return Gun{
		Interval:     r.IntervalMs,
		BulletSpeed:  r.BulletSpeed,
		BulletDamage: r.BulletDamage,
	}
}

// tick уменьшает перезарядку и стреляет в target, когда она закончилась.
func (g *Gun) tick(e *Enemy, target utils.Vec2, dtMs float64, sink BulletSink) {
	g.Cooldown -= dtMs
	if g.Cooldown > 0 {
		return
	}
	if sink != nil {
		sink.EmitEnemyBullet(e.Center(), target, g.BulletSpeed, g.BulletDamage)
	}
	g.Cooldown = g.Interval
}

// Shooter стреляет и держит дистанцию MinDistance от игрока.
type Shooter struct {
	Gun
	MinDistance float64
}

func (s *Shooter) update(e *Enemy, target utils.Vec2, dtMs float64, sink BulletSink) {
	s.Gun.tick(e, target, dtMs, sink)

	dir, dist := utils.DirectionTo(e.Pos, target)
	if dist == 0 {
		return
	}
	if dist < s.MinDistance {
		e.Pos = e.Pos.Sub(dir.Scale(e.Speed))
		return
	}
	// Не проходим внутрь кольца MinDistance.
	e.Pos = e.Pos.Add(dir.Scale(min(e.Speed, dist-s.MinDistance)))
}

// Boss стреляет чаще и быстрее Shooter, но идёт прямо на игрока.
type Boss struct {
	Gun
}

func (b *Boss) update(e *Enemy, target utils.Vec2, dtMs float64, sink BulletSink) {
	b.Gun.tick(e, target, dtMs, sink)
	e.approach(target, e.Speed)
}
