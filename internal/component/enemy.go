// internal/component/enemy.go
package component

import (
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/internal/utils"
	"image"
	"image/color"
)

// BulletSink принимает снаряды, выпущенные врагами во время обновления.
type BulletSink interface {
	EmitEnemyBullet(source, target utils.Vec2, speed float64, damage int)
}

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID        types.EntityID
	Kind      defs.EnemyKind
	Pos       utils.Vec2 // левый верхний угол
	Size      int
	Speed     float64
	Health    int
	MaxHealth int
	Value     int // множитель очков за убийство
	Color     color.RGBA
	HitTimer  int // тики белой вспышки после попадания
	Behavior  Behavior
}

// NewEnemy создаёт врага по определению из enemies.yaml.
func NewEnemy(id types.EntityID, def defs.EnemyDefinition, pos utils.Vec2) *Enemy {
	return &Enemy{
		ID:        id,
		Kind:      def.Kind,
		Pos:       pos,
		Size:      def.Size,
		Speed:     def.Speed,
		Health:    def.Health,
		MaxHealth: def.Health,
		Value:     def.Value,
		Color:     def.Visuals.Color,
		Behavior:  behaviorFor(def),
	}
}

func behaviorFor(def defs.EnemyDefinition) Behavior {
	r := def.Ranged
	switch {
	case r == nil:
		return Chaser{}
	case def.Kind == defs.KindBoss:
		return &Boss{Gun: newGun(r)}
	default:
		return &Shooter{Gun: newGun(r), MinDistance: r.MinDistance}
	}
}

func (e *Enemy) Rect() image.Rectangle {
	return utils.Box(e.Pos, e.Size, e.Size)
}

// Center возвращает целочисленный центр врага.
func (e *Enemy) Center() utils.Vec2 {
	half := float64(e.Size / 2)
	return utils.Vec2{X: float64(int(e.Pos.X)) + half, Y: float64(int(e.Pos.Y)) + half}
}

// Update выполняет один тик поведения врага. target - позиция игрока.
func (e *Enemy) Update(target utils.Vec2, dtMs float64, sink BulletSink) {
	if e.Behavior != nil {
		e.Behavior.update(e, target, dtMs, sink)
	}
	if e.HitTimer > 0 {
		e.HitTimer--
	}
}

// TakeDamage наносит урон и включает вспышку. Возвращает true, если враг погиб.
// Удалять погибшего врага должен вызывающий.
func (e *Enemy) TakeDamage(amount int) bool {
	e.Health -= amount
	e.HitTimer = config.HitFlashTicks
	dead := e.Health <= 0
	if e.Health < 0 {
		e.Health = 0
	}
	if e.Health > e.MaxHealth {
		e.Health = e.MaxHealth
	}
	return dead
}

func (e *Enemy) Dead() bool {
	return e.Health <= 0
}

func (e *Enemy) Flashing() bool {
	return e.HitTimer > 0
}

// HealthRatio возвращает долю оставшегося здоровья в диапазоне [0, 1].
func (e *Enemy) HealthRatio() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return float64(e.Health) / float64(e.MaxHealth)
}

// approach сдвигает врага к target не дальше чем на step.
func (e *Enemy) approach(target utils.Vec2, step float64) {
	dir, dist := utils.DirectionTo(e.Pos, target)
	if dist == 0 {
		return
	}
	e.Pos = e.Pos.Add(dir.Scale(step))
}
