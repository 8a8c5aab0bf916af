// internal/entity/world.go
package entity

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/internal/utils"
)

// World - всё изменяемое состояние симуляции. Им владеет только игровой цикл.
type World struct {
	NextID       types.EntityID
	Width        int
	Height       int
	Player       *component.Player
	Aim          *component.Aim
	Bullets      []*component.Bullet
	EnemyBullets []*component.EnemyBullet
	Enemies      []*component.Enemy
	Wave         *component.Wave
	Paused       bool
	GameOver     bool
}

// NewWorld создаёт мир с игроком в центре арены размером width x height.
func NewWorld(width, height int) *World {
	w := &World{
		NextID: 1,
		Width:  width,
		Height: height,
	}
	w.Reset()
	w.Paused = config.StartPaused
	return w
}

// NewEntity выдаёт новый идентификатор. Идентификаторы не переиспользуются даже после Reset.
func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Reset пересоздаёт игрока, очищает коллекции сущностей и возвращает волны в начальное состояние.
func (w *World) Reset() {
	w.Player = component.NewPlayer(w.Width/2, w.Height/2)
	w.Aim = component.NewAim()
	w.Aim.Recompute(w.Player, w.Player.Center())
	w.Bullets = nil
	w.EnemyBullets = nil
	w.Enemies = nil
	w.Wave = component.NewWave()
	w.Paused = false
	w.GameOver = false
}

// SetBounds обновляет размер арены. Отрицательные размеры приводятся к нулю.
func (w *World) SetBounds(width, height int) {
	w.Width = max(width, 0)
	w.Height = max(height, 0)
}

// SpawnBullet выпускает пулю игрока из центра прицела в сторону target.
func (w *World) SpawnBullet(target utils.Vec2) *component.Bullet {
	b := component.NewBullet(w.NewEntity(), w.Aim.Center(), target)
	w.Bullets = append(w.Bullets, b)
	return b
}

// EmitEnemyBullet реализует component.BulletSink.
func (w *World) EmitEnemyBullet(source, target utils.Vec2, speed float64, damage int) {
	w.EnemyBullets = append(w.EnemyBullets, component.NewEnemyBullet(w.NewEntity(), source, target, speed, damage))
}

// AddEnemy добавляет врага в коллекцию живых сущностей.
func (w *World) AddEnemy(e *component.Enemy) {
	w.Enemies = append(w.Enemies, e)
}

// Running сообщает, идёт ли симуляция (не пауза и не конец игры).
func (w *World) Running() bool {
	return !w.Paused && !w.GameOver
}
