// internal/system/projectile.go
package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
)

// ProjectileSystem двигает пули и удаляет улетевшие за пределы арены.
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

func (s *ProjectileSystem) Update() {
	for _, b := range s.world.Bullets {
		b.Update()
	}
	for _, b := range s.world.EnemyBullets {
		b.Update()
	}
}

// Prune удаляет снаряды, вышедшие за арену больше чем на BoundsMargin.
// Возвращает количество удалённых снарядов.
func (s *ProjectileSystem) Prune() int {
	w, h := s.world.Width, s.world.Height
	removed := 0

	bullets := make([]*component.Bullet, 0, len(s.world.Bullets))
	for _, b := range s.world.Bullets {
		if component.OutOfBounds(b.Pos, w, h, config.BoundsMargin) {
			removed++
			continue
		}
		bullets = append(bullets, b)
	}
	s.world.Bullets = bullets

	enemyBullets := make([]*component.EnemyBullet, 0, len(s.world.EnemyBullets))
	for _, b := range s.world.EnemyBullets {
		if component.OutOfBounds(b.Pos, w, h, config.BoundsMargin) {
			removed++
			continue
		}
		enemyBullets = append(enemyBullets, b)
	}
	s.world.EnemyBullets = enemyBullets

	return removed
}
