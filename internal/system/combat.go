// internal/system/combat.go
package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/internal/utils"
)

// CombatSystem разрешает столкновения: пули с врагами, игрока с врагами
// и снаряды врагов с игроком.
type CombatSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{world: world, eventDispatcher: eventDispatcher}
}

func (s *CombatSystem) Update() {
	s.resolveBulletHits()
	s.resolveContacts()
	s.resolveEnemyBullets()

	if s.world.Player.Dead() && !s.world.GameOver {
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDied})
	}
}

// resolveBulletHits: каждая пуля поражает не больше одного врага, первого по порядку.
// Погибшие враги удаляются после обхода.
func (s *CombatSystem) resolveBulletHits() {
	killed := make(map[types.EntityID]bool)
	bullets := make([]*component.Bullet, 0, len(s.world.Bullets))

	for _, b := range s.world.Bullets {
		hit := false
		bulletRect := b.Rect()
		for _, e := range s.world.Enemies {
			if killed[e.ID] || !utils.Overlaps(bulletRect, e.Rect()) {
				continue
			}
			if e.TakeDamage(b.Damage) {
				killed[e.ID] = true
				s.eventDispatcher.Dispatch(event.Event{
					Type: event.EnemyKilled,
					Data: event.EnemyData{ID: e.ID, Kind: e.Kind, Value: e.Value},
				})
			}
			hit = true
			break
		}
		if !hit {
			bullets = append(bullets, b)
		}
	}
	s.world.Bullets = bullets

	if len(killed) == 0 {
		return
	}
	enemies := make([]*component.Enemy, 0, len(s.world.Enemies))
	for _, e := range s.world.Enemies {
		if !killed[e.ID] {
			enemies = append(enemies, e)
		}
	}
	s.world.Enemies = enemies
}

// resolveContacts: каждый касающийся игрока враг снимает ContactDamage за тик.
func (s *CombatSystem) resolveContacts() {
	player := s.world.Player
	playerRect := player.Rect()
	for _, e := range s.world.Enemies {
		if !utils.Overlaps(playerRect, e.Rect()) {
			continue
		}
		if player.Damage(config.ContactDamage) {
			return
		}
	}
}

func (s *CombatSystem) resolveEnemyBullets() {
	player := s.world.Player
	playerRect := player.Rect()
	remaining := make([]*component.EnemyBullet, 0, len(s.world.EnemyBullets))
	for _, b := range s.world.EnemyBullets {
		if utils.Overlaps(b.Rect(), playerRect) {
			player.Damage(b.Damage)
			continue
		}
		remaining = append(remaining, b)
	}
	s.world.EnemyBullets = remaining
}
