// internal/system/enemy_ai.go
package system

import "go-arena-shooter/internal/entity"

// EnemyAISystem обновляет поведение всех живых врагов.
type EnemyAISystem struct {
	world *entity.World
}

func NewEnemyAISystem(world *entity.World) *EnemyAISystem {
	return &EnemyAISystem{world: world}
}

// Update выполняет один тик ИИ. Снаряды врагов попадают в world.EnemyBullets.
func (s *EnemyAISystem) Update(dtMs float64) {
	target := s.world.Player.Pos
	for _, e := range s.world.Enemies {
		e.Update(target, dtMs, s.world)
	}
}
