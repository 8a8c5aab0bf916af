// internal/system/player_system.go
package system

import (
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
)

// PlayerSystem начисляет очки за убийства и лечит игрока после каждой волны.
type PlayerSystem struct {
	world *entity.World
}

func NewPlayerSystem(world *entity.World, eventDispatcher *event.Dispatcher) *PlayerSystem {
	s := &PlayerSystem{world: world}
	eventDispatcher.Subscribe(s, event.EnemyKilled, event.WaveEnded)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if data, ok := e.Data.(event.EnemyData); ok {
			s.world.Player.AddScore(data.Value * config.ScorePerValue)
		}
	case event.WaveEnded:
		s.world.Player.Heal(config.WaveHeal)
	}
}
