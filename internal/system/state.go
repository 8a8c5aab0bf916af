// internal/system/state.go
package system

import (
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
)

// StateSystem управляет флагами паузы и конца игры.
type StateSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(world *entity.World, eventDispatcher *event.Dispatcher) *StateSystem {
	s := &StateSystem{world: world, eventDispatcher: eventDispatcher}
	eventDispatcher.Subscribe(s, event.PlayerDied)
	return s
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type == event.PlayerDied {
		s.world.GameOver = true
	}
}

// TogglePause переключает паузу. После конца игры ничего не делает.
func (s *StateSystem) TogglePause() bool {
	if s.world.GameOver {
		return false
	}
	s.world.Paused = !s.world.Paused
	s.eventDispatcher.Dispatch(event.Event{Type: event.PauseToggled, Data: s.world.Paused})
	return true
}

// Reset начинает игру заново. Допустим только после конца игры.
func (s *StateSystem) Reset() bool {
	if !s.world.GameOver {
		return false
	}
	s.world.Reset()
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameReset})
	return true
}
