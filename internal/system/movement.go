// internal/system/movement.go
package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/utils"
)

// MovementSystem двигает игрока и пересчитывает прицел.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// MovePlayer сдвигает игрока на один тик. Скорость не масштабируется по dt.
func (s *MovementSystem) MovePlayer(dir component.Direction) {
	s.world.Player.Move(dir, s.world.Width, s.world.Height)
}

// UpdateAim вызывается каждый тик, в том числе на паузе.
func (s *MovementSystem) UpdateAim(pointer utils.Vec2) {
	s.world.Aim.Recompute(s.world.Player, pointer)
}
