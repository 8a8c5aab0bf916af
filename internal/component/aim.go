// internal/component/aim.go
package component

import (
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/utils"
	"math"
)

// Aim - прицел на окружности вокруг игрока, направленный на курсор.
// Положение полностью вычисляется из позиции игрока и курсора.
type Aim struct {
	Pos  utils.Vec2
	Size int
}

func NewAim() *Aim {
	return &Aim{Size: config.AimSize}
}

// Recompute ставит прицел на расстояние AimRadius от центра игрока в сторону курсора.
func (a *Aim) Recompute(player *Player, pointer utils.Vec2) {
	center := player.Center()
	angle := utils.AngleTo(center, pointer)
	half := float64(a.Size) / 2
	p := center.Add(utils.FromAngle(angle, config.AimRadius))
	a.Pos = utils.Vec2{X: math.Trunc(p.X - half), Y: math.Trunc(p.Y - half)}
}

// Center возвращает целочисленный центр прицела, из которого вылетают пули.
func (a *Aim) Center() utils.Vec2 {
	half := float64(a.Size / 2)
	return utils.Vec2{X: a.Pos.X + half, Y: a.Pos.Y + half}
}
