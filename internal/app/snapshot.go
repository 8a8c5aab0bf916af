// internal/app/snapshot.go
package app

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/internal/utils"
	"image/color"
)

// BodyView - прямоугольная сущность для отрисовки.
type BodyView struct {
	ID    types.EntityID
	Pos   utils.Vec2
	Size  int
	Color color.RGBA
}

type PlayerView struct {
	Pos    utils.Vec2
	Size   int
	Health int
	Score  int
}

type EnemyView struct {
	BodyView
	Kind        defs.EnemyKind
	Health      int
	HealthRatio float64
	Flashing    bool
}

// Snapshot - состояние мира после тика, только для чтения.
type Snapshot struct {
	RunID        string
	Width        int
	Height       int
	Player       PlayerView
	Aim          BodyView
	Bullets      []BodyView
	Enemies      []EnemyView
	EnemyBullets []BodyView
	Wave         int
	Phase        component.WavePhase
	Paused       bool
	GameOver     bool
}
