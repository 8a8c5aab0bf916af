package component

import (
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/utils"
	"math"
	"testing"
)

func TestBulletFliesTowardTarget(t *testing.T) {
	b := NewBullet(1, utils.Vec2{X: 0, Y: 0}, utils.Vec2{X: 30, Y: 40})
	if math.Abs(b.Velocity.X-6) > 1e-9 || math.Abs(b.Velocity.Y-8) > 1e-9 {
		t.Fatalf("Velocity = %v, want (6, 8)", b.Velocity)
	}
	if b.Damage != config.BulletDamage || b.Size != config.BulletSize {
		t.Errorf("bullet = %+v", b)
	}
	b.Update()
	if math.Abs(b.Pos.X-6) > 1e-9 || math.Abs(b.Pos.Y-8) > 1e-9 {
		t.Errorf("Pos = %v after one tick", b.Pos)
	}
}

func TestBulletAtTargetDoesNotMove(t *testing.T) {
	start := utils.Vec2{X: 50, Y: 50}
	b := NewBullet(1, start, start)
	if b.Velocity != (utils.Vec2{}) {
		t.Fatalf("Velocity = %v, want zero", b.Velocity)
	}
	b.Update()
	if b.Pos != start {
		t.Errorf("Pos = %v, want %v", b.Pos, start)
	}
}

func TestEnemyBulletMovesByWholePixels(t *testing.T) {
	b := NewEnemyBullet(1, utils.Vec2{X: 0.9, Y: 0.9}, utils.Vec2{X: 10, Y: 10}, 5, 10)
	if b.Pos != (utils.Vec2{}) {
		t.Fatalf("start Pos = %v, want truncated origin", b.Pos)
	}
	// 5/sqrt(2) ≈ 3.54 → 3 пикселя за тик по каждой оси.
	b.Update()
	b.Update()
	if b.Pos != (utils.Vec2{X: 6, Y: 6}) {
		t.Errorf("Pos = %v, want (6, 6)", b.Pos)
	}
	if b.Damage != 10 || b.Size != config.EnemyBulletSize {
		t.Errorf("bullet = %+v", b)
	}
}

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		pos  utils.Vec2
		want bool
	}{
		{utils.Vec2{X: 50, Y: 50}, false},
		{utils.Vec2{X: -50, Y: 0}, false},
		{utils.Vec2{X: -51, Y: 0}, true},
		{utils.Vec2{X: 150, Y: 10}, false},
		{utils.Vec2{X: 151, Y: 10}, true},
		{utils.Vec2{X: 10, Y: 251}, true},
		{utils.Vec2{X: 10, Y: -50.5}, false},
	}
	for _, tt := range tests {
		if got := OutOfBounds(tt.pos, 100, 200, 50); got != tt.want {
			t.Errorf("OutOfBounds(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}
