package entity

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/utils"
	"testing"
)

func TestNewWorld(t *testing.T) {
	w := NewWorld(800, 600)
	if w.Player.Pos != (utils.Vec2{X: 400, Y: 300}) {
		t.Errorf("player Pos = %v, want arena center", w.Player.Pos)
	}
	if w.Paused != config.StartPaused || w.GameOver {
		t.Errorf("Paused = %v, GameOver = %v", w.Paused, w.GameOver)
	}
	if w.Wave.Number != 0 || len(w.Enemies) != 0 || len(w.Bullets) != 0 {
		t.Errorf("world not empty: %+v", w)
	}
}

func TestEntityIDsSurviveReset(t *testing.T) {
	w := NewWorld(800, 600)
	seen := make(map[uint64]bool)
	for i := 0; i < 3; i++ {
		seen[uint64(w.NewEntity())] = true
	}
	w.Reset()
	for i := 0; i < 3; i++ {
		id := uint64(w.NewEntity())
		if seen[id] {
			t.Fatalf("id %d reused after Reset", id)
		}
		seen[id] = true
	}
}

func TestReset(t *testing.T) {
	w := NewWorld(800, 600)
	w.Player.Health = 0
	w.Player.Score = 120
	w.Wave.Advance()
	w.Wave.Advance()
	w.AddEnemy(component.NewEnemy(w.NewEntity(), defs.EnemyLibrary[defs.KindBasic], utils.Vec2{}))
	w.SpawnBullet(utils.Vec2{X: 0, Y: 0})
	w.EmitEnemyBullet(utils.Vec2{}, utils.Vec2{X: 1, Y: 1}, 5, 10)
	w.GameOver = true

	w.Reset()
	if w.Player.Health != config.PlayerMaxHealth || w.Player.Score != 0 {
		t.Errorf("player not reset: %+v", w.Player)
	}
	if w.Wave.Number != 0 || w.Wave.SpawnInterval != config.InitialSpawnInterval {
		t.Errorf("wave not reset: %+v", w.Wave)
	}
	if len(w.Enemies)+len(w.Bullets)+len(w.EnemyBullets) != 0 {
		t.Error("collections not cleared")
	}
	if w.GameOver || w.Paused {
		t.Errorf("GameOver = %v, Paused = %v", w.GameOver, w.Paused)
	}
}

func TestSpawnBulletFromAimCenter(t *testing.T) {
	w := NewWorld(800, 600)
	w.Aim.Recompute(w.Player, utils.Vec2{X: 800, Y: 310})
	b := w.SpawnBullet(utils.Vec2{X: 800, Y: 310})
	if b.Pos != w.Aim.Center() {
		t.Errorf("bullet Pos = %v, want aim center %v", b.Pos, w.Aim.Center())
	}
	if b.Velocity.X <= 0 {
		t.Errorf("bullet flies away from target: %v", b.Velocity)
	}
	if len(w.Bullets) != 1 {
		t.Errorf("Bullets = %d", len(w.Bullets))
	}
}

func TestSetBounds(t *testing.T) {
	w := NewWorld(800, 600)
	w.SetBounds(1024, -5)
	if w.Width != 1024 || w.Height != 0 {
		t.Errorf("bounds = %dx%d", w.Width, w.Height)
	}
}
