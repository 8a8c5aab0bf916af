package component

import (
	"go-arena-shooter/internal/config"
	"testing"
)

func TestNewWave(t *testing.T) {
	w := NewWave()
	if w.Number != 0 || w.SpawnInterval != config.InitialSpawnInterval || w.Phase != PhaseSpawning {
		t.Errorf("NewWave() = %+v", w)
	}
	if !w.Cleared(0) {
		t.Error("wave 0 must be cleared immediately")
	}
}

func TestWaveAdvance(t *testing.T) {
	w := NewWave()
	w.Advance()
	if w.Number != 1 || w.SpawnInterval != 1100 || w.Quota() != 5 {
		t.Errorf("after first advance: %+v", w)
	}

	w.EnemiesSpawned = 3
	w.SpawnTimer = 400
	w.BossFight = true
	w.Advance()
	if w.EnemiesSpawned != 0 || w.SpawnTimer != 0 || w.BossFight {
		t.Errorf("advance did not reset counters: %+v", w)
	}
}

func TestSpawnIntervalFloor(t *testing.T) {
	w := NewWave()
	prev := w.SpawnInterval
	for i := 0; i < 20; i++ {
		w.Advance()
		if w.SpawnInterval > prev {
			t.Fatalf("interval grew from %v to %v", prev, w.SpawnInterval)
		}
		if w.SpawnInterval < config.MinSpawnInterval {
			t.Fatalf("interval %v below floor", w.SpawnInterval)
		}
		prev = w.SpawnInterval
	}
	if w.SpawnInterval != config.MinSpawnInterval {
		t.Errorf("interval = %v, want floor %v", w.SpawnInterval, config.MinSpawnInterval)
	}
}

func TestBossWaves(t *testing.T) {
	w := NewWave()
	for n := 1; n <= 10; n++ {
		w.Advance()
		boss := n%5 == 0
		if w.IsBossWave() != boss {
			t.Errorf("wave %d: IsBossWave = %v", n, w.IsBossWave())
		}
		wantPhase := PhaseSpawning
		if boss {
			wantPhase = PhaseBossPending
		}
		if w.Phase != wantPhase {
			t.Errorf("wave %d: phase %s, want %s", n, w.Phase, wantPhase)
		}
	}
}

func TestWaveCleared(t *testing.T) {
	tests := []struct {
		name    string
		wave    Wave
		enemies int
		want    bool
	}{
		{"quota met and arena empty", Wave{Number: 1, EnemiesSpawned: 5}, 0, true},
		{"quota met but enemies alive", Wave{Number: 1, EnemiesSpawned: 5}, 2, false},
		{"quota not met", Wave{Number: 2, EnemiesSpawned: 5}, 0, false},
		{"boss defeated", Wave{Number: 5, EnemiesSpawned: 1, BossFight: true}, 0, true},
		{"boss alive", Wave{Number: 5, EnemiesSpawned: 1, BossFight: true}, 1, false},
		{"boss not spawned yet", Wave{Number: 5}, 0, false},
	}
	for _, tt := range tests {
		if got := tt.wave.Cleared(tt.enemies); got != tt.want {
			t.Errorf("%s: Cleared = %v, want %v", tt.name, got, tt.want)
		}
	}
}
