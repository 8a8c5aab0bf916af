// internal/component/wave.go
package component

import "go-arena-shooter/internal/config"

// WavePhase - состояние директора волн.
type WavePhase int

const (
	PhaseSpawning    WavePhase = iota // обычная волна, враги появляются по таймеру
	PhaseBossPending                  // волна босса, босс ещё не появился
	PhaseBossActive                   // босс жив
	PhaseWaveClear                    // волна зачищена, переход к следующей
)

func (p WavePhase) String() string {
	switch p {
	case PhaseSpawning:
		return "SPAWNING"
	case PhaseBossPending:
		return "BOSS_PENDING"
	case PhaseBossActive:
		return "BOSS_ACTIVE"
	case PhaseWaveClear:
		return "WAVE_CLEAR"
	}
	return "UNKNOWN"
}

// Wave хранит состояние текущей волны.
type Wave struct {
	Number         int
	EnemiesSpawned int
	SpawnTimer     float64 // мс
	SpawnInterval  float64 // мс, только уменьшается
	BossFight      bool
	Phase          WavePhase
}

// NewWave возвращает начальное состояние: волна 0, первая же проверка переводит на волну 1.
func NewWave() *Wave {
	return &Wave{
		SpawnInterval: config.InitialSpawnInterval,
		Phase:         PhaseSpawning,
	}
}

func (w *Wave) IsBossWave() bool {
	return w.Number > 0 && w.Number%config.BossWaveEvery == 0
}

// Quota - сколько обычных врагов появляется за волну.
func (w *Wave) Quota() int {
	return w.Number * config.EnemiesPerWave
}

// Cleared проверяет условие завершения волны.
func (w *Wave) Cleared(enemiesAlive int) bool {
	return (w.EnemiesSpawned >= w.Quota() && enemiesAlive == 0) ||
		(w.BossFight && enemiesAlive == 0)
}

// Advance переводит состояние на следующую волну и ускоряет появление врагов.
func (w *Wave) Advance() {
	w.BossFight = false
	w.Number++
	w.SpawnTimer = 0
	w.EnemiesSpawned = 0
	w.SpawnInterval = max(config.MinSpawnInterval, w.SpawnInterval-config.SpawnIntervalDecrement)
	w.Phase = PhaseSpawning
	if w.IsBossWave() {
		w.Phase = PhaseBossPending
	}
}
