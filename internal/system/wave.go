// internal/system/wave.go
package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/utils"
	"log"
)

// WaveSystem - директор волн: таймер появления, выбор типа врага,
// волны босса и переход к следующей волне.
type WaveSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	spawnTable      []defs.SpawnEntry
}

func NewWaveSystem(world *entity.World, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *WaveSystem {
	return &WaveSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		spawnTable:      defs.SpawnTable,
	}
}

func (s *WaveSystem) Update(dtMs float64) {
	wave := s.world.Wave

	if wave.IsBossWave() {
		if !wave.BossFight {
			s.spawnBoss(wave)
		}
	} else if wave.EnemiesSpawned < wave.Quota() {
		wave.SpawnTimer += dtMs
		if wave.SpawnTimer >= wave.SpawnInterval {
			s.spawnEnemy(wave)
			wave.SpawnTimer = 0
		}
	}
	s.updatePhase(wave)

	if wave.Cleared(len(s.world.Enemies)) {
		wave.Phase = component.PhaseWaveClear
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: event.WaveData{Number: wave.Number}})
		wave.Advance()
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: wave.Number}})
	}
}

func (s *WaveSystem) updatePhase(wave *component.Wave) {
	switch {
	case !wave.IsBossWave():
		wave.Phase = component.PhaseSpawning
	case wave.BossFight:
		wave.Phase = component.PhaseBossActive
	default:
		wave.Phase = component.PhaseBossPending
	}
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	kind, ok := s.rng.ChooseWeighted(s.spawnTable)
	if !ok {
		log.Printf("[Wave] Error: spawn table is empty")
		return
	}
	e := s.createEnemy(kind)
	if e == nil {
		return
	}
	wave.EnemiesSpawned++
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyData{ID: e.ID, Kind: e.Kind, Value: e.Value},
	})
}

func (s *WaveSystem) spawnBoss(wave *component.Wave) {
	// Флаг ставится даже без определения босса: иначе волна никогда не закончится.
	wave.BossFight = true
	e := s.createEnemy(defs.KindBoss)
	if e == nil {
		return
	}
	wave.EnemiesSpawned++
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.BossSpawned,
		Data: event.EnemyData{ID: e.ID, Kind: e.Kind, Value: e.Value},
	})
}

func (s *WaveSystem) createEnemy(kind defs.EnemyKind) *component.Enemy {
	def, ok := defs.EnemyLibrary[kind]
	if !ok {
		log.Printf("[Wave] Error: enemy definition not found for kind: %s", kind)
		return nil
	}
	e := component.NewEnemy(s.world.NewEntity(), def, s.edgePosition())
	s.world.AddEnemy(e)
	return e
}

// edgePosition выбирает случайную сторону арены и точку на ней,
// вынесенную на SpawnPadding за границу.
func (s *WaveSystem) edgePosition() utils.Vec2 {
	w, h := s.world.Width, s.world.Height
	pad := config.SpawnPadding

	var x, y int
	switch s.rng.Intn(4) {
	case 0: // сверху
		x, y = s.rng.IntInclusive(w), -pad
	case 1: // справа
		x, y = w+pad, s.rng.IntInclusive(h)
	case 2: // снизу
		x, y = s.rng.IntInclusive(w), h+pad
	default: // слева
		x, y = -pad, s.rng.IntInclusive(h)
	}
	return utils.Vec2{X: float64(x), Y: float64(y)}
}
