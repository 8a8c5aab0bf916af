// internal/app/events.go
package app

import (
	"go-arena-shooter/internal/event"
	"log"

	"github.com/google/uuid"
)

// GameEventListener ведёт журнал ключевых событий партии.
type GameEventListener struct {
	game    *Game
	spawned int // врагов за текущую партию, включая боссов
}

func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.WaveStarted:
		if data, ok := e.Data.(event.WaveData); ok {
			log.Printf("[Game] run %s: wave %d started", g.RunID, data.Number)
		}
	case event.WaveEnded:
		if data, ok := e.Data.(event.WaveData); ok && data.Number > 0 {
			log.Printf("[Game] run %s: wave %d cleared", g.RunID, data.Number)
		}
	case event.EnemySpawned:
		l.spawned++
	case event.BossSpawned:
		l.spawned++
		log.Printf("[Game] run %s: boss spawned on wave %d", g.RunID, g.World.Wave.Number)
	case event.PlayerDied:
		log.Printf("[Game] run %s: game over on wave %d, score %d, %d enemies spawned, %d ticks",
			g.RunID, g.World.Wave.Number, g.World.Player.Score, l.spawned, g.Ticks())
	case event.PauseToggled:
		if paused, ok := e.Data.(bool); ok {
			log.Printf("[Game] run %s: paused=%v on wave %d", g.RunID, paused, g.World.Wave.Number)
		}
	case event.GameReset:
		g.RunID = uuid.New()
		l.spawned = 0
		log.Printf("[Game] new run %s", g.RunID)
	}
}
