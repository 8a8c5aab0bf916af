package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/utils"
)

// testEnv - мир 800x600 со всеми подписчиками событий, без паузы.
type testEnv struct {
	world      *entity.World
	dispatcher *event.Dispatcher
	events     []event.Event
}

func newTestEnv() *testEnv {
	env := &testEnv{
		world:      entity.NewWorld(800, 600),
		dispatcher: event.NewDispatcher(),
	}
	env.world.Paused = false
	NewStateSystem(env.world, env.dispatcher)
	NewPlayerSystem(env.world, env.dispatcher)
	env.dispatcher.Subscribe(event.ListenerFunc(func(e event.Event) {
		env.events = append(env.events, e)
	}),
		event.WaveStarted, event.WaveEnded, event.EnemySpawned, event.BossSpawned,
		event.EnemyKilled, event.PlayerDied, event.GameReset, event.PauseToggled)
	return env
}

func (env *testEnv) addEnemy(kind defs.EnemyKind, x, y float64) *component.Enemy {
	e := component.NewEnemy(env.world.NewEntity(), defs.EnemyLibrary[kind], utils.Vec2{X: x, Y: y})
	env.world.AddEnemy(e)
	return e
}

func (env *testEnv) addBullet(x, y float64) *component.Bullet {
	b := component.NewBullet(env.world.NewEntity(), utils.Vec2{X: x, Y: y}, utils.Vec2{X: x, Y: y})
	env.world.Bullets = append(env.world.Bullets, b)
	return b
}

func (env *testEnv) count(t event.EventType) int {
	n := 0
	for _, e := range env.events {
		if e.Type == t {
			n++
		}
	}
	return n
}
