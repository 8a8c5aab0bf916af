// internal/app/game.go
package app

import (
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/system"
	"go-arena-shooter/internal/utils"
	"log"

	"github.com/google/uuid"
)

// Game holds the simulation state and runs one tick per Tick call.
type Game struct {
	World            *entity.World
	RunID            uuid.UUID
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	MovementSystem   *system.MovementSystem
	ProjectileSystem *system.ProjectileSystem
	EnemyAISystem    *system.EnemyAISystem
	CombatSystem     *system.CombatSystem
	WaveSystem       *system.WaveSystem
	PlayerSystem     *system.PlayerSystem
	StateSystem      *system.StateSystem

	ticks uint64
}

// NewGame создаёт партию на арене width x height. seed 0 - случайный сид.
func NewGame(width, height int, seed int64) *Game {
	world := entity.NewWorld(width, height)
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		World:            world,
		RunID:            uuid.New(),
		EventDispatcher:  eventDispatcher,
		Rng:              rng,
		MovementSystem:   system.NewMovementSystem(world),
		ProjectileSystem: system.NewProjectileSystem(world),
		EnemyAISystem:    system.NewEnemyAISystem(world),
		CombatSystem:     system.NewCombatSystem(world, eventDispatcher),
		WaveSystem:       system.NewWaveSystem(world, eventDispatcher, rng),
	}
	// StateSystem подписывается первым: к моменту логирования PlayerDied флаг GameOver уже выставлен.
	g.StateSystem = system.NewStateSystem(world, eventDispatcher)
	g.PlayerSystem = system.NewPlayerSystem(world, eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(listener,
		event.WaveStarted,
		event.WaveEnded,
		event.EnemySpawned,
		event.BossSpawned,
		event.PlayerDied,
		event.GameReset,
		event.PauseToggled,
	)

	log.Printf("[Game] new run %s (seed %d)", g.RunID, rng.Seed())
	return g
}

// Tick выполняет один шаг симуляции:
// команды, прицел, движение игрока и снарядов, ИИ врагов, столкновения, волны, очистка.
// На паузе пересчитываются только прицел и выход снарядов за арену.
// После конца игры обрабатываются только команды.
func (g *Game) Tick(c Controls) {
	g.World.SetBounds(c.Bounds())
	pointer := c.Pointer()

	for _, cmd := range c.Commands() {
		g.handleCommand(cmd, pointer)
	}

	if g.World.GameOver {
		return
	}
	g.ticks++

	if g.World.Paused {
		g.MovementSystem.UpdateAim(pointer)
		g.ProjectileSystem.Prune()
		return
	}

	dt := max(c.ElapsedMs(), 0)

	g.MovementSystem.MovePlayer(c.Movement())
	g.MovementSystem.UpdateAim(pointer)
	g.ProjectileSystem.Update()
	g.EnemyAISystem.Update(dt)
	g.CombatSystem.Update()
	if !g.World.GameOver {
		g.WaveSystem.Update(dt)
	}
	g.ProjectileSystem.Prune()
}

func (g *Game) handleCommand(cmd Command, pointer utils.Vec2) {
	switch cmd {
	case CommandFire:
		if g.World.Running() {
			g.World.SpawnBullet(pointer)
		}
	case CommandTogglePause:
		g.StateSystem.TogglePause()
	case CommandReset:
		g.StateSystem.Reset()
	}
}

// Ticks возвращает количество выполненных тиков (без тиков после конца игры).
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Snapshot возвращает копию состояния для отрисовки.
func (g *Game) Snapshot() Snapshot {
	w := g.World
	s := Snapshot{
		RunID:  g.RunID.String(),
		Width:  w.Width,
		Height: w.Height,
		Player: PlayerView{
			Pos:    w.Player.Pos,
			Size:   w.Player.Size,
			Health: w.Player.Health,
			Score:  w.Player.Score,
		},
		Aim:      BodyView{Pos: w.Aim.Pos, Size: w.Aim.Size},
		Wave:     w.Wave.Number,
		Phase:    w.Wave.Phase,
		Paused:   w.Paused,
		GameOver: w.GameOver,
	}

	s.Bullets = make([]BodyView, 0, len(w.Bullets))
	for _, b := range w.Bullets {
		s.Bullets = append(s.Bullets, BodyView{ID: b.ID, Pos: b.Pos, Size: b.Size})
	}
	s.EnemyBullets = make([]BodyView, 0, len(w.EnemyBullets))
	for _, b := range w.EnemyBullets {
		s.EnemyBullets = append(s.EnemyBullets, BodyView{ID: b.ID, Pos: b.Pos, Size: b.Size, Color: b.Color})
	}
	s.Enemies = make([]EnemyView, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		s.Enemies = append(s.Enemies, EnemyView{
			BodyView:    BodyView{ID: e.ID, Pos: e.Pos, Size: e.Size, Color: e.Color},
			Kind:        e.Kind,
			Health:      e.Health,
			HealthRatio: e.HealthRatio(),
			Flashing:    e.Flashing(),
		})
	}
	return s
}
