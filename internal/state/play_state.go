// internal/state/play_state.go
package state

import (
	"go-arena-shooter/internal/app"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/settings"
	"go-arena-shooter/internal/ui"
	"go-arena-shooter/pkg/render"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

// PlayState - состояние игры: опрос ввода, тик симуляции, отрисовка.
type PlayState struct {
	sm            *StateMachine
	settings      *settings.Manager
	game          *app.Game
	renderer      *render.ArenaRenderer
	score         *ui.ScoreIndicator
	wave          *ui.WaveIndicator
	overlay       *ui.Overlay
	width, height int
}

func NewPlayState(sm *StateMachine, settingsManager *settings.Manager) *PlayState {
	face := basicfont.Face7x13
	width, height := sm.Size()
	return &PlayState{
		sm:       sm,
		settings: settingsManager,
		game:     app.NewGame(width, height, settingsManager.Settings().Seed),
		renderer: render.NewArenaRenderer(face, render.DefaultEntityColors()),
		score:    ui.NewScoreIndicator(config.HUDTextX, config.HUDScoreY, face),
		wave:     ui.NewWaveIndicator(config.HUDTextX, config.HUDWaveY, face),
		overlay:  ui.NewOverlay(face),
		width:    width,
		height:   height,
	}
}

func (g *PlayState) Enter() {}

func (g *PlayState) Resize(width, height int) {
	g.width, g.height = width, height
}

func (g *PlayState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		toggleFullscreen(g.settings)
	}
	g.game.Tick(pollControls(g.width, g.height, deltaTime))
}

func (g *PlayState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s := g.game.Snapshot()
	g.renderer.Draw(screen, s)
	g.score.Draw(screen, s.Player.Score)
	g.wave.Draw(screen, s.Wave)

	switch {
	case s.GameOver:
		g.overlay.Draw(screen, ui.GameOverMessage, config.GameOverTextColor)
	case s.Paused:
		g.overlay.Draw(screen, ui.PauseMessage, config.TextLightColor)
	}
}

func (g *PlayState) Exit() {}

// toggleFullscreen переключает полноэкранный режим и сохраняет выбор.
func toggleFullscreen(m *settings.Manager) {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	m.SetFullscreen(fullscreen)
	if err := m.Save(); err != nil {
		log.Printf("[Settings] Warning: %v", err)
	}
}
