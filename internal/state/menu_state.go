// internal/state/menu_state.go
package state

import (
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/settings"
	"go-arena-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

// MenuState - заставка перед началом игры
type MenuState struct {
	sm       *StateMachine
	settings *settings.Manager
	overlay  *ui.Overlay
}

func NewMenuState(sm *StateMachine, settingsManager *settings.Manager) *MenuState {
	return &MenuState{
		sm:       sm,
		settings: settingsManager,
		overlay:  ui.NewOverlay(basicfont.Face7x13),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		toggleFullscreen(m.settings)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewPlayState(m.sm, m.settings))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	m.overlay.Draw(screen, ui.MenuMessage, config.TextLightColor)
}

func (m *MenuState) Exit() {}
