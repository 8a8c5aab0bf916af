// cmd/game/main.go
package main

import (
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/settings"
	"go-arena-shooter/internal/state"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	startFromGame = true  // true - начинать с игры, false - с меню
	enablePprof   = false // профилировщик на localhost:6060
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout отдаёт арене весь размер окна: размер арены меняется вместе с окном.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w, h := a.stateMachine.Size(); w != outsideWidth || h != outsideHeight {
		a.stateMachine.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func main() {
	if enablePprof {
		go func() {
			log.Println(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	settingsManager := settings.Open(settings.AppName)
	s := settingsManager.Settings()

	sm := state.NewStateMachine(s.WindowWidth, s.WindowHeight)
	if startFromGame {
		sm.SetState(state.NewPlayState(sm, settingsManager))
	} else {
		sm.SetState(state.NewMenuState(sm, settingsManager))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(s.WindowWidth, s.WindowHeight)
	ebiten.SetWindowTitle("Arena Shooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(s.Fullscreen)
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}

	if !ebiten.IsFullscreen() {
		settingsManager.SetWindowSize(ebiten.WindowSize())
	}
	if err := settingsManager.Save(); err != nil {
		log.Printf("[Settings] Warning: %v", err)
	}
}
