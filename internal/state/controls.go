// internal/state/controls.go
package state

import (
	"go-arena-shooter/internal/app"
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ app.Controls = (*frameControls)(nil)

// frameControls - ввод одного кадра, снятый с ebiten.
type frameControls struct {
	direction     component.Direction
	pointer       utils.Vec2
	commands      []app.Command
	width, height int
	elapsedMs     float64
}

// pollControls опрашивает клавиатуру и мышь.
func pollControls(width, height int, deltaTime float64) *frameControls {
	cx, cy := ebiten.CursorPosition()
	fc := &frameControls{
		direction: component.Direction{
			Up:    ebiten.IsKeyPressed(ebiten.KeyW),
			Down:  ebiten.IsKeyPressed(ebiten.KeyS),
			Left:  ebiten.IsKeyPressed(ebiten.KeyA),
			Right: ebiten.IsKeyPressed(ebiten.KeyD),
		},
		pointer:   utils.Vec2{X: float64(cx), Y: float64(cy)},
		width:     width,
		height:    height,
		elapsedMs: deltaTime * 1000,
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		fc.commands = append(fc.commands, app.CommandFire)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		fc.commands = append(fc.commands, app.CommandTogglePause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		fc.commands = append(fc.commands, app.CommandReset)
	}
	return fc
}

func (f *frameControls) Movement() component.Direction { return f.direction }
func (f *frameControls) Pointer() utils.Vec2           { return f.pointer }
func (f *frameControls) Commands() []app.Command       { return f.commands }
func (f *frameControls) Bounds() (int, int)            { return f.width, f.height }
func (f *frameControls) ElapsedMs() float64            { return f.elapsedMs }
