// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State - интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Resizable реализуют состояния, которым нужен текущий размер окна.
type Resizable interface {
	Resize(width, height int)
}

// StateMachine - структура для управления состояниями
type StateMachine struct {
	current       State
	width, height int
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(width, height int) *StateMachine {
	return &StateMachine{width: width, height: height}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		if r, ok := sm.current.(Resizable); ok {
			r.Resize(sm.width, sm.height)
		}
		sm.current.Enter()
	}
}

// Resize запоминает размер окна и передаёт его текущему состоянию.
func (sm *StateMachine) Resize(width, height int) {
	sm.width, sm.height = width, height
	if r, ok := sm.current.(Resizable); ok {
		r.Resize(width, height)
	}
}

func (sm *StateMachine) Size() (int, int) {
	return sm.width, sm.height
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
