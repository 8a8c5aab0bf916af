// internal/app/controls.go
package app

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/utils"
)

//go:generate go tool mockgen -destination=./mocks/controls_mock.go -package=mocks . Controls

// Command - дискретная команда игрока.
type Command int

const (
	CommandFire Command = iota + 1
	CommandTogglePause
	CommandReset
)

func (c Command) String() string {
	switch c {
	case CommandFire:
		return "fire"
	case CommandTogglePause:
		return "toggle_pause"
	case CommandReset:
		return "reset"
	}
	return "unknown"
}

// Controls - внешний источник ввода, опрашиваемый один раз за тик.
type Controls interface {
	// Movement возвращает состояние клавиш направления.
	Movement() component.Direction
	// Pointer возвращает позицию курсора в координатах арены.
	Pointer() utils.Vec2
	// Commands возвращает команды, поступившие с прошлого тика, в порядке поступления.
	Commands() []Command
	// Bounds возвращает текущий размер арены.
	Bounds() (width, height int)
	// ElapsedMs возвращает время, прошедшее с прошлого тика, в миллисекундах.
	ElapsedMs() float64
}
