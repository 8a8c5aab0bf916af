// internal/defs/types.go
package defs

import "fmt"

// EnemyKind - тип врага. Значения совпадают с множителем очков по умолчанию.
type EnemyKind int

const (
	KindBasic EnemyKind = iota + 1
	KindFast
	KindTank
	KindShooter
	KindBoss
)

var kindNames = map[EnemyKind]string{
	KindBasic:   "BASIC",
	KindFast:    "FAST",
	KindTank:    "TANK",
	KindShooter: "SHOOTER",
	KindBoss:    "BOSS",
}

func (k EnemyKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EnemyKind(%d)", int(k))
}

// ParseEnemyKind преобразует идентификатор из enemies.yaml в EnemyKind.
func ParseEnemyKind(id string) (EnemyKind, error) {
	for kind, name := range kindNames {
		if name == id {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown enemy id %q", id)
}
