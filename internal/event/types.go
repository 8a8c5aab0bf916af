// internal/event/types.go
package event

import (
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/types"
)

const (
	WaveStarted  EventType = "WaveStarted"  // Началась новая волна, Data: WaveData
	WaveEnded    EventType = "WaveEnded"    // Волна зачищена, Data: WaveData
	EnemySpawned EventType = "EnemySpawned" // Data: EnemyData
	BossSpawned  EventType = "BossSpawned"  // Data: EnemyData
	EnemyKilled  EventType = "EnemyKilled"  // Враг уничтожен, Data: EnemyData
	PlayerDied   EventType = "PlayerDied"   // Здоровье игрока опустилось до нуля
	GameReset    EventType = "GameReset"
	PauseToggled EventType = "PauseToggled" // Data: bool (новое значение паузы)
)

// WaveData - данные событий волны.
type WaveData struct {
	Number int
}

// EnemyData - данные событий, связанных с врагом.
type EnemyData struct {
	ID    types.EntityID
	Kind  defs.EnemyKind
	Value int
}
