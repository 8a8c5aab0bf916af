// internal/defs/loader.go
package defs

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed enemies.yaml
var enemiesYAML []byte

// EnemyLibrary is a map to hold all enemy definitions, keyed by their kind.
var EnemyLibrary = mustLoadEnemyLibrary()

// SpawnTable - типы врагов с положительным весом, упорядоченные по EnemyKind.
var SpawnTable = buildSpawnTable(EnemyLibrary)

func mustLoadEnemyLibrary() map[EnemyKind]EnemyDefinition {
	library, err := ParseEnemyDefinitions(enemiesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded enemies.yaml: %v", err))
	}
	return library
}

// ParseEnemyDefinitions разбирает YAML с описанием врагов и проверяет его корректность.
func ParseEnemyDefinitions(data []byte) (map[EnemyKind]EnemyDefinition, error) {
	var enemyDefs []EnemyDefinition
	if err := yaml.Unmarshal(data, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	library := make(map[EnemyKind]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		kind, err := ParseEnemyKind(def.ID)
		if err != nil {
			return nil, err
		}
		if _, exists := library[kind]; exists {
			return nil, fmt.Errorf("duplicate enemy id %q", def.ID)
		}
		def.Kind = kind
		if err := validateEnemy(def); err != nil {
			return nil, fmt.Errorf("invalid enemy %s: %w", def.ID, err)
		}
		library[kind] = def
	}

	if len(buildSpawnTable(library)) == 0 {
		return nil, fmt.Errorf("no enemy has a positive spawn_weight")
	}
	return library, nil
}

func validateEnemy(def EnemyDefinition) error {
	if def.Value <= 0 {
		return fmt.Errorf("value must be > 0, got %d", def.Value)
	}
	if def.Health <= 0 {
		return fmt.Errorf("health must be > 0, got %d", def.Health)
	}
	if def.Size <= 0 {
		return fmt.Errorf("size must be > 0, got %d", def.Size)
	}
	if def.Speed < 0 {
		return fmt.Errorf("speed must be >= 0, got %v", def.Speed)
	}
	if def.SpawnWeight < 0 {
		return fmt.Errorf("spawn_weight must be >= 0, got %d", def.SpawnWeight)
	}
	if r := def.Ranged; r != nil {
		if r.IntervalMs <= 0 {
			return fmt.Errorf("ranged.interval_ms must be > 0, got %v", r.IntervalMs)
		}
		if r.BulletSpeed <= 0 {
			return fmt.Errorf("ranged.bullet_speed must be > 0, got %v", r.BulletSpeed)
		}
		if r.BulletDamage < 0 || r.MinDistance < 0 {
			return fmt.Errorf("ranged.bullet_damage and ranged.min_distance must be >= 0")
		}
	}
	return nil
}

func buildSpawnTable(library map[EnemyKind]EnemyDefinition) []SpawnEntry {
	var table []SpawnEntry
	for kind, def := range library {
		if def.SpawnWeight > 0 {
			table = append(table, SpawnEntry{Kind: kind, Weight: def.SpawnWeight})
		}
	}
	sort.Slice(table, func(i, j int) bool { return table[i].Kind < table[j].Kind })
	return table
}
