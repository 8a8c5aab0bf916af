// internal/defs/enemies.go
package defs

import "image/color"

// Visuals описывает внешний вид сущности.
type Visuals struct {
	Color color.RGBA `yaml:"color"`
}

// RangedDefinition - параметры стрельбы для врагов дальнего боя.
type RangedDefinition struct {
	IntervalMs   float64 `yaml:"interval_ms"`
	BulletSpeed  float64 `yaml:"bullet_speed"`
	BulletDamage int     `yaml:"bullet_damage"`
	MinDistance  float64 `yaml:"min_distance"` // 0 - враг идёт прямо на игрока
}

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID          string            `yaml:"id"`
	Kind        EnemyKind         `yaml:"-"`
	Name        string            `yaml:"name"`
	Value       int               `yaml:"value"`
	Health      int               `yaml:"health"`
	Speed       float64           `yaml:"speed"`
	Size        int               `yaml:"size"`
	SpawnWeight int               `yaml:"spawn_weight"`
	Visuals     Visuals           `yaml:"visuals"`
	Ranged      *RangedDefinition `yaml:"ranged"`
}

// SpawnEntry - запись таблицы случайного выбора типа врага.
type SpawnEntry struct {
	Kind   EnemyKind
	Weight int
}
