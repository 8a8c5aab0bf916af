// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	TPS          = 60
	MaxDeltaTime = 0.06 // секунды
	StartPaused  = true

	PlayerSize      = 20
	PlayerSpeed     = 5.0
	PlayerMaxHealth = 100
	ContactDamage   = 1 // урон за тик касания с каждым врагом

	AimSize   = 10
	AimRadius = 35.0

	BulletSize   = 5
	BulletSpeed  = 10.0
	BulletDamage = 25

	EnemyBulletSize = 8

	BoundsMargin = 50.0 // снаряды за этой границей удаляются
	SpawnPadding = 50   // враги появляются за краем арены

	EnemiesPerWave         = 5
	InitialSpawnInterval   = 1200.0 // мс
	SpawnIntervalDecrement = 100.0
	MinSpawnInterval       = 500.0
	BossWaveEvery          = 5
	WaveHeal               = 10
	ScorePerValue          = 10

	HitFlashTicks = 10

	HUDTextX      = 10
	HUDScoreY     = 24
	HUDWaveY      = 54
	HealthBarGap  = 10
	HealthBarSize = 5
)

var (
	BackgroundColor   = color.RGBA{0, 0, 0, 255}
	PlayerColor       = color.RGBA{255, 255, 255, 255}
	AimColor          = color.RGBA{255, 0, 0, 255}
	BulletColor       = color.RGBA{255, 0, 0, 255}
	EnemyBulletColor  = color.RGBA{255, 100, 100, 255}
	HitFlashColor     = color.RGBA{255, 255, 255, 255}
	HealthBarBack     = color.RGBA{255, 0, 0, 255}
	HealthBarFill     = color.RGBA{0, 255, 0, 255}
	TextLightColor    = color.RGBA{255, 255, 255, 255}
	TextDarkColor     = color.RGBA{0, 0, 0, 255}
	GameOverTextColor = color.RGBA{255, 0, 0, 255}
	BossWaveColor     = color.RGBA{220, 60, 60, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 128}
)
