// internal/settings/settings.go

// Package settings хранит настройки отображения между запусками.
// Прогресс партии не сохраняется.
package settings

import (
	"fmt"
	"go-arena-shooter/internal/config"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	AppName = "go_arena_shooter"

	settingsObject   = "settings"
	settingsProperty = "display"

	minWindowWidth  = 320
	minWindowHeight = 240
)

// Settings - настройки окна.
type Settings struct {
	Fullscreen   bool  `yaml:"fullscreen"`
	WindowWidth  int   `yaml:"windowWidth"`
	WindowHeight int   `yaml:"windowHeight"`
	Seed         int64 `yaml:"seed"` // 0 - новый сид при каждом запуске
}

func Default() *Settings {
	return &Settings{
		Fullscreen:   false,
		WindowWidth:  config.ScreenWidth,
		WindowHeight: config.ScreenHeight,
	}
}

// normalize заменяет слишком маленький размер окна значениями по умолчанию.
func (s *Settings) normalize() {
	if s.WindowWidth < minWindowWidth || s.WindowHeight < minWindowHeight {
		s.WindowWidth = config.ScreenWidth
		s.WindowHeight = config.ScreenHeight
	}
}

// Manager загружает и сохраняет настройки через gdata.
// С nil gdata.Manager работает только в памяти.
type Manager struct {
	gdataManager *gdata.Manager
	settings     *Settings
}

// Open открывает хранилище приложения. Ошибка открытия не фатальна.
func Open(appName string) *Manager {
	gm, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Settings] Warning: storage unavailable: %v (settings will not persist)", err)
		gm = nil
	}
	return NewManager(gm)
}

func NewManager(gdataManager *gdata.Manager) *Manager {
	m := &Manager{
		gdataManager: gdataManager,
		settings:     Default(),
	}
	if err := m.Load(); err != nil {
		log.Printf("[Settings] Warning: failed to load settings: %v (using defaults)", err)
	}
	return m
}

// Load читает настройки. Если их нет, используются значения по умолчанию.
func (m *Manager) Load() error {
	m.settings = Default()
	if m.gdataManager == nil || !m.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := Default()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.normalize()
	m.settings = loaded
	return nil
}

// Save записывает настройки. Без хранилища ничего не делает.
func (m *Manager) Save() error {
	if m.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := m.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (m *Manager) Settings() *Settings {
	return m.settings
}

func (m *Manager) SetFullscreen(fullscreen bool) {
	m.settings.Fullscreen = fullscreen
}

func (m *Manager) SetWindowSize(width, height int) {
	m.settings.WindowWidth = width
	m.settings.WindowHeight = height
	m.settings.normalize()
}
