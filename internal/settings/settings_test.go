package settings

import (
	"fmt"
	"go-arena-shooter/internal/config"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// openTestStorage открывает gdata во временном домашнем каталоге.
// Возвращает nil, если хранилище недоступно в окружении теста.
func openTestStorage(t *testing.T) *gdata.Manager {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))

	appName := fmt.Sprintf("arena_settings_test_%d", time.Now().UnixNano())
	gm, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil
	}
	return gm
}

func TestManagerWithoutStorage(t *testing.T) {
	m := NewManager(nil)
	if *m.Settings() != *Default() {
		t.Errorf("Settings() = %+v, want defaults", m.Settings())
	}

	m.SetFullscreen(true)
	if err := m.Save(); err != nil {
		t.Errorf("Save() without storage = %v", err)
	}
	if !m.Settings().Fullscreen {
		t.Error("in-memory setting lost")
	}
}

func TestSetWindowSizeNormalizes(t *testing.T) {
	m := NewManager(nil)
	m.SetWindowSize(1024, 768)
	if s := m.Settings(); s.WindowWidth != 1024 || s.WindowHeight != 768 {
		t.Errorf("window = %dx%d", s.WindowWidth, s.WindowHeight)
	}

	m.SetWindowSize(100, 768)
	if s := m.Settings(); s.WindowWidth != config.ScreenWidth || s.WindowHeight != config.ScreenHeight {
		t.Errorf("too small window kept: %dx%d", s.WindowWidth, s.WindowHeight)
	}
}

func TestSaveAndLoad(t *testing.T) {
	gm := openTestStorage(t)
	if gm == nil {
		t.Skip("gdata storage is not available")
	}

	m := NewManager(gm)
	m.SetFullscreen(true)
	m.SetWindowSize(1024, 768)
	m.Settings().Seed = 42
	if err := m.Save(); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	reloaded := NewManager(gm)
	want := Settings{Fullscreen: true, WindowWidth: 1024, WindowHeight: 768, Seed: 42}
	if *reloaded.Settings() != want {
		t.Errorf("reloaded = %+v, want %+v", reloaded.Settings(), want)
	}
}

func TestLoadRejectsBrokenData(t *testing.T) {
	gm := openTestStorage(t)
	if gm == nil {
		t.Skip("gdata storage is not available")
	}
	if err := gm.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: [")); err != nil {
		t.Fatalf("SaveObjectProp() = %v", err)
	}

	m := &Manager{gdataManager: gm}
	if err := m.Load(); err == nil {
		t.Error("Load() accepted malformed yaml")
	}
	if *m.Settings() != *Default() {
		t.Errorf("settings after failed load = %+v, want defaults", m.Settings())
	}
}
