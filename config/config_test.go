package config

import (
	"runtime"
	"testing"
)

func setConfigHome(t *testing.T) {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("config dir override relies on XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoadDefaultsWhenAbsent(t *testing.T) {
	setConfigHome(t)

	cfg := Load()
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
	if cfg.WindowWidth != 640 || cfg.WindowHeight != 480 {
		t.Errorf("default size = %dx%d, want 640x480", cfg.WindowWidth, cfg.WindowHeight)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	setConfigHome(t)

	want := Config{WindowX: 12, WindowY: 34, WindowWidth: 800, WindowHeight: 600}
	if err := want.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if got := Load(); got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}
