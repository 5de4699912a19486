package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Resolve(filepath.Join(t.TempDir(), "cockpit.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Display.Width != 800 || cfg.Display.Height != 480 {
		t.Errorf("default display: got %dx%d, want 800x480", cfg.Display.Width, cfg.Display.Height)
	}
	if cfg.Output.Dir != "frames" {
		t.Errorf("default output dir: got %q", cfg.Output.Dir)
	}
	if cfg.Gamepad.Device != "/dev/input/js0" {
		t.Errorf("default gamepad device: got %q", cfg.Gamepad.Device)
	}
}

func TestResolveReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cockpit.yaml")
	data := `
display:
  width: 640
  height: 360
  frames: 10
gamepad:
  enabled: true
  device: /dev/input/js1
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Resolve(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Display.Width != 640 || cfg.Display.Height != 360 {
		t.Errorf("display: got %dx%d, want 640x360", cfg.Display.Width, cfg.Display.Height)
	}
	if cfg.Display.FPS != 30 {
		t.Errorf("fps default not applied: got %d", cfg.Display.FPS)
	}
	if !cfg.Gamepad.Enabled || cfg.Gamepad.Device != "/dev/input/js1" {
		t.Errorf("gamepad: got %+v", cfg.Gamepad)
	}
}

func TestResolveRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cockpit.yaml")
	if err := os.WriteFile(path, []byte(":\n  - ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve(path); err == nil {
		t.Error("expected parse error")
	}
}
