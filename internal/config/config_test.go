package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	content := `
[http]
bind_address = "127.0.0.1:9999"

[world]
tick_rate = "20ms"
scene_key = "crowded"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.BindAddress != "127.0.0.1:9999" {
		t.Fatalf("bind = %q", cfg.HTTP.BindAddress)
	}
	if cfg.World.TickRate != 20*time.Millisecond {
		t.Fatalf("tick rate = %v", cfg.World.TickRate)
	}
	if cfg.World.SceneKey != "crowded" {
		t.Fatalf("scene key = %q", cfg.World.SceneKey)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level = %q", cfg.Logging.Level)
	}
	// Untouched sections keep their defaults.
	if cfg.Server.Name != "botworld" {
		t.Fatalf("server name = %q", cfg.Server.Name)
	}
	if cfg.HTTP.ShutdownTimeout != 5*time.Second {
		t.Fatalf("shutdown timeout = %v", cfg.HTTP.ShutdownTimeout)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("missing config accepted")
	}
}

func TestLoadBadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	os.WriteFile(path, []byte("[http\nbroken"), 0o644)
	if _, err := Load(path); err == nil {
		t.Fatalf("malformed config accepted")
	}
}
