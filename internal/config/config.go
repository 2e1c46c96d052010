package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server  ServerConfig  `toml:"server"`
	HTTP    HTTPConfig    `toml:"http"`
	World   WorldConfig   `toml:"world"`
	Logging LoggingConfig `toml:"logging"`
}

type ServerConfig struct {
	Name string `toml:"name"`
}

type HTTPConfig struct {
	BindAddress     string        `toml:"bind_address"`
	ReadTimeout     time.Duration `toml:"read_timeout"`
	WriteTimeout    time.Duration `toml:"write_timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
	StreamInterval  time.Duration `toml:"stream_interval"` // websocket scene push rate
}

type WorldConfig struct {
	TickRate   time.Duration `toml:"tick_rate"`
	SceneKey   string        `toml:"scene_key"` // seeds procedural scene generation
	ShapesPath string        `toml:"shapes_path"`
	ScriptsDir string        `toml:"scripts_dir"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "botworld",
		},
		HTTP: HTTPConfig{
			BindAddress:     "0.0.0.0:8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			StreamInterval:  50 * time.Millisecond,
		},
		World: WorldConfig{
			TickRate:   50 * time.Millisecond,
			SceneKey:   "botworld",
			ShapesPath: "data/yaml/shapes.yaml",
			ScriptsDir: "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
