package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig is the optional TOML configuration file. Unset keys keep the
// default; environment variables still win over the file.
type FileConfig struct {
	Server  ServerConfig  `toml:"server"`
	Session SessionConfig `toml:"session"`
}

type ServerConfig struct {
	Port        *string `toml:"port"`
	DatabaseURL *string `toml:"database-url"`
}

type SessionConfig struct {
	Duration       *int   `toml:"duration"`
	Countdown      *int   `toml:"countdown"`
	ShapeTimeoutMs *int   `toml:"shape-timeout-ms"`
	RespawnDelayMs *int   `toml:"respawn-delay-ms"`
	EffectTTLMs    *int   `toml:"effect-ttl-ms"`
	Width          *int   `toml:"width"`
	Height         *int   `toml:"height"`
	Seed           *int64 `toml:"seed"`
}

// LoadFile layers defaults, the TOML file at path and the environment.
// A missing file is not an error.
func LoadFile(path string) (Config, error) {
	if path == "" {
		return Load(), nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Load(), nil
		}
		return Config{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var fc FileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	base := Defaults()
	fc.apply(&base)
	return fromEnv(base), nil
}

func (fc FileConfig) apply(cfg *Config) {
	setString(&cfg.Port, fc.Server.Port)
	setString(&cfg.DatabaseURL, fc.Server.DatabaseURL)
	setInt(&cfg.SessionDuration, fc.Session.Duration)
	setInt(&cfg.CountdownSecs, fc.Session.Countdown)
	setInt(&cfg.ShapeTimeoutMs, fc.Session.ShapeTimeoutMs)
	setInt(&cfg.RespawnDelayMs, fc.Session.RespawnDelayMs)
	setInt(&cfg.EffectTTLMs, fc.Session.EffectTTLMs)
	setInt(&cfg.PlayWidth, fc.Session.Width)
	setInt(&cfg.PlayHeight, fc.Session.Height)
	if fc.Session.Seed != nil {
		cfg.SpawnSeed = *fc.Session.Seed
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
