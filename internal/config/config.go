package config

import (
	"log"
	"os"
	"shapetrainer/internal/session"
	"shapetrainer/internal/shapes"
	"strconv"
	"time"
)

type Config struct {
	Port            string
	DatabaseURL     string
	SessionDuration int // seconds
	CountdownSecs   int
	ShapeTimeoutMs  int
	RespawnDelayMs  int
	EffectTTLMs     int
	PlayWidth       int
	PlayHeight      int
	SpawnSeed       int64 // 0 picks a seed from the clock
}

func Defaults() Config {
	return Config{
		Port:            "8080",
		SessionDuration: 300,
		CountdownSecs:   3,
		ShapeTimeoutMs:  3000,
		RespawnDelayMs:  500,
		EffectTTLMs:     2000,
		PlayWidth:       600,
		PlayHeight:      400,
	}
}

// Load reads the configuration from the environment over the defaults.
func Load() Config {
	return fromEnv(Defaults())
}

func fromEnv(base Config) Config {
	cfg := Config{
		Port:            getEnv("PORT", base.Port),
		DatabaseURL:     getEnv("DATABASE_URL", base.DatabaseURL),
		SessionDuration: getEnvInt("SESSION_DURATION", base.SessionDuration),
		CountdownSecs:   getEnvInt("COUNTDOWN_SECS", base.CountdownSecs),
		ShapeTimeoutMs:  getEnvInt("SHAPE_TIMEOUT_MS", base.ShapeTimeoutMs),
		RespawnDelayMs:  getEnvInt("RESPAWN_DELAY_MS", base.RespawnDelayMs),
		EffectTTLMs:     getEnvInt("EFFECT_TTL_MS", base.EffectTTLMs),
		PlayWidth:       getEnvInt("PLAY_WIDTH", base.PlayWidth),
		PlayHeight:      getEnvInt("PLAY_HEIGHT", base.PlayHeight),
		SpawnSeed:       int64(getEnvInt("SPAWN_SEED", int(base.SpawnSeed))),
	}
	return cfg.sanitized()
}

// sanitized replaces out of range timing and play area values with the
// defaults. A zero shape timeout would expire and respawn shapes forever
// without the clock moving.
func (c Config) sanitized() Config {
	def := Defaults()
	positive(&c.SessionDuration, def.SessionDuration, "session duration")
	positive(&c.ShapeTimeoutMs, def.ShapeTimeoutMs, "shape timeout")
	nonNegative(&c.CountdownSecs, def.CountdownSecs, "countdown")
	nonNegative(&c.RespawnDelayMs, def.RespawnDelayMs, "respawn delay")
	nonNegative(&c.EffectTTLMs, def.EffectTTLMs, "effect ttl")
	nonNegative(&c.PlayWidth, def.PlayWidth, "play width")
	nonNegative(&c.PlayHeight, def.PlayHeight, "play height")
	return c
}

func positive(v *int, fallback int, name string) {
	if *v <= 0 {
		log.Printf("[Config] %s %d must be positive, using %d\n", name, *v, fallback)
		*v = fallback
	}
}

func nonNegative(v *int, fallback int, name string) {
	if *v < 0 {
		log.Printf("[Config] %s %d must not be negative, using %d\n", name, *v, fallback)
		*v = fallback
	}
}

// Session converts the timing and play area settings for the engine.
func (c Config) Session() session.Config {
	return session.Config{
		SessionDuration: c.SessionDuration,
		CountdownSecs:   c.CountdownSecs,
		ShapeTimeout:    time.Duration(c.ShapeTimeoutMs) * time.Millisecond,
		RespawnDelay:    time.Duration(c.RespawnDelayMs) * time.Millisecond,
		EffectTTL:       time.Duration(c.EffectTTLMs) * time.Millisecond,
		Bounds:          shapes.Bounds{Width: float64(c.PlayWidth), Height: float64(c.PlayHeight)},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
