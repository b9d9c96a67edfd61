// Package config loads asciicam settings from ASCIICAM_* environment
// variables.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/asciicam"
)

// Prefix is prepended to every environment key.
const Prefix = "ASCIICAM_"

// Config holds the command configuration. The render fields mirror
// asciicam.Settings.
type Config struct {
	FontSize  float64
	Contrast  float64
	Threshold float64
	Glow      float64
	// Step 0 leaves the choice to the surface width, see
	// control.DefaultSettingsFor.
	Step         int
	Outline      bool
	Charset      asciicam.CharsetMode
	Phrase       string
	FPS          float64
	Width        int
	Height       int
	Listen       string
	Record       time.Duration
	Dedupe       bool
	HashDistance int
	Resampler    string
	LogLevel     slog.Level
}

// Load reads the configuration from the environment. Unset or malformed
// values take their defaults.
func Load() *Config {
	return &Config{
		FontSize:     getEnvFloat("FONT_SIZE", asciicam.DefaultFontSize),
		Contrast:     getEnvFloat("CONTRAST", asciicam.DefaultContrast),
		Threshold:    getEnvFloat("THRESHOLD", asciicam.DefaultThreshold),
		Glow:         getEnvFloat("GLOW", asciicam.DefaultGlow),
		Step:         getEnvInt("STEP", 0),
		Outline:      getEnvBool("OUTLINE", false),
		Charset:      asciicam.CharsetMode(strings.ToLower(getEnv("CHARSET", string(asciicam.CharsetDense)))),
		Phrase:       getEnv("PHRASE", ""),
		FPS:          getEnvFloat("FPS", 30),
		Width:        getEnvInt("WIDTH", 1280),
		Height:       getEnvInt("HEIGHT", 720),
		Listen:       getEnv("LISTEN", ":8080"),
		Record:       getEnvDuration("RECORD", 5*time.Second),
		Dedupe:       getEnvBool("DEDUPE", true),
		HashDistance: getEnvInt("HASH_DISTANCE", 0),
		Resampler:    getEnv("RESAMPLER", "bilinear"),
		LogLevel:     getEnvLevel("LOG_LEVEL", slog.LevelInfo),
	}
}

// Settings returns the render snapshot described by the configuration.
func (c *Config) Settings() asciicam.Settings {
	return asciicam.Settings{
		Contrast:    c.Contrast,
		Threshold:   c.Threshold,
		Glow:        c.Glow,
		FontSize:    c.FontSize,
		Step:        c.Step,
		OutlineMode: c.Outline,
		CharsetMode: c.Charset,
		WordPhrase:  c.Phrase,
	}
}

// Area returns the output surface size in pixels.
func (c *Config) Area() asciicam.Area {
	return asciicam.Area{Width: float64(c.Width), Height: float64(c.Height)}
}

func getEnv(key, def string) string {
	if v := os.Getenv(Prefix + key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(Prefix + key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(Prefix + key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(Prefix + key); v != "" {
		return v == "true" || v == "1"
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(Prefix + key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

func getEnvLevel(key string, def slog.Level) slog.Level {
	if v := os.Getenv(Prefix + key); v != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(v)); err == nil {
			return l
		}
	}
	return def
}
