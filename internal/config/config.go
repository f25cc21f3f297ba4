package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

type Config struct {
	Seed           int64
	HumanMarker    string
	ComputerMarker string
	Color          bool
	LogLevel       string
}

var AppConfig *Config

const filler = "#"

func LoadConfig() (*Config, error) {
	logLevel := GetEnv("LOG_LEVEL", "warn")
	if GetEnvAsBool("DEBUG", false) {
		logLevel = "debug"
	}

	cfg := &Config{
		Seed:           GetEnvAsInt64("C4_SEED", 0),
		HumanMarker:    strings.TrimSpace(GetEnv("C4_HUMAN_MARKER", "O")),
		ComputerMarker: strings.TrimSpace(GetEnv("C4_AI_MARKER", "X")),
		Color:          GetEnvAsBool("C4_COLOR", true),
		LogLevel:       logLevel,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	AppConfig = cfg
	return AppConfig, nil
}

// Validate ensures each marker is one visible character, distinct from the
// other marker and from the empty-cell filler.
func (c *Config) Validate() error {
	for name, m := range map[string]string{"C4_HUMAN_MARKER": c.HumanMarker, "C4_AI_MARKER": c.ComputerMarker} {
		if utf8.RuneCountInString(m) != 1 {
			return fmt.Errorf("invalid %s %q: must be a single character", name, m)
		}
		if m == filler {
			return fmt.Errorf("invalid %s %q: reserved for empty cells", name, m)
		}
	}
	if c.HumanMarker == c.ComputerMarker {
		return fmt.Errorf("C4_HUMAN_MARKER and C4_AI_MARKER must differ, both are %q", c.HumanMarker)
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		slog.Warn(fmt.Sprintf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue),
			slog.String("component", "config"))
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		slog.Warn(fmt.Sprintf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue),
			slog.String("component", "config"))
		return defaultValue
	}
	return value
}
