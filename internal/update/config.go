package update

import (
	"log/slog"
	"os"
	"strings"
)

type RuntimeConfig struct {
	// InitialDate is YYYY-MM-DD or YYYY-MM. Empty means today.
	InitialDate    string
	TrimWeeks      bool
	HighlightToday bool
	LogFile        string
	LogLevel       string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		InitialDate:    "",
		TrimWeeks:      false,
		HighlightToday: true,
		LogFile:        "",
		LogLevel:       "info",
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("CALVIEW_INITIAL_DATE"); ok {
		cfg.InitialDate = v
	}
	if v, ok := getEnvBool("CALVIEW_TRIM_WEEKS"); ok {
		cfg.TrimWeeks = v
	}
	if v, ok := getEnvBool("CALVIEW_HIGHLIGHT_TODAY"); ok {
		cfg.HighlightToday = v
	}
	if v, ok := getEnvString("CALVIEW_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvString("CALVIEW_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	return cfg
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c RuntimeConfig) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
