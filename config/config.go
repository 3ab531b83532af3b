package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/devbydaniel/minutes/internal/domain/membership"
)

// Interactive modes for resolving join decisions.
const (
	InteractiveAuto   = "auto"   // prompt only when stdin is a terminal
	InteractiveAlways = "always" // always prompt
	InteractiveNever  = "never"  // decline every decision
)

type Config struct {
	MinutesDir       string
	Group            string // minutes group holding the ledger, e.g. "bod"
	Threshold        int    // attendances needed before a member is offered a seat
	AttendanceHeader string
	IDWidth          int
	Interactive      string
	AnswersFile      string // optional YAML file of pre-recorded answers
	LogLevel         string
}

type fileConfig struct {
	MinutesDir       string `toml:"minutes_dir"`
	Group            string `toml:"group"`
	Threshold        int    `toml:"threshold"`
	AttendanceHeader string `toml:"attendance_header"`
	IDWidth          int    `toml:"id_width"`
	Interactive      string `toml:"interactive"`
	AnswersFile      string `toml:"answers_file"`
	LogLevel         string `toml:"log_level"`
}

func Default() *Config {
	return &Config{
		MinutesDir:       defaultMinutesDir(),
		Group:            "bod",
		Threshold:        membership.DefaultThreshold,
		AttendanceHeader: membership.DefaultAttendanceHeader,
		IDWidth:          membership.DefaultIDWidth,
		Interactive:      InteractiveAuto,
		LogLevel:         "warn",
	}
}

func Load() (*Config, error) {
	cfg := Default()

	if configPath := configFilePath(); configPath != "" {
		if err := cfg.loadFile(configPath); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) loadFile(path string) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if fc.MinutesDir != "" {
		cfg.MinutesDir = expandTilde(fc.MinutesDir)
	}
	if fc.Group != "" {
		cfg.Group = fc.Group
	}
	if fc.Threshold != 0 {
		cfg.Threshold = fc.Threshold
	}
	if fc.AttendanceHeader != "" {
		cfg.AttendanceHeader = fc.AttendanceHeader
	}
	if fc.IDWidth != 0 {
		cfg.IDWidth = fc.IDWidth
	}
	if fc.Interactive != "" {
		cfg.Interactive = fc.Interactive
	}
	if fc.AnswersFile != "" {
		cfg.AnswersFile = expandTilde(fc.AnswersFile)
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	return nil
}

func (cfg *Config) applyEnvOverrides() error {
	if v := os.Getenv("MINUTES_DIR"); v != "" {
		cfg.MinutesDir = expandTilde(v)
	}
	if v := os.Getenv("MINUTES_GROUP"); v != "" {
		cfg.Group = v
	}
	if v := os.Getenv("MINUTES_THRESHOLD"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MINUTES_THRESHOLD: %w", err)
		}
		cfg.Threshold = n
	}
	if v := os.Getenv("MINUTES_INTERACTIVE"); v != "" {
		cfg.Interactive = v
	}
	if v := os.Getenv("MINUTES_ANSWERS_FILE"); v != "" {
		cfg.AnswersFile = expandTilde(v)
	}
	if v := os.Getenv("MINUTES_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

// Validate rejects settings that would silently change membership results.
func (cfg *Config) Validate() error {
	if cfg.Threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %d", cfg.Threshold)
	}
	if cfg.IDWidth <= 0 {
		return fmt.Errorf("id_width must be positive, got %d", cfg.IDWidth)
	}
	if cfg.Group == "" || strings.ContainsAny(cfg.Group, `/\`) {
		return fmt.Errorf("group must be a single directory name, got %q", cfg.Group)
	}
	if strings.TrimSpace(cfg.AttendanceHeader) == "" {
		return fmt.Errorf("attendance_header must not be empty")
	}
	switch cfg.Interactive {
	case InteractiveAuto, InteractiveAlways, InteractiveNever:
	default:
		return fmt.Errorf("interactive must be one of auto, always, never; got %q", cfg.Interactive)
	}
	return nil
}

func configFilePath() string {
	var configDir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, "minutes")
	} else if home, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(home, ".config", "minutes")
	} else {
		return ""
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func defaultMinutesDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "minutes")
	}
	return filepath.Join(".", "minutes")
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
