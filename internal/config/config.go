package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// DefaultFile is the project-local config file name
const DefaultFile = ".kingdoms.yml"

// EnvPrefix prefixes environment overrides. Nested keys use a double
// underscore: KINGDOMS_TOOLTIP__MAX_WIDTH=40 sets tooltip.max_width.
const EnvPrefix = "KINGDOMS_"

// Config represents the full kingdoms configuration
type Config struct {
	Source  SourceConfig  `yaml:"source" koanf:"source"`
	History HistoryConfig `yaml:"history" koanf:"history"`
	Tooltip TooltipConfig `yaml:"tooltip" koanf:"tooltip"`
	UI      UIConfig      `yaml:"ui" koanf:"ui"`
}

// SourceConfig controls where standings are loaded from
type SourceConfig struct {
	// Path is a local .json/.yaml file or an http(s) URL
	Path           string `yaml:"path" koanf:"path"`
	RefreshSeconds int    `yaml:"refresh_seconds" koanf:"refresh_seconds"`
	TimeoutSeconds int    `yaml:"timeout_seconds" koanf:"timeout_seconds"`
}

// HistoryConfig controls the rank history database
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled" koanf:"enabled"`
	Path    string `yaml:"path" koanf:"path"`
}

// TooltipConfig holds tooltip behaviour. Spacing values are in cells.
type TooltipConfig struct {
	Mode             string `yaml:"mode" koanf:"mode"`
	PreferPosition   string `yaml:"prefer_position" koanf:"prefer_position"`
	MaxWidth         int    `yaml:"max_width" koanf:"max_width"`
	AccentColor      string `yaml:"accent_color" koanf:"accent_color"`
	Margin           int    `yaml:"margin" koanf:"margin"`
	EdgePad          int    `yaml:"edge_pad" koanf:"edge_pad"`
	FlipSlack        int    `yaml:"flip_slack" koanf:"flip_slack"`
	ScrollDebounceMs int    `yaml:"scroll_debounce_ms" koanf:"scroll_debounce_ms"`
	ArmDelayMs       int    `yaml:"arm_delay_ms" koanf:"arm_delay_ms"`
}

// UIConfig contains dashboard display settings
type UIConfig struct {
	DefaultView      string `yaml:"default_view" koanf:"default_view"`
	ShowAchievements bool   `yaml:"show_achievements" koanf:"show_achievements"`
}

// RefreshInterval returns the auto-refresh period, or 0 when disabled
func (s SourceConfig) RefreshInterval() time.Duration {
	if s.RefreshSeconds <= 0 {
		return 0
	}
	return time.Duration(s.RefreshSeconds) * time.Second
}

// Timeout returns the fetch timeout
func (s SourceConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// ScrollDebounce returns the scroll dismissal debounce
func (t TooltipConfig) ScrollDebounce() time.Duration {
	return time.Duration(t.ScrollDebounceMs) * time.Millisecond
}

// ArmDelay returns the outside-click arming delay
func (t TooltipConfig) ArmDelay() time.Duration {
	return time.Duration(t.ArmDelayMs) * time.Millisecond
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Source: SourceConfig{
			Path:           "kingdoms.json",
			RefreshSeconds: 60,
			TimeoutSeconds: 10,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    filepath.Join(homeDir, ".kingdoms", "history.db"),
		},
		Tooltip: TooltipConfig{
			Mode:             "hover",
			PreferPosition:   "auto",
			MaxWidth:         36,
			AccentColor:      "#8bd5ca",
			Margin:           0,
			EdgePad:          1,
			FlipSlack:        1,
			ScrollDebounceMs: 50,
			ArmDelayMs:       100,
		},
		UI: UIConfig{
			DefaultView:      "board",
			ShowAchievements: true,
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (KINGDOMS_*). A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return MergeWithDefaults(cfg), nil
}

// envKey maps KINGDOMS_TOOLTIP__MAX_WIDTH to tooltip.max_width
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// MergeWithDefaults fills in missing values with defaults. Spacing and
// tooltip timing fields are left alone since zero is a meaningful value for
// them: a zero arm delay or scroll debounce turns that guard off. Load
// starts from DefaultConfig, so only an explicit zero reaches here.
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.Source.Path == "" {
		cfg.Source.Path = defaults.Source.Path
	}
	if cfg.Source.TimeoutSeconds == 0 {
		cfg.Source.TimeoutSeconds = defaults.Source.TimeoutSeconds
	}

	if cfg.History.Path == "" {
		cfg.History.Path = defaults.History.Path
	}

	if cfg.Tooltip.Mode == "" {
		cfg.Tooltip.Mode = defaults.Tooltip.Mode
	}
	if cfg.Tooltip.PreferPosition == "" {
		cfg.Tooltip.PreferPosition = defaults.Tooltip.PreferPosition
	}
	if cfg.Tooltip.MaxWidth == 0 {
		cfg.Tooltip.MaxWidth = defaults.Tooltip.MaxWidth
	}
	if cfg.Tooltip.AccentColor == "" {
		cfg.Tooltip.AccentColor = defaults.Tooltip.AccentColor
	}

	if cfg.UI.DefaultView == "" {
		cfg.UI.DefaultView = defaults.UI.DefaultView
	}

	return cfg
}

var validModes = map[string]bool{
	"hover":   true,
	"pointer": true,
	"tap":     true,
	"touch":   true,
}

var validPositions = map[string]bool{
	"auto":   true,
	"top":    true,
	"bottom": true,
}

var validViews = map[string]bool{
	"board": true,
	"table": true,
}

// Validate checks that the configuration contains valid values
func (c *Config) Validate() error {
	if c.Source.Path == "" {
		return fmt.Errorf("source.path is required")
	}
	if c.Source.RefreshSeconds < 0 {
		return fmt.Errorf("source.refresh_seconds must be non-negative")
	}
	if c.Source.TimeoutSeconds <= 0 {
		return fmt.Errorf("source.timeout_seconds must be positive")
	}

	if c.History.Enabled && c.History.Path == "" {
		return fmt.Errorf("history.path is required when history is enabled")
	}

	if !validModes[c.Tooltip.Mode] {
		return fmt.Errorf("invalid tooltip.mode %q: must be one of hover, tap", c.Tooltip.Mode)
	}
	if !validPositions[c.Tooltip.PreferPosition] {
		return fmt.Errorf("invalid tooltip.prefer_position %q: must be one of auto, top, bottom", c.Tooltip.PreferPosition)
	}
	if c.Tooltip.MaxWidth <= 0 {
		return fmt.Errorf("tooltip.max_width must be positive")
	}
	if c.Tooltip.Margin < 0 || c.Tooltip.EdgePad < 0 || c.Tooltip.FlipSlack < 0 {
		return fmt.Errorf("tooltip spacing must be non-negative")
	}
	if c.Tooltip.ScrollDebounceMs < 0 || c.Tooltip.ArmDelayMs < 0 {
		return fmt.Errorf("tooltip timings must be non-negative")
	}

	if !validViews[c.UI.DefaultView] {
		return fmt.Errorf("invalid ui.default_view %q: must be one of board, table", c.UI.DefaultView)
	}

	return nil
}
