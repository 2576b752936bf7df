package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/pawpal/core/metrics"
	"github.com/kilianp07/pawpal/core/planner"
)

// Config is the root configuration document.
type Config struct {
	Planner PlannerConfig  `json:"planner"`
	Metrics metrics.Config `json:"metrics"`
}

// PlannerConfig defines planning parameters loaded from configuration.
type PlannerConfig struct {
	// Policy selects the task ordering strategy.
	Policy string `json:"policy"`
	// DayStart is the local time of day the schedule starts at, "HH:MM".
	DayStart string `json:"day_start"`
	// ExcludeCompleted filters completed tasks out before packing.
	ExcludeCompleted bool `json:"exclude_completed"`
	// CrossPetAdvisory enables owner-attention conflict advisories.
	CrossPetAdvisory bool `json:"cross_pet_advisory"`
}

// SetDefaults applies sane defaults.
func (c *PlannerConfig) SetDefaults() {
	if c.Policy == "" {
		c.Policy = string(planner.PriorityFirst)
	}
	if c.DayStart == "" {
		c.DayStart = "08:00"
	}
}

// Validate checks the policy name and the day-start clock value.
func (c PlannerConfig) Validate() error {
	known := false
	for _, p := range planner.Policies() {
		if string(p) == c.Policy {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %q", planner.ErrUnknownPolicy, c.Policy)
	}
	if _, err := time.Parse("15:04", c.DayStart); err != nil {
		return fmt.Errorf("day_start must be HH:MM: %w", err)
	}
	return nil
}

// Core converts the section into the planner's own configuration.
func (c PlannerConfig) Core() planner.Config {
	return planner.Config{
		Policy:           planner.Policy(c.Policy),
		ExcludeCompleted: c.ExcludeCompleted,
		CrossPetAdvisory: c.CrossPetAdvisory,
	}
}

// DayStartOn anchors the configured clock time on the given date.
func (c PlannerConfig) DayStartOn(date time.Time) (time.Time, error) {
	clock, err := time.Parse("15:04", c.DayStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("day_start must be HH:MM: %w", err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, date.Location()), nil
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.Planner.SetDefaults()
	cfg.Metrics.SetDefaults()
	return cfg
}

// Load reads configuration from a JSON or YAML file with optional
// environment overrides using the PAWPAL_ prefix and "__" as the key
// separator.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("PAWPAL_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "pawpal_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Planner.SetDefaults()
	cfg.Metrics.SetDefaults()
	if err := cfg.Planner.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
