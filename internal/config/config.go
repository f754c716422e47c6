// Package config loads match and batch settings from HCL files.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete simulation configuration.
type Config struct {
	Match MatchSettings  `hcl:"match,block"`
	Batch *BatchSettings `hcl:"batch,block"`
	Bots  []BotConfig    `hcl:"bot,block"`
	Log   *LogSettings   `hcl:"log,block"`
}

// MatchSettings configures a single table.
type MatchSettings struct {
	Hands         int    `hcl:"hands,optional"`
	StartingStack int    `hcl:"starting_stack,optional"`
	SmallBlind    int    `hcl:"small_blind,optional"`
	BigBlind      int    `hcl:"big_blind,optional"`
	Seed          int    `hcl:"seed,optional"`
	PlayerBot     string `hcl:"player_bot,optional"`
	OpponentBot   string `hcl:"opponent_bot,optional"`
	HandDelay     string `hcl:"hand_delay,optional"`
}

// BatchSettings configures parallel table runs.
type BatchSettings struct {
	Tables int `hcl:"tables,optional"`
}

// BotConfig tunes a named engine's personality. Values outside the
// block fall back to the engine's defaults.
type BotConfig struct {
	Name          string   `hcl:"name,label"`
	Engine        string   `hcl:"engine"`
	Aggression    *float64 `hcl:"aggression,optional"`
	BluffFactor   *float64 `hcl:"bluff_factor,optional"`
	RiskTolerance *float64 `hcl:"risk_tolerance,optional"`
}

// LogSettings contains logging configuration.
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Match: MatchSettings{
			Hands:         1000,
			StartingStack: 200,
			SmallBlind:    1,
			BigBlind:      2,
			PlayerBot:     "basic",
			OpponentBot:   "warren",
		},
		Batch: &BatchSettings{Tables: 1},
		Log:   &LogSettings{Level: "info"},
	}
}

// Load reads configuration from an HCL file, falling back to defaults
// when the file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", filename, err)
	}
	return Parse(data, filename)
}

// Parse decodes HCL configuration and applies defaults for missing
// values.
func Parse(data []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parsing %s: %s", filename, diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("config: decoding %s: %s", filename, diags.Error())
	}

	defaults := Default()
	if cfg.Match.Hands == 0 {
		cfg.Match.Hands = defaults.Match.Hands
	}
	if cfg.Match.StartingStack == 0 {
		cfg.Match.StartingStack = defaults.Match.StartingStack
	}
	if cfg.Match.SmallBlind == 0 {
		cfg.Match.SmallBlind = defaults.Match.SmallBlind
	}
	if cfg.Match.BigBlind == 0 {
		cfg.Match.BigBlind = defaults.Match.BigBlind
	}
	if cfg.Match.PlayerBot == "" {
		cfg.Match.PlayerBot = defaults.Match.PlayerBot
	}
	if cfg.Match.OpponentBot == "" {
		cfg.Match.OpponentBot = defaults.Match.OpponentBot
	}
	if cfg.Batch == nil {
		cfg.Batch = defaults.Batch
	}
	if cfg.Batch.Tables == 0 {
		cfg.Batch.Tables = 1
	}
	if cfg.Log == nil {
		cfg.Log = defaults.Log
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return &cfg, nil
}

// ParsedHandDelay returns the hand delay as a duration, zero when
// unset.
func (m MatchSettings) ParsedHandDelay() (time.Duration, error) {
	if m.HandDelay == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(m.HandDelay)
	if err != nil {
		return 0, fmt.Errorf("config: invalid hand_delay %q: %w", m.HandDelay, err)
	}
	return d, nil
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	m := c.Match
	if m.Hands <= 0 {
		return fmt.Errorf("config: hands must be positive, got %d", m.Hands)
	}
	if m.SmallBlind <= 0 {
		return fmt.Errorf("config: small blind must be positive, got %d", m.SmallBlind)
	}
	if m.BigBlind <= m.SmallBlind {
		return fmt.Errorf("config: big blind (%d) must exceed small blind (%d)", m.BigBlind, m.SmallBlind)
	}
	if m.StartingStack < m.BigBlind {
		return fmt.Errorf("config: starting stack (%d) must cover the big blind (%d)", m.StartingStack, m.BigBlind)
	}
	if _, err := m.ParsedHandDelay(); err != nil {
		return err
	}
	if c.Batch.Tables <= 0 {
		return fmt.Errorf("config: tables must be positive, got %d", c.Batch.Tables)
	}

	for _, b := range c.Bots {
		if b.Engine == "" {
			return fmt.Errorf("config: bot %q has no engine", b.Name)
		}
		for name, v := range map[string]*float64{
			"aggression":     b.Aggression,
			"bluff_factor":   b.BluffFactor,
			"risk_tolerance": b.RiskTolerance,
		} {
			if v != nil && (*v < 0 || *v > 1) {
				return fmt.Errorf("config: bot %q: %s must be in [0,1], got %g", b.Name, name, *v)
			}
		}
	}

	return nil
}

// BotByName returns a tuned bot block by label.
func (c *Config) BotByName(name string) *BotConfig {
	for i := range c.Bots {
		if c.Bots[i].Name == name {
			return &c.Bots[i]
		}
	}
	return nil
}
