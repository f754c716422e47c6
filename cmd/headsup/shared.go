package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/headsup/internal/bot"
	"github.com/lox/headsup/internal/config"
	"github.com/lox/headsup/internal/fileutil"
	"github.com/lox/headsup/internal/simulator"
)

// setupLogger builds the CLI logger at the requested level.
func setupLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
	}), nil
}

// signalContext cancels on interrupt or termination.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// buildRegistry starts from the built-in engines and layers on any
// tuned bot blocks from the config file.
func buildRegistry(cfg *config.Config) (bot.Registry, error) {
	registry := bot.DefaultRegistry()
	for _, b := range cfg.Bots {
		base, ok := registry.Get(b.Engine)
		if !ok {
			return nil, fmt.Errorf("bot %q: unknown engine %q (available: %v)", b.Name, b.Engine, registry.IDs())
		}

		def := base
		def.ID = b.Name
		if b.Engine == "warren" {
			p := bot.DefaultPersonality
			if b.Aggression != nil {
				p.Aggression = *b.Aggression
			}
			if b.BluffFactor != nil {
				p.BluffFactor = *b.BluffFactor
			}
			if b.RiskTolerance != nil {
				p.RiskTolerance = *b.RiskTolerance
			}
			tuned := bot.AdvancedWithPersonality(p)
			def.Decide = tuned.Decide
		}
		registry[def.ID] = def
	}
	return registry, nil
}

// MatchOptions are the flags shared by play and simulate.
type MatchOptions struct {
	Config   string        `help:"HCL config file" type:"path" default:"headsup.hcl"`
	Hands    int           `help:"Hands to play before stopping (overrides config)"`
	Player   string        `help:"Engine for seat 0 (overrides config)"`
	Opponent string        `help:"Engine for seat 1 (overrides config)"`
	Seed     int64         `help:"Deterministic RNG seed (0 picks one from the clock)"`
	Stack    int           `help:"Starting stack in chips (overrides config)"`
	Delay    time.Duration `help:"Pause between hands (overrides config)"`
	LogLevel string        `default:"info" help:"Log level (debug|info|warn|error)"`
}

// resolve merges flags over the loaded config and produces a simulator
// config plus the table count.
func (o MatchOptions) resolve(logger *log.Logger) (simulator.Config, int, error) {
	cfg, err := config.Load(o.Config)
	if err != nil {
		return simulator.Config{}, 0, err
	}

	if o.Hands > 0 {
		cfg.Match.Hands = o.Hands
	}
	if o.Player != "" {
		cfg.Match.PlayerBot = o.Player
	}
	if o.Opponent != "" {
		cfg.Match.OpponentBot = o.Opponent
	}
	if o.Seed != 0 {
		cfg.Match.Seed = int(o.Seed)
	}
	if o.Stack > 0 {
		cfg.Match.StartingStack = o.Stack
	}
	if o.Delay > 0 {
		cfg.Match.HandDelay = o.Delay.String()
	}
	if err := cfg.Validate(); err != nil {
		return simulator.Config{}, 0, err
	}

	registry, err := buildRegistry(cfg)
	if err != nil {
		return simulator.Config{}, 0, err
	}

	seed := uint32(cfg.Match.Seed)
	if seed == 0 {
		seed = uint32(time.Now().UnixNano())
		logger.Info("using random seed", "seed", seed)
	}

	delay, err := cfg.Match.ParsedHandDelay()
	if err != nil {
		return simulator.Config{}, 0, err
	}

	simConfig := simulator.Config{
		PlayerBot:     cfg.Match.PlayerBot,
		OpponentBot:   cfg.Match.OpponentBot,
		Hands:         cfg.Match.Hands,
		Seed:          seed,
		StartingStack: cfg.Match.StartingStack,
		SmallBlind:    cfg.Match.SmallBlind,
		BigBlind:      cfg.Match.BigBlind,
		HandDelay:     delay,
		Registry:      registry,
		Logger:        logger,
	}
	return simConfig, cfg.Batch.Tables, nil
}

// writePHH exports a match's hand history atomically, so a watching
// process never reads a half-written file.
func writePHH(result *simulator.MatchResult, path string) error {
	var buf bytes.Buffer
	if err := result.History.ExportPHH(&buf); err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644)
}
