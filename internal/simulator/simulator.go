// Package simulator plays automated heads-up matches between two
// registered decision engines and aggregates the results.
package simulator

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/headsup/internal/bot"
	"github.com/lox/headsup/internal/evaluator"
	"github.com/lox/headsup/internal/game"
	"github.com/lox/headsup/internal/history"
	"github.com/lox/headsup/internal/rng"
	"github.com/lox/headsup/internal/statistics"
)

// Config controls a simulated match.
type Config struct {
	PlayerBot   string // engine for seat 0
	OpponentBot string // engine for seat 1

	Hands         int // hand cap; the match may end earlier on a bust
	Seed          uint32
	StartingStack int
	SmallBlind    int
	BigBlind      int

	// HandDelay paces hands for interactive watching. Zero runs flat out.
	HandDelay time.Duration

	Registry bot.Registry
	Logger   *log.Logger
	Clock    quartz.Clock
}

func (c Config) withDefaults() Config {
	if c.Hands == 0 {
		c.Hands = 1000
	}
	if c.StartingStack == 0 {
		c.StartingStack = 200
	}
	if c.SmallBlind == 0 {
		c.SmallBlind = 1
	}
	if c.BigBlind == 0 {
		c.BigBlind = 2
	}
	if c.Registry == nil {
		c.Registry = bot.DefaultRegistry()
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	if c.Clock == nil {
		c.Clock = quartz.NewReal()
	}
	return c
}

// MatchResult is the outcome of one simulated match. Stats are from
// seat 0's perspective.
type MatchResult struct {
	Seed        uint32
	HandsPlayed int
	FinalStacks [2]int
	Status      game.MatchStatus
	Stats       *statistics.Statistics
	History     *history.Log
	Duration    time.Duration
}

// Simulator runs one match per call to Run.
type Simulator struct {
	config Config
}

func New(config Config) (*Simulator, error) {
	config = config.withDefaults()
	if _, ok := config.Registry.Get(config.PlayerBot); !ok {
		return nil, fmt.Errorf("simulator: unknown bot %q", config.PlayerBot)
	}
	if _, ok := config.Registry.Get(config.OpponentBot); !ok {
		return nil, fmt.Errorf("simulator: unknown bot %q", config.OpponentBot)
	}
	return &Simulator{config: config}, nil
}

// Run plays the match to its hand cap or until a player busts. The
// context cancels between actions.
func (s *Simulator) Run(ctx context.Context) (*MatchResult, error) {
	cfg := s.config
	p0, _ := cfg.Registry.Get(cfg.PlayerBot)
	p1, _ := cfg.Registry.Get(cfg.OpponentBot)
	engines := [2]bot.Definition{p0, p1}

	r := rng.NewSeeded(cfg.Seed)
	state := game.InitializeGame(game.Settings{
		PlayerName:    p0.Name,
		OpponentName:  p1.Name,
		PlayerKind:    game.Automated,
		OpponentKind:  game.Automated,
		StartingStack: cfg.StartingStack,
		SmallBlind:    cfg.SmallBlind,
		BigBlind:      cfg.BigBlind,
	})

	hlog := history.NewLog()
	stats := &statistics.Statistics{}
	start := cfg.Clock.Now()

	cfg.Logger.Info("starting match",
		"player", p0.Name, "opponent", p1.Name,
		"hands", cfg.Hands, "seed", cfg.Seed)

	played := 0
	for played < cfg.Hands && !state.Status.Concluded {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		prevStack := state.Players[0].Stack

		next, events, err := game.ApplyAction(state, game.Action{Type: game.StartHand}, r)
		if err != nil {
			return nil, fmt.Errorf("simulator: starting hand %d: %w", played+1, err)
		}
		state = next
		hlog.StartHand(state)
		observe(hlog, events)
		onButton := state.ButtonIndex() == 0

		for !state.HandComplete {
			idx := state.CurrentPlayerIndex
			action := engines[idx].Decide(state, idx, r)
			state, events, err = game.ApplyAction(state, action, r)
			if err != nil {
				return nil, fmt.Errorf("simulator: hand %d, %s played %s: %w",
					state.HandNumber, engines[idx].Name, action, err)
			}
			observe(hlog, events)
			cfg.Logger.Debug("action",
				"hand", state.HandNumber, "street", state.Street,
				"player", engines[idx].Name, "action", action)
		}

		pot := state.Pot
		winner, h0, h1 := resolveHand(state)
		wentToShowdown := state.Street == game.Showdown
		state = game.AwardPot(state, winner)
		hlog.CompleteHand(state, pot, winner, h0, h1)
		played++

		stats.Add(statistics.HandResult{
			NetBB:          float64(state.Players[0].Stack-prevStack) / float64(cfg.BigBlind),
			OnButton:       onButton,
			WentToShowdown: wentToShowdown,
			FinalPotBB:     float64(pot) / float64(cfg.BigBlind),
		})

		if cfg.HandDelay > 0 && played < cfg.Hands && !state.Status.Concluded {
			if err := s.pace(ctx); err != nil {
				return nil, err
			}
		}
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("simulator: %w", err)
	}

	result := &MatchResult{
		Seed:        cfg.Seed,
		HandsPlayed: played,
		FinalStacks: [2]int{state.Players[0].Stack, state.Players[1].Stack},
		Status:      state.Status,
		Stats:       stats,
		History:     hlog,
		Duration:    cfg.Clock.Since(start),
	}

	cfg.Logger.Info("match finished",
		"hands", played,
		"stack", result.FinalStacks[0], "opponentStack", result.FinalStacks[1],
		"bbPerHand", fmt.Sprintf("%.3f", stats.Mean()),
		"duration", result.Duration)

	return result, nil
}

// pace waits out the configured hand delay, honouring cancellation.
func (s *Simulator) pace(ctx context.Context) error {
	timer := s.config.Clock.NewTimer(s.config.HandDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// resolveHand names the winner of a completed hand. Showdown hands are
// nil when someone folded.
func resolveHand(state game.GameState) (int, *evaluator.EvaluatedHand, *evaluator.EvaluatedHand) {
	switch {
	case state.Players[0].Folded:
		return 1, nil, nil
	case state.Players[1].Folded:
		return 0, nil, nil
	default:
		winner, h0, h1 := game.DetermineWinner(state)
		return winner, &h0, &h1
	}
}

func observe(hlog *history.Log, events []game.Event) {
	for _, ev := range events {
		hlog.Observe(ev)
	}
}
