package main

import (
	"github.com/lox/headsup/internal/simulator"
)

// PlayCmd runs a single match on one table.
type PlayCmd struct {
	MatchOptions
	PHH string `name:"phh" help:"Write the hand history to this file in PHH format" type:"path"`
}

func (c *PlayCmd) Run() error {
	logger, err := setupLogger(c.LogLevel)
	if err != nil {
		return err
	}

	simConfig, _, err := c.MatchOptions.resolve(logger)
	if err != nil {
		return err
	}
	simConfig.Logger = logger.WithPrefix("match")

	sim, err := simulator.New(simConfig)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	result, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	printMatchSummary(result, simConfig)

	if c.PHH != "" {
		if err := writePHH(result, c.PHH); err != nil {
			return err
		}
		logger.Info("wrote hand history", "path", c.PHH, "hands", result.History.Len())
	}
	return nil
}
