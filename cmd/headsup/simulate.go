package main

import (
	"github.com/lox/headsup/internal/simulator"
)

// SimulateCmd runs the configured match across parallel tables.
type SimulateCmd struct {
	MatchOptions
	Tables int `help:"Number of tables to run in parallel (overrides config)"`
}

func (c *SimulateCmd) Run() error {
	logger, err := setupLogger(c.LogLevel)
	if err != nil {
		return err
	}

	simConfig, tables, err := c.MatchOptions.resolve(logger)
	if err != nil {
		return err
	}
	if c.Tables > 0 {
		tables = c.Tables
	}

	ctx, cancel := signalContext()
	defer cancel()

	batch, err := simulator.RunBatch(ctx, simConfig, tables)
	if err != nil {
		return err
	}

	printBatchSummary(batch, simConfig, tables)
	return nil
}
