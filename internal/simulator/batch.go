package simulator

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lox/headsup/internal/statistics"
)

// BatchResult aggregates a set of independent matches. Stats merge
// every table from seat 0's perspective.
type BatchResult struct {
	Tables     []*MatchResult
	Stats      statistics.Statistics
	Wins       [2]int // matches concluded by busting the other seat
	Unfinished int    // matches that hit the hand cap with both alive
	Duration   time.Duration
}

// RunBatch plays the configured match across several tables in
// parallel, each with its own derived seed.
func RunBatch(ctx context.Context, config Config, tables int) (*BatchResult, error) {
	if tables <= 0 {
		tables = 1
	}
	config = config.withDefaults()

	results := make([]*MatchResult, tables)
	start := config.Clock.Now()

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < tables; i++ {
		g.Go(func() error {
			tableConfig := config
			tableConfig.Seed = tableSeed(config.Seed, i)
			tableConfig.Logger = config.Logger.WithPrefix(fmt.Sprintf("table-%d", i+1))

			sim, err := New(tableConfig)
			if err != nil {
				return err
			}
			result, err := sim.Run(ctx)
			if err != nil {
				return fmt.Errorf("table %d: %w", i+1, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	batch := &BatchResult{Tables: results}
	for _, result := range results {
		batch.Stats.Merge(result.Stats)
		if result.Status.Concluded {
			batch.Wins[result.Status.Winner]++
		} else {
			batch.Unfinished++
		}
	}
	batch.Duration = config.Clock.Since(start)

	return batch, nil
}

// tableSeed spreads table seeds with a golden-ratio stride so tables
// never share card sequences.
func tableSeed(base uint32, table int) uint32 {
	return base + uint32(table)*0x9e3779b9
}
