package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/headsup/internal/simulator"
	"github.com/lox/headsup/internal/statistics"
)

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func row(label, value string) {
	fmt.Printf("  %s %s\n", labelStyle.Render(fmt.Sprintf("%-14s", label)), value)
}

// signedBB colours a big-blind amount by its sign.
func signedBB(v float64) string {
	style := winStyle
	if v < 0 {
		style = lossStyle
	}
	return style.Render(fmt.Sprintf("%+.3f", v))
}

func printMatchSummary(result *simulator.MatchResult, cfg simulator.Config) {
	p0, _ := cfg.Registry.Get(cfg.PlayerBot)
	p1, _ := cfg.Registry.Get(cfg.OpponentBot)

	fmt.Printf("\n%s\n", headerStyle.Render(fmt.Sprintf("%s vs %s", p0.Name, p1.Name)))
	row("hands", fmt.Sprintf("%d", result.HandsPlayed))
	row("stacks", fmt.Sprintf("%d / %d", result.FinalStacks[0], result.FinalStacks[1]))

	switch {
	case result.Status.Concluded && result.Status.Winner == 0:
		row("result", winStyle.Render(p0.Name+" wins"))
	case result.Status.Concluded:
		row("result", lossStyle.Render(p1.Name+" wins"))
	default:
		row("result", mutedStyle.Render("hand cap reached"))
	}

	row("bb/hand", signedBB(result.Stats.Mean()))
	row("duration", result.Duration.Round(time.Millisecond).String())
	fmt.Println()
}

func printBatchSummary(batch *simulator.BatchResult, cfg simulator.Config, tables int) {
	p0, _ := cfg.Registry.Get(cfg.PlayerBot)
	p1, _ := cfg.Registry.Get(cfg.OpponentBot)
	stats := &batch.Stats

	fmt.Printf("\n%s\n", headerStyle.Render(
		fmt.Sprintf("%s vs %s over %d tables", p0.Name, p1.Name, tables)))

	row("hands", fmt.Sprintf("%d", stats.Hands))
	row("matches", fmt.Sprintf("%s %d, %s %d, %s %d",
		winStyle.Render(p0.Name), batch.Wins[0],
		lossStyle.Render(p1.Name), batch.Wins[1],
		mutedStyle.Render("unfinished"), batch.Unfinished))

	printStats(stats)

	row("duration", batch.Duration.Round(time.Millisecond).String())
	if secs := batch.Duration.Seconds(); secs > 0 {
		row("throughput", fmt.Sprintf("%.0f hands/sec", float64(stats.Hands)/secs))
	}
	fmt.Println()
}

// printStats reports win-rate analytics from seat 0's perspective.
func printStats(stats *statistics.Statistics) {
	lo, hi := stats.ConfidenceInterval95()
	row("bb/hand", fmt.Sprintf("%s %s", signedBB(stats.Mean()),
		mutedStyle.Render(fmt.Sprintf("(95%% CI %+.3f to %+.3f)", lo, hi))))
	row("std dev", fmt.Sprintf("%.3f", stats.StdDev()))
	row("median", fmt.Sprintf("%+.3f", stats.Median()))
	row("p5 / p95", fmt.Sprintf("%+.3f / %+.3f", stats.Percentile(0.05), stats.Percentile(0.95)))

	row("showdown", fmt.Sprintf("%s bb over %d wins", signedBB(stats.ShowdownBB), stats.ShowdownWins))
	row("non-showdown", fmt.Sprintf("%s bb over %d wins", signedBB(stats.NonShowdownBB), stats.NonShowdownWins))

	row("button", fmt.Sprintf("%s bb/hand (%d hands)", signedBB(stats.Button.Mean()), stats.Button.Hands))
	row("big blind", fmt.Sprintf("%s bb/hand (%d hands)", signedBB(stats.BigBlind.Mean()), stats.BigBlind.Hands))

	row("max pot", fmt.Sprintf("%.1f bb", stats.MaxPotBB))
	if stats.BigPots > 0 {
		row("big pots", fmt.Sprintf("%d of 50bb+, %s bb net", stats.BigPots, signedBB(stats.BigPotsBB)))
	}
}
