// Package statistics aggregates per-hand match results in big blinds
// per hand, with seat and showdown breakdowns for batch reporting.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// HandResult is the outcome of a single hand from one player's point of
// view.
type HandResult struct {
	NetBB          float64 // net big blinds won or lost
	OnButton       bool    // seat held for the hand
	WentToShowdown bool
	FinalPotBB     float64
}

// SeatStats accumulates results for one seat (button or big blind).
type SeatStats struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
}

func (s SeatStats) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Statistics tracks win-rate analytics across a batch of hands.
type Statistics struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
	Values []float64

	// Showdown vs fold-equity breakdown; the BB buckets include losses
	// so they sum to the total ledger.
	ShowdownWins    int
	NonShowdownWins int
	ShowdownBB      float64
	NonShowdownBB   float64
	AllBB           float64

	Button   SeatStats
	BigBlind SeatStats

	MaxPotBB  float64
	BigPots   int // pots of at least 50 big blinds
	BigPotsBB float64
}

// Add incorporates one hand result.
func (s *Statistics) Add(result HandResult) {
	net := result.NetBB
	s.Hands++
	s.SumBB += net
	s.SumBB2 += net * net
	s.Values = append(s.Values, net)

	if net > 0 {
		if result.WentToShowdown {
			s.ShowdownWins++
		} else {
			s.NonShowdownWins++
		}
	}

	if result.WentToShowdown {
		s.ShowdownBB += net
	} else {
		s.NonShowdownBB += net
	}
	s.AllBB += net

	seat := &s.BigBlind
	if result.OnButton {
		seat = &s.Button
	}
	seat.Hands++
	seat.SumBB += net
	seat.SumBB2 += net * net

	if result.FinalPotBB > s.MaxPotBB {
		s.MaxPotBB = result.FinalPotBB
	}
	if result.FinalPotBB >= 50 {
		s.BigPots++
		s.BigPotsBB += net
	}
}

// Mean returns big blinds won per hand.
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance of per-hand results.
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the
// mean win rate.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median per-hand result.
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the linearly interpolated value at p in [0,1].
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Merge folds another statistics block into this one, for combining
// per-table results after a parallel batch.
func (s *Statistics) Merge(other *Statistics) {
	s.Hands += other.Hands
	s.SumBB += other.SumBB
	s.SumBB2 += other.SumBB2
	s.Values = append(s.Values, other.Values...)

	s.ShowdownWins += other.ShowdownWins
	s.NonShowdownWins += other.NonShowdownWins
	s.ShowdownBB += other.ShowdownBB
	s.NonShowdownBB += other.NonShowdownBB
	s.AllBB += other.AllBB

	s.Button.Hands += other.Button.Hands
	s.Button.SumBB += other.Button.SumBB
	s.Button.SumBB2 += other.Button.SumBB2
	s.BigBlind.Hands += other.BigBlind.Hands
	s.BigBlind.SumBB += other.BigBlind.SumBB
	s.BigBlind.SumBB2 += other.BigBlind.SumBB2

	if other.MaxPotBB > s.MaxPotBB {
		s.MaxPotBB = other.MaxPotBB
	}
	s.BigPots += other.BigPots
	s.BigPotsBB += other.BigPotsBB
}

// IsLedgerBalanced checks that the showdown split accounts for every
// big blind.
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllBB-s.ShowdownBB-s.NonShowdownBB) <= 1e-6
}

// Validate checks internal consistency of the aggregates.
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: all=%.6f showdown=%.6f non-showdown=%.6f",
			s.AllBB, s.ShowdownBB, s.NonShowdownBB)
	}

	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}

	if len(s.Values) != s.Hands {
		return fmt.Errorf("values length (%d) does not match hands count (%d)", len(s.Values), s.Hands)
	}

	if wins := s.ShowdownWins + s.NonShowdownWins; wins > s.Hands {
		return fmt.Errorf("total wins (%d) exceeds total hands (%d)", wins, s.Hands)
	}

	if seatHands := s.Button.Hands + s.BigBlind.Hands; seatHands != s.Hands {
		return fmt.Errorf("seat hands total (%d) does not match total hands (%d)", seatHands, s.Hands)
	}

	return nil
}
