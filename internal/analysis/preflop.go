package analysis

import "github.com/lox/headsup/internal/deck"

// PreflopEquity estimates heads-up equity for two hole cards without
// enumerating boards. Pocket pairs scale with rank (22 around 0.52, AA
// around 0.85); unpaired hands start from the average rank and collect
// suited, connectedness, and big-card bonuses. Clamped to [0.3, 0.85].
func PreflopEquity(hole []deck.Card) float64 {
	if len(hole) != 2 {
		return 0
	}

	r1 := rankIndex(hole[0].Rank)
	r2 := rankIndex(hole[1].Rank)
	high, low := r1, r2
	if low > high {
		high, low = low, high
	}
	suited := hole[0].Suit == hole[1].Suit
	gap := high - low

	if r1 == r2 {
		return 0.52 + (float64(high)/12)*0.33
	}

	avg := float64(high+low) / 2
	equity := 0.45 + (avg/12)*0.25

	if suited {
		equity += 0.03
	}

	if gap <= 1 {
		equity += 0.02
	} else if gap <= 3 {
		equity += 0.01
	}

	if high >= 10 {
		equity += 0.05
	}
	if high >= 12 {
		equity += 0.05
	}

	return clamp(equity, 0.3, 0.85)
}

// rankIndex maps Two..Ace onto 0..12.
func rankIndex(r deck.Rank) int {
	return int(r) - 2
}
