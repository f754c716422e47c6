// Package analysis estimates relative hand strength. Postflop equity is
// computed by exhaustive enumeration of opponent holdings rather than
// sampling, so results are exact for a fixed board.
package analysis

import (
	"github.com/lox/headsup/internal/classification"
	"github.com/lox/headsup/internal/deck"
	"github.com/lox/headsup/internal/evaluator"
)

// StrengthCategory buckets an equity value for decision making.
type StrengthCategory int

const (
	VeryWeak StrengthCategory = iota
	Weak
	Medium
	Strong
	VeryStrong
	Nuts
)

func (sc StrengthCategory) String() string {
	switch sc {
	case Nuts:
		return "nuts"
	case VeryStrong:
		return "very-strong"
	case Strong:
		return "strong"
	case Medium:
		return "medium"
	case Weak:
		return "weak"
	case VeryWeak:
		return "very-weak"
	default:
		return "unknown"
	}
}

// HandStrength computes exact equity against every possible two-card
// opponent holding with the community cards fixed. Ties count as half a
// win, so the result is (wins + 0.5*ties) / total in [0, 1].
func HandStrength(hole, community []deck.Card) float64 {
	our := evaluator.Evaluate(combine(hole, community))
	available := remainingCards(hole, community)

	var wins, ties, total int
	for i := 0; i < len(available); i++ {
		for j := i + 1; j < len(available); j++ {
			opp := evaluator.Evaluate(combine([]deck.Card{available[i], available[j]}, community))
			result := evaluator.Compare(our, opp)
			if result > 0 {
				wins++
			} else if result == 0 {
				ties++
			}
			total++
		}
	}

	return (float64(wins) + 0.5*float64(ties)) / float64(total)
}

// Categorize buckets an equity value.
func Categorize(strength float64) StrengthCategory {
	switch {
	case strength >= 0.95:
		return Nuts
	case strength >= 0.8:
		return VeryStrong
	case strength >= 0.6:
		return Strong
	case strength >= 0.4:
		return Medium
	case strength >= 0.2:
		return Weak
	default:
		return VeryWeak
	}
}

// IsNuts reports whether the holding beats effectively every opponent
// combination on the board.
func IsNuts(hole, community []deck.Card) bool {
	return HandStrength(hole, community) >= 0.999
}

// EffectiveStrength adjusts raw equity for board texture: strong hands
// lose value on very dangerous boards, marginal hands gain on dry ones.
// Preflop (no community cards) falls back to the closed-form estimate.
func EffectiveStrength(hole, community []deck.Card) float64 {
	if len(community) == 0 {
		return PreflopEquity(hole)
	}

	strength := HandStrength(hole, community)

	switch classification.AnalyzeDanger(community) {
	case classification.VeryDangerousBoard:
		strength -= 0.05
	case classification.DryBoard:
		strength += 0.05
	}

	return clamp(strength, 0, 1)
}

// Potential describes how a hand may change on future streets.
type Potential struct {
	Current  float64
	Positive float64 // chance of improving when behind or tied
	Negative float64 // chance of falling behind when ahead
}

// PotentialStrength samples opponent holdings and future cards to
// estimate how often the hand improves past a currently-better holding
// or gets outdrawn. On the river there is nothing left to come.
func PotentialStrength(hole, community []deck.Card) Potential {
	current := HandStrength(hole, community)
	if len(community) >= 5 {
		return Potential{Current: current}
	}

	available := remainingCards(hole, community)
	our := evaluator.Evaluate(combine(hole, community))

	var ahead, tied, behind int
	var improveWhenBehind, improveWhenTied, worsenWhenAhead float64

	// Stride-2 sampling keeps the future-card enumeration tractable
	// while still touching the whole range of opponent holdings.
	for i := 0; i < len(available) && i < 50; i += 2 {
		for j := i + 1; j < len(available) && j < 51; j += 2 {
			oppCards := []deck.Card{available[i], available[j]}
			opp := evaluator.Evaluate(combine(oppCards, community))
			now := evaluator.Compare(our, opp)

			switch {
			case now > 0:
				ahead++
			case now == 0:
				tied++
			default:
				behind++
			}

			var improve, worsen, futureTotal int
			for k := 0; k < len(available) && futureTotal < 20; k++ {
				future := available[k]
				if future == oppCards[0] || future == oppCards[1] {
					continue
				}

				nextCommunity := append(append([]deck.Card{}, community...), future)
				ourFuture := evaluator.Evaluate(combine(hole, nextCommunity))
				oppFuture := evaluator.Evaluate(combine(oppCards, nextCommunity))
				later := evaluator.Compare(ourFuture, oppFuture)

				if now <= 0 && later > 0 {
					improve++
				} else if now > 0 && later <= 0 {
					worsen++
				}
				futureTotal++
			}

			if futureTotal == 0 {
				continue
			}
			switch {
			case now < 0:
				improveWhenBehind += float64(improve) / float64(futureTotal)
			case now == 0:
				improveWhenTied += float64(improve) / float64(futureTotal)
			default:
				worsenWhenAhead += float64(worsen) / float64(futureTotal)
			}
		}
	}

	var positive float64
	if ahead == 0 && behind > 0 {
		positive = improveWhenBehind / float64(behind)
	}
	if tied > 0 {
		positive += (improveWhenTied / float64(tied)) * 0.5
	}

	var negative float64
	if ahead > 0 {
		negative = worsenWhenAhead / float64(ahead)
	}

	return Potential{Current: current, Positive: positive, Negative: negative}
}

func combine(a, b []deck.Card) []deck.Card {
	out := make([]deck.Card, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

func remainingCards(hole, community []deck.Card) []deck.Card {
	used := make(map[deck.Card]bool, len(hole)+len(community))
	for _, c := range hole {
		used[c] = true
	}
	for _, c := range community {
		used[c] = true
	}

	out := make([]deck.Card, 0, 52-len(used))
	for suit := deck.Hearts; suit <= deck.Spades; suit++ {
		for rank := deck.Two; rank <= deck.Ace; rank++ {
			card := deck.NewCard(rank, suit)
			if !used[card] {
				out = append(out, card)
			}
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
