package game

import (
	"github.com/lox/headsup/internal/deck"
	"github.com/lox/headsup/internal/evaluator"
)

// SplitPot is the winner sentinel for an exact tie.
const SplitPot = -1

// DetermineWinner evaluates both seven-card hands at showdown and
// returns 0, 1, or SplitPot, along with both evaluations.
func DetermineWinner(state GameState) (int, evaluator.EvaluatedHand, evaluator.EvaluatedHand) {
	h0 := evaluator.Evaluate(withCommunity(state.Players[0].HoleCards, state.CommunityCards))
	h1 := evaluator.Evaluate(withCommunity(state.Players[1].HoleCards, state.CommunityCards))

	switch result := evaluator.Compare(h0, h1); {
	case result > 0:
		return 0, h0, h1
	case result < 0:
		return 1, h0, h1
	default:
		return SplitPot, h0, h1
	}
}

// AwardPot credits the pot to the winner, or splits it on a tie with
// the odd chip going to the button for a deterministic tie-break. The
// match concludes the instant a stack is driven to zero.
func AwardPot(state GameState, winner int) GameState {
	s := state.clone()

	if winner == SplitPot {
		split := s.Pot / 2
		s.Players[0].Stack += split
		s.Players[1].Stack += split
		s.Players[s.ButtonIndex()].Stack += s.Pot % 2
	} else {
		s.Players[winner].Stack += s.Pot
	}

	s.Pot = 0

	if s.Players[0].Stack <= 0 {
		s.Status = MatchStatus{Concluded: true, Winner: 1}
	} else if s.Players[1].Stack <= 0 {
		s.Status = MatchStatus{Concluded: true, Winner: 0}
	}

	return s
}

func withCommunity(hole, community []deck.Card) []deck.Card {
	out := make([]deck.Card, 0, len(hole)+len(community))
	out = append(out, hole...)
	out = append(out, community...)
	return out
}
