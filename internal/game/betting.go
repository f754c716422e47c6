package game

import "github.com/lox/headsup/internal/deck"

// PlayerFold marks the acting player folded and ends the hand. No chips
// move; the pot is awarded separately.
func PlayerFold(state GameState) GameState {
	s := state.clone()
	s.Players[s.CurrentPlayerIndex].Folded = true
	s.HandComplete = true
	return s
}

// PlayerCheck marks the acting player as having acted and either
// advances the street or passes the turn.
func PlayerCheck(state GameState) GameState {
	s := state.clone()
	s.Players[s.CurrentPlayerIndex].HasActed = true

	if isBettingRoundComplete(s) {
		return advanceStreet(s)
	}
	s.CurrentPlayerIndex = 1 - s.CurrentPlayerIndex
	return s
}

// PlayerCall matches the opponent's bet, capped at the caller's stack.
// A partial call is an implicit all-in.
func PlayerCall(state GameState) GameState {
	s := state.clone()
	current := &s.Players[s.CurrentPlayerIndex]
	opponent := &s.Players[1-s.CurrentPlayerIndex]

	callAmount := opponent.Bet - current.Bet
	actual := min(callAmount, current.Stack)

	current.Bet += actual
	current.Stack -= actual
	s.Pot += actual
	current.HasActed = true

	if isBettingRoundComplete(s) {
		return advanceStreet(s)
	}
	s.CurrentPlayerIndex = 1 - s.CurrentPlayerIndex
	return s
}

// PlayerRaise raises to the given total bet level. The level is clamped
// to the effective-stack cap and the added chips to the raiser's stack;
// clamping is domain policy, not an error. The opponent must respond,
// so raising never advances the street directly.
func PlayerRaise(state GameState, raiseTo int) GameState {
	s := state.clone()
	current := &s.Players[s.CurrentPlayerIndex]
	opponent := &s.Players[1-s.CurrentPlayerIndex]

	capped := min(raiseTo, opponent.Bet+opponent.Stack)
	delta := min(capped-current.Bet, current.Stack)

	current.Bet += delta
	current.Stack -= delta
	s.Pot += delta
	current.HasActed = true

	s.LastRaiseAmount = current.Bet - opponent.Bet

	opponent.HasActed = false
	s.CurrentPlayerIndex = 1 - s.CurrentPlayerIndex
	return s
}

// isBettingRoundComplete reports whether the street's betting is done.
// With a player all-in, the round completes once both have acted even
// if bets differ (the short stack could not match the full bet).
func isBettingRoundComplete(s GameState) bool {
	p0, p1 := s.Players[0], s.Players[1]

	if p0.Folded || p1.Folded {
		return true
	}

	if p0.Stack == 0 || p1.Stack == 0 {
		return p0.HasActed && p1.HasActed
	}

	return p0.HasActed && p1.HasActed && p0.Bet == p1.Bet
}

// advanceStreet moves to the next street or, with a player all-in,
// deals every remaining community card straight through to Showdown.
// Post-flop the non-button player acts first.
func advanceStreet(s GameState) GameState {
	allIn := s.Players[0].Stack == 0 || s.Players[1].Stack == 0
	if allIn && s.Street != River {
		return dealRemainingCards(s)
	}

	s.Players[0].HasActed = false
	s.Players[1].HasActed = false
	s.Players[0].Bet = 0
	s.Players[1].Bet = 0

	switch s.Street {
	case Preflop:
		s.Deck.Burn()
		s.CommunityCards = []deck.Card{mustDraw(&s.Deck), mustDraw(&s.Deck), mustDraw(&s.Deck)}
		s.Street = Flop
		s.CurrentPlayerIndex = 1 - s.ButtonIndex()
	case Flop:
		s.Deck.Burn()
		s.CommunityCards = append(s.CommunityCards, mustDraw(&s.Deck))
		s.Street = Turn
		s.CurrentPlayerIndex = 1 - s.ButtonIndex()
	case Turn:
		s.Deck.Burn()
		s.CommunityCards = append(s.CommunityCards, mustDraw(&s.Deck))
		s.Street = River
		s.CurrentPlayerIndex = 1 - s.ButtonIndex()
	case River:
		s.Street = Showdown
		s.HandComplete = true
	}

	return s
}

// dealRemainingCards runs out the board after an all-in, burning once
// per street as if each had been dealt in turn.
func dealRemainingCards(s GameState) GameState {
	s.Players[0].HasActed = false
	s.Players[1].HasActed = false
	s.Players[0].Bet = 0
	s.Players[1].Bet = 0

	switch s.Street {
	case Preflop:
		s.Deck.Burn()
		s.CommunityCards = append(s.CommunityCards, mustDraw(&s.Deck), mustDraw(&s.Deck), mustDraw(&s.Deck))
		fallthrough
	case Flop:
		s.Deck.Burn()
		s.CommunityCards = append(s.CommunityCards, mustDraw(&s.Deck))
		fallthrough
	case Turn:
		s.Deck.Burn()
		s.CommunityCards = append(s.CommunityCards, mustDraw(&s.Deck))
	}

	s.Street = Showdown
	s.HandComplete = true
	return s
}
