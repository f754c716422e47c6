package bot

import (
	"github.com/lox/headsup/internal/classification"
	"github.com/lox/headsup/internal/game"
)

// outcomeKind is what a policy rung resolves to.
type outcomeKind int

const (
	outcomeFold outcomeKind = iota
	outcomeCheck
	outcomeCall
	outcomeRaise
)

// sizingRule says how a raise outcome computes its amount.
type sizingRule int

const (
	// blindMultiple raises to a multiple of the big blind, floored at
	// the minimum raise.
	blindMultiple sizingRule = iota
	// potMultiple raises to a multiple of the pot with no floor.
	potMultiple
	// potFraction bets a small/medium/large fraction of the pot, wider
	// on coordinated boards.
	potFraction
)

type outcome struct {
	kind outcomeKind
	rule sizingRule
	mult float64
	size betSize
}

var (
	foldOutcome  = outcome{kind: outcomeFold}
	checkOutcome = outcome{kind: outcomeCheck}
	callOutcome  = outcome{kind: outcomeCall}
)

func raiseBlinds(mult float64) outcome {
	return outcome{kind: outcomeRaise, rule: blindMultiple, mult: mult}
}

func raisePot(mult float64) outcome {
	return outcome{kind: outcomeRaise, rule: potMultiple, mult: mult}
}

func betPot(size betSize) outcome {
	return outcome{kind: outcomeRaise, rule: potFraction, size: size}
}

// rung pairs an absolute roll threshold with an outcome.
type rung struct {
	below  float64
	result outcome
}

// policy is one decision cell: an ordered ladder of thresholds over a
// single uniform roll. The first rung whose threshold exceeds the roll
// wins. Rungs whose outcome the action contract forbids are skipped so
// their probability mass falls through to the next entry, and a
// catch-all rung at threshold 1 terminates every ladder.
type policy []rung

func (p policy) choose(roll float64, va game.ValidActions) outcome {
	for _, r := range p {
		if !feasible(r.result, va) {
			continue
		}
		if roll < r.below {
			return r.result
		}
	}
	if va.CanCheck {
		return checkOutcome
	}
	return foldOutcome
}

func feasible(o outcome, va game.ValidActions) bool {
	switch o.kind {
	case outcomeRaise:
		return va.CanBet || va.CanRaise
	case outcomeCall:
		return va.CanCall
	case outcomeCheck:
		return va.CanCheck
	default:
		return true
	}
}

// realize converts a chosen outcome into a concrete action, sizing any
// raise and clamping it into the legal window.
func realize(o outcome, state game.GameState, va game.ValidActions, texture classification.Texture) game.Action {
	switch o.kind {
	case outcomeCheck:
		return game.Action{Type: game.Check}
	case outcomeCall:
		return game.Action{Type: game.Call}
	case outcomeRaise:
		return game.NewRaise(raiseAmount(o, state, va, texture))
	default:
		return game.Action{Type: game.Fold}
	}
}

func raiseAmount(o outcome, state game.GameState, va game.ValidActions, texture classification.Texture) int {
	switch o.rule {
	case blindMultiple:
		amount := int(float64(state.BigBlind) * o.mult)
		if amount < va.MinRaise {
			amount = va.MinRaise
		}
		if amount > va.MaxRaise {
			amount = va.MaxRaise
		}
		return amount

	case potMultiple:
		amount := int(float64(state.Pot) * o.mult)
		if amount > va.MaxRaise {
			amount = va.MaxRaise
		}
		return amount

	default:
		dry := texture == classification.Dry
		var pct float64
		switch o.size {
		case sizeSmall:
			pct = pickPct(dry, 0.33, 0.4)
		case sizeLarge:
			pct = pickPct(dry, 0.75, 1.0)
		default:
			pct = pickPct(dry, 0.5, 0.65)
		}

		amount := int(float64(state.Pot) * pct)
		minBet := va.MinRaise
		if va.CanBet {
			minBet = state.BigBlind
		}
		if amount < minBet {
			amount = minBet
		}
		if amount > va.MaxRaise {
			amount = va.MaxRaise
		}
		return amount
	}
}

func pickPct(dry bool, dryPct, wetPct float64) float64 {
	if dry {
		return dryPct
	}
	return wetPct
}
