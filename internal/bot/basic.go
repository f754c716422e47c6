package bot

import (
	"github.com/lox/headsup/internal/classification"
	"github.com/lox/headsup/internal/deck"
	"github.com/lox/headsup/internal/evaluator"
	"github.com/lox/headsup/internal/game"
	"github.com/lox/headsup/internal/rng"
)

// Basic is a straightforward strength-threshold engine: it grades its
// hand on a fixed 0..1 scale and compares pot odds and random rolls
// against tuned cutoffs.
func Basic() Definition {
	return Definition{
		ID:     "basic",
		Name:   "Basic Bot",
		Decide: basicDecide,
	}
}

type betIntent int

const (
	valueBet betIntent = iota
	bluffBet
)

type betSize int

const (
	sizeDefault betSize = iota
	sizeSmall
	sizeMedium
	sizeLarge
)

func basicDecide(state game.GameState, playerIndex int, r rng.Rng) game.Action {
	player := state.Players[playerIndex]
	va := game.GetValidActions(state)

	strength := basicStrength(player.HoleCards, state.CommunityCards, state.Street)
	odds := potOdds(state, va)

	if state.Street != game.Preflop {
		return basicPostflop(state, playerIndex, strength, va, odds, r)
	}
	return basicPreflop(state, strength, va, odds, r)
}

func basicPreflop(state game.GameState, strength float64, va game.ValidActions, odds float64, r rng.Rng) game.Action {
	// Premium hands always raise or 3-bet.
	if strength >= 0.85 {
		if va.CanRaise || va.CanBet {
			return game.NewRaise(basicRaiseSize(state, va, valueBet, sizeDefault, r))
		}
		return callOrCheck(va)
	}

	// Strong hands raise most of the time, occasionally trapping.
	if strength >= 0.7 {
		if va.CanCheck {
			if r.Next() > 0.7 && va.CanBet {
				return game.NewRaise(basicRaiseSize(state, va, valueBet, sizeDefault, r))
			}
			return game.Action{Type: game.Check}
		}
		if va.CanRaise && r.Next() > 0.4 {
			return game.NewRaise(basicRaiseSize(state, va, valueBet, sizeDefault, r))
		}
		if va.CanCall {
			return game.Action{Type: game.Call}
		}
	}

	// Good hands call reasonable prices and raise occasionally.
	if strength >= 0.55 {
		if va.CanCheck {
			return game.Action{Type: game.Check}
		}
		if va.CanCall && odds < 0.3 {
			return game.Action{Type: game.Call}
		}
		if va.CanRaise && r.Next() > 0.7 {
			return game.NewRaise(basicRaiseSize(state, va, valueBet, sizeDefault, r))
		}
		if va.CanCall && odds < 0.4 {
			return game.Action{Type: game.Call}
		}
		return game.Action{Type: game.Fold}
	}

	// Marginal hands only continue against small bets.
	if strength >= 0.4 {
		if va.CanCheck {
			return game.Action{Type: game.Check}
		}
		if va.CanCall && odds < 0.2 {
			return game.Action{Type: game.Call}
		}
		return game.Action{Type: game.Fold}
	}

	return checkOrFold(va)
}

func basicPostflop(state game.GameState, playerIndex int, strength float64, va game.ValidActions, odds float64, r rng.Rng) game.Action {
	player := state.Players[playerIndex]

	draws := classification.AnalyzeSimpleDraws(player.HoleCards, state.CommunityCards)
	hasDraw := draws.FlushDraw || draws.StraightDraw
	drawStrength := basicDrawStrength(draws)
	board := classification.AnalyzeFlags(state.CommunityCards)

	// Monster hands always bet big.
	if strength >= 0.85 {
		if va.CanRaise || va.CanBet {
			return game.NewRaise(basicRaiseSize(state, va, valueBet, sizeLarge, r))
		}
		return callOrCheck(va)
	}

	// Strong hands value bet, sometimes check-raising.
	if strength >= 0.7 {
		if va.CanCheck {
			if r.Next() > 0.6 && va.CanBet {
				return game.NewRaise(basicRaiseSize(state, va, valueBet, sizeMedium, r))
			}
			return game.Action{Type: game.Check}
		}
		if va.CanRaise && r.Next() > 0.3 {
			return game.NewRaise(basicRaiseSize(state, va, valueBet, sizeMedium, r))
		}
		if va.CanCall && odds < 0.4 {
			return game.Action{Type: game.Call}
		}
		return game.Action{Type: game.Fold}
	}

	// Decent hands bet smaller and call moderate prices.
	if strength >= 0.55 {
		if va.CanCheck {
			if r.Next() > 0.5 && va.CanBet {
				return game.NewRaise(basicRaiseSize(state, va, valueBet, sizeSmall, r))
			}
			return game.Action{Type: game.Check}
		}
		if va.CanCall && odds < 0.35 {
			return game.Action{Type: game.Call}
		}
		if va.CanRaise && r.Next() > 0.7 {
			return game.NewRaise(basicRaiseSize(state, va, valueBet, sizeSmall, r))
		}
		return game.Action{Type: game.Fold}
	}

	// Drawing hands price their calls against estimated equity.
	if hasDraw && strength >= 0.3 {
		if va.CanCheck {
			if r.Next() > 0.7 && va.CanBet && board.DrawHeavy {
				return game.NewRaise(basicRaiseSize(state, va, bluffBet, sizeDefault, r))
			}
			return game.Action{Type: game.Check}
		}
		if va.CanCall && drawStrength > odds*1.2 {
			return game.Action{Type: game.Call}
		}
		if (va.CanRaise || va.CanBet) && r.Next() > 0.85 {
			return game.NewRaise(basicRaiseSize(state, va, bluffBet, sizeDefault, r))
		}
		return game.Action{Type: game.Fold}
	}

	// Weak made hands bluff occasionally on scary boards.
	if strength >= 0.3 {
		if va.CanCheck {
			if board.Scary && r.Next() > 0.85 && va.CanBet {
				return game.NewRaise(basicRaiseSize(state, va, bluffBet, sizeDefault, r))
			}
			return game.Action{Type: game.Check}
		}
		if va.CanCall && odds < 0.2 {
			return game.Action{Type: game.Call}
		}
		return game.Action{Type: game.Fold}
	}

	// Air: check when free, with a rare river bluff on scary boards.
	if va.CanCheck {
		if state.Street == game.River && board.Scary && r.Next() > 0.9 && va.CanBet {
			return game.NewRaise(basicRaiseSize(state, va, bluffBet, sizeDefault, r))
		}
		return game.Action{Type: game.Check}
	}
	return game.Action{Type: game.Fold}
}

// basicStrength grades the best available hand on a fixed 0..1 scale;
// preflop it falls back to a two-card chart.
func basicStrength(hole, community []deck.Card, street game.Street) float64 {
	if street == game.Preflop && len(hole) == 2 {
		return basicPreflopStrength(hole)
	}

	all := make([]deck.Card, 0, len(hole)+len(community))
	all = append(all, hole...)
	all = append(all, community...)
	if len(all) < 2 {
		return 0
	}

	switch evaluator.Evaluate(all).Rank {
	case evaluator.RoyalFlush:
		return 1.0
	case evaluator.StraightFlush:
		return 0.95
	case evaluator.FourOfAKind:
		return 0.9
	case evaluator.FullHouse:
		return 0.85
	case evaluator.Flush:
		return 0.75
	case evaluator.Straight:
		return 0.7
	case evaluator.ThreeOfAKind:
		return 0.65
	case evaluator.TwoPair:
		return 0.55
	case evaluator.Pair:
		return 0.4
	default:
		return 0.2
	}
}

func basicPreflopStrength(hole []deck.Card) float64 {
	if len(hole) != 2 {
		return 0
	}

	suited := hole[0].Suit == hole[1].Suit

	if hole[0].Rank == hole[1].Rank {
		switch {
		case hole[0].Rank >= deck.Queen:
			return 0.9
		case hole[0].Rank >= deck.Ten:
			return 0.8
		case hole[0].Rank >= deck.Eight:
			return 0.7
		default:
			return 0.6
		}
	}

	has := func(r deck.Rank) bool {
		return hole[0].Rank == r || hole[1].Rank == r
	}
	ace, king, queen, jack := has(deck.Ace), has(deck.King), has(deck.Queen), has(deck.Jack)

	pick := func(s, o float64) float64 {
		if suited {
			return s
		}
		return o
	}

	switch {
	case ace && king:
		return pick(0.85, 0.75)
	case ace && queen:
		return pick(0.75, 0.65)
	case ace && jack:
		return pick(0.7, 0.6)
	case king && queen:
		return pick(0.7, 0.6)
	case king && jack:
		return pick(0.65, 0.55)
	case queen && jack:
		return pick(0.6, 0.5)
	case ace || king:
		return pick(0.5, 0.4)
	case suited:
		return 0.45
	default:
		return 0.3
	}
}

// basicDrawStrength is the rule-of-four equity estimate, capped.
func basicDrawStrength(draws classification.SimpleDraws) float64 {
	if draws.Outs == 0 {
		return 0
	}
	equity := float64(draws.Outs) * 0.04
	if equity > 0.7 {
		equity = 0.7
	}
	return equity
}

// basicRaiseSize sizes a bet as a randomized fraction of the pot, then
// clamps into the legal raise window.
func basicRaiseSize(state game.GameState, va game.ValidActions, intent betIntent, size betSize, r rng.Rng) int {
	pot := float64(state.Pot)

	var amount int
	if intent == valueBet {
		switch size {
		case sizeSmall:
			amount = int(pot * (0.25 + r.Next()*0.25))
		case sizeLarge:
			amount = int(pot * (0.75 + r.Next()*0.25))
		default:
			amount = int(pot * (0.5 + r.Next()*0.25))
		}
	} else {
		amount = int(pot * (0.33 + r.Next()*0.33))
	}

	if amount < va.MinRaise {
		amount = va.MinRaise
	}
	if amount > va.MaxRaise {
		amount = va.MaxRaise
	}
	return amount
}
