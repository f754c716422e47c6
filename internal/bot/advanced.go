package bot

import (
	"math"

	"github.com/lox/headsup/internal/analysis"
	"github.com/lox/headsup/internal/classification"
	"github.com/lox/headsup/internal/deck"
	"github.com/lox/headsup/internal/game"
	"github.com/lox/headsup/internal/rng"
)

// Personality tunes the advanced engine's mixing thresholds.
type Personality struct {
	// Aggression scales how often the engine bets and raises rather
	// than checking or calling.
	Aggression float64
	// BluffFactor scales bluff and semi-bluff frequencies.
	BluffFactor float64
	// RiskTolerance scales bluff-catching call frequencies.
	RiskTolerance float64
}

// DefaultPersonality is tuned for aggressive heads-up play.
var DefaultPersonality = Personality{
	Aggression:    0.85,
	BluffFactor:   0.7,
	RiskTolerance: 0.4,
}

// Advanced is the tier-and-texture policy engine. Each decision selects
// one policy cell (hand tier or made-hand category, board texture,
// facing-bet flag) and samples its action ladder with a single roll
// from the injected RNG.
func Advanced() Definition {
	return AdvancedWithPersonality(DefaultPersonality)
}

// AdvancedWithPersonality builds the advanced engine around a custom
// personality.
func AdvancedWithPersonality(p Personality) Definition {
	return Definition{
		ID:   "warren",
		Name: "Warren's bot",
		Decide: func(state game.GameState, playerIndex int, r rng.Rng) game.Action {
			return advancedDecide(state, playerIndex, p, r)
		},
	}
}

func advancedDecide(state game.GameState, playerIndex int, pers Personality, r rng.Rng) game.Action {
	va := game.GetValidActions(state)
	roll := r.Next()

	if state.Street == game.Preflop {
		return advancedPreflop(state, playerIndex, va, pers, roll)
	}
	return advancedPostflop(state, playerIndex, va, pers, roll)
}

// handTier is the preflop two-card classification.
type handTier int

const (
	tierTrash handTier = iota
	tierPlayable
	tierStrong
	tierPremium
)

func (t handTier) String() string {
	switch t {
	case tierPremium:
		return "premium"
	case tierStrong:
		return "strong"
	case tierPlayable:
		return "playable"
	default:
		return "trash"
	}
}

func advancedPreflop(state game.GameState, playerIndex int, va game.ValidActions, pers Personality, roll float64) game.Action {
	player := state.Players[playerIndex]
	opponent := state.Players[1-playerIndex]
	tier := classifyTier(player.HoleCards)

	var cell policy
	switch {
	case player.IsButton && opponent.Bet == state.BigBlind:
		cell = buttonOpenCell(tier, pers)
	case !player.IsButton && opponent.Bet > player.Bet:
		cell = blindDefenseCell(tier, pers, state)
	case opponent.Bet > state.BigBlind*2:
		cell = facingReraiseCell(tier, pers)
	default:
		cell = policy{{1, checkOutcome}}
	}

	return realize(cell.choose(roll, va), state, va, classification.Dry)
}

// classifyTier buckets two hole cards by rank, suitedness, and
// connectedness. Indices run 0 (deuce) to 12 (ace).
func classifyTier(hole []deck.Card) handTier {
	hi := tierIndex(hole[0].Rank)
	lo := tierIndex(hole[1].Rank)
	if lo > hi {
		hi, lo = lo, hi
	}
	suited := hole[0].Suit == hole[1].Suit
	pair := hole[0].Rank == hole[1].Rank
	gap := hi - lo

	switch {
	case pair && hi >= 6, // 88+
		hi == 12 && lo >= 9, // AJ+
		hi == 11 && lo >= 10: // KQ
		return tierPremium

	case pair, // any pocket pair
		hi == 12,            // any ace
		hi == 11 && lo >= 8, // KT+
		hi == 10 && lo >= 8, // QT+
		suited && hi >= 9 && lo >= 8, // suited broadways
		suited && gap <= 1 && lo >= 4, // suited connectors 76s+
		suited && gap == 2 && lo >= 5: // suited one-gappers 75s+
		return tierStrong

	case hi >= 11, // any king or queen
		suited && hi >= 8, // any suited ten-high+
		suited && gap <= 3,
		gap <= 2 && hi >= 7,
		hi >= 9 && lo >= 6:
		return tierPlayable

	default:
		return tierTrash
	}
}

func tierIndex(r deck.Rank) int {
	return int(r) - 2
}

func buttonOpenCell(tier handTier, p Personality) policy {
	switch tier {
	case tierPremium:
		return policy{
			{0.95, raiseBlinds(3)},
			{1, callOutcome},
		}
	case tierStrong:
		return policy{
			{0.85 * p.Aggression, raiseBlinds(2.5)},
			{1, callOutcome},
		}
	case tierPlayable:
		return policy{
			{0.6 * p.Aggression, raiseBlinds(2.5)},
			{0.9, callOutcome},
			{1, foldOutcome},
		}
	default:
		return policy{
			{0.35 * p.BluffFactor, raiseBlinds(2.5)},
			{1, foldOutcome},
		}
	}
}

func blindDefenseCell(tier handTier, p Personality, state game.GameState) policy {
	raiseSize := state.Players[1-state.CurrentPlayerIndex].Bet
	minRaiseSized := float64(raiseSize) <= float64(state.BigBlind)*2.5

	switch tier {
	case tierPremium:
		// Always three-bet when possible.
		return policy{
			{1, raiseBlinds(3.5)},
			{1, callOutcome},
		}
	case tierStrong:
		return policy{
			{0.8, raiseBlinds(3)},
			{1, callOutcome},
		}
	case tierPlayable:
		if minRaiseSized {
			return policy{
				{0.4 * p.Aggression, raiseBlinds(3)},
				{0.9, callOutcome},
				{1, foldOutcome},
			}
		}
		return policy{
			{0.4, callOutcome},
			{1, foldOutcome},
		}
	default:
		// Light three-bets keep the defense unexploitable.
		return policy{
			{0.25 * p.BluffFactor, raiseBlinds(3)},
			{1, foldOutcome},
		}
	}
}

func facingReraiseCell(tier handTier, p Personality) policy {
	switch tier {
	case tierPremium:
		return policy{
			{0.4, raisePot(2)},
			{1, callOutcome},
		}
	case tierStrong:
		return policy{
			{0.7, callOutcome},
			{1, foldOutcome},
		}
	default:
		return policy{
			{0.1 * p.BluffFactor, callOutcome},
			{1, foldOutcome},
		}
	}
}

// handCategory is the postflop made-hand classification, derived from
// exhaustive equity with draws folded in.
type handCategory int

const (
	categoryAir handCategory = iota
	categoryDraw
	categoryMedium
	categoryStrong
	categoryMonster
)

func (c handCategory) String() string {
	switch c {
	case categoryMonster:
		return "monster"
	case categoryStrong:
		return "strong"
	case categoryMedium:
		return "medium"
	case categoryDraw:
		return "draw"
	default:
		return "air"
	}
}

func advancedPostflop(state game.GameState, playerIndex int, va game.ValidActions, pers Personality, roll float64) game.Action {
	player := state.Players[playerIndex]
	opponent := state.Players[1-playerIndex]
	hole := player.HoleCards
	board := state.CommunityCards

	category := classifyMadeHand(hole, board)
	texture := classification.AnalyzeTexture(board)
	draws := classification.AnalyzeDraws(hole, board)
	odds := potOdds(state, va)
	facingBet := opponent.Bet > player.Bet
	inPosition := player.IsButton

	// A chip lead buys extra aggression.
	var leadBonus float64
	switch {
	case opponent.Stack == 0 || float64(player.Stack)/float64(opponent.Stack) > 1.3:
		leadBonus = 0.15
	case float64(player.Stack)/float64(opponent.Stack) > 1.1:
		leadBonus = 0.08
	}
	agg := math.Min(1, pers.Aggression+leadBonus)
	bluff := math.Min(1, pers.BluffFactor+leadBonus)

	cell := postflopCell(category, texture, facingBet, state.Street, draws, odds, inPosition, agg, bluff, pers.RiskTolerance)
	return realize(cell.choose(roll, va), state, va, texture)
}

func classifyMadeHand(hole, board []deck.Card) handCategory {
	strength := analysis.HandStrength(hole, board)

	switch analysis.Categorize(strength) {
	case analysis.Nuts, analysis.VeryStrong:
		return categoryMonster
	case analysis.Strong:
		return categoryStrong
	case analysis.Medium:
		// A strong draw outvalues a marginal made hand.
		if d := classification.AnalyzeDraws(hole, board); d.FlushDraw || d.OpenEnded {
			return categoryDraw
		}
		return categoryMedium
	default:
		if d := classification.AnalyzeDraws(hole, board); d.FlushDraw || d.OpenEnded {
			return categoryDraw
		}
		return categoryAir
	}
}

func postflopCell(category handCategory, texture classification.Texture, facingBet bool, street game.Street, draws classification.DrawInfo, odds float64, inPosition bool, agg, bluff, risk float64) policy {
	switch category {
	case categoryMonster:
		if facingBet {
			slowPlay := 0.15
			if street == game.River {
				slowPlay = 0
			}
			return policy{
				{slowPlay, callOutcome},
				{1, betPot(sizeLarge)},
				{1, callOutcome},
			}
		}
		return policy{
			{0.95, betPot(sizeLarge)},
			{1, checkOutcome},
		}

	case categoryStrong:
		if facingBet {
			return policy{
				{0.75 * agg, betPot(sizeMedium)},
				{1, callOutcome},
			}
		}
		return policy{
			{0.9 * agg, betPot(sizeMedium)},
			{1, checkOutcome},
		}

	case categoryMedium:
		if facingBet {
			// Defense frequency scales with the price offered.
			defend := 0.2
			switch {
			case odds < 0.35:
				defend = 0.65
			case odds < 0.5:
				defend = 0.4
			}
			return policy{
				{0.25 * bluff, betPot(sizeMedium)},
				{defend, callOutcome},
				{1, foldOutcome},
			}
		}
		return policy{
			{0.55 * agg, betPot(sizeSmall)},
			{1, checkOutcome},
		}

	case categoryDraw:
		if facingBet {
			required := odds * 0.75
			equity := float64(draws.Outs) * 2 / 47

			var cell policy
			if inPosition || street != game.River {
				cell = append(cell, rung{0.45 * bluff, betPot(sizeMedium)})
			}
			switch {
			case equity > required*0.85:
				cell = append(cell, rung{1, callOutcome})
			case equity > required*0.6:
				cell = append(cell, rung{0.35, callOutcome})
			}
			return append(cell, rung{1, foldOutcome})
		}
		return policy{
			{0.7 * bluff, betPot(sizeMedium)},
			{1, checkOutcome},
		}

	default: // air
		if facingBet {
			var cell policy
			if inPosition && texture == classification.Wet {
				cell = append(cell, rung{0.15 * bluff, betPot(sizeLarge)})
			}

			catch := 0.1
			if street == game.River {
				switch {
				case odds < 0.25:
					catch = 0.25
				case odds < 0.4:
					catch = 0.15
				default:
					catch = 0.08
				}
			} else if odds < 0.3 {
				catch = 0.12
			}

			return append(cell,
				rung{catch * risk, callOutcome},
				rung{1, foldOutcome},
			)
		}

		// Continuation bluffs, more often on coordinated boards and
		// later streets, and in position.
		freq := 0.6
		switch texture {
		case classification.Wet:
			freq = 0.75
		case classification.SemiConnected:
			freq = 0.68
		}
		if street == game.Turn {
			freq *= 1.15
		}
		if street == game.River {
			freq *= 1.2
		}
		if inPosition {
			freq *= 1.1
		}

		return policy{
			{freq * bluff, betPot(sizeMedium)},
			{1, checkOutcome},
		}
	}
}
