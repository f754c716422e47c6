package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/headsup/internal/classification"
	"github.com/lox/headsup/internal/game"
)

func facingBetActions() game.ValidActions {
	return game.ValidActions{
		CanCall:    true,
		CanRaise:   true,
		MinRaise:   6,
		MaxRaise:   100,
		CallAmount: 4,
	}
}

func TestPolicyChooseLadder(t *testing.T) {
	cell := policy{
		{0.3, raiseBlinds(3)},
		{0.9, callOutcome},
		{1, foldOutcome},
	}
	va := facingBetActions()

	assert.Equal(t, outcomeRaise, cell.choose(0.1, va).kind)
	assert.Equal(t, outcomeCall, cell.choose(0.5, va).kind)
	assert.Equal(t, outcomeFold, cell.choose(0.95, va).kind)
}

func TestPolicyChooseSkipsInfeasibleRungs(t *testing.T) {
	cell := policy{
		{0.3, raiseBlinds(3)},
		{0.9, callOutcome},
		{1, foldOutcome},
	}
	va := facingBetActions()
	va.CanRaise = false

	// The raise rung's mass falls through to the call rung.
	assert.Equal(t, outcomeCall, cell.choose(0.1, va).kind)
	assert.Equal(t, outcomeFold, cell.choose(0.95, va).kind)
}

func TestPolicyChooseFallback(t *testing.T) {
	cell := policy{{1, callOutcome}}

	va := game.ValidActions{CanCheck: true}
	assert.Equal(t, outcomeCheck, cell.choose(0.5, va).kind)

	va = game.ValidActions{}
	assert.Equal(t, outcomeFold, cell.choose(0.5, va).kind)
}

func TestRaiseAmountBlindMultiple(t *testing.T) {
	state := game.GameState{Pot: 3, BigBlind: 2}
	va := game.ValidActions{MinRaise: 3, MaxRaise: 200}

	assert.Equal(t, 6, raiseAmount(raiseBlinds(3), state, va, classification.Dry))
	assert.Equal(t, 5, raiseAmount(raiseBlinds(2.5), state, va, classification.Dry))

	// Floors at the minimum raise and caps at the maximum.
	va.MinRaise = 8
	assert.Equal(t, 8, raiseAmount(raiseBlinds(3), state, va, classification.Dry))
	va.MaxRaise = 4
	assert.Equal(t, 4, raiseAmount(raiseBlinds(3), state, va, classification.Dry))
}

func TestRaiseAmountPotFraction(t *testing.T) {
	state := game.GameState{Pot: 100, BigBlind: 2}
	va := game.ValidActions{CanRaise: true, MinRaise: 10, MaxRaise: 500}

	assert.Equal(t, 50, raiseAmount(betPot(sizeMedium), state, va, classification.Dry))
	assert.Equal(t, 65, raiseAmount(betPot(sizeMedium), state, va, classification.Wet))
	assert.Equal(t, 33, raiseAmount(betPot(sizeSmall), state, va, classification.Dry))
	assert.Equal(t, 100, raiseAmount(betPot(sizeLarge), state, va, classification.Wet))

	// Opening bets floor at the big blind instead of the min raise.
	open := game.ValidActions{CanBet: true, MinRaise: 2, MaxRaise: 500}
	tiny := game.GameState{Pot: 4, BigBlind: 2}
	assert.Equal(t, 2, raiseAmount(betPot(sizeSmall), tiny, open, classification.Dry))
}

func TestButtonOpenCellThresholds(t *testing.T) {
	p := DefaultPersonality

	cell := buttonOpenCell(tierPremium, p)
	require.Len(t, cell, 2)
	assert.Equal(t, 0.95, cell[0].below)
	assert.Equal(t, outcomeRaise, cell[0].result.kind)
	assert.Equal(t, 3.0, cell[0].result.mult)

	cell = buttonOpenCell(tierStrong, p)
	assert.InDelta(t, 0.85*0.85, cell[0].below, 1e-9)

	cell = buttonOpenCell(tierTrash, p)
	assert.InDelta(t, 0.35*0.7, cell[0].below, 1e-9)
	assert.Equal(t, outcomeFold, cell[1].result.kind)
}

func TestBlindDefenseCellSizesByRaise(t *testing.T) {
	state := game.GameState{
		BigBlind:           2,
		CurrentPlayerIndex: 0,
		Players: [2]game.Player{
			{Bet: 2},
			{Bet: 5, IsButton: true},
		},
	}

	// Facing a min-sized raise, playable hands mix raises and calls.
	cell := blindDefenseCell(tierPlayable, DefaultPersonality, state)
	require.Len(t, cell, 3)
	assert.Equal(t, outcomeRaise, cell[0].result.kind)

	// Facing a large raise they only call or fold.
	state.Players[1].Bet = 8
	cell = blindDefenseCell(tierPlayable, DefaultPersonality, state)
	require.Len(t, cell, 2)
	assert.Equal(t, outcomeCall, cell[0].result.kind)
	assert.Equal(t, 0.4, cell[0].below)
}

func TestMonsterCellPrefersRaise(t *testing.T) {
	cell := postflopCell(categoryMonster, classification.Dry, true, game.Flop, classification.DrawInfo{}, 0.3, true, 0.85, 0.7, 0.4)
	va := facingBetActions()

	// Low rolls slow-play before the river.
	assert.Equal(t, outcomeCall, cell.choose(0.1, va).kind)
	assert.Equal(t, outcomeRaise, cell.choose(0.5, va).kind)

	// On the river the slow-play rung vanishes.
	cell = postflopCell(categoryMonster, classification.Dry, true, game.River, classification.DrawInfo{}, 0.3, true, 0.85, 0.7, 0.4)
	assert.Equal(t, outcomeRaise, cell.choose(0.1, va).kind)

	// With raising impossible the whole cell collapses to a call.
	va.CanRaise = false
	assert.Equal(t, outcomeCall, cell.choose(0.5, va).kind)
}

func TestDrawCellPricesCalls(t *testing.T) {
	va := facingBetActions()
	draws := classification.DrawInfo{FlushDraw: true, Outs: 9}

	// Nine outs at a cheap price is an easy continue.
	cell := postflopCell(categoryDraw, classification.Wet, true, game.Flop, draws, 0.2, false, 0.85, 0.7, 0.4)
	assert.Equal(t, outcomeCall, cell.choose(0.99, va).kind)

	// No outs facing a huge bet folds out the bottom of the ladder.
	cell = postflopCell(categoryDraw, classification.Wet, true, game.Flop, classification.DrawInfo{}, 0.45, false, 0.85, 0.7, 0.4)
	assert.Equal(t, outcomeFold, cell.choose(0.99, va).kind)
}

func TestAirCellBluffCatchScaling(t *testing.T) {
	va := facingBetActions()

	// Small river bets get bluff-caught at 25% scaled by risk tolerance.
	cell := postflopCell(categoryAir, classification.Dry, true, game.River, classification.DrawInfo{}, 0.2, false, 0.85, 0.7, 0.4)
	assert.Equal(t, outcomeCall, cell.choose(0.05, va).kind)
	assert.Equal(t, outcomeFold, cell.choose(0.2, va).kind)

	// Large river bets are nearly always folded.
	cell = postflopCell(categoryAir, classification.Dry, true, game.River, classification.DrawInfo{}, 0.6, false, 0.85, 0.7, 0.4)
	assert.Equal(t, outcomeFold, cell.choose(0.05, va).kind)
}
