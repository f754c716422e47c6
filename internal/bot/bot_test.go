package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/headsup/internal/deck"
	"github.com/lox/headsup/internal/game"
	"github.com/lox/headsup/internal/rng"
)

func TestRegistryLookup(t *testing.T) {
	reg := DefaultRegistry()

	basic, ok := reg.Get("basic")
	require.True(t, ok)
	assert.Equal(t, "Basic Bot", basic.Name)

	warren, ok := reg.Get("warren")
	require.True(t, ok)
	assert.Equal(t, "Warren's bot", warren.Name)

	_, ok = reg.Get("unknown")
	assert.False(t, ok)

	assert.Equal(t, []string{"basic", "warren"}, reg.IDs())
}

func TestRegistryReplacesDuplicates(t *testing.T) {
	reg := NewRegistry(
		Definition{ID: "x", Name: "first"},
		Definition{ID: "x", Name: "second"},
	)
	def, ok := reg.Get("x")
	require.True(t, ok)
	assert.Equal(t, "second", def.Name)
}

func TestClassifyTier(t *testing.T) {
	hole := func(r1 deck.Rank, s1 deck.Suit, r2 deck.Rank, s2 deck.Suit) []deck.Card {
		return []deck.Card{{Rank: r1, Suit: s1}, {Rank: r2, Suit: s2}}
	}

	tests := []struct {
		name string
		hole []deck.Card
		want handTier
	}{
		{"aces", hole(deck.Ace, deck.Spades, deck.Ace, deck.Hearts), tierPremium},
		{"eights", hole(deck.Eight, deck.Spades, deck.Eight, deck.Hearts), tierPremium},
		{"ace jack offsuit", hole(deck.Ace, deck.Spades, deck.Jack, deck.Hearts), tierPremium},
		{"king queen offsuit", hole(deck.King, deck.Spades, deck.Queen, deck.Hearts), tierPremium},
		{"sevens", hole(deck.Seven, deck.Spades, deck.Seven, deck.Hearts), tierStrong},
		{"ace deuce offsuit", hole(deck.Ace, deck.Spades, deck.Two, deck.Hearts), tierStrong},
		{"king ten offsuit", hole(deck.King, deck.Spades, deck.Ten, deck.Hearts), tierStrong},
		{"seven six suited", hole(deck.Seven, deck.Spades, deck.Six, deck.Spades), tierStrong},
		{"six five suited", hole(deck.Six, deck.Spades, deck.Five, deck.Spades), tierPlayable},
		{"king nine offsuit", hole(deck.King, deck.Spades, deck.Nine, deck.Hearts), tierPlayable},
		{"ten nine offsuit", hole(deck.Ten, deck.Spades, deck.Nine, deck.Hearts), tierPlayable},
		{"seven deuce offsuit", hole(deck.Seven, deck.Spades, deck.Two, deck.Hearts), tierTrash},
		{"nine three offsuit", hole(deck.Nine, deck.Spades, deck.Three, deck.Hearts), tierTrash},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyTier(tt.hole))
		})
	}
}

func TestBasicPreflopStrengthChart(t *testing.T) {
	hole := func(r1 deck.Rank, s1 deck.Suit, r2 deck.Rank, s2 deck.Suit) []deck.Card {
		return []deck.Card{{Rank: r1, Suit: s1}, {Rank: r2, Suit: s2}}
	}

	assert.Equal(t, 0.9, basicPreflopStrength(hole(deck.Ace, deck.Spades, deck.Ace, deck.Hearts)))
	assert.Equal(t, 0.8, basicPreflopStrength(hole(deck.Jack, deck.Spades, deck.Jack, deck.Hearts)))
	assert.Equal(t, 0.7, basicPreflopStrength(hole(deck.Nine, deck.Spades, deck.Nine, deck.Hearts)))
	assert.Equal(t, 0.6, basicPreflopStrength(hole(deck.Two, deck.Spades, deck.Two, deck.Hearts)))
	assert.Equal(t, 0.85, basicPreflopStrength(hole(deck.Ace, deck.Spades, deck.King, deck.Spades)))
	assert.Equal(t, 0.75, basicPreflopStrength(hole(deck.Ace, deck.Spades, deck.King, deck.Hearts)))
	assert.Equal(t, 0.45, basicPreflopStrength(hole(deck.Seven, deck.Spades, deck.Six, deck.Spades)))
	assert.Equal(t, 0.3, basicPreflopStrength(hole(deck.Seven, deck.Spades, deck.Two, deck.Hearts)))
}

// playMatch drives both engines through real engine transitions and
// fails if either ever produces an action the contract rejects.
func playMatch(t *testing.T, seed uint32, maxHands int, p0, p1 Definition) game.GameState {
	t.Helper()

	r := rng.NewSeeded(seed)
	state := game.InitializeGame(game.Settings{
		PlayerName:    p0.Name,
		OpponentName:  p1.Name,
		PlayerKind:    game.Automated,
		OpponentKind:  game.Automated,
		StartingStack: 200,
		SmallBlind:    1,
		BigBlind:      2,
	})
	engines := [2]Definition{p0, p1}

	for hand := 0; hand < maxHands && !state.Status.Concluded; hand++ {
		next, _, err := game.ApplyAction(state, game.Action{Type: game.StartHand}, r)
		require.NoError(t, err)
		state = next

		for !state.HandComplete {
			idx := state.CurrentPlayerIndex
			action := engines[idx].Decide(state, idx, r)

			state, _, err = game.ApplyAction(state, action, r)
			require.NoError(t, err, "hand %d: %s by %s rejected", state.HandNumber, action, engines[idx].Name)
		}

		winner := game.SplitPot
		switch {
		case state.Players[0].Folded:
			winner = 1
		case state.Players[1].Folded:
			winner = 0
		case state.Street == game.Showdown:
			winner, _, _ = game.DetermineWinner(state)
		}
		state = game.AwardPot(state, winner)

		total := state.Players[0].Stack + state.Players[1].Stack
		require.Equal(t, 400, total, "chips leaked after hand %d", state.HandNumber)
	}

	return state
}

func TestEnginesProduceOnlyLegalActions(t *testing.T) {
	for seed := uint32(1); seed <= 10; seed++ {
		playMatch(t, seed, 200, Basic(), Advanced())
		playMatch(t, seed, 200, Advanced(), Basic())
		playMatch(t, seed, 200, Basic(), Basic())
		playMatch(t, seed, 200, Advanced(), Advanced())
	}
}

func TestMatchDeterminism(t *testing.T) {
	a := playMatch(t, 77, 100, Basic(), Advanced())
	b := playMatch(t, 77, 100, Basic(), Advanced())

	assert.Equal(t, a.HandNumber, b.HandNumber)
	assert.Equal(t, a.Players[0].Stack, b.Players[0].Stack)
	assert.Equal(t, a.Players[1].Stack, b.Players[1].Stack)
	assert.Equal(t, a.Status, b.Status)
}

func TestAdvancedUsesOneRollPerDecision(t *testing.T) {
	state := game.StartNewHand(game.InitializeGame(game.Settings{
		PlayerName:    "a",
		OpponentName:  "b",
		StartingStack: 200,
		SmallBlind:    1,
		BigBlind:      2,
	}), rng.NewSeeded(5))

	counter := &countingRng{inner: rng.NewSeeded(6)}
	Advanced().Decide(state, state.CurrentPlayerIndex, counter)
	assert.Equal(t, 1, counter.draws)
}

type countingRng struct {
	inner rng.Rng
	draws int
}

func (c *countingRng) Next() float64 {
	c.draws++
	return c.inner.Next()
}
