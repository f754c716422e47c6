package analysis

import (
	"testing"

	"github.com/lox/headsup/internal/deck"
)

func TestPreflopEquityPairs(t *testing.T) {
	aces := PreflopEquity([]deck.Card{c(deck.Ace, deck.Spades), c(deck.Ace, deck.Hearts)})
	deuces := PreflopEquity([]deck.Card{c(deck.Two, deck.Spades), c(deck.Two, deck.Hearts)})

	if aces != 0.85 {
		t.Errorf("AA equity = %v, want 0.85", aces)
	}
	if deuces != 0.52 {
		t.Errorf("22 equity = %v, want 0.52", deuces)
	}
	if aces <= deuces {
		t.Error("higher pairs should have higher equity")
	}
}

func TestPreflopEquitySuitedBonus(t *testing.T) {
	suited := PreflopEquity([]deck.Card{c(deck.King, deck.Hearts), c(deck.Queen, deck.Hearts)})
	offsuit := PreflopEquity([]deck.Card{c(deck.King, deck.Hearts), c(deck.Queen, deck.Spades)})

	if suited <= offsuit {
		t.Errorf("suited KQ (%v) should beat offsuit KQ (%v)", suited, offsuit)
	}
}

func TestPreflopEquityBounds(t *testing.T) {
	hands := [][]deck.Card{
		{c(deck.Ace, deck.Spades), c(deck.King, deck.Spades)},
		{c(deck.Seven, deck.Hearts), c(deck.Two, deck.Clubs)},
		{c(deck.Nine, deck.Diamonds), c(deck.Eight, deck.Diamonds)},
		{c(deck.Queen, deck.Clubs), c(deck.Jack, deck.Hearts)},
	}

	for _, hole := range hands {
		eq := PreflopEquity(hole)
		if eq < 0.3 || eq > 0.85 {
			t.Errorf("PreflopEquity(%v) = %v, outside [0.3, 0.85]", hole, eq)
		}
	}
}

func TestPreflopEquityHighCards(t *testing.T) {
	ak := PreflopEquity([]deck.Card{c(deck.Ace, deck.Spades), c(deck.King, deck.Hearts)})
	sevenTwo := PreflopEquity([]deck.Card{c(deck.Seven, deck.Spades), c(deck.Two, deck.Hearts)})

	if ak <= sevenTwo {
		t.Errorf("AK (%v) should beat 72o (%v)", ak, sevenTwo)
	}
}
