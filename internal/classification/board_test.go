package classification

import (
	"testing"

	"github.com/lox/headsup/internal/deck"
)

func c(r deck.Rank, s deck.Suit) deck.Card {
	return deck.NewCard(r, s)
}

func TestAnalyzeTexture(t *testing.T) {
	tests := []struct {
		name  string
		board []deck.Card
		want  Texture
	}{
		{
			"preflop is dry",
			nil,
			Dry,
		},
		{
			"two-tone connected flop is wet",
			[]deck.Card{c(deck.Nine, deck.Hearts), c(deck.Eight, deck.Hearts), c(deck.Seven, deck.Spades)},
			Wet,
		},
		{
			"disconnected two-tone is semi-connected",
			[]deck.Card{c(deck.Ace, deck.Hearts), c(deck.Eight, deck.Hearts), c(deck.Two, deck.Spades)},
			SemiConnected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnalyzeTexture(tt.board); got != tt.want {
				t.Errorf("AnalyzeTexture() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnalyzeDanger(t *testing.T) {
	tests := []struct {
		name  string
		board []deck.Card
		want  Danger
	}{
		{
			"short board is dry",
			[]deck.Card{c(deck.Ace, deck.Hearts)},
			DryBoard,
		},
		{
			"rainbow disconnected low flop",
			[]deck.Card{c(deck.Two, deck.Hearts), c(deck.Seven, deck.Spades), c(deck.Queen, deck.Clubs)},
			DryBoard,
		},
		{
			"monotone connected board is very dangerous",
			[]deck.Card{c(deck.Nine, deck.Hearts), c(deck.Eight, deck.Hearts), c(deck.Seven, deck.Hearts), c(deck.Six, deck.Hearts)},
			VeryDangerousBoard,
		},
		{
			"paired board is moderate",
			[]deck.Card{c(deck.King, deck.Hearts), c(deck.King, deck.Spades), c(deck.Four, deck.Clubs)},
			ModerateBoard,
		},
		{
			"three-flush connected board is dangerous",
			[]deck.Card{c(deck.Ten, deck.Hearts), c(deck.Nine, deck.Hearts), c(deck.Six, deck.Hearts)},
			DangerousBoard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnalyzeDanger(tt.board); got != tt.want {
				t.Errorf("AnalyzeDanger() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnalyzeFlags(t *testing.T) {
	t.Run("paired board", func(t *testing.T) {
		flags := AnalyzeFlags([]deck.Card{c(deck.King, deck.Hearts), c(deck.King, deck.Spades), c(deck.Two, deck.Clubs)})
		if !flags.Paired {
			t.Error("expected paired flag")
		}
		if !flags.Scary {
			t.Error("paired boards are scary")
		}
	})

	t.Run("three-flush board", func(t *testing.T) {
		flags := AnalyzeFlags([]deck.Card{c(deck.King, deck.Hearts), c(deck.Eight, deck.Hearts), c(deck.Two, deck.Hearts)})
		if !flags.DrawHeavy {
			t.Error("expected draw-heavy flag")
		}
		if flags.Paired {
			t.Error("unexpected paired flag")
		}
	})

	t.Run("dry board", func(t *testing.T) {
		flags := AnalyzeFlags([]deck.Card{c(deck.King, deck.Hearts), c(deck.Eight, deck.Spades), c(deck.Two, deck.Clubs)})
		if flags.DrawHeavy || flags.Scary || flags.Paired {
			t.Errorf("expected no flags, got %+v", flags)
		}
	})

	t.Run("preflop", func(t *testing.T) {
		flags := AnalyzeFlags(nil)
		if flags.DrawHeavy || flags.Scary || flags.Paired {
			t.Errorf("expected zero flags preflop, got %+v", flags)
		}
	})
}
