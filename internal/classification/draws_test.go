package classification

import (
	"testing"

	"github.com/lox/headsup/internal/deck"
)

func TestAnalyzeDraws(t *testing.T) {
	tests := []struct {
		name      string
		hole      []deck.Card
		board     []deck.Card
		flushDraw bool
		openEnded bool
		outs      int
	}{
		{
			"flush draw",
			[]deck.Card{c(deck.Ace, deck.Hearts), c(deck.King, deck.Hearts)},
			[]deck.Card{c(deck.Nine, deck.Hearts), c(deck.Four, deck.Hearts), c(deck.Two, deck.Spades)},
			true, false, 9,
		},
		{
			"open-ended straight draw",
			[]deck.Card{c(deck.Nine, deck.Spades), c(deck.Eight, deck.Clubs)},
			[]deck.Card{c(deck.Seven, deck.Hearts), c(deck.Six, deck.Diamonds), c(deck.Two, deck.Spades)},
			false, true, 8,
		},
		{
			"combo draw",
			[]deck.Card{c(deck.Nine, deck.Hearts), c(deck.Eight, deck.Hearts)},
			[]deck.Card{c(deck.Seven, deck.Hearts), c(deck.Six, deck.Hearts), c(deck.Two, deck.Spades)},
			true, true, 17,
		},
		{
			"no draw",
			[]deck.Card{c(deck.Ace, deck.Hearts), c(deck.Two, deck.Clubs)},
			[]deck.Card{c(deck.King, deck.Spades), c(deck.Eight, deck.Diamonds), c(deck.Four, deck.Hearts)},
			false, false, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := AnalyzeDraws(tt.hole, tt.board)
			if info.FlushDraw != tt.flushDraw {
				t.Errorf("FlushDraw = %v, want %v", info.FlushDraw, tt.flushDraw)
			}
			if info.OpenEnded != tt.openEnded {
				t.Errorf("OpenEnded = %v, want %v", info.OpenEnded, tt.openEnded)
			}
			if info.Outs != tt.outs {
				t.Errorf("Outs = %d, want %d", info.Outs, tt.outs)
			}
		})
	}
}

func TestAnalyzeDrawsGutshot(t *testing.T) {
	// 9-8 with J-7 board: needs a ten.
	info := AnalyzeDraws(
		[]deck.Card{c(deck.Nine, deck.Spades), c(deck.Eight, deck.Clubs)},
		[]deck.Card{c(deck.Jack, deck.Hearts), c(deck.Seven, deck.Diamonds), c(deck.Two, deck.Spades)},
	)
	if !info.Gutshot {
		t.Error("expected gutshot")
	}
	if info.OpenEnded {
		t.Error("unexpected open-ended draw")
	}
	if info.Outs != 4 {
		t.Errorf("Outs = %d, want 4", info.Outs)
	}
}

func TestAnalyzeSimpleDraws(t *testing.T) {
	t.Run("preflop reports nothing", func(t *testing.T) {
		draws := AnalyzeSimpleDraws([]deck.Card{c(deck.Ace, deck.Hearts), c(deck.King, deck.Hearts)}, nil)
		if draws.FlushDraw || draws.StraightDraw || draws.Outs != 0 {
			t.Errorf("expected zero draws preflop, got %+v", draws)
		}
	})

	t.Run("flush draw", func(t *testing.T) {
		draws := AnalyzeSimpleDraws(
			[]deck.Card{c(deck.Ace, deck.Hearts), c(deck.King, deck.Hearts)},
			[]deck.Card{c(deck.Nine, deck.Hearts), c(deck.Four, deck.Hearts), c(deck.Two, deck.Spades)},
		)
		if !draws.FlushDraw {
			t.Error("expected flush draw")
		}
		if draws.Outs != 9 {
			t.Errorf("Outs = %d, want 9", draws.Outs)
		}
	})

	t.Run("wheel draw through the ace", func(t *testing.T) {
		draws := AnalyzeSimpleDraws(
			[]deck.Card{c(deck.Ace, deck.Hearts), c(deck.Two, deck.Clubs)},
			[]deck.Card{c(deck.Three, deck.Spades), c(deck.Four, deck.Diamonds), c(deck.King, deck.Hearts)},
		)
		if !draws.StraightDraw {
			t.Error("expected wheel draw via low ace")
		}
	})

	t.Run("combo draw counts overlapping outs once", func(t *testing.T) {
		draws := AnalyzeSimpleDraws(
			[]deck.Card{c(deck.Nine, deck.Hearts), c(deck.Eight, deck.Hearts)},
			[]deck.Card{c(deck.Seven, deck.Hearts), c(deck.Six, deck.Hearts), c(deck.Two, deck.Spades)},
		)
		if !draws.FlushDraw || !draws.StraightDraw {
			t.Errorf("expected combo draw, got %+v", draws)
		}
		if draws.Outs != 15 {
			t.Errorf("Outs = %d, want 15", draws.Outs)
		}
	})
}
