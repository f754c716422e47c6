// Package history accumulates per-hand records for a match and exports
// them in the PHH (poker hand history) interchange format.
package history

import (
	"fmt"
	"strings"

	"github.com/lox/headsup/internal/deck"
	"github.com/lox/headsup/internal/evaluator"
	"github.com/lox/headsup/internal/game"
)

// Record is the completed summary of one hand.
type Record struct {
	HandNumber     int
	PlayerNames    [2]string
	StartStacks    [2]int
	EndStacks      [2]int
	HoleCards      [2][]deck.Card
	CommunityCards []deck.Card
	FinalPot       int
	Winner         int // game.SplitPot on a chop
	ShowdownHands  [2]*evaluator.EvaluatedHand
	Actions        []string
	SmallBlind     int
	BigBlind       int
	ButtonPlayer   int
}

// Log accumulates hand records across a match. It is a caller-side
// observer; the engine knows nothing about it.
type Log struct {
	hands       []Record
	actions     []string
	startStacks [2]int
}

func NewLog() *Log {
	return &Log{}
}

// StartHand begins a new record from a freshly dealt state, capturing
// starting stacks and the hole-card deals. Stacks are taken before
// blinds so the record balances against the previous hand.
func (l *Log) StartHand(state game.GameState) {
	l.actions = l.actions[:0]
	for i, p := range state.Players {
		l.startStacks[i] = p.Stack + p.Bet
		l.actions = append(l.actions, fmt.Sprintf("d dh p%d %s", i+1, cardCodes(p.HoleCards)))
	}
}

// Observe folds an engine event into the current hand's action list.
// Only player actions and board reveals are recorded.
func (l *Log) Observe(ev game.Event) {
	switch ev.Type {
	case game.EventAction:
		if s := formatAction(ev.PlayerIndex, ev.Action); s != "" {
			l.actions = append(l.actions, s)
		}
	case game.EventCardsDealt:
		l.actions = append(l.actions, "d db "+cardCodes(ev.Cards))
	}
}

// CompleteHand closes the current record. Showdown hands are nil when
// the hand ended on a fold.
func (l *Log) CompleteHand(state game.GameState, finalPot, winner int, h0, h1 *evaluator.EvaluatedHand) {
	rec := Record{
		HandNumber:     state.HandNumber,
		PlayerNames:    [2]string{state.Players[0].Name, state.Players[1].Name},
		StartStacks:    l.startStacks,
		EndStacks:      [2]int{state.Players[0].Stack, state.Players[1].Stack},
		CommunityCards: append([]deck.Card(nil), state.CommunityCards...),
		FinalPot:       finalPot,
		Winner:         winner,
		ShowdownHands:  [2]*evaluator.EvaluatedHand{h0, h1},
		Actions:        append([]string(nil), l.actions...),
		SmallBlind:     state.SmallBlind,
		BigBlind:       state.BigBlind,
		ButtonPlayer:   state.ButtonIndex(),
	}
	for i, p := range state.Players {
		rec.HoleCards[i] = append([]deck.Card(nil), p.HoleCards...)
	}

	l.hands = append(l.hands, rec)
	l.actions = l.actions[:0]
	l.startStacks = [2]int{}
}

// Hands returns the completed records in order.
func (l *Log) Hands() []Record {
	return l.hands
}

func (l *Log) Len() int {
	return len(l.hands)
}

// Clear discards all records.
func (l *Log) Clear() {
	l.hands = nil
	l.actions = nil
	l.startStacks = [2]int{}
}

// formatAction renders a player action in PHH vocabulary: f, cc, or
// cbr with the total bet level.
func formatAction(seat int, a game.Action) string {
	player := fmt.Sprintf("p%d", seat+1)
	switch a.Type {
	case game.Fold:
		return player + " f"
	case game.Check, game.Call:
		return player + " cc"
	case game.Raise:
		return fmt.Sprintf("%s cbr %d", player, a.Amount)
	default:
		return ""
	}
}

// cardCodes renders cards in PHH notation, e.g. "AhTs".
func cardCodes(cards []deck.Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(cardCode(c))
	}
	return b.String()
}

func cardCode(c deck.Card) string {
	var rank string
	switch c.Rank {
	case deck.Ten:
		rank = "T"
	case deck.Jack:
		rank = "J"
	case deck.Queen:
		rank = "Q"
	case deck.King:
		rank = "K"
	case deck.Ace:
		rank = "A"
	default:
		rank = fmt.Sprintf("%d", int(c.Rank))
	}

	var suit string
	switch c.Suit {
	case deck.Hearts:
		suit = "h"
	case deck.Diamonds:
		suit = "d"
	case deck.Clubs:
		suit = "c"
	default:
		suit = "s"
	}

	return rank + suit
}
