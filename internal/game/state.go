package game

import (
	"github.com/lox/headsup/internal/deck"
	"github.com/lox/headsup/internal/rng"
)

// Street represents a betting phase
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "Preflop"
	case Flop:
		return "Flop"
	case Turn:
		return "Turn"
	case River:
		return "River"
	case Showdown:
		return "Showdown"
	default:
		return "Unknown"
	}
}

// MatchStatus reports whether the match has concluded. Winner is only
// meaningful when Concluded is true.
type MatchStatus struct {
	Concluded bool
	Winner    int
}

// Settings configures a new match.
type Settings struct {
	PlayerName    string
	OpponentName  string
	PlayerKind    PlayerKind
	OpponentKind  PlayerKind
	StartingStack int
	SmallBlind    int
	BigBlind      int
}

// GameState is the full state of one table. It is a value: every engine
// function returns a new snapshot rather than mutating its input.
type GameState struct {
	HandNumber         int
	Street             Street
	Pot                int
	CommunityCards     []deck.Card
	Players            [2]Player
	CurrentPlayerIndex int
	Deck               deck.Deck
	SmallBlind         int
	BigBlind           int
	LastRaiseAmount    int
	HandComplete       bool
	Status             MatchStatus
}

// clone deep-copies the state so mutators never alias the caller's
// slices.
func (s GameState) clone() GameState {
	out := s
	out.Players[0] = s.Players[0].clone()
	out.Players[1] = s.Players[1].clone()
	if s.CommunityCards != nil {
		out.CommunityCards = make([]deck.Card, len(s.CommunityCards))
		copy(out.CommunityCards, s.CommunityCards)
	}
	out.Deck = s.Deck.Clone()
	return out
}

// ButtonIndex returns the index of the player currently on the button.
func (s GameState) ButtonIndex() int {
	if s.Players[0].IsButton {
		return 0
	}
	return 1
}

// InitializeGame builds the initial match state: player 0 on the
// button, zero pot, no deck. No cards are dealt until StartNewHand.
func InitializeGame(settings Settings) GameState {
	return GameState{
		HandNumber: 0,
		Street:     Preflop,
		Players: [2]Player{
			{
				Name:     settings.PlayerName,
				Kind:     settings.PlayerKind,
				Stack:    settings.StartingStack,
				IsButton: true,
			},
			{
				Name:  settings.OpponentName,
				Kind:  settings.OpponentKind,
				Stack: settings.StartingStack,
			},
		},
		SmallBlind:      settings.SmallBlind,
		BigBlind:        settings.BigBlind,
		LastRaiseAmount: settings.BigBlind,
	}
}

// StartNewHand flips the button, shuffles a fresh deck, posts blinds
// capped at each stack, and deals hole cards. Heads-up the button posts
// the small blind and acts first preflop.
func StartNewHand(state GameState, r rng.Rng) GameState {
	s := state.clone()

	s.Players[0].IsButton = !s.Players[0].IsButton
	s.Players[1].IsButton = !s.Players[1].IsButton

	for i := range s.Players {
		s.Players[i].Bet = 0
		s.Players[i].HoleCards = nil
		s.Players[i].Folded = false
		s.Players[i].HasActed = false
	}

	s.Deck = deck.New(r)
	s.CommunityCards = nil
	s.Pot = 0
	s.Street = Preflop
	s.HandNumber++
	s.HandComplete = false

	button := s.ButtonIndex()
	bb := 1 - button

	sbAmount := min(s.SmallBlind, s.Players[button].Stack)
	bbAmount := min(s.BigBlind, s.Players[bb].Stack)
	s.Players[button].Bet = sbAmount
	s.Players[button].Stack -= sbAmount
	s.Players[bb].Bet = bbAmount
	s.Players[bb].Stack -= bbAmount
	s.Pot = sbAmount + bbAmount

	// Min-raise math keys off what was actually posted, which matters
	// when a short stack could not cover a full blind.
	s.LastRaiseAmount = bbAmount - sbAmount

	s.Players[0].HoleCards = []deck.Card{mustDraw(&s.Deck), mustDraw(&s.Deck)}
	s.Players[1].HoleCards = []deck.Card{mustDraw(&s.Deck), mustDraw(&s.Deck)}

	s.CurrentPlayerIndex = button

	return s
}

func mustDraw(d *deck.Deck) deck.Card {
	card, ok := d.Draw()
	if !ok {
		panic("game: deck exhausted")
	}
	return card
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
