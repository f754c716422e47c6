package game

import "fmt"

// ActionType enumerates the player actions plus the start-hand
// pseudo-action.
type ActionType int

const (
	StartHand ActionType = iota
	Fold
	Check
	Call
	Raise
)

func (a ActionType) String() string {
	switch a {
	case StartHand:
		return "start-hand"
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Raise:
		return "raise"
	default:
		return "unknown"
	}
}

// Action is a tagged action. Amount is only meaningful for Raise and is
// the total bet level, not the incremental chips added.
type Action struct {
	Type   ActionType
	Amount int
}

func (a Action) String() string {
	if a.Type == Raise {
		return fmt.Sprintf("raise to %d", a.Amount)
	}
	return a.Type.String()
}

// NewRaise builds a raise to the given total bet level.
func NewRaise(amount int) Action {
	return Action{Type: Raise, Amount: amount}
}

// ValidActions describes what the current player may legally do.
type ValidActions struct {
	CanCheck   bool
	CanCall    bool
	CanBet     bool
	CanRaise   bool
	MinRaise   int
	MaxRaise   int
	CallAmount int
}

// GetValidActions is a pure query over the current player's options.
// MaxRaise is the effective-stack cap: neither player may bet beyond
// what the opponent could ever call.
func GetValidActions(state GameState) ValidActions {
	current := state.Players[state.CurrentPlayerIndex]
	opponent := state.Players[1-state.CurrentPlayerIndex]

	callAmount := opponent.Bet - current.Bet
	canBet := current.Bet == 0 && opponent.Bet == 0 && current.Stack > 0

	minRaise := opponent.Bet + state.LastRaiseAmount
	if canBet {
		minRaise = state.BigBlind
	}

	return ValidActions{
		CanCheck:   current.Bet == opponent.Bet,
		CanCall:    opponent.Bet > current.Bet && current.Stack > 0,
		CanBet:     canBet,
		CanRaise:   opponent.Bet > 0 && current.Stack > callAmount,
		MinRaise:   minRaise,
		MaxRaise:   min(current.Stack+current.Bet, opponent.Stack+opponent.Bet),
		CallAmount: callAmount,
	}
}
