package game

import (
	"errors"
	"fmt"

	"github.com/lox/headsup/internal/deck"
	"github.com/lox/headsup/internal/rng"
)

// ErrInvalidAction marks a programming-contract violation: an action
// that GetValidActions rules out. Arithmetic clamping of raise and call
// amounts is never an error.
var ErrInvalidAction = errors.New("invalid action")

// ApplyAction is the single entry point for advancing a table. It
// validates the action, dispatches to the relevant mutator, and
// synthesizes the ordered event log by diffing street and community
// cards across the transition.
func ApplyAction(state GameState, action Action, r rng.Rng) (GameState, []Event, error) {
	if err := validateAction(state, action); err != nil {
		return state, nil, err
	}

	prevStreet := state.Street
	prevCommunity := len(state.CommunityCards)

	var next GameState
	events := make([]Event, 0, 4)

	switch action.Type {
	case StartHand:
		next = StartNewHand(state, r)
		events = append(events, Event{Type: EventHandStarted, HandNumber: next.HandNumber})
	case Fold:
		next = PlayerFold(state)
		events = append(events, Event{Type: EventAction, Action: action, PlayerIndex: state.CurrentPlayerIndex})
	case Check:
		next = PlayerCheck(state)
		events = append(events, Event{Type: EventAction, Action: action, PlayerIndex: state.CurrentPlayerIndex})
	case Call:
		next = PlayerCall(state)
		events = append(events, Event{Type: EventAction, Action: action, PlayerIndex: state.CurrentPlayerIndex})
	case Raise:
		next = PlayerRaise(state, action.Amount)
		events = append(events, Event{Type: EventAction, Action: action, PlayerIndex: state.CurrentPlayerIndex})
	default:
		return state, nil, fmt.Errorf("%w: unknown action type %d", ErrInvalidAction, action.Type)
	}

	events = append(events, transitionEvents(prevStreet, prevCommunity, next)...)

	if next.HandComplete {
		reason := CompletedByShowdown
		switch {
		case action.Type == Fold:
			reason = CompletedByFold
		case next.Street == Showdown && prevStreet != River:
			reason = CompletedByAllIn
		}
		events = append(events, Event{Type: EventHandComplete, Reason: reason})
	}

	return next, events, nil
}

func validateAction(state GameState, action Action) error {
	if action.Type == StartHand {
		if state.Status.Concluded {
			return fmt.Errorf("%w: match already concluded", ErrInvalidAction)
		}
		if state.HandNumber > 0 && !state.HandComplete {
			return fmt.Errorf("%w: hand %d still in progress", ErrInvalidAction, state.HandNumber)
		}
		return nil
	}

	if state.HandComplete {
		return fmt.Errorf("%w: hand is complete", ErrInvalidAction)
	}

	va := GetValidActions(state)
	switch action.Type {
	case Fold:
		return nil
	case Check:
		if !va.CanCheck {
			return fmt.Errorf("%w: cannot check facing a bet", ErrInvalidAction)
		}
	case Call:
		if !va.CanCall {
			return fmt.Errorf("%w: nothing to call", ErrInvalidAction)
		}
	case Raise:
		if !va.CanBet && !va.CanRaise {
			return fmt.Errorf("%w: cannot raise", ErrInvalidAction)
		}
	}
	return nil
}

// transitionEvents reports each street change and card reveal between
// two states. An all-in runout that jumps several streets still yields
// one street/cards pair per intermediate street, in dealing order.
func transitionEvents(prevStreet Street, prevCommunity int, next GameState) []Event {
	if next.Street == prevStreet {
		return nil
	}

	var events []Event
	dealt := prevCommunity
	for st := prevStreet + 1; st <= next.Street; st++ {
		if st == Showdown {
			events = append(events, Event{Type: EventStreetChanged, Street: Showdown})
			break
		}

		events = append(events, Event{Type: EventStreetChanged, Street: st})
		total := communityCount(st)
		if total > dealt {
			revealed := make([]deck.Card, total-dealt)
			copy(revealed, next.CommunityCards[dealt:total])
			events = append(events, Event{Type: EventCardsDealt, Street: st, Cards: revealed})
			dealt = total
		}
	}
	return events
}

// communityCount is the board size once the given street is dealt.
func communityCount(s Street) int {
	switch s {
	case Flop:
		return 3
	case Turn:
		return 4
	case River:
		return 5
	default:
		return 0
	}
}
