package game

import "github.com/lox/headsup/internal/deck"

// EventType identifies a state transition observed by the caller.
type EventType int

const (
	EventHandStarted EventType = iota
	EventAction
	EventStreetChanged
	EventCardsDealt
	EventHandComplete
)

func (et EventType) String() string {
	switch et {
	case EventHandStarted:
		return "hand_started"
	case EventAction:
		return "action"
	case EventStreetChanged:
		return "street_changed"
	case EventCardsDealt:
		return "cards_dealt"
	case EventHandComplete:
		return "hand_complete"
	default:
		return "unknown"
	}
}

// CompletionReason explains why a hand ended.
type CompletionReason int

const (
	CompletedByFold CompletionReason = iota
	CompletedByShowdown
	CompletedByAllIn
)

func (cr CompletionReason) String() string {
	switch cr {
	case CompletedByFold:
		return "fold"
	case CompletedByShowdown:
		return "showdown"
	case CompletedByAllIn:
		return "all-in"
	default:
		return "unknown"
	}
}

// Event is one entry in the ordered log a single ApplyAction call
// produces. Fields beyond Type are populated per event kind. Events are
// purely observational; the engine never consumes them.
type Event struct {
	Type        EventType
	HandNumber  int              // EventHandStarted
	Action      Action           // EventAction
	PlayerIndex int              // EventAction
	Street      Street           // EventStreetChanged, EventCardsDealt
	Cards       []deck.Card      // EventCardsDealt: newly revealed cards only
	Reason      CompletionReason // EventHandComplete
}
