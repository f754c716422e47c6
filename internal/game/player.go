package game

import "github.com/lox/headsup/internal/deck"

// PlayerKind distinguishes a human seat from an automated one. The
// engine treats both identically; callers use it to route decisions.
type PlayerKind int

const (
	Human PlayerKind = iota
	Automated
)

func (k PlayerKind) String() string {
	switch k {
	case Human:
		return "human"
	case Automated:
		return "automated"
	default:
		return "unknown"
	}
}

// Player holds one seat's per-match identity and per-hand state.
// Indices 0 and 1 are stable identities across the match, not seats.
type Player struct {
	Name      string
	Kind      PlayerKind
	Stack     int
	Bet       int
	HoleCards []deck.Card
	Folded    bool
	IsButton  bool
	HasActed  bool
}

func (p Player) clone() Player {
	out := p
	if p.HoleCards != nil {
		out.HoleCards = make([]deck.Card, len(p.HoleCards))
		copy(out.HoleCards, p.HoleCards)
	}
	return out
}
