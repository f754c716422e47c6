// Package bot provides the automated decision engines and the registry
// callers use to look them up by identifier.
//
// Engines share the shape decide(state, playerIndex, rng) -> Action and
// only ever return actions permitted by game.GetValidActions.
package bot

import (
	"sort"

	"github.com/lox/headsup/internal/game"
	"github.com/lox/headsup/internal/rng"
)

// DecideFunc produces an action for the given seat.
type DecideFunc func(state game.GameState, playerIndex int, r rng.Rng) game.Action

// Definition is one selectable decision engine.
type Definition struct {
	ID     string
	Name   string
	Decide DecideFunc
}

// Registry maps engine identifiers to definitions. It is built
// explicitly by the caller at startup; there is no implicit global
// registration.
type Registry map[string]Definition

// NewRegistry builds a registry from the given definitions. A later
// definition with a duplicate ID replaces an earlier one.
func NewRegistry(defs ...Definition) Registry {
	r := make(Registry, len(defs))
	for _, def := range defs {
		r[def.ID] = def
	}
	return r
}

// DefaultRegistry holds every built-in engine.
func DefaultRegistry() Registry {
	return NewRegistry(Basic(), Advanced())
}

// Get looks up an engine by identifier.
func (r Registry) Get(id string) (Definition, bool) {
	def, ok := r[id]
	return def, ok
}

// IDs returns the registered identifiers in sorted order.
func (r Registry) IDs() []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// potOdds is the price of a call as a fraction of the resulting pot, or
// zero when there is nothing to call.
func potOdds(state game.GameState, va game.ValidActions) float64 {
	if !va.CanCall {
		return 0
	}
	return float64(va.CallAmount) / float64(state.Pot+va.CallAmount)
}

// callOrCheck and checkOrFold keep fallback paths inside the action
// contract when the preferred option is unavailable.
func callOrCheck(va game.ValidActions) game.Action {
	if va.CanCall {
		return game.Action{Type: game.Call}
	}
	return game.Action{Type: game.Check}
}

func checkOrFold(va game.ValidActions) game.Action {
	if va.CanCheck {
		return game.Action{Type: game.Check}
	}
	return game.Action{Type: game.Fold}
}
