// Package game implements the heads-up no-limit hold'em betting state
// machine: blinds, streets, the four player actions, all-in handling,
// showdown, and pot award.
//
// All state transitions are value-in/value-out. A GameState passed to
// any function here is never mutated; the returned state is a fresh
// snapshot with no slices shared with the input. Callers own the state
// between calls.
package game
