package history

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lox/headsup/internal/game"
)

// PHHHand is one hand in PHH TOML layout.
type PHHHand struct {
	Variant           string   `toml:"variant"`
	Antes             []int    `toml:"antes"`
	BlindsOrStraddles []int    `toml:"blinds_or_straddles"`
	MinBet            int      `toml:"min_bet"`
	StartingStacks    []int    `toml:"starting_stacks"`
	FinishingStacks   []int    `toml:"finishing_stacks"`
	Winnings          []int    `toml:"winnings"`
	Players           []string `toml:"players"`
	Actions           []string `toml:"actions"`
	HandID            string   `toml:"hand"`
}

// PHH converts a record to the interchange layout. Seat order follows
// PHH convention: the small blind (button, heads-up) is seat one.
func (r Record) PHH() *PHHHand {
	button := r.ButtonPlayer
	other := 1 - button

	winnings := []int{0, 0}
	switch r.Winner {
	case game.SplitPot:
		// The odd chip goes to the button, seated first.
		winnings[0] = r.FinalPot/2 + r.FinalPot%2
		winnings[1] = r.FinalPot / 2
	default:
		winnings[seatOf(r.Winner, button)] = r.FinalPot
	}

	actions := make([]string, len(r.Actions))
	for i, a := range r.Actions {
		actions[i] = reseatAction(a, button)
	}

	return &PHHHand{
		Variant:           "NT", // no-limit Texas hold'em
		Antes:             []int{0, 0},
		BlindsOrStraddles: []int{r.SmallBlind, r.BigBlind},
		MinBet:            r.BigBlind,
		StartingStacks:    []int{r.StartStacks[button], r.StartStacks[other]},
		FinishingStacks:   []int{r.EndStacks[button], r.EndStacks[other]},
		Winnings:          winnings,
		Players:           []string{r.PlayerNames[button], r.PlayerNames[other]},
		Actions:           actions,
		HandID:            fmt.Sprintf("%d", r.HandNumber),
	}
}

// EncodePHH writes one record to the writer in PHH TOML format.
func EncodePHH(w io.Writer, r Record) error {
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(r.PHH())
}

// ExportPHH writes every record in the log, separated by blank lines.
func (l *Log) ExportPHH(w io.Writer) error {
	for i, rec := range l.hands {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := EncodePHH(w, rec); err != nil {
			return fmt.Errorf("history: encoding hand %d: %w", rec.HandNumber, err)
		}
	}
	return nil
}

// seatOf maps an engine player index to its zero-based PHH seat, with
// the button seated first.
func seatOf(playerIndex, button int) int {
	if playerIndex == button {
		return 0
	}
	return 1
}

// reseatAction rewrites p1/p2 tokens from engine indices to PHH seats.
func reseatAction(action string, button int) string {
	if button == 0 {
		return action
	}
	// Engine player 2 holds the button, so the seats swap.
	fields := strings.Fields(action)
	for i, f := range fields {
		switch f {
		case "p1":
			fields[i] = "p2"
		case "p2":
			fields[i] = "p1"
		}
	}
	return strings.Join(fields, " ")
}
