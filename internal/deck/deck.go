package deck

import "github.com/lox/headsup/internal/rng"

// Deck is an ordered stack of cards. Dealing consumes from the tail so
// that a cloned slice and the original never share dealt cards.
type Deck []Card

// New builds the 52-card deck and Fisher-Yates shuffles it using the
// provided random source.
func New(r rng.Rng) Deck {
	d := make(Deck, 0, 52)
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d = append(d, NewCard(rank, suit))
		}
	}
	for i := len(d) - 1; i > 0; i-- {
		j := int(r.Next() * float64(i+1))
		d[i], d[j] = d[j], d[i]
	}
	return d
}

// Clone returns an independent copy of the deck.
func (d Deck) Clone() Deck {
	if d == nil {
		return nil
	}
	out := make(Deck, len(d))
	copy(out, d)
	return out
}

// Draw removes and returns the card at the tail of the deck.
func (d *Deck) Draw() (Card, bool) {
	if len(*d) == 0 {
		return Card{}, false
	}
	card := (*d)[len(*d)-1]
	*d = (*d)[:len(*d)-1]
	return card, true
}

// Burn discards one card from the tail.
func (d *Deck) Burn() bool {
	_, ok := d.Draw()
	return ok
}

// Remaining returns the number of undealt cards.
func (d Deck) Remaining() int {
	return len(d)
}
