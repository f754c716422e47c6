// Package evaluator scores 5-7 card poker hands into a total order.
// Each hand category occupies a disjoint numeric base range so any hand
// of a higher category outranks any hand of a lower one; kickers are
// packed into the low-order digits to break ties within a category.
package evaluator

import (
	"fmt"
	"sort"

	"github.com/lox/headsup/internal/deck"
)

// Category base values. One hundred million per category leaves ample
// room for kicker arithmetic below each base.
const (
	pairBase          = 100000000
	twoPairBase       = 200000000
	threeOfAKindBase  = 300000000
	straightBase      = 400000000
	flushBase         = 500000000
	fullHouseBase     = 600000000
	fourOfAKindBase   = 700000000
	straightFlushBase = 800000000
	royalFlushBase    = 900000000
)

// EvaluatedHand is the result of scoring a hand. Equal Value means an
// exact tie.
type EvaluatedHand struct {
	Rank        HandRank
	Value       int
	Description string
	Cards       []deck.Card
}

// Compare returns positive if a beats b, negative if b beats a, zero on
// an exact tie.
func Compare(a, b EvaluatedHand) int {
	return a.Value - b.Value
}

// Evaluate scores 5 to 7 cards, returning the best five-card hand.
// Fewer than 5 cards yields the incomplete-hand sentinel rather than an
// error, since hands are legitimately probed before the river.
func Evaluate(cards []deck.Card) EvaluatedHand {
	if len(cards) < 5 {
		return EvaluatedHand{
			Rank:        HighCard,
			Value:       0,
			Description: "Incomplete hand",
			Cards:       []deck.Card{},
		}
	}

	if len(cards) == 5 {
		combo := make([]deck.Card, 5)
		copy(combo, cards)
		return evaluateFive(combo)
	}

	// 6 or 7 cards: exhaustively evaluate every C(n,5) subset and keep
	// the maximum. 21 subsets for 7 cards.
	var best EvaluatedHand
	first := true
	for _, combo := range fiveCardCombinations(cards) {
		ev := evaluateFive(combo)
		if first || ev.Value > best.Value {
			best = ev
			first = false
		}
	}
	return best
}

func fiveCardCombinations(cards []deck.Card) [][]deck.Card {
	n := len(cards)
	var combos [][]deck.Card
	switch n {
	case 6:
		for skip := 0; skip < 6; skip++ {
			combo := make([]deck.Card, 0, 5)
			for idx, c := range cards {
				if idx != skip {
					combo = append(combo, c)
				}
			}
			combos = append(combos, combo)
		}
	case 7:
		for i := 0; i < 7; i++ {
			for j := i + 1; j < 7; j++ {
				combo := make([]deck.Card, 0, 5)
				for idx, c := range cards {
					if idx != i && idx != j {
						combo = append(combo, c)
					}
				}
				combos = append(combos, combo)
			}
		}
	}
	return combos
}

// rankGroup is a rank value with its multiplicity in the hand.
type rankGroup struct {
	rank  int
	count int
}

func evaluateFive(cards []deck.Card) EvaluatedHand {
	values := make([]int, 5)
	counts := make(map[int]int, 5)
	for i, c := range cards {
		v := c.Value()
		values[i] = v
		counts[v]++
	}

	sorted := make([]int, 5)
	copy(sorted, values)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	// Groups ordered by count descending, then rank descending, so the
	// primary rank (quad, trip, pair) comes first and kickers follow.
	groups := make([]rankGroup, 0, 5)
	for rank, count := range counts {
		groups = append(groups, rankGroup{rank: rank, count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})

	isFlush := true
	for _, c := range cards {
		if c.Suit != cards[0].Suit {
			isFlush = false
			break
		}
	}

	isStraight := checkStraight(sorted)
	isWheel := checkWheel(sorted)

	if isFlush && isStraight && sorted[0] == 14 && sorted[1] == 13 {
		return EvaluatedHand{
			Rank:        RoyalFlush,
			Value:       royalFlushBase,
			Description: "Royal Flush",
			Cards:       cards,
		}
	}

	if isFlush && (isStraight || isWheel) {
		high := sorted[0]
		if isWheel {
			high = 5
		}
		return EvaluatedHand{
			Rank:        StraightFlush,
			Value:       straightFlushBase + high,
			Description: "Straight Flush",
			Cards:       cards,
		}
	}

	if groups[0].count == 4 {
		quad, kicker := groups[0].rank, groups[1].rank
		return EvaluatedHand{
			Rank:        FourOfAKind,
			Value:       fourOfAKindBase + quad*100 + kicker,
			Description: fmt.Sprintf("Four %ss", deck.Rank(quad).Name()),
			Cards:       cards,
		}
	}

	if groups[0].count == 3 && groups[1].count == 2 {
		trip, pair := groups[0].rank, groups[1].rank
		return EvaluatedHand{
			Rank:        FullHouse,
			Value:       fullHouseBase + trip*100 + pair,
			Description: fmt.Sprintf("Full House, %ss over %ss", deck.Rank(trip).Name(), deck.Rank(pair).Name()),
			Cards:       cards,
		}
	}

	if isFlush {
		return EvaluatedHand{
			Rank:        Flush,
			Value:       flushBase + kickerValue(sorted),
			Description: fmt.Sprintf("Flush, %s high", deck.Rank(sorted[0]).Name()),
			Cards:       cards,
		}
	}

	if isStraight || isWheel {
		high := sorted[0]
		if isWheel {
			high = 5
		}
		return EvaluatedHand{
			Rank:        Straight,
			Value:       straightBase + high,
			Description: fmt.Sprintf("Straight, %s high", deck.Rank(high).Name()),
			Cards:       cards,
		}
	}

	if groups[0].count == 3 {
		trip := groups[0].rank
		k1, k2 := groups[1].rank, groups[2].rank
		return EvaluatedHand{
			Rank:        ThreeOfAKind,
			Value:       threeOfAKindBase + trip*10000 + k1*100 + k2,
			Description: fmt.Sprintf("Three %ss", deck.Rank(trip).Name()),
			Cards:       cards,
		}
	}

	if groups[0].count == 2 && groups[1].count == 2 {
		high, low, kicker := groups[0].rank, groups[1].rank, groups[2].rank
		return EvaluatedHand{
			Rank:        TwoPair,
			Value:       twoPairBase + high*10000 + low*100 + kicker,
			Description: fmt.Sprintf("Two Pair, %ss and %ss", deck.Rank(high).Name(), deck.Rank(low).Name()),
			Cards:       cards,
		}
	}

	if groups[0].count == 2 {
		pair := groups[0].rank
		k1, k2, k3 := groups[1].rank, groups[2].rank, groups[3].rank
		return EvaluatedHand{
			Rank:        Pair,
			Value:       pairBase + pair*1000000 + k1*10000 + k2*100 + k3,
			Description: fmt.Sprintf("Pair of %ss", deck.Rank(pair).Name()),
			Cards:       cards,
		}
	}

	return EvaluatedHand{
		Rank:        HighCard,
		Value:       kickerValue(sorted),
		Description: fmt.Sprintf("%s high", deck.Rank(sorted[0]).Name()),
		Cards:       cards,
	}
}

// kickerValue packs five descending rank values base-15 so earlier
// cards dominate later ones.
func kickerValue(sorted []int) int {
	value := 0
	weight := 15 * 15 * 15 * 15
	for _, v := range sorted {
		value += v * weight
		weight /= 15
	}
	return value
}

func uniqueDescending(values []int) []int {
	seen := make(map[int]bool, 5)
	unique := make([]int, 0, 5)
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			unique = append(unique, v)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(unique)))
	return unique
}

func checkStraight(sorted []int) bool {
	unique := uniqueDescending(sorted)
	if len(unique) != 5 {
		return false
	}
	for i := 0; i < len(unique)-1; i++ {
		if unique[i]-unique[i+1] != 1 {
			return false
		}
	}
	return true
}

// checkWheel detects A-2-3-4-5, the only straight where the Ace counts
// low.
func checkWheel(sorted []int) bool {
	unique := uniqueDescending(sorted)
	if len(unique) != 5 {
		return false
	}
	return unique[0] == 14 && unique[1] == 5 && unique[2] == 4 && unique[3] == 3 && unique[4] == 2
}
