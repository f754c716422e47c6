package classification

import "github.com/lox/headsup/internal/deck"

// DrawInfo describes the drawing potential of hole cards plus board,
// with an outs estimate (9 for a flush draw, 8 open-ended, 4 gutshot).
type DrawInfo struct {
	FlushDraw bool
	OpenEnded bool
	Gutshot   bool
	Outs      int
}

// HasStraightDraw reports whether any straight draw is present.
func (d DrawInfo) HasStraightDraw() bool {
	return d.OpenEnded || d.Gutshot
}

// AnalyzeDraws detects flush and straight draws across all known cards.
func AnalyzeDraws(hole, board []deck.Card) DrawInfo {
	all := make([]deck.Card, 0, len(hole)+len(board))
	all = append(all, hole...)
	all = append(all, board...)

	info := DrawInfo{
		FlushDraw: maxSuitCount(all) >= 4,
	}

	unique := uniqueValuesAsc(all)

	// Four ranks spanning exactly four positions form an open-ended
	// draw; a span of five with a hole inside is caught below.
	for i := 0; i+3 < len(unique); i++ {
		gap := unique[i+3] - unique[i]
		if gap == 3 {
			info.OpenEnded = true
		}
		if gap == 4 && i+4 < len(unique) {
			info.OpenEnded = true
		}
	}

	// Gutshot: three or more ranks spanning exactly a five-rank window.
	for i := 0; i < len(unique); i++ {
		for k := i + 2; k < len(unique); k++ {
			if unique[k]-unique[i] == 4 {
				info.Gutshot = true
			}
		}
	}

	if info.FlushDraw {
		info.Outs += 9
	}
	if info.OpenEnded {
		info.Outs += 8
	} else if info.Gutshot {
		info.Outs += 4
	}

	return info
}

// SimpleDraws is the coarser draw summary the basic engine uses.
type SimpleDraws struct {
	FlushDraw    bool
	StraightDraw bool
	Outs         int
}

// AnalyzeSimpleDraws detects draws with the basic engine's coarser
// rules. Preflop (board shorter than 3 cards) reports no draws.
func AnalyzeSimpleDraws(hole, board []deck.Card) SimpleDraws {
	if len(board) < 3 {
		return SimpleDraws{}
	}

	all := make([]deck.Card, 0, len(hole)+len(board))
	all = append(all, hole...)
	all = append(all, board...)

	var draws SimpleDraws

	var suitCounts [4]int
	for _, c := range all {
		suitCounts[c.Suit]++
	}
	for _, count := range suitCounts {
		if count == 4 {
			draws.FlushDraw = true
		}
	}

	unique := uniqueValuesAsc(all)
	for i := 0; i+3 < len(unique); i++ {
		if unique[i+3]-unique[i] <= 4 {
			draws.StraightDraw = true
			break
		}
	}

	// Ace plays both ends: A-2-3-4 and J-Q-K-A are draws too.
	if !draws.StraightDraw && containsValue(unique, 14) {
		low := containsValue(unique, 2) && containsValue(unique, 3) && containsValue(unique, 4)
		high := containsValue(unique, 11) && containsValue(unique, 12) && containsValue(unique, 13)
		if low || high {
			draws.StraightDraw = true
		}
	}

	switch {
	case draws.FlushDraw && draws.StraightDraw:
		draws.Outs = 15
	case draws.FlushDraw:
		draws.Outs = 9
	case draws.StraightDraw:
		draws.Outs = 8
	}

	return draws
}

func containsValue(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
