// Package classification provides board texture analysis and draw
// detection for the decision engines.
package classification

import (
	"sort"

	"github.com/lox/headsup/internal/deck"
)

// Texture represents how coordinated a board is, from dry to wet.
type Texture int

const (
	Dry Texture = iota
	SemiConnected
	Wet
)

func (t Texture) String() string {
	switch t {
	case Dry:
		return "dry"
	case SemiConnected:
		return "semi-connected"
	case Wet:
		return "wet"
	default:
		return "unknown"
	}
}

// Danger grades how threatening a board is to a made hand.
type Danger int

const (
	DryBoard Danger = iota
	ModerateBoard
	DangerousBoard
	VeryDangerousBoard
)

func (d Danger) String() string {
	switch d {
	case DryBoard:
		return "dry"
	case ModerateBoard:
		return "moderate"
	case DangerousBoard:
		return "dangerous"
	case VeryDangerousBoard:
		return "very-dangerous"
	default:
		return "unknown"
	}
}

// Flags are the coarse board properties the basic engine keys on.
type Flags struct {
	DrawHeavy bool
	Scary     bool
	Paired    bool
}

// AnalyzeTexture classifies a board for the policy engine. Wet boards
// combine flush and straight potential; semi-connected boards show some
// coordination; dry boards are rainbow and disconnected.
func AnalyzeTexture(board []deck.Card) Texture {
	if len(board) < 3 {
		return Dry
	}

	ranks := sortedValuesDesc(board)
	hasFlushDraw := maxSuitCount(board) >= 2
	hasStraightDraw := ranks[0]-ranks[len(ranks)-1] <= 4

	connected := 0
	for i := 0; i < len(ranks)-1; i++ {
		if ranks[i]-ranks[i+1] <= 2 {
			connected++
		}
	}

	if hasFlushDraw && hasStraightDraw {
		return Wet
	}
	if connected >= 1 || hasFlushDraw || hasStraightDraw {
		return SemiConnected
	}
	return Dry
}

// AnalyzeDanger scores a board for hand strength adjustments. Flush
// potential, straight potential, pairing, and high card concentration
// each add to the danger score.
func AnalyzeDanger(board []deck.Card) Danger {
	if len(board) < 3 {
		return DryBoard
	}

	score := 0

	suitMax := maxSuitCount(board)
	if suitMax >= 4 {
		score += 3
	} else if suitMax >= 3 {
		score += 2
	}

	ranks := sortedValuesDesc(board)
	if ranks[0]-ranks[len(ranks)-1] <= 4 {
		score += 2
	}

	rankMax := maxRankCount(board)
	if rankMax >= 3 {
		score += 2
	} else if rankMax >= 2 {
		score++
	}

	highCards := 0
	for _, v := range ranks {
		if v >= int(deck.Queen) {
			highCards++
		}
	}
	score += highCards / 2

	switch {
	case score >= 5:
		return VeryDangerousBoard
	case score >= 3:
		return DangerousBoard
	case score >= 1:
		return ModerateBoard
	default:
		return DryBoard
	}
}

// AnalyzeFlags computes the basic engine's board properties.
func AnalyzeFlags(board []deck.Card) Flags {
	if len(board) < 3 {
		return Flags{}
	}

	paired := maxRankCount(board) >= 2
	flushy := maxSuitCount(board) >= 3

	unique := uniqueValuesAsc(board)
	straighty := len(unique) >= 3 && unique[len(unique)-1]-unique[0] <= 4

	drawHeavy := flushy || straighty
	return Flags{
		DrawHeavy: drawHeavy,
		Scary:     paired || drawHeavy,
		Paired:    paired,
	}
}

func maxSuitCount(cards []deck.Card) int {
	var counts [4]int
	maxCount := 0
	for _, c := range cards {
		counts[c.Suit]++
		if counts[c.Suit] > maxCount {
			maxCount = counts[c.Suit]
		}
	}
	return maxCount
}

func maxRankCount(cards []deck.Card) int {
	counts := make(map[deck.Rank]int, len(cards))
	maxCount := 0
	for _, c := range cards {
		counts[c.Rank]++
		if counts[c.Rank] > maxCount {
			maxCount = counts[c.Rank]
		}
	}
	return maxCount
}

func sortedValuesDesc(cards []deck.Card) []int {
	values := make([]int, len(cards))
	for i, c := range cards {
		values[i] = c.Value()
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))
	return values
}

func uniqueValuesAsc(cards []deck.Card) []int {
	seen := make(map[int]bool, len(cards))
	unique := make([]int, 0, len(cards))
	for _, c := range cards {
		v := c.Value()
		if !seen[v] {
			seen[v] = true
			unique = append(unique, v)
		}
	}
	sort.Ints(unique)
	return unique
}
