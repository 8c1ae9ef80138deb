package bot

import (
	"math/bits"
	"slices"

	"github.com/lox/headsup/poker"
)

// PairClass places a one-pair hand relative to the board.
type PairClass uint8

const (
	NoPair PairClass = iota
	Underpair
	ThirdPair
	SecondPair
	TopPair
	Overpair
)

func (c PairClass) String() string {
	switch c {
	case Overpair:
		return "overpair"
	case TopPair:
		return "top pair"
	case SecondPair:
		return "second pair"
	case ThirdPair:
		return "third pair"
	case Underpair:
		return "underpair"
	default:
		return "no pair"
	}
}

// Reading is a postflop summary of a holding.
type Reading struct {
	Type      poker.HandType
	Pair      PairClass
	FlushDraw bool
	OpenEnded bool
	Gutshot   bool
}

// HasDraw reports any flush or straight draw.
func (r Reading) HasDraw() bool {
	return r.FlushDraw || r.OpenEnded || r.Gutshot
}

// TopPairOrBetter covers overpairs, top pair and every hand above one pair.
func (r Reading) TopPairOrBetter() bool {
	return r.Type >= poker.TwoPair || r.Pair >= TopPair
}

func (r Reading) String() string {
	if r.Type == poker.Pair {
		return r.Pair.String()
	}
	return r.Type.String()
}

// ReadHand classifies hole cards against a flop, turn or river board.
func ReadHand(hole [2]poker.Card, board []poker.Card) Reading {
	all := poker.NewHand(board...)
	all.AddCard(hole[0])
	all.AddCard(hole[1])

	r := Reading{Type: poker.Evaluate(all).Type()}
	if r.Type == poker.Pair {
		r.Pair = classifyPair(hole, board)
	}
	if len(board) < 3 {
		return r
	}

	for suit := range uint8(4) {
		if bits.OnesCount16(all.GetSuitMask(suit)) == 4 {
			r.FlushDraw = true
		}
	}

	ranks := rankValues(all.GetRankMask())
	for i := 0; i+3 < len(ranks); i++ {
		switch ranks[i+3] - ranks[i] {
		case 3:
			r.OpenEnded = true
		case 4:
			r.Gutshot = true
		}
	}
	return r
}

// classifyPair compares a pocket pair with the board, or finds which board
// card a hole card paired.
func classifyPair(hole [2]poker.Card, board []poker.Card) PairClass {
	if len(board) == 0 {
		return NoPair
	}
	var mask uint16
	for _, c := range board {
		mask |= 1 << c.Rank()
	}
	ranks := rankValues(mask)
	slices.Reverse(ranks)

	a, b := int(hole[0].Rank())+2, int(hole[1].Rank())+2
	if a == b {
		switch {
		case a > ranks[0]:
			return Overpair
		case len(ranks) > 1 && ranks[0] > a && a > ranks[1]:
			return SecondPair
		case len(ranks) > 2 && ranks[1] > a && a > ranks[2]:
			return ThirdPair
		default:
			return Underpair
		}
	}

	for _, v := range []int{a, b} {
		switch idx := slices.Index(ranks, v); {
		case idx == 0:
			return TopPair
		case idx == 1:
			return SecondPair
		case idx == 2:
			return ThirdPair
		case idx > 2:
			return Underpair
		}
	}
	return NoPair
}

// rankValues lists the ranks in a mask as 2..14, ascending.
func rankValues(mask uint16) []int {
	var out []int
	for r := range 13 {
		if mask&(1<<r) != 0 {
			out = append(out, r+2)
		}
	}
	return out
}
