package poker

import (
	"math/bits"
)

// HandRank orders made hands. Higher values are stronger, so ranks compare
// directly with < and ==.
//
// Layout: category in bits 20-23, then up to five tiebreak ranks of four bits
// each, most significant first.
type HandRank uint32

// HandType enumerates the categories of poker hands ordered from weakest to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

const categoryShift = 20

var handTypeNames = [...]string{
	HighCard:      "High Card",
	Pair:          "One Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
}

func (t HandType) String() string {
	if int(t) < len(handTypeNames) {
		return handTypeNames[t]
	}
	return "Unknown"
}

// Type returns the hand category.
func (hr HandRank) Type() HandType {
	return HandType(hr >> categoryShift)
}

// String returns the category name, e.g. "Two Pair".
func (hr HandRank) String() string {
	return hr.Type().String()
}

func makeRank(t HandType, ranks ...uint8) HandRank {
	v := HandRank(t) << categoryShift
	shift := categoryShift - 4
	for _, r := range ranks {
		v |= HandRank(r) << shift
		shift -= 4
	}
	return v
}

// Evaluate ranks the best five-card hand contained in a set of five to seven cards.
// Smaller sets rank what is there; the zero value is returned for an empty set.
func Evaluate(hand Hand) HandRank {
	if hand == 0 {
		return 0
	}

	var suits [4]uint16
	var ranks uint16
	for suit := range uint8(4) {
		suits[suit] = hand.GetSuitMask(suit)
		ranks |= suits[suit]
	}

	// At most one suit can hold five of seven cards.
	var flush HandRank
	hasFlush := false
	for _, sm := range suits {
		if bits.OnesCount16(sm) < 5 {
			continue
		}
		if high, ok := straightHigh(sm); ok {
			return makeRank(StraightFlush, high)
		}
		flush = makeRank(Flush, topRanks(sm, 5)...)
		hasFlush = true
	}

	s0, s1, s2, s3 := suits[0], suits[1], suits[2], suits[3]
	quads := s0 & s1 & s2 & s3
	atLeastThree := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	trips := atLeastThree &^ quads
	pairs := ((s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)) &^ atLeastThree

	if quads != 0 {
		q := highest(quads)
		return makeRank(FourOfAKind, q, highest(ranks&^bit(q)))
	}

	if trips != 0 {
		t := highest(trips)
		if rest := pairs | (trips &^ bit(t)); rest != 0 {
			return makeRank(FullHouse, t, highest(rest))
		}
	}

	if hasFlush {
		return flush
	}

	if high, ok := straightHigh(ranks); ok {
		return makeRank(Straight, high)
	}

	if trips != 0 {
		t := highest(trips)
		return makeRank(ThreeOfAKind, append([]uint8{t}, topRanks(ranks&^bit(t), 2)...)...)
	}

	if pairs != 0 {
		high := highest(pairs)
		if rest := pairs &^ bit(high); rest != 0 {
			low := highest(rest)
			return makeRank(TwoPair, high, low, highest(ranks&^bit(high)&^bit(low)))
		}
		return makeRank(Pair, append([]uint8{high}, topRanks(ranks&^bit(high), 3)...)...)
	}

	return makeRank(HighCard, topRanks(ranks, 5)...)
}

// EvaluateCards is Evaluate over a card list.
func EvaluateCards(cards ...Card) HandRank {
	return Evaluate(NewHand(cards...))
}

// CompareHands returns 1 if a is stronger, -1 if b is stronger and 0 for a tie.
func CompareHands(a, b HandRank) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

func bit(rank uint8) uint16 {
	return 1 << rank
}

func highest(mask uint16) uint8 {
	if mask == 0 {
		return 0
	}
	return uint8(bits.Len16(mask) - 1)
}

func topRanks(mask uint16, n int) []uint8 {
	out := make([]uint8, 0, n)
	for mask != 0 && len(out) < n {
		top := highest(mask)
		out = append(out, top)
		mask &^= bit(top)
	}
	return out
}

// straightHigh returns the top rank of the best straight in mask.
// The wheel reports Five as its high card.
func straightHigh(mask uint16) (uint8, bool) {
	mask &= rankMask
	if seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4); seq != 0 {
		return highest(seq) + 4, true
	}
	const wheel = 1<<Ace | 1<<Two | 1<<Three | 1<<Four | 1<<Five
	if mask&wheel == wheel {
		return Five, true
	}
	return 0, false
}
