package game

import (
	"github.com/lox/headsup/poker"
)

// EvaluateFunc ranks a player's best five-card hand.
type EvaluateFunc func(hole [2]poker.Card, board []poker.Card) poker.HandRank

// DefaultEvaluate uses the poker package evaluator.
func DefaultEvaluate(hole [2]poker.Card, board []poker.Card) poker.HandRank {
	h := poker.NewHand(board...)
	h.AddCard(hole[0])
	h.AddCard(hole[1])
	return poker.Evaluate(h)
}

// ShowdownResult holds the ranks of both seats and the winning seats. A folded
// seat has a zero rank and never wins.
type ShowdownResult struct {
	Ranks   [2]poker.HandRank
	Winners []int
}

// Split reports whether the pot is shared.
func (s ShowdownResult) Split() bool {
	return len(s.Winners) > 1
}

// ResolveShowdown compares the active players' hands.
func ResolveShowdown(players [2]*Player, board []poker.Card, evaluate EvaluateFunc) ShowdownResult {
	var res ShowdownResult
	var best poker.HandRank
	for seat, p := range players {
		if !p.IsActive() {
			continue
		}
		rank := evaluate(p.HoleCards, board)
		res.Ranks[seat] = rank

		switch {
		case len(res.Winners) == 0 || poker.CompareHands(rank, best) > 0:
			best = rank
			res.Winners = []int{seat}
		case poker.CompareHands(rank, best) == 0:
			res.Winners = append(res.Winners, seat)
		}
	}
	return res
}
