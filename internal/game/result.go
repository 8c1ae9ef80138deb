package game

import (
	"github.com/lox/headsup/poker"
)

// Outcome is how a hand ended.
type Outcome uint8

const (
	FoldEnd Outcome = iota
	ShowdownEnd
)

func (o Outcome) String() string {
	if o == ShowdownEnd {
		return "showdown"
	}
	return "fold"
}

// PlayerResult is one seat's view of a finished hand.
type PlayerResult struct {
	Seat        int
	Name        string
	HoleCards   [2]poker.Card
	StackBefore int
	StackAfter  int
	Net         int
	Won         int // chips received from the pot
	VPIP        bool
	Folded      bool
	AllIn       bool
	Rank        poker.HandRank // zero unless the hand was shown
}

// HandResult summarizes a finished hand.
type HandResult struct {
	HandID     string
	HandNumber int
	Button     int
	SmallBlind int
	BigBlind   int
	Players    [2]PlayerResult
	Board      []poker.Card

	Pot           int // contested chips awarded
	Outcome       Outcome
	Winners       []int
	Description   string
	StreetReached Street
	Runout        bool
	Decisions     int
	GuardTripped  bool

	Actions []ActionRecord
	Log     []string
}

// WentToShowdown reports whether hands were compared.
func (r *HandResult) WentToShowdown() bool {
	return r.Outcome == ShowdownEnd
}

// Winner returns the winning seat, or -1 for a split pot.
func (r *HandResult) Winner() int {
	if len(r.Winners) != 1 {
		return -1
	}
	return r.Winners[0]
}
