package game

import (
	"github.com/lox/headsup/poker"
)

// Player is a seat at the table. Stack persists across hands; everything
// else is reset when a hand starts.
type Player struct {
	Seat      int
	Name      string
	Stack     int
	HoleCards [2]poker.Card
	Bet       int // committed this street
	TotalBet  int // committed this hand; only an uncalled bet refund lowers it
	Folded    bool
	AllIn     bool
}

// NewPlayer creates a player with a starting stack.
func NewPlayer(seat int, name string, stack int) *Player {
	return &Player{Seat: seat, Name: name, Stack: stack}
}

// IsActive reports whether the player still contests the pot.
func (p *Player) IsActive() bool {
	return !p.Folded
}

// CanAct reports whether the player can still be asked for a decision.
func (p *Player) CanAct() bool {
	return !p.Folded && !p.AllIn
}

func (p *Player) resetForHand() {
	p.HoleCards = [2]poker.Card{}
	p.Bet = 0
	p.TotalBet = 0
	p.Folded = false
	p.AllIn = false
}
