package game

import (
	"github.com/lox/headsup/poker"
)

// DecisionContext is what an agent sees when asked to act. It is a copy; agents
// cannot change the hand through it.
type DecisionContext struct {
	HandID    string
	Street    Street
	Seat      int
	Name      string
	HoleCards [2]poker.Card
	Board     []poker.Card

	Pot           int
	Stack         int
	OpponentStack int
	Bet           int // already committed this street
	CurrentBet    int
	ToCall        int
	MinRaiseTo    int
	LastRaiseSize int
	Raiser        int // seat of the last bet or raise this street, -1 if none
	Raises        int // voluntary bets and raises this street
	SmallBlind    int
	BigBlind      int

	IsButton         bool
	InPosition       bool
	IsFirstToAct     bool
	FacingRaise      bool
	RepeatAction     bool // asked again after a raise on this street
	PreflopAggressor bool
}

// commitments is the normalized view used to classify a decision.
type commitments struct {
	Street       Street
	Bet          int
	OpponentBet  int
	SmallBlind   int
	BigBlind     int
	Raises       int
	FirstInOrder bool
	ActedBefore  bool
}

// classifyFacing decides whether a player opens the action or faces a raise.
// Heads-up preflop, a button holding exactly the small blind against exactly
// the big blind is opening: the blind difference is not a raise to call.
func classifyFacing(c commitments) (firstToAct, facingRaise bool) {
	if c.Street == Preflop && c.Raises == 0 && c.Bet == c.SmallBlind && c.OpponentBet == c.BigBlind {
		return true, false
	}
	facingRaise = c.OpponentBet > c.Bet
	firstToAct = c.FirstInOrder && !c.ActedBefore && c.Raises == 0 && !facingRaise
	return firstToAct, facingRaise
}

func (h *Hand) decisionContext(seat int) DecisionContext {
	p, opp := h.Players[seat], h.Opponent(seat)
	first, facing := classifyFacing(commitments{
		Street:       h.Street,
		Bet:          p.Bet,
		OpponentBet:  opp.Bet,
		SmallBlind:   h.SmallBlind,
		BigBlind:     h.BigBlind,
		Raises:       h.Raises,
		FirstInOrder: h.ActionOrder()[0] == seat,
		ActedBefore:  h.turns[seat] > 0,
	})

	return DecisionContext{
		HandID:           h.ID,
		Street:           h.Street,
		Seat:             seat,
		Name:             p.Name,
		HoleCards:        p.HoleCards,
		Board:            append([]poker.Card(nil), h.Board...),
		Pot:              h.Pot.Total(),
		Stack:            p.Stack,
		OpponentStack:    opp.Stack,
		Bet:              p.Bet,
		CurrentBet:       h.CurrentBet,
		ToCall:           h.ToCall(seat),
		MinRaiseTo:       h.MinRaiseTo(),
		LastRaiseSize:    h.LastRaise,
		Raiser:           h.LastRaiser,
		Raises:           h.Raises,
		SmallBlind:       h.SmallBlind,
		BigBlind:         h.BigBlind,
		IsButton:         seat == h.Button,
		InPosition:       seat == h.Button,
		IsFirstToAct:     first,
		FacingRaise:      facing,
		RepeatAction:     h.turns[seat] > 0,
		PreflopAggressor: h.aggressor == seat,
	}
}
