package game

import (
	"fmt"

	"github.com/lox/headsup/poker"
)

// Deck is the card source a hand deals from.
type Deck interface {
	Shuffle()
	DealOne() (poker.Card, error)
}

// Hand is the state of one deal. It is built fresh for every hand and passed
// explicitly to everything that reads or changes it.
type Hand struct {
	ID         string
	Players    [2]*Player
	Button     int // seat that posts the small blind
	SmallBlind int
	BigBlind   int

	Street     Street
	Board      []poker.Card
	Pot        Pot
	CurrentBet int
	MinRaise   int // smallest legal raise increment this street
	LastRaise  int // increment of the last bet or raise this street
	LastRaiser int // seat, -1 when nobody has bet this street
	Raises     int // voluntary bets and raises this street

	Log ActionLog

	acted     [2]bool // acted since the last full raise
	turns     [2]int  // decisions made this street
	vpip      [2]bool
	aggressor int // last preflop raiser
	runout    bool
	decisions int
	guard     bool
	actions   []ActionRecord
}

// NewHand prepares a hand for two persistent players. It resets their per-hand
// state but leaves stacks alone.
func NewHand(id string, players [2]*Player, button, smallBlind, bigBlind int) *Hand {
	if players[0] == nil || players[1] == nil {
		panic("two players are required")
	}
	if button != 0 && button != 1 {
		panic("button must be seat 0 or 1")
	}
	if smallBlind <= 0 || bigBlind < smallBlind {
		panic(fmt.Sprintf("invalid blinds %d/%d", smallBlind, bigBlind))
	}

	for seat, p := range players {
		p.Seat = seat
		p.resetForHand()
	}

	return &Hand{
		ID:         id,
		Players:    players,
		Button:     button,
		SmallBlind: smallBlind,
		BigBlind:   bigBlind,
		Street:     Preflop,
		MinRaise:   bigBlind,
		LastRaiser: -1,
		aggressor:  -1,
	}
}

// BigBlindSeat is the seat opposite the button.
func (h *Hand) BigBlindSeat() int {
	return 1 - h.Button
}

// Opponent returns the other player.
func (h *Hand) Opponent(seat int) *Player {
	return h.Players[1-seat]
}

// ActionOrder lists seats in acting order for the current street: the button
// first preflop, last afterwards.
func (h *Hand) ActionOrder() []int {
	if h.Street == Preflop {
		return []int{h.Button, h.BigBlindSeat()}
	}
	return []int{h.BigBlindSeat(), h.Button}
}

// ActivePlayers returns the players still contesting the pot.
func (h *Hand) ActivePlayers() []*Player {
	var active []*Player
	for _, p := range h.Players {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// ToCall is what the seat must add to match the current bet.
func (h *Hand) ToCall(seat int) int {
	return max(h.CurrentBet-h.Players[seat].Bet, 0)
}

// MinRaiseTo is the smallest total level a non all-in raise may reach.
func (h *Hand) MinRaiseTo() int {
	return h.CurrentBet + h.MinRaise
}

// Actions returns the decisions applied so far.
func (h *Hand) Actions() []ActionRecord {
	return append([]ActionRecord(nil), h.actions...)
}

// Decisions counts agent decisions requested during the hand.
func (h *Hand) Decisions() int {
	return h.decisions
}

// chipsInPlay is stacks plus pot, constant for the whole hand.
func (h *Hand) chipsInPlay() int {
	return h.Players[0].Stack + h.Players[1].Stack + h.Pot.Total()
}

func (h *Hand) postBlinds() {
	sb, bb := h.Players[h.Button], h.Players[h.BigBlindSeat()]

	posted := h.Pot.Post(sb, h.SmallBlind)
	h.Log.add("%s posts SB %s%s", sb.Name, FormatChips(posted), allInSuffix(sb))
	posted = h.Pot.Post(bb, h.BigBlind)
	h.Log.add("%s posts BB %s%s", bb.Name, FormatChips(posted), allInSuffix(bb))

	h.CurrentBet = max(sb.Bet, bb.Bet)
	h.MinRaise = h.BigBlind
}

// dealHoleCards deals one card at a time starting left of the button.
func (h *Hand) dealHoleCards(deck Deck) error {
	order := []int{h.BigBlindSeat(), h.Button}
	for round := range 2 {
		for _, seat := range order {
			c, err := deck.DealOne()
			if err != nil {
				return fmt.Errorf("dealing hole cards: %w", err)
			}
			h.Players[seat].HoleCards[round] = c
		}
	}
	for _, seat := range order {
		p := h.Players[seat]
		h.Log.add("Dealt to %s: %s", p.Name, poker.FormatCards(p.HoleCards[:]))
	}
	return nil
}

// startStreet clears street-scoped betting state.
func (h *Hand) startStreet(s Street) {
	h.Street = s
	for _, p := range h.Players {
		p.Bet = 0
	}
	h.CurrentBet = 0
	h.MinRaise = h.BigBlind
	h.LastRaise = 0
	h.LastRaiser = -1
	h.Raises = 0
	h.acted = [2]bool{}
	h.turns = [2]int{}
}

// dealBoard burns one card and deals the street's community cards.
func (h *Hand) dealBoard(deck Deck, s Street) error {
	n := 1
	if s == Flop {
		n = 3
	}
	if _, err := deck.DealOne(); err != nil {
		return fmt.Errorf("burning before %s: %w", s, err)
	}
	cards := make([]poker.Card, 0, n)
	for range n {
		c, err := deck.DealOne()
		if err != nil {
			return fmt.Errorf("dealing %s: %w", s, err)
		}
		cards = append(cards, c)
	}
	h.Board = append(h.Board, cards...)
	h.Log.add("%s: %s", s.label(), poker.FormatCards(cards))
	return nil
}

// noFurtherBetting reports whether fewer than two players can still bet, in
// which case the remaining streets are dealt without decisions.
func (h *Hand) noFurtherBetting() bool {
	n := 0
	for _, p := range h.Players {
		if p.CanAct() {
			n++
		}
	}
	return n < 2
}

// returnUncalled gives back chips the opponent could not match.
func (h *Hand) returnUncalled() {
	a, b := h.Players[0], h.Players[1]
	over, diff := a, a.TotalBet-b.TotalBet
	if diff < 0 {
		over, diff = b, -diff
	}
	if diff == 0 {
		return
	}
	h.Pot.Refund(over, diff)
	h.Log.add("Uncalled bet of %s returned to %s", FormatChips(diff), over.Name)
}
