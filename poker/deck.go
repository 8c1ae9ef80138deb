package poker

import (
	"errors"
	"math/rand/v2"
)

// ErrDeckExhausted is returned when dealing from an empty deck.
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck is a 52-card deck. A deck built without an rng deals in a fixed order,
// which is how tests stack boards.
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a full deck shuffled with rng.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}
	d := &Deck{cards: make([]Card, 0, 52), rng: rng}
	for suit := range uint8(4) {
		for rank := range uint8(13) {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	d.Shuffle()
	return d
}

// NewDeckFromCards creates a deck that deals exactly the given cards in order.
// Shuffle only rewinds it.
func NewDeckFromCards(cards ...Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

// Shuffle restores every card and reorders them with Fisher-Yates.
func (d *Deck) Shuffle() {
	d.next = 0
	if d.rng == nil {
		return
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// DealOne deals the top card.
func (d *Deck) DealOne() (Card, error) {
	if d.next >= len(d.cards) {
		return 0, ErrDeckExhausted
	}
	c := d.cards[d.next]
	d.next++
	return c, nil
}

// Deal deals n cards, or none if fewer than n remain.
func (d *Deck) Deal(n int) ([]Card, error) {
	if d.next+n > len(d.cards) {
		return nil, ErrDeckExhausted
	}
	out := append([]Card(nil), d.cards[d.next:d.next+n]...)
	d.next += n
	return out, nil
}

// CardsRemaining returns how many cards are left to deal.
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
