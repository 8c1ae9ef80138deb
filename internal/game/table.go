package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/coder/quartz"

	"github.com/lox/headsup/internal/gameid"
	"github.com/lox/headsup/internal/randutil"
	"github.com/lox/headsup/poker"
)

// TableConfig describes a heads-up table.
type TableConfig struct {
	Names         [2]string
	StartingStack int
	SmallBlind    int
	BigBlind      int
}

// IDGenerator names hands.
type IDGenerator interface {
	Generate() string
}

// Table plays successive hands between the same two players. Stacks carry
// over and the button moves every hand.
type Table struct {
	cfg     TableConfig
	players [2]*Player
	agents  [2]Agent
	engine  *Engine
	deck    Deck
	ids     IDGenerator
	clock   quartz.Clock
	button  int
	hands   int
	rebuys  [2]int
}

// TableOption configures a Table.
type TableOption func(*Table)

// WithDeck deals from d instead of a deck shuffled by the table's rng.
func WithDeck(d Deck) TableOption {
	return func(t *Table) { t.deck = d }
}

// WithHandIDs replaces the hand id generator.
func WithHandIDs(ids IDGenerator) TableOption {
	return func(t *Table) { t.ids = ids }
}

// WithClock stamps hand ids from clock. With a mock clock the ids are
// reproducible from the table's seed.
func WithClock(clock quartz.Clock) TableOption {
	return func(t *Table) { t.clock = clock }
}

// WithStacks seats the players with uneven stacks.
func WithStacks(stacks [2]int) TableOption {
	return func(t *Table) {
		for seat, s := range stacks {
			t.players[seat].Stack = s
		}
	}
}

// WithButton sets the seat holding the button for the first hand.
func WithButton(seat int) TableOption {
	return func(t *Table) { t.button = seat }
}

// NewTable seats two players. The rng is required so that every table is
// reproducible from its seed.
func NewTable(rng *rand.Rand, cfg TableConfig, agents [2]Agent, engine *Engine, opts ...TableOption) *Table {
	if rng == nil {
		panic("rng is required for table creation")
	}
	if engine == nil || agents[0] == nil || agents[1] == nil {
		panic("engine and two agents are required")
	}
	if cfg.StartingStack <= 0 {
		panic("starting stack must be positive")
	}
	if cfg.SmallBlind <= 0 || cfg.BigBlind < cfg.SmallBlind {
		panic(fmt.Sprintf("invalid blinds %d/%d", cfg.SmallBlind, cfg.BigBlind))
	}

	t := &Table{cfg: cfg, agents: agents, engine: engine}
	for seat, name := range cfg.Names {
		t.players[seat] = NewPlayer(seat, name, cfg.StartingStack)
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.button != 0 && t.button != 1 {
		panic("button must be seat 0 or 1")
	}
	if t.deck == nil {
		t.deck = poker.NewDeck(rng)
	}
	if t.ids == nil {
		t.ids = gameid.NewGenerator(t.clock, randutil.Entropy(rng.Int64()))
	}
	return t
}

// PlayHand deals the next hand and moves the button.
func (t *Table) PlayHand() (*HandResult, error) {
	for _, p := range t.players {
		if p.Stack <= 0 {
			return nil, fmt.Errorf("%w: %s, rebuy before the next hand", ErrBustedPlayer, p.Name)
		}
	}

	h := NewHand(t.ids.Generate(), t.players, t.button, t.cfg.SmallBlind, t.cfg.BigBlind)
	res, err := t.engine.PlayHand(h, t.deck, t.agents)
	if err != nil {
		return nil, fmt.Errorf("hand %d (%s): %w", t.hands+1, h.ID, err)
	}

	t.hands++
	res.HandNumber = t.hands
	t.button = 1 - t.button
	return res, nil
}

// Busted reports whether either player is out of chips.
func (t *Table) Busted() bool {
	return t.players[0].Stack == 0 || t.players[1].Stack == 0
}

// Rebuy resets both stacks to the starting stack and counts a rebuy for every
// busted seat. It returns the seats that had busted.
func (t *Table) Rebuy() []int {
	var busted []int
	for seat, p := range t.players {
		if p.Stack == 0 {
			busted = append(busted, seat)
			t.rebuys[seat]++
		}
		p.Stack = t.cfg.StartingStack
	}
	return busted
}

// Rebuys returns the rebuy count per seat.
func (t *Table) Rebuys() [2]int {
	return t.rebuys
}

// Stacks returns the current stacks by seat.
func (t *Table) Stacks() [2]int {
	return [2]int{t.players[0].Stack, t.players[1].Stack}
}

// Button returns the seat that will hold the button next hand.
func (t *Table) Button() int {
	return t.button
}

// HandsPlayed counts completed hands.
func (t *Table) HandsPlayed() int {
	return t.hands
}
