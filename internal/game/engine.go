package game

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/headsup/poker"
)

const defaultActionsPerPlayer = 20

// Engine plays hands. It holds no per-hand state and can be shared by
// sequential callers.
type Engine struct {
	logger           *log.Logger
	evaluate         EvaluateFunc
	actionsPerPlayer int
}

// NewEngine creates an engine that logs through logger.
func NewEngine(logger *log.Logger, opts ...EngineOption) *Engine {
	if logger == nil {
		panic("logger is required")
	}
	e := &Engine{
		logger:           logger.WithPrefix("engine"),
		evaluate:         DefaultEvaluate,
		actionsPerPlayer: defaultActionsPerPlayer,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PlayHand runs h from the blinds to the award. The deck is shuffled first;
// agents are indexed by seat. Errors mean a collaborator broke its contract and
// leave the hand unfinished.
func (e *Engine) PlayHand(h *Hand, deck Deck, agents [2]Agent) (*HandResult, error) {
	for _, p := range h.Players {
		if p.Stack <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrBustedPlayer, p.Name)
		}
	}

	before := [2]int{h.Players[0].Stack, h.Players[1].Stack}
	total := h.chipsInPlay()

	deck.Shuffle()
	h.postBlinds()
	if err := h.dealHoleCards(deck); err != nil {
		return nil, err
	}

	for s := Preflop; s <= River; s++ {
		if s != Preflop {
			h.startStreet(s)
			if err := h.dealBoard(deck, s); err != nil {
				return nil, err
			}
			if h.noFurtherBetting() {
				h.runout = true
				h.Log.add("%s: no betting — all-in runout", s.label())
				continue
			}
		}

		more, err := e.bettingRound(h, agents)
		if err != nil {
			return nil, err
		}
		if !more {
			return e.finish(h, before, total, h.finishByFold())
		}
	}

	return e.finish(h, before, total, h.finishByShowdown(e.evaluate))
}

func (e *Engine) finish(h *Hand, before [2]int, total int, res *HandResult) (*HandResult, error) {
	if after := h.chipsInPlay(); after != total || h.Pot.Total() != 0 {
		return nil, fmt.Errorf("%w: hand %s ended with %d chips and a pot of %d, expected %d",
			ErrChipsNotConserved, h.ID, after, h.Pot.Total(), total)
	}

	for seat, p := range h.Players {
		pr := &res.Players[seat]
		pr.Seat = seat
		pr.Name = p.Name
		pr.HoleCards = p.HoleCards
		pr.StackBefore = before[seat]
		pr.StackAfter = p.Stack
		pr.Net = p.Stack - before[seat]
		pr.VPIP = h.vpip[seat]
		pr.Folded = p.Folded
		pr.AllIn = p.AllIn
	}
	res.HandID = h.ID
	res.Button = h.Button
	res.SmallBlind = h.SmallBlind
	res.BigBlind = h.BigBlind
	res.Board = append(res.Board, h.Board...)
	res.Runout = h.runout
	res.Decisions = h.decisions
	res.GuardTripped = h.guard
	res.Actions = h.Actions()
	res.Log = h.Log.Entries()

	e.logger.Debug("hand complete",
		"hand_id", h.ID,
		"outcome", res.Outcome,
		"pot", res.Pot,
		"street", res.StreetReached,
		"winners", res.Winners,
		"decisions", res.Decisions)
	return res, nil
}

// finishByFold awards the pot to the only player left.
func (h *Hand) finishByFold() *HandResult {
	res := &HandResult{Outcome: FoldEnd, StreetReached: h.Street, Pot: h.Pot.Total()}

	for seat, p := range h.Players {
		if !p.IsActive() {
			continue
		}
		won := h.Pot.Award(h.Pot.Total(), []*Player{p}, p)[0]
		res.Players[seat].Won = won
		res.Winners = []int{seat}
		h.Log.add("%s wins %s", p.Name, FormatChips(won))
	}
	res.Description = "opponent folded"
	return res
}

// finishByShowdown returns uncalled chips, shows both hands and splits or
// awards the pot.
func (h *Hand) finishByShowdown(evaluate EvaluateFunc) *HandResult {
	h.Street = Showdown
	h.returnUncalled()

	sd := ResolveShowdown(h.Players, h.Board, evaluate)
	res := &HandResult{Outcome: ShowdownEnd, StreetReached: River, Pot: h.Pot.Total(), Winners: sd.Winners}

	for _, seat := range h.ActionOrder() {
		p := h.Players[seat]
		res.Players[seat].Rank = sd.Ranks[seat]
		h.Log.add("%s shows %s: %s", p.Name, poker.FormatCards(p.HoleCards[:]), sd.Ranks[seat])
	}

	winners := make([]*Player, len(sd.Winners))
	for i, seat := range sd.Winners {
		winners[i] = h.Players[seat]
	}
	shares := h.Pot.Award(h.Pot.Total(), winners, h.Players[h.Button])

	suffix := ""
	if sd.Split() {
		suffix = " (split pot)"
		res.Description = "split pot, " + sd.Ranks[sd.Winners[0]].String()
	} else {
		res.Description = sd.Ranks[sd.Winners[0]].String()
	}
	for i, seat := range sd.Winners {
		res.Players[seat].Won = shares[i]
		h.Log.add("%s wins %s%s", h.Players[seat].Name, FormatChips(shares[i]), suffix)
	}
	return res
}
