package game

import (
	"fmt"
)

// skippable reports whether a seat's slot passes without a decision. It says
// nothing about whether the round is over.
func skippable(p *Player) bool {
	return p.Folded || p.AllIn
}

// bettingClosed reports whether the street's action is complete: everyone who
// can still act has matched the current bet and, when two players can act,
// both have acted since the last full raise. Posting a blind is not acting,
// which is what gives the big blind its option.
func (h *Hand) bettingClosed() bool {
	actors, pending := 0, false
	for seat, p := range h.Players {
		if !p.CanAct() {
			continue
		}
		actors++
		if p.Bet < h.CurrentBet {
			return false
		}
		if !h.acted[seat] {
			pending = true
		}
	}
	return actors < 2 || !pending
}

// canRaise reports whether the seat may put in a raise: betting must be open to
// them, someone must be left to respond and they need chips beyond a call.
func (h *Hand) canRaise(seat int) bool {
	p := h.Players[seat]
	return !h.acted[seat] && h.Opponent(seat).CanAct() && p.Stack > h.ToCall(seat)
}

// ValidActions lists the legal choices for a seat.
func (h *Hand) ValidActions(seat int) []ValidAction {
	p := h.Players[seat]
	toCall := h.ToCall(seat)
	allInLevel := p.Bet + p.Stack

	valid := []ValidAction{{Action: Fold}}
	if toCall == 0 {
		valid = append(valid, ValidAction{Action: Check})
	} else {
		in := min(toCall, p.Stack)
		valid = append(valid, ValidAction{Action: Call, MinAmount: in, MaxAmount: in})
	}

	switch {
	case h.canRaise(seat):
		if minTo := h.MinRaiseTo(); allInLevel > minTo {
			valid = append(valid, ValidAction{Action: Raise, MinAmount: minTo, MaxAmount: allInLevel})
		}
		valid = append(valid, ValidAction{Action: AllIn, MinAmount: allInLevel, MaxAmount: allInLevel})
	case toCall > 0 && p.Stack <= toCall:
		valid = append(valid, ValidAction{Action: AllIn, MinAmount: allInLevel, MaxAmount: allInLevel})
	}
	return valid
}

// apply validates and applies a decision for seat. It reports whether the
// player folded.
func (h *Hand) apply(seat int, d Decision) (bool, error) {
	p := h.Players[seat]
	toCall := h.ToCall(seat)

	if d.Amount < 0 {
		return false, fmt.Errorf("%w: negative amount %d", ErrIllegalAction, d.Amount)
	}

	switch d.Action {
	case Fold:
		p.Folded = true
		h.record(seat, Fold, 0)
		h.Log.add("%s folds", p.Name)
		return true, nil

	case Check:
		if toCall > 0 {
			return false, fmt.Errorf("%w: cannot check, must call %s", ErrIllegalAction, FormatChips(toCall))
		}
		h.check(seat)

	case Call:
		if toCall == 0 {
			h.check(seat)
			break
		}
		h.call(seat)

	case Raise:
		level := min(d.Amount, p.Bet+p.Stack)
		if !h.canRaise(seat) {
			return false, fmt.Errorf("%w: raise not allowed", ErrIllegalAction)
		}
		if level <= h.CurrentBet {
			return false, fmt.Errorf("%w: raise to %s does not exceed current bet %s",
				ErrIllegalAction, FormatChips(level), FormatChips(h.CurrentBet))
		}
		if level < h.MinRaiseTo() && level < p.Bet+p.Stack {
			return false, fmt.Errorf("%w: raise to %s below minimum %s",
				ErrIllegalAction, FormatChips(level), FormatChips(h.MinRaiseTo()))
		}
		h.raiseTo(seat, level)

	case AllIn:
		if p.Stack == 0 {
			return false, fmt.Errorf("%w: no chips to move all-in", ErrIllegalAction)
		}
		level := p.Bet + p.Stack
		if level <= h.CurrentBet {
			h.call(seat)
			break
		}
		if !h.canRaise(seat) {
			return false, fmt.Errorf("%w: all-in raise not allowed, betting is closed to %s", ErrIllegalAction, p.Name)
		}
		h.raiseTo(seat, level)

	default:
		return false, fmt.Errorf("%w: unknown action %d", ErrIllegalAction, d.Action)
	}

	h.acted[seat] = true
	h.turns[seat]++
	return false, nil
}

func (h *Hand) check(seat int) {
	h.record(seat, Check, 0)
	h.Log.add("%s checks", h.Players[seat].Name)
}

func (h *Hand) call(seat int) {
	p := h.Players[seat]
	added := h.Pot.Post(p, h.ToCall(seat))
	if h.Street == Preflop {
		h.vpip[seat] = true
	}
	h.record(seat, Call, added)
	h.Log.add("%s calls %s%s", p.Name, FormatChips(added), allInSuffix(p))
}

// raiseTo lifts the seat's bet to level. A raise of at least the minimum
// increment reopens the action for everyone else; a short all-in does not.
func (h *Hand) raiseTo(seat int, level int) {
	p := h.Players[seat]
	added := h.Pot.Post(p, level-p.Bet)
	increment := p.Bet - h.CurrentBet

	if increment >= h.MinRaise {
		h.MinRaise = increment
		for other := range h.acted {
			if other != seat {
				h.acted[other] = false
			}
		}
	}
	h.CurrentBet = p.Bet
	h.LastRaise = increment
	h.LastRaiser = seat
	h.Raises++
	if h.Street == Preflop {
		h.vpip[seat] = true
		h.aggressor = seat
	}

	kind := Raise
	if p.AllIn {
		kind = AllIn
	}
	h.record(seat, kind, added)
	h.Log.add("%s raises to %s%s", p.Name, FormatChips(p.Bet), allInSuffix(p))
}

func (h *Hand) record(seat int, a Action, added int) {
	p := h.Players[seat]
	h.actions = append(h.actions, ActionRecord{
		Seat:   seat,
		Street: h.Street,
		Action: a,
		Added:  added,
		Level:  p.Bet,
		AllIn:  p.AllIn,
	})
}

// bettingRound runs one street's action loop. It returns false when the street
// ended with a fold. Slots rotate through the action order; each slot picks its
// player first and only then looks at whether the round is over or the player
// is skipped.
func (e *Engine) bettingRound(h *Hand, agents [2]Agent) (bool, error) {
	if len(h.ActivePlayers()) == 0 {
		return false, ErrNoActivePlayers
	}

	order := h.ActionOrder()
	limit := len(order) * e.actionsPerPlayer
	total := h.chipsInPlay()
	actions := 0

	for slot := 0; ; slot++ {
		seat := order[slot%len(order)]
		p := h.Players[seat]

		if h.bettingClosed() {
			return true, nil
		}
		if skippable(p) {
			continue
		}
		if actions >= limit {
			h.guard = true
			e.logger.Error("invariant violation: betting round exceeded action bound",
				"hand_id", h.ID, "street", h.Street, "actions", actions)
			return true, nil
		}

		ctx := h.decisionContext(seat)
		valid := h.ValidActions(seat)
		d := agents[seat].MakeDecision(ctx, valid)
		actions++
		h.decisions++

		folded, err := h.apply(seat, d)
		if err != nil {
			return false, fmt.Errorf("%s %s on the %s: %w", p.Name, d.Action, h.Street, err)
		}
		if got := h.chipsInPlay(); got != total {
			return false, fmt.Errorf("%w: %d chips in play, expected %d", ErrChipsNotConserved, got, total)
		}

		e.logger.Debug("action",
			"hand_id", h.ID,
			"street", h.Street,
			"player", p.Name,
			"action", d.Action,
			"amount", d.Amount,
			"pot", h.Pot.Total(),
			"reasoning", d.Reasoning)

		if folded {
			return false, nil
		}
	}
}
