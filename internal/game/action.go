package game

import (
	"fmt"
	"strings"
)

// Street is one betting phase of a hand.
type Street uint8

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	default:
		return fmt.Sprintf("street(%d)", uint8(s))
	}
}

// label is the form used for board lines in the hand log, e.g. "FLOP".
func (s Street) label() string {
	return strings.ToUpper(s.String())
}

// Action is the kind of a player decision.
type Action uint8

const (
	Fold Action = iota
	Check
	Call
	Raise
	AllIn
)

func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Raise:
		return "raise"
	case AllIn:
		return "allin"
	default:
		return fmt.Sprintf("action(%d)", uint8(a))
	}
}

// ParseAction is the inverse of Action.String.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(s) {
	case "fold":
		return Fold, nil
	case "check":
		return Check, nil
	case "call":
		return Call, nil
	case "raise", "bet":
		return Raise, nil
	case "allin", "all-in":
		return AllIn, nil
	default:
		return 0, fmt.Errorf("unknown action %q", s)
	}
}

// Decision is an agent's answer. Amount is read only for Raise and is the new
// total bet level for the street.
type Decision struct {
	Action    Action
	Amount    int
	Reasoning string
}

// ValidAction describes one legal choice. For Raise and AllIn the amounts are
// total levels; for Call they are the chips that would go in.
type ValidAction struct {
	Action    Action
	MinAmount int
	MaxAmount int
}

// ActionRecord is one applied decision.
type ActionRecord struct {
	Seat   int
	Street Street
	Action Action
	Added  int // chips moved from the stack
	Level  int // player's bet for the street afterwards
	AllIn  bool
}
