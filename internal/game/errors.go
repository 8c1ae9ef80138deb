package game

import "errors"

var (
	// ErrIllegalAction wraps every decision that breaks the betting rules.
	ErrIllegalAction = errors.New("illegal action")
	// ErrNoActivePlayers is returned when betting is requested with nobody left in the hand.
	ErrNoActivePlayers = errors.New("no active players")
	// ErrBustedPlayer is returned when a hand would start with an empty stack.
	ErrBustedPlayer = errors.New("player has no chips")
	// ErrChipsNotConserved signals an accounting bug.
	ErrChipsNotConserved = errors.New("chips not conserved")
)
