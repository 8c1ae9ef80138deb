// Package bot provides decision policies for heads-up play.
package bot

import (
	"fmt"
	"maps"
	rand "math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/headsup/internal/game"
)

// Factory builds an agent. Agents that use randomness draw only from rng so a
// match seed reproduces their play.
type Factory func(rng *rand.Rand, logger *log.Logger) game.Agent

type entry struct {
	description string
	factory     Factory
}

var registry = map[string]entry{
	"tag": {"tight-aggressive: strength-ranked opens, 3-bets premiums, value bets top pair+",
		func(rng *rand.Rand, logger *log.Logger) game.Agent { return NewTAGBot(rng, logger) }},
	"fish": {"calling station: limps everything, check-calls, never raises",
		func(_ *rand.Rand, logger *log.Logger) game.Agent { return NewFishBot(logger) }},
	"call": {"checks or calls every decision",
		func(_ *rand.Rand, logger *log.Logger) game.Agent { return NewCallBot(logger) }},
	"fold": {"checks when free, otherwise folds",
		func(_ *rand.Rand, logger *log.Logger) game.Agent { return NewFoldBot(logger) }},
	"random": {"uniform over legal actions and raise sizes",
		func(rng *rand.Rand, logger *log.Logger) game.Agent { return NewRandBot(rng, logger) }},
	"maniac": {"bets and shoves relentlessly, folds a fifth of the time when facing a bet",
		func(rng *rand.Rand, logger *log.Logger) game.Agent { return NewManiacBot(rng, logger) }},
}

// New builds the named agent.
func New(name string, rng *rand.Rand, logger *log.Logger) (game.Agent, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown agent %q (available: %v)", name, Names())
	}
	return e.factory(rng, logger.WithPrefix(name)), nil
}

// Names lists the registered agents in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Describe returns a one-line summary of an agent.
func Describe(name string) string {
	return registry[name].description
}

// Known reports whether name is a registered agent.
func Known(name string) bool {
	_, ok := registry[name]
	return ok
}

func hasAction(valid []game.ValidAction, a game.Action) bool {
	_, ok := findAction(valid, a)
	return ok
}

func findAction(valid []game.ValidAction, a game.Action) (game.ValidAction, bool) {
	for _, v := range valid {
		if v.Action == a {
			return v, true
		}
	}
	return game.ValidAction{}, false
}

// legalize maps an intended decision onto the legal set: free folds become
// checks, raises are clamped to the legal range and turn into all-ins at the
// top of it, and anything unavailable degrades to a call or check.
func legalize(ctx game.DecisionContext, valid []game.ValidAction, d game.Decision) game.Decision {
	passive := func(reason string) game.Decision {
		if hasAction(valid, game.Check) {
			return game.Decision{Action: game.Check, Reasoning: reason}
		}
		if hasAction(valid, game.Call) {
			return game.Decision{Action: game.Call, Reasoning: reason}
		}
		return game.Decision{Action: game.Fold, Reasoning: reason}
	}

	switch d.Action {
	case game.Fold:
		if ctx.ToCall == 0 && hasAction(valid, game.Check) {
			return game.Decision{Action: game.Check, Reasoning: d.Reasoning}
		}
		return d

	case game.Check, game.Call:
		return passive(d.Reasoning)

	case game.Raise:
		shove, canShove := findAction(valid, game.AllIn)
		r, ok := findAction(valid, game.Raise)
		switch {
		case ok && d.Amount < r.MaxAmount:
			return game.Decision{Action: game.Raise, Amount: max(d.Amount, r.MinAmount), Reasoning: d.Reasoning}
		case canShove && shove.MaxAmount > ctx.CurrentBet:
			return game.Decision{Action: game.AllIn, Reasoning: d.Reasoning}
		default:
			return passive(d.Reasoning)
		}

	case game.AllIn:
		if hasAction(valid, game.AllIn) {
			return d
		}
		return passive(d.Reasoning)

	default:
		return passive(d.Reasoning)
	}
}
