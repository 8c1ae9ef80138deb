package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/headsup/internal/game"
)

// ManiacBot is an extremely aggressive bot that shoves frequently
type ManiacBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewManiacBot creates a new ManiacBot instance
func NewManiacBot(rng *rand.Rand, logger *log.Logger) *ManiacBot {
	return &ManiacBot{rng: rng, logger: logger}
}

func (m *ManiacBot) MakeDecision(ctx game.DecisionContext, valid []game.ValidAction) game.Decision {
	raise, canRaise := findAction(valid, game.Raise)
	canShove := hasAction(valid, game.AllIn)

	shove := func(reason string) (game.Decision, bool) {
		switch {
		case canShove:
			return game.Decision{Action: game.AllIn, Reasoning: reason}, true
		case canRaise:
			return game.Decision{Action: game.Raise, Amount: raise.MaxAmount, Reasoning: reason}, true
		}
		return game.Decision{}, false
	}

	if ctx.ToCall == 0 {
		// Maniacs prefer to bet.
		if m.rng.Float64() < 0.85 {
			if ctx.Stack <= 20*ctx.BigBlind || m.rng.Float64() < 0.3 {
				if d, ok := shove("maniac shove"); ok {
					return d
				}
			} else if canRaise {
				size := raise.MinAmount + (raise.MaxAmount-raise.MinAmount)/4
				return game.Decision{Action: game.Raise, Amount: size, Reasoning: "maniac big raise"}
			}
		}
		return check("maniac checking")
	}

	roll := m.rng.Float64()
	if roll < 0.4 {
		if d, ok := shove("maniac shove over bet"); ok {
			return d
		}
	}
	if roll < 0.8 && hasAction(valid, game.Call) {
		return call("maniac call")
	}
	return fold("maniac fold")
}
