package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/headsup/internal/game"
)

// RandBot is a simple bot that makes uniform random legal actions
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger}
}

func (r *RandBot) MakeDecision(ctx game.DecisionContext, valid []game.ValidAction) game.Decision {
	if len(valid) == 0 {
		return fold("rand-bot no valid actions")
	}

	v := valid[r.rng.IntN(len(valid))]

	// For raises, pick random amount between min and max
	amount := v.MinAmount
	if v.Action == game.Raise && v.MaxAmount > v.MinAmount {
		amount = v.MinAmount + r.rng.IntN(v.MaxAmount-v.MinAmount+1)
	}

	return game.Decision{Action: v.Action, Amount: amount, Reasoning: "rand-bot random action"}
}
