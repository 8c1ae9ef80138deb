package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/headsup/internal/game"
)

// FishBot is a passive calling station. It limps or calls every preflop
// decision, check-calls after the flop and never raises.
type FishBot struct {
	logger *log.Logger
}

// NewFishBot creates a new FishBot instance
func NewFishBot(logger *log.Logger) *FishBot {
	return &FishBot{logger: logger}
}

func (f *FishBot) MakeDecision(ctx game.DecisionContext, valid []game.ValidAction) game.Decision {
	if ctx.ToCall == 0 {
		return legalize(ctx, valid, check("fish checks"))
	}
	if ctx.Street == game.Preflop && ctx.IsFirstToAct {
		return legalize(ctx, valid, call("fish limps"))
	}
	return legalize(ctx, valid, call("fish calls"))
}
