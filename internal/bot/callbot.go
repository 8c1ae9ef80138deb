package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/headsup/internal/game"
)

// CallBot checks or calls every decision down to showdown.
type CallBot struct {
	logger *log.Logger
}

// NewCallBot creates a new CallBot instance
func NewCallBot(logger *log.Logger) *CallBot {
	return &CallBot{logger: logger}
}

func (c *CallBot) MakeDecision(ctx game.DecisionContext, valid []game.ValidAction) game.Decision {
	if hasAction(valid, game.Check) {
		return check("call-bot checking")
	}
	if v, ok := findAction(valid, game.Call); ok {
		return game.Decision{Action: game.Call, Amount: v.MinAmount, Reasoning: "call-bot calling"}
	}
	return fold("call-bot forced fold")
}
