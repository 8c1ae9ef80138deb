package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/headsup/internal/game"
)

// FoldBot is a simple bot that always folds (or checks when possible)
type FoldBot struct {
	logger *log.Logger
}

// NewFoldBot creates a new FoldBot instance
func NewFoldBot(logger *log.Logger) *FoldBot {
	return &FoldBot{logger: logger}
}

func (f *FoldBot) MakeDecision(ctx game.DecisionContext, valid []game.ValidAction) game.Decision {
	if hasAction(valid, game.Check) {
		return check("fold-bot checking")
	}
	return fold("fold-bot folding")
}
