package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/headsup/internal/game"
	"github.com/lox/headsup/poker"
)

// Preflop strength thresholds on the 169-hand scale.
const (
	premiumStrength = 0.82
	strongStrength  = 0.65
	mediumStrength  = 0.40
)

// TAGBot is a tight-aggressive player: it opens a wide but ranked range from
// the button, re-raises only premiums and bets for value with top pair or
// better after the flop.
type TAGBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewTAGBot creates a new TAGBot instance
func NewTAGBot(rng *rand.Rand, logger *log.Logger) *TAGBot {
	return &TAGBot{rng: rng, logger: logger}
}

func (t *TAGBot) MakeDecision(ctx game.DecisionContext, valid []game.ValidAction) game.Decision {
	var d game.Decision
	if ctx.Street == game.Preflop {
		d = t.preflop(ctx)
	} else {
		d = t.postflop(ctx)
	}

	d = legalize(ctx, valid, d)
	t.logger.Debug("decision", "hand_id", ctx.HandID, "street", ctx.Street,
		"action", d.Action, "amount", d.Amount, "reason", d.Reasoning)
	return d
}

// isFourBetHand is the narrow range that re-raises a three-bet: JJ+, AK, A5s.
func isFourBetHand(a, b poker.Card) bool {
	if poker.CategorizeHoleCards(a, b) == poker.CategoryPremium {
		return true
	}
	hi, lo := a.Rank(), b.Rank()
	if lo > hi {
		hi, lo = lo, hi
	}
	return hi == poker.Ace && lo == poker.Five && a.Suit() == b.Suit()
}

func (t *TAGBot) preflop(ctx game.DecisionContext) game.Decision {
	a, b := ctx.HoleCards[0], ctx.HoleCards[1]
	strength := poker.PreflopStrength(a, b)
	premium := strength >= premiumStrength
	strong := strength >= strongStrength

	if ctx.FacingRaise {
		// A bet of a quarter of the stack or more is shove-or-fold.
		if 4*ctx.ToCall >= ctx.Stack {
			if ctx.Raises >= 3 || ctx.ToCall >= ctx.Stack || ctx.OpponentStack == 0 {
				if premium {
					return game.Decision{Action: game.Call, Reasoning: "call all-in with a premium hand"}
				}
				return game.Decision{Action: game.Fold, Reasoning: "fold to all-in"}
			}
			if strong {
				return game.Decision{Action: game.AllIn, Reasoning: "shove over a large raise"}
			}
			return game.Decision{Action: game.Fold, Reasoning: "fold to a large raise"}
		}

		switch {
		case ctx.Raises >= 3:
			if premium {
				return game.Decision{Action: game.Call, Reasoning: "call a four-bet with a premium hand"}
			}
			return game.Decision{Action: game.Fold, Reasoning: "fold to a four-bet"}
		case ctx.Raises == 2:
			if isFourBetHand(a, b) {
				return game.Decision{Action: game.AllIn, Reasoning: "four-bet all-in"}
			}
			if strong {
				return game.Decision{Action: game.Call, Reasoning: "call a three-bet with a strong hand"}
			}
			return game.Decision{Action: game.Fold, Reasoning: "fold to a three-bet"}
		default:
			if premium {
				return game.Decision{Action: game.Raise, Amount: 3 * ctx.CurrentBet, Reasoning: "three-bet a premium hand"}
			}
			if strength >= mediumStrength {
				return game.Decision{Action: game.Call, Reasoning: "call an open"}
			}
			return game.Decision{Action: game.Fold, Reasoning: "fold a weak hand to a raise"}
		}
	}

	if ctx.IsFirstToAct {
		if strength >= mediumStrength {
			return game.Decision{Action: game.Raise, Amount: 3 * ctx.BigBlind, Reasoning: "open raise"}
		}
		return game.Decision{Action: game.Fold, Reasoning: "fold a weak hand first in"}
	}

	// Big blind option after a limp.
	if strong {
		return game.Decision{Action: game.Raise, Amount: 4 * ctx.BigBlind, Reasoning: "raise the limper"}
	}
	return game.Decision{Action: game.Check, Reasoning: "check the option"}
}

func (t *TAGBot) postflop(ctx game.DecisionContext) game.Decision {
	r := ReadHand(ctx.HoleCards, ctx.Board)
	facing := ctx.ToCall > 0
	made := r.Type >= poker.Straight
	desc := r.String()

	switch ctx.Street {
	case game.Flop:
		if ctx.InPosition {
			switch {
			case facing && r.TopPairOrBetter():
				return call("call the flop with " + desc)
			case facing:
				return fold("fold the flop with " + desc)
			case ctx.PreflopAggressor:
				frac := 0.33
				if t.rng.Float64() < 0.5 {
					frac = 0.5
				}
				return bet(ctx, frac, "continuation bet")
			case r.TopPairOrBetter():
				return bet(ctx, 0.66, "value bet "+desc)
			default:
				return check("check back " + desc)
			}
		}
		switch {
		case r.Type >= poker.TwoPair:
			return checkOr(facing, game.AllIn, "check-raise all-in with "+desc)
		case r.Pair >= TopPair || r.HasDraw():
			return checkOr(facing, game.Call, "check-call with "+desc)
		default:
			return checkOr(facing, game.Fold, "check-fold with "+desc)
		}

	case game.Turn:
		if ctx.InPosition {
			switch {
			case r.TopPairOrBetter() && facing:
				return call("call the turn with " + desc)
			case r.TopPairOrBetter():
				return bet(ctx, 1, "pot-sized value bet with "+desc)
			default:
				return checkOr(facing, game.Fold, "give up the turn with "+desc)
			}
		}
		switch {
		case made:
			return checkOr(facing, game.AllIn, "check-raise all-in with "+desc)
		case r.TopPairOrBetter():
			return checkOr(facing, game.Call, "check-call the turn with "+desc)
		default:
			return checkOr(facing, game.Fold, "check-fold the turn with "+desc)
		}

	default:
		if made {
			if ctx.InPosition {
				return game.Decision{Action: game.AllIn, Reasoning: "river shove with " + desc}
			}
			return checkOr(facing, game.AllIn, "river check-raise all-in with "+desc)
		}
		if r.TopPairOrBetter() {
			return checkOr(facing, game.Call, "bluff-catch the river with "+desc)
		}
		return checkOr(facing, game.Fold, "check-fold the river with "+desc)
	}
}

// bet sizes a bet as a fraction of the pot.
func bet(ctx game.DecisionContext, fraction float64, reason string) game.Decision {
	size := max(int(float64(ctx.Pot)*fraction), ctx.BigBlind)
	return game.Decision{Action: game.Raise, Amount: ctx.CurrentBet + size, Reasoning: reason}
}

// checkOr checks when nothing is owed and otherwise takes action a.
func checkOr(facing bool, a game.Action, reason string) game.Decision {
	if !facing {
		return check(reason)
	}
	return game.Decision{Action: a, Reasoning: reason}
}

func check(reason string) game.Decision {
	return game.Decision{Action: game.Check, Reasoning: reason}
}

func call(reason string) game.Decision {
	return game.Decision{Action: game.Call, Reasoning: reason}
}

func fold(reason string) game.Decision {
	return game.Decision{Action: game.Fold, Reasoning: reason}
}
