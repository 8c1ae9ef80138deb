package game

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/lox/headsup/poker"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// stackedDeck orders cards the way a hand consumes them: hole cards one at a
// time starting with the big blind, then a burn before each street.
func stackedDeck(t *testing.T, button, bigBlind, board string) *poker.Deck {
	t.Helper()

	btn := poker.MustParseCards(button)
	bb := poker.MustParseCards(bigBlind)
	b := poker.MustParseCards(board)
	require.Len(t, btn, 2)
	require.Len(t, bb, 2)
	require.Len(t, b, 5)

	burns := poker.MustParseCards("2c 2d 2h")
	cards := []poker.Card{bb[0], btn[0], bb[1], btn[1]}
	cards = append(cards, burns[0], b[0], b[1], b[2])
	cards = append(cards, burns[1], b[3])
	cards = append(cards, burns[2], b[4])
	return poker.NewDeckFromCards(cards...)
}

// scripted replays decisions in order and records what it was shown.
type scripted struct {
	t        *testing.T
	name     string
	steps    []Decision
	contexts []DecisionContext
	valid    [][]ValidAction
}

func script(t *testing.T, name string, steps ...Decision) *scripted {
	return &scripted{t: t, name: name, steps: steps}
}

func (s *scripted) MakeDecision(ctx DecisionContext, valid []ValidAction) Decision {
	s.contexts = append(s.contexts, ctx)
	s.valid = append(s.valid, valid)
	require.NotEmpty(s.t, s.steps, "%s asked for an unscripted decision on the %s", s.name, ctx.Street)
	d := s.steps[0]
	s.steps = s.steps[1:]
	return d
}

func (s *scripted) done() bool {
	return len(s.steps) == 0
}

func fold() Decision          { return Decision{Action: Fold} }
func check() Decision         { return Decision{Action: Check} }
func call() Decision          { return Decision{Action: Call} }
func allIn() Decision         { return Decision{Action: AllIn} }
func raiseTo(n int) Decision  { return Decision{Action: Raise, Amount: n} }
func checks(n int) []Decision { return repeat(check(), n) }

func repeat(d Decision, n int) []Decision {
	out := make([]Decision, n)
	for i := range out {
		out[i] = d
	}
	return out
}

func newPlayers(stacks ...int) [2]*Player {
	return [2]*Player{
		NewPlayer(0, "alice", stacks[0]),
		NewPlayer(1, "bob", stacks[1]),
	}
}

func hasValid(valid []ValidAction, a Action) bool {
	for _, v := range valid {
		if v.Action == a {
			return true
		}
	}
	return false
}

func findValid(valid []ValidAction, a Action) (ValidAction, bool) {
	for _, v := range valid {
		if v.Action == a {
			return v, true
		}
	}
	return ValidAction{}, false
}

func logContains(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}
