package game

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/headsup/poker"
)

func playScripted(t *testing.T, players [2]*Player, button int, deckCards [3]string, alice, bob *scripted, opts ...EngineOption) (*HandResult, error) {
	t.Helper()
	deck := stackedDeck(t, deckCards[button], deckCards[1-button], deckCards[2])
	h := NewHand("test-hand", players, button, 5, 10)
	return NewEngine(quietLogger(), opts...).PlayHand(h, deck, [2]Agent{alice, bob})
}

func TestButtonRaiseIsNotLoggedAsCall(t *testing.T) {
	t.Parallel()

	// alice holds the button: raise preflop, then check it down.
	alice := script(t, "alice", append([]Decision{raiseTo(30)}, checks(3)...)...)
	bob := script(t, "bob", append([]Decision{call()}, checks(3)...)...)

	res, err := playScripted(t, newPlayers(1000, 1000), 0,
		[3]string{"As Ks", "Qh Qd", "7c 8d 9h Jc 3s"}, alice, bob)
	require.NoError(t, err)

	assert.Contains(t, res.Log, "alice raises to $30.00")
	assert.Contains(t, res.Log, "bob calls $20.00")
	assert.False(t, logContains(res.Log, "calls $5.00"))
	assert.False(t, logContains(res.Log, "calls $0.00"))

	// bob opens the flop facing a pot of both $30 commitments.
	require.Len(t, bob.contexts, 4)
	assert.Equal(t, Flop, bob.contexts[1].Street)
	assert.Equal(t, 60, bob.contexts[1].Pot)

	assert.Equal(t, ShowdownEnd, res.Outcome)
	assert.Equal(t, []int{1}, res.Winners)
	assert.Equal(t, "One Pair", res.Description)
	assert.Equal(t, 970, res.Players[0].StackAfter)
	assert.Equal(t, 1030, res.Players[1].StackAfter)
	assert.True(t, res.Players[0].VPIP)
	assert.True(t, res.Players[1].VPIP)
	assert.True(t, alice.done())
	assert.True(t, bob.done())
}

func TestPreflopAllInRunsOutTheBoard(t *testing.T) {
	t.Parallel()

	alice := script(t, "alice", allIn())
	bob := script(t, "bob", call())

	res, err := playScripted(t, newPlayers(910, 910), 0,
		[3]string{"Ah Ad", "Kc Kd", "7c 8d 9h Jc 3s"}, alice, bob)
	require.NoError(t, err)

	assert.Contains(t, res.Log, "alice raises to $910.00 (all-in)")
	assert.Contains(t, res.Log, "bob calls $900.00 (all-in)")

	for _, street := range []string{"FLOP", "TURN", "RIVER"} {
		idx := slices.Index(res.Log, street+": no betting — all-in runout")
		require.NotEqual(t, -1, idx, "missing runout notice for %s", street)
		assert.Contains(t, res.Log[idx-1], street+": ", "board line precedes the notice")
	}

	assert.True(t, res.Runout)
	assert.Len(t, res.Board, 5)
	assert.Equal(t, 2, res.Decisions)
	assert.Len(t, alice.contexts, 1)
	assert.Len(t, bob.contexts, 1)
	assert.Equal(t, ShowdownEnd, res.Outcome)
	assert.Equal(t, 1820, res.Players[0].StackAfter)
	assert.Equal(t, 0, res.Players[1].StackAfter)
}

func TestBigBlindKeepsOption(t *testing.T) {
	t.Parallel()

	// bob holds the button and completes; alice still gets to act.
	bob := script(t, "bob", append([]Decision{call()}, checks(3)...)...)
	alice := script(t, "alice", checks(4)...)

	res, err := playScripted(t, newPlayers(1000, 1000), 1,
		[3]string{"9s 8s", "Tc 4d", "Kh Qd 6c 5h 3s"}, alice, bob)
	require.NoError(t, err)

	require.NotEmpty(t, alice.contexts)
	opt := alice.contexts[0]
	assert.Equal(t, Preflop, opt.Street)
	assert.Equal(t, 10, opt.Bet)
	assert.Equal(t, 10, opt.CurrentBet)
	assert.Equal(t, 0, opt.ToCall)
	assert.True(t, hasValid(alice.valid[0], Check))
	assert.True(t, hasValid(alice.valid[0], Raise))
	assert.False(t, hasValid(alice.valid[0], Call))

	assert.Contains(t, res.Log, "bob calls $5.00")
	idx := slices.Index(res.Log, "bob calls $5.00")
	assert.Equal(t, "alice checks", res.Log[idx+1])
	assert.Equal(t, 8, res.Decisions)
}

func TestFoldToRaiseEndsHand(t *testing.T) {
	t.Parallel()

	alice := script(t, "alice", raiseTo(30))
	bob := script(t, "bob", fold())

	res, err := playScripted(t, newPlayers(1000, 1000), 0,
		[3]string{"As Ks", "7h 2s", "7c 8d 9h Jc 3s"}, alice, bob)
	require.NoError(t, err)

	assert.Equal(t, FoldEnd, res.Outcome)
	assert.Equal(t, Preflop, res.StreetReached)
	assert.Empty(t, res.Board)
	assert.Equal(t, 40, res.Pot)
	assert.Equal(t, 40, res.Players[0].Won)
	assert.Equal(t, 1010, res.Players[0].StackAfter)
	assert.Equal(t, 990, res.Players[1].StackAfter)
	assert.Equal(t, "opponent folded", res.Description)
	assert.Equal(t, "alice wins $40.00", res.Log[len(res.Log)-1])
	assert.False(t, logContains(res.Log, "FLOP"))
}

func TestTiedShowdownSplitsPot(t *testing.T) {
	t.Parallel()

	alice := script(t, "alice", append([]Decision{call()}, checks(3)...)...)
	bob := script(t, "bob", checks(4)...)

	res, err := playScripted(t, newPlayers(1000, 1000), 0,
		[3]string{"5s 6d", "5h 6c", "Ks Kd 7c 7h Ac"}, alice, bob)
	require.NoError(t, err)

	assert.Equal(t, ShowdownEnd, res.Outcome)
	assert.Equal(t, -1, res.Winner())
	assert.ElementsMatch(t, []int{0, 1}, res.Winners)
	assert.Equal(t, "split pot, Two Pair", res.Description)
	assert.Equal(t, 10, res.Players[0].Won)
	assert.Equal(t, 10, res.Players[1].Won)
	assert.Equal(t, 1000, res.Players[0].StackAfter)
	assert.Equal(t, 1000, res.Players[1].StackAfter)
	assert.Contains(t, res.Log, "alice wins $10.00 (split pot)")
	assert.Contains(t, res.Log, "bob shows 5h, 6c: Two Pair")
}

func TestShortBlindReturnsUncalledChips(t *testing.T) {
	t.Parallel()

	// alice cannot cover the small blind; nobody is asked to act.
	alice := script(t, "alice")
	bob := script(t, "bob")

	res, err := playScripted(t, newPlayers(3, 1000), 0,
		[3]string{"Ah Ad", "Kc Kd", "7c 8d 9h Jc 3s"}, alice, bob)
	require.NoError(t, err)

	assert.Equal(t, "alice posts SB $3.00 (all-in)", res.Log[0])
	assert.Equal(t, "bob posts BB $10.00", res.Log[1])
	assert.Contains(t, res.Log, "Uncalled bet of $7.00 returned to bob")
	assert.Equal(t, 0, res.Decisions)
	assert.Equal(t, 6, res.Pot)
	assert.Equal(t, 6, res.Players[0].StackAfter)
	assert.Equal(t, 997, res.Players[1].StackAfter)
	assert.True(t, res.Runout)
}

func TestShortBigBlindMustBeCalled(t *testing.T) {
	t.Parallel()

	alice := script(t, "alice", call())
	bob := script(t, "bob")

	res, err := playScripted(t, newPlayers(1000, 7), 0,
		[3]string{"Ah Ad", "Kc Kd", "7c 8d 9h Jc 3s"}, alice, bob)
	require.NoError(t, err)

	assert.Equal(t, "bob posts BB $7.00 (all-in)", res.Log[1])
	require.Len(t, alice.contexts, 1)
	assert.Equal(t, 2, alice.contexts[0].ToCall)
	assert.False(t, hasValid(alice.valid[0], Raise), "nobody is left to respond to a raise")
	assert.Contains(t, res.Log, "alice calls $2.00")
	assert.Equal(t, 1007, res.Players[0].StackAfter)
}

func TestShortAllInDoesNotReopenBetting(t *testing.T) {
	t.Parallel()

	alice := script(t, "alice", raiseTo(20), call())
	bob := script(t, "bob", allIn())

	res, err := playScripted(t, newPlayers(1000, 25), 0,
		[3]string{"Ah Ad", "Kc Kd", "7c 8d 9h Jc 3s"}, alice, bob)
	require.NoError(t, err)

	assert.Contains(t, res.Log, "bob raises to $25.00 (all-in)")
	require.Len(t, alice.valid, 2)
	assert.False(t, hasValid(alice.valid[1], Raise))
	assert.False(t, hasValid(alice.valid[1], AllIn))
	c, ok := findValid(alice.valid[1], Call)
	require.True(t, ok)
	assert.Equal(t, 5, c.MinAmount)
	assert.Contains(t, res.Log, "alice calls $5.00")
	assert.True(t, res.Runout)
}

func TestFullRaiseReopensBetting(t *testing.T) {
	t.Parallel()

	alice := script(t, "alice", raiseTo(20), raiseTo(60), call())
	bob := script(t, "bob", raiseTo(40), allIn())

	res, err := playScripted(t, newPlayers(1000, 200), 0,
		[3]string{"Ah Ad", "Kc Kd", "7c 8d 9h Jc 3s"}, alice, bob)
	require.NoError(t, err)

	require.Len(t, alice.valid, 3)
	assert.True(t, hasValid(alice.valid[1], Raise), "a full raise lets alice raise again")
	r, _ := findValid(alice.valid[1], Raise)
	assert.Equal(t, 60, r.MinAmount)
	assert.Contains(t, res.Log, "bob raises to $200.00 (all-in)")
	assert.Contains(t, res.Log, "alice calls $140.00")
}

func TestCallWithNothingOwedIsLoggedAsCheck(t *testing.T) {
	t.Parallel()

	alice := script(t, "alice", append([]Decision{call()}, checks(3)...)...)
	bob := script(t, "bob", call(), call(), call(), call())

	res, err := playScripted(t, newPlayers(1000, 1000), 0,
		[3]string{"5s 6d", "5h 6c", "Ks Kd 7c 7h Ac"}, alice, bob)
	require.NoError(t, err)

	assert.False(t, logContains(res.Log, "calls $0.00"))
	assert.Contains(t, res.Log, "bob checks")
	for _, a := range res.Actions {
		if a.Action == Call {
			assert.Positive(t, a.Added)
		}
	}
}

func TestRaiseAboveStackIsCapped(t *testing.T) {
	t.Parallel()

	alice := script(t, "alice", raiseTo(5000))
	bob := script(t, "bob", fold())

	res, err := playScripted(t, newPlayers(500, 1000), 0,
		[3]string{"Ah Ad", "Kc Kd", "7c 8d 9h Jc 3s"}, alice, bob)
	require.NoError(t, err)

	assert.Contains(t, res.Log, "alice raises to $500.00 (all-in)")
	assert.Equal(t, 510, res.Players[0].StackAfter)
}

func TestIllegalDecisions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		alice []Decision
		bob   []Decision
		msg   string
	}{
		{"check facing a raise", []Decision{raiseTo(30)}, []Decision{check()}, "cannot check, must call $20.00"},
		{"raise below minimum", []Decision{raiseTo(15)}, nil, "raise to $15.00 below minimum $20.00"},
		{"raise that does not raise", []Decision{raiseTo(10)}, nil, "does not exceed current bet"},
		{"negative amount", []Decision{{Action: Raise, Amount: -5}}, nil, "negative amount"},
		{"unknown action", []Decision{{Action: Action(42)}}, nil, "unknown action"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := playScripted(t, newPlayers(1000, 1000), 0,
				[3]string{"As Ks", "Qh Qd", "7c 8d 9h Jc 3s"},
				script(t, "alice", tt.alice...), script(t, "bob", tt.bob...))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrIllegalAction))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestBustedPlayerCannotStart(t *testing.T) {
	t.Parallel()

	_, err := playScripted(t, newPlayers(0, 1000), 0,
		[3]string{"As Ks", "Qh Qd", "7c 8d 9h Jc 3s"}, script(t, "alice"), script(t, "bob"))
	assert.ErrorIs(t, err, ErrBustedPlayer)
}

func TestExhaustedDeckIsFatal(t *testing.T) {
	t.Parallel()

	h := NewHand("short-deck", newPlayers(1000, 1000), 0, 5, 10)
	deck := poker.NewDeckFromCards(poker.MustParseCards("As Ks Qh")...)
	_, err := NewEngine(quietLogger()).PlayHand(h, deck, [2]Agent{script(t, "alice"), script(t, "bob")})
	assert.ErrorIs(t, err, poker.ErrDeckExhausted)
}

func TestActionBoundForcesRoundClosed(t *testing.T) {
	t.Parallel()

	raiser := func(ctx DecisionContext, valid []ValidAction) Decision {
		if ctx.Street == Preflop {
			if r, ok := findValid(valid, Raise); ok {
				return raiseTo(r.MinAmount)
			}
			return call()
		}
		return check()
	}

	h := NewHand("runaway", newPlayers(1000, 1000), 0, 5, 10)
	deck := stackedDeck(t, "As Ks", "Qh Qd", "7c 8d 9h Jc 3s")
	res, err := NewEngine(quietLogger(), WithActionBound(2)).
		PlayHand(h, deck, [2]Agent{AgentFunc(raiser), AgentFunc(raiser)})
	require.NoError(t, err)

	assert.True(t, res.GuardTripped)
	assert.Equal(t, 2000, res.Players[0].StackAfter+res.Players[1].StackAfter)
	assert.True(t, logContains(res.Log, "Uncalled bet of"))
}

func TestBettingRoundWithNoActivePlayers(t *testing.T) {
	t.Parallel()

	h := NewHand("h1", newPlayers(1000, 1000), 0, 5, 10)
	for _, p := range h.Players {
		p.Folded = true
	}

	more, err := NewEngine(quietLogger()).bettingRound(h, [2]Agent{foldAgent(), foldAgent()})
	require.ErrorIs(t, err, ErrNoActivePlayers)
	assert.False(t, more)
}
