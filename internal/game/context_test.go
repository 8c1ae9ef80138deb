package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/headsup/poker"
)

func TestClassifyFacing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		c           commitments
		firstToAct  bool
		facingRaise bool
	}{
		{
			name:       "button holding small blind opens",
			c:          commitments{Street: Preflop, Bet: 5, OpponentBet: 10, SmallBlind: 5, BigBlind: 10, FirstInOrder: true},
			firstToAct: true,
		},
		{
			name:        "button facing a raise",
			c:           commitments{Street: Preflop, Bet: 10, OpponentBet: 30, SmallBlind: 5, BigBlind: 10, Raises: 1, FirstInOrder: true, ActedBefore: true},
			facingRaise: true,
		},
		{
			name: "big blind option after a limp",
			c:    commitments{Street: Preflop, Bet: 10, OpponentBet: 10, SmallBlind: 5, BigBlind: 10},
		},
		{
			name:        "big blind facing an open",
			c:           commitments{Street: Preflop, Bet: 10, OpponentBet: 30, SmallBlind: 5, BigBlind: 10, Raises: 1},
			facingRaise: true,
		},
		{
			name:        "short small blind faces the big blind",
			c:           commitments{Street: Preflop, Bet: 3, OpponentBet: 10, SmallBlind: 5, BigBlind: 10, FirstInOrder: true},
			facingRaise: true,
		},
		{
			name:       "first to act on the flop",
			c:          commitments{Street: Flop, SmallBlind: 5, BigBlind: 10, FirstInOrder: true},
			firstToAct: true,
		},
		{
			name: "checked to on the flop",
			c:    commitments{Street: Flop, SmallBlind: 5, BigBlind: 10},
		},
		{
			name:        "facing a flop bet",
			c:           commitments{Street: Flop, OpponentBet: 20, SmallBlind: 5, BigBlind: 10, Raises: 1},
			facingRaise: true,
		},
		{
			name:        "repeat action after a check-raise",
			c:           commitments{Street: Turn, Bet: 20, OpponentBet: 60, SmallBlind: 5, BigBlind: 10, Raises: 2, FirstInOrder: true, ActedBefore: true},
			facingRaise: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			first, facing := classifyFacing(tt.c)
			assert.Equal(t, tt.firstToAct, first, "firstToAct")
			assert.Equal(t, tt.facingRaise, facing, "facingRaise")
		})
	}
}

func TestDecisionContextPreflopButton(t *testing.T) {
	t.Parallel()

	alice := script(t, "alice", fold())
	bob := script(t, "bob")

	_, err := playScripted(t, newPlayers(1000, 1000), 0,
		[3]string{"As Ks", "Qh Qd", "7c 8d 9h Jc 3s"}, alice, bob)
	assert.NoError(t, err)

	ctx := alice.contexts[0]
	assert.True(t, ctx.IsFirstToAct)
	assert.False(t, ctx.FacingRaise)
	assert.False(t, ctx.RepeatAction)
	assert.True(t, ctx.IsButton)
	assert.Equal(t, 5, ctx.ToCall)
	assert.Equal(t, 20, ctx.MinRaiseTo)
	assert.Equal(t, 15, ctx.Pot)
	assert.Equal(t, -1, ctx.Raiser)
	assert.Equal(t, "As, Ks", poker.FormatCards(ctx.HoleCards[:]))

	// Raising stays on offer alongside the call.
	assert.True(t, hasValid(alice.valid[0], Raise))
	assert.True(t, hasValid(alice.valid[0], Call))
}

func TestDecisionContextRepeatAction(t *testing.T) {
	t.Parallel()

	alice := script(t, "alice", raiseTo(30), fold())
	bob := script(t, "bob", raiseTo(90))

	_, err := playScripted(t, newPlayers(1000, 1000), 0,
		[3]string{"As Ks", "Qh Qd", "7c 8d 9h Jc 3s"}, alice, bob)
	assert.NoError(t, err)

	first := bob.contexts[0]
	assert.True(t, first.FacingRaise)
	assert.False(t, first.IsFirstToAct)
	assert.Equal(t, 0, first.Raiser)
	assert.Equal(t, 20, first.LastRaiseSize)

	again := alice.contexts[1]
	assert.True(t, again.RepeatAction)
	assert.True(t, again.FacingRaise)
	assert.False(t, again.IsFirstToAct)
	assert.False(t, again.PreflopAggressor)
	assert.Equal(t, 60, again.ToCall)
}
