package game

import (
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/headsup/internal/gameid"
	"github.com/lox/headsup/internal/randutil"
)

func foldAgent() Agent {
	return AgentFunc(func(ctx DecisionContext, valid []ValidAction) Decision {
		return fold()
	})
}

func TestTableAlternatesButton(t *testing.T) {
	t.Parallel()

	table := NewTable(randutil.New(1), TableConfig{
		Names:         [2]string{"alice", "bob"},
		StartingStack: 1000,
		SmallBlind:    5,
		BigBlind:      10,
	}, [2]Agent{foldAgent(), foldAgent()}, NewEngine(quietLogger()))

	seen := map[string]bool{}
	for i := range 4 {
		res, err := table.PlayHand()
		require.NoError(t, err)

		assert.Equal(t, i%2, res.Button)
		assert.Equal(t, i+1, res.HandNumber)
		assert.NoError(t, gameid.Validate(res.HandID))
		assert.False(t, seen[res.HandID])
		seen[res.HandID] = true

		// The button folds and forfeits the small blind.
		assert.Equal(t, 1-res.Button, res.Winner())
		assert.Equal(t, -5, res.Players[res.Button].Net)
	}

	assert.Equal(t, 4, table.HandsPlayed())
	assert.Equal(t, [2]int{1000, 1000}, table.Stacks())
}

func TestTableBustAndRebuy(t *testing.T) {
	t.Parallel()

	shove := AgentFunc(func(ctx DecisionContext, valid []ValidAction) Decision {
		if hasValid(valid, AllIn) {
			return allIn()
		}
		return call()
	})

	table := NewTable(randutil.New(7), TableConfig{
		Names:         [2]string{"alice", "bob"},
		StartingStack: 100,
		SmallBlind:    5,
		BigBlind:      10,
	}, [2]Agent{shove, shove}, NewEngine(quietLogger()), WithStacks([2]int{100, 40}))

	for !table.Busted() {
		res, err := table.PlayHand()
		require.NoError(t, err)
		assert.Equal(t, 140, res.Players[0].StackAfter+res.Players[1].StackAfter)
		require.Less(t, table.HandsPlayed(), 100, "stacks should bust quickly when both players shove")
	}

	_, err := table.PlayHand()
	assert.ErrorIs(t, err, ErrBustedPlayer)

	busted := table.Rebuy()
	require.Len(t, busted, 1)
	assert.Equal(t, [2]int{100, 100}, table.Stacks())
	rebuys := table.Rebuys()
	assert.Equal(t, 1, rebuys[busted[0]])

	_, err = table.PlayHand()
	assert.NoError(t, err)
}

func TestTableWithDeckAndButton(t *testing.T) {
	t.Parallel()

	deck := stackedDeck(t, "Qh Qd", "As Ks", "7c 8d 9h Jc 3s")
	alice := script(t, "alice", append([]Decision{check()}, checks(3)...)...)
	bob := script(t, "bob", append([]Decision{call()}, checks(3)...)...)

	table := NewTable(randutil.New(3), TableConfig{
		Names:         [2]string{"alice", "bob"},
		StartingStack: 500,
		SmallBlind:    5,
		BigBlind:      10,
	}, [2]Agent{alice, bob}, NewEngine(quietLogger()), WithDeck(deck), WithButton(1))

	res, err := table.PlayHand()
	require.NoError(t, err)

	assert.Equal(t, 1, res.Button)
	assert.Equal(t, "bob shows Qh, Qd: One Pair", res.Log[len(res.Log)-2])
	assert.Equal(t, 0, table.Button())
}

func TestNewTablePanicsOnMisuse(t *testing.T) {
	t.Parallel()

	cfg := TableConfig{Names: [2]string{"a", "b"}, StartingStack: 100, SmallBlind: 5, BigBlind: 10}
	agents := [2]Agent{foldAgent(), foldAgent()}
	engine := NewEngine(quietLogger())

	assert.Panics(t, func() { NewTable(nil, cfg, agents, engine) })
	assert.Panics(t, func() { NewTable(randutil.New(1), cfg, [2]Agent{}, engine) })
	assert.Panics(t, func() {
		bad := cfg
		bad.BigBlind = 2
		NewTable(randutil.New(1), bad, agents, engine)
	})
	assert.Panics(t, func() { NewTable(randutil.New(1), cfg, agents, engine, WithButton(2)) })
}

func TestTableHandIDsAreReproducibleWithClock(t *testing.T) {
	t.Parallel()

	ids := func() []string {
		clock := quartz.NewMock(t)
		clock.Set(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
		table := NewTable(randutil.New(11), TableConfig{
			Names:         [2]string{"alice", "bob"},
			StartingStack: 1000,
			SmallBlind:    5,
			BigBlind:      10,
		}, [2]Agent{foldAgent(), foldAgent()}, NewEngine(quietLogger()), WithClock(clock))

		var out []string
		for range 3 {
			res, err := table.PlayHand()
			require.NoError(t, err)
			out = append(out, res.HandID)
		}
		return out
	}

	first, second := ids(), ids()
	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
	assert.Less(t, first[0], first[1])
	assert.Less(t, first[1], first[2])
}
