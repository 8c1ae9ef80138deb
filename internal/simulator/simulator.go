// Package simulator plays long heads-up matches between two agents and
// aggregates the results per agent.
package simulator

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/headsup/internal/bot"
	"github.com/lox/headsup/internal/game"
	"github.com/lox/headsup/internal/gameid"
	"github.com/lox/headsup/internal/randutil"
	"github.com/lox/headsup/internal/statistics"
)

// ErrHandTimeout is returned when an agent takes longer than the configured
// hand timeout.
var ErrHandTimeout = errors.New("hand timed out")

// PlayerConfig seats one agent.
type PlayerConfig struct {
	Name  string
	Agent string
}

// Config holds configuration for running simulations
type Config struct {
	Hands         int
	Sessions      int // independent tables played concurrently
	Seed          int64
	StartingStack int
	SmallBlind    int
	BigBlind      int
	Players       [2]PlayerConfig

	// KeepHands retains every HandResult for export.
	KeepHands   bool
	HandTimeout time.Duration // zero disables the timeout

	// NewAgent builds the agent for a seat; nil uses the bot registry.
	NewAgent AgentFactory

	// Clock times the match and stamps hand ids. A mock clock makes the ids
	// reproducible from the seed.
	Clock  quartz.Clock
	Logger *log.Logger
}

// AgentFactory builds an agent by name.
type AgentFactory func(name string, rng *rand.Rand, logger *log.Logger) (game.Agent, error)

// PlayerSummary is one agent's aggregate.
type PlayerSummary struct {
	Name  string
	Agent string
	Stats *statistics.Statistics
}

// Result is the outcome of a whole match.
type Result struct {
	MatchID    string
	Seed       int64
	Players    [2]PlayerSummary
	Hands      []*game.HandResult // session order, numbered from 1
	HandsTotal int
	GuardTrips int
	Start      time.Time
	End        time.Time
}

// Duration is the wall time the match took.
func (r *Result) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// HandsPerSecond is the throughput of the match.
func (r *Result) HandsPerSecond() float64 {
	return handsPerSecond(r.HandsTotal, r.Duration())
}

func handsPerSecond(hands int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(hands) / d.Seconds()
}

// Simulator runs heads-up matches.
type Simulator struct {
	config Config
	clock  quartz.Clock
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		panic("logger is required")
	}
	clock := config.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	if config.Sessions < 1 {
		config.Sessions = 1
	}
	if config.NewAgent == nil {
		config.NewAgent = bot.New
	}
	return &Simulator{config: config, clock: clock, logger: config.Logger.WithPrefix("sim")}
}

// session is one table's share of the match.
type session struct {
	index int
	hands int
	stats [2]*statistics.Statistics
	kept  []*game.HandResult
	trips int
}

// Run plays the match. Sessions run concurrently; each one is sequential and
// seeded from the match seed, so a seed reproduces the same hands.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	for _, p := range s.config.Players {
		if p.Agent == "" {
			return nil, fmt.Errorf("no agent for %s", p.Name)
		}
		if _, err := s.config.NewAgent(p.Agent, randutil.New(0), s.logger); err != nil {
			return nil, fmt.Errorf("agent for %s: %w", p.Name, err)
		}
	}
	if s.config.Hands <= 0 {
		return nil, fmt.Errorf("hands must be positive, got %d", s.config.Hands)
	}

	res := &Result{
		MatchID: gameid.NewMatchID(),
		Seed:    s.config.Seed,
		Start:   s.clock.Now(),
	}
	s.logger.Info("match starting",
		"match_id", res.MatchID,
		"hands", s.config.Hands,
		"sessions", s.config.Sessions,
		"seed", s.config.Seed,
		"players", fmt.Sprintf("%s (%s) vs %s (%s)",
			s.config.Players[0].Name, s.config.Players[0].Agent,
			s.config.Players[1].Name, s.config.Players[1].Agent))

	sessions := s.split()
	g, ctx := errgroup.WithContext(ctx)
	for _, sess := range sessions {
		g.Go(func() error {
			return s.runSession(ctx, sess)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for seat, p := range s.config.Players {
		res.Players[seat] = PlayerSummary{Name: p.Name, Agent: p.Agent, Stats: &statistics.Statistics{}}
	}
	for _, sess := range sessions {
		for seat := range res.Players {
			res.Players[seat].Stats.Merge(sess.stats[seat])
		}
		for _, h := range sess.kept {
			h.HandNumber = len(res.Hands) + 1
			res.Hands = append(res.Hands, h)
		}
		res.HandsTotal += sess.hands
		res.GuardTrips += sess.trips
	}

	for _, p := range res.Players {
		if err := p.Stats.Validate(); err != nil {
			return nil, fmt.Errorf("statistics for %s: %w", p.Name, err)
		}
	}

	res.End = s.clock.Now()
	s.logger.Info("match complete",
		"match_id", res.MatchID,
		"hands", res.HandsTotal,
		"duration", res.Duration(),
		"hands_per_second", fmt.Sprintf("%.0f", res.HandsPerSecond()))
	return res, nil
}

// split divides the hands as evenly as possible; early sessions take the
// remainder.
func (s *Simulator) split() []*session {
	n := min(s.config.Sessions, s.config.Hands)
	per, extra := s.config.Hands/n, s.config.Hands%n
	out := make([]*session, n)
	for i := range out {
		hands := per
		if i < extra {
			hands++
		}
		out[i] = &session{
			index: i,
			hands: hands,
			stats: [2]*statistics.Statistics{{}, {}},
		}
	}
	return out
}

func (s *Simulator) runSession(ctx context.Context, sess *session) error {
	seed := randutil.Derive(s.config.Seed, sess.index)
	rng := randutil.New(seed)
	logger := s.logger.With("session", sess.index)

	var agents [2]game.Agent
	var names [2]string
	for seat, p := range s.config.Players {
		a, err := s.config.NewAgent(p.Agent, randutil.New(randutil.Derive(seed, seat+1)), logger)
		if err != nil {
			return err
		}
		agents[seat] = a
		names[seat] = p.Name
	}

	table := game.NewTable(rng, game.TableConfig{
		Names:         names,
		StartingStack: s.config.StartingStack,
		SmallBlind:    s.config.SmallBlind,
		BigBlind:      s.config.BigBlind,
	}, agents, game.NewEngine(logger), game.WithClock(s.clock))

	for range sess.hands {
		if err := ctx.Err(); err != nil {
			return err
		}
		if table.Busted() {
			for _, seat := range table.Rebuy() {
				sess.stats[seat].Rebuys++
				logger.Debug("rebuy", "player", names[seat], "hand", table.HandsPlayed())
			}
		}

		hr, err := s.playHand(ctx, table)
		if err != nil {
			return fmt.Errorf("session %d: %w", sess.index, err)
		}
		if hr.GuardTripped {
			sess.trips++
		}
		for seat := range hr.Players {
			sess.stats[seat].Add(handStat(hr, seat))
		}
		if s.config.KeepHands {
			sess.kept = append(sess.kept, hr)
		}
	}

	logger.Debug("session complete", "hands", sess.hands, "stacks", table.Stacks())
	return nil
}

// playHand plays one hand, giving up after the configured timeout. Agents
// are synchronous and take no context, so a timed out hand's goroutine is
// abandoned: it keeps the table until the agent returns, or for the life of
// the process if it never does. The session ends with the error and never
// touches that table again.
func (s *Simulator) playHand(ctx context.Context, table *game.Table) (*game.HandResult, error) {
	if s.config.HandTimeout <= 0 {
		return table.PlayHand()
	}

	type outcome struct {
		res *game.HandResult
		err error
	}
	hand := table.HandsPlayed() + 1
	done := make(chan outcome, 1)
	go func() {
		res, err := table.PlayHand()
		done <- outcome{res, err}
	}()

	timer := s.clock.NewTimer(s.config.HandTimeout, "sim", "hand")
	defer timer.Stop()

	select {
	case o := <-done:
		return o.res, o.err
	case <-timer.C:
		return nil, fmt.Errorf("%w after %v (hand %d)", ErrHandTimeout, s.config.HandTimeout, hand)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// handStat converts a hand into one seat's statistics row.
func handStat(hr *game.HandResult, seat int) statistics.HandResult {
	p := hr.Players[seat]
	pos := statistics.BigBlind
	if hr.Button == seat {
		pos = statistics.Button
	}
	return statistics.HandResult{
		NetChips:       p.Net,
		BigBlind:       hr.BigBlind,
		Position:       pos,
		VPIP:           p.VPIP,
		WentToShowdown: hr.WentToShowdown(),
		Won:            p.Won > 0,
		Split:          hr.Winner() == -1,
		FinalPotSize:   hr.Pot,
		StreetReached:  hr.StreetReached.String(),
	}
}
