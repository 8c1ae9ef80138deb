package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/headsup/internal/config"
	"github.com/lox/headsup/internal/phh"
	"github.com/lox/headsup/internal/report"
	"github.com/lox/headsup/internal/simulator"
	"github.com/lox/headsup/internal/statistics"
)

// SimulateCmd plays a match. Flags override the match file.
type SimulateCmd struct {
	Config string `short:"c" default:"headsup.hcl" help:"Match file (HCL); a missing file means defaults"`

	Hands      *int          `short:"n" help:"Number of hands"`
	Seed       *int64        `help:"Match seed"`
	Sessions   *int          `help:"Independent sessions to run concurrently"`
	Stack      *int          `help:"Starting stack in chips"`
	SmallBlind *int          `help:"Small blind"`
	BigBlind   *int          `help:"Big blind"`
	Hero       string        `help:"Agent for the first player"`
	Villain    string        `help:"Agent for the second player"`
	Timeout    time.Duration `default:"5s" help:"Abort if a single hand takes longer (0 disables)"`

	CSV       string `help:"Write per-hand results as CSV"`
	Histories string `help:"Write text hand histories"`
	PHH       string `name:"phh" help:"Write PHH hand histories"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := c.load()
	if err != nil {
		return err
	}
	logger, err := g.Logger()
	if err != nil {
		return err
	}

	out := cfg.Output
	sim := simulator.New(simulator.Config{
		Hands:         cfg.Match.Hands,
		Sessions:      cfg.Match.Sessions,
		Seed:          cfg.Match.Seed,
		StartingStack: cfg.Match.StartingStack,
		SmallBlind:    cfg.Match.SmallBlind,
		BigBlind:      cfg.Match.BigBlind,
		Players: [2]simulator.PlayerConfig{
			{Name: cfg.Players[0].Name, Agent: cfg.Players[0].Agent},
			{Name: cfg.Players[1].Name, Agent: cfg.Players[1].Agent},
		},
		KeepHands:   out.CSV != "" || out.Histories != "" || out.PHH != "",
		HandTimeout: c.Timeout,
		Logger:      logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	if out.CSV != "" {
		if err := report.SaveCSV(out.CSV, res.Hands); err != nil {
			return fmt.Errorf("writing csv: %w", err)
		}
		logger.Info("results saved", "path", out.CSV)
	}
	if out.Histories != "" {
		if err := report.SaveHistories(out.Histories, res.Hands); err != nil {
			return fmt.Errorf("writing hand histories: %w", err)
		}
		logger.Info("hand histories saved", "path", out.Histories)
	}
	if out.PHH != "" {
		if err := phh.Save(out.PHH, phhHands(res)); err != nil {
			return fmt.Errorf("writing phh: %w", err)
		}
		logger.Info("phh saved", "path", out.PHH)
	}

	_, err = fmt.Fprintln(g.Stdout, renderSummary(res))
	return err
}

func (c *SimulateCmd) load() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	m := cfg.Match
	setIf(&m.Hands, c.Hands)
	setIf(&m.Seed, c.Seed)
	setIf(&m.Sessions, c.Sessions)
	setIf(&m.StartingStack, c.Stack)
	setIf(&m.SmallBlind, c.SmallBlind)
	setIf(&m.BigBlind, c.BigBlind)
	if c.Hero != "" && len(cfg.Players) > 0 {
		cfg.Players[0].Agent = c.Hero
	}
	if c.Villain != "" && len(cfg.Players) > 1 {
		cfg.Players[1].Agent = c.Villain
	}
	if c.CSV != "" {
		cfg.Output.CSV = c.CSV
	}
	if c.Histories != "" {
		cfg.Output.Histories = c.Histories
	}
	if c.PHH != "" {
		cfg.Output.PHH = c.PHH
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func phhHands(res *simulator.Result) []*phh.HandHistory {
	opts := phh.Options{
		Event: res.MatchID,
		Table: res.Players[0].Name + " vs " + res.Players[1].Name,
		Seed:  res.Seed,
		Time:  res.Start,
	}
	out := make([]*phh.HandHistory, len(res.Hands))
	for i, hr := range res.Hands {
		out[i] = phh.FromHand(hr, opts)
	}
	return out
}

func renderSummary(res *simulator.Result) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("SIMULATION RESULTS") + "\n")
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Match:"), res.MatchID)
	fmt.Fprintf(&b, "%s %d   %s %d   %s %s (%.0f hands/s)\n",
		labelStyle.Render("Hands:"), res.HandsTotal,
		labelStyle.Render("Seed:"), res.Seed,
		labelStyle.Render("Duration:"), res.Duration().Round(time.Millisecond), res.HandsPerSecond())
	if res.GuardTrips > 0 {
		fmt.Fprintf(&b, "%s %d hands hit the action bound\n", lossStyle.Render("Warning:"), res.GuardTrips)
	}

	boxes := make([]string, len(res.Players))
	for i, p := range res.Players {
		boxes[i] = boxStyle.Render(renderPlayer(p))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	return b.String()
}

func renderPlayer(p simulator.PlayerSummary) string {
	s := p.Stats
	low, high := s.ConfidenceInterval95()

	rows := [][2]string{
		{"Hands dealt", fmt.Sprintf("%d", s.Hands)},
		{"Won / lost", fmt.Sprintf("%d / %d", s.HandsWon, s.HandsLost)},
		{"Profit", signed(float64(s.Profit), fmt.Sprintf("%+d", s.Profit))},
		{"Per hand", signed(s.AverageProfit(), fmt.Sprintf("%+.2f", s.AverageProfit()))},
		{"bb/100", signed(s.BBPer100(), fmt.Sprintf("%+.2f", s.BBPer100()))},
		{"Std dev", fmt.Sprintf("%.2f bb", s.StdDev())},
		{"95% CI", fmt.Sprintf("[%.3f, %.3f] bb/hand", low, high)},
		{"VPIP", fmt.Sprintf("%.1f%%", 100*s.VPIP())},
		{"Showdowns", fmt.Sprintf("%d won of %d (%.1f%%)", s.ShowdownWins, s.Showdowns, 100*s.ShowdownWinRate())},
		{"Button", fmt.Sprintf("%+.3f bb/hand", s.PositionMean(statistics.Button))},
		{"Big blind", fmt.Sprintf("%+.3f bb/hand", s.PositionMean(statistics.BigBlind))},
		{"Rebuys", fmt.Sprintf("%d", s.Rebuys)},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", nameStyle.Render(p.Name), dimStyle.Render("("+p.Agent+")"))
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-12s", r[0])), r[1])
	}
	return strings.TrimSuffix(b.String(), "\n")
}
