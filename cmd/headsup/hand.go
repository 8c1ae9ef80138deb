package main

import (
	"fmt"
	"strings"

	"github.com/lox/headsup/internal/bot"
	"github.com/lox/headsup/internal/game"
	"github.com/lox/headsup/internal/randutil"
	"github.com/lox/headsup/internal/report"
)

// HandCmd plays one hand and prints what happened.
type HandCmd struct {
	Hero       string `default:"tag" help:"Agent in seat 1"`
	Villain    string `default:"fish" help:"Agent in seat 2"`
	Seed       int64  `default:"1" help:"Deck and agent seed"`
	Stack      int    `default:"1000" help:"Starting stack in chips"`
	SmallBlind int    `default:"5" help:"Small blind"`
	BigBlind   int    `default:"10" help:"Big blind"`
	Button     int    `default:"0" help:"Seat holding the button (0 or 1)"`
}

func (c *HandCmd) Run(g *Globals) error {
	logger, err := g.Logger()
	if err != nil {
		return err
	}
	if c.SmallBlind <= 0 || c.BigBlind < c.SmallBlind || c.Stack <= 0 {
		return fmt.Errorf("invalid table: stack %d, blinds %d/%d", c.Stack, c.SmallBlind, c.BigBlind)
	}
	if c.Button != 0 && c.Button != 1 {
		return fmt.Errorf("button must be seat 0 or 1, got %d", c.Button)
	}

	var agents [2]game.Agent
	for seat, name := range []string{c.Hero, c.Villain} {
		a, err := bot.New(name, randutil.New(randutil.Derive(c.Seed, seat+1)), logger)
		if err != nil {
			return err
		}
		agents[seat] = a
	}

	table := game.NewTable(randutil.New(c.Seed), game.TableConfig{
		Names:         [2]string{"hero", "villain"},
		StartingStack: c.Stack,
		SmallBlind:    c.SmallBlind,
		BigBlind:      c.BigBlind,
	}, agents, game.NewEngine(logger), game.WithButton(c.Button))

	hr, err := table.PlayHand()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(g.Stdout, renderHand(hr))
	return err
}

func renderHand(hr *game.HandResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", headerStyle.Render("Hand"), dimStyle.Render(hr.HandID))
	for _, line := range hr.Log {
		style := dimStyle
		switch {
		case strings.Contains(line, " wins "):
			style = winStyle
		case strings.HasPrefix(line, "FLOP") || strings.HasPrefix(line, "TURN") || strings.HasPrefix(line, "RIVER"):
			style = labelStyle
		case !strings.Contains(line, "posts") && !strings.HasPrefix(line, "Dealt"):
			style = nameStyle.UnsetBold()
		}
		b.WriteString(style.Render(line) + "\n")
	}
	fmt.Fprintf(&b, "%s %s (%s) - %s\n",
		labelStyle.Render("Result:"), report.WinnerName(hr), game.FormatChips(report.AmountWon(hr)), hr.Description)
	return b.String()
}
