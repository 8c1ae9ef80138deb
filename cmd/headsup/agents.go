package main

import (
	"fmt"

	"github.com/lox/headsup/internal/bot"
)

// AgentsCmd lists the registry.
type AgentsCmd struct{}

func (AgentsCmd) Run(g *Globals) error {
	for _, name := range bot.Names() {
		if _, err := fmt.Fprintf(g.Stdout, "%s  %s\n", nameStyle.Render(fmt.Sprintf("%-7s", name)), bot.Describe(name)); err != nil {
			return err
		}
	}
	return nil
}
