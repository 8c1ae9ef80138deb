// Package config loads match settings from an HCL file and logging settings
// from the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/headsup/internal/bot"
)

// Config is a complete match description.
type Config struct {
	Match   *MatchSettings `hcl:"match,block"`
	Players []PlayerConfig `hcl:"player,block"`
	Output  *OutputConfig  `hcl:"output,block"`
}

// MatchSettings controls the table and the length of the match.
type MatchSettings struct {
	Hands         int   `hcl:"hands,optional"`
	Seed          int64 `hcl:"seed,optional"`
	StartingStack int   `hcl:"starting_stack,optional"`
	SmallBlind    int   `hcl:"small_blind,optional"`
	BigBlind      int   `hcl:"big_blind,optional"`
	Sessions      int   `hcl:"sessions,optional"`
}

// PlayerConfig seats a named agent.
type PlayerConfig struct {
	Name  string `hcl:"name,label"`
	Agent string `hcl:"agent"`
}

// OutputConfig names the export files. Empty paths are skipped.
type OutputConfig struct {
	CSV       string `hcl:"csv,optional"`
	Histories string `hcl:"histories,optional"`
	PHH       string `hcl:"phh,optional"`
}

// Default returns a 1000 hand tag vs fish match at 5/10 with 100bb stacks.
func Default() *Config {
	return &Config{
		Match: &MatchSettings{
			Hands:         1000,
			Seed:          42,
			StartingStack: 1000,
			SmallBlind:    5,
			BigBlind:      10,
			Sessions:      1,
		},
		Players: []PlayerConfig{
			{Name: "TAG Bot", Agent: "tag"},
			{Name: "Fish", Agent: "fish"},
		},
		Output: &OutputConfig{},
	}
}

// Load reads a match file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Match == nil {
		c.Match = def.Match
	}
	m := c.Match
	if m.Hands == 0 {
		m.Hands = def.Match.Hands
	}
	if m.StartingStack == 0 {
		m.StartingStack = def.Match.StartingStack
	}
	if m.SmallBlind == 0 && m.BigBlind == 0 {
		m.SmallBlind, m.BigBlind = def.Match.SmallBlind, def.Match.BigBlind
	}
	if m.Sessions == 0 {
		m.Sessions = 1
	}
	if len(c.Players) == 0 {
		c.Players = def.Players
	}
	if c.Output == nil {
		c.Output = &OutputConfig{}
	}
}

// Validate checks the configuration can be played.
func (c *Config) Validate() error {
	if c.Match == nil {
		return errors.New("match settings are required")
	}
	m := c.Match
	if m.Hands <= 0 {
		return fmt.Errorf("hands must be positive: %d", m.Hands)
	}
	if m.Sessions < 1 {
		return fmt.Errorf("sessions must be at least 1: %d", m.Sessions)
	}
	if m.StartingStack <= 0 {
		return fmt.Errorf("starting stack must be positive: %d", m.StartingStack)
	}
	if m.SmallBlind <= 0 {
		return errors.New("small blind must be positive")
	}
	if m.BigBlind < m.SmallBlind {
		return fmt.Errorf("big blind %d is below small blind %d", m.BigBlind, m.SmallBlind)
	}

	if len(c.Players) != 2 {
		return fmt.Errorf("exactly two players are required, got %d", len(c.Players))
	}
	if c.Players[0].Name == c.Players[1].Name {
		return fmt.Errorf("player names must differ: %q", c.Players[0].Name)
	}
	for _, p := range c.Players {
		if p.Name == "" {
			return errors.New("player name is required")
		}
		if !bot.Known(p.Agent) {
			return fmt.Errorf("player %s: unknown agent %q", p.Name, p.Agent)
		}
	}
	return nil
}
