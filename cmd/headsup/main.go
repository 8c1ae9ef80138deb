package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/headsup/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are shared by every command.
type Globals struct {
	LogLevel string `help:"Log level (debug, info, warn, error); overrides HEADSUP_LOG_LEVEL"`
	NoColor  bool   `help:"Disable colored output"`

	Stdout io.Writer `kong:"-"`
	Stderr io.Writer `kong:"-"`
}

// Logger builds the root logger from the environment and flags.
func (g *Globals) Logger() (*log.Logger, error) {
	cfg, err := config.LoadLog()
	if err != nil {
		return nil, fmt.Errorf("reading log environment: %w", err)
	}
	if g.LogLevel != "" {
		cfg.Level = g.LogLevel
	}
	logger, err := cfg.NewLogger(g.Stderr)
	if err != nil {
		return nil, err
	}
	if g.NoColor {
		logger.SetColorProfile(termenv.Ascii)
	}
	return logger, nil
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Simulate SimulateCmd      `cmd:"" help:"Play a match between two agents and report statistics"`
	Hand     HandCmd          `cmd:"" help:"Play a single hand and print its action log"`
	Agents   AgentsCmd        `cmd:"" help:"List the built-in agents"`
	Show     VersionCmd       `cmd:"version" help:"Print the version"`
}

func main() {
	cli := CLI{Globals: Globals{Stdout: os.Stdout, Stderr: os.Stderr}}
	ctx := kong.Parse(&cli,
		kong.Name("headsup"),
		kong.Description("Heads-up no-limit hold'em engine and agent simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// VersionCmd prints the build version.
type VersionCmd struct{}

func (VersionCmd) Run(g *Globals) error {
	_, err := fmt.Fprintf(g.Stdout, "headsup %s\n", version)
	return err
}
