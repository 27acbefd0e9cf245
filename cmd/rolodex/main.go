package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/command"
	"github.com/smileynet/rolodex/internal/config"
	"github.com/smileynet/rolodex/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for rolodex.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Chat    ChatCmd          `cmd:"" default:"1" help:"Start the interactive assistant."`
}

// ChatCmd starts the interactive read-eval loop.
type ChatCmd struct {
	Plain bool `help:"Force plain line output even if stdout is a TTY." default:"false"`
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/rolodex/config.yaml"),
		".rolodex.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Run executes the chat command.
func (c *ChatCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("chat: %w", err)
	}

	// CLI flag overrides config.
	if c.Plain {
		cfg.UI.Plain = true
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("chat: %w", err)
	}

	dispatcher := command.New(book.New(), command.WithFarewell(cfg.UI.Farewell))
	session := tui.NewSession(tui.SessionOptions{
		Input:      os.Stdin,
		Output:     os.Stdout,
		ForcePlain: cfg.UI.Plain,
		Prompt:     cfg.UI.Prompt,
		Greeting:   cfg.UI.Greeting,
		Dispatcher: dispatcher,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return c.run(ctx, session)
}

// run executes the session, enabling testable wiring.
func (c *ChatCmd) run(ctx context.Context, session tui.Session) error {
	return session.Run(ctx)
}

// Exit codes.
const (
	exitSuccess   = 0
	exitInterrupt = 1
	exitSetup     = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, context.Canceled):
		return exitInterrupt
	default:
		return exitSetup
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Description("In-memory contact assistant."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
