// Package tui implements the interactive session front-ends: a Bubble Tea
// UI when stdout is a TTY, and a plain blocking line loop everywhere else.
package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/rolodex/internal/command"
)

// Session runs the read-eval loop until the user exits or input ends.
type Session interface {
	Run(ctx context.Context) error
}

// SessionOptions configures session creation.
type SessionOptions struct {
	Input      io.Reader           // Command source (default: os.Stdin).
	Output     io.Writer           // Reply destination (default: os.Stdout).
	ForcePlain bool                // Force the plain line loop even on a TTY.
	Prompt     string              // Prompt shown before each command.
	Greeting   string              // Banner printed once at session start.
	Dispatcher *command.Dispatcher // Executes each parsed line.
}

// NewSession returns a Bubble Tea session when output is a TTY, or a plain
// line-loop session otherwise. ForcePlain overrides TTY detection.
func NewSession(opts SessionOptions) Session {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	if opts.ForcePlain || !isTTY(opts.Output) {
		return &PlainSession{
			in:         opts.Input,
			out:        opts.Output,
			prompt:     opts.Prompt,
			greeting:   opts.Greeting,
			dispatcher: opts.Dispatcher,
		}
	}

	return &teaSession{opts: opts}
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainSession is the synchronous blocking read loop: one line in, one
// reply out, until exit/close or end of input.
type PlainSession struct {
	in         io.Reader
	out        io.Writer
	prompt     string
	greeting   string
	dispatcher *command.Dispatcher
}

// Run reads commands line by line and prints each reply.
// Returns nil on exit/close or end of input. The context is checked
// between lines; a read in progress cannot be interrupted.
func (s *PlainSession) Run(ctx context.Context) error {
	if s.greeting != "" {
		_, _ = fmt.Fprintln(s.out, s.greeting)
	}

	scanner := bufio.NewScanner(s.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, _ = fmt.Fprint(s.out, s.prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("tui: reading input: %w", err)
			}
			// EOF ends the session like close would, without the farewell.
			_, _ = fmt.Fprintln(s.out)
			return nil
		}

		reply := s.dispatcher.Dispatch(scanner.Text())
		if reply.Text != "" {
			_, _ = fmt.Fprintln(s.out, reply.Text)
		}
		if reply.Quit {
			return nil
		}
	}
}

// teaSession runs the Bubble Tea front-end. Falls back to the plain loop
// if the program fails to start.
type teaSession struct {
	opts SessionOptions
}

func (s *teaSession) Run(ctx context.Context) error {
	model := NewModel(ModelOptions{
		Prompt:     s.opts.Prompt,
		Greeting:   s.opts.Greeting,
		Dispatcher: s.opts.Dispatcher,
	})

	p := tea.NewProgram(model, tea.WithOutput(s.opts.Output), tea.WithInput(s.opts.Input), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		plain := &PlainSession{
			in:         s.opts.Input,
			out:        s.opts.Output,
			prompt:     s.opts.Prompt,
			greeting:   s.opts.Greeting,
			dispatcher: s.opts.Dispatcher,
		}
		return plain.Run(ctx)
	}
	return nil
}
