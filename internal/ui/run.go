// Package ui provides the terminal task screen.
package ui

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoTTY is returned when the screen is started without a terminal.
var ErrNoTTY = errors.New("tui requires a TTY")

// RunOption configures how the program is started.
type RunOption func(*runConfig)

type runConfig struct {
	altScreen bool
	output    io.Writer
}

// WithAltScreen runs the program in the terminal's alternate screen.
func WithAltScreen(enabled bool) RunOption {
	return func(c *runConfig) {
		c.altScreen = enabled
	}
}

// WithOutput sets the terminal the program draws to. The default is stdout.
func WithOutput(w io.Writer) RunOption {
	return func(c *runConfig) {
		if w != nil {
			c.output = w
		}
	}
}

// Run starts the screen and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, model *Model, opts ...RunOption) error {
	c := &runConfig{
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if !IsTTY(c.output) {
		return ErrNoTTY
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(c.output)}
	if c.altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	_, err := tea.NewProgram(model, programOpts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
