// Package ui provides a terminal progress indicator for long-running
// commands. It mirrors the teacher's TTY-aware renderer split (a
// bubbletea spinner for interactive terminals, a static line for pipes
// and CI) scaled down to this CLI's single blocking build step rather
// than the teacher's multi-stage indexing pipeline.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// spinnerColor matches the teacher's lime accent.
const spinnerColor = "154"

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type doneMsg struct{ err error }

type spinnerModel struct {
	spin  spinner.Model
	label string
	done  bool
}

func newSpinnerModel(label string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(spinnerColor))
	return spinnerModel{spin: s, label: label}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s\n", m.spin.View(), m.label)
}

// RunWithSpinner runs fn, showing an indeterminate spinner on out for
// its duration when out is an interactive terminal. On non-TTY output
// (piped stdout, CI) it prints a single static line instead and skips
// the bubbletea program entirely.
func RunWithSpinner(ctx context.Context, out io.Writer, label string, fn func(context.Context) error) error {
	if !IsTTY(out) {
		fmt.Fprintf(out, "%s...\n", label)
		return fn(ctx)
	}

	f := out.(*os.File)
	p := tea.NewProgram(newSpinnerModel(label), tea.WithOutput(f))

	errCh := make(chan error, 1)
	go func() {
		err := fn(ctx)
		errCh <- err
		p.Send(doneMsg{err: err})
	}()

	if _, err := p.Run(); err != nil {
		return err
	}
	return <-errCh
}
