package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"addressbook/internal/domain"
	"addressbook/internal/events"
	"addressbook/internal/logging"
)

// Options configures Run.
type Options struct {
	Logic   domain.LogicService
	Storage domain.StorageService
	Model   domain.Model
	Bus     *events.Bus
	Log     *slog.Logger
	// Watch reloads the data when another process changes it.
	Watch bool

	// Input and Output default to the terminal.
	Input  io.Reader
	Output io.Writer
}

// Run shows the shell until the user exits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	log := logging.OrDiscard(opts.Log)
	m := New(opts.Logic, opts.Storage, opts.Model, log)
	opts.Bus.Subscribe(m.Handle)

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil || opts.Output != nil {
		if opts.Input != nil {
			progOpts = append(progOpts, tea.WithInput(opts.Input))
		}
		if opts.Output != nil {
			progOpts = append(progOpts, tea.WithOutput(opts.Output))
		}
	} else {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, progOpts...)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if opts.Watch {
		w, err := NewWatcher(opts.Storage.Location(), log)
		if err != nil {
			log.Warn("data location is not watched", "err", err)
		} else {
			defer w.Close()
			go w.Run(ctx, func() { p.Send(dataChangedMsg{}) })
		}
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
