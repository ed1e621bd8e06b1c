package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/schollz/progressbar/v3"

	"github.com/lepinkainen/tidydir/logging"
	"github.com/lepinkainen/tidydir/organizer"
	"github.com/lepinkainen/tidydir/ui"
)

// Version is stamped in by main.
var Version = "dev"

type OrganizeCmd struct {
	Directory string `arg:"" name:"directory" help:"Directory whose files should be organized" type:"path"`
	DryRun    bool   `help:"Simulate the run without creating folders or moving files"`
	Workers   int    `help:"Number of parallel workers" default:"4"`
	TUI       bool   `help:"Show the interactive dashboard while organizing"`
}

func (cmd *OrganizeCmd) Run(logger *slog.Logger) error {
	workers := clampWorkers(cmd.Workers)

	logger.Info("starting organizer", "dir", cmd.Directory, "dry_run", cmd.DryRun, "workers", workers)

	var summary organizer.Summary
	var err error
	if cmd.TUI && workers > 1 {
		summary, err = cmd.runWithTUI(workers)
	} else {
		summary, err = cmd.runPlain(logger, workers)
	}
	if err != nil {
		return err
	}

	cmd.printSummary(summary)
	logger.Info("organizer completed", "dir", cmd.Directory)

	// Best-effort semantics: all files were attempted, but partial
	// failure still has to surface in the exit code.
	if failed := summary.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, summary.Total())
	}
	return nil
}

// runPlain drives the run with styled line output and an overall
// progress bar on stdout. Log records keep going to the logger.
func (cmd *OrganizeCmd) runPlain(logger *slog.Logger, workers int) (organizer.Summary, error) {
	title := fmt.Sprintf("tidydir %s", Version)
	if cmd.DryRun {
		title += " (dry run)"
	}
	fmt.Println(ui.HeaderStyle.Render(title))

	// The file total is only known once the scan ran, so the bar is
	// created on the first event. The observer runs on every worker
	// goroutine, so both the lazy init and the advance stay behind
	// one mutex.
	var barMu sync.Mutex
	var bar *progressbar.ProgressBar
	observer := func(event organizer.Event) {
		if event.Type != organizer.EventFileFinished {
			return
		}
		barMu.Lock()
		defer barMu.Unlock()
		if bar == nil {
			bar = progressbar.NewOptions(event.Total,
				progressbar.OptionSetDescription("organizing"),
				progressbar.OptionSetWriter(os.Stdout),
				progressbar.OptionShowCount(),
			)
		}
		_ = bar.Add(1)
	}

	org := organizer.New(organizer.Options{
		Logger:   logger,
		DryRun:   cmd.DryRun,
		Workers:  workers,
		Observer: observer,
	})
	summary, err := org.Organize(cmd.Directory)
	if bar != nil {
		_ = bar.Finish()
		fmt.Println()
	}
	return summary, err
}

// runWithTUI drives the run behind a bubbletea dashboard. Worker events
// are forwarded into the program; log records are dropped because line
// output would tear the TUI.
func (cmd *OrganizeCmd) runWithTUI(workers int, opts ...tea.ProgramOption) (organizer.Summary, error) {
	model := ui.NewOrganizeModel(workers, cmd.DryRun, Version)
	program := tea.NewProgram(model, opts...)

	// Quitting the dashboard does not cancel the run: dispatched moves
	// proceed to completion, so the results are only read once the
	// organizing goroutine has finished.
	var summary organizer.Summary
	var runErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		org := organizer.New(organizer.Options{
			Logger:  logging.Discard(),
			DryRun:  cmd.DryRun,
			Workers: workers,
			Observer: func(event organizer.Event) {
				program.Send(eventToMsg(event))
			},
		})
		summary, runErr = org.Organize(cmd.Directory)
		program.Send(ui.RunDoneMsg{})
	}()

	_, err := program.Run()
	<-done
	if err != nil {
		return organizer.Summary{}, fmt.Errorf("run dashboard: %w", err)
	}
	return summary, runErr
}

func eventToMsg(event organizer.Event) tea.Msg {
	switch event.Type {
	case organizer.EventFileStarted:
		return ui.FileStartedMsg{
			WorkerID: event.WorkerID,
			Name:     event.File.Name,
		}
	default:
		return ui.FileFinishedMsg{
			WorkerID:  event.WorkerID,
			Name:      event.File.Name,
			Category:  event.Outcome.Category,
			Simulated: event.Outcome.Status == organizer.StatusWouldMove,
			Err:       event.Outcome.Err,
			Completed: event.Completed,
			Total:     event.Total,
		}
	}
}

func (cmd *OrganizeCmd) printSummary(summary organizer.Summary) {
	if summary.Total() == 0 {
		fmt.Println(ui.InfoStyle.Render("Nothing to organize."))
		return
	}

	if cmd.DryRun {
		fmt.Println(ui.DryRunStyle.Render(fmt.Sprintf("👁 Dry run: %d files would be moved.", summary.WouldMove())))
	} else {
		fmt.Println(ui.SuccessStyle.Render(fmt.Sprintf("✅ Moved %d of %d files.", summary.Moved(), summary.Total())))
	}

	for _, outcome := range summary.Outcomes {
		if outcome.Status == organizer.StatusFailed {
			fmt.Println(ui.ErrorStyle.Render(fmt.Sprintf("❌ %s: %v", outcome.File.Name, outcome.Err)))
		}
	}
}

// clampWorkers fixes up nonsense worker counts instead of erroring:
// anything below 1 becomes the sequential mode.
func clampWorkers(workers int) int {
	if workers < 1 {
		return 1
	}
	return workers
}
