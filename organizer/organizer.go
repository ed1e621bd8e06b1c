// Package organizer moves the files of a single directory into
// subfolders named after categories derived from file extensions.
package organizer

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
)

// EventType identifies a task lifecycle notification.
type EventType int

const (
	// EventFileStarted fires when a worker picks up a file.
	EventFileStarted EventType = iota
	// EventFileFinished fires when a worker has an outcome for a file.
	EventFileFinished
)

// Event reports per-task progress to an optional observer, typically the
// terminal UI. Completed and Total are only meaningful on finish events.
type Event struct {
	Type      EventType
	WorkerID  int
	File      FileEntry
	Outcome   Outcome
	Completed int
	Total     int
}

// Options configures an Organizer.
type Options struct {
	// Table maps extensions to categories. Defaults to DefaultTable.
	Table Table
	// Logger receives timestamped per-file and folder records.
	Logger *slog.Logger
	// DryRun simulates the run without mutating the filesystem.
	DryRun bool
	// Workers is the size of the worker pool. Values below 1 run
	// sequentially. Worker count never changes the final filesystem
	// state, only the order work happens in.
	Workers int
	// Observer, when set, is called for every task lifecycle event.
	// It may be called from multiple goroutines concurrently.
	Observer func(Event)
}

// Organizer coordinates scan, categorize and move for one directory.
type Organizer struct {
	table    Table
	logger   *slog.Logger
	dryRun   bool
	workers  int
	observer func(Event)
}

// New builds an Organizer, filling in defaults for unset options.
func New(opts Options) *Organizer {
	table := opts.Table
	if table == nil {
		table = DefaultTable
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	return &Organizer{
		table:    table,
		logger:   logger,
		dryRun:   opts.DryRun,
		workers:  workers,
		observer: opts.Observer,
	}
}

// Organize scans targetDir and moves every discovered file into its
// category folder. A missing or non-directory target is the only fatal
// error; individual move failures are recorded in the summary and never
// stop the remaining files from being processed.
func (o *Organizer) Organize(targetDir string) (Summary, error) {
	files, err := Scan(targetDir)
	if err != nil {
		return Summary{}, err
	}

	if len(files) == 0 {
		o.logger.Info("no files found, nothing to organize", "dir", targetDir)
		return Summary{}, nil
	}

	tasks := make([]MoveTask, len(files))
	for i, file := range files {
		tasks[i] = MoveTask{
			File:      file,
			Category:  o.table.Categorize(file.Name),
			TargetDir: targetDir,
		}
	}

	mover := NewMover(o.logger, o.dryRun)
	outcomes := make([]Outcome, len(tasks))

	workers := o.workers
	if workers > len(tasks) {
		workers = len(tasks)
	}

	jobs := make(chan int, len(tasks))
	var completed atomic.Int64
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for i := range jobs {
				task := tasks[i]
				o.notify(Event{
					Type:     EventFileStarted,
					WorkerID: workerID,
					File:     task.File,
					Total:    len(tasks),
				})

				// Each task owns exactly one outcome slot, so
				// workers never write to shared state here.
				outcomes[i] = mover.Move(task)

				o.notify(Event{
					Type:      EventFileFinished,
					WorkerID:  workerID,
					File:      task.File,
					Outcome:   outcomes[i],
					Completed: int(completed.Add(1)),
					Total:     len(tasks),
				})
			}
		}(w)
	}

	for i := range tasks {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	summary := Summary{Outcomes: outcomes}
	o.logger.Info("run finished",
		"dir", targetDir,
		"moved", summary.Moved(),
		"simulated", summary.WouldMove(),
		"failed", summary.Failed(),
	)
	return summary, nil
}

func (o *Organizer) notify(event Event) {
	if o.observer != nil {
		o.observer(event)
	}
}
