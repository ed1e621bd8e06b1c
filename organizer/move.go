package organizer

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Mover relocates files into their category folders. It is safe for use
// by multiple goroutines: folder creation is serialized and idempotent,
// so concurrent tasks targeting the same new category cannot race.
type Mover struct {
	logger *slog.Logger
	dryRun bool

	mu      sync.Mutex
	ensured map[string]bool
}

// NewMover returns a Mover that logs through the given logger. In dry-run
// mode it reports every planned action without touching the filesystem.
func NewMover(logger *slog.Logger, dryRun bool) *Mover {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Mover{
		logger:  logger,
		dryRun:  dryRun,
		ensured: make(map[string]bool),
	}
}

// Move relocates the task's file into targetDir/category. A file already
// present under the destination name fails the move for this file only;
// nothing is overwritten or renamed around the collision.
func (m *Mover) Move(task MoveTask) Outcome {
	outcome := Outcome{File: task.File, Category: task.Category}

	folder := filepath.Join(task.TargetDir, task.Category)
	if err := m.ensureFolder(folder); err != nil {
		outcome.Status = StatusFailed
		outcome.Err = err
		m.logger.Error("cannot prepare category folder", "file", task.File.Name, "folder", folder, "error", err)
		return outcome
	}

	if m.dryRun {
		m.logger.Info("would move file", "file", task.File.Name, "category", task.Category)
		outcome.Status = StatusWouldMove
		return outcome
	}

	destination := filepath.Join(folder, task.File.Name)
	if _, err := os.Lstat(destination); err == nil {
		outcome.Status = StatusFailed
		outcome.Err = fmt.Errorf("destination already exists: %s", destination)
		m.logger.Error("cannot move file", "file", task.File.Name, "error", outcome.Err)
		return outcome
	}

	if err := os.Rename(task.File.Path, destination); err != nil {
		outcome.Status = StatusFailed
		outcome.Err = fmt.Errorf("move file: %w", err)
		m.logger.Error("cannot move file", "file", task.File.Name, "error", err)
		return outcome
	}

	m.logger.Info("moved file", "file", task.File.Name, "category", task.Category)
	outcome.Status = StatusMoved
	return outcome
}

// ensureFolder creates the category folder if it is missing. An existing
// folder is success, never an error. In dry-run mode the creation is
// reported but skipped. Each folder is logged at most once per run.
func (m *Mover) ensureFolder(folder string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ensured[folder] {
		return nil
	}

	if _, err := os.Stat(folder); err == nil {
		m.ensured[folder] = true
		return nil
	}

	if m.dryRun {
		m.logger.Info("would create folder", "folder", folder)
		m.ensured[folder] = true
		return nil
	}

	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("create folder: %w", err)
	}
	m.logger.Info("created folder", "folder", folder)
	m.ensured[folder] = true
	return nil
}
