package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// OutcomeEntry is one row in the processed-files list.
type OutcomeEntry struct {
	Name     string
	Category string
	Symbol   string // "✓", "❌", "👁"
	Error    string
}

func (e OutcomeEntry) FilterValue() string { return e.Name }
func (e OutcomeEntry) Title() string       { return e.Name }
func (e OutcomeEntry) Description() string {
	if e.Error != "" {
		return fmt.Sprintf("❌ %s", e.Error)
	}
	return fmt.Sprintf("%s → %s", e.Symbol, e.Category)
}

// WorkerState tracks what one worker is currently doing.
type WorkerState struct {
	ID          int
	CurrentFile string
	Status      string // "idle", "moving", "done"
}

// OrganizeModel is the dashboard shown while a concurrent run is moving
// files: overall progress, per-worker activity and a log of outcomes.
type OrganizeModel struct {
	totalFiles     int
	processedFiles int
	failedFiles    int
	dryRun         bool
	workers        []*WorkerState
	entries        []OutcomeEntry

	overallProgress progress.Model
	outcomeList     list.Model

	width  int
	height int

	quitting bool

	Version string
}

// NewOrganizeModel creates the model for a run with the given worker count.
// The file total is learned from the first finish message, since the scan
// happens after the program starts.
func NewOrganizeModel(numWorkers int, dryRun bool, version string) OrganizeModel {
	workers := make([]*WorkerState, numWorkers)
	for i := range workers {
		workers[i] = &WorkerState{ID: i, Status: "idle"}
	}

	outcomeList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	outcomeList.Title = "Organized Files"

	return OrganizeModel{
		dryRun:          dryRun,
		workers:         workers,
		overallProgress: progress.New(progress.WithDefaultGradient()),
		outcomeList:     outcomeList,
		Version:         version,
	}
}

// Init implements tea.Model.
func (m OrganizeModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m OrganizeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.outcomeList.SetSize(msg.Width-4, msg.Height/3)

	case FileStartedMsg:
		if msg.WorkerID >= 0 && msg.WorkerID < len(m.workers) {
			m.workers[msg.WorkerID].CurrentFile = msg.Name
			m.workers[msg.WorkerID].Status = "moving"
		}

	case FileFinishedMsg:
		if msg.WorkerID >= 0 && msg.WorkerID < len(m.workers) {
			m.workers[msg.WorkerID].CurrentFile = ""
			m.workers[msg.WorkerID].Status = "done"
		}

		m.totalFiles = msg.Total
		m.processedFiles = msg.Completed

		entry := OutcomeEntry{
			Name:     msg.Name,
			Category: msg.Category,
			Symbol:   "✓",
		}
		if msg.Simulated {
			entry.Symbol = "👁"
		}
		if msg.Err != nil {
			entry.Symbol = "❌"
			entry.Error = msg.Err.Error()
			m.failedFiles++
		}

		m.entries = append(m.entries, entry)
		items := make([]list.Item, len(m.entries))
		for i, e := range m.entries {
			items[i] = e
		}
		m.outcomeList.SetItems(items)

	case RunDoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m OrganizeModel) View() string {
	if m.quitting {
		return "Finishing up...\n"
	}

	title := fmt.Sprintf("tidydir %s", m.Version)
	if m.dryRun {
		title += " (dry run)"
	}
	header := HeaderStyle.Render(title)

	overallPercent := 0.0
	if m.totalFiles > 0 {
		overallPercent = float64(m.processedFiles) / float64(m.totalFiles)
	}
	overallView := fmt.Sprintf("Overall Progress: %s (%d/%d)",
		m.overallProgress.ViewAs(overallPercent),
		m.processedFiles,
		m.totalFiles)
	if m.failedFiles > 0 {
		overallView += ErrorStyle.Render(fmt.Sprintf("  %d failed", m.failedFiles))
	}

	workerViews := []string{"Worker Status:"}
	for _, worker := range m.workers {
		row := fmt.Sprintf("Worker %d: %-8s %s", worker.ID+1, worker.Status, worker.CurrentFile)
		workerViews = append(workerViews, row)
	}

	sections := []string{
		header,
		overallView,
		strings.Join(workerViews, "\n"),
		m.outcomeList.View(),
		"Controls: [q] Quit",
	}

	return strings.Join(sections, "\n\n")
}
