package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewOrganizeModel(t *testing.T) {
	model := NewOrganizeModel(4, false, "test")

	if len(model.workers) != 4 {
		t.Errorf("Expected 4 workers, got %d", len(model.workers))
	}
	for i, worker := range model.workers {
		if worker.Status != "idle" {
			t.Errorf("Worker %d should start idle, got %q", i, worker.Status)
		}
	}
	if model.totalFiles != 0 || model.processedFiles != 0 {
		t.Errorf("Expected zero counters, got %d/%d", model.processedFiles, model.totalFiles)
	}
}

func TestUpdateFileStarted(t *testing.T) {
	model := NewOrganizeModel(2, false, "test")

	updated, _ := model.Update(FileStartedMsg{WorkerID: 1, Name: "photo.jpg"})
	m := updated.(OrganizeModel)

	if m.workers[1].Status != "moving" {
		t.Errorf("Expected worker 1 to be moving, got %q", m.workers[1].Status)
	}
	if m.workers[1].CurrentFile != "photo.jpg" {
		t.Errorf("Expected worker 1 on photo.jpg, got %q", m.workers[1].CurrentFile)
	}
	if m.workers[0].Status != "idle" {
		t.Errorf("Worker 0 should stay idle, got %q", m.workers[0].Status)
	}
}

func TestUpdateFileFinished(t *testing.T) {
	model := NewOrganizeModel(2, false, "test")

	updated, _ := model.Update(FileFinishedMsg{
		WorkerID:  0,
		Name:      "photo.jpg",
		Category:  "Images",
		Completed: 1,
		Total:     5,
	})
	m := updated.(OrganizeModel)

	if m.totalFiles != 5 || m.processedFiles != 1 {
		t.Errorf("Expected progress 1/5, got %d/%d", m.processedFiles, m.totalFiles)
	}
	if len(m.entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(m.entries))
	}
	if m.entries[0].Symbol != "✓" || m.entries[0].Category != "Images" {
		t.Errorf("Unexpected entry: %+v", m.entries[0])
	}
}

func TestUpdateFileFinishedWithError(t *testing.T) {
	model := NewOrganizeModel(1, false, "test")

	updated, _ := model.Update(FileFinishedMsg{
		WorkerID:  0,
		Name:      "notes.txt",
		Category:  "Documents",
		Err:       errors.New("destination already exists"),
		Completed: 1,
		Total:     1,
	})
	m := updated.(OrganizeModel)

	if m.failedFiles != 1 {
		t.Errorf("Expected 1 failed file, got %d", m.failedFiles)
	}
	if m.entries[0].Symbol != "❌" || m.entries[0].Error == "" {
		t.Errorf("Expected error entry, got %+v", m.entries[0])
	}
}

func TestUpdateSimulatedFinish(t *testing.T) {
	model := NewOrganizeModel(1, true, "test")

	updated, _ := model.Update(FileFinishedMsg{
		WorkerID:  0,
		Name:      "photo.jpg",
		Category:  "Images",
		Simulated: true,
		Completed: 1,
		Total:     1,
	})
	m := updated.(OrganizeModel)

	if m.entries[0].Symbol != "👁" {
		t.Errorf("Expected dry-run symbol, got %q", m.entries[0].Symbol)
	}
}

func TestUpdateRunDoneQuits(t *testing.T) {
	model := NewOrganizeModel(1, false, "test")

	updated, cmd := model.Update(RunDoneMsg{})
	m := updated.(OrganizeModel)

	if !m.quitting {
		t.Error("Expected model to be quitting after RunDoneMsg")
	}
	if cmd == nil {
		t.Error("Expected a quit command, got nil")
	}
}

func TestUpdateQuitKey(t *testing.T) {
	model := NewOrganizeModel(1, false, "test")

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m := updated.(OrganizeModel)

	if !m.quitting {
		t.Error("Expected model to be quitting after q")
	}
	if cmd == nil {
		t.Error("Expected a quit command, got nil")
	}
}

func TestOutcomeEntryDescriptions(t *testing.T) {
	ok := OutcomeEntry{Name: "a.txt", Category: "Documents", Symbol: "✓"}
	if ok.Description() != "✓ → Documents" {
		t.Errorf("Unexpected description: %q", ok.Description())
	}

	bad := OutcomeEntry{Name: "b.txt", Error: "boom"}
	if bad.Description() != "❌ boom" {
		t.Errorf("Unexpected error description: %q", bad.Description())
	}

	if ok.FilterValue() != "a.txt" {
		t.Errorf("FilterValue should be the file name, got %q", ok.FilterValue())
	}
}
