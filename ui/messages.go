package ui

// Messages sent into the TUI by the organize workers.

// FileStartedMsg marks a worker picking up a file.
type FileStartedMsg struct {
	WorkerID int
	Name     string
}

// FileFinishedMsg carries the outcome of one file.
type FileFinishedMsg struct {
	WorkerID  int
	Name      string
	Category  string
	Simulated bool
	Err       error
	Completed int
	Total     int
}

// RunDoneMsg tells the model the run is over and it can quit.
type RunDoneMsg struct{}
