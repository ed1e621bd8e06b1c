package organizer

// FileEntry is a regular file discovered directly under the target directory.
// Entries are read once at scan time and are not re-validated before the move.
type FileEntry struct {
	Name string
	Path string
}

// MoveTask pairs a discovered file with its computed category and the
// directory the category folder lives under.
type MoveTask struct {
	File      FileEntry
	Category  string
	TargetDir string
}

// Status describes how a single move task ended.
type Status string

const (
	// StatusMoved means the file was relocated into its category folder.
	StatusMoved Status = "moved"
	// StatusWouldMove is reported in dry-run mode instead of touching the file.
	StatusWouldMove Status = "would-move"
	// StatusFailed means the move was attempted and did not complete.
	StatusFailed Status = "failed"
)

// Outcome is the per-file result of one move task.
type Outcome struct {
	File     FileEntry
	Category string
	Status   Status
	Err      error
}

// Summary aggregates the outcomes of a single run.
type Summary struct {
	Outcomes []Outcome
}

// Total returns the number of files the run attempted to organize.
func (s Summary) Total() int {
	return len(s.Outcomes)
}

// Moved returns how many files were actually relocated.
func (s Summary) Moved() int {
	return s.count(StatusMoved)
}

// WouldMove returns how many moves were simulated in dry-run mode.
func (s Summary) WouldMove() int {
	return s.count(StatusWouldMove)
}

// Failed returns how many individual moves failed.
func (s Summary) Failed() int {
	return s.count(StatusFailed)
}

func (s Summary) count(status Status) int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}
