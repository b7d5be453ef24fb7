package domain

// RunRepository defines the interface for pass history persistence
type RunRepository interface {
	// Create stores a run together with its items
	Create(run *Run) error

	// FindByID finds a run by ID, including its items
	FindByID(id string) (*Run, error)

	// FindRecent returns the latest runs, newest first, without items
	FindRecent(limit int) ([]*Run, error)

	// Count returns the total number of runs
	Count() (int64, error)
}
