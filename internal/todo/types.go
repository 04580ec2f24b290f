package todo

// Task represents a single item in the list.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// State is the full state of the task screen.
type State struct {
	// Tasks is ordered newest first.
	Tasks         []Task `json:"tasks"`
	FilterEnabled bool   `json:"filter_enabled"`
	PendingText   string `json:"pending_text,omitempty"`
}

// EmptyState describes which placeholder message the screen shows, if any.
type EmptyState int

const (
	// EmptyNone means the visible list has at least one task.
	EmptyNone EmptyState = iota
	// EmptyNoTasks means the list has no tasks at all.
	EmptyNoTasks
	// EmptyAllDone means every task is completed and hidden by the filter.
	EmptyAllDone
)

func (e EmptyState) String() string {
	switch e {
	case EmptyNone:
		return "none"
	case EmptyNoTasks:
		return "no-tasks"
	case EmptyAllDone:
		return "all-done"
	default:
		return "unknown"
	}
}

// Counts summarises the task list.
type Counts struct {
	Total     int
	Pending   int
	Completed int
}
