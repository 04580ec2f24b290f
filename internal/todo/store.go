package todo

import (
	"io"

	"github.com/charmbracelet/log"
)

// Store is a mutable handle over State for a single screen.
// It is not safe for concurrent use.
type Store struct {
	state  State
	ids    IDGenerator
	logger *log.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIDGenerator sets the id generator. The default is UUIDGenerator.
func WithIDGenerator(ids IDGenerator) StoreOption {
	return func(s *Store) {
		if ids != nil {
			s.ids = ids
		}
	}
}

// WithLogger sets the logger used for transition events.
func WithLogger(logger *log.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithState seeds the store with an initial state.
func WithState(state State) StoreOption {
	return func(s *Store) {
		s.state = state
		s.state.Tasks = cloneTasks(state.Tasks)
	}
}

// NewStore creates an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		ids:    UUIDGenerator{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a copy of the current state.
func (s *Store) State() State {
	out := s.state
	out.Tasks = cloneTasks(s.state.Tasks)
	return out
}

// Add adds a task with the given text. It reports whether a task was added.
func (s *Store) Add(text string) bool {
	before := len(s.state.Tasks)
	switch {
	case text == "":
		s.logger.Debug("add ignored", "reason", "empty text")
		return false
	case HasText(s.state, text):
		s.logger.Debug("add ignored", "reason", "duplicate text", "text", text)
		return false
	}

	s.state = Add(s.state, text, s.ids)
	added := len(s.state.Tasks) > before
	if added {
		s.logger.Debug("task added", "id", s.state.Tasks[0].ID, "text", text)
	}
	return added
}

// Submit adds the pending text as a task.
func (s *Store) Submit() bool {
	return s.Add(s.state.PendingText)
}

// SetPendingText records the text typed into the entry field.
func (s *Store) SetPendingText(text string) {
	s.state = SetPendingText(s.state, text)
}

// Toggle flips the completed flag of a task. It reports whether a task matched.
func (s *Store) Toggle(id string) bool {
	if _, ok := Find(s.state, id); !ok {
		s.logger.Debug("toggle ignored", "reason", "unknown id", "id", id)
		return false
	}
	s.state = Toggle(s.state, id)
	task, _ := Find(s.state, id)
	s.logger.Debug("task toggled", "id", id, "completed", task.Completed)
	return true
}

// Delete removes a task. It reports whether a task matched.
func (s *Store) Delete(id string) bool {
	if _, ok := Find(s.state, id); !ok {
		s.logger.Debug("delete ignored", "reason", "unknown id", "id", id)
		return false
	}
	s.state = Delete(s.state, id)
	s.logger.Debug("task deleted", "id", id)
	return true
}

// SetFilter sets whether completed tasks are hidden.
func (s *Store) SetFilter(enabled bool) {
	s.state = SetFilter(s.state, enabled)
	s.logger.Debug("filter set", "enabled", enabled)
}

// ToggleFilter flips the filter flag and returns the new value.
func (s *Store) ToggleFilter() bool {
	s.SetFilter(!s.state.FilterEnabled)
	return s.state.FilterEnabled
}

// VisibleTasks returns the tasks to display.
func (s *Store) VisibleTasks() []Task {
	return VisibleTasks(s.state)
}

// EmptyState reports which placeholder the screen should show.
func (s *Store) EmptyState() EmptyState {
	return EmptyStateOf(s.state)
}
