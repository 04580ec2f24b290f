package todo

// Add prepends a new task with the given text.
// Empty text and text already used by another task leave the state unchanged.
// On success the pending text is cleared.
func Add(s State, text string, ids IDGenerator) State {
	if text == "" {
		return s
	}
	if HasText(s, text) {
		return s
	}

	tasks := make([]Task, 0, len(s.Tasks)+1)
	tasks = append(tasks, Task{ID: ids.NextID(), Text: text})
	tasks = append(tasks, s.Tasks...)

	s.Tasks = tasks
	s.PendingText = ""
	return s
}

// Toggle flips the completed flag of the task with the given id.
func Toggle(s State, id string) State {
	idx := indexOf(s.Tasks, id)
	if idx < 0 {
		return s
	}

	tasks := cloneTasks(s.Tasks)
	tasks[idx].Completed = !tasks[idx].Completed
	s.Tasks = tasks
	return s
}

// Delete removes the task with the given id, keeping the order of the rest.
func Delete(s State, id string) State {
	idx := indexOf(s.Tasks, id)
	if idx < 0 {
		return s
	}

	tasks := make([]Task, 0, len(s.Tasks)-1)
	tasks = append(tasks, s.Tasks[:idx]...)
	tasks = append(tasks, s.Tasks[idx+1:]...)
	s.Tasks = tasks
	return s
}

// SetFilter sets whether completed tasks are hidden from VisibleTasks.
func SetFilter(s State, enabled bool) State {
	s.FilterEnabled = enabled
	return s
}

// SetPendingText records the text typed into the entry field.
func SetPendingText(s State, text string) State {
	s.PendingText = text
	return s
}

// Submit adds the pending text as a new task.
// A rejected submission keeps the pending text.
func Submit(s State, ids IDGenerator) State {
	return Add(s, s.PendingText, ids)
}

// VisibleTasks returns the tasks to display. The result is always a new
// slice; with the filter enabled completed tasks are left out.
func VisibleTasks(s State) []Task {
	if !s.FilterEnabled {
		return cloneTasks(s.Tasks)
	}

	visible := make([]Task, 0, len(s.Tasks))
	for _, task := range s.Tasks {
		if task.Completed {
			continue
		}
		visible = append(visible, task)
	}
	return visible
}

// EmptyStateOf reports which placeholder the screen should show.
func EmptyStateOf(s State) EmptyState {
	if len(s.Tasks) == 0 {
		return EmptyNoTasks
	}
	if !s.FilterEnabled {
		return EmptyNone
	}
	for _, task := range s.Tasks {
		if !task.Completed {
			return EmptyNone
		}
	}
	return EmptyAllDone
}

// CountTasks returns totals for the whole list, ignoring the filter.
func CountTasks(s State) Counts {
	c := Counts{Total: len(s.Tasks)}
	for _, task := range s.Tasks {
		if task.Completed {
			c.Completed++
		} else {
			c.Pending++
		}
	}
	return c
}

// Find returns a copy of the task with the given id.
func Find(s State, id string) (Task, bool) {
	idx := indexOf(s.Tasks, id)
	if idx < 0 {
		return Task{}, false
	}
	return s.Tasks[idx], true
}

// FindByText returns a copy of the task with exactly the given text.
func FindByText(s State, text string) (Task, bool) {
	for _, task := range s.Tasks {
		if task.Text == text {
			return task, true
		}
	}
	return Task{}, false
}

// HasText reports whether a task with exactly the given text exists.
func HasText(s State, text string) bool {
	_, ok := FindByText(s, text)
	return ok
}

func indexOf(tasks []Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}
