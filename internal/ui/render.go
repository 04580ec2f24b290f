package ui

import (
	"fmt"
	"strings"

	"github.com/nibzard/mytasks-go/internal/todo"
)

// Empty-state messages.
const (
	MessageNoTasks = "No tasks yet! Add one below"
	MessageAllDone = "Hooray! No pending tasks.\nRemove the filter to see tasks."
)

// RenderOptions controls how a state is drawn.
type RenderOptions struct {
	Title       string
	Placeholder string
	// Cursor is the index of the highlighted visible task, or -1 for none.
	Cursor int
	// Input is the pre-rendered entry field. When empty the pending text
	// (or placeholder) is drawn instead.
	Input  string
	Help   string
	Styles Styles
}

// DefaultRenderOptions returns plain options with the default labels.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Title:       "My Tasks",
		Placeholder: "Enter a new task",
		Cursor:      -1,
		Styles:      PlainStyles(),
	}
}

// Render draws the screen for state. It has no side effects.
func Render(state todo.State, opts RenderOptions) string {
	var b strings.Builder
	st := opts.Styles

	writeHeader(&b, state, opts)

	visible := todo.VisibleTasks(state)
	switch todo.EmptyStateOf(state) {
	case todo.EmptyNoTasks:
		writeMessage(&b, st, MessageNoTasks)
	case todo.EmptyAllDone:
		writeMessage(&b, st, MessageAllDone)
	default:
		for i, task := range visible {
			b.WriteString(formatTask(task, i == opts.Cursor, st))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	writeInput(&b, state, opts)

	if opts.Help != "" {
		b.WriteString("\n")
		b.WriteString(st.Help.Render(opts.Help))
		b.WriteString("\n")
	}
	return b.String()
}

func writeHeader(b *strings.Builder, state todo.State, opts RenderOptions) {
	st := opts.Styles
	title := opts.Title
	if title == "" {
		title = "My Tasks"
	}

	filter := st.FilterMuted.Render(filterLabel(false))
	if state.FilterEnabled {
		filter = st.FilterActive.Render(filterLabel(true))
	}

	b.WriteString(st.Title.Render(title))
	b.WriteString("  ")
	b.WriteString(filter)
	b.WriteString("\n")

	counts := todo.CountTasks(state)
	b.WriteString(st.Counts.Render(fmt.Sprintf("%d pending, %d done", counts.Pending, counts.Completed)))
	b.WriteString("\n\n")
}

func filterLabel(active bool) string {
	if active {
		return "[filter: on]"
	}
	return "[filter: off]"
}

func writeMessage(b *strings.Builder, st Styles, msg string) {
	for _, line := range strings.Split(msg, "\n") {
		b.WriteString("  ")
		b.WriteString(st.Message.Render(line))
		b.WriteString("\n")
	}
}

func writeInput(b *strings.Builder, state todo.State, opts RenderOptions) {
	input := opts.Input
	if input == "" {
		text := state.PendingText
		if text == "" {
			text = opts.Placeholder
		}
		input = "> " + text
	}
	b.WriteString(opts.Styles.Input.Render(input))
	b.WriteString("\n")
}

func formatTask(task todo.Task, selected bool, st Styles) string {
	marker := "  "
	if selected {
		marker = st.Cursor.Render(">") + " "
	}

	check := "[ ]"
	text := st.Task.Render(task.Text)
	if task.Completed {
		check = "[x]"
		text = st.TaskCompleted.Render(task.Text)
	}
	return marker + check + " " + text
}
