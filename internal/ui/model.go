package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nibzard/mytasks-go/internal/logging"
	"github.com/nibzard/mytasks-go/internal/todo"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// Model is the Bubble Tea model of the task screen.
// It owns UI-only state (focus, cursor, entry widget); task state lives in
// the store.
type Model struct {
	store  *todo.Store
	input  textinput.Model
	help   help.Model
	keys   keyMap
	styles Styles
	logger *log.Logger

	title  string
	focus  focusArea
	cursor int
}

// Option configures a Model.
type Option func(*Model)

// WithTitle sets the header title.
func WithTitle(title string) Option {
	return func(m *Model) {
		if title != "" {
			m.title = title
		}
	}
}

// WithPlaceholder sets the entry field placeholder.
func WithPlaceholder(placeholder string) Option {
	return func(m *Model) {
		if placeholder != "" {
			m.input.Placeholder = placeholder
		}
	}
}

// WithStyles replaces the default styles.
func WithStyles(styles Styles) Option {
	return func(m *Model) {
		m.styles = styles
	}
}

// WithModelLogger sets the logger for UI events.
func WithModelLogger(logger *log.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewModel creates the screen model over store. The entry field starts focused.
func NewModel(store *todo.Store, opts ...Option) *Model {
	input := textinput.New()
	input.Placeholder = DefaultRenderOptions().Placeholder
	input.Prompt = "> "
	input.SetValue(store.State().PendingText)
	input.Focus()

	m := &Model{
		store:  store,
		input:  input,
		help:   help.New(),
		keys:   defaultKeyMap(),
		styles: DefaultStyles(),
		logger: logging.Discard(),
		title:  DefaultRenderOptions().Title,
		focus:  focusInput,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Store returns the underlying task store.
func (m *Model) Store() *todo.Store {
	return m.store
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-8, 10)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == focusInput {
		return m, m.updateInput(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.FilterGlobal):
		m.toggleFilter()
		return m, nil
	case key.Matches(msg, m.keys.SwitchFocus):
		return m, m.switchFocus()
	}

	if m.focus == focusInput {
		switch {
		case key.Matches(msg, m.keys.Submit):
			m.submit()
			return m, nil
		case key.Matches(msg, m.keys.Blur):
			return m, m.setFocus(focusList)
		}
		return m, m.updateInput(msg)
	}

	visible := m.store.VisibleTasks()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if task, ok := m.selected(visible); ok {
			m.store.Toggle(task.ID)
		}
	case key.Matches(msg, m.keys.Delete):
		if task, ok := m.selected(visible); ok {
			m.store.Delete(task.ID)
		}
	case key.Matches(msg, m.keys.Filter):
		m.toggleFilter()
	case key.Matches(msg, m.keys.FocusInput):
		return m, m.setFocus(focusInput)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	m.clampCursor()
	return m, nil
}

func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.store.State().PendingText {
		m.store.SetPendingText(m.input.Value())
	}
	return cmd
}

func (m *Model) submit() {
	m.store.SetPendingText(m.input.Value())
	if m.store.Submit() {
		m.input.Reset()
		m.cursor = 0
		return
	}
	m.logger.Debug("submission rejected", "text", m.input.Value())
}

func (m *Model) toggleFilter() {
	enabled := m.store.ToggleFilter()
	m.logger.Debug("filter toggled", "enabled", enabled)
	m.clampCursor()
}

func (m *Model) switchFocus() tea.Cmd {
	if m.focus == focusInput {
		return m.setFocus(focusList)
	}
	return m.setFocus(focusInput)
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	if f == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	m.clampCursor()
	return nil
}

func (m *Model) selected(visible []todo.Task) (todo.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(visible) {
		return todo.Task{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.store.VisibleTasks())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) View() string {
	opts := RenderOptions{
		Title:  m.title,
		Cursor: -1,
		Input:  m.input.View(),
		Styles: m.styles,
	}
	if m.focus == focusList {
		opts.Cursor = m.cursor
		opts.Help = m.help.View(listKeys{m.keys})
	} else {
		opts.Help = m.help.View(inputKeys{m.keys})
	}
	return Render(m.store.State(), opts)
}
