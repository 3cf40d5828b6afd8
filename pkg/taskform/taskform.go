package taskform

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/chrono/pkg/task"
)

var (
	indicator = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	checkmark = indicator.Copy().
			Foreground(lipgloss.AdaptiveColor{Light: "#00ad3b", Dark: "#73F59F"}).
			Render("✓")

	cross = indicator.Copy().
		Foreground(lipgloss.AdaptiveColor{Light: "", Dark: "#FF5047"}).
		Render("✗")

	faded  = lipgloss.AdaptiveColor{Light: "#666", Dark: "#999"}
	label  = lipgloss.NewStyle().Foreground(faded).Width(9)
	active = label.Copy().Foreground(lipgloss.Color("#ffcc00")).Bold(true)
)

const (
	fieldTitle = iota
	fieldHours
	fieldMinutes
)

var labels = []string{"title", "hours", "minutes"}

// Model is a form for creating or editing a single task
type Model struct {
	inputs  []textinput.Model
	focus   int
	editing task.ID

	// loaded holds the field values of the edited task as they were loaded,
	// so untouched fields stay out of the patch
	loaded []string
}

func NewModel() Model {
	inputs := make([]textinput.Model, len(labels))
	for i := range inputs {
		in := textinput.NewModel()
		in.Prompt = ""
		in.Width = 8
		inputs[i] = in
	}
	inputs[fieldTitle].Width = 32
	inputs[fieldTitle].Placeholder = "NEW_DIRECTIVE"
	m := Model{inputs: inputs}
	m.setFocus(fieldTitle)
	return m
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m Model) Init() tea.Cmd {
	return nil
}

// Reset clears all fields so the form can create a new task
func (m *Model) Reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.editing = ""
	m.loaded = nil
	m.setFocus(fieldTitle)
}

// Load fills the form with an existing task
func (m *Model) Load(r task.Record) {
	m.Reset()
	m.editing = r.ID
	m.loaded = []string{r.Title, r.Hours, r.Minutes}
	for i, v := range m.loaded {
		m.inputs[i].SetValue(v)
		m.inputs[i].SetCursor(len(v))
	}
}

// Editing returns the ID of the task being edited, or "" when creating
func (m Model) Editing() task.ID {
	return m.editing
}

func (m Model) Focused() int {
	return m.focus
}

func (m *Model) setFocus(i int) {
	n := len(m.inputs)
	m.focus = ((i % n) + n) % n
	for j := range m.inputs {
		if j == m.focus {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyTab, tea.KeyDown:
		m.setFocus(m.focus + 1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.setFocus(m.focus - 1)
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(key)
	return m, cmd
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m Model) View() string {
	var b strings.Builder
	for i, in := range m.inputs {
		style := label
		if i == m.focus {
			style = active
		}
		b.WriteString(style.Render(labels[i]+":") + in.View())
		if i == fieldTitle {
			if m.Valid() {
				b.WriteString(checkmark)
			} else {
				b.WriteString(cross)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Valid reports whether the form can be submitted
func (m Model) Valid() bool {
	return strings.TrimSpace(m.inputs[fieldTitle].Value()) != ""
}

func (m Model) Draft() task.Draft {
	return task.Draft{
		Title:   strings.TrimSpace(m.inputs[fieldTitle].Value()),
		Hours:   strings.TrimSpace(m.inputs[fieldHours].Value()),
		Minutes: strings.TrimSpace(m.inputs[fieldMinutes].Value()),
	}
}

// Patch returns the fields that differ from the loaded task. Without a
// loaded task every field is part of the patch.
func (m Model) Patch() task.Patch {
	d := m.Draft()
	return task.Patch{
		Title:   m.changed(fieldTitle, d.Title),
		Hours:   m.changed(fieldHours, d.Hours),
		Minutes: m.changed(fieldMinutes, d.Minutes),
	}
}

func (m Model) changed(field int, value string) *string {
	if m.loaded != nil && m.inputs[field].Value() == m.loaded[field] {
		return nil
	}
	return &value
}
