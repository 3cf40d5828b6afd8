package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/td0m/chrono/internal/ui"
	"github.com/td0m/chrono/pkg/task"
)

const grip = "⋮"

func (m *app) render() {
	m.header.Info = m.info()
	m.viewport.SetContent(m.viewTasks())
}

func (m app) info() string {
	entries := "entries"
	if len(m.records) == 1 {
		entries = "entry"
	}
	s := fmt.Sprintf("%d %s", len(m.records), entries)
	if total := task.Total(m.records); total > 0 {
		s += ui.TaskDivider + formatDuration(total)
	}
	return s
}

// viewTasks renders one line per task. While dragging, the rows are shown in
// the order they would have after the drop.
func (m app) viewTasks() string {
	records := m.records
	if m.mode == modeDrag {
		records = m.drag.Preview(records)
	}
	var b strings.Builder
	for i, r := range records {
		title := ui.TaskTitle
		switch {
		case m.mode == modeDrag && r.ID == m.drag.Source():
			title = ui.TaskLifted
		case m.mode != modeDrag && i == m.cursor:
			title = ui.TaskSelected
		}
		b.WriteString(ui.TaskNumber.Render(fmt.Sprintf("%02d", i+1)))
		b.WriteString(ui.TaskGrip.Render(grip))
		b.WriteString(title.Render(strings.ToUpper(r.Title)))
		if d, ok := r.Duration(); ok && d > 0 {
			b.WriteString(ui.TaskDivider)
			b.WriteString(ui.TaskTimer.Render(formatDuration(d)))
		}
		b.WriteString("\n")
	}
	if len(records) == 0 {
		b.WriteString(ui.Statusline.Render("  no entries, press a to add one") + "\n")
	}
	return b.String()
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := d / time.Hour
	mins := (d % time.Hour) / time.Minute
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", mins)
	case mins == 0:
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%02dm", h, mins)
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m app) View() string {
	footer := ""
	switch m.mode {
	case modeNew, modeEdit:
		footer = m.form.View()
	case modeDrag:
		footer = ui.Statusline.Render(m.dragStatus())
	default:
		footer = ui.Statusline.Render("a new ∙ e edit ∙ x delete ∙ J/K move ∙ m drag ∙ q quit")
	}
	return m.header.View() + m.viewport.View() + "\n" + footer
}

func (m app) dragStatus() string {
	source, _ := m.find(m.drag.Source())
	target, ok := m.find(m.drag.Target())
	if !ok || target.ID == source.ID {
		return "dragging " + source.Title + " ∙ esc to cancel"
	}
	return "dragging " + source.Title + " onto " + target.Title + " ∙ enter to drop"
}

func (m app) find(id task.ID) (task.Record, bool) {
	for _, r := range m.records {
		if r.ID == id {
			return r, true
		}
	}
	return task.Record{}, false
}
