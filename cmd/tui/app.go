package main

import (
	"log"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/td0m/chrono/internal/ui"
	"github.com/td0m/chrono/pkg/drag"
	"github.com/td0m/chrono/pkg/task"
	"github.com/td0m/chrono/pkg/taskform"
)

const (
	headerHeight = 3
	footerHeight = 1
)

type mode int

const (
	modeList mode = iota
	modeNew
	modeEdit
	modeDrag
)

var modeNames = []string{"LIST", "NEW", "EDIT", "DRAG"}

type app struct {
	mode   mode
	width  int
	height int

	viewport viewport.Model
	header   ui.Header
	form     taskform.Model
	drag     drag.Gesture

	// records is the sequence as of the last store notification
	records []task.Record
	cursor  int

	store task.StoreManager
}

func newApp(store task.StoreManager) *app {
	a := &app{
		viewport: viewport.Model{},
		header:   ui.NewHeader("CHRONO WEAPONS", modeNames),
		form:     taskform.NewModel(),
		records:  store.Records(),
		store:    store,
	}
	store.Subscribe(a.onChange)
	a.render()
	return a
}

// onChange keeps the cursor on the task that was just touched
func (m *app) onChange(c task.Change) {
	m.records = c.Records
	switch c.Op {
	case task.OpAppend, task.OpReorder:
		m.setCursor(m.indexOf(c.ID))
	default:
		m.setCursor(m.cursor)
	}
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m app) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.header.Width = msg.Width
		m.resize()
		m.setCursor(m.cursor) // make sure cursor is visible
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		cmd = m.keyUpdate(msg)
	case tea.MouseMsg:
		m.mouseUpdate(msg)
	}
	m.render()
	return m, cmd
}

// handle keys differently based on the current mode
func (m *app) keyUpdate(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.mode {
	case modeNew, modeEdit:
		switch msg.Type {
		case tea.KeyEsc:
			m.setMode(modeList)
		case tea.KeyEnter:
			m.submit()
		default:
			m.form, cmd = m.form.Update(msg)
		}
	case modeDrag:
		switch msg.String() {
		case "j", "down":
			m.hover(1)
		case "k", "up":
			m.hover(-1)
		case "enter", " ", "m":
			m.drop()
		case "esc":
			m.drag.Cancel()
			m.setMode(modeList)
		}
	case modeList:
		switch msg.String() {
		case "q":
			return tea.Quit
		case "j", "down":
			m.setCursor(m.cursor + 1)
		case "k", "up":
			m.setCursor(m.cursor - 1)
		case "g":
			m.setCursor(0)
		case "G":
			m.setCursor(len(m.records) - 1)
		case "a":
			m.form.Reset()
			m.setMode(modeNew)
		case "e", "enter":
			if r, ok := m.atCursor(); ok {
				m.form.Load(r)
				m.setMode(modeEdit)
			}
		case "x", tea.KeyDelete.String():
			if r, ok := m.atCursor(); ok {
				declined(m.store.Remove(r.ID))
			}
		case "J":
			m.moveBy(1)
		case "K":
			m.moveBy(-1)
		case "m":
			if r, ok := m.atCursor(); ok {
				m.drag.Start(r.ID)
				m.drag.Over(r.ID)
				m.setMode(modeDrag)
			}
		}
	}
	return cmd
}

// mouseUpdate lets a row be dragged with the pointer: press picks it up,
// moving with the button held changes the target and release drops it.
// The terminal reports a held-button move as another MouseLeft.
func (m *app) mouseUpdate(msg tea.MouseMsg) {
	row, onRow := m.rowAt(msg.Y)
	switch msg.Type {
	case tea.MouseLeft:
		if m.drag.Active() {
			m.hoverRow(row, onRow)
			return
		}
		if m.mode != modeList || !onRow {
			return
		}
		m.setCursor(row)
		id := m.records[row].ID
		m.drag.Start(id)
		m.drag.Over(id)
		m.setMode(modeDrag)
	case tea.MouseMotion:
		if m.drag.Active() {
			m.hoverRow(row, onRow)
		}
	case tea.MouseRelease:
		if m.drag.Active() {
			m.drop()
		}
	case tea.MouseWheelDown:
		m.setCursor(m.cursor + 1)
	case tea.MouseWheelUp:
		m.setCursor(m.cursor - 1)
	}
}

func (m *app) hoverRow(row int, onRow bool) {
	if onRow {
		m.drag.Over(m.records[row].ID)
	} else {
		m.drag.Over("")
	}
}

func (m *app) submit() {
	if !m.form.Valid() {
		return
	}
	if id := m.form.Editing(); id != "" {
		_, err := m.store.Update(id, m.form.Patch())
		declined(err)
	} else {
		_, err := m.store.Append(m.form.Draft())
		declined(err)
	}
	m.setMode(modeList)
}

// moveBy swaps the task under the cursor with one of its neighbours
func (m *app) moveBy(inc int) {
	r, ok := m.atCursor()
	if !ok {
		return
	}
	i := m.cursor + inc
	if i < 0 || i >= len(m.records) {
		return
	}
	declined(m.store.Reorder(r.ID, m.records[i].ID))
}

// hover moves the drag target up or down, counted in the previewed order
func (m *app) hover(inc int) {
	preview := m.drag.Preview(m.records)
	i := 0
	for j, r := range preview {
		if r.ID == m.drag.Source() {
			i = j
		}
	}
	i = clamp(i+inc, 0, len(preview)-1)
	// the previewed slot i is held by the task at index i in the real list
	m.drag.Over(m.records[i].ID)
}

// drop applies the gesture to the store, this is the only place a drag
// mutates the list
func (m *app) drop() {
	_, err := m.drag.Apply(m.store)
	declined(err)
	m.setMode(modeList)
}

// declined logs an operation the store refused. The list is left as it was
// and the user sees nothing.
func declined(err error) {
	if err != nil {
		log.Printf("declined: %v", err)
	}
}

func (m *app) setMode(md mode) {
	m.mode = md
	m.header.Set(int(md))
	m.resize()
}

func (m *app) resize() {
	footer := footerHeight
	if m.mode == modeNew || m.mode == modeEdit {
		footer += 3
	}
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-headerHeight-footer, 0)
}

func (m *app) setCursor(value int) {
	size := len(m.records)
	m.cursor = clamp(value, 0, max(size-1, 0))

	if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.YOffset = m.cursor - m.viewport.Height + 1
	}
	if m.cursor < m.viewport.YOffset {
		m.viewport.YOffset = m.cursor
	}
}

func (m app) atCursor() (task.Record, bool) {
	// if no items visible
	if m.cursor >= len(m.records) {
		return task.Record{}, false
	}
	return m.records[m.cursor], true
}

func (m app) indexOf(id task.ID) int {
	for i, r := range m.records {
		if r.ID == id {
			return i
		}
	}
	return m.cursor
}

// rowAt maps a terminal line to a list row
func (m app) rowAt(y int) (int, bool) {
	row := y - headerHeight + m.viewport.YOffset
	if y < headerHeight || y >= headerHeight+m.viewport.Height || row >= len(m.records) {
		return 0, false
	}
	return row, true
}

func clamp(v, low, high int) int {
	return min(high, max(low, v))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
