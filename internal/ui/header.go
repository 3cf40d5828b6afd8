package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerContainer = lipgloss.NewStyle().Padding(1, 1)
	headerTitle     = lipgloss.NewStyle().Foreground(Amber).Bold(true).Italic(true)
	activeMode      = lipgloss.NewStyle().Foreground(Background).Background(Amber).Bold(true).Padding(0, 1)
	inactiveMode    = lipgloss.NewStyle().Foreground(Dim).Padding(0, 1)
	modeDivider     = lipgloss.NewStyle().Foreground(Faded)
)

// Header is the top bar: a title, the list of modes with the current one
// highlighted, and a right aligned info text
type Header struct {
	Title string
	modes []string
	i     int

	Width int
	Info  string
}

func NewHeader(title string, modes []string) Header {
	return Header{Title: title, modes: modes}
}

// View renders the header followed by a newline
func (h Header) View() string {
	modes := make([]string, len(h.modes))
	for i, m := range h.modes {
		r := inactiveMode
		if i == h.i {
			r = activeMode
		}
		modes[i] = r.Render(m)
	}
	w := lipgloss.Width
	left := headerTitle.Render(h.Title) + "  " + strings.Join(modes, modeDivider.Render("|"))
	right := h.Info
	space := lipgloss.NewStyle().Width(max(h.Width-2-w(left)-w(right), 0)).Render("")
	return headerContainer.Render(lipgloss.JoinHorizontal(lipgloss.Center, left, space, right)) + "\n"
}

func (h Header) Value() int {
	return h.i
}

func (h *Header) Set(i int) {
	h.i = min(max(i, 0), len(h.modes)-1)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
