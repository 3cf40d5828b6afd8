package ui

import "github.com/charmbracelet/lipgloss"

const (
	Background = lipgloss.Color("#0a0a0a")
	Panel      = lipgloss.Color("#151515")

	Primary   = lipgloss.Color("#fff")
	Secondary = lipgloss.Color("#888")
	Faded     = lipgloss.Color("#555")

	Amber = lipgloss.Color("#ffcc00")
	Dim   = lipgloss.Color("#665200")
	Red   = lipgloss.Color("#c42912")
)
