package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	TaskNumber   = lipgloss.NewStyle().Foreground(Dim).Padding(0, 1)
	TaskGrip     = lipgloss.NewStyle().Foreground(Amber).Padding(0, 1, 0, 0)
	TaskTitle    = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	TaskSelected = TaskTitle.Copy().Background(Panel).Foreground(Amber)
	TaskLifted   = TaskTitle.Copy().Foreground(Background).Background(Amber)
	TaskTimer    = lipgloss.NewStyle().Foreground(Secondary)

	TaskDivider = lipgloss.NewStyle().Foreground(Faded).Padding(0, 1).Render("∙")
	Statusline  = lipgloss.NewStyle().Foreground(Faded).Italic(true)
)
