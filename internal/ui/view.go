package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a self-contained component with Bubble Tea's Init/Update/View.
// Overlays and the contact form implement it.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
