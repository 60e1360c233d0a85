package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// sizer is implemented by views that lay themselves out to panel bounds.
type sizer interface {
	SetSize(width, height int)
}
