package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MovieInputView captures a title and emits AddMovieMsg on Enter.
// Blank input is ignored; the field is cleared after a submit.
type MovieInputView struct {
	input textinput.Model
	width int
}

// Ensure MovieInputView implements View.
var _ View = (*MovieInputView)(nil)

// NewMovieInputView creates a focused input.
func NewMovieInputView() *MovieInputView {
	ti := textinput.New()
	ti.Placeholder = "Movie title"
	ti.Prompt = "+ "
	ti.CharLimit = 200
	ti.Width = 40
	ti.Focus()
	return &MovieInputView{input: ti}
}

// Init implements View.
func (m *MovieInputView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *MovieInputView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEnter {
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			return m, nil
		}
		m.input.Reset()
		return m, func() tea.Msg { return AddMovieMsg{Title: title} }
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *MovieInputView) View() string {
	style := panelStyle(m.input.Focused())
	if m.width > 0 {
		style = style.Width(max(m.width-style.GetHorizontalBorderSize(), 0))
	}
	return style.Render(m.input.View())
}

// SetSize implements sizer. Height is fixed at one line.
func (m *MovieInputView) SetSize(width, _ int) {
	m.width = width
	// border + padding + prompt + cursor
	m.input.Width = max(width-4-len(m.input.Prompt)-1, 1)
}

// Focus focuses the text field.
func (m *MovieInputView) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes focus from the text field.
func (m *MovieInputView) Blur() {
	m.input.Blur()
}

// Focused reports whether the text field accepts input.
func (m *MovieInputView) Focused() bool {
	return m.input.Focused()
}

// Value returns the current, untrimmed text.
func (m *MovieInputView) Value() string {
	return m.input.Value()
}
