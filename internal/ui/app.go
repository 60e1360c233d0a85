package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"movielist/internal/movie"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AppModel is the root model. It owns the store handle and routes input to the
// focused panel; all collection changes go through Store.
type AppModel struct {
	Store      *movie.Store
	Input      *MovieInputView
	List       *MovieListView
	Focus      *FocusManager
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Logger     *slog.Logger

	Status        string
	StatusIsError bool

	ctx     context.Context
	layout  Layout
	changes <-chan movie.Change
	cancel  func()
	width   int
	height  int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model for store. ctx is passed to every store
// dispatch. Call Close when the program exits to drop the store subscription.
func NewAppModel(ctx context.Context, store *movie.Store, logger *slog.Logger) *AppModel {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a := &AppModel{
		Store:      store,
		Input:      NewMovieInputView(),
		List:       NewMovieListView(store.List()),
		KeyHandler: NewKeyHandler(newRegistry()),
		Logger:     logger,
		ctx:        ctx,
	}
	a.layout = movieLayout{input: a.Input, list: a.List}
	a.Focus = NewFocusManager(a.layout.FocusOrder(), a.onFocusChange)
	a.changes, a.cancel = store.Subscribe()
	return a
}

// newRegistry binds the app's keys. Printable single keys are limited to the
// list so they can be typed into the input.
func newRegistry() *KeybindRegistry {
	listOnly := []AppMode{ModeList}
	inputOnly := []AppMode{ModeInput}
	focusInput := func() tea.Msg { return FocusPanelMsg{Panel: PanelInput} }
	focusList := func() tea.Msg { return FocusPanelMsg{Panel: PanelList} }
	showRemove := func() tea.Msg { return ShowRemoveMovieMsg{} }
	removeSelected := func() tea.Msg { return RemoveSelectedMsg{} }

	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("tab", func() tea.Msg { return FocusNextMsg{} }, "Switch panel")
	reg.BindWithDescForMode("esc", focusList, "List", inputOnly)

	reg.BindWithDescForMode("q", tea.Quit, "Quit", listOnly)
	reg.BindWithDescForMode("a", focusInput, "Add movie", listOnly)
	reg.BindWithDescForMode("i", focusInput, "Add movie", listOnly)
	reg.BindWithDescForMode("d", showRemove, "Delete movie", listOnly)
	reg.BindWithDescForMode("x", showRemove, "Delete movie", listOnly)
	reg.BindWithDescForMode("delete", showRemove, "Delete movie", listOnly)
	reg.BindWithDescForMode("D", removeSelected, "Delete without asking", listOnly)

	reg.BindWithDescForMode("SPC q", tea.Quit, "Quit", listOnly)
	reg.BindWithDescForMode("SPC m a", focusInput, "Add movie", listOnly)
	reg.BindWithDescForMode("SPC m d", showRemove, "Delete movie", listOnly)
	reg.BindWithDescForMode("SPC m D", removeSelected, "Delete without asking", listOnly)
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Close unsubscribes from the store.
func (m *AppModel) Close() {
	if m.cancel != nil {
		m.cancel()
	}
}

// Mode returns the mode of the focused panel.
func (m *AppModel) Mode() AppMode {
	return modeForPanel(m.Focus.Current)
}

func (m *AppModel) onFocusChange(from, to string) {
	m.KeyHandler.Reset()
	if to == PanelInput {
		m.Input.Focus()
		m.List.SetFocused(false)
	} else {
		m.Input.Blur()
		m.List.SetFocused(true)
	}
	m.Logger.Debug("focus changed", "from", from, "to", to)
}

// focus moves focus to id and returns the cursor blink cmd for the input.
func (m *AppModel) focus(id string) tea.Cmd {
	if !m.Focus.SetFocus(id) {
		return nil
	}
	if id == PanelInput {
		return textinput.Blink
	}
	return nil
}

// waitForChange blocks on the store subscription and delivers the next
// snapshot as a StoreChangedMsg.
func (m *AppModel) waitForChange() tea.Cmd {
	ch := m.changes
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return nil
		}
		return StoreChangedMsg{Change: c}
	}
}

func (m *AppModel) setStatus(s string) {
	m.Status = s
	m.StatusIsError = false
}

func (m *AppModel) setError(s string) {
	m.Status = s
	m.StatusIsError = true
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.Input.Init(), a.waitForChange())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		for _, p := range a.layout.Panels() {
			p.Resize(msg.Width, msg.Height)
		}
		return a, nil
	case StoreChangedMsg:
		a.List.SetMovies(msg.Change.Movies)
		return a, a.waitForChange()
	case AddMovieMsg:
		return a.handleAddMovie(msg)
	case RemoveMovieMsg:
		return a.handleRemoveMovie(msg)
	case RemoveSelectedMsg:
		sel, ok := a.List.Selected()
		if !ok {
			a.setError("No movie selected")
			return a, nil
		}
		return a.handleRemoveMovie(RemoveMovieMsg{ID: sel.ID})
	case ShowRemoveMovieMsg:
		sel, ok := a.List.Selected()
		if !ok {
			a.setError("No movie selected")
			return a, nil
		}
		a.Overlays.Push(Overlay{View: NewRemoveMovieConfirmModal(sel)})
		return a, nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case FocusPanelMsg:
		return a, a.focus(msg.Panel)
	case FocusNextMsg:
		return a, a.focus(a.Focus.Next())
	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Anything else (cursor blink, etc.) goes to both panels.
	_, inputCmd := a.Input.Update(msg)
	_, listCmd := a.List.Update(msg)
	return a, tea.Batch(inputCmd, listCmd)
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	// Modals take all input while open.
	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}

	mode := a.Mode()
	if mode == ModeInput {
		if c := a.KeyHandler.Registry.LookupForMode(keyToSeqPart(msg.String()), mode); c != nil {
			return a, c
		}
		_, cmd := a.Input.Update(msg)
		return a, cmd
	}

	if consumed, cmd := a.KeyHandler.Handle(msg, mode); consumed {
		return a, cmd
	}
	_, cmd := a.List.Update(msg)
	return a, cmd
}

// handleAddMovie applies AddMovieMsg to the store. The list refreshes from the
// resulting StoreChangedMsg.
func (a *appModelAdapter) handleAddMovie(msg AddMovieMsg) (tea.Model, tea.Cmd) {
	m, err := a.Store.Add(a.ctx, msg.Title)
	if err != nil {
		a.setError(fmt.Sprintf("Add movie: %v", err))
		return a, nil
	}
	a.setStatus(fmt.Sprintf("Added #%d %s", m.ID, m.Title))
	return a, nil
}

// handleRemoveMovie applies RemoveMovieMsg to the store and closes the
// confirmation modal if one is open. Unknown IDs only update the status.
func (a *appModelAdapter) handleRemoveMovie(msg RemoveMovieMsg) (tea.Model, tea.Cmd) {
	if a.Overlays.Len() > 0 {
		a.Overlays.Pop()
	}
	res, err := a.Store.Dispatch(a.ctx, movie.RemoveMovie{ID: msg.ID})
	switch {
	case err != nil:
		a.setError(fmt.Sprintf("Remove movie: %v", err))
	case res.Removed:
		a.setStatus(fmt.Sprintf("Removed #%d %s", res.Movie.ID, res.Movie.Title))
	default:
		a.setStatus(fmt.Sprintf("No movie #%d", msg.ID))
	}
	return a, nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Movies"))
	b.WriteString("\n\n")
	b.WriteString(a.Input.View())
	b.WriteString("\n")
	b.WriteString(a.List.View())
	b.WriteString("\n")
	if a.Status != "" {
		style := Styles.Status
		if a.StatusIsError {
			style = Styles.Error
		}
		b.WriteString(style.Render(a.Status))
	}
	b.WriteString("\n")
	if a.KeyHandler.LeaderWaiting {
		b.WriteString(RenderKeybindHelp(a.KeyHandler, a.Mode()))
	} else {
		b.WriteString(RenderFooterHelp(a.Mode()))
	}
	base := b.String()

	top, ok := a.Overlays.Peek()
	if !ok {
		return base
	}
	modal := top.View.View()
	if a.width > 0 && a.height > 0 {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
	}
	return base + "\n" + modal
}
