package ui

import "movielist/internal/movie"

// AddMovieMsg is sent by the input when the user submits a non-empty title.
type AddMovieMsg struct {
	Title string
}

// RemoveMovieMsg removes the movie with ID (confirmed delete or D key).
type RemoveMovieMsg struct {
	ID int
}

// RemoveSelectedMsg removes the movie under the list cursor without asking.
type RemoveSelectedMsg struct{}

// ShowRemoveMovieMsg opens the delete confirmation for the selected movie.
type ShowRemoveMovieMsg struct{}

// StoreChangedMsg carries the collection snapshot broadcast by the store
// after a successful add or remove.
type StoreChangedMsg struct {
	Change movie.Change
}

// FocusPanelMsg moves focus to a panel (PanelInput or PanelList).
type FocusPanelMsg struct {
	Panel string
}

// FocusNextMsg rotates focus to the next panel.
type FocusNextMsg struct{}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}
