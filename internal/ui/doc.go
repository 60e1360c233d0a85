// Package ui is the Bubble Tea front end for the movie list.
//
// The screen has two panels: an input for adding titles and a list that
// displays the collection and deletes entries. Both panels are plain Views
// (Elm-style Init/Update/View). Neither owns any movie state: the input emits
// AddMovieMsg, the list emits remove requests, and the AppModel applies them to
// the movie.Store it was given. The list re-renders from the snapshots the
// store broadcasts (StoreChangedMsg).
//
// Supporting pieces:
//   - FocusManager: rotates focus between the two panels
//   - Layout/Panel: panel bounds for the current terminal size
//   - OverlayStack: confirmation modals
//   - KeybindRegistry/KeyHandler: single keys and SPC-prefixed sequences
package ui
