package ui

import (
	"fmt"
	"strings"

	"movielist/internal/movie"
	"movielist/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// idColumnWidth is the space kept for the "#123" suffix on each row.
const idColumnWidth = 6

// movieItem implements list.DefaultItem for a movie.
type movieItem struct {
	movie      movie.Movie
	titleWidth int
}

func (i movieItem) FilterValue() string { return i.movie.Title }
func (i movieItem) Title() string {
	title := i.movie.Title
	if i.titleWidth > 0 {
		title = textutil.PadRightVisual(title, i.titleWidth)
	}
	return fmt.Sprintf("%s  #%d", title, i.movie.ID)
}
func (i movieItem) Description() string { return "" }

// MovieListView renders the collection and lets the user pick a movie to
// delete. It holds a snapshot of the store, replaced on every StoreChangedMsg.
type MovieListView struct {
	list    list.Model
	Movies  []movie.Movie
	focused bool
	width   int
	height  int
}

// Ensure MovieListView implements View.
var _ View = (*MovieListView)(nil)

// NewMovieListView creates a list showing movies.
func NewMovieListView(movies []movie.Movie) *MovieListView {
	l := list.New(nil, NewCompactListDelegate(), 80, 20)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	v := &MovieListView{list: l, width: 80, height: 20}
	v.SetMovies(movies)
	return v
}

// Init implements View.
func (v *MovieListView) Init() tea.Cmd {
	return nil
}

// Update implements View. Navigation keys (j/k, up/down, g/G) are handled by
// list.Model; delete keys are bound at the app level.
func (v *MovieListView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View implements View.
func (v *MovieListView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(fmt.Sprintf("Movie List (%d)", len(v.Movies))))
	b.WriteString("\n")
	if len(v.Movies) == 0 {
		b.WriteString(Styles.Empty.Render("No movies yet"))
	} else {
		b.WriteString(v.list.View())
	}

	style := panelStyle(v.focused)
	if v.width > 0 {
		style = style.Width(max(v.width-style.GetHorizontalBorderSize(), 0))
	}
	return style.Render(b.String())
}

// SetSize implements sizer.
func (v *MovieListView) SetSize(width, height int) {
	v.width = width
	v.height = height
	// border (2) + padding (2) horizontally; border (2) + title line vertically
	v.list.SetSize(max(width-4, 1), max(height-3, 1))
	v.refreshItems()
}

// SetFocused toggles the focused border.
func (v *MovieListView) SetFocused(focused bool) {
	v.focused = focused
}

// SetMovies replaces the displayed collection. The selection stays on the same
// index, clamped to the new length.
func (v *MovieListView) SetMovies(movies []movie.Movie) {
	v.Movies = movies
	idx := v.list.Index()
	v.refreshItems()
	if n := len(movies); n > 0 {
		v.list.Select(min(idx, n-1))
	}
}

// Selected returns the movie under the cursor.
func (v *MovieListView) Selected() (movie.Movie, bool) {
	item, ok := v.list.SelectedItem().(movieItem)
	if !ok {
		return movie.Movie{}, false
	}
	return item.movie, true
}

// Index returns the cursor position.
func (v *MovieListView) Index() int {
	return v.list.Index()
}

func (v *MovieListView) refreshItems() {
	titleWidth := max(v.list.Width()-idColumnWidth-4, 8)
	items := make([]list.Item, len(v.Movies))
	for i, m := range v.Movies {
		items[i] = movieItem{movie: m, titleWidth: titleWidth}
	}
	v.list.SetItems(items)
}
