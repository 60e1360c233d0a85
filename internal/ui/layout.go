package ui

// Panel IDs, also the focus order.
const (
	PanelInput = "input"
	PanelList  = "list"
)

// Rows reserved outside the panels.
const (
	headerHeight = 2 // app title + blank line
	inputHeight  = 3 // bordered single-line input
	footerHeight = 3 // status line + help bar + spacing
)

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string // Tab order for focus
}

// movieLayout stacks the input above the list.
type movieLayout struct {
	input View
	list  View
}

// Ensure movieLayout implements Layout.
var _ Layout = movieLayout{}

func (l movieLayout) Panels() []Panel {
	return []Panel{
		{
			ID:   PanelInput,
			View: l.input,
			Bounds: func(width, height int) (int, int, int, int) {
				return 0, headerHeight, width, inputHeight
			},
		},
		{
			ID:   PanelList,
			View: l.list,
			Bounds: func(width, height int) (int, int, int, int) {
				y := headerHeight + inputHeight
				return 0, y, width, height - y - footerHeight
			},
		},
	}
}

func (l movieLayout) FocusOrder() []string {
	return []string{PanelInput, PanelList}
}
