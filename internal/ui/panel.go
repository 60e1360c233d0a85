package ui

// BoundsFunc returns the panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel hosts a View and knows its bounds within a layout.
type Panel struct {
	ID     string
	View   View
	Bounds BoundsFunc
}

// Resize applies the panel bounds for the given terminal size to its view,
// if the view can be sized.
func (p Panel) Resize(width, height int) {
	s, ok := p.View.(sizer)
	if !ok || p.Bounds == nil {
		return
	}
	_, _, w, h := p.Bounds(width, height)
	s.SetSize(max(w, 0), max(h, 0))
}
