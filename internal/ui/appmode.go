package ui

// AppMode says which panel has focus. Keybind hints are filtered by it.
type AppMode int

const (
	ModeInput AppMode = iota
	ModeList
)

func (m AppMode) String() string {
	switch m {
	case ModeInput:
		return "Input"
	case ModeList:
		return "List"
	default:
		return "Unknown"
	}
}

// modeForPanel maps a focused panel ID to its mode.
func modeForPanel(id string) AppMode {
	if id == PanelList {
		return ModeList
	}
	return ModeInput
}
