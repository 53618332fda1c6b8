package state

// Focus identifies which text input receives keystrokes
type Focus int

const (
	FocusUser Focus = iota
	FocusFilter
	focusCount
)

// String returns the label used in the view
func (f Focus) String() string {
	switch f {
	case FocusUser:
		return "user"
	case FocusFilter:
		return "filter"
	default:
		return "unknown"
	}
}

// AppState contains the UI state that is not owned by the list store
type AppState struct {
	Focus Focus

	// UI state
	ShowHelp      bool
	StatusMessage string // status bar message
	StatusIsError bool
	PagerOpen     bool

	// Counters surfaced in the status line
	ListChanges   int
	FetchFailures int
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{Focus: FocusUser}
}

// NextFocus moves focus forward, wrapping around
func (s *AppState) NextFocus() {
	s.Focus = (s.Focus + 1) % focusCount
}

// PrevFocus moves focus backward, wrapping around
func (s *AppState) PrevFocus() {
	s.Focus = (s.Focus + focusCount - 1) % focusCount
}

// SetStatus replaces the status bar message
func (s *AppState) SetStatus(msg string, isError bool) {
	s.StatusMessage = msg
	s.StatusIsError = isError
}

// ClearStatus clears the status bar message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}
