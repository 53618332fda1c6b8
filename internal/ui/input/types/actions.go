package types

// Focus actions
type FocusNextAction struct{}

func (a FocusNextAction) Type() string { return "focus_next" }

type FocusPrevAction struct{}

func (a FocusPrevAction) Type() string { return "focus_prev" }

// List actions
type AppendPlaceholderAction struct{}

func (a AppendPlaceholderAction) Type() string { return "append_placeholder" }

// RefreshAction re-issues the fetch for the current user
type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

// ClearFilterAction empties the filter input
type ClearFilterAction struct{}

func (a ClearFilterAction) Type() string { return "clear_filter" }

// CopyListAction copies the visible list to the clipboard
type CopyListAction struct{}

func (a CopyListAction) Type() string { return "copy_list" }

// View actions
type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// Application actions
type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
