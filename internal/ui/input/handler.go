package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"repogrip/internal/ui/input/types"
)

// Handler turns key presses into actions. Keys it does not consume belong
// to the focused text input.
type Handler struct {
	keys KeyMap
}

func New() *Handler {
	return &Handler{keys: DefaultKeyMap()}
}

// Keys returns the active key map
func (h *Handler) Keys() KeyMap {
	return h.keys
}

// HandleKey returns the actions for msg and whether the key was consumed
func (h *Handler) HandleKey(msg tea.KeyMsg) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, h.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, h.keys.NextField):
		return []types.Action{types.FocusNextAction{}}, true
	case key.Matches(msg, h.keys.PrevField):
		return []types.Action{types.FocusPrevAction{}}, true
	case key.Matches(msg, h.keys.Append):
		return []types.Action{types.AppendPlaceholderAction{}}, true
	case key.Matches(msg, h.keys.Refresh):
		return []types.Action{types.RefreshAction{}}, true
	case key.Matches(msg, h.keys.ClearFilter):
		return []types.Action{types.ClearFilterAction{}}, true
	case key.Matches(msg, h.keys.Copy):
		return []types.Action{types.CopyListAction{}}, true
	case key.Matches(msg, h.keys.Pager):
		return []types.Action{types.OpenPagerAction{}}, true
	case key.Matches(msg, h.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	default:
		return nil, false
	}
}
