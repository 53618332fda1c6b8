package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repogrip/internal/ui/input/types"
)

func TestHandleKeyMapsBindings(t *testing.T) {
	h := New()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want types.Action
	}{
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, types.FocusNextAction{}},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, types.FocusPrevAction{}},
		{"ctrl+n", tea.KeyMsg{Type: tea.KeyCtrlN}, types.AppendPlaceholderAction{}},
		{"ctrl+r", tea.KeyMsg{Type: tea.KeyCtrlR}, types.RefreshAction{}},
		{"ctrl+l", tea.KeyMsg{Type: tea.KeyCtrlL}, types.ClearFilterAction{}},
		{"ctrl+y", tea.KeyMsg{Type: tea.KeyCtrlY}, types.CopyListAction{}},
		{"ctrl+o", tea.KeyMsg{Type: tea.KeyCtrlO}, types.OpenPagerAction{}},
		{"f1", tea.KeyMsg{Type: tea.KeyF1}, types.ToggleHelpAction{}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, types.QuitAction{}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, types.QuitAction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions, consumed := h.HandleKey(tt.msg)
			require.True(t, consumed)
			require.Len(t, actions, 1)
			assert.Equal(t, tt.want, actions[0])
		})
	}
}

func TestHandleKeyLeavesTypingToInputs(t *testing.T) {
	h := New()

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'a'}},
		{Type: tea.KeyRunes, Runes: []rune{'?'}},
		{Type: tea.KeyBackspace},
		{Type: tea.KeySpace, Runes: []rune{' '}},
	} {
		actions, consumed := h.HandleKey(msg)
		assert.False(t, consumed, msg.String())
		assert.Nil(t, actions)
	}
}

func TestKeyMapHelp(t *testing.T) {
	k := DefaultKeyMap()
	assert.NotEmpty(t, k.ShortHelp())
	assert.Len(t, k.FullHelp(), 3)
}
