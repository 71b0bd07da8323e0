package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msgdesk/internal/directory"
	"msgdesk/internal/ui/input/types"
)

type fakeContext struct {
	index, total int
	selected     bool
	term         string
}

func (c fakeContext) CurrentIndex() int  { return c.index }
func (c fakeContext) TotalItems() int    { return c.total }
func (c fakeContext) HasSelection() bool { return c.selected }
func (c fakeContext) SearchTerm() string { return c.term }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNormalModeBindings(t *testing.T) {
	ctx := fakeContext{total: 3, selected: true}

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want types.Action
	}{
		{"j", runes("j"), types.NavigateAction{Direction: "down"}},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, types.NavigateAction{Direction: "up"}},
		{"G", runes("G"), types.NavigateAction{Direction: "end"}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, types.SelectAction{}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, types.SelectAction{}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, types.ClearSelectionAction{}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, types.CycleFilterAction{Step: 1}},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, types.CycleFilterAction{Step: -1}},
		{"2", runes("2"), types.SetFilterAction{Filter: directory.FilterRead}},
		{"x", runes("x"), types.ResetQueryAction{}},
		{"v", runes("v"), types.OpenMessageAction{}},
		{"s", runes("s"), types.ToggleStatsAction{}},
		{"?", runes("?"), types.ToggleHelpAction{}},
		{"q", runes("q"), types.QuitAction{}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, types.QuitAction{Force: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New()
			actions, _ := h.HandleKey(tt.msg, ctx)
			require.Len(t, actions, 1)
			assert.Equal(t, tt.want, actions[0])
		})
	}
}

func TestUnboundKeyIsIgnored(t *testing.T) {
	h := New()
	actions, cmd := h.HandleKey(runes("z"), fakeContext{})
	assert.Empty(t, actions)
	assert.Nil(t, cmd)
}

func TestSelectWithNoResultsDoesNothing(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, fakeContext{total: 0})
	assert.Empty(t, actions)
}

func TestSearchModeFlow(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(runes("/"), fakeContext{term: "bo"})
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.Equal(t, []types.Action{types.BeginTextAction{Mode: types.ModeSearch}}, actions)
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "bo", h.TextInput().Value(), "search starts from the active term")

	actions, _ = h.HandleKey(runes("b"), fakeContext{})
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "bob"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, fakeContext{})
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "bob", Mode: types.ModeSearch}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestSearchModeCancel(t *testing.T) {
	h := New()
	h.HandleKey(runes("/"), fakeContext{})
	h.HandleKey(runes("q"), fakeContext{})

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, fakeContext{})
	assert.Equal(t, []types.Action{types.CancelTextAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}
