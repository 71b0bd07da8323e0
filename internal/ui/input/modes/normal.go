package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"msgdesk/internal/directory"
	"msgdesk/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys

	switch {
	case msg.Type == tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, k.Up):
		return navigate("up"), true
	case key.Matches(msg, k.Down):
		return navigate("down"), true
	case key.Matches(msg, k.PageUp):
		return navigate("pageup"), true
	case key.Matches(msg, k.PageDown):
		return navigate("pagedown"), true
	case key.Matches(msg, k.Home):
		return navigate("home"), true
	case key.Matches(msg, k.End):
		return navigate("end"), true

	case key.Matches(msg, k.Select):
		if ctx.TotalItems() == 0 {
			return nil, true
		}
		return []types.Action{types.SelectAction{}}, true

	case key.Matches(msg, k.Clear):
		if ctx.HasSelection() {
			return []types.Action{types.ClearSelectionAction{}}, true
		}
		return nil, true

	case key.Matches(msg, k.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.SearchTerm()}}, true

	case key.Matches(msg, k.NextFilter):
		return []types.Action{types.CycleFilterAction{Step: 1}}, true
	case key.Matches(msg, k.PrevFilter):
		return []types.Action{types.CycleFilterAction{Step: -1}}, true
	case key.Matches(msg, k.SetFilter):
		// keys 0-3 index Filters directly
		i := int(msg.String()[0] - '0')
		return []types.Action{types.SetFilterAction{Filter: directory.Filters[i]}}, true
	case key.Matches(msg, k.Reset):
		return []types.Action{types.ResetQueryAction{}}, true

	case key.Matches(msg, k.Open):
		return []types.Action{types.OpenMessageAction{}}, true
	case key.Matches(msg, k.Stats):
		return []types.Action{types.ToggleStatsAction{}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}

func navigate(direction string) []types.Action {
	return []types.Action{types.NavigateAction{Direction: direction}}
}
