package types

import "msgdesk/internal/directory"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Selection actions
type SelectAction struct{}

func (a SelectAction) Type() string { return "select" }

type ClearSelectionAction struct{}

func (a ClearSelectionAction) Type() string { return "clear_selection" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type BeginTextAction struct {
	Mode Mode
}

func (a BeginTextAction) Type() string { return "begin_text" }

type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Query actions
type SetFilterAction struct {
	Filter directory.StatusFilter
}

func (a SetFilterAction) Type() string { return "set_filter" }

type CycleFilterAction struct {
	Step int
}

func (a CycleFilterAction) Type() string { return "cycle_filter" }

type ResetQueryAction struct{}

func (a ResetQueryAction) Type() string { return "reset_query" }

// View actions
type OpenMessageAction struct{}

func (a OpenMessageAction) Type() string { return "open_message" }

type ToggleStatsAction struct{}

func (a ToggleStatsAction) Type() string { return "toggle_stats" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
