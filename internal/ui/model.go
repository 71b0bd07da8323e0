package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"msgdesk/internal/config"
	"msgdesk/internal/directory"
	"msgdesk/internal/eventbus"
	"msgdesk/internal/source"
	"msgdesk/internal/ui/input"
	inputtypes "msgdesk/internal/ui/input/types"
	"msgdesk/internal/ui/services/navigation"
	"msgdesk/internal/ui/services/query"
	"msgdesk/internal/ui/services/selection"
	"msgdesk/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	logger *zap.Logger
	config *config.Config
	store  *directory.Store

	width  int
	height int
	help   help.Model

	showStats     bool
	statusMessage string
	statusIsError bool
	searchRestore string // term to restore when search is cancelled
	inPagerMode   bool

	query        *query.Service
	selection    *selection.Service
	navigator    *navigation.Service
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	inputHandler *input.Handler
	pager        *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model over an explicitly constructed query
// engine and selection
func NewModel(cfg *config.Config, engine *directory.QueryEngine, sel *directory.Selection, bus eventbus.EventBus, logger *zap.Logger) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if bus == nil {
		bus = eventbus.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	inputHandler := input.New()
	m := &Model{
		bus:          bus,
		logger:       logger.Named("ui"),
		config:       cfg,
		store:        engine.Store(),
		help:         help.New(),
		showStats:    cfg.UISettings.ShowStats,
		query:        query.NewService(engine, bus, cfg.DefaultFilter()),
		selection:    selection.NewService(sel, bus),
		renderer:     views.NewRenderer(cfg.UISettings.Language),
		helpRenderer: NewHelpRenderer(inputHandler.Keys()),
		inputHandler: inputHandler,
	}
	m.navigator = navigation.NewService(m.query.Count)
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{
			Query:     m.query,
			Selection: m.selection,
			Navigator: m.navigator,
		}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		m.updateViewportHeight()
		if len(cmds) == 0 {
			return m, nil
		}
		return m, tea.Batch(cmds...)

	case pagerMsg:
		if msg.err != nil {
			m.reportError(fmt.Sprintf("%s pager failed", msg.what), msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, tea.ClearScreen

	default:
		return m, m.inputHandler.Update(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.buildViewState())
}

func (m *Model) buildViewState() views.ViewState {
	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Source:         source.Describe(m.config.DataFile),
		Term:           m.query.Term(),
		Filter:         m.query.Filter(),
		Results:        m.query.Results(),
		Cursor:         m.navigator.Cursor(),
		ViewportOffset: m.navigator.ViewportOffset(),
		ViewportHeight: m.navigator.ViewportHeight(),
		Counts:         m.store.Counts(),
		ShowStats:      m.showStats,
		StatusMessage:  m.statusMessage,
		StatusIsError:  m.statusIsError,
		HelpView:       m.help.View(m.inputHandler.Keys()),
	}

	if current, ok := m.selection.Current(); ok {
		state.Selected = current
		state.HasSelection = true
		state.SelectionVisible = m.query.IndexOf(current.ID) >= 0
	}

	if ti := m.inputHandler.TextInput(); ti != nil {
		state.InputMode = m.inputHandler.CurrentModeName()
		state.InputPrompt = m.inputHandler.Prompt()
		state.TextInput = ti.View()
	}
	return state
}

// updateViewportHeight calculates the available height for the message list
func (m *Model) updateViewportHeight() {
	if m.height == 0 {
		return
	}
	// padding (2), title (2), pane borders (2), list header (2), status and help (3), spare (1)
	reserved := 12
	if m.inputHandler.TextInput() != nil {
		reserved++
	}
	if m.showStats {
		reserved++
	}
	m.navigator.SetViewportHeight(m.height - reserved)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigator.Navigate(navigation.Direction(a.Direction))

	case inputtypes.SelectAction:
		msg, ok := m.query.MessageAt(m.navigator.Cursor())
		if !ok {
			return nil
		}
		if err := m.selection.Select(msg.ID); err != nil {
			m.reportError("select failed", err)
			return nil
		}
		m.clearStatus()

	case inputtypes.ClearSelectionAction:
		m.selection.Clear()
		m.clearStatus()

	case inputtypes.BeginTextAction:
		m.searchRestore = m.query.Term()

	case inputtypes.UpdateTextAction:
		m.query.SetTerm(a.Text)
		m.navigator.Clamp()

	case inputtypes.SubmitTextAction:
		m.query.SetTerm(a.Text)
		m.navigator.Clamp()

	case inputtypes.CancelTextAction:
		m.query.SetTerm(m.searchRestore)
		m.navigator.Clamp()

	case inputtypes.SetFilterAction:
		m.query.SetFilter(a.Filter)
		m.navigator.Clamp()

	case inputtypes.CycleFilterAction:
		m.query.CycleFilter(a.Step)
		m.navigator.Clamp()

	case inputtypes.ResetQueryAction:
		m.query.Reset()
		m.navigator.Clamp()

	case inputtypes.ToggleStatsAction:
		m.showStats = !m.showStats

	case inputtypes.OpenMessageAction:
		current, ok := m.selection.Current()
		if !ok {
			m.setStatus("No message selected")
			return nil
		}
		return m.fetchPager("message", m.renderer.RenderMessagePlain(current))

	case inputtypes.ToggleHelpAction:
		return m.fetchPager("help", m.helpRenderer.RenderHelpContent())

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// fetchPager returns a command that shows content in the ov pager,
// pausing rendering while the pager owns the terminal
func (m *Model) fetchPager(what, content string) tea.Cmd {
	if m.program == nil {
		m.reportError(fmt.Sprintf("%s pager failed", what), errNoProgram)
		return nil
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.ShowInPager(content)
		m.program.Send(resumeRenderingMsg{})
		return pagerMsg{what: what, err: err}
	}
}

func (m *Model) setStatus(text string) {
	m.statusMessage = text
	m.statusIsError = false
}

func (m *Model) clearStatus() {
	m.statusMessage = ""
	m.statusIsError = false
}

func (m *Model) reportError(message string, err error) {
	m.statusMessage = fmt.Sprintf("%s: %v", message, err)
	m.statusIsError = true
	m.logger.Warn(message, zap.Error(err))
	m.bus.Publish(eventbus.ErrorEvent{Message: message, Err: err})
}
