package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"msgdesk/internal/directory"
	"msgdesk/internal/domain"
	"msgdesk/internal/ui/services/navigation"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width            int
	Height           int
	Source           string
	Term             string
	Filter           directory.StatusFilter
	Results          []domain.Message
	Cursor           int
	ViewportOffset   int
	ViewportHeight   int
	Selected         domain.Message
	HasSelection     bool
	SelectionVisible bool
	Counts           directory.StatusCounts
	ShowStats        bool
	InputMode        string
	InputPrompt      string
	TextInput        string
	StatusMessage    string
	StatusIsError    bool
	HelpView         string
}

// Renderer handles all view rendering
type Renderer struct {
	styles    *Styles
	labels    Labels
	msgRender *MessageRenderer
}

// NewRenderer creates a renderer with labels for the given language tag
func NewRenderer(lang string) *Renderer {
	styles := NewStyles()
	labels := LabelsFor(lang)
	return &Renderer{
		styles:    styles,
		labels:    labels,
		msgRender: NewMessageRenderer(styles, labels),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	innerWidth := termWidth - 4 // main container padding

	// Title with source and active filter on the right
	logo := r.styles.Title.Render("msgdesk")
	right := r.styles.Dim.Render(state.Source)
	if state.Filter != directory.FilterAll {
		right += "  " + r.styles.Filter.Render(fmt.Sprintf("[%s]", r.labels.FilterLabel(state.Filter)))
	}
	if padding := innerWidth - lipgloss.Width(logo) - lipgloss.Width(right); padding > 0 {
		content.WriteString(logo + strings.Repeat(" ", padding) + right)
	} else {
		content.WriteString(logo + "  " + right)
	}
	content.WriteString("\n\n")

	if state.InputMode != "" {
		content.WriteString(r.styles.Search.Render(state.InputPrompt))
		content.WriteString(state.TextInput)
		content.WriteString("\n")
	}

	if state.ShowStats {
		content.WriteString(r.RenderStats(state.Counts))
		content.WriteString("\n")
	}

	listWidth := innerWidth * 45 / 100
	detailWidth := innerWidth - listWidth
	paneHeight := state.ViewportHeight + 2 // header line and blank

	list := r.styles.Pane.Width(listWidth - 2).Height(paneHeight).Render(r.renderList(state, listWidth-4))
	detail := r.styles.Pane.Width(detailWidth - 2).Height(paneHeight).Render(r.RenderDetail(state, detailWidth-4))
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, detail))

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = style.Foreground(lipgloss.Color("203"))
		}
		content.WriteString("\n")
		content.WriteString(style.Render(state.StatusMessage))
	}

	if state.HelpView != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderList renders the header and the visible window of result rows
func (r *Renderer) renderList(state ViewState, width int) string {
	header := fmt.Sprintf("%s (%d)", r.labels.Messages, len(state.Results))
	if state.Term != "" {
		header += "  " + r.styles.Search.Render(fmt.Sprintf("%s: %q", r.labels.Search, state.Term))
	}

	lines := []string{r.styles.Header.Render(header), ""}
	if len(state.Results) == 0 {
		lines = append(lines, r.styles.Dim.Render(r.labels.NoResults))
		return strings.Join(lines, "\n")
	}

	offset := state.ViewportOffset
	height := navigation.VisibleRows(len(state.Results), offset, state.ViewportHeight)
	needsTop := offset > 0
	needsBottom := len(state.Results) > offset+state.ViewportHeight

	if needsTop {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", offset)))
	}
	end := offset + height
	if end > len(state.Results) {
		end = len(state.Results)
	}
	selectedID := -1
	if state.HasSelection {
		selectedID = state.Selected.ID
	}
	for i := offset; i < end; i++ {
		msg := state.Results[i]
		lines = append(lines, r.msgRender.RenderRow(msg, i == state.Cursor, state.HasSelection && msg.ID == selectedID, state.Term, width))
	}
	if needsBottom {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", len(state.Results)-end)))
	}

	return strings.Join(lines, "\n")
}
