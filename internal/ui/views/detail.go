package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"msgdesk/internal/domain"
)

// FormatDate renders a submission time, or "-" when unknown
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(DateLayout)
}

// RenderDetail renders the detail pane for the selected message, or the
// empty-state hint when nothing is selected
func (r *Renderer) RenderDetail(state ViewState, width int) string {
	var b strings.Builder
	b.WriteString(r.styles.Header.Render(r.labels.Detail))
	b.WriteString("\n\n")

	if !state.HasSelection {
		b.WriteString(r.styles.Dim.Render(r.labels.EmptyDetail))
		return b.String()
	}

	msg := state.Selected
	if !state.SelectionVisible {
		b.WriteString(r.styles.Filter.Render("(" + r.labels.HiddenByFilter + ")"))
		b.WriteString("\n\n")
	}

	field := func(label, value string) {
		b.WriteString(r.styles.Label.Render(label))
		b.WriteString("\n")
		b.WriteString(value)
		b.WriteString("\n\n")
	}
	b.WriteString(StatusStyle(msg.Status).Bold(true).Render(r.labels.StatusLabel(msg.Status)))
	b.WriteString("\n\n")
	field(r.labels.Name, msg.Name)
	field(r.labels.Email, msg.Email)
	field(r.labels.Date, FormatDate(msg.SubmittedAt))

	b.WriteString(r.styles.Label.Render(r.labels.Message))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Render(msg.Body))
	return b.String()
}

// RenderMessagePlain renders a message for the pager
func (r *Renderer) RenderMessagePlain(msg domain.Message) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s <%s>\n", r.labels.Name, msg.Name, msg.Email)
	fmt.Fprintf(&b, "%s: %s\n", r.labels.Date, FormatDate(msg.SubmittedAt))
	fmt.Fprintf(&b, "%s\n\n", StatusStyle(msg.Status).Render(r.labels.StatusLabel(msg.Status)))
	b.WriteString(msg.Body)
	b.WriteString("\n")
	return b.String()
}
