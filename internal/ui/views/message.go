package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"msgdesk/internal/domain"
)

// DateLayout is how submission times are shown
const DateLayout = "2006-01-02 15:04"

const (
	dateWidth   = len(DateLayout)
	statusWidth = 10
)

// MessageRenderer handles rendering of message rows
type MessageRenderer struct {
	styles *Styles
	labels Labels
}

// NewMessageRenderer creates a new message renderer
func NewMessageRenderer(styles *Styles, labels Labels) *MessageRenderer {
	return &MessageRenderer{styles: styles, labels: labels}
}

// RenderRow renders one list row: selection marker, sender, date and a
// colored status label. The row under the cursor gets a background.
func (r *MessageRenderer) RenderRow(msg domain.Message, isCursor, isSelected bool, searchTerm string, width int) string {
	bgColor := ""
	if isCursor {
		bgColor = "238"
	}
	base := lipgloss.NewStyle()
	if bgColor != "" {
		base = base.Background(lipgloss.Color(bgColor))
	}

	marker := "  "
	if isSelected {
		marker = r.styles.Selected.Inherit(base).Render("▌ ")
	} else {
		marker = base.Render(marker)
	}

	nameWidth := width - 2 - dateWidth - statusWidth - 2
	if nameWidth < 8 {
		nameWidth = 8
	}
	nameStyle := base.Width(nameWidth)
	if isSelected {
		nameStyle = nameStyle.Bold(true)
	}
	renderedName := nameStyle.Render(r.renderSender(msg, nameWidth, searchTerm, base))

	date := base.Width(dateWidth).Render(FormatDate(msg.SubmittedAt))
	status := StatusStyle(msg.Status).Inherit(base).Width(statusWidth).Render(r.labels.StatusLabel(msg.Status))

	gap := base.Render(" ")
	return marker + renderedName + gap + date + gap + status
}

// renderSender fits the sender name and a dimmed email address into width
// cells. The email is cut before the name is.
func (r *MessageRenderer) renderSender(msg domain.Message, width int, searchTerm string, base lipgloss.Style) string {
	cell := msg.Name
	if msg.Email != "" && msg.Email != msg.Name {
		cell += "  " + msg.Email
	}
	cell = ansi.Truncate(cell, width, "…")

	name, email := cell, ""
	if strings.HasPrefix(cell, msg.Name) {
		name, email = cell[:len(msg.Name)], cell[len(msg.Name):]
	}
	dim := r.styles.Dim.Inherit(base)
	return r.highlight(name, searchTerm, base) + r.highlight(email, searchTerm, dim)
}

func (r *MessageRenderer) highlight(text, term string, base lipgloss.Style) string {
	if text == "" {
		return ""
	}
	if term == "" || !strings.Contains(strings.ToLower(text), strings.ToLower(term)) {
		return base.Render(text)
	}
	return r.highlightMatch(text, term, base)
}

// highlightMatch marks every case-insensitive occurrence of term in text
func (r *MessageRenderer) highlightMatch(text, term string, base lipgloss.Style) string {
	lowerText := strings.ToLower(text)
	lowerTerm := strings.ToLower(term)
	hl := r.styles.Highlight.Inherit(base)

	var b strings.Builder
	for {
		i := strings.Index(lowerText, lowerTerm)
		if i < 0 || len(lowerText) != len(text) {
			b.WriteString(base.Render(text))
			return b.String()
		}
		b.WriteString(base.Render(text[:i]))
		b.WriteString(hl.Render(text[i : i+len(term)]))
		text = text[i+len(term):]
		lowerText = lowerText[i+len(term):]
		if text == "" {
			return b.String()
		}
	}
}
