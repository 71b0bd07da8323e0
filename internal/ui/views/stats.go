package views

import (
	"fmt"
	"strings"

	"msgdesk/internal/directory"
	"msgdesk/internal/domain"
)

// RenderStats renders the whole-store status counts on one line
func (r *Renderer) RenderStats(counts directory.StatusCounts) string {
	parts := []string{
		fmt.Sprintf("%s %d", r.labels.Total, counts.Total),
	}
	for _, status := range domain.Statuses {
		label := fmt.Sprintf("%s %d", r.labels.StatsStatus[status], counts.ByStatus[status])
		parts = append(parts, StatusStyle(status).Render(label))
	}
	return r.styles.Header.Render(r.labels.Stats) + "  " + strings.Join(parts, r.styles.Dim.Render(" • "))
}
