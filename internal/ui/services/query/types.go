package query

import (
	"msgdesk/internal/directory"
	"msgdesk/internal/domain"
)

// State holds the active query and its last result set
type State struct {
	Term    string
	Filter  directory.StatusFilter
	Results []domain.Message
}
