package input

import (
	"msgdesk/internal/ui/services/navigation"
	"msgdesk/internal/ui/services/query"
	"msgdesk/internal/ui/services/selection"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Query     *query.Service
	Selection *selection.Service
	Navigator *navigation.Service
}

// CurrentIndex returns the cursor position
func (c *ModelContext) CurrentIndex() int {
	return c.Navigator.Cursor()
}

// TotalItems returns the number of messages in the result set
func (c *ModelContext) TotalItems() int {
	return c.Query.Count()
}

// HasSelection returns true if a message is selected
func (c *ModelContext) HasSelection() bool {
	return c.Selection.HasSelection()
}

// SearchTerm returns the active search term
func (c *ModelContext) SearchTerm() string {
	return c.Query.Term()
}
