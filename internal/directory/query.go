package directory

import (
	"fmt"
	"strings"

	"msgdesk/internal/domain"
)

// StatusFilter restricts a query to one status, or to none
type StatusFilter int

const (
	FilterAll StatusFilter = iota
	FilterNew
	FilterRead
	FilterReplied
)

// Filters lists every filter in cycling order
var Filters = []StatusFilter{FilterAll, FilterNew, FilterRead, FilterReplied}

func (f StatusFilter) String() string {
	switch f {
	case FilterAll:
		return "all"
	case FilterNew:
		return "new"
	case FilterRead:
		return "read"
	case FilterReplied:
		return "replied"
	default:
		return fmt.Sprintf("filter(%d)", int(f))
	}
}

// FilterFor returns the filter that admits only the given status
func FilterFor(status domain.Status) StatusFilter {
	switch status {
	case domain.StatusRead:
		return FilterRead
	case domain.StatusReplied:
		return FilterReplied
	default:
		return FilterNew
	}
}

// ParseStatusFilter converts "all", "new", "read" or "replied" to a filter.
// The empty string means all.
func ParseStatusFilter(text string) (StatusFilter, error) {
	trimmed := strings.ToLower(strings.TrimSpace(text))
	if trimmed == "" || trimmed == "all" {
		return FilterAll, nil
	}
	status, err := domain.ParseStatus(trimmed)
	if err != nil {
		return FilterAll, fmt.Errorf("filter: %w", err)
	}
	return FilterFor(status), nil
}

// Matches reports whether a message with the given status passes the filter
func (f StatusFilter) Matches(status domain.Status) bool {
	switch f {
	case FilterAll:
		return true
	case FilterNew:
		return status == domain.StatusNew
	case FilterRead:
		return status == domain.StatusRead
	case FilterReplied:
		return status == domain.StatusReplied
	default:
		return false
	}
}

// Next returns the filter after f in cycling order, wrapping around.
// A negative step walks backwards.
func (f StatusFilter) Next(step int) StatusFilter {
	n := len(Filters)
	i := ((int(f)+step)%n + n) % n
	return Filters[i]
}

// QueryEngine derives filtered views over a store
type QueryEngine struct {
	store *Store
}

// NewQueryEngine creates a query engine over store
func NewQueryEngine(store *Store) *QueryEngine {
	return &QueryEngine{store: store}
}

// Store returns the store the engine reads from
func (e *QueryEngine) Store() *Store {
	return e.store
}

// Query returns the messages matching term and filter, in store order.
// The term is matched case-insensitively against name, email and body;
// an empty term matches everything.
func (e *QueryEngine) Query(term string, filter StatusFilter) []domain.Message {
	lowerTerm := strings.ToLower(term)

	matches := make([]domain.Message, 0, len(e.store.messages))
	for _, msg := range e.store.messages {
		if !filter.Matches(msg.Status) {
			continue
		}
		if !MatchesTerm(msg, lowerTerm) {
			continue
		}
		matches = append(matches, msg)
	}
	return matches
}

// MatchesTerm checks a message against an already lower-cased term
func MatchesTerm(msg domain.Message, lowerTerm string) bool {
	if lowerTerm == "" {
		return true
	}
	return strings.Contains(strings.ToLower(msg.Name), lowerTerm) ||
		strings.Contains(strings.ToLower(msg.Email), lowerTerm) ||
		strings.Contains(strings.ToLower(msg.Body), lowerTerm)
}
