package query

import (
	"msgdesk/internal/directory"
	"msgdesk/internal/domain"
	"msgdesk/internal/eventbus"
)

// Service owns the search term and status filter shown in the list pane.
// Every change re-runs the query against the engine and publishes a
// QueryChangedEvent.
type Service struct {
	engine *directory.QueryEngine
	bus    eventbus.EventBus
	state  *State
}

// NewService creates a query service and runs the initial query
func NewService(engine *directory.QueryEngine, bus eventbus.EventBus, filter directory.StatusFilter) *Service {
	if bus == nil {
		bus = eventbus.Nop{}
	}
	s := &Service{
		engine: engine,
		bus:    bus,
		state:  &State{Filter: filter},
	}
	s.state.Results = engine.Query("", filter)
	return s
}

// Term returns the current search term
func (s *Service) Term() string {
	return s.state.Term
}

// Filter returns the current status filter
func (s *Service) Filter() directory.StatusFilter {
	return s.state.Filter
}

// Results returns the messages matching the current query
func (s *Service) Results() []domain.Message {
	return s.state.Results
}

// Count returns the number of matching messages
func (s *Service) Count() int {
	return len(s.state.Results)
}

// MessageAt returns the result at index
func (s *Service) MessageAt(index int) (domain.Message, bool) {
	if index < 0 || index >= len(s.state.Results) {
		return domain.Message{}, false
	}
	return s.state.Results[index], true
}

// IndexOf returns the result index of id, or -1
func (s *Service) IndexOf(id int) int {
	for i, msg := range s.state.Results {
		if msg.ID == id {
			return i
		}
	}
	return -1
}

// SetTerm replaces the search term
func (s *Service) SetTerm(term string) {
	s.state.Term = term
	s.refresh()
}

// SetFilter replaces the status filter
func (s *Service) SetFilter(filter directory.StatusFilter) {
	s.state.Filter = filter
	s.refresh()
}

// CycleFilter moves the status filter step positions through the cycle
func (s *Service) CycleFilter(step int) {
	s.SetFilter(s.state.Filter.Next(step))
}

// Reset clears the term and shows every status
func (s *Service) Reset() {
	s.state.Term = ""
	s.state.Filter = directory.FilterAll
	s.refresh()
}

func (s *Service) refresh() {
	s.state.Results = s.engine.Query(s.state.Term, s.state.Filter)
	s.bus.Publish(eventbus.QueryChangedEvent{
		Term:        s.state.Term,
		Filter:      s.state.Filter.String(),
		ResultCount: len(s.state.Results),
	})
}
