package selection

import (
	"msgdesk/internal/directory"
	"msgdesk/internal/domain"
	"msgdesk/internal/eventbus"
)

// Service wraps the directory selection and announces changes on the bus
type Service struct {
	selection *directory.Selection
	bus       eventbus.EventBus
}

// NewService creates a new selection service
func NewService(sel *directory.Selection, bus eventbus.EventBus) *Service {
	if bus == nil {
		bus = eventbus.Nop{}
	}
	return &Service{selection: sel, bus: bus}
}

// Select makes id the current message. An unknown id leaves the
// previous selection in place and returns an error wrapping
// domain.ErrNotFound.
func (s *Service) Select(id int) error {
	oldID, hadPrevious := s.selection.SelectedID()
	if err := s.selection.Select(id); err != nil {
		return err
	}
	if !hadPrevious || oldID != id {
		s.bus.Publish(eventbus.SelectionChangedEvent{OldID: oldID, NewID: id, HadPrevious: hadPrevious})
	}
	return nil
}

// Clear drops the selection
func (s *Service) Clear() {
	id, ok := s.selection.SelectedID()
	if !ok {
		return
	}
	s.selection.Clear()
	s.bus.Publish(eventbus.SelectionClearedEvent{PreviousID: id})
}

// Current returns the selected message
func (s *Service) Current() (domain.Message, bool) {
	return s.selection.Current()
}

// SelectedID returns the selected id
func (s *Service) SelectedID() (int, bool) {
	return s.selection.SelectedID()
}

// IsSelected reports whether id is the current selection
func (s *Service) IsSelected(id int) bool {
	selected, ok := s.selection.SelectedID()
	return ok && selected == id
}

// HasSelection returns true if a message is selected
func (s *Service) HasSelection() bool {
	_, ok := s.selection.SelectedID()
	return ok
}
