package directory

import (
	"fmt"

	"msgdesk/internal/domain"
)

// Selection tracks at most one currently viewed message.
// It is independent of any query: the store is the source of truth.
type Selection struct {
	store      *Store
	selectedID int
	hasID      bool
}

// NewSelection creates an empty selection over store
func NewSelection(store *Store) *Selection {
	return &Selection{store: store}
}

// Select makes id the current message. An unknown id fails with
// domain.ErrNotFound and the previous selection is kept.
func (s *Selection) Select(id int) error {
	if _, err := s.store.Get(id); err != nil {
		return fmt.Errorf("select: %w", err)
	}
	s.selectedID = id
	s.hasID = true
	return nil
}

// Current returns the selected message, or false if nothing is selected
func (s *Selection) Current() (domain.Message, bool) {
	if !s.hasID {
		return domain.Message{}, false
	}
	msg, err := s.store.Get(s.selectedID)
	if err != nil {
		return domain.Message{}, false
	}
	return msg, true
}

// SelectedID returns the selected id, or false if nothing is selected
func (s *Selection) SelectedID() (int, bool) {
	return s.selectedID, s.hasID
}

// Clear unsets the selection
func (s *Selection) Clear() {
	s.selectedID = 0
	s.hasID = false
}
