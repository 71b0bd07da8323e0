// Package directory holds the message directory: an immutable message store,
// an order-preserving query engine over it and a single-message selection.
//
// Nothing in this package performs I/O or starts goroutines. Hosts build a
// Store once from whatever source they like and hand it to a QueryEngine and
// a Selection.
package directory

import (
	"fmt"

	"msgdesk/internal/domain"
)

// Store is an immutable, ordered collection of messages
type Store struct {
	messages []domain.Message
	index    map[int]int // id -> position in messages
}

// StatusCounts holds per-status totals over the whole store
type StatusCounts struct {
	Total    int
	ByStatus map[domain.Status]int
}

// NewStore builds a store from messages, keeping their order.
// It fails if two messages share an id or a status is out of range.
func NewStore(messages []domain.Message) (*Store, error) {
	s := &Store{
		messages: make([]domain.Message, len(messages)),
		index:    make(map[int]int, len(messages)),
	}
	copy(s.messages, messages)

	for i, msg := range s.messages {
		if !msg.Status.Valid() {
			return nil, fmt.Errorf("message %d: %w: %d", msg.ID, domain.ErrInvalidStatus, int(msg.Status))
		}
		if _, exists := s.index[msg.ID]; exists {
			return nil, fmt.Errorf("%w: %d", domain.ErrDuplicateID, msg.ID)
		}
		s.index[msg.ID] = i
	}

	return s, nil
}

// All returns every message in load order
func (s *Store) All() []domain.Message {
	result := make([]domain.Message, len(s.messages))
	copy(result, s.messages)
	return result
}

// Get returns the message with the given id
func (s *Store) Get(id int) (domain.Message, error) {
	i, ok := s.index[id]
	if !ok {
		return domain.Message{}, fmt.Errorf("id %d: %w", id, domain.ErrNotFound)
	}
	return s.messages[i], nil
}

// Len returns the number of messages
func (s *Store) Len() int {
	return len(s.messages)
}

// Counts tallies messages per status
func (s *Store) Counts() StatusCounts {
	counts := StatusCounts{
		Total:    len(s.messages),
		ByStatus: make(map[domain.Status]int, len(domain.Statuses)),
	}
	for _, status := range domain.Statuses {
		counts.ByStatus[status] = 0
	}
	for _, msg := range s.messages {
		counts.ByStatus[msg.Status]++
	}
	return counts
}
