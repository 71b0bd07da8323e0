package domain

import (
	"fmt"
	"strings"
	"time"
)

// Message is a single contact-form submission
type Message struct {
	ID          int
	Name        string
	Email       string
	Body        string
	SubmittedAt time.Time
	Status      Status
}

// Status is the lifecycle tag of a message
type Status int

const (
	StatusNew Status = iota
	StatusRead
	StatusReplied
)

// Statuses lists every status in display order
var Statuses = []Status{StatusNew, StatusRead, StatusReplied}

func (s Status) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusRead:
		return "read"
	case StatusReplied:
		return "replied"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	return s >= StatusNew && s <= StatusReplied
}

// ParseStatus converts "new", "read" or "replied" (any case) to a Status
func ParseStatus(text string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "new":
		return StatusNew, nil
	case "read":
		return StatusRead, nil
	case "replied":
		return StatusReplied, nil
	}
	return StatusNew, fmt.Errorf("%w: %q", ErrInvalidStatus, text)
}

// MarshalText encodes the status by name
func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name; empty text means new
func (s *Status) UnmarshalText(text []byte) error {
	if len(strings.TrimSpace(string(text))) == 0 {
		*s = StatusNew
		return nil
	}
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
