package source

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"msgdesk/internal/domain"
)

//go:embed seed.toml
var seedTOML string

// TimeLayout is the timestamp format used in message files
const TimeLayout = "2006-01-02 15:04"

type messageFile struct {
	Messages []messageRecord `toml:"messages"`
}

type messageRecord struct {
	ID          int           `toml:"id"`
	Name        string        `toml:"name"`
	Email       string        `toml:"email"`
	Body        string        `toml:"body"`
	SubmittedAt string        `toml:"submitted_at"`
	Status      domain.Status `toml:"status"`
}

// Builtin returns the dataset bundled with the binary
func Builtin() ([]domain.Message, error) {
	messages, err := DecodeTOML(strings.NewReader(seedTOML))
	if err != nil {
		return nil, fmt.Errorf("built-in dataset: %w", err)
	}
	return messages, nil
}

// LoadTOML reads a message file
func LoadTOML(path string) ([]domain.Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapPath(path, err)
	}
	defer f.Close()

	messages, err := DecodeTOML(f)
	if err != nil {
		return nil, wrapPath(path, err)
	}
	return messages, nil
}

// DecodeTOML decodes [[messages]] tables from r, in file order
func DecodeTOML(r io.Reader) ([]domain.Message, error) {
	var file messageFile
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}

	messages := make([]domain.Message, 0, len(file.Messages))
	for i, rec := range file.Messages {
		submittedAt, err := parseTimestamp(rec.SubmittedAt)
		if err != nil {
			return nil, fmt.Errorf("message #%d (id %d): %w", i+1, rec.ID, err)
		}
		messages = append(messages, domain.Message{
			ID:          rec.ID,
			Name:        rec.Name,
			Email:       rec.Email,
			Body:        rec.Body,
			SubmittedAt: submittedAt,
			Status:      rec.Status,
		})
	}
	return messages, nil
}

// EncodeTOML writes messages in the message file format
func EncodeTOML(w io.Writer, messages []domain.Message) error {
	file := messageFile{Messages: make([]messageRecord, 0, len(messages))}
	for _, msg := range messages {
		rec := messageRecord{
			ID:     msg.ID,
			Name:   msg.Name,
			Email:  msg.Email,
			Body:   msg.Body,
			Status: msg.Status,
		}
		rec.SubmittedAt = formatTimestamp(msg.SubmittedAt)
		file.Messages = append(file.Messages, rec)
	}
	return toml.NewEncoder(w).Encode(file)
}

// formatTimestamp uses TimeLayout for whole minutes in UTC and RFC 3339
// for anything it would lose
func formatTimestamp(t time.Time) string {
	switch {
	case t.IsZero():
		return ""
	case t.Location() == time.UTC && t.Second() == 0 && t.Nanosecond() == 0:
		return t.Format(TimeLayout)
	default:
		return t.Format(time.RFC3339Nano)
	}
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(TimeLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("submitted_at %q: want %q or RFC 3339", s, TimeLayout)
	}
	return t, nil
}
