package source

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"os"
	"strings"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-mbox"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"msgdesk/internal/domain"
)

var wordDecoder = &mime.WordDecoder{CharsetReader: charsetReader}

// LoadMbox reads a mailbox file
func LoadMbox(path string) ([]domain.Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapPath(path, err)
	}
	defer f.Close()

	messages, err := ReadMbox(f)
	if err != nil {
		return nil, wrapPath(path, err)
	}
	return messages, nil
}

// ReadMbox parses every message in an mbox stream. A message's id is its
// 1-based position in the file, deleted messages included. Messages
// flagged \Deleted are skipped.
func ReadMbox(r io.Reader) ([]domain.Message, error) {
	reader := mbox.NewReader(r)

	var messages []domain.Message
	for position := 1; ; position++ {
		raw, err := reader.NextMessage()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", position, err)
		}

		msg, err := mail.ReadMessage(raw)
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", position, err)
		}

		flags := mboxFlags(msg.Header)
		if hasFlag(flags, imap.DeletedFlag) {
			continue
		}

		name, email := parseFrom(msg.Header.Get("From"))
		body, err := textBody(msg)
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", position, err)
		}

		messages = append(messages, domain.Message{
			ID:          position,
			Name:        name,
			Email:       email,
			Body:        strings.TrimSpace(body),
			SubmittedAt: parseDate(msg.Header.Get("Date")),
			Status:      statusFromFlags(flags),
		})
	}
	return messages, nil
}

// mboxFlags maps the Status/X-Status header letters written by mail
// clients to IMAP system flags
func mboxFlags(header mail.Header) []string {
	var flags []string
	letters := header.Get("Status") + header.Get("X-Status")
	for _, c := range letters {
		switch c {
		case 'R':
			flags = append(flags, imap.SeenFlag)
		case 'A':
			flags = append(flags, imap.AnsweredFlag)
		case 'D':
			flags = append(flags, imap.DeletedFlag)
		case 'F':
			flags = append(flags, imap.FlaggedFlag)
		case 'T':
			flags = append(flags, imap.DraftFlag)
		}
	}
	return flags
}

func hasFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if imap.CanonicalFlag(f) == flag {
			return true
		}
	}
	return false
}

func statusFromFlags(flags []string) domain.Status {
	switch {
	case hasFlag(flags, imap.AnsweredFlag):
		return domain.StatusReplied
	case hasFlag(flags, imap.SeenFlag):
		return domain.StatusRead
	default:
		return domain.StatusNew
	}
}

func parseFrom(header string) (name, email string) {
	if header == "" {
		return "", ""
	}
	parser := mail.AddressParser{WordDecoder: wordDecoder}
	addr, err := parser.Parse(header)
	if err != nil {
		if dec, e := wordDecoder.DecodeHeader(header); e == nil {
			return strings.TrimSpace(dec), ""
		}
		return strings.TrimSpace(header), ""
	}
	name = addr.Name
	if name == "" {
		name = addr.Address
	}
	return name, addr.Address
}

// parseDate tries the common Date header formats; failure yields the zero time
func parseDate(dateStr string) time.Time {
	if dateStr == "" {
		return time.Time{}
	}
	if t, err := mail.ParseDate(dateStr); err == nil {
		return t
	}
	layouts := []string{
		time.RFC1123Z,
		time.RFC1123,
		time.RFC822Z,
		time.RFC822,
		time.RFC850,
		time.RFC3339,
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, dateStr); err == nil {
			return t
		}
	}
	return time.Time{}
}

// textBody returns the first text/plain part, falling back to the first
// text/html part when no plain text exists
func textBody(msg *mail.Message) (string, error) {
	var plain, html string
	var walk func(header headerGetter, body io.Reader, depth int) error
	walk = func(header headerGetter, body io.Reader, depth int) error {
		if depth > 8 {
			return nil
		}
		ctype, params, err := mime.ParseMediaType(header.Get("Content-Type"))
		if err != nil || (strings.HasPrefix(ctype, "multipart/") && params["boundary"] == "") {
			ctype, params = "text/plain", nil
		}

		if strings.HasPrefix(ctype, "multipart/") {
			mr := multipart.NewReader(body, params["boundary"])
			for {
				part, err := mr.NextPart()
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return fmt.Errorf("multipart body: %w", err)
				}
				if err := walk(part.Header, part, depth+1); err != nil {
					return err
				}
			}
		}

		if disp, _, err := mime.ParseMediaType(header.Get("Content-Disposition")); err == nil && disp == "attachment" {
			return nil
		}
		if ctype != "text/plain" && ctype != "text/html" {
			return nil
		}
		if (ctype == "text/plain" && plain != "") || (ctype == "text/html" && html != "") {
			return nil
		}

		text, err := decodePart(header, body, params["charset"])
		if err != nil {
			return err
		}
		if ctype == "text/plain" {
			plain = text
		} else {
			html = text
		}
		return nil
	}

	if err := walk(msg.Header, msg.Body, 0); err != nil {
		return "", err
	}
	if plain != "" {
		return plain, nil
	}
	return html, nil
}

// headerGetter is satisfied by mail.Header and textproto.MIMEHeader
type headerGetter interface {
	Get(string) string
}

func decodePart(header headerGetter, body io.Reader, charset string) (string, error) {
	reader := body
	switch strings.ToLower(strings.TrimSpace(header.Get("Content-Transfer-Encoding"))) {
	case "base64":
		reader = base64.NewDecoder(base64.StdEncoding, body)
	case "quoted-printable":
		reader = quotedprintable.NewReader(body)
	}

	decoded, err := charsetReader(charset, reader)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(decoded)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(data), nil
}

// charsetReader wraps input with a decoder for charset; unknown charsets
// pass through unchanged
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	charset = strings.ToLower(strings.TrimSpace(charset))
	if charset == "" || charset == "utf-8" || charset == "us-ascii" {
		return input, nil
	}
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return input, nil
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}
