package model

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Timestamp is an instant stored as RFC 3339 text in UTC. Keeping the
// column textual lets the canonical form take part in the shows primary
// key on every supported database.
type Timestamp struct {
	time.Time
}

// ErrInvalidTimestamp is returned when text cannot be parsed by any of the
// accepted layouts.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Layouts accepted from forms and from stored rows. Values without a zone
// are read as UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses s using the first matching accepted layout.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t.UTC()}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}

// String returns the canonical stored form.
func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}

// Value implements driver.Valuer.
func (t Timestamp) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan implements sql.Scanner.
func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		t.Time = v.UTC()
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	default:
		return fmt.Errorf("timestamp: unsupported column type %T", src)
	}
}

func (t *Timestamp) parse(s string) error {
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
