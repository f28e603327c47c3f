package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Genres is a list of genre names persisted as a JSON array in a text
// column. A NULL or empty column reads back as an empty list.
type Genres []string

// Value implements driver.Valuer. A nil list is written as "[]".
func (g Genres) Value() (driver.Value, error) {
	if g == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(g))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (g *Genres) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*g = Genres{}
		return nil
	case []byte:
		return g.decode(v)
	case string:
		return g.decode([]byte(v))
	default:
		return fmt.Errorf("genres: unsupported column type %T", src)
	}
}

func (g *Genres) decode(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		*g = Genres{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(b, &out); err != nil {
		return fmt.Errorf("genres: malformed column %q: %w", b, err)
	}
	if out == nil {
		out = []string{}
	}
	*g = out
	return nil
}
