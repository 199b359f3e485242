package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/renoboard/internal/domain"
)

// timestampLayout keeps sub-second precision so Version sees back-to-back writes.
const timestampLayout = time.RFC3339Nano

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// dateValueToValue converts a raw date to its SQLite storage form.
// Absent values are stored as NULL.
func dateValueToValue(d domain.DateValue) any {
	if d.IsAbsent() {
		return nil
	}
	return d.String()
}

// dateValueFromNull reads a raw date column back. Stored instants come back
// as RFC3339 text, which the normalizer parses like any other source string.
func dateValueFromNull(s sql.NullString) domain.DateValue {
	if !s.Valid {
		return domain.DateValue{}
	}
	return domain.DateText(s.String)
}

// nullableString returns nil (SQL NULL) for an empty string.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func encodeMetadata(m map[string]string) (string, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encoding metadata: %w", err)
	}
	return string(b), nil
}

func decodeMetadata(s string) (map[string]string, error) {
	if s == "" || s == "{}" {
		return nil, nil
	}
	var m map[string]string
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, fmt.Errorf("decoding metadata: %w", err)
	}
	return m, nil
}

func parseTimestamp(column, s string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return t, nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
