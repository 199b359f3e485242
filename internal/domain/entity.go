package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateValue is a loosely-typed date as it arrives from a source record: either
// a typed instant or raw text. The zero value means the field was absent.
type DateValue struct {
	Instant *time.Time
	Text    string
}

// DateText wraps a source string.
func DateText(s string) DateValue {
	return DateValue{Text: s}
}

// DateAt wraps a typed instant.
func DateAt(t time.Time) DateValue {
	return DateValue{Instant: &t}
}

// IsAbsent reports whether the field carried nothing at all. A present but
// unparsable value is not absent.
func (d DateValue) IsAbsent() bool {
	return d.Instant == nil && d.Text == ""
}

// String returns the storage form: RFC3339 for instants, the raw text otherwise.
func (d DateValue) String() string {
	if d.Instant != nil {
		return d.Instant.Format(time.RFC3339Nano)
	}
	return d.Text
}

// ScheduledEntity is a ticket, project, task or lead with whatever date
// information its source record had.
type ScheduledEntity struct {
	ID        string
	Kind      EntityKind
	Title     string
	Status    string
	SectionID string

	// Raw date fields, in the shape the source stored them.
	RawStart     DateValue
	RawDate      DateValue
	RawCreated   DateValue
	RawScheduled DateValue
	RawEnd       DateValue

	// PlannedDays is the planned duration used when no explicit end exists.
	// Zero means unknown.
	PlannedDays int

	Metadata map[string]string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the fields a store needs before persisting the entity.
func (e *ScheduledEntity) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if e.Kind != "" && !ValidEntityKinds[string(e.Kind)] {
		return fmt.Errorf("unknown kind %q", e.Kind)
	}
	if e.PlannedDays < 0 {
		return fmt.Errorf("planned days must not be negative, got %d", e.PlannedDays)
	}
	return nil
}

// DisplayID returns the first 8 characters of ID.
func (e *ScheduledEntity) DisplayID() string {
	if len(e.ID) >= 8 {
		return e.ID[:8]
	}
	return e.ID
}
