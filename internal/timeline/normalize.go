package timeline

import (
	"strings"
	"time"

	"github.com/alexanderramin/renoboard/internal/domain"
)

// Field names one of the raw date fields on a ScheduledEntity.
type Field string

const (
	FieldStart     Field = "start"
	FieldDate      Field = "date"
	FieldCreated   Field = "created"
	FieldScheduled Field = "scheduled"
	FieldEnd       Field = "end"
)

func (f Field) value(e *domain.ScheduledEntity) domain.DateValue {
	switch f {
	case FieldStart:
		return e.RawStart
	case FieldDate:
		return e.RawDate
	case FieldCreated:
		return e.RawCreated
	case FieldScheduled:
		return e.RawScheduled
	case FieldEnd:
		return e.RawEnd
	default:
		return domain.DateValue{}
	}
}

// DefaultStartFields is the start resolution order shared by every view.
var DefaultStartFields = []Field{FieldStart, FieldDate, FieldCreated, FieldScheduled}

// DefaultEndFields is the end resolution order.
var DefaultEndFields = []Field{FieldEnd}

// textLayouts are tried in order; zone-less layouts are read in the
// resolver's location.
var textLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006",
	"Jan 2, 2006",
}

// absentText lists strings upstream serializers emit for "no value".
var absentText = map[string]bool{
	"":             true,
	"null":         true,
	"undefined":    true,
	"nil":          true,
	"none":         true,
	"invalid date": true,
}

// ParseDateValue returns the instant held by v, or false when v is absent,
// a placeholder string, a zero instant, or text in no known layout.
func ParseDateValue(v domain.DateValue, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	if v.Instant != nil {
		if v.Instant.IsZero() {
			return time.Time{}, false
		}
		return v.Instant.In(loc), true
	}

	s := strings.TrimSpace(v.Text)
	if absentText[strings.ToLower(s)] {
		return time.Time{}, false
	}
	for _, layout := range textLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}

// NormalizedRange is the inclusive span of calendar days an entity occupies.
// StartDay <= EndDay whenever Valid is true. When Valid is false both days
// are zero and the entity must not be placed.
type NormalizedRange struct {
	StartDay Day
	EndDay   Day
	Valid    bool

	// StartField is the field that supplied the start.
	StartField Field
	// ExplicitEnd is false when EndDay fell back to StartDay.
	ExplicitEnd bool
	// Inverted records that the source end preceded the start and was recovered.
	Inverted bool
}

// Contains is the day-level containment test every view uses.
func (r NormalizedRange) Contains(d Day) bool {
	return r.Valid && !d.Before(r.StartDay) && !d.After(r.EndDay)
}

// Edges reports whether d is the first and/or last day of the span.
func (r NormalizedRange) Edges(d Day) (isStart, isEnd bool) {
	if !r.Valid {
		return false, false
	}
	return d.Compare(r.StartDay) == 0, d.Compare(r.EndDay) == 0
}

// Days returns the inclusive length of the span, or 0 when invalid.
func (r NormalizedRange) Days() int {
	if !r.Valid {
		return 0
	}
	return DaysBetween(r.StartDay, r.EndDay) + 1
}

// Resolver turns raw entity dates into a NormalizedRange using ordered field
// chains. The zero value is usable and behaves like DefaultResolver(time.Local).
type Resolver struct {
	Location    *time.Location
	StartFields []Field
	EndFields   []Field
	Inversion   domain.InversionPolicy
}

// DefaultResolver returns a resolver with the standard field chains that
// collapses inverted ranges.
func DefaultResolver(loc *time.Location) Resolver {
	return Resolver{
		Location:    loc,
		StartFields: DefaultStartFields,
		EndFields:   DefaultEndFields,
		Inversion:   domain.InversionCollapse,
	}
}

func (r Resolver) location() *time.Location {
	if r.Location == nil {
		return time.Local
	}
	return r.Location
}

func (r Resolver) startFields() []Field {
	if len(r.StartFields) == 0 {
		return DefaultStartFields
	}
	return r.StartFields
}

func (r Resolver) endFields() []Field {
	if len(r.EndFields) == 0 {
		return DefaultEndFields
	}
	return r.EndFields
}

// first walks fields in order and returns the first parsable value.
func (r Resolver) first(e *domain.ScheduledEntity, fields []Field) (time.Time, Field, bool) {
	loc := r.location()
	for _, f := range fields {
		if t, ok := ParseDateValue(f.value(e), loc); ok {
			return t, f, true
		}
	}
	return time.Time{}, "", false
}

// Normalize resolves e's span. It never fails: unresolvable entities come
// back with Valid false. e is not modified.
func (r Resolver) Normalize(e *domain.ScheduledEntity) NormalizedRange {
	if e == nil {
		return NormalizedRange{}
	}
	loc := r.location()

	start, field, ok := r.first(e, r.startFields())
	if !ok {
		return NormalizedRange{}
	}
	out := NormalizedRange{
		StartDay:   DayOf(start, loc),
		Valid:      true,
		StartField: field,
	}
	out.EndDay = out.StartDay

	end, _, ok := r.first(e, r.endFields())
	if !ok {
		return out
	}
	out.ExplicitEnd = true
	out.EndDay = DayOf(end, loc)

	if out.EndDay.Before(out.StartDay) {
		out.Inverted = true
		if r.Inversion == domain.InversionSwap {
			out.StartDay, out.EndDay = out.EndDay, out.StartDay
		} else {
			out.EndDay = out.StartDay
		}
	}
	return out
}

// Item pairs an entity with its resolved span.
type Item struct {
	Entity domain.ScheduledEntity
	Range  NormalizedRange
}

type SkipReason string

const SkipNoDate SkipReason = "no_resolvable_date"

// Skipped describes an entity left out of every layout.
type Skipped struct {
	EntityID string
	Title    string
	Reason   SkipReason
}

// Set is a normalized entity list in input order plus diagnostics.
type Set struct {
	Items    []Item
	Skipped  []Skipped
	Inverted []string
}

// Prepare normalizes entities once for reuse by every layout. Order is kept;
// entities with no usable date go to Skipped instead of Items.
func (r Resolver) Prepare(entities []domain.ScheduledEntity) Set {
	set := Set{Items: make([]Item, 0, len(entities))}
	for i := range entities {
		e := &entities[i]
		rng := r.Normalize(e)
		if !rng.Valid {
			set.Skipped = append(set.Skipped, Skipped{EntityID: e.ID, Title: e.Title, Reason: SkipNoDate})
			continue
		}
		if rng.Inverted {
			set.Inverted = append(set.Inverted, e.ID)
		}
		set.Items = append(set.Items, Item{Entity: *e, Range: rng})
	}
	return set
}

// ActiveOn returns the items whose span contains d, in input order.
func ActiveOn(d Day, items []Item) []Item {
	var out []Item
	for _, it := range items {
		if it.Range.Contains(d) {
			out = append(out, it)
		}
	}
	return out
}
