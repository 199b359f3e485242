package testutil

import (
	"time"

	"github.com/alexanderramin/renoboard/internal/domain"
	"github.com/google/uuid"
)

// Entity options
type EntityOption func(*domain.ScheduledEntity)

func WithKind(k domain.EntityKind) EntityOption {
	return func(e *domain.ScheduledEntity) {
		e.Kind = k
	}
}

func WithStatus(s string) EntityOption {
	return func(e *domain.ScheduledEntity) {
		e.Status = s
	}
}

func WithSection(id string) EntityOption {
	return func(e *domain.ScheduledEntity) {
		e.SectionID = id
	}
}

func WithStart(s string) EntityOption {
	return func(e *domain.ScheduledEntity) {
		e.RawStart = domain.DateText(s)
	}
}

func WithStartAt(t time.Time) EntityOption {
	return func(e *domain.ScheduledEntity) {
		e.RawStart = domain.DateAt(t)
	}
}

func WithDate(s string) EntityOption {
	return func(e *domain.ScheduledEntity) {
		e.RawDate = domain.DateText(s)
	}
}

func WithCreated(s string) EntityOption {
	return func(e *domain.ScheduledEntity) {
		e.RawCreated = domain.DateText(s)
	}
}

func WithScheduled(s string) EntityOption {
	return func(e *domain.ScheduledEntity) {
		e.RawScheduled = domain.DateText(s)
	}
}

func WithEnd(s string) EntityOption {
	return func(e *domain.ScheduledEntity) {
		e.RawEnd = domain.DateText(s)
	}
}

func WithPlannedDays(n int) EntityOption {
	return func(e *domain.ScheduledEntity) {
		e.PlannedDays = n
	}
}

func WithMetadata(k, v string) EntityOption {
	return func(e *domain.ScheduledEntity) {
		if e.Metadata == nil {
			e.Metadata = map[string]string{}
		}
		e.Metadata[k] = v
	}
}

// NewTestEntity returns a task with no dates set.
func NewTestEntity(title string, opts ...EntityOption) *domain.ScheduledEntity {
	now := time.Now().UTC()
	e := &domain.ScheduledEntity{
		ID:        uuid.New().String(),
		Kind:      domain.KindTask,
		Title:     title,
		Status:    domain.StatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Section options
type SectionOption func(*domain.Section)

func WithOrderIndex(i int) SectionOption {
	return func(s *domain.Section) {
		s.OrderIndex = i
	}
}

func NewTestSection(name string, opts ...SectionOption) *domain.Section {
	s := &domain.Section{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
