package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/renoboard/internal/domain"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

// EntityFilter narrows List. The zero value matches every entity.
type EntityFilter struct {
	Kinds     []domain.EntityKind
	SectionID string
}

type EntityRepo interface {
	Create(ctx context.Context, e *domain.ScheduledEntity) error
	GetByID(ctx context.Context, id string) (*domain.ScheduledEntity, error)
	// List returns entities in insertion order, which is the order every
	// view preserves.
	List(ctx context.Context, f EntityFilter) ([]domain.ScheduledEntity, error)
	Update(ctx context.Context, e *domain.ScheduledEntity) error
	Delete(ctx context.Context, id string) error
}

type SectionRepo interface {
	Create(ctx context.Context, s *domain.Section) error
	GetByID(ctx context.Context, id string) (*domain.Section, error)
	List(ctx context.Context) ([]domain.Section, error)
	Delete(ctx context.Context, id string) error
}

// Versioner reports a token that changes whenever stored entities or
// sections change, including writes made by another process.
type Versioner interface {
	Version(ctx context.Context) (string, error)
}
