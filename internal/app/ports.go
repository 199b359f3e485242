package app

import (
	"context"

	"github.com/alexanderramin/renoboard/internal/domain"
	"github.com/alexanderramin/renoboard/internal/importer"
)

type MonthUseCase interface {
	Month(ctx context.Context, req MonthRequest) (*MonthResponse, error)
}

type GanttUseCase interface {
	Gantt(ctx context.Context, req GanttRequest) (*GanttResponse, error)
}

type DayUseCase interface {
	Day(ctx context.Context, req DayRequest) (*DayResponse, error)
}

// TimelineUseCase serves every read-only view.
type TimelineUseCase interface {
	MonthUseCase
	GanttUseCase
	DayUseCase
}

type ImportResult struct {
	SectionCount int
	EntityCount  int
	// Undated lists imported entities no view can place.
	Undated []string
}

type ImportUseCase interface {
	ImportFile(ctx context.Context, filePath string) (*ImportResult, error)
	ImportSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}

type EntityUseCase interface {
	Create(ctx context.Context, e *domain.ScheduledEntity) error
	GetByID(ctx context.Context, id string) (*domain.ScheduledEntity, error)
	List(ctx context.Context, scope Scope) ([]domain.ScheduledEntity, error)
	Update(ctx context.Context, e *domain.ScheduledEntity) error
	Delete(ctx context.Context, id string) error
}

type SectionUseCase interface {
	Create(ctx context.Context, s *domain.Section) error
	List(ctx context.Context) ([]domain.Section, error)
	Delete(ctx context.Context, id string) error
}
