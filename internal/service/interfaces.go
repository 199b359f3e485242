package service

import (
	"context"

	"github.com/alexanderramin/renoboard/internal/app"
	"github.com/alexanderramin/renoboard/internal/domain"
	"github.com/alexanderramin/renoboard/internal/importer"
)

type TimelineService interface {
	Month(ctx context.Context, req app.MonthRequest) (*app.MonthResponse, error)
	Gantt(ctx context.Context, req app.GanttRequest) (*app.GanttResponse, error)
	Day(ctx context.Context, req app.DayRequest) (*app.DayResponse, error)
}

type EntityService interface {
	Create(ctx context.Context, e *domain.ScheduledEntity) error
	GetByID(ctx context.Context, id string) (*domain.ScheduledEntity, error)
	List(ctx context.Context, scope app.Scope) ([]domain.ScheduledEntity, error)
	Update(ctx context.Context, e *domain.ScheduledEntity) error
	Delete(ctx context.Context, id string) error
}

type SectionService interface {
	Create(ctx context.Context, s *domain.Section) error
	List(ctx context.Context) ([]domain.Section, error)
	Delete(ctx context.Context, id string) error
}

type ImportService interface {
	ImportFile(ctx context.Context, filePath string) (*app.ImportResult, error)
	ImportSchema(ctx context.Context, schema *importer.ImportSchema) (*app.ImportResult, error)
}

var (
	_ app.TimelineUseCase = TimelineService(nil)
	_ app.EntityUseCase   = EntityService(nil)
	_ app.SectionUseCase  = SectionService(nil)
	_ app.ImportUseCase   = ImportService(nil)
)
