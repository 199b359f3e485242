package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/renoboard/internal/app"
	"github.com/alexanderramin/renoboard/internal/db"
	"github.com/alexanderramin/renoboard/internal/importer"
	"github.com/alexanderramin/renoboard/internal/repository"
	"github.com/alexanderramin/renoboard/internal/timeline"
)

type importService struct {
	uow      db.UnitOfWork
	resolver timeline.Resolver
	observer UseCaseObserver
}

// NewImportService writes every import inside one transaction. The resolver
// is only used to report entities no view will be able to place.
func NewImportService(uow db.UnitOfWork, resolver timeline.Resolver, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		resolver: resolver,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportFile(ctx context.Context, filePath string) (*app.ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportSchema(ctx, schema)
}

func (s *importService) ImportSchema(ctx context.Context, schema *importer.ImportSchema) (result *app.ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	batch := importer.Convert(schema, startedAt)
	fields["section_count"] = len(batch.Sections)
	fields["entity_count"] = len(batch.Entities)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		sections := repository.NewSQLiteSectionRepo(tx)
		entities := repository.NewSQLiteEntityRepo(tx)

		for _, sec := range batch.Sections {
			if err := sections.Create(ctx, sec); err != nil {
				return fmt.Errorf("creating section %q: %w", sec.Name, err)
			}
		}
		for _, e := range batch.Entities {
			if err := entities.Create(ctx, e); err != nil {
				return fmt.Errorf("creating entity %q: %w", e.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result = &app.ImportResult{
		SectionCount: len(batch.Sections),
		EntityCount:  len(batch.Entities),
	}
	for _, e := range batch.Entities {
		if !s.resolver.Normalize(e).Valid {
			result.Undated = append(result.Undated, e.Title)
		}
	}
	fields["undated"] = len(result.Undated)
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return &app.RequestError{Code: app.ErrInvalidInput, Message: msg}
}
