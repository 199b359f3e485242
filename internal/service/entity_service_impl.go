package service

import (
	"context"
	"time"

	"github.com/alexanderramin/renoboard/internal/app"
	"github.com/alexanderramin/renoboard/internal/domain"
	"github.com/alexanderramin/renoboard/internal/repository"
	"github.com/google/uuid"
)

type entityService struct {
	entities repository.EntityRepo
}

func NewEntityService(entities repository.EntityRepo) EntityService {
	return &entityService{entities: entities}
}

func (s *entityService) Create(ctx context.Context, e *domain.ScheduledEntity) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Kind == "" {
		e.Kind = domain.KindGeneric
	}
	if e.Status == "" {
		e.Status = domain.StatusOpen
	}
	if err := e.Validate(); err != nil {
		return &app.RequestError{Code: app.ErrInvalidInput, Message: err.Error()}
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	return s.entities.Create(ctx, e)
}

func (s *entityService) GetByID(ctx context.Context, id string) (*domain.ScheduledEntity, error) {
	return s.entities.GetByID(ctx, id)
}

func (s *entityService) List(ctx context.Context, scope app.Scope) ([]domain.ScheduledEntity, error) {
	return s.entities.List(ctx, repository.EntityFilter{Kinds: scope.Kinds, SectionID: scope.SectionID})
}

func (s *entityService) Update(ctx context.Context, e *domain.ScheduledEntity) error {
	if err := e.Validate(); err != nil {
		return &app.RequestError{Code: app.ErrInvalidInput, Message: err.Error()}
	}
	e.UpdatedAt = time.Now().UTC()
	return s.entities.Update(ctx, e)
}

func (s *entityService) Delete(ctx context.Context, id string) error {
	return s.entities.Delete(ctx, id)
}
