package service

import (
	"context"
	"time"

	"github.com/alexanderramin/renoboard/internal/app"
	"github.com/alexanderramin/renoboard/internal/domain"
	"github.com/alexanderramin/renoboard/internal/repository"
	"github.com/google/uuid"
)

type sectionService struct {
	sections repository.SectionRepo
}

func NewSectionService(sections repository.SectionRepo) SectionService {
	return &sectionService{sections: sections}
}

func (s *sectionService) Create(ctx context.Context, sec *domain.Section) error {
	if sec.ID == "" {
		sec.ID = uuid.New().String()
	}
	if err := sec.Validate(); err != nil {
		return &app.RequestError{Code: app.ErrInvalidInput, Message: err.Error()}
	}
	sec.CreatedAt = time.Now().UTC()
	return s.sections.Create(ctx, sec)
}

func (s *sectionService) List(ctx context.Context) ([]domain.Section, error) {
	return s.sections.List(ctx)
}

func (s *sectionService) Delete(ctx context.Context, id string) error {
	return s.sections.Delete(ctx, id)
}
