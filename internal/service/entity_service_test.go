package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/renoboard/internal/app"
	"github.com/alexanderramin/renoboard/internal/domain"
	"github.com/alexanderramin/renoboard/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityService_CreateAssignsDefaults(t *testing.T) {
	_, entities, _ := setupRepos(t)
	svc := NewEntityService(entities)
	ctx := context.Background()

	e := &domain.ScheduledEntity{Title: "Order tiles", RawStart: domain.DateText("2024-05-01")}
	require.NoError(t, svc.Create(ctx, e))

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, domain.KindGeneric, e.Kind)
	assert.Equal(t, domain.StatusOpen, e.Status)
	assert.False(t, e.CreatedAt.IsZero())

	got, err := svc.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Order tiles", got.Title)
}

func TestEntityService_CreateRejectsInvalid(t *testing.T) {
	_, entities, _ := setupRepos(t)
	svc := NewEntityService(entities)

	err := svc.Create(context.Background(), &domain.ScheduledEntity{Title: " "})
	var reqErr *app.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, app.ErrInvalidInput, reqErr.Code)

	list, err := svc.List(context.Background(), app.Scope{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEntityService_UpdateAndDelete(t *testing.T) {
	_, entities, _ := setupRepos(t)
	svc := NewEntityService(entities)
	ctx := context.Background()

	e := &domain.ScheduledEntity{Title: "Inspect", Kind: domain.KindTask}
	require.NoError(t, svc.Create(ctx, e))
	created := e.UpdatedAt

	e.RawEnd = domain.DateText("2024-05-09")
	require.NoError(t, svc.Update(ctx, e))
	assert.False(t, e.UpdatedAt.Before(created))

	got, err := svc.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-09", got.RawEnd.Text)

	e.PlannedDays = -1
	require.Error(t, svc.Update(ctx, e))

	require.NoError(t, svc.Delete(ctx, e.ID))
	_, err = svc.GetByID(ctx, e.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEntityService_ListScope(t *testing.T) {
	_, entities, _ := setupRepos(t)
	svc := NewEntityService(entities)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &domain.ScheduledEntity{Title: "T", Kind: domain.KindTicket}))
	require.NoError(t, svc.Create(ctx, &domain.ScheduledEntity{Title: "P", Kind: domain.KindProject}))

	list, err := svc.List(ctx, app.Scope{Kinds: []domain.EntityKind{domain.KindProject}})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "P", list[0].Title)
}
