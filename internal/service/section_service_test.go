package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/renoboard/internal/domain"
	"github.com/alexanderramin/renoboard/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionService_Lifecycle(t *testing.T) {
	_, _, sections := setupRepos(t)
	svc := NewSectionService(sections)
	ctx := context.Background()

	rough := &domain.Section{Name: "Rough-in", OrderIndex: 2}
	demo := &domain.Section{Name: "Demolition", OrderIndex: 1}
	require.NoError(t, svc.Create(ctx, rough))
	require.NoError(t, svc.Create(ctx, demo))
	assert.NotEmpty(t, rough.ID)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Demolition", list[0].Name)

	require.NoError(t, svc.Delete(ctx, demo.ID))
	require.ErrorIs(t, svc.Delete(ctx, demo.ID), repository.ErrNotFound)

	require.Error(t, svc.Create(ctx, &domain.Section{Name: ""}))
}
