package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/renoboard/internal/app"
	"github.com/alexanderramin/renoboard/internal/importer"
	"github.com/alexanderramin/renoboard/internal/repository"
	"github.com/alexanderramin/renoboard/internal/testutil"
	"github.com/alexanderramin/renoboard/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validImportSchema() *importer.ImportSchema {
	return &importer.ImportSchema{
		Sections: []importer.SectionImport{
			{Ref: "demo", Name: "Demolition"},
			{Ref: "finish", Name: "Finishes"},
		},
		Entities: []importer.EntityImport{
			{Title: "Strip kitchen", SectionRef: "demo", Start: "2024-06-01", End: "2024-06-03"},
			{Title: "Paint", SectionRef: "finish", Date: "2024-06-10", PlannedDays: intPtr(2)},
			{Title: "Someday", Start: "TBD"},
		},
	}
}

func TestImportSchema_SuccessPath(t *testing.T) {
	database, entities, sections := setupRepos(t)
	ctx := context.Background()
	obs := &recordingObserver{}
	svc := NewImportService(testutil.NewTestUoW(database), timeline.DefaultResolver(time.UTC), obs)

	result, err := svc.ImportSchema(ctx, validImportSchema())
	require.NoError(t, err)
	assert.Equal(t, 2, result.SectionCount)
	assert.Equal(t, 3, result.EntityCount)
	assert.Equal(t, []string{"Someday"}, result.Undated)

	secs, err := sections.List(ctx)
	require.NoError(t, err)
	assert.Len(t, secs, 2)

	list, err := entities.List(ctx, repository.EntityFilter{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, secs[0].ID, list[0].SectionID)
	assert.Equal(t, "TBD", list[2].RawStart.Text)

	ev := obs.last()
	assert.Equal(t, "import", ev.Name)
	assert.Equal(t, 1, ev.Fields["undated"])
}

func TestImportSchema_ValidationFailureWritesNothing(t *testing.T) {
	database, entities, _ := setupRepos(t)
	svc := NewImportService(testutil.NewTestUoW(database), timeline.DefaultResolver(time.UTC))

	schema := validImportSchema()
	schema.Entities[0].SectionRef = "missing"
	schema.Entities[1].Title = ""

	_, err := svc.ImportSchema(context.Background(), schema)
	var reqErr *app.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Contains(t, reqErr.Message, "(2 errors)")

	list, err := entities.List(context.Background(), repository.EntityFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestImportSchema_RollbackOnMidBatchFailure(t *testing.T) {
	database, entities, sections := setupRepos(t)
	ctx := context.Background()

	// Exec 1-2 are the sections, 3 is the first entity, 4 fails.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 4,
		Err:    errors.New("injected entity create failure"),
	}
	svc := NewImportService(failUoW, timeline.DefaultResolver(time.UTC))

	_, err := svc.ImportSchema(ctx, validImportSchema())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected entity create failure")
	assert.Contains(t, err.Error(), `creating entity "Paint"`)

	list, err := entities.List(ctx, repository.EntityFilter{})
	require.NoError(t, err)
	assert.Empty(t, list, "no entities should exist after rollback")

	secs, err := sections.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, secs, "no sections should exist after rollback")
}

func TestImportFile_YAML(t *testing.T) {
	database, entities, _ := setupRepos(t)
	svc := NewImportService(testutil.NewTestUoW(database), timeline.DefaultResolver(time.UTC))

	path := filepath.Join(t.TempDir(), "jobs.yml")
	content := "entities:\n  - title: Fix railing\n    kind: ticket\n    start: 2024-03-10\n    end: 2024-03-12\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	result, err := svc.ImportFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, result.EntityCount)
	assert.Empty(t, result.Undated)

	list, err := entities.List(context.Background(), repository.EntityFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2024-03-10", list[0].RawStart.Text)
}

func TestImportFile_UnsupportedExtension(t *testing.T) {
	database, _, _ := setupRepos(t)
	svc := NewImportService(testutil.NewTestUoW(database), timeline.DefaultResolver(time.UTC))

	_, err := svc.ImportFile(context.Background(), "jobs.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading import file")
}
