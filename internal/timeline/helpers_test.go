package timeline

import (
	"testing"
	"time"

	"github.com/alexanderramin/renoboard/internal/domain"
	"github.com/stretchr/testify/require"
)

// entity builds a task with text start/end fields; empty strings stay absent.
func entity(id, start, end string) domain.ScheduledEntity {
	e := domain.ScheduledEntity{ID: id, Kind: domain.KindTask, Title: "Task " + id}
	if start != "" {
		e.RawStart = domain.DateText(start)
	}
	if end != "" {
		e.RawEnd = domain.DateText(end)
	}
	return e
}

func prepare(t *testing.T, entities ...domain.ScheduledEntity) []Item {
	t.Helper()
	set := DefaultResolver(time.UTC).Prepare(entities)
	require.Empty(t, set.Skipped, "test entities should all resolve")
	return set.Items
}

func day(t *testing.T, s string) Day {
	t.Helper()
	d, err := ParseDay(s)
	require.NoError(t, err)
	return d
}

func ids(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Entity.ID)
	}
	return out
}
