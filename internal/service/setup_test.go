package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/renoboard/internal/repository"
	"github.com/alexanderramin/renoboard/internal/testutil"
	"github.com/alexanderramin/renoboard/internal/timeline"
)

func setupRepos(t *testing.T) (*sql.DB, *repository.SQLiteEntityRepo, *repository.SQLiteSectionRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return database, repository.NewSQLiteEntityRepo(database), repository.NewSQLiteSectionRepo(database)
}

func testTimelineOptions() TimelineOptions {
	return TimelineOptions{
		Resolver:        timeline.DefaultResolver(time.UTC),
		WeekStart:       time.Sunday,
		OverflowLimit:   3,
		MinVisibleRatio: timeline.DefaultMinVisibleRatio,
		Clock:           func() time.Time { return time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC) },
	}
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.events) == 0 {
		return UseCaseEvent{}
	}
	return o.events[len(o.events)-1]
}

func day(y int, m time.Month, d int) timeline.Day {
	return timeline.Date(y, m, d)
}

func intPtr(i int) *int { return &i }
