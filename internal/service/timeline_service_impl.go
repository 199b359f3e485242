package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/renoboard/internal/app"
	"github.com/alexanderramin/renoboard/internal/domain"
	"github.com/alexanderramin/renoboard/internal/repository"
	"github.com/alexanderramin/renoboard/internal/timeline"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cacheTTL bounds how long a layout stays cached.
const cacheTTL = 10 * time.Minute

// TimelineOptions are the layout settings shared by every view.
type TimelineOptions struct {
	Resolver        timeline.Resolver
	WeekStart       time.Weekday
	OverflowLimit   int
	MinVisibleRatio float64
	// CacheSize is the number of layouts kept. Zero disables caching.
	CacheSize int
	// Clock supplies "now" when a request leaves it unset.
	Clock func() time.Time
}

type timelineService struct {
	entities repository.EntityRepo
	sections repository.SectionRepo
	opts     TimelineOptions
	cache    *expirable.LRU[string, any]
	observer UseCaseObserver
}

func NewTimelineService(
	entities repository.EntityRepo,
	sections repository.SectionRepo,
	opts TimelineOptions,
	observers ...UseCaseObserver,
) TimelineService {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.OverflowLimit < 0 {
		opts.OverflowLimit = 0
	}
	s := &timelineService{
		entities: entities,
		sections: sections,
		opts:     opts,
		observer: useCaseObserverOrNoop(observers),
	}
	if opts.CacheSize > 0 {
		s.cache = expirable.NewLRU[string, any](opts.CacheSize, nil, cacheTTL)
	}
	return s
}

func (s *timelineService) Month(ctx context.Context, req app.MonthRequest) (resp *app.MonthResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"month": fmt.Sprintf("%04d-%02d", req.Year, int(req.Month))}
	defer func() {
		s.observe(ctx, "calendar-month", startedAt, fields, err)
	}()

	if err = req.Validate(); err != nil {
		return nil, err
	}
	limit := s.limit(req.Limit)
	today := s.today(req.Now)

	key, cacheable := s.cacheKey(ctx, "month", req.Scope,
		fmt.Sprintf("%04d-%02d", req.Year, int(req.Month)), limit, today)
	if cached, ok := s.lookup(key, cacheable); ok {
		fields["cache_hit"] = true
		return cached.(*app.MonthResponse), nil
	}

	var set timeline.Set
	set, err = s.prepare(ctx, req.Scope)
	if err != nil {
		return nil, err
	}
	recordSet(fields, set)

	grid := timeline.BuildMonth(req.Year, req.Month, set.Items, timeline.MonthOptions{
		WeekStart: s.opts.WeekStart,
		Today:     today,
	})
	cells := make([]timeline.Details, len(grid.Cells))
	for i, c := range grid.Cells {
		cells[i] = timeline.Summarize(c, limit)
	}

	resp = &app.MonthResponse{
		Grid:     grid,
		Cells:    cells,
		Limit:    limit,
		Skipped:  set.Skipped,
		Inverted: set.Inverted,
	}
	s.store(key, cacheable, resp)
	return resp, nil
}

func (s *timelineService) Gantt(ctx context.Context, req app.GanttRequest) (resp *app.GanttResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observe(ctx, "gantt", startedAt, fields, err)
	}()

	if err = req.Validate(); err != nil {
		return nil, err
	}
	ratio := s.opts.MinVisibleRatio
	if req.MinVisibleRatio != nil {
		ratio = *req.MinVisibleRatio
	}
	today := s.today(req.Now)

	key, cacheable := s.cacheKey(ctx, "gantt", req.Scope, fmt.Sprintf("%g", ratio), 0, today)
	if cached, ok := s.lookup(key, cacheable); ok {
		fields["cache_hit"] = true
		return cached.(*app.GanttResponse), nil
	}

	var sections []domain.Section
	sections, err = s.sections.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading sections: %w", err)
	}
	var set timeline.Set
	set, err = s.prepare(ctx, req.Scope)
	if err != nil {
		return nil, err
	}
	recordSet(fields, set)

	chart := timeline.Project(set.Items, sections, timeline.GanttOptions{
		MinVisibleRatio: ratio,
		Today:           today,
	})
	fields["total_days"] = chart.TotalDays

	resp = &app.GanttResponse{Chart: chart, Skipped: set.Skipped, Inverted: set.Inverted}
	s.store(key, cacheable, resp)
	return resp, nil
}

func (s *timelineService) Day(ctx context.Context, req app.DayRequest) (resp *app.DayResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"date": req.Date.String()}
	defer func() {
		s.observe(ctx, "day-details", startedAt, fields, err)
	}()

	if err = req.Validate(); err != nil {
		return nil, err
	}
	limit := s.limit(req.Limit)

	var set timeline.Set
	set, err = s.prepare(ctx, req.Scope)
	if err != nil {
		return nil, err
	}
	recordSet(fields, set)

	details := timeline.DetailsFor(req.Date, set.Items, limit)
	fields["total"] = details.Total
	fields["overflow"] = details.OverflowCount
	return &app.DayResponse{Details: details, Limit: limit}, nil
}

func (s *timelineService) prepare(ctx context.Context, scope app.Scope) (timeline.Set, error) {
	entities, err := s.entities.List(ctx, repository.EntityFilter{Kinds: scope.Kinds, SectionID: scope.SectionID})
	if err != nil {
		return timeline.Set{}, fmt.Errorf("loading entities: %w", err)
	}
	return s.opts.Resolver.Prepare(entities), nil
}

func (s *timelineService) limit(override *int) int {
	if override != nil && *override >= 0 {
		return *override
	}
	return s.opts.OverflowLimit
}

func (s *timelineService) today(now *time.Time) timeline.Day {
	t := s.opts.Clock()
	if now != nil {
		t = *now
	}
	return timeline.DayOf(t, s.opts.Resolver.Location)
}

// cacheKey returns false when caching is off or the store cannot report a
// version token.
func (s *timelineService) cacheKey(ctx context.Context, view string, scope app.Scope, params string, limit int, today timeline.Day) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	v, ok := s.entities.(repository.Versioner)
	if !ok {
		return "", false
	}
	version, err := v.Version(ctx)
	if err != nil {
		return "", false
	}
	return strings.Join([]string{
		view, params, scopeKey(scope), fmt.Sprint(limit), today.String(), version,
	}, "|"), true
}

func (s *timelineService) lookup(key string, cacheable bool) (any, bool) {
	if !cacheable {
		return nil, false
	}
	return s.cache.Get(key)
}

func (s *timelineService) store(key string, cacheable bool, v any) {
	if cacheable {
		s.cache.Add(key, v)
	}
}

func (s *timelineService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

// scopeKey is order-independent so equal filters share a cache entry.
func scopeKey(scope app.Scope) string {
	kinds := make([]string, len(scope.Kinds))
	for i, k := range scope.Kinds {
		kinds[i] = string(k)
	}
	sort.Strings(kinds)
	return strings.Join(kinds, ",") + "@" + scope.SectionID
}

func recordSet(fields map[string]any, set timeline.Set) {
	fields["entities"] = len(set.Items) + len(set.Skipped)
	fields["skipped"] = len(set.Skipped)
	fields["inverted"] = len(set.Inverted)
}
