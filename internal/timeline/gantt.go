package timeline

import (
	"sort"

	"github.com/alexanderramin/renoboard/internal/domain"
)

// DefaultMinVisibleRatio keeps one-day bars on long projects wide enough to click.
const DefaultMinVisibleRatio = 0.05

type GanttOptions struct {
	// MinVisibleRatio floors every bar width. Zero means DefaultMinVisibleRatio.
	MinVisibleRatio float64
	// Today is the caller's reference day; zero disables the marker.
	Today Day
}

// Bar is one entity on the proportional timeline. Ratios are fractions of
// the chart span.
type Bar struct {
	EntityID  string
	SectionID string
	Title     string
	Kind      domain.EntityKind
	Status    string

	Start        Day
	End          Day
	OffsetDays   int
	DurationDays int

	OffsetRatio float64
	WidthRatio  float64
}

// EdgesOn reports whether d is the first and/or last day of the bar, which
// decides capped versus continued edges when a bar is drawn day by day.
func (b Bar) EdgesOn(d Day) (isRangeStart, isRangeEnd bool) {
	return d.Compare(b.Start) == 0, d.Compare(b.End) == 0
}

// Group is one section lane. Unassigned collects bars whose section is empty
// or unknown and always sorts last.
type Group struct {
	Section    domain.Section
	Unassigned bool
	Bars       []Bar
}

type Chart struct {
	Start     Day
	End       Day
	TotalDays int

	Groups []Group
	// Bars is every bar in group order.
	Bars []Bar

	HasToday   bool
	TodayRatio float64
}

func (c Chart) Empty() bool {
	return len(c.Bars) == 0
}

// Days lists every day in the chart span, for header ticks.
func (c Chart) Days() []Day {
	if c.Empty() {
		return nil
	}
	out := make([]Day, 0, c.TotalDays)
	for d := c.Start; !d.After(c.End); d = d.AddDays(1) {
		out = append(out, d)
	}
	return out
}

// barEnd is the end used for layout. Without an explicit end, a planned
// duration stretches the bar; otherwise it is a single day.
func barEnd(it Item) Day {
	if !it.Range.ExplicitEnd && it.Entity.PlannedDays > 1 {
		return it.Range.StartDay.AddDays(it.Entity.PlannedDays - 1)
	}
	return it.Range.EndDay
}

// Project lays items out on a timeline spanning the earliest start to the
// latest end. An empty or all-invalid input yields an empty Chart.
func Project(items []Item, sections []domain.Section, opts GanttOptions) Chart {
	minRatio := opts.MinVisibleRatio
	if minRatio <= 0 {
		minRatio = DefaultMinVisibleRatio
	}

	var valid []Item
	for _, it := range items {
		if it.Range.Valid {
			valid = append(valid, it)
		}
	}
	if len(valid) == 0 {
		return Chart{}
	}

	start := valid[0].Range.StartDay
	end := barEnd(valid[0])
	for _, it := range valid[1:] {
		start = minDay(start, it.Range.StartDay)
		end = maxDay(end, barEnd(it))
	}
	total := DaysBetween(start, end) + 1
	if total < 1 {
		total = 1
	}

	chart := Chart{Start: start, End: end, TotalDays: total}

	ordered := make([]domain.Section, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OrderIndex < ordered[j].OrderIndex
	})
	lane := make(map[string]int, len(ordered))
	groups := make([]Group, len(ordered), len(ordered)+1)
	for i, s := range ordered {
		if _, dup := lane[s.ID]; dup {
			continue
		}
		lane[s.ID] = i
		groups[i] = Group{Section: s}
	}
	unassigned := Group{Unassigned: true}

	for _, it := range valid {
		bEnd := barEnd(it)
		offset := DaysBetween(start, it.Range.StartDay)
		duration := DaysBetween(it.Range.StartDay, bEnd) + 1
		if duration < 1 {
			duration = 1
		}
		width := float64(duration) / float64(total)
		if width < minRatio {
			width = minRatio
		}
		bar := Bar{
			EntityID:     it.Entity.ID,
			SectionID:    it.Entity.SectionID,
			Title:        it.Entity.Title,
			Kind:         it.Entity.Kind,
			Status:       it.Entity.Status,
			Start:        it.Range.StartDay,
			End:          bEnd,
			OffsetDays:   offset,
			DurationDays: duration,
			OffsetRatio:  float64(offset) / float64(total),
			WidthRatio:   width,
		}
		if i, ok := lane[it.Entity.SectionID]; ok && it.Entity.SectionID != "" {
			groups[i].Bars = append(groups[i].Bars, bar)
		} else {
			unassigned.Bars = append(unassigned.Bars, bar)
		}
	}

	for _, g := range append(groups, unassigned) {
		if len(g.Bars) == 0 {
			continue
		}
		chart.Groups = append(chart.Groups, g)
		chart.Bars = append(chart.Bars, g.Bars...)
	}

	if !opts.Today.IsZero() && !opts.Today.Before(start) && !opts.Today.After(end) {
		chart.HasToday = true
		chart.TodayRatio = float64(DaysBetween(start, opts.Today)) / float64(total)
	}
	return chart
}
