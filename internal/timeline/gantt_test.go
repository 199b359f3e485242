package timeline

import (
	"testing"

	"github.com/alexanderramin/renoboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_Empty(t *testing.T) {
	chart := Project(nil, nil, GanttOptions{})
	assert.True(t, chart.Empty())
	assert.Empty(t, chart.Bars)
	assert.Empty(t, chart.Groups)
	assert.Zero(t, chart.TotalDays)
	assert.Nil(t, chart.Days())

	invalidOnly := []Item{{Entity: domain.ScheduledEntity{ID: "x"}}}
	assert.True(t, Project(invalidOnly, nil, GanttOptions{}).Empty())
}

func TestProject_OffsetsRelativeToEarliestStart(t *testing.T) {
	items := prepare(t,
		entity("first", "2024-06-01", ""),
		entity("second", "2024-06-05", ""),
	)
	chart := Project(items, nil, GanttOptions{})

	assert.Equal(t, Date(2024, 6, 1), chart.Start)
	assert.Equal(t, Date(2024, 6, 5), chart.End)
	assert.Equal(t, 5, chart.TotalDays)
	require.Len(t, chart.Bars, 2)

	assert.InDelta(t, 0.0, chart.Bars[0].OffsetRatio, 1e-9)
	assert.InDelta(t, 4.0/5.0, chart.Bars[1].OffsetRatio, 1e-9)
	assert.Equal(t, 1, chart.Bars[0].DurationDays)
	assert.InDelta(t, 0.2, chart.Bars[0].WidthRatio, 1e-9)
	assert.Len(t, chart.Days(), 5)
}

func TestProject_MinimumVisibleWidth(t *testing.T) {
	items := prepare(t,
		entity("long", "2024-01-01", "2024-04-09"),
		entity("blip", "2024-02-01", ""),
	)
	chart := Project(items, nil, GanttOptions{})
	require.Equal(t, 100, chart.TotalDays)
	assert.InDelta(t, 1.0, chart.Bars[0].WidthRatio, 1e-9)
	assert.InDelta(t, DefaultMinVisibleRatio, chart.Bars[1].WidthRatio, 1e-9)

	chart = Project(items, nil, GanttOptions{MinVisibleRatio: 0.1})
	assert.InDelta(t, 0.1, chart.Bars[1].WidthRatio, 1e-9)
}

func TestProject_PlannedDaysStretchOpenEndedBars(t *testing.T) {
	open := entity("open", "2024-06-01", "")
	open.PlannedDays = 10
	closed := entity("closed", "2024-06-01", "2024-06-03")
	closed.PlannedDays = 30

	chart := Project(prepare(t, open, closed), nil, GanttOptions{})
	assert.Equal(t, Date(2024, 6, 10), chart.End)
	assert.Equal(t, 10, chart.TotalDays)
	assert.Equal(t, 10, chart.Bars[0].DurationDays)
	assert.Equal(t, 3, chart.Bars[1].DurationDays, "an explicit end beats the planned duration")
}

func TestProject_GroupsBySectionOrder(t *testing.T) {
	sections := []domain.Section{
		{ID: "finish", Name: "Finishes", OrderIndex: 3},
		{ID: "demo", Name: "Demolition", OrderIndex: 1},
		{ID: "rough", Name: "Rough-in", OrderIndex: 2},
	}
	a := entity("tile", "2024-06-10", "")
	a.SectionID = "finish"
	b := entity("gut", "2024-06-01", "2024-06-03")
	b.SectionID = "demo"
	c := entity("orphan", "2024-06-02", "")
	c.SectionID = "gone"
	d := entity("loose", "2024-06-04", "")
	e := entity("paint", "2024-06-12", "")
	e.SectionID = "finish"

	chart := Project(prepare(t, a, b, c, d, e), sections, GanttOptions{})

	require.Len(t, chart.Groups, 3, "empty sections are not emitted")
	assert.Equal(t, "demo", chart.Groups[0].Section.ID)
	assert.Equal(t, "finish", chart.Groups[1].Section.ID)
	assert.True(t, chart.Groups[2].Unassigned)

	var order []string
	for _, b := range chart.Bars {
		order = append(order, b.EntityID)
	}
	assert.Equal(t, []string{"gut", "tile", "paint", "orphan", "loose"}, order)

	assert.Equal(t, "finish", sections[0].ID, "caller's section slice is not reordered")
}

func TestBar_EdgesOn(t *testing.T) {
	chart := Project(prepare(t, entity("x", "2024-03-10", "2024-03-12")), nil, GanttOptions{})
	bar := chart.Bars[0]

	cases := []struct {
		day        Day
		start, end bool
	}{
		{Date(2024, 3, 10), true, false},
		{Date(2024, 3, 11), false, false},
		{Date(2024, 3, 12), false, true},
	}
	for _, tc := range cases {
		s, e := bar.EdgesOn(tc.day)
		assert.Equal(t, tc.start, s, "day %s", tc.day)
		assert.Equal(t, tc.end, e, "day %s", tc.day)
	}

	single := Project(prepare(t, entity("y", "2024-03-10", "")), nil, GanttOptions{}).Bars[0]
	s, e := single.EdgesOn(Date(2024, 3, 10))
	assert.True(t, s)
	assert.True(t, e)
}

func TestProject_TodayMarker(t *testing.T) {
	items := prepare(t, entity("x", "2024-06-01", "2024-06-10"))

	chart := Project(items, nil, GanttOptions{Today: Date(2024, 6, 6)})
	assert.True(t, chart.HasToday)
	assert.InDelta(t, 0.5, chart.TodayRatio, 1e-9)

	chart = Project(items, nil, GanttOptions{Today: Date(2024, 7, 1)})
	assert.False(t, chart.HasToday)
}
