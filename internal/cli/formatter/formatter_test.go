package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/renoboard/internal/app"
	"github.com/alexanderramin/renoboard/internal/domain"
	"github.com/alexanderramin/renoboard/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func entity(title string, kind domain.EntityKind, start, end string) domain.ScheduledEntity {
	return domain.ScheduledEntity{
		ID:       "ent-" + strings.ReplaceAll(strings.ToLower(title), " ", "-"),
		Kind:     kind,
		Title:    title,
		Status:   domain.StatusOpen,
		RawStart: domain.DateText(start),
		RawEnd:   domain.DateText(end),
	}
}

func prepare(entities ...domain.ScheduledEntity) timeline.Set {
	return timeline.DefaultResolver(time.UTC).Prepare(entities)
}

func TestEdgeMarker(t *testing.T) {
	tests := []struct {
		name       string
		start, end bool
		want       string
	}{
		{"single day", true, true, markSingle},
		{"first day", true, false, markStart},
		{"middle", false, false, markContinue},
		{"last day", false, true, markEnd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EdgeMarker(tt.start, tt.end))
		})
	}
}

func TestKindBadgeAndStatusPill(t *testing.T) {
	assert.Equal(t, "Ticket", stripANSI(KindBadge(domain.KindTicket)))
	assert.Equal(t, "--", stripANSI(KindBadge("")))
	assert.Equal(t, "● In Progress", stripANSI(StatusPill(domain.StatusInProgress)))
	assert.Equal(t, "○ Open", stripANSI(StatusPill(domain.StatusOpen)))
	assert.Equal(t, "Waiting On Parts", stripANSI(StatusPill("waiting_on_parts")))
	assert.Equal(t, "--", stripANSI(StatusPill("")))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Replace w…", Truncate("Replace water heater", 10))
	assert.Equal(t, "", Truncate("anything", 0))
}

func TestBarCells(t *testing.T) {
	tests := []struct {
		name                string
		offset, width       float64
		track               int
		wantStart, wantFill int
	}{
		{"floored bar at origin", 0, 0.05, 60, 0, 3},
		{"half span", 0.5, 0.5, 10, 5, 5},
		{"never empty", 0.2, 0.001, 10, 2, 1},
		{"clipped at end", 0.95, 0.05, 10, 9, 1},
		{"offset at end stays on track", 1, 0.05, 10, 9, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, fill := barCells(tt.offset, tt.width, tt.track)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantFill, fill)
		})
	}
}

func TestRenderTrack_WidthIsExact(t *testing.T) {
	plain := func(s string) string { return s }
	track := stripANSI(RenderTrack(0.25, 0.5, 20, 2, plain))
	assert.Equal(t, 20, len([]rune(track)))
	assert.Equal(t, "··│··██████████·····", track)
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := stripANSI(RenderTable([]string{"ID", "NAME"}, [][]string{
		{Dim("a"), Bold("Kitchen")},
		{"bbbb", "Bath"},
	}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID    NAME", lines[0])
	assert.Equal(t, "a     Kitchen", lines[2])
	assert.Equal(t, "bbbb  Bath", lines[3])
}

func monthResponse(limit int, entities ...domain.ScheduledEntity) *app.MonthResponse {
	set := prepare(entities...)
	grid := timeline.BuildMonth(2024, time.March, set.Items, timeline.MonthOptions{Today: timeline.Date(2024, 3, 15)})
	cells := make([]timeline.Details, len(grid.Cells))
	for i, c := range grid.Cells {
		cells[i] = timeline.Summarize(c, limit)
	}
	return &app.MonthResponse{Grid: grid, Cells: cells, Limit: limit, Skipped: set.Skipped}
}

func TestFormatMonth(t *testing.T) {
	resp := monthResponse(1,
		entity("Tile", domain.KindTask, "2024-03-10", "2024-03-12"),
		entity("Grout", domain.KindTask, "2024-03-10", ""),
		entity("Undated", domain.KindLead, "", ""),
	)

	out := stripANSI(FormatMonth(resp, timeline.Day{}))

	assert.Contains(t, out, "MARCH 2024")
	assert.Contains(t, out, "Sun")
	assert.Contains(t, out, "Sat")
	assert.Contains(t, out, markStart+" Tile")
	assert.Contains(t, out, markEnd+" Tile")
	assert.Contains(t, out, "+1 more")
	assert.NotContains(t, out, "Grout")
	assert.Contains(t, out, "1 entity without a usable date not shown")
}

func TestFormatGantt(t *testing.T) {
	set := prepare(
		entity("Demo", domain.KindProject, "2024-03-01", "2024-03-10"),
		entity("Inspection", domain.KindTicket, "2024-03-20", ""),
	)
	set.Items[0].Entity.SectionID = "s1"
	sections := []domain.Section{{ID: "s1", Name: "Demolition"}}
	chart := timeline.Project(set.Items, sections, timeline.GanttOptions{Today: timeline.Date(2024, 3, 15)})

	out := stripANSI(FormatGantt(&app.GanttResponse{Chart: chart}, 40))

	assert.Contains(t, out, "2024-03-01 → 2024-03-20")
	assert.Contains(t, out, "20 days")
	assert.Contains(t, out, "Demolition")
	assert.Contains(t, out, "Unassigned")
	assert.Less(t, strings.Index(out, "Demolition"), strings.Index(out, "Unassigned"))
	assert.Contains(t, out, "2024-03-01 (10d)")
	assert.Contains(t, out, "▲ today")
}

func TestFormatGantt_Empty(t *testing.T) {
	out := stripANSI(FormatGantt(&app.GanttResponse{
		Skipped: []timeline.Skipped{{EntityID: "x", Title: "x", Reason: timeline.SkipNoDate}},
	}, 0))
	assert.Contains(t, out, "No dated entities.")
	assert.Contains(t, out, "1 entity without a usable date")
}

func TestFormatDayDetails(t *testing.T) {
	set := prepare(
		entity("A", domain.KindTask, "2024-03-10", ""),
		entity("B", domain.KindTask, "2024-03-09", "2024-03-11"),
		entity("C", domain.KindTask, "2024-03-10", ""),
	)
	details := timeline.DetailsFor(timeline.Date(2024, 3, 10), set.Items, 1)

	out := stripANSI(FormatDayDetails(&app.DayResponse{Details: details, Limit: 1}))

	assert.Contains(t, out, "SUNDAY 2024-03-10")
	assert.Contains(t, out, "+2 more")
	assert.Less(t, strings.Index(out, " A "), strings.Index(out, "+2 more"))
	assert.Less(t, strings.Index(out, "+2 more"), strings.Index(out, " C "))
	assert.Contains(t, out, "2024-03-09 → 2024-03-11 (3d)")
	assert.Contains(t, out, "3 entries, 1 shown inline")
}

func TestFormatDayDetails_Empty(t *testing.T) {
	out := stripANSI(FormatDayDetails(&app.DayResponse{Details: timeline.Details{Date: timeline.Date(2024, 3, 10)}}))
	assert.Contains(t, out, "Nothing scheduled.")
}

func TestFormatEntityDetail_ShowsRawAndResolved(t *testing.T) {
	e := entity("Backwards", domain.KindTicket, "2024-03-20", "2024-03-18")
	row := EntityRow{Entity: e, Range: timeline.DefaultResolver(time.UTC).Normalize(&e), SectionName: "Kitchen"}

	out := stripANSI(FormatEntityDetail(row))

	assert.Contains(t, out, "BACKWARDS")
	assert.Contains(t, out, "2024-03-18")
	assert.Contains(t, out, "from start")
	assert.Contains(t, out, "recovered")
	assert.Contains(t, out, "Kitchen")
}

func TestFormatImportResult(t *testing.T) {
	out := stripANSI(FormatImportResult(&app.ImportResult{SectionCount: 1, EntityCount: 3, Undated: []string{"Call back"}}))
	assert.Contains(t, out, "Imported 1 section and 3 entities.")
	assert.Contains(t, out, "1 without a usable date:")
	assert.Contains(t, out, "Call back")
}
