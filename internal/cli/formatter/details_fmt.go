package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/renoboard/internal/app"
	"github.com/alexanderramin/renoboard/internal/domain"
	"github.com/alexanderramin/renoboard/internal/timeline"
)

// FormatDayDetails renders the full list behind a day cell. Entries past the
// inline limit are listed under a "more" divider.
func FormatDayDetails(resp *app.DayResponse) string {
	d := resp.Details
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s %s", d.Date.Weekday(), d.Date)))
	b.WriteString("\n")

	if d.Total == 0 {
		b.WriteString(Dim("Nothing scheduled."))
		b.WriteString("\n")
		return b.String()
	}

	headers := []string{"", "ID", "TITLE", "KIND", "STATUS", "SPAN"}
	rows := make([][]string, 0, d.Total+1)
	for i, it := range d.All {
		if i == len(d.Visible) && d.HasOverflow() {
			rows = append(rows, []string{"", "", Dim(fmt.Sprintf("+%d more", d.OverflowCount)), "", "", ""})
		}
		isStart, isEnd := it.Range.Edges(d.Date)
		rows = append(rows, []string{
			KindColor(it.Entity.Kind).Render(EdgeMarker(isStart, isEnd)),
			TruncID(it.Entity.ID),
			Bold(it.Entity.Title),
			KindBadge(it.Entity.Kind),
			StatusPill(it.Entity.Status),
			FormatSpan(it.Range),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString(Dim(fmt.Sprintf("%d %s, %d shown inline", d.Total, plural(d.Total, "entry", "entries"), len(d.Visible))))
	b.WriteString("\n")
	return b.String()
}

// FormatSpan renders a normalized range as "2024-03-10" or
// "2024-03-10 → 2024-03-12 (3d)".
func FormatSpan(r timeline.NormalizedRange) string {
	if !r.Valid {
		return Dim("no date")
	}
	if r.StartDay == r.EndDay {
		return r.StartDay.String()
	}
	return fmt.Sprintf("%s → %s (%dd)", r.StartDay, r.EndDay, r.Days())
}

// EntityRow is an entity paired with what list views show beside it.
type EntityRow struct {
	Entity      domain.ScheduledEntity
	Range       timeline.NormalizedRange
	SectionName string
}

// FormatEntityList renders entities as a table in the order given.
func FormatEntityList(rows []EntityRow) string {
	headers := []string{"ID", "TITLE", "KIND", "STATUS", "SECTION", "SPAN"}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		section := r.SectionName
		if section == "" {
			section = Dim("--")
		}
		out = append(out, []string{
			TruncID(r.Entity.ID),
			Bold(r.Entity.Title),
			KindBadge(r.Entity.Kind),
			StatusPill(r.Entity.Status),
			section,
			FormatSpan(r.Range),
		})
	}
	return RenderBox("Entities", RenderTable(headers, out))
}

// FormatEntityDetail renders one entity with its raw date fields next to the
// resolved span, so a bad source date is easy to spot.
func FormatEntityDetail(r EntityRow) string {
	e := r.Entity
	var b strings.Builder

	field := func(label, value string) {
		b.WriteString(PadRight(Dim(label), 12))
		b.WriteString(value)
		b.WriteString("\n")
	}
	raw := func(v domain.DateValue) string {
		if v.IsAbsent() {
			return Dim("--")
		}
		return v.String()
	}

	field("ID", e.ID)
	field("Kind", KindBadge(e.Kind))
	field("Status", StatusPill(e.Status))
	if r.SectionName != "" {
		field("Section", r.SectionName)
	} else {
		field("Section", Dim("--"))
	}
	b.WriteString("\n")
	field("start", raw(e.RawStart))
	field("date", raw(e.RawDate))
	field("created", raw(e.RawCreated))
	field("scheduled", raw(e.RawScheduled))
	field("end", raw(e.RawEnd))
	if e.PlannedDays > 0 {
		field("planned", fmt.Sprintf("%dd", e.PlannedDays))
	}
	b.WriteString("\n")

	span := FormatSpan(r.Range)
	if r.Range.Valid {
		span += Dim(fmt.Sprintf("  from %s", r.Range.StartField))
	}
	if r.Range.Inverted {
		span += " " + StyleYellow.Render("(end before start, recovered)")
	}
	field("Span", span)

	return RenderBox(e.Title, strings.TrimRight(b.String(), "\n"))
}

// FormatSectionList renders sections in display order.
func FormatSectionList(sections []domain.Section) string {
	headers := []string{"ORDER", "ID", "NAME"}
	rows := make([][]string, 0, len(sections))
	for _, s := range sections {
		rows = append(rows, []string{fmt.Sprintf("%d", s.OrderIndex), TruncID(s.ID), Bold(s.Name)})
	}
	return RenderBox("Sections", RenderTable(headers, rows))
}

// FormatImportResult summarizes an import and names entities no view can place.
func FormatImportResult(res *app.ImportResult) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render(fmt.Sprintf("Imported %d %s and %d %s.",
		res.SectionCount, plural(res.SectionCount, "section", "sections"),
		res.EntityCount, plural(res.EntityCount, "entity", "entities"))))
	b.WriteString("\n")
	if len(res.Undated) > 0 {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("%d without a usable date:", len(res.Undated))))
		b.WriteString("\n")
		for _, title := range res.Undated {
			b.WriteString("  " + Dim("· ") + title + "\n")
		}
	}
	return b.String()
}
