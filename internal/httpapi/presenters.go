package httpapi

import (
	"github.com/alexanderramin/renoboard/internal/app"
	"github.com/alexanderramin/renoboard/internal/timeline"
)

// --- Response DTOs ---

type entryResp struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Kind         string `json:"kind"`
	Status       string `json:"status"`
	Start        string `json:"start"`
	End          string `json:"end"`
	IsRangeStart bool   `json:"is_range_start"`
	IsRangeEnd   bool   `json:"is_range_end"`
}

type cellResp struct {
	Date          string      `json:"date,omitempty"`
	Blank         bool        `json:"blank"`
	IsToday       bool        `json:"is_today"`
	Visible       []entryResp `json:"visible"`
	Total         int         `json:"total"`
	OverflowCount int         `json:"overflow_count"`
}

type skippedResp struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

type monthResp struct {
	Year          int           `json:"year"`
	Month         int           `json:"month"`
	WeekStart     string        `json:"week_start"`
	LeadingBlanks int           `json:"leading_blanks"`
	Limit         int           `json:"limit"`
	Cells         []cellResp    `json:"cells"`
	Skipped       []skippedResp `json:"skipped"`
	Inverted      []string      `json:"inverted"`
}

type barResp struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Kind         string  `json:"kind"`
	Status       string  `json:"status"`
	Start        string  `json:"start"`
	End          string  `json:"end"`
	OffsetDays   int     `json:"offset_days"`
	DurationDays int     `json:"duration_days"`
	OffsetRatio  float64 `json:"offset_ratio"`
	WidthRatio   float64 `json:"width_ratio"`
}

type groupResp struct {
	SectionID  string    `json:"section_id,omitempty"`
	Name       string    `json:"name"`
	Unassigned bool      `json:"unassigned"`
	Bars       []barResp `json:"bars"`
}

type ganttResp struct {
	Start      string        `json:"start,omitempty"`
	End        string        `json:"end,omitempty"`
	TotalDays  int           `json:"total_days"`
	TodayRatio *float64      `json:"today_ratio,omitempty"`
	Groups     []groupResp   `json:"groups"`
	Skipped    []skippedResp `json:"skipped"`
}

type dayResp struct {
	Date          string      `json:"date"`
	Limit         int         `json:"limit"`
	Visible       []entryResp `json:"visible"`
	All           []entryResp `json:"all"`
	Total         int         `json:"total"`
	OverflowCount int         `json:"overflow_count"`
}

func presentEntry(it timeline.Item, d timeline.Day) entryResp {
	isStart, isEnd := it.Range.Edges(d)
	return entryResp{
		ID:           it.Entity.ID,
		Title:        it.Entity.Title,
		Kind:         string(it.Entity.Kind),
		Status:       it.Entity.Status,
		Start:        it.Range.StartDay.String(),
		End:          it.Range.EndDay.String(),
		IsRangeStart: isStart,
		IsRangeEnd:   isEnd,
	}
}

func presentEntries(items []timeline.Item, d timeline.Day) []entryResp {
	out := make([]entryResp, 0, len(items))
	for _, it := range items {
		out = append(out, presentEntry(it, d))
	}
	return out
}

func presentSkipped(skipped []timeline.Skipped) []skippedResp {
	out := make([]skippedResp, 0, len(skipped))
	for _, s := range skipped {
		out = append(out, skippedResp{ID: s.EntityID, Title: s.Title, Reason: string(s.Reason)})
	}
	return out
}

func presentMonth(r *app.MonthResponse) monthResp {
	out := monthResp{
		Year:          r.Grid.Year,
		Month:         int(r.Grid.Month),
		WeekStart:     r.Grid.WeekStart.String(),
		LeadingBlanks: r.Grid.LeadingBlanks,
		Limit:         r.Limit,
		Cells:         make([]cellResp, len(r.Grid.Cells)),
		Skipped:       presentSkipped(r.Skipped),
		Inverted:      append([]string{}, r.Inverted...),
	}
	for i, c := range r.Grid.Cells {
		d := r.Cells[i]
		out.Cells[i] = cellResp{
			Date:          c.Date.String(),
			Blank:         c.Blank,
			IsToday:       c.IsToday,
			Visible:       presentEntries(d.Visible, c.Date),
			Total:         d.Total,
			OverflowCount: d.OverflowCount,
		}
	}
	return out
}

func presentGantt(r *app.GanttResponse) ganttResp {
	chart := r.Chart
	out := ganttResp{
		Start:     chart.Start.String(),
		End:       chart.End.String(),
		TotalDays: chart.TotalDays,
		Groups:    make([]groupResp, 0, len(chart.Groups)),
		Skipped:   presentSkipped(r.Skipped),
	}
	if chart.HasToday {
		ratio := chart.TodayRatio
		out.TodayRatio = &ratio
	}
	for _, g := range chart.Groups {
		gr := groupResp{
			SectionID:  g.Section.ID,
			Name:       g.Section.Name,
			Unassigned: g.Unassigned,
			Bars:       make([]barResp, 0, len(g.Bars)),
		}
		if g.Unassigned {
			gr.Name = "Unassigned"
		}
		for _, b := range g.Bars {
			gr.Bars = append(gr.Bars, barResp{
				ID:           b.EntityID,
				Title:        b.Title,
				Kind:         string(b.Kind),
				Status:       b.Status,
				Start:        b.Start.String(),
				End:          b.End.String(),
				OffsetDays:   b.OffsetDays,
				DurationDays: b.DurationDays,
				OffsetRatio:  b.OffsetRatio,
				WidthRatio:   b.WidthRatio,
			})
		}
		out.Groups = append(out.Groups, gr)
	}
	return out
}

func presentDay(r *app.DayResponse) dayResp {
	d := r.Details
	return dayResp{
		Date:          d.Date.String(),
		Limit:         r.Limit,
		Visible:       presentEntries(d.Visible, d.Date),
		All:           presentEntries(d.All, d.Date),
		Total:         d.Total,
		OverflowCount: d.OverflowCount,
	}
}
