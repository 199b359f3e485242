package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/renoboard/internal/app"
	"github.com/alexanderramin/renoboard/internal/timeline"
)

const (
	ganttLabelWidth = 24
	// DefaultTrackWidth is used when the caller passes a non-positive width.
	DefaultTrackWidth = 60
)

// FormatGantt renders one lane per section with a proportional bar per
// entity. Bars are drawn from the chart's ratios, so a bar floored to the
// minimum visible width stays visible even on a long timeline.
func FormatGantt(resp *app.GanttResponse, width int) string {
	if width <= 0 {
		width = DefaultTrackWidth
	}
	chart := resp.Chart
	var b strings.Builder

	b.WriteString(Header("Timeline"))
	b.WriteString("\n")

	if chart.Empty() {
		b.WriteString(Dim("No dated entities."))
		b.WriteString("\n")
		writeSkipped(&b, len(resp.Skipped))
		return b.String()
	}

	todayCol := -1
	if chart.HasToday {
		todayCol = TodayColumn(chart.TodayRatio, width)
	}

	span := fmt.Sprintf("%s → %s", chart.Start, chart.End)
	days := fmt.Sprintf("%d days", chart.TotalDays)
	gap := width - len([]rune(span)) - len(days)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(strings.Repeat(" ", ganttLabelWidth+1))
	b.WriteString(Dim(span + strings.Repeat(" ", gap) + days))
	b.WriteString("\n")

	for _, g := range chart.Groups {
		name := g.Section.Name
		if g.Unassigned {
			name = "Unassigned"
		}
		b.WriteString(Bold(name))
		b.WriteString("\n")
		for _, bar := range g.Bars {
			b.WriteString(formatBarRow(bar, width, todayCol))
			b.WriteString("\n")
		}
	}

	if chart.HasToday {
		b.WriteString(strings.Repeat(" ", ganttLabelWidth+1+todayCol))
		b.WriteString(StyleHeader.Render("▲ today"))
		b.WriteString("\n")
	}
	writeSkipped(&b, len(resp.Skipped))
	return b.String()
}

func formatBarRow(bar timeline.Bar, width, todayCol int) string {
	label := PadRight(Truncate(bar.Title, ganttLabelWidth-2), ganttLabelWidth-2)
	track := RenderTrack(bar.OffsetRatio, bar.WidthRatio, width, todayCol, func(s string) string { return KindColor(bar.Kind).Render(s) })
	dates := Dim(fmt.Sprintf("%s (%dd)", bar.Start, bar.DurationDays))
	return "  " + label + " " + track + " " + dates
}

func writeSkipped(b *strings.Builder, n int) {
	if n == 0 {
		return
	}
	b.WriteString(Dim(fmt.Sprintf("%d %s without a usable date not shown", n, plural(n, "entity", "entities"))))
	b.WriteString("\n")
}
