package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/renoboard/internal/app"
	"github.com/alexanderramin/renoboard/internal/timeline"
	"github.com/charmbracelet/lipgloss"
)

// CellWidth is the width of one calendar column, border excluded.
const CellWidth = 14

// Edge markers for an entry inside a cell.
const (
	markSingle   = "●"
	markStart    = "▶"
	markContinue = "━"
	markEnd      = "◀"
)

// EdgeMarker picks the glyph showing whether an entry begins, continues or
// ends on a cell.
func EdgeMarker(isStart, isEnd bool) string {
	switch {
	case isStart && isEnd:
		return markSingle
	case isStart:
		return markStart
	case isEnd:
		return markEnd
	default:
		return markContinue
	}
}

// MonthTitle renders "March 2024".
func MonthTitle(m timeline.Month) string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// FormatMonth renders the month grid with each cell's visible entries and a
// "+N more" line where the overflow limit cut the list. selected, when not
// zero, is drawn with a highlighted border.
func FormatMonth(resp *app.MonthResponse, selected timeline.Day) string {
	grid := resp.Grid
	var b strings.Builder

	b.WriteString(Header(MonthTitle(grid)))
	b.WriteString("\n")

	heads := make([]string, 0, 7)
	for _, wd := range grid.Weekdays() {
		heads = append(heads, PadRight(" "+StyleHeader.Render(wd.String()[:3]), CellWidth+2))
	}
	b.WriteString(strings.Join(heads, ""))
	b.WriteString("\n")

	// Rows are as tall as the busiest cell in the week.
	for w, week := range grid.Weeks() {
		height := 1
		for i := range week {
			d := resp.Cells[w*7+i]
			lines := len(d.Visible)
			if d.HasOverflow() {
				lines++
			}
			if lines > height {
				height = lines
			}
		}

		cells := make([]string, 0, 7)
		for i, c := range week {
			cells = append(cells, renderCell(c, resp.Cells[w*7+i], height, selected))
		}
		for len(cells) < 7 {
			cells = append(cells, lipgloss.NewStyle().Width(CellWidth+2).Render(""))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	writeSkipped(&b, len(resp.Skipped))
	return b.String()
}

func renderCell(c timeline.Cell, d timeline.Details, height int, selected timeline.Day) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorDim).
		Width(CellWidth).
		Height(height + 1)

	if c.Blank {
		return border.BorderForeground(lipgloss.Color("#3c3836")).Render("")
	}
	if !selected.IsZero() && c.Date == selected {
		border = border.BorderForeground(ColorHeader)
	}

	num := fmt.Sprintf("%2d", c.Date.Day)
	if c.IsToday {
		num = StyleToday.Render(num)
	} else {
		num = StyleFg.Render(num)
	}

	lines := []string{num}
	for j, it := range d.Visible {
		isStart, isEnd := false, false
		if j < len(c.Entries) {
			isStart, isEnd = c.Entries[j].IsRangeStart, c.Entries[j].IsRangeEnd
		}
		style := KindColor(it.Entity.Kind)
		text := EdgeMarker(isStart, isEnd) + " " + Truncate(it.Entity.Title, CellWidth-2)
		lines = append(lines, style.Render(text))
	}
	if d.HasOverflow() {
		lines = append(lines, Dim(fmt.Sprintf("+%d more", d.OverflowCount)))
	}
	return border.Render(strings.Join(lines, "\n"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
