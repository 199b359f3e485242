package timeline

import "time"

// MonthOptions controls grid shape. The zero value starts weeks on Sunday
// and marks no day as today.
type MonthOptions struct {
	WeekStart time.Weekday
	// Today is the caller's reference day; zero disables the marker.
	Today Day
}

// Entry is one entity placed in one cell.
type Entry struct {
	Item
	IsRangeStart bool
	IsRangeEnd   bool
}

// Cell is one slot in a month grid. Blank cells pad the first week and have
// a zero Date.
type Cell struct {
	Date    Day
	Blank   bool
	IsToday bool
	Entries []Entry
}

// Month is a rendered month grid: LeadingBlanks blank cells followed by one
// cell per day.
type Month struct {
	Year          int
	Month         time.Month
	WeekStart     time.Weekday
	LeadingBlanks int
	Cells         []Cell
}

// LeadingBlanks returns how many padding cells precede day 1. With a Sunday
// week start this is the weekday index of the first of the month.
func LeadingBlanks(year int, month time.Month, weekStart time.Weekday) int {
	first := Date(year, month, 1).Weekday()
	return (int(first) - int(weekStart) + 7) % 7
}

// BuildMonth lays items out on the month grid. An item lands in every cell
// its span contains, so an N-day entity appears in exactly N cells when the
// span is inside the month. Invalid items are ignored.
func BuildMonth(year int, month time.Month, items []Item, opts MonthOptions) Month {
	first := Date(year, month, 1)
	year, month = first.Year, first.Month
	days := DaysIn(year, month)
	last := Date(year, month, days)

	blanks := LeadingBlanks(year, month, opts.WeekStart)
	m := Month{
		Year:          year,
		Month:         month,
		WeekStart:     opts.WeekStart,
		LeadingBlanks: blanks,
		Cells:         make([]Cell, 0, blanks+days),
	}
	for i := 0; i < blanks; i++ {
		m.Cells = append(m.Cells, Cell{Blank: true})
	}

	// Only items overlapping the month can land in a cell.
	var overlapping []Item
	for _, it := range items {
		if !it.Range.Valid {
			continue
		}
		if it.Range.EndDay.Before(first) || it.Range.StartDay.After(last) {
			continue
		}
		overlapping = append(overlapping, it)
	}

	for d := 1; d <= days; d++ {
		date := Day{Year: year, Month: month, Day: d}
		cell := Cell{
			Date:    date,
			IsToday: !opts.Today.IsZero() && opts.Today == date,
		}
		for _, it := range overlapping {
			if !it.Range.Contains(date) {
				continue
			}
			isStart, isEnd := it.Range.Edges(date)
			cell.Entries = append(cell.Entries, Entry{Item: it, IsRangeStart: isStart, IsRangeEnd: isEnd})
		}
		m.Cells = append(m.Cells, cell)
	}
	return m
}

// Cell returns the cell for d, or false if d is outside the month.
func (m Month) Cell(d Day) (Cell, bool) {
	if d.Year != m.Year || d.Month != m.Month {
		return Cell{}, false
	}
	i := m.LeadingBlanks + d.Day - 1
	if i < 0 || i >= len(m.Cells) {
		return Cell{}, false
	}
	return m.Cells[i], true
}

// Weeks splits the grid into rows of seven; the last row may be shorter.
func (m Month) Weeks() [][]Cell {
	var weeks [][]Cell
	for i := 0; i < len(m.Cells); i += 7 {
		end := i + 7
		if end > len(m.Cells) {
			end = len(m.Cells)
		}
		weeks = append(weeks, m.Cells[i:end])
	}
	return weeks
}

// Weekdays returns the column headings in grid order.
func (m Month) Weekdays() []time.Weekday {
	out := make([]time.Weekday, 7)
	for i := range out {
		out[i] = time.Weekday((int(m.WeekStart) + i) % 7)
	}
	return out
}
