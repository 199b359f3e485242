package timeline

// Details is the inline summary of one day plus the full list behind it.
type Details struct {
	Date Day
	// Visible is the first limit matches in input order.
	Visible []Item
	// All is every match, for the on-demand detail view.
	All           []Item
	Total         int
	OverflowCount int
}

func (d Details) HasOverflow() bool {
	return d.OverflowCount > 0
}

// DetailsFor applies the calendar containment test to a single day and cuts
// the result at limit. A negative limit is treated as zero. Calling it again
// with the same inputs returns the same result.
func DetailsFor(date Day, items []Item, limit int) Details {
	return cut(date, ActiveOn(date, items), limit)
}

// Summarize cuts an already-built calendar cell at limit.
func Summarize(c Cell, limit int) Details {
	if c.Blank {
		return Details{}
	}
	matches := make([]Item, 0, len(c.Entries))
	for _, e := range c.Entries {
		matches = append(matches, e.Item)
	}
	return cut(c.Date, matches, limit)
}

func cut(date Day, matches []Item, limit int) Details {
	if limit < 0 {
		limit = 0
	}
	visible := matches
	if len(visible) > limit {
		visible = visible[:limit:limit]
	}
	overflow := len(matches) - limit
	if overflow < 0 {
		overflow = 0
	}
	return Details{
		Date:          date,
		Visible:       visible,
		All:           matches,
		Total:         len(matches),
		OverflowCount: overflow,
	}
}
