package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/renoboard/internal/teatest"
	"github.com/alexanderramin/renoboard/internal/testutil"
	"github.com/alexanderramin/renoboard/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBrowseDriver(t *testing.T, a *App) *teatest.Driver {
	t.Helper()
	m := newBrowseModel(context.Background(), a, emptyScope, timeline.DayOf(fixedNow, time.UTC))
	d := teatest.New(t, m, teatest.WithSize(140, 60))
	d.DrainInit()
	return d
}

func selectedDay(t *testing.T, d *teatest.Driver) timeline.Day {
	t.Helper()
	m, ok := d.Model.(browseModel)
	require.True(t, ok)
	return m.selected
}

func TestBrowse_OpensOnCurrentMonth(t *testing.T) {
	a := testApp(t)
	seedEntity(t, a, "Tile", testutil.WithStart("2024-03-12"))

	d := newBrowseDriver(t, a)

	view := stripANSI(d.View())
	assert.Contains(t, view, "MARCH 2024")
	assert.Contains(t, view, "Tile")
	assert.Contains(t, view, "day details")
}

func TestBrowse_MovesSelectionAndCrossesMonths(t *testing.T) {
	a := testApp(t)
	d := newBrowseDriver(t, a)

	d.Press("right")
	assert.Equal(t, timeline.Date(2024, 3, 16), selectedDay(t, d))

	d.Press("up")
	assert.Equal(t, timeline.Date(2024, 3, 9), selectedDay(t, d))

	d.Press("]")
	assert.Equal(t, timeline.Date(2024, 4, 9), selectedDay(t, d))
	assert.Contains(t, stripANSI(d.View()), "APRIL 2024")

	d.Press("k", "k")
	assert.Equal(t, timeline.Date(2024, 3, 26), selectedDay(t, d))
	assert.Contains(t, stripANSI(d.View()), "MARCH 2024")

	d.Press("t")
	assert.Equal(t, timeline.Date(2024, 3, 15), selectedDay(t, d))
}

func TestBrowse_DetailsPanelFollowsSelection(t *testing.T) {
	a := testApp(t)
	seedEntity(t, a, "Demo day", testutil.WithStart("2024-03-15"))
	seedEntity(t, a, "Haul away", testutil.WithStart("2024-03-16"))

	d := newBrowseDriver(t, a)

	d.Press("enter")
	view := stripANSI(d.View())
	assert.Contains(t, view, "FRIDAY 2024-03-15")
	assert.Contains(t, view, "1 entry, 1 shown inline")

	d.Press("l")
	view = stripANSI(d.View())
	assert.Contains(t, view, "SATURDAY 2024-03-16")
	assert.Contains(t, view, "Haul away")

	d.Press("enter")
	assert.NotContains(t, stripANSI(d.View()), "SATURDAY 2024-03-16")
}

func TestBrowse_Quit(t *testing.T) {
	a := testApp(t)
	d := newBrowseDriver(t, a)

	d.Press("q")
	assert.True(t, d.Quitting)
}

func TestShiftMonth(t *testing.T) {
	tests := []struct {
		name  string
		from  timeline.Day
		delta int
		want  timeline.Day
	}{
		{"simple", timeline.Date(2024, 3, 15), 1, timeline.Date(2024, 4, 15)},
		{"clamps to leap February", timeline.Date(2024, 1, 31), 1, timeline.Date(2024, 2, 29)},
		{"clamps to short month", timeline.Date(2023, 3, 31), -1, timeline.Date(2023, 2, 28)},
		{"crosses year", timeline.Date(2024, 12, 5), 1, timeline.Date(2025, 1, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shiftMonth(tt.from, tt.delta))
		})
	}
}
