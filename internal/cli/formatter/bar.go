package formatter

import (
	"math"
	"strings"
)

const (
	filledBlock = "█"
	emptyTrack  = "·"
	todayTick   = "│"
)

// barCells converts a bar's ratios into a starting column and a fill length
// on a track of width cells. A bar always fills at least one cell and never
// runs past the track.
func barCells(offsetRatio, widthRatio float64, width int) (start, fill int) {
	if width < 1 {
		return 0, 0
	}
	start = int(math.Floor(offsetRatio * float64(width)))
	if start >= width {
		start = width - 1
	}
	if start < 0 {
		start = 0
	}
	fill = int(math.Round(widthRatio * float64(width)))
	if fill < 1 {
		fill = 1
	}
	if start+fill > width {
		fill = width - start
	}
	return start, fill
}

// RenderTrack draws one Gantt row: an empty track with the bar filled in and
// an optional today tick at todayCol (negative for none).
func RenderTrack(offsetRatio, widthRatio float64, width, todayCol int, render func(string) string) string {
	start, fill := barCells(offsetRatio, widthRatio, width)

	var b strings.Builder
	for col := 0; col < width; {
		switch {
		case col == start:
			b.WriteString(render(strings.Repeat(filledBlock, fill)))
			col += fill
		case col == todayCol:
			b.WriteString(StyleHeader.Render(todayTick))
			col++
		default:
			b.WriteString(StyleDim.Render(emptyTrack))
			col++
		}
	}
	return b.String()
}

// TodayColumn maps a today ratio onto a track of width cells.
func TodayColumn(ratio float64, width int) int {
	col := int(math.Floor(ratio * float64(width)))
	if col >= width {
		col = width - 1
	}
	return col
}
