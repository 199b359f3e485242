package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/renoboard/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleToday  = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true).Underline(true)
)

// titleCase builds a Caser per call; Casers are stateful and not safe to share.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// KindColor returns the style used for an entity kind everywhere it is drawn.
func KindColor(kind domain.EntityKind) lipgloss.Style {
	switch kind {
	case domain.KindTicket:
		return StyleRed
	case domain.KindProject:
		return StylePurple
	case domain.KindTask:
		return StyleBlue
	case domain.KindLead:
		return StyleYellow
	default:
		return StyleFg
	}
}

// KindBadge returns a title-cased, colored kind label such as "Ticket".
func KindBadge(kind domain.EntityKind) string {
	if kind == "" {
		return StyleDim.Render("--")
	}
	return KindColor(kind).Render(titleCase(string(kind)))
}

// StatusPill returns a colored status indicator. Unknown statuses are shown
// dimmed with underscores turned into spaces.
func StatusPill(status string) string {
	label := titleCase(strings.ReplaceAll(status, "_", " "))
	switch status {
	case domain.StatusOpen, domain.StatusPending:
		return StyleBlue.Render("○ " + label)
	case domain.StatusInProgress, domain.StatusApproved:
		return StyleGreen.Render("● " + label)
	case domain.StatusBlocked:
		return StyleRed.Render("▲ " + label)
	case domain.StatusDone:
		return StyleDim.Render("✔ " + label)
	case domain.StatusCancelled:
		return StyleDim.Render("✖ " + label)
	case "":
		return StyleDim.Render("--")
	default:
		return StyleDim.Render(label)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
