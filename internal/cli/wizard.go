package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/renoboard/internal/cli/formatter"
	"github.com/alexanderramin/renoboard/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// renoHuhTheme returns a huh theme matching the formatter palette.
func renoHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// validateOptionalDate accepts empty or YYYY-MM-DD.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// entityDraft holds form values as strings until the form completes.
type entityDraft struct {
	Title       string
	Kind        string
	Status      string
	SectionID   string
	Start       string
	End         string
	PlannedDays string
}

func (d *entityDraft) apply(e *domain.ScheduledEntity) error {
	e.Title = strings.TrimSpace(d.Title)
	e.Kind = domain.EntityKind(d.Kind)
	e.Status = strings.TrimSpace(d.Status)
	e.SectionID = d.SectionID
	if d.Start != "" {
		e.RawStart = domain.DateText(d.Start)
	}
	if d.End != "" {
		e.RawEnd = domain.DateText(d.End)
	}
	if d.PlannedDays != "" {
		n, err := strconv.Atoi(d.PlannedDays)
		if err != nil {
			return fmt.Errorf("planned days: %w", err)
		}
		e.PlannedDays = n
	}
	return nil
}

// entityForm builds the interactive form behind "entity add --interactive".
func entityForm(ctx context.Context, app *App, draft *entityDraft) (*huh.Form, error) {
	kindOpts := make([]huh.Option[string], 0, 5)
	for _, k := range []domain.EntityKind{domain.KindTask, domain.KindTicket, domain.KindProject, domain.KindLead, domain.KindGeneric} {
		kindOpts = append(kindOpts, huh.NewOption(string(k), string(k)))
	}

	sections, err := app.Sections.List(ctx)
	if err != nil {
		return nil, err
	}
	sectionOpts := []huh.Option[string]{huh.NewOption("(none)", "")}
	for _, s := range sections {
		sectionOpts = append(sectionOpts, huh.NewOption(s.Name, s.ID))
	}

	if draft.Kind == "" {
		draft.Kind = string(domain.KindTask)
	}
	if draft.Status == "" {
		draft.Status = domain.StatusOpen
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&draft.Title).Validate(validateRequired),
			huh.NewSelect[string]().Title("Kind").Options(kindOpts...).Value(&draft.Kind),
			huh.NewInput().Title("Status").Placeholder(domain.StatusOpen).Value(&draft.Status),
			huh.NewSelect[string]().Title("Section").Options(sectionOpts...).Value(&draft.SectionID),
		),
		huh.NewGroup(
			huh.NewInput().Title("Start (YYYY-MM-DD)").Placeholder("2025-06-30").Value(&draft.Start).Validate(validateOptionalDate),
			huh.NewInput().Title("End (YYYY-MM-DD, blank for single day)").Value(&draft.End).Validate(validateOptionalDate),
			huh.NewInput().Title("Planned days (blank if unknown)").Value(&draft.PlannedDays).Validate(validateNonNegativeInt),
		),
	).WithTheme(renoHuhTheme()).WithShowHelp(false), nil
}

// confirmForm asks a yes/no question.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(renoHuhTheme()).WithShowHelp(false)
}
