package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/renoboard/internal/app"
	"github.com/alexanderramin/renoboard/internal/cli/formatter"
	"github.com/alexanderramin/renoboard/internal/timeline"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCmd(a *App) *cobra.Command {
	var (
		month  monthValue
		filter scopeFlags
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the calendar interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			scope, err := resolveScope(ctx, a, &filter)
			if err != nil {
				return err
			}
			start := timeline.DayOf(a.now(), a.location())
			if month.isSet() {
				start = timeline.Date(month.year, month.month, 1)
			}
			m := newBrowseModel(ctx, a, scope, start)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}

	cmd.Flags().Var(&month, "month", "Month to open (YYYY-MM, default current month)")
	filter.register(cmd.Flags())
	return cmd
}

type browseKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	Details   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultBrowseKeys() browseKeyMap {
	return browseKeyMap{
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		PrevMonth: key.NewBinding(key.WithKeys("[", "p"), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]", "n"), key.WithHelp("]", "next month")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Details:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "day details")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Details, k.Help, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PrevMonth, k.NextMonth, k.Today},
		{k.Details, k.Help, k.Quit},
	}
}

type monthLoadedMsg struct {
	resp *app.MonthResponse
	err  error
}

type dayLoadedMsg struct {
	resp *app.DayResponse
	err  error
}

// browseModel is a month calendar with a movable day selection. Enter opens
// the full list behind the selected day in a scrollable panel.
type browseModel struct {
	ctx   context.Context
	app   *App
	scope app.Scope

	selected timeline.Day
	today    timeline.Day
	month    *app.MonthResponse
	day      *app.DayResponse

	showDetails bool
	details     viewport.Model
	keys        browseKeyMap
	help        help.Model
	width       int
	height      int
	err         error
}

func newBrowseModel(ctx context.Context, a *App, scope app.Scope, start timeline.Day) browseModel {
	return browseModel{
		ctx:      ctx,
		app:      a,
		scope:    scope,
		selected: start,
		today:    timeline.DayOf(a.now(), a.location()),
		details:  viewport.New(0, 0),
		keys:     defaultBrowseKeys(),
		help:     help.New(),
	}
}

func (m browseModel) Init() tea.Cmd {
	return m.loadMonth()
}

func (m browseModel) loadMonth() tea.Cmd {
	req := app.NewMonthRequest(m.selected.Year, m.selected.Month)
	req.Scope = m.scope
	now := m.app.now()
	req.Now = &now
	return func() tea.Msg {
		resp, err := m.app.Timeline.Month(m.ctx, req)
		return monthLoadedMsg{resp: resp, err: err}
	}
}

func (m browseModel) loadDay() tea.Cmd {
	req := app.DayRequest{Date: m.selected, Scope: m.scope}
	return func() tea.Msg {
		resp, err := m.app.Timeline.Day(m.ctx, req)
		return dayLoadedMsg{resp: resp, err: err}
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.details.Width = msg.Width
		m.details.Height = m.detailsHeight()
		return m, nil

	case monthLoadedMsg:
		m.month, m.err = msg.resp, msg.err
		if m.showDetails && m.err == nil {
			return m, m.loadDay()
		}
		return m, nil

	case dayLoadedMsg:
		m.day, m.err = msg.resp, msg.err
		if msg.resp != nil {
			m.details.SetContent(formatter.FormatDayDetails(msg.resp))
			m.details.GotoTop()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.details.Height = m.detailsHeight()
		return m, nil
	case key.Matches(msg, m.keys.Details):
		m.showDetails = !m.showDetails
		if m.showDetails {
			return m, m.loadDay()
		}
		return m, nil
	case key.Matches(msg, m.keys.Left):
		return m.moveTo(m.selected.AddDays(-1))
	case key.Matches(msg, m.keys.Right):
		return m.moveTo(m.selected.AddDays(1))
	case key.Matches(msg, m.keys.Up):
		return m.moveTo(m.selected.AddDays(-7))
	case key.Matches(msg, m.keys.Down):
		return m.moveTo(m.selected.AddDays(7))
	case key.Matches(msg, m.keys.PrevMonth):
		return m.moveTo(shiftMonth(m.selected, -1))
	case key.Matches(msg, m.keys.NextMonth):
		return m.moveTo(shiftMonth(m.selected, 1))
	case key.Matches(msg, m.keys.Today):
		return m.moveTo(m.today)
	}

	if m.showDetails {
		var cmd tea.Cmd
		m.details, cmd = m.details.Update(msg)
		return m, cmd
	}
	return m, nil
}

// moveTo changes the selection, reloading the month when it changes.
func (m browseModel) moveTo(d timeline.Day) (tea.Model, tea.Cmd) {
	crossed := d.Year != m.selected.Year || d.Month != m.selected.Month
	m.selected = d
	switch {
	case crossed:
		return m, m.loadMonth()
	case m.showDetails:
		return m, m.loadDay()
	}
	return m, nil
}

// shiftMonth moves by whole months, clamping the day to the target month's
// length (January 31 + 1 month is February 29 in a leap year).
func shiftMonth(d timeline.Day, delta int) timeline.Day {
	first := timeline.Date(d.Year, d.Month+time.Month(delta), 1)
	day := d.Day
	if n := timeline.DaysIn(first.Year, first.Month); day > n {
		day = n
	}
	return timeline.Date(first.Year, first.Month, day)
}

func (m browseModel) detailsHeight() int {
	h := m.height / 3
	if h < 5 {
		h = 5
	}
	return h
}

func (m browseModel) View() string {
	var b strings.Builder
	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	case m.month == nil:
		b.WriteString(formatter.Dim("Loading..."))
		b.WriteString("\n")
	default:
		b.WriteString(formatter.FormatMonth(m.month, m.selected))
	}

	if m.showDetails && m.day != nil {
		b.WriteString("\n")
		b.WriteString(m.details.View())
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}
