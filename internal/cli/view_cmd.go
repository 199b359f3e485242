package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/renoboard/internal/app"
	"github.com/alexanderramin/renoboard/internal/cli/formatter"
	"github.com/alexanderramin/renoboard/internal/timeline"
	"github.com/spf13/cobra"
)

var emptyScope app.Scope

// resolveScope reads the shared filter flags and resolves --section to an ID.
func resolveScope(ctx context.Context, a *App, f *scopeFlags) (app.Scope, error) {
	scope, err := f.scope()
	if err != nil {
		return app.Scope{}, err
	}
	if scope.SectionID, err = resolveSectionID(ctx, a, scope.SectionID); err != nil {
		return app.Scope{}, err
	}
	return scope, nil
}

func newCalendarCmd(a *App) *cobra.Command {
	var (
		month  monthValue
		today  dayValue
		limit  int
		filter scopeFlags
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month grid of scheduled entities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			scope, err := resolveScope(ctx, a, &filter)
			if err != nil {
				return err
			}
			if !month.isSet() {
				now := a.now().In(a.location())
				month.year, month.month = now.Year(), now.Month()
			}

			req := app.NewMonthRequest(month.year, month.month)
			req.Scope = scope
			req.Limit = limitFlag(cmd, limit)
			req.Now = todayFlag(&today, a.location())

			resp, err := a.Timeline.Month(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMonth(resp, timeline.Day{}))
			return nil
		},
	}

	cmd.Flags().Var(&month, "month", "Month to show (YYYY-MM, default current month)")
	cmd.Flags().Var(&today, "today", "Reference day for the today marker (YYYY-MM-DD)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Entries shown per day before \"+N more\"")
	filter.register(cmd.Flags())

	return cmd
}

func newGanttCmd(a *App) *cobra.Command {
	var (
		today    dayValue
		minRatio float64
		width    int
		filter   scopeFlags
	)

	cmd := &cobra.Command{
		Use:   "gantt",
		Short: "Show a proportional timeline grouped by section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			scope, err := resolveScope(ctx, a, &filter)
			if err != nil {
				return err
			}

			req := app.GanttRequest{Scope: scope, Now: todayFlag(&today, a.location())}
			if cmd.Flags().Changed("min-width") {
				req.MinVisibleRatio = &minRatio
			}

			resp, err := a.Timeline.Gantt(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGantt(resp, width))
			return nil
		},
	}

	cmd.Flags().Var(&today, "today", "Reference day for the today marker (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&minRatio, "min-width", timeline.DefaultMinVisibleRatio, "Minimum bar width as a fraction of the timeline (0-1)")
	cmd.Flags().IntVar(&width, "width", formatter.DefaultTrackWidth, "Track width in columns")
	filter.register(cmd.Flags())

	return cmd
}

func newDayCmd(a *App) *cobra.Command {
	var (
		date   dayValue
		limit  int
		filter scopeFlags
	)

	cmd := &cobra.Command{
		Use:   "day",
		Short: "List everything scheduled on one day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			scope, err := resolveScope(ctx, a, &filter)
			if err != nil {
				return err
			}

			resp, err := a.Timeline.Day(ctx, app.DayRequest{
				Date:  date.day,
				Scope: scope,
				Limit: limitFlag(cmd, limit),
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDayDetails(resp))
			return nil
		},
	}

	cmd.Flags().Var(&date, "date", "Day to show (YYYY-MM-DD)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Entries counted as shown inline")
	filter.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
