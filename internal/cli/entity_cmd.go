package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/renoboard/internal/cli/formatter"
	"github.com/alexanderramin/renoboard/internal/domain"
	"github.com/spf13/cobra"
)

func newEntityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entity",
		Aliases: []string{"e"},
		Short:   "Manage tickets, projects, tasks and leads",
	}

	cmd.AddCommand(
		newEntityAddCmd(app),
		newEntityListCmd(app),
		newEntityShowCmd(app),
		newEntityUpdateCmd(app),
		newEntityRemoveCmd(app),
	)

	return cmd
}

// entityDateFlags are the raw date fields accepted verbatim on add/update.
type entityDateFlags struct {
	start, date, created, scheduled, end string
}

func (f *entityDateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.start, "start", "", "Start date")
	cmd.Flags().StringVar(&f.date, "date", "", "Generic date (used when no start)")
	cmd.Flags().StringVar(&f.created, "created", "", "Creation date (fallback start)")
	cmd.Flags().StringVar(&f.scheduled, "scheduled", "", "Scheduled date (last fallback start)")
	cmd.Flags().StringVar(&f.end, "end", "", "End date (inclusive)")
}

// apply copies each flag the user set; unset flags leave the field alone.
func (f *entityDateFlags) apply(cmd *cobra.Command, e *domain.ScheduledEntity) {
	set := func(name, value string, field *domain.DateValue) {
		if cmd.Flags().Changed(name) {
			*field = domain.DateText(value)
		}
	}
	set("start", f.start, &e.RawStart)
	set("date", f.date, &e.RawDate)
	set("created", f.created, &e.RawCreated)
	set("scheduled", f.scheduled, &e.RawScheduled)
	set("end", f.end, &e.RawEnd)
}

func newEntityAddCmd(app *App) *cobra.Command {
	var (
		title, kind, status, section string
		plannedDays                  int
		interactive                  bool
		dates                        entityDateFlags
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an entity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e := &domain.ScheduledEntity{}

			if interactive || (title == "" && app.interactive()) {
				draft := &entityDraft{Title: title, Kind: kind, Status: status}
				form, err := entityForm(ctx, app, draft)
				if err != nil {
					return err
				}
				if err := form.Run(); err != nil {
					return err
				}
				if err := draft.apply(e); err != nil {
					return err
				}
			} else {
				if title == "" {
					return fmt.Errorf("--title is required")
				}
				if kind != "" && !domain.ValidEntityKinds[kind] {
					return fmt.Errorf("unknown kind %q", kind)
				}
				sectionID, err := resolveSectionID(ctx, app, section)
				if err != nil {
					return err
				}
				e.Title = title
				e.Kind = domain.EntityKind(kind)
				e.Status = status
				e.SectionID = sectionID
				e.PlannedDays = plannedDays
				dates.apply(cmd, e)
			}

			if err := app.Entities.Create(ctx, e); err != nil {
				return err
			}
			writeCreated(cmd.OutOrStdout(), app, e)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title")
	cmd.Flags().StringVar(&kind, "kind", "", "Kind: ticket, project, task, lead or generic")
	cmd.Flags().StringVar(&status, "status", "", "Status (default open)")
	cmd.Flags().StringVar(&section, "section", "", "Section ID or name")
	cmd.Flags().IntVar(&plannedDays, "planned-days", 0, "Planned duration in days, used when there is no end")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in the entity with a form")
	dates.register(cmd)

	return cmd
}

// writeCreated confirms a create and warns when the entity has no usable
// date, since it will not appear on any view.
func writeCreated(w io.Writer, app *App, e *domain.ScheduledEntity) {
	rng := app.Resolver.Normalize(e)
	fmt.Fprintf(w, "Created %s %s [%s] %s\n", e.Kind, e.Title, e.DisplayID(), formatter.FormatSpan(rng))
	if !rng.Valid {
		fmt.Fprintln(w, formatter.StyleYellow.Render("No usable date: it will not appear on the calendar or timeline."))
	}
}

func newEntityListCmd(app *App) *cobra.Command {
	var filter scopeFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entities with their resolved spans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			scope, err := resolveScope(ctx, app, &filter)
			if err != nil {
				return err
			}
			entities, err := app.Entities.List(ctx, scope)
			if err != nil {
				return err
			}
			if len(entities) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entities found.")
				return nil
			}

			names, err := sectionNames(ctx, app)
			if err != nil {
				return err
			}
			rows := make([]formatter.EntityRow, 0, len(entities))
			for i := range entities {
				rows = append(rows, entityRow(app, &entities[i], names))
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEntityList(rows))
			return nil
		},
	}

	filter.register(cmd.Flags())
	return cmd
}

func newEntityShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show an entity's raw dates and resolved span",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveEntityID(ctx, app, args[0])
			if err != nil {
				return err
			}
			e, err := app.Entities.GetByID(ctx, id)
			if err != nil {
				return err
			}
			names, err := sectionNames(ctx, app)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEntityDetail(entityRow(app, e, names)))
			return nil
		},
	}
}

func newEntityUpdateCmd(app *App) *cobra.Command {
	var (
		title, kind, status, section string
		plannedDays                  int
		dates                        entityDateFlags
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change an entity's fields or dates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveEntityID(ctx, app, args[0])
			if err != nil {
				return err
			}
			e, err := app.Entities.GetByID(ctx, id)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("title") {
				e.Title = title
			}
			if flags.Changed("kind") {
				if !domain.ValidEntityKinds[kind] {
					return fmt.Errorf("unknown kind %q", kind)
				}
				e.Kind = domain.EntityKind(kind)
			}
			if flags.Changed("status") {
				e.Status = status
			}
			if flags.Changed("section") {
				if e.SectionID, err = resolveSectionID(ctx, app, section); err != nil {
					return err
				}
			}
			if flags.Changed("planned-days") {
				e.PlannedDays = plannedDays
			}
			dates.apply(cmd, e)

			if err := app.Entities.Update(ctx, e); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s [%s] %s\n", e.Title, e.DisplayID(), formatter.FormatSpan(app.Resolver.Normalize(e)))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title")
	cmd.Flags().StringVar(&kind, "kind", "", "Kind")
	cmd.Flags().StringVar(&status, "status", "", "Status")
	cmd.Flags().StringVar(&section, "section", "", "Section ID or name (empty to clear)")
	cmd.Flags().IntVar(&plannedDays, "planned-days", 0, "Planned duration in days")
	dates.register(cmd)

	return cmd
}

func newEntityRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Delete an entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveEntityID(ctx, app, args[0])
			if err != nil {
				return err
			}
			e, err := app.Entities.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if !force && app.interactive() {
				confirmed := false
				if err := confirmForm(fmt.Sprintf("Delete %q?", e.Title), &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			if err := app.Entities.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s [%s]\n", e.Title, e.DisplayID())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")
	return cmd
}

func sectionNames(ctx context.Context, app *App) (map[string]string, error) {
	sections, err := app.Sections.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(sections))
	for _, s := range sections {
		names[s.ID] = s.Name
	}
	return names, nil
}

func entityRow(app *App, e *domain.ScheduledEntity, names map[string]string) formatter.EntityRow {
	return formatter.EntityRow{
		Entity:      *e,
		Range:       app.Resolver.Normalize(e),
		SectionName: names[e.SectionID],
	}
}
