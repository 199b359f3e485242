package cli

import (
	"fmt"

	"github.com/alexanderramin/renoboard/internal/cli/formatter"
	"github.com/alexanderramin/renoboard/internal/domain"
	"github.com/spf13/cobra"
)

func newSectionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "section",
		Short: "Manage renovation phases used to group the timeline",
	}

	cmd.AddCommand(
		newSectionAddCmd(app),
		newSectionListCmd(app),
		newSectionRemoveCmd(app),
	)

	return cmd
}

func newSectionAddCmd(app *App) *cobra.Command {
	var (
		name  string
		order int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s := &domain.Section{Name: name, OrderIndex: order}
			if !cmd.Flags().Changed("order") {
				existing, err := app.Sections.List(ctx)
				if err != nil {
					return err
				}
				s.OrderIndex = len(existing)
			}
			if err := app.Sections.Create(ctx, s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created section %s [%s] at position %d\n", s.Name, shortID(s.ID), s.OrderIndex)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Section name")
	cmd.Flags().IntVar(&order, "order", 0, "Position on the timeline (default: after existing sections)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newSectionListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sections in timeline order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sections, err := app.Sections.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(sections) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sections found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSectionList(sections))
			return nil
		},
	}
}

func newSectionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a section; its entities become unassigned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveSectionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Sections.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted section %s\n", shortID(id))
			return nil
		},
	}
}
