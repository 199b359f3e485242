package cli

import (
	"io"
	"time"

	"github.com/alexanderramin/renoboard/internal/service"
	"github.com/alexanderramin/renoboard/internal/timeline"
	"github.com/spf13/cobra"
)

// App holds the services and settings CLI commands run against.
type App struct {
	Timeline service.TimelineService
	Entities service.EntityService
	Sections service.SectionService
	Import   service.ImportService

	// Resolver gives list and show views the same spans the layouts use.
	Resolver timeline.Resolver
	// Clock picks the default month and day. Nil means time.Now.
	Clock func() time.Time

	HTTPAddr string
	// HTTPLog receives the serve command's access log. Nil disables it.
	HTTPLog io.Writer

	// IsInteractive reports whether stdin is a terminal. Nil means false.
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Clock == nil {
		return time.Now()
	}
	return a.Clock()
}

func (a *App) location() *time.Location {
	if a.Resolver.Location == nil {
		return time.Local
	}
	return a.Resolver.Location
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "renoboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "renoboard",
		Short:         "Calendar and timeline views for renovation work",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCalendarCmd(app),
		newGanttCmd(app),
		newDayCmd(app),
		newEntityCmd(app),
		newSectionCmd(app),
		newImportCmd(app),
		newBrowseCmd(app),
		newServeCmd(app),
	)

	return root
}
