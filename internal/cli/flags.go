package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/renoboard/internal/app"
	"github.com/alexanderramin/renoboard/internal/domain"
	"github.com/alexanderramin/renoboard/internal/timeline"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// monthValue is a YYYY-MM flag.
type monthValue struct {
	year  int
	month time.Month
}

var _ pflag.Value = (*monthValue)(nil)

func (v *monthValue) String() string {
	if v.year == 0 {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", v.year, int(v.month))
}

func (v *monthValue) Set(s string) error {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return fmt.Errorf("use YYYY-MM")
	}
	v.year, v.month = t.Year(), t.Month()
	return nil
}

func (v *monthValue) Type() string { return "month" }

func (v *monthValue) isSet() bool { return v.year != 0 }

// dayValue is a YYYY-MM-DD flag.
type dayValue struct {
	day timeline.Day
}

var _ pflag.Value = (*dayValue)(nil)

func (v *dayValue) String() string { return v.day.String() }

func (v *dayValue) Set(s string) error {
	d, err := timeline.ParseDay(s)
	if err != nil {
		return err
	}
	v.day = d
	return nil
}

func (v *dayValue) Type() string { return "date" }

// scopeFlags are the --kind and --section filters shared by the view commands.
type scopeFlags struct {
	kinds   []string
	section string
}

func (f *scopeFlags) register(fs *pflag.FlagSet) {
	fs.StringSliceVar(&f.kinds, "kind", nil, "Only include these kinds (repeatable: ticket, project, task, lead, generic)")
	fs.StringVar(&f.section, "section", "", "Only include entities in this section ID")
}

func (f *scopeFlags) scope() (app.Scope, error) {
	var s app.Scope
	for _, k := range f.kinds {
		if !domain.ValidEntityKinds[k] {
			return app.Scope{}, fmt.Errorf("unknown kind %q", k)
		}
		s.Kinds = append(s.Kinds, domain.EntityKind(k))
	}
	s.SectionID = f.section
	return s, nil
}

// limitFlag returns the --limit value only when the user set it, so the
// configured default applies otherwise.
func limitFlag(cmd *cobra.Command, limit int) *int {
	if !cmd.Flags().Changed("limit") {
		return nil
	}
	return &limit
}

// todayFlag turns an optional --today override into an instant in loc.
func todayFlag(v *dayValue, loc *time.Location) *time.Time {
	if v.day.IsZero() {
		return nil
	}
	t := v.day.Time(loc)
	return &t
}
