package domain

import "strings"

type EntityKind string

const (
	KindTicket  EntityKind = "ticket"
	KindProject EntityKind = "project"
	KindTask    EntityKind = "task"
	KindLead    EntityKind = "lead"
	KindGeneric EntityKind = "generic"
)

// ValidEntityKinds is the canonical set of accepted entity kind strings.
var ValidEntityKinds = map[string]bool{
	"ticket": true, "project": true, "task": true,
	"lead": true, "generic": true,
}

// ParseEntityKind folds s into a known kind. The kind set is open: anything
// unrecognized becomes KindGeneric, since kind never changes layout.
func ParseEntityKind(s string) EntityKind {
	k := strings.ToLower(strings.TrimSpace(s))
	if ValidEntityKinds[k] {
		return EntityKind(k)
	}
	return KindGeneric
}

// Common status values written by the ticketing and project tools. Status is
// free-form; these exist so renderers can pick colors.
const (
	StatusOpen       = "open"
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusBlocked    = "blocked"
	StatusApproved   = "approved"
	StatusDone       = "done"
	StatusCancelled  = "cancelled"
)

type InversionPolicy string

const (
	// InversionCollapse treats an end before the start as a single-day span at the start.
	InversionCollapse InversionPolicy = "collapse"
	// InversionSwap exchanges the two ends.
	InversionSwap InversionPolicy = "swap"
)
