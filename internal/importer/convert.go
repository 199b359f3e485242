package importer

import (
	"time"

	"github.com/alexanderramin/renoboard/internal/domain"
	"github.com/google/uuid"
)

// Batch is a converted import ready for persistence. Sections must be
// written before entities.
type Batch struct {
	Sections []*domain.Section
	Entities []*domain.ScheduledEntity
}

// Convert transforms a validated ImportSchema into domain objects.
// Call ValidateImportSchema first; Convert assumes the schema is valid and
// drops section refs it cannot resolve.
func Convert(schema *ImportSchema, now time.Time) *Batch {
	now = now.UTC()
	batch := &Batch{}

	refMap := make(map[string]string) // section ref -> UUID
	for i, s := range schema.Sections {
		sec := &domain.Section{
			ID:         uuid.New().String(),
			Name:       s.Name,
			OrderIndex: domain.IntFromPtrWithDefault(i, s.Order),
			CreatedAt:  now,
		}
		refMap[s.Ref] = sec.ID
		batch.Sections = append(batch.Sections, sec)
	}

	var defaults DefaultsImport
	if schema.Defaults != nil {
		defaults = *schema.Defaults
	}

	for _, e := range schema.Entities {
		// Entity field > file defaults > built-in default.
		kind := domain.ParseEntityKind(domain.CoalesceStr(e.Kind, defaults.Kind, string(domain.KindGeneric)))
		status := domain.CoalesceStr(e.Status, defaults.Status, domain.StatusOpen)
		sectionRef := domain.CoalesceStr(e.SectionRef, defaults.SectionRef)

		entity := &domain.ScheduledEntity{
			ID:           uuid.New().String(),
			Kind:         kind,
			Title:        e.Title,
			Status:       status,
			SectionID:    refMap[sectionRef],
			RawStart:     domain.DateText(string(e.Start)),
			RawDate:      domain.DateText(string(e.Date)),
			RawCreated:   domain.DateText(string(e.Created)),
			RawScheduled: domain.DateText(string(e.Scheduled)),
			RawEnd:       domain.DateText(string(e.End)),
			PlannedDays:  domain.IntFromPtrWithDefault(0, e.PlannedDays),
			Metadata:     copyMetadata(e.Metadata, e.Ref),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		batch.Entities = append(batch.Entities, entity)
	}
	return batch
}

// copyMetadata copies m and records the file ref under import_ref.
func copyMetadata(m map[string]string, ref string) map[string]string {
	if len(m) == 0 && ref == "" {
		return nil
	}
	out := make(map[string]string, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	if ref != "" {
		out["import_ref"] = ref
	}
	return out
}
