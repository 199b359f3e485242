package importer

import (
	"fmt"
	"strings"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found. Dates are not checked: an
// entity with no usable date is imported and reported as skipped by the views.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	sectionRefs := make(map[string]bool)
	errs = append(errs, validateSections(schema.Sections, sectionRefs)...)
	errs = append(errs, validateDefaults(schema.Defaults, sectionRefs)...)
	errs = append(errs, validateEntities(schema.Entities, sectionRefs)...)

	return errs
}

func validateSections(sections []SectionImport, refs map[string]bool) []error {
	var errs []error
	for i, s := range sections {
		prefix := fmt.Sprintf("sections[%d]", i)
		if s.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if refs[s.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, s.Ref))
		} else {
			refs[s.Ref] = true
		}
		if strings.TrimSpace(s.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
	}
	return errs
}

func validateDefaults(d *DefaultsImport, sectionRefs map[string]bool) []error {
	if d == nil {
		return nil
	}
	var errs []error
	if d.SectionRef != "" && !sectionRefs[d.SectionRef] {
		errs = append(errs, fmt.Errorf("defaults.section_ref: unknown section %q", d.SectionRef))
	}
	return errs
}

func validateEntities(entities []EntityImport, sectionRefs map[string]bool) []error {
	var errs []error
	if len(entities) == 0 {
		errs = append(errs, fmt.Errorf("entities: at least one entity is required"))
	}

	refs := make(map[string]bool)
	for i, e := range entities {
		prefix := fmt.Sprintf("entities[%d]", i)
		if e.Ref != "" {
			if refs[e.Ref] {
				errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, e.Ref))
			}
			refs[e.Ref] = true
		}
		if strings.TrimSpace(e.Title) == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if e.SectionRef != "" && !sectionRefs[e.SectionRef] {
			errs = append(errs, fmt.Errorf("%s.section_ref: unknown section %q", prefix, e.SectionRef))
		}
		if e.PlannedDays != nil && *e.PlannedDays < 0 {
			errs = append(errs, fmt.Errorf("%s.planned_days must be >= 0, got %d", prefix, *e.PlannedDays))
		}
	}
	return errs
}
