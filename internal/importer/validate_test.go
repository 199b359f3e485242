package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptrInt(i int) *int { return &i }

func validMinimalSchema() *ImportSchema {
	return &ImportSchema{
		Entities: []EntityImport{
			{Title: "Fix leaky faucet", Kind: "ticket", Start: "2024-03-10", End: "2024-03-12"},
		},
	}
}

func TestValidateImportSchema_ValidMinimal(t *testing.T) {
	errs := ValidateImportSchema(validMinimalSchema())
	assert.Empty(t, errs)
}

func TestValidateImportSchema_ValidFull(t *testing.T) {
	schema := &ImportSchema{
		Defaults: &DefaultsImport{Kind: "task", SectionRef: "demo"},
		Sections: []SectionImport{
			{Ref: "demo", Name: "Demolition"},
			{Ref: "finish", Name: "Finishes", Order: ptrInt(5)},
		},
		Entities: []EntityImport{
			{Ref: "e1", Title: "Rip out cabinets", Start: "2024-06-01", PlannedDays: ptrInt(2)},
			{Ref: "e2", Title: "Paint", SectionRef: "finish", Date: "06/10/2024"},
		},
	}
	assert.Empty(t, ValidateImportSchema(schema))
}

func TestValidateImportSchema_UnparsableDatesAreNotErrors(t *testing.T) {
	schema := &ImportSchema{
		Entities: []EntityImport{
			{Title: "Mystery", Start: "Invalid Date", End: "soon"},
		},
	}
	assert.Empty(t, ValidateImportSchema(schema))
}

func TestValidateImportSchema_Errors(t *testing.T) {
	cases := []struct {
		name   string
		schema *ImportSchema
		want   string
	}{
		{
			name:   "no entities",
			schema: &ImportSchema{},
			want:   "at least one entity",
		},
		{
			name:   "missing title",
			schema: &ImportSchema{Entities: []EntityImport{{Title: "  "}}},
			want:   "entities[0].title is required",
		},
		{
			name: "duplicate entity ref",
			schema: &ImportSchema{Entities: []EntityImport{
				{Ref: "a", Title: "One"},
				{Ref: "a", Title: "Two"},
			}},
			want: `entities[1].ref: duplicate ref "a"`,
		},
		{
			name:   "unknown section",
			schema: &ImportSchema{Entities: []EntityImport{{Title: "One", SectionRef: "nope"}}},
			want:   `unknown section "nope"`,
		},
		{
			name:   "negative planned days",
			schema: &ImportSchema{Entities: []EntityImport{{Title: "One", PlannedDays: ptrInt(-1)}}},
			want:   "planned_days must be >= 0",
		},
		{
			name: "section missing ref and name",
			schema: &ImportSchema{
				Sections: []SectionImport{{}},
				Entities: []EntityImport{{Title: "One"}},
			},
			want: "sections[0].ref is required",
		},
		{
			name: "duplicate section ref",
			schema: &ImportSchema{
				Sections: []SectionImport{{Ref: "s", Name: "A"}, {Ref: "s", Name: "B"}},
				Entities: []EntityImport{{Title: "One"}},
			},
			want: `sections[1].ref: duplicate ref "s"`,
		},
		{
			name: "defaults unknown section",
			schema: &ImportSchema{
				Defaults: &DefaultsImport{SectionRef: "ghost"},
				Entities: []EntityImport{{Title: "One"}},
			},
			want: `defaults.section_ref: unknown section "ghost"`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := ValidateImportSchema(tc.schema)
			if assert.NotEmpty(t, errs) {
				assert.Contains(t, joinErrs(errs), tc.want)
			}
		})
	}
}

func TestValidateImportSchema_CollectsAllErrors(t *testing.T) {
	schema := &ImportSchema{
		Sections: []SectionImport{{Ref: "s"}},
		Entities: []EntityImport{
			{Title: ""},
			{Title: "Ok", SectionRef: "x", PlannedDays: ptrInt(-3)},
		},
	}
	errs := ValidateImportSchema(schema)
	assert.Len(t, errs, 4)
}

func joinErrs(errs []error) string {
	var s string
	for _, e := range errs {
		s += e.Error() + "\n"
	}
	return s
}
