package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveEntityID accepts a full entity ID or a unique prefix of one.
func resolveEntityID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("entity ID is required")
	}
	if e, err := app.Entities.GetByID(ctx, input); err == nil {
		return e.ID, nil
	}

	entities, err := app.Entities.List(ctx, emptyScope)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, e := range entities {
		if strings.HasPrefix(e.ID, input) {
			matches = append(matches, e.ID)
		}
	}
	return pickMatch("entity", input, matches)
}

// resolveSectionID accepts a section ID, a unique ID prefix, or an exact
// (case-insensitive) section name.
func resolveSectionID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", nil
	}
	sections, err := app.Sections.List(ctx)
	if err != nil {
		return "", err
	}

	for _, s := range sections {
		if s.ID == input {
			return s.ID, nil
		}
	}
	for _, s := range sections {
		if strings.EqualFold(s.Name, input) {
			return s.ID, nil
		}
	}
	var matches []string
	for _, s := range sections {
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}
	return pickMatch("section", input, matches)
}

func pickMatch(what, input string, matches []string) (string, error) {
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", what, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", what, input, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
