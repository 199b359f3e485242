package domain

import (
	"fmt"
	"strings"
	"time"
)

// Section is a renovation phase (demolition, rough-in, finishes...) used to
// group bars on the Gantt timeline.
type Section struct {
	ID         string
	Name       string
	OrderIndex int
	CreatedAt  time.Time
}

func (s *Section) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("section name is required")
	}
	return nil
}
