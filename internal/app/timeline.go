package app

import (
	"fmt"
	"time"

	"github.com/alexanderramin/renoboard/internal/domain"
	"github.com/alexanderramin/renoboard/internal/timeline"
)

// Scope narrows which stored entities a view considers. The zero value
// includes everything.
type Scope struct {
	Kinds     []domain.EntityKind
	SectionID string
}

type MonthRequest struct {
	Year  int
	Month time.Month
	Scope Scope
	// Limit is the per-cell inline cap. Nil uses the configured default.
	Limit *int
	// Now marks today's cell. Nil uses the wall clock.
	Now *time.Time
}

func NewMonthRequest(year int, month time.Month) MonthRequest {
	return MonthRequest{Year: year, Month: month}
}

func (r MonthRequest) Validate() error {
	if r.Month < time.January || r.Month > time.December {
		return &RequestError{Code: ErrInvalidMonth, Message: fmt.Sprintf("month must be 1-12, got %d", int(r.Month))}
	}
	if r.Year < 1 || r.Year > 9999 {
		return &RequestError{Code: ErrInvalidMonth, Message: fmt.Sprintf("year out of range: %d", r.Year)}
	}
	return validateLimit(r.Limit)
}

type MonthResponse struct {
	Grid timeline.Month
	// Cells holds the overflow summary of each grid cell, index-aligned with Grid.Cells.
	Cells    []timeline.Details
	Limit    int
	Skipped  []timeline.Skipped
	Inverted []string
}

type GanttRequest struct {
	Scope Scope
	// MinVisibleRatio overrides the configured minimum bar width when set.
	MinVisibleRatio *float64
	Now             *time.Time
}

func (r GanttRequest) Validate() error {
	if r.MinVisibleRatio != nil && (*r.MinVisibleRatio < 0 || *r.MinVisibleRatio > 1) {
		return &RequestError{Code: ErrInvalidRatio, Message: fmt.Sprintf("minimum bar width must be within 0-1, got %g", *r.MinVisibleRatio)}
	}
	return nil
}

type GanttResponse struct {
	Chart    timeline.Chart
	Skipped  []timeline.Skipped
	Inverted []string
}

type DayRequest struct {
	Date  timeline.Day
	Scope Scope
	Limit *int
}

func (r DayRequest) Validate() error {
	if r.Date.IsZero() {
		return &RequestError{Code: ErrInvalidDate, Message: "date is required"}
	}
	return validateLimit(r.Limit)
}

type DayResponse struct {
	Details timeline.Details
	Limit   int
}

func validateLimit(limit *int) error {
	if limit != nil && *limit < 0 {
		return &RequestError{Code: ErrInvalidLimit, Message: fmt.Sprintf("limit must be >= 0, got %d", *limit)}
	}
	return nil
}
