package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/alexanderramin/renoboard/internal/app"
	"github.com/alexanderramin/renoboard/internal/domain"
	"github.com/alexanderramin/renoboard/internal/timeline"
	"github.com/gin-gonic/gin"
)

func (s *Server) month(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		s.abort(c, &app.RequestError{Code: app.ErrInvalidMonth, Message: fmt.Sprintf("year %q is not a number", c.Param("year"))})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		s.abort(c, &app.RequestError{Code: app.ErrInvalidMonth, Message: fmt.Sprintf("month %q is not a number", c.Param("month"))})
		return
	}

	req := app.NewMonthRequest(year, time.Month(month))
	req.Scope = scopeFrom(c)
	if req.Limit, err = limitFrom(c); err != nil {
		s.abort(c, err)
		return
	}
	if req.Now, err = s.todayFrom(c); err != nil {
		s.abort(c, err)
		return
	}

	resp, err := s.timeline.Month(c.Request.Context(), req)
	if err != nil {
		s.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, presentMonth(resp))
}

func (s *Server) gantt(c *gin.Context) {
	req := app.GanttRequest{Scope: scopeFrom(c)}
	if raw := c.Query("min_ratio"); raw != "" {
		ratio, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			s.abort(c, &app.RequestError{Code: app.ErrInvalidRatio, Message: fmt.Sprintf("min_ratio %q is not a number", raw)})
			return
		}
		req.MinVisibleRatio = &ratio
	}
	var err error
	if req.Now, err = s.todayFrom(c); err != nil {
		s.abort(c, err)
		return
	}

	resp, err := s.timeline.Gantt(c.Request.Context(), req)
	if err != nil {
		s.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, presentGantt(resp))
}

func (s *Server) day(c *gin.Context) {
	date, err := timeline.ParseDay(c.Param("date"))
	if err != nil {
		s.abort(c, &app.RequestError{Code: app.ErrInvalidDate, Message: err.Error()})
		return
	}
	req := app.DayRequest{Date: date, Scope: scopeFrom(c)}
	if req.Limit, err = limitFrom(c); err != nil {
		s.abort(c, err)
		return
	}

	resp, err := s.timeline.Day(c.Request.Context(), req)
	if err != nil {
		s.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, presentDay(resp))
}

// scopeFrom reads repeated ?kind= values and an optional ?section=.
func scopeFrom(c *gin.Context) app.Scope {
	var scope app.Scope
	for _, k := range c.QueryArray("kind") {
		if k != "" {
			scope.Kinds = append(scope.Kinds, domain.EntityKind(k))
		}
	}
	scope.SectionID = c.Query("section")
	return scope
}

func limitFrom(c *gin.Context) (*int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &app.RequestError{Code: app.ErrInvalidLimit, Message: fmt.Sprintf("limit %q is not a number", raw)}
	}
	return &n, nil
}

func (s *Server) todayFrom(c *gin.Context) (*time.Time, error) {
	raw := c.Query("today")
	if raw == "" {
		return nil, nil
	}
	d, err := timeline.ParseDay(raw)
	if err != nil {
		return nil, &app.RequestError{Code: app.ErrInvalidDate, Message: err.Error()}
	}
	t := d.Time(s.loc)
	return &t, nil
}
