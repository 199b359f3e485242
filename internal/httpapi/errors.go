package httpapi

import (
	"errors"
	"net/http"

	"github.com/alexanderramin/renoboard/internal/app"
	"github.com/alexanderramin/renoboard/internal/repository"
	"github.com/gin-gonic/gin"
)

type errorResp struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// mapError translates use-case errors into a status and body. Unknown errors
// are reported as 500 without their text.
func mapError(err error) (int, errorResp) {
	var reqErr *app.RequestError
	switch {
	case errors.As(err, &reqErr):
		return http.StatusBadRequest, errorResp{Code: string(reqErr.Code), Message: reqErr.Message}
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, errorResp{Code: "NOT_FOUND", Message: err.Error()}
	default:
		return http.StatusInternalServerError, errorResp{Code: "INTERNAL_ERROR", Message: "internal error"}
	}
}

func (s *Server) abort(c *gin.Context, err error) {
	status, body := mapError(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"error": body})
}
