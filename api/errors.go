package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Domenick1991/aerolinea/internal/domain"
	"github.com/gin-gonic/gin"
)

const (
	codeValidation  = "validation"
	codeReference   = "reference"
	codeNotFound    = "not_found"
	codeConflict    = "conflict"
	codePersistence = "persistence"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// writeError maps store error kinds onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, codePersistence
	switch domain.KindOf(err) {
	case domain.ErrValidation:
		status, code = http.StatusBadRequest, codeValidation
	case domain.ErrReference:
		status, code = http.StatusBadRequest, codeReference
	case domain.ErrConflict:
		status, code = http.StatusBadRequest, codeConflict
	case domain.ErrNotFound:
		status, code = http.StatusNotFound, codeNotFound
	}

	msg := err.Error()
	var derr *domain.Error
	if errors.As(err, &derr) {
		msg = derr.Message()
	}
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, errorResponse{Error: msg, Code: code})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: msg, Code: codeValidation})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return false
	}
	return true
}
