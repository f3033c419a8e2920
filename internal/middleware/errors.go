package middleware

import (
	"net/http" // HTTP status codes

	"rpg_backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorBody is the JSON error envelope
type ErrorBody struct {
	Kind    domain.Kind `json:"kind"`
	Message string      `json:"message"`
}

// ErrorResponse wraps ErrorBody under "error"
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

var statusByKind = map[domain.Kind]int{
	domain.KindBadRequest:   http.StatusBadRequest,
	domain.KindUnauthorized: http.StatusUnauthorized,
	domain.KindForbidden:    http.StatusForbidden,
	domain.KindNotFound:     http.StatusNotFound,
	domain.KindConflict:     http.StatusConflict,
	domain.KindNotAllowed:   http.StatusMethodNotAllowed,
	domain.KindInternal:     http.StatusInternalServerError,
}

// StatusOf maps an error kind to its HTTP status
func StatusOf(kind domain.Kind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ErrorHandler renders the last error recorded with c.Error. Unclassified
// errors are logged and answered with a generic 500 so internals never leak.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		kind := domain.KindOf(err)
		message := err.Error()
		if kind == domain.KindInternal {
			logrus.WithFields(logrus.Fields{
				"request_id": c.GetString(ContextRequestID),
				"path":       c.FullPath(),
				"error":      err.Error(),
			}).Error("Request failed")
			message = "internal server error"
		}
		c.JSON(StatusOf(kind), ErrorResponse{Error: ErrorBody{Kind: kind, Message: message}})
	}
}

// Reject answers with err through ErrorHandler; used for NoRoute and NoMethod
func Reject(err error) gin.HandlerFunc {
	return func(c *gin.Context) {
		abort(c, err)
	}
}

// Recovery turns panics into an internal error response
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString(ContextRequestID),
			"panic":      recovered,
		}).Error("Panic recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: ErrorBody{
			Kind:    domain.KindInternal,
			Message: "internal server error",
		}})
	})
}
