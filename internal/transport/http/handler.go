package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"courseadmin/internal/domain"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrCourseNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrGrantNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmailExists),
		errors.Is(err, domain.ErrGrantExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrWeakPassword),
		errors.Is(err, domain.ErrSamePassword),
		errors.Is(err, domain.ErrWrongPassword),
		errors.Is(err, domain.ErrNoValidSections),
		errors.Is(err, domain.ErrIndexOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail maps a use case error onto the response. Store failures are
// logged and replaced with the handler's generic message so internals
// never cross the boundary.
func fail(c *gin.Context, err error, fallback string) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).
			Str("path", c.Request.URL.Path).
			Msg(fallback)
		msg = fallback
	}
	c.JSON(status, gin.H{"error": msg})
}
