package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/metrics-lab/staticpress/pkg/services"
	"github.com/metrics-lab/staticpress/pkg/upstream"
)

// mapServiceError translates service-layer errors into an HTTP status
// and message.
func mapServiceError(err error) (int, string) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, validErr.Error()
	}
	if errors.Is(err, services.ErrNotFound) {
		return http.StatusNotFound, "resource not found"
	}
	if errors.Is(err, services.ErrAlreadyInProgress) {
		return http.StatusConflict, "a build or agent run is already in progress for this site"
	}
	if errors.Is(err, services.ErrInvalidTransition) {
		return http.StatusConflict, "operation not permitted in the current state"
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return http.StatusConflict, "resource already exists"
	}
	if upstream.IsTransient(err) {
		return http.StatusBadGateway, "upstream dependency failed, retry later"
	}

	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, "internal server error"
}

// respondError writes the mapped error response.
func respondError(c *gin.Context, err error) {
	status, message := mapServiceError(err)
	c.JSON(status, gin.H{"error": message})
}
