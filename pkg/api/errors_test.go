package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/metrics-lab/staticpress/pkg/services"
	"github.com/metrics-lab/staticpress/pkg/upstream"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "validation error",
			err:        services.NewValidationError("scope", "must be full or partial"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrapped validation error",
			err:        fmt.Errorf("trigger: %w", services.NewValidationError("name", "required")),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not found",
			err:        services.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "slot held",
			err:        services.ErrAlreadyInProgress,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "invalid transition",
			err:        services.ErrInvalidTransition,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "already exists",
			err:        services.ErrAlreadyExists,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "transient upstream",
			err:        upstream.Transient(errors.New("edge deploy timed out")),
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.NotEmpty(t, msg)
		})
	}
}
