package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/orchestrator"
)

func TestMapOrchestratorError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectTag  string
	}{
		{
			name:       "authorization error maps to 403",
			err:        &orchestrator.AuthorizationError{CaseID: "c1", Event: "Approve"},
			expectCode: http.StatusForbidden,
			expectTag:  "AUTHORIZATION_DENIED",
		},
		{
			name:       "illegal state maps to 422",
			err:        &orchestrator.IllegalStateError{CaseID: "c1", Err: errors.New("not pending review")},
			expectCode: http.StatusUnprocessableEntity,
			expectTag:  "ILLEGAL_STATE",
		},
		{
			name:       "validation error maps to 400",
			err:        &orchestrator.ValidationError{CaseID: "c1", Err: errors.New("total_hours mismatch")},
			expectCode: http.StatusBadRequest,
			expectTag:  "VALIDATION_FAILED",
		},
		{
			name:       "conflict maps to 409",
			err:        &orchestrator.ConflictError{CaseID: "c1"},
			expectCode: http.StatusConflict,
			expectTag:  "CONFLICT",
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", &orchestrator.NotFoundError{CaseID: "c1"}),
			expectCode: http.StatusNotFound,
			expectTag:  "NOT_FOUND",
		},
		{
			name:       "unknown error maps to 500 without leaking detail",
			err:        errors.New("pgx: connection reset"),
			expectCode: http.StatusInternalServerError,
			expectTag:  "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, mapOrchestratorError(c, tt.err))
			assert.Equal(t, tt.expectCode, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectTag, resp.Error.ErrorCode)
			assert.NotEmpty(t, resp.Error.Message)
			if tt.expectTag == "INTERNAL_ERROR" {
				assert.NotContains(t, resp.Error.Message, "pgx")
			}
		})
	}
}
