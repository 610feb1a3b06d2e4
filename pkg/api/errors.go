package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/orchestrator"
)

// ErrorBody is the wire shape of one error: a human-readable message plus a
// stable machine-readable code.
type ErrorBody struct {
	Message   string `json:"message"`
	ErrorCode string `json:"error_code"`
	Details   any    `json:"details,omitempty"`
}

// ErrorResponse wraps every non-2xx body in an "error" envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

func respondError(c *echo.Context, status int, code, message string) error {
	return c.JSON(status, &ErrorResponse{Error: ErrorBody{Message: message, ErrorCode: code}})
}

// mapOrchestratorError translates the orchestrator's error taxonomy into an
// HTTP response. InternalError detail is logged, never sent to the caller.
func mapOrchestratorError(c *echo.Context, err error) error {
	var authErr *orchestrator.AuthorizationError
	if errors.As(err, &authErr) {
		return respondError(c, http.StatusForbidden, "AUTHORIZATION_DENIED", authErr.Error())
	}

	var illegalErr *orchestrator.IllegalStateError
	if errors.As(err, &illegalErr) {
		return respondError(c, http.StatusUnprocessableEntity, "ILLEGAL_STATE", illegalErr.Error())
	}

	var validErr *orchestrator.ValidationError
	if errors.As(err, &validErr) {
		return respondError(c, http.StatusBadRequest, "VALIDATION_FAILED", validErr.Error())
	}

	var conflictErr *orchestrator.ConflictError
	if errors.As(err, &conflictErr) {
		return respondError(c, http.StatusConflict, "CONFLICT", conflictErr.Error())
	}

	var notFoundErr *orchestrator.NotFoundError
	if errors.As(err, &notFoundErr) {
		return respondError(c, http.StatusNotFound, "NOT_FOUND", "case not found")
	}

	var policyErr *orchestrator.PolicyError
	if errors.As(err, &policyErr) {
		return respondError(c, http.StatusInternalServerError, "POLICY_ERROR", policyErr.Error())
	}

	slog.Error("Unexpected orchestrator error", "error", err)
	return respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}
