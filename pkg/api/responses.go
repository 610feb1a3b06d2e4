package api

import (
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/database"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Database *database.HealthStatus `json:"database,omitempty"`
}

// CancelResponse is returned by POST /api/v1/cases/:id/cancel.
type CancelResponse struct {
	CaseID  string `json:"case_id"`
	Message string `json:"message"`
}
