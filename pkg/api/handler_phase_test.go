package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casemodel"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/orchestrator"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
)

func TestApprovePhaseHandler_PhaseRouting(t *testing.T) {
	tests := []struct {
		segment string
		expect  statemachine.Phase
	}{
		{"prd", statemachine.PhasePRD},
		{"system-design", statemachine.PhaseSystemDesign},
		{"effort", statemachine.PhaseEffort},
		{"cost", statemachine.PhaseCosting},
		{"value", statemachine.PhaseValue},
		{"financial", statemachine.PhaseFinancialModel},
	}

	for _, tt := range tests {
		t.Run(tt.segment, func(t *testing.T) {
			var gotPhase statemachine.Phase
			svc := &fakeCaseService{
				approve: func(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase) (*casemodel.Case, error) {
					gotPhase = phase
					return &casemodel.Case{CaseID: caseID}, nil
				},
			}
			s := newTestServer(svc)

			req := authedRequest(http.MethodPost, "/api/v1/cases/case-1/"+tt.segment+"/approve", "")
			rec := httptest.NewRecorder()
			s.echo.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.expect, gotPhase)
		})
	}
}

func TestApprovePhaseHandler_UnknownPhase(t *testing.T) {
	s := newTestServer(&fakeCaseService{})

	req := authedRequest(http.MethodPost, "/api/v1/cases/case-1/budget/approve", "")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Error.ErrorCode)
}

func TestApprovePhaseHandler_AuthorizationDenied(t *testing.T) {
	svc := &fakeCaseService{
		approve: func(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase) (*casemodel.Case, error) {
			return nil, &orchestrator.AuthorizationError{CaseID: caseID, Event: "Approve"}
		},
	}
	s := newTestServer(svc)

	req := authedRequest(http.MethodPost, "/api/v1/cases/case-1/cost/approve", "")
	req.Header.Set("X-Forwarded-Role", "SALES_MANAGER_APPROVER")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "AUTHORIZATION_DENIED", decodeError(t, rec).Error.ErrorCode)
}

func TestRejectPhaseHandler_PassesReason(t *testing.T) {
	var gotReason string
	svc := &fakeCaseService{
		reject: func(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase, reason string) (*casemodel.Case, error) {
			gotReason = reason
			return &casemodel.Case{CaseID: caseID, Status: statemachine.StatusPRDRejected}, nil
		},
	}
	s := newTestServer(svc)

	req := authedRequest(http.MethodPost, "/api/v1/cases/case-1/prd/reject", `{"reason":"Add HIPAA section"}`)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Add HIPAA section", gotReason)
}

func TestRejectPhaseHandler_EmptyBodyAllowed(t *testing.T) {
	var called bool
	svc := &fakeCaseService{
		reject: func(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase, reason string) (*casemodel.Case, error) {
			called = true
			assert.Empty(t, reason)
			return &casemodel.Case{CaseID: caseID}, nil
		},
	}
	s := newTestServer(svc)

	req := authedRequest(http.MethodPost, "/api/v1/cases/case-1/value/reject", "")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestFinalHandlers(t *testing.T) {
	t.Run("submit-final", func(t *testing.T) {
		var called bool
		svc := &fakeCaseService{
			submitFinal: func(ctx context.Context, caseID string, actor statemachine.Actor) (*casemodel.Case, error) {
				called = true
				return &casemodel.Case{CaseID: caseID, Status: statemachine.StatusPendingFinalApproval}, nil
			},
		}
		s := newTestServer(svc)

		req := authedRequest(http.MethodPost, "/api/v1/cases/case-1/submit-final", "")
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
	})

	t.Run("approve-final surfaces illegal-state rejection", func(t *testing.T) {
		svc := &fakeCaseService{
			approveFinal: func(ctx context.Context, caseID string, actor statemachine.Actor) (*casemodel.Case, error) {
				return nil, &orchestrator.IllegalStateError{CaseID: caseID, Err: assert.AnError}
			},
		}
		s := newTestServer(svc)

		req := authedRequest(http.MethodPost, "/api/v1/cases/case-1/approve-final", "")
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("reject-final passes reason", func(t *testing.T) {
		var gotReason string
		svc := &fakeCaseService{
			rejectFinal: func(ctx context.Context, caseID string, actor statemachine.Actor, reason string) (*casemodel.Case, error) {
				gotReason = reason
				return &casemodel.Case{CaseID: caseID, Status: statemachine.StatusRejected}, nil
			},
		}
		s := newTestServer(svc)

		req := authedRequest(http.MethodPost, "/api/v1/cases/case-1/reject-final", `{"reason":"ROI below threshold"}`)
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ROI below threshold", gotReason)
	})
}

func TestTriggerGenerationHandler(t *testing.T) {
	var gotPhase statemachine.Phase
	svc := &fakeCaseService{
		trigger: func(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase) (*casemodel.Case, error) {
			gotPhase = phase
			return &casemodel.Case{CaseID: caseID, Status: statemachine.StatusPRDDrafting}, nil
		},
	}
	s := newTestServer(svc)

	req := authedRequest(http.MethodPost, "/api/v1/cases/case-1/trigger/prd", "")
	req.Header.Set("X-Forwarded-Role", "ADMIN")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, statemachine.PhasePRD, gotPhase)
}
