package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casemodel"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casestore"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/orchestrator"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
)

// fakeCaseService substitutes the orchestrator behind the handlers; each
// field overrides one CaseService method, the rest return NotFoundError.
type fakeCaseService struct {
	initiate     func(ctx context.Context, actor statemachine.Actor, req casemodel.CreateCaseRequest) (*casemodel.Case, error)
	get          func(ctx context.Context, caseID string) (*casemodel.Case, error)
	listByOwner  func(ctx context.Context, ownerUserID string, filter casestore.ListFilter) ([]*casemodel.Case, int, error)
	listByRole   func(ctx context.Context, statuses []statemachine.Status, filter casestore.ListFilter) ([]*casemodel.Case, int, error)
	submit       func(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase) (*casemodel.Case, error)
	approve      func(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase) (*casemodel.Case, error)
	reject       func(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase, reason string) (*casemodel.Case, error)
	edit         func(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase, artifact orchestrator.Artifact) (*casemodel.Case, error)
	trigger      func(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase) (*casemodel.Case, error)
	submitFinal  func(ctx context.Context, caseID string, actor statemachine.Actor) (*casemodel.Case, error)
	approveFinal func(ctx context.Context, caseID string, actor statemachine.Actor) (*casemodel.Case, error)
	rejectFinal  func(ctx context.Context, caseID string, actor statemachine.Actor, reason string) (*casemodel.Case, error)
	cancel       func(ctx context.Context, caseID string, actor statemachine.Actor) (*casemodel.Case, error)
}

func notFound(caseID string) error { return &orchestrator.NotFoundError{CaseID: caseID} }

func (f *fakeCaseService) InitiateCase(ctx context.Context, actor statemachine.Actor, req casemodel.CreateCaseRequest) (*casemodel.Case, error) {
	if f.initiate != nil {
		return f.initiate(ctx, actor, req)
	}
	return nil, notFound("")
}

func (f *fakeCaseService) GetCase(ctx context.Context, caseID string) (*casemodel.Case, error) {
	if f.get != nil {
		return f.get(ctx, caseID)
	}
	return nil, notFound(caseID)
}

func (f *fakeCaseService) ListByOwner(ctx context.Context, ownerUserID string, filter casestore.ListFilter) ([]*casemodel.Case, int, error) {
	if f.listByOwner != nil {
		return f.listByOwner(ctx, ownerUserID, filter)
	}
	return nil, 0, nil
}

func (f *fakeCaseService) ListByRole(ctx context.Context, statuses []statemachine.Status, filter casestore.ListFilter) ([]*casemodel.Case, int, error) {
	if f.listByRole != nil {
		return f.listByRole(ctx, statuses, filter)
	}
	return nil, 0, nil
}

func (f *fakeCaseService) SubmitForReview(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase) (*casemodel.Case, error) {
	if f.submit != nil {
		return f.submit(ctx, caseID, actor, phase)
	}
	return nil, notFound(caseID)
}

func (f *fakeCaseService) Approve(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase) (*casemodel.Case, error) {
	if f.approve != nil {
		return f.approve(ctx, caseID, actor, phase)
	}
	return nil, notFound(caseID)
}

func (f *fakeCaseService) Reject(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase, reason string) (*casemodel.Case, error) {
	if f.reject != nil {
		return f.reject(ctx, caseID, actor, phase, reason)
	}
	return nil, notFound(caseID)
}

func (f *fakeCaseService) EditArtifact(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase, artifact orchestrator.Artifact) (*casemodel.Case, error) {
	if f.edit != nil {
		return f.edit(ctx, caseID, actor, phase, artifact)
	}
	return nil, notFound(caseID)
}

func (f *fakeCaseService) TriggerGeneration(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase) (*casemodel.Case, error) {
	if f.trigger != nil {
		return f.trigger(ctx, caseID, actor, phase)
	}
	return nil, notFound(caseID)
}

func (f *fakeCaseService) SubmitFinal(ctx context.Context, caseID string, actor statemachine.Actor) (*casemodel.Case, error) {
	if f.submitFinal != nil {
		return f.submitFinal(ctx, caseID, actor)
	}
	return nil, notFound(caseID)
}

func (f *fakeCaseService) ApproveFinal(ctx context.Context, caseID string, actor statemachine.Actor) (*casemodel.Case, error) {
	if f.approveFinal != nil {
		return f.approveFinal(ctx, caseID, actor)
	}
	return nil, notFound(caseID)
}

func (f *fakeCaseService) RejectFinal(ctx context.Context, caseID string, actor statemachine.Actor, reason string) (*casemodel.Case, error) {
	if f.rejectFinal != nil {
		return f.rejectFinal(ctx, caseID, actor, reason)
	}
	return nil, notFound(caseID)
}

func (f *fakeCaseService) CancelCase(ctx context.Context, caseID string, actor statemachine.Actor) (*casemodel.Case, error) {
	if f.cancel != nil {
		return f.cancel(ctx, caseID, actor)
	}
	return nil, notFound(caseID)
}

func newTestServer(svc CaseService) *Server {
	return NewServer(nil, nil, svc, nil)
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Forwarded-User", "u-1")
	req.Header.Set("X-Forwarded-Email", "u-1@example.com")
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCreateCaseHandler(t *testing.T) {
	t.Run("creates case and returns initial status", func(t *testing.T) {
		var gotActor statemachine.Actor
		svc := &fakeCaseService{
			initiate: func(ctx context.Context, actor statemachine.Actor, req casemodel.CreateCaseRequest) (*casemodel.Case, error) {
				gotActor = actor
				return &casemodel.Case{CaseID: "case-1", Status: statemachine.StatusPRDDrafting}, nil
			},
		}
		s := newTestServer(svc)

		req := authedRequest(http.MethodPost, "/api/v1/cases",
			`{"title":"Patient Portal Refresh","problem_statement":"Modernize the patient portal"}`)
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "u-1", gotActor.UserID)

		var resp casemodel.CreateCaseResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "case-1", resp.CaseID)
		assert.Equal(t, statemachine.StatusPRDDrafting, resp.InitialStatus)
	})

	t.Run("missing title rejected", func(t *testing.T) {
		s := newTestServer(&fakeCaseService{})

		req := authedRequest(http.MethodPost, "/api/v1/cases", `{"problem_statement":"x"}`)
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Error.ErrorCode)
	})

	t.Run("unauthenticated rejected", func(t *testing.T) {
		s := newTestServer(&fakeCaseService{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/cases", strings.NewReader(`{"title":"x","problem_statement":"y"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHENTICATED", decodeError(t, rec).Error.ErrorCode)
	})
}

func TestGetCaseHandler_NotFound(t *testing.T) {
	s := newTestServer(&fakeCaseService{})

	req := authedRequest(http.MethodGet, "/api/v1/cases/missing", "")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Error.ErrorCode)
}

func TestListCasesHandler_MergesOwnedAndReviewQueue(t *testing.T) {
	owned := &casemodel.Case{CaseID: "mine", OwnerUserID: "u-1", Status: statemachine.StatusPRDReview}
	queued := &casemodel.Case{CaseID: "review-me", OwnerUserID: "someone-else", Status: statemachine.StatusCostingPendingReview}

	var requestedStatuses []statemachine.Status
	svc := &fakeCaseService{
		listByOwner: func(ctx context.Context, ownerUserID string, filter casestore.ListFilter) ([]*casemodel.Case, int, error) {
			assert.Equal(t, "u-1", ownerUserID)
			return []*casemodel.Case{owned}, 1, nil
		},
		listByRole: func(ctx context.Context, statuses []statemachine.Status, filter casestore.ListFilter) ([]*casemodel.Case, int, error) {
			requestedStatuses = statuses
			return []*casemodel.Case{queued}, 1, nil
		},
	}
	s := newTestServer(svc)

	req := authedRequest(http.MethodGet, "/api/v1/cases", "")
	req.Header.Set("X-Forwarded-Role", "FINANCE_APPROVER")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, requestedStatuses, statemachine.StatusCostingPendingReview)
	assert.Contains(t, requestedStatuses, statemachine.StatusFinancialModelPendingReview)

	var resp casemodel.CaseListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Cases, 2)
	assert.Equal(t, 2, resp.TotalCount)
}

func TestEditPRDHandler(t *testing.T) {
	t.Run("edits PRD through the orchestrator", func(t *testing.T) {
		var gotPhase statemachine.Phase
		var gotDraft *casemodel.PRDDraft
		svc := &fakeCaseService{
			get: func(ctx context.Context, caseID string) (*casemodel.Case, error) {
				return &casemodel.Case{CaseID: caseID, Title: "Portal Refresh", Status: statemachine.StatusPRDRejected}, nil
			},
			edit: func(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase, artifact orchestrator.Artifact) (*casemodel.Case, error) {
				gotPhase = phase
				gotDraft = artifact.(*casemodel.PRDDraft)
				return &casemodel.Case{CaseID: caseID, Status: statemachine.StatusPRDRejected}, nil
			},
		}
		s := newTestServer(svc)

		req := authedRequest(http.MethodPut, "/api/v1/cases/case-1/prd", `{"content_markdown":"# PRD v2\n\nWith HIPAA section."}`)
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, statemachine.PhasePRD, gotPhase)
		require.NotNil(t, gotDraft)
		assert.Equal(t, "Portal Refresh", gotDraft.Title)
		assert.Contains(t, gotDraft.ContentMarkdown, "HIPAA")
	})

	t.Run("empty markdown rejected before the orchestrator is called", func(t *testing.T) {
		s := newTestServer(&fakeCaseService{})

		req := authedRequest(http.MethodPut, "/api/v1/cases/case-1/prd", `{"content_markdown":"  "}`)
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
