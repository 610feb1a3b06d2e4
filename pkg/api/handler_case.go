package api

import (
	"net/http"
	"strconv"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casemodel"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casestore"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
)

// createCaseHandler handles POST /api/v1/cases.
func (s *Server) createCaseHandler(c *echo.Context) error {
	ac := extractAuthContext(c)
	if !ac.Authenticated() {
		return respondError(c, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
	}

	var req casemodel.CreateCaseRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
	}
	if strings.TrimSpace(req.Title) == "" {
		return respondError(c, http.StatusBadRequest, "VALIDATION_FAILED", "title is required")
	}
	if strings.TrimSpace(req.ProblemStatement) == "" {
		return respondError(c, http.StatusBadRequest, "VALIDATION_FAILED", "problem_statement is required")
	}

	created, err := s.cases.InitiateCase(c.Request().Context(), ac.Actor(), req)
	if err != nil {
		return mapOrchestratorError(c, err)
	}

	return c.JSON(http.StatusCreated, &casemodel.CreateCaseResponse{
		CaseID:        created.CaseID,
		InitialStatus: created.Status,
	})
}

// listCasesHandler handles GET /api/v1/cases: the caller's owned cases
// plus, when their role makes them a reviewer, every case sitting in a
// pending-review status they may act on.
func (s *Server) listCasesHandler(c *echo.Context) error {
	ac := extractAuthContext(c)
	if !ac.Authenticated() {
		return respondError(c, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
	}

	filter := casestore.ListFilter{Limit: 50}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			filter.Limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filter.Offset = n
		}
	}

	ctx := c.Request().Context()
	owned, total, err := s.cases.ListByOwner(ctx, ac.UserID, filter)
	if err != nil {
		return mapOrchestratorError(c, err)
	}

	seen := make(map[string]bool, len(owned))
	for _, cs := range owned {
		seen[cs.CaseID] = true
	}

	reviewable := statemachine.PendingReviewStatuses(ac.SystemRole, s.finalApproverRole(c))
	if len(reviewable) > 0 {
		queue, queueTotal, err := s.cases.ListByRole(ctx, reviewable, filter)
		if err != nil {
			return mapOrchestratorError(c, err)
		}
		for _, cs := range queue {
			if !seen[cs.CaseID] {
				owned = append(owned, cs)
				seen[cs.CaseID] = true
			}
		}
		total += queueTotal
	}

	if owned == nil {
		owned = []*casemodel.Case{}
	}
	return c.JSON(http.StatusOK, &casemodel.CaseListResponse{
		Cases:      owned,
		TotalCount: total,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	})
}

// finalApproverRole resolves the current policy value so a reviewer whose
// role is the configured final approver sees the final-approval queue.
// Falls back to the default when the policy store is unreachable — the
// listing is a convenience view; CanAct still gates the actual approval.
func (s *Server) finalApproverRole(c *echo.Context) statemachine.Role {
	if s.policy == nil {
		return statemachine.RoleFinalApprover
	}
	cfg, err := s.policy.Get(c.Request().Context())
	if err != nil {
		return statemachine.RoleFinalApprover
	}
	return cfg.FinalApproverRoleName
}

// getCaseHandler handles GET /api/v1/cases/:id.
func (s *Server) getCaseHandler(c *echo.Context) error {
	ac := extractAuthContext(c)
	if !ac.Authenticated() {
		return respondError(c, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
	}

	caseID := c.Param("id")
	if caseID == "" {
		return respondError(c, http.StatusBadRequest, "VALIDATION_FAILED", "case id is required")
	}

	detail, err := s.cases.GetCase(c.Request().Context(), caseID)
	if err != nil {
		return mapOrchestratorError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// editPRDHandler handles PUT /api/v1/cases/:id/prd: the case initiator's
// HITL edit of the PRD markdown. The state machine decides whether the
// case is currently in an editable status.
func (s *Server) editPRDHandler(c *echo.Context) error {
	ac := extractAuthContext(c)
	if !ac.Authenticated() {
		return respondError(c, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
	}

	caseID := c.Param("id")
	var req casemodel.EditPRDRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
	}
	if strings.TrimSpace(req.ContentMarkdown) == "" {
		return respondError(c, http.StatusBadRequest, "VALIDATION_FAILED", "content_markdown is required")
	}

	ctx := c.Request().Context()
	current, err := s.cases.GetCase(ctx, caseID)
	if err != nil {
		return mapOrchestratorError(c, err)
	}

	draft := &casemodel.PRDDraft{
		Title:           current.Title,
		ContentMarkdown: req.ContentMarkdown,
		VersionLabel:    "manual-edit",
	}
	if existing, ok := current.SlotArtifact(statemachine.PhasePRD).(*casemodel.PRDDraft); ok && existing.Title != "" {
		draft.Title = existing.Title
	}

	updated, err := s.cases.EditArtifact(ctx, caseID, ac.Actor(), statemachine.PhasePRD, draft)
	if err != nil {
		return mapOrchestratorError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}
