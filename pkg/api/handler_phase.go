package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casemodel"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
)

// phasePaths maps the :phase URL segment to the workflow phase it names.
var phasePaths = map[string]statemachine.Phase{
	"prd":           statemachine.PhasePRD,
	"system-design": statemachine.PhaseSystemDesign,
	"effort":        statemachine.PhaseEffort,
	"cost":          statemachine.PhaseCosting,
	"value":         statemachine.PhaseValue,
	"financial":     statemachine.PhaseFinancialModel,
}

// phaseAction authenticates, resolves the :id and :phase params, and runs
// do — the shared prologue of every per-phase transition handler.
func (s *Server) phaseAction(c *echo.Context, do func(ac AuthContext, caseID string, phase statemachine.Phase) (*casemodel.Case, error)) error {
	ac := extractAuthContext(c)
	if !ac.Authenticated() {
		return respondError(c, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
	}

	caseID := c.Param("id")
	if caseID == "" {
		return respondError(c, http.StatusBadRequest, "VALIDATION_FAILED", "case id is required")
	}
	phase, ok := phasePaths[c.Param("phase")]
	if !ok {
		return respondError(c, http.StatusBadRequest, "VALIDATION_FAILED", "unknown phase: "+c.Param("phase"))
	}

	updated, err := do(ac, caseID, phase)
	if err != nil {
		return mapOrchestratorError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// submitForReviewHandler handles POST /api/v1/cases/:id/:phase/submit.
func (s *Server) submitForReviewHandler(c *echo.Context) error {
	return s.phaseAction(c, func(ac AuthContext, caseID string, phase statemachine.Phase) (*casemodel.Case, error) {
		return s.cases.SubmitForReview(c.Request().Context(), caseID, ac.Actor(), phase)
	})
}

// approvePhaseHandler handles POST /api/v1/cases/:id/:phase/approve.
func (s *Server) approvePhaseHandler(c *echo.Context) error {
	return s.phaseAction(c, func(ac AuthContext, caseID string, phase statemachine.Phase) (*casemodel.Case, error) {
		return s.cases.Approve(c.Request().Context(), caseID, ac.Actor(), phase)
	})
}

// rejectPhaseHandler handles POST /api/v1/cases/:id/:phase/reject with an
// optional {reason} body.
func (s *Server) rejectPhaseHandler(c *echo.Context) error {
	var req casemodel.RejectRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return respondError(c, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		}
	}
	return s.phaseAction(c, func(ac AuthContext, caseID string, phase statemachine.Phase) (*casemodel.Case, error) {
		return s.cases.Reject(c.Request().Context(), caseID, ac.Actor(), phase, req.Reason)
	})
}

// triggerGenerationHandler handles POST /api/v1/cases/:id/trigger/:phase —
// the operator retrigger after a GenerationFailed rejection. Authorization
// (ADMIN only) is the state machine's call, not the handler's.
func (s *Server) triggerGenerationHandler(c *echo.Context) error {
	return s.phaseAction(c, func(ac AuthContext, caseID string, phase statemachine.Phase) (*casemodel.Case, error) {
		return s.cases.TriggerGeneration(c.Request().Context(), caseID, ac.Actor(), phase)
	})
}

// finalAction is phaseAction's twin for the three phase-less final
// endpoints.
func (s *Server) finalAction(c *echo.Context, do func(ac AuthContext, caseID string) (*casemodel.Case, error)) error {
	ac := extractAuthContext(c)
	if !ac.Authenticated() {
		return respondError(c, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
	}

	caseID := c.Param("id")
	if caseID == "" {
		return respondError(c, http.StatusBadRequest, "VALIDATION_FAILED", "case id is required")
	}

	updated, err := do(ac, caseID)
	if err != nil {
		return mapOrchestratorError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// submitFinalHandler handles POST /api/v1/cases/:id/submit-final.
func (s *Server) submitFinalHandler(c *echo.Context) error {
	return s.finalAction(c, func(ac AuthContext, caseID string) (*casemodel.Case, error) {
		return s.cases.SubmitFinal(c.Request().Context(), caseID, ac.Actor())
	})
}

// approveFinalHandler handles POST /api/v1/cases/:id/approve-final.
func (s *Server) approveFinalHandler(c *echo.Context) error {
	return s.finalAction(c, func(ac AuthContext, caseID string) (*casemodel.Case, error) {
		return s.cases.ApproveFinal(c.Request().Context(), caseID, ac.Actor())
	})
}

// rejectFinalHandler handles POST /api/v1/cases/:id/reject-final.
func (s *Server) rejectFinalHandler(c *echo.Context) error {
	var req casemodel.RejectRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return respondError(c, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		}
	}
	return s.finalAction(c, func(ac AuthContext, caseID string) (*casemodel.Case, error) {
		return s.cases.RejectFinal(c.Request().Context(), caseID, ac.Actor(), req.Reason)
	})
}

// cancelCaseHandler handles POST /api/v1/cases/:id/cancel: withdraw a case
// before final approval, tripping any in-flight generation's cancellation
// signal.
func (s *Server) cancelCaseHandler(c *echo.Context) error {
	return s.finalAction(c, func(ac AuthContext, caseID string) (*casemodel.Case, error) {
		return s.cases.CancelCase(c.Request().Context(), caseID, ac.Actor())
	})
}
