// Package api provides the JSON-over-HTTP event surface for the business
// case orchestrator. It translates external requests into orchestrator
// operations carrying an AuthContext and maps the error taxonomy to HTTP
// status codes; it holds no business logic of its own.
package api

import (
	"context"
	"net"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casemodel"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casestore"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/config"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/database"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/orchestrator"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/policy"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
)

// CaseService is the slice of the orchestrator the HTTP handlers call.
// *orchestrator.Orchestrator satisfies it; tests substitute a fake.
type CaseService interface {
	InitiateCase(ctx context.Context, actor statemachine.Actor, req casemodel.CreateCaseRequest) (*casemodel.Case, error)
	GetCase(ctx context.Context, caseID string) (*casemodel.Case, error)
	ListByOwner(ctx context.Context, ownerUserID string, filter casestore.ListFilter) ([]*casemodel.Case, int, error)
	ListByRole(ctx context.Context, statuses []statemachine.Status, filter casestore.ListFilter) ([]*casemodel.Case, int, error)
	SubmitForReview(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase) (*casemodel.Case, error)
	Approve(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase) (*casemodel.Case, error)
	Reject(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase, reason string) (*casemodel.Case, error)
	EditArtifact(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase, artifact orchestrator.Artifact) (*casemodel.Case, error)
	TriggerGeneration(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase) (*casemodel.Case, error)
	SubmitFinal(ctx context.Context, caseID string, actor statemachine.Actor) (*casemodel.Case, error)
	ApproveFinal(ctx context.Context, caseID string, actor statemachine.Actor) (*casemodel.Case, error)
	RejectFinal(ctx context.Context, caseID string, actor statemachine.Actor, reason string) (*casemodel.Case, error)
	CancelCase(ctx context.Context, caseID string, actor statemachine.Actor) (*casemodel.Case, error)
}

// Server is the HTTP API server.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server
	cfg        *config.Config
	dbClient   *database.Client
	cases      CaseService
	policy     *policy.Store
}

// NewServer creates a new API server with Echo v5 and registers all routes.
func NewServer(cfg *config.Config, dbClient *database.Client, cases CaseService, policyStore *policy.Store) *Server {
	s := &Server{
		echo:     echo.New(),
		cfg:      cfg,
		dbClient: dbClient,
		cases:    cases,
		policy:   policyStore,
	}
	s.setupRoutes()
	return s
}

// setupRoutes registers all API routes.
func (s *Server) setupRoutes() {
	// Case payloads are markdown documents, not alert dumps; 1 MB bounds the
	// largest edited PRD comfortably while rejecting runaway bodies before
	// deserialization.
	s.echo.Use(middleware.BodyLimit(1024 * 1024))
	s.echo.Use(securityHeaders())

	s.echo.GET("/health", s.healthHandler)

	v1 := s.echo.Group("/api/v1")
	v1.POST("/cases", s.createCaseHandler)
	v1.GET("/cases", s.listCasesHandler)
	v1.GET("/cases/:id", s.getCaseHandler)

	v1.PUT("/cases/:id/prd", s.editPRDHandler)

	// One submit/approve/reject triple per artifact-owning phase.
	v1.POST("/cases/:id/:phase/submit", s.submitForReviewHandler)
	v1.POST("/cases/:id/:phase/approve", s.approvePhaseHandler)
	v1.POST("/cases/:id/:phase/reject", s.rejectPhaseHandler)

	v1.POST("/cases/:id/submit-final", s.submitFinalHandler)
	v1.POST("/cases/:id/approve-final", s.approveFinalHandler)
	v1.POST("/cases/:id/reject-final", s.rejectFinalHandler)

	v1.POST("/cases/:id/trigger/:phase", s.triggerGenerationHandler)
	v1.POST("/cases/:id/cancel", s.cancelCaseHandler)
}

// Start starts the HTTP server on the given address (blocking).
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.echo,
	}
	return s.httpServer.ListenAndServe()
}

// StartWithListener starts the HTTP server on a pre-created listener.
// Used by test infrastructure to serve on a random OS-assigned port.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpServer = &http.Server{Handler: s.echo}
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// healthHandler handles GET /health.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, &HealthResponse{
			Status:   "unhealthy",
			Database: dbHealth,
		})
	}

	return c.JSON(http.StatusOK, &HealthResponse{
		Status:   "healthy",
		Database: dbHealth,
	})
}
