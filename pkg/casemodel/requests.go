package casemodel

import "github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"

// CreateCaseRequest is the body of POST /api/v1/cases.
type CreateCaseRequest struct {
	Title            string         `json:"title"`
	ProblemStatement string         `json:"problem_statement"`
	RelevantLinks    []RelevantLink `json:"relevant_links,omitempty"`
}

// CreateCaseResponse is returned from POST /api/v1/cases.
type CreateCaseResponse struct {
	CaseID        string              `json:"case_id"`
	InitialStatus statemachine.Status `json:"initial_status"`
}

// CaseFilters narrows GET /api/v1/cases: owned cases for a regular caller,
// or cases sitting in the matching pending-review status for a reviewer.
type CaseFilters struct {
	OwnerUserID string
	ReviewRole  statemachine.Role
	Statuses    []statemachine.Status
	Limit       int
	Offset      int
}

// RejectRequest is the optional body of a reject/reject-final endpoint.
type RejectRequest struct {
	Reason string `json:"reason,omitempty"`
}

// EditPRDRequest is the body of PUT /api/v1/cases/:id/prd.
type EditPRDRequest struct {
	ContentMarkdown string `json:"content_markdown"`
}

// CaseListResponse is a paginated case listing.
type CaseListResponse struct {
	Cases      []*Case `json:"cases"`
	TotalCount int     `json:"total_count"`
	Limit      int     `json:"limit"`
	Offset     int     `json:"offset"`
}
