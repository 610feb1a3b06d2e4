package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPendingReviewStatuses(t *testing.T) {
	tests := []struct {
		name              string
		role              Role
		finalApproverRole Role
		expect            []Status
	}{
		{
			name:              "finance approver sees costing and financial queues",
			role:              RoleFinanceApprover,
			finalApproverRole: RoleFinalApprover,
			expect:            []Status{StatusCostingPendingReview, StatusFinancialModelPendingReview},
		},
		{
			name:              "sales manager sees value queue only",
			role:              RoleSalesManagerApprover,
			finalApproverRole: RoleFinalApprover,
			expect:            []Status{StatusValuePendingReview},
		},
		{
			name:              "final approver sees only the final queue",
			role:              RoleFinalApprover,
			finalApproverRole: RoleFinalApprover,
			expect:            []Status{StatusPendingFinalApproval},
		},
		{
			name:              "policy change moves the final queue to another role",
			role:              RoleSalesManagerApprover,
			finalApproverRole: RoleSalesManagerApprover,
			expect:            []Status{StatusValuePendingReview, StatusPendingFinalApproval},
		},
		{
			name:              "former final approver loses the queue after a policy change",
			role:              RoleFinalApprover,
			finalApproverRole: RoleAdmin,
			expect:            nil,
		},
		{
			name:              "admin sees every queue including PRD review",
			role:              RoleAdmin,
			finalApproverRole: RoleFinalApprover,
			expect: []Status{
				StatusPRDReview,
				StatusSystemDesignPendingReview,
				StatusEffortPendingReview,
				StatusCostingPendingReview,
				StatusValuePendingReview,
				StatusFinancialModelPendingReview,
				StatusPendingFinalApproval,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, PendingReviewStatuses(tt.role, tt.finalApproverRole))
		})
	}
}
