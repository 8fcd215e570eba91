package client

import (
	"context"

	"github.com/Reksit/Hack4.0/client/internal/api"
)

// AlumniAPI wraps the alumni approval workflow.
type AlumniAPI struct{ c *Client }

// RequestApproval files an alumni profile: POST /alumni/request-approval.
func (a AlumniAPI) RequestApproval(ctx context.Context, req AlumniApprovalRequest) (*AlumniRequest, error) {
	return api.RequestApproval(ctx, a.c.rest, req)
}

// GetPendingRequests: GET /alumni/pending-requests/{professorId}.
func (a AlumniAPI) GetPendingRequests(ctx context.Context, professorID string) ([]AlumniRequest, error) {
	return api.GetPendingRequests(ctx, a.c.rest, professorID)
}

// ApproveRequest: PUT /alumni/approve/{requestId}, no body.
func (a AlumniAPI) ApproveRequest(ctx context.Context, requestID string) (*MessageResponse, error) {
	return api.ApproveRequest(ctx, a.c.rest, requestID)
}

// RejectRequest: PUT /alumni/reject/{requestId}, no body.
func (a AlumniAPI) RejectRequest(ctx context.Context, requestID string) (*MessageResponse, error) {
	return api.RejectRequest(ctx, a.c.rest, requestID)
}
