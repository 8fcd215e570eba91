package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/Reksit/Hack4.0/client/internal/types"
)

// RequestApproval files an alumni profile for professor approval.
func RequestApproval(ctx context.Context, rc *resty.Client, req types.AlumniApprovalRequest) (*types.AlumniRequest, error) {
	var out types.AlumniRequest
	if err := sendJSON(ctx, rc, http.MethodPost, "/alumni/request-approval", "request approval", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPendingRequests lists approval requests awaiting professorID.
func GetPendingRequests(ctx context.Context, rc *resty.Client, professorID string) ([]types.AlumniRequest, error) {
	if err := types.ValidateIDPresent(professorID, "professorId"); err != nil {
		return nil, err
	}
	var out []types.AlumniRequest
	req := rc.R().SetPathParam("professorId", professorID)
	if err := send(ctx, req, http.MethodGet, "/alumni/pending-requests/{professorId}", "get pending requests", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ApproveRequest approves an alumni request. No body is sent.
func ApproveRequest(ctx context.Context, rc *resty.Client, requestID string) (*types.MessageResponse, error) {
	return decideRequest(ctx, rc, "/alumni/approve/{requestId}", "approve request", requestID)
}

// RejectRequest rejects an alumni request. No body is sent.
func RejectRequest(ctx context.Context, rc *resty.Client, requestID string) (*types.MessageResponse, error) {
	return decideRequest(ctx, rc, "/alumni/reject/{requestId}", "reject request", requestID)
}

func decideRequest(ctx context.Context, rc *resty.Client, path, op, requestID string) (*types.MessageResponse, error) {
	if err := types.ValidateIDPresent(requestID, "requestId"); err != nil {
		return nil, err
	}
	var out types.MessageResponse
	req := rc.R().SetPathParam("requestId", requestID)
	if err := send(ctx, req, http.MethodPut, path, op, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
