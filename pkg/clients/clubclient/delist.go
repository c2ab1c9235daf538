package clubclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/model"
)

// CreateDelistRequestInput is the payload for opening a delist request
type CreateDelistRequestInput struct {
	Member   string `json:"member" validate:"required"`
	Activity string `json:"activity" validate:"required"`
	Reason   string `json:"reason" validate:"required"`
}

// delistDecisionBody is the wire form of an approve/reject decision
type delistDecisionBody struct {
	Approved     bool   `json:"approved"`
	Approver     string `json:"approver"`
	RejectReason string `json:"reject_reason,omitempty"`
}

// CreateDelistRequest opens a delist request for a held activity
func (c *Client) CreateDelistRequest(ctx context.Context, input CreateDelistRequestInput) error {
	if err := c.do(ctx, http.MethodPost, "/api/activity_delist_request/create", input, nil); err != nil {
		return classifyDelistCreateError(err, input.Member)
	}
	return nil
}

// DeleteDelistRequest removes a delist request by ID. For a pending
// request this is the requester's cancel; for a decided one it is pure
// history cleanup with no further state effect.
func (c *Client) DeleteDelistRequest(ctx context.Context, requestID string) error {
	path := fmt.Sprintf("/api/activity_delist_request/%s", requestID)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete delist request %s: %w", requestID, err)
	}
	return nil
}

// ApproveDelistRequest records a staff approval. The backend releases the
// assigned activity as a side effect; the caller must re-fetch it.
func (c *Client) ApproveDelistRequest(ctx context.Context, requestID, approverID string) error {
	path := fmt.Sprintf("/api/activity_delist_request/%s", requestID)
	body := delistDecisionBody{Approved: true, Approver: approverID}
	if err := c.do(ctx, http.MethodPatch, path, body, nil); err != nil {
		return classifyDecisionError(err, approverID)
	}
	return nil
}

// RejectDelistRequest records a staff rejection with its reason. The
// activity stays assigned to the original member.
func (c *Client) RejectDelistRequest(ctx context.Context, requestID, approverID, rejectReason string) error {
	path := fmt.Sprintf("/api/activity_delist_request/%s", requestID)
	body := delistDecisionBody{Approved: false, Approver: approverID, RejectReason: rejectReason}
	if err := c.do(ctx, http.MethodPatch, path, body, nil); err != nil {
		return classifyDecisionError(err, approverID)
	}
	return nil
}

// GetDelistRequestForActivity looks up the delist request attached to an
// activity. Returns nil without error when none exists - an activity
// carries at most one.
func (c *Client) GetDelistRequestForActivity(ctx context.Context, activityID string) (*model.DelistRequest, error) {
	var page Page[model.DelistRequest]
	path := fmt.Sprintf("/api/activity_delist_request/activity/%s", activityID)
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, fmt.Errorf("failed to fetch delist request for activity %s: %w", activityID, err)
	}
	if len(page.Results) == 0 {
		return nil, nil
	}
	return &page.Results[0], nil
}
