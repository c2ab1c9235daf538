package clubclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/model"
)

// GetActivity fetches a fresh snapshot of one activity. Every mutating
// operation is followed by one of these; the local view converges to
// server truth within a single round-trip.
func (c *Client) GetActivity(ctx context.Context, activityID string) (*model.Activity, error) {
	var activity model.Activity
	path := fmt.Sprintf("/api/activities/%s", activityID)
	if err := c.do(ctx, http.MethodGet, path, nil, &activity); err != nil {
		return nil, fmt.Errorf("failed to fetch activity %s: %w", activityID, err)
	}
	return &activity, nil
}

// EnlistActivity claims the activity for the calling member. The backend
// performs the assignment as an atomic compare-and-set; a lost race comes
// back as an AlreadyAssignedError and must not be retried blindly.
func (c *Client) EnlistActivity(ctx context.Context, activityID string) error {
	path := fmt.Sprintf("/api/activity_enlist/%s", activityID)
	if err := c.do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return classifyClaimError(err, activityID)
	}
	return nil
}

// ClaimForProxy claims the activity on behalf of one of the caller's
// proxies. The backend verifies the proxy relationship.
func (c *Client) ClaimForProxy(ctx context.Context, activityID, proxyID string) error {
	path := fmt.Sprintf("/api/proxy/activity/%s/%s", activityID, proxyID)
	if err := c.do(ctx, http.MethodPut, path, nil, nil); err != nil {
		return classifyClaimError(err, activityID)
	}
	return nil
}

// ReleaseForProxy withdraws a proxy's hold on the activity. Only the
// delegating grantor may do this; the proxy's own commitments still go
// through the delist-request flow.
func (c *Client) ReleaseForProxy(ctx context.Context, activityID, proxyID string) error {
	path := fmt.Sprintf("/api/proxy/activity/%s/%s", activityID, proxyID)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to release proxy %s from activity %s: %w", proxyID, activityID, err)
	}
	return nil
}
