package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/model"
)

// ReleaseProxyClient defines the backend operations needed for
// withdrawing a proxy's assignment
type ReleaseProxyClient interface {
	GetActivity(ctx context.Context, activityID string) (*model.Activity, error)
	ReleaseForProxy(ctx context.Context, activityID, proxyID string) error
}

// ReleaseProxyResult contains the fresh activity after the release
type ReleaseProxyResult struct {
	Activity *model.Activity
}

// ReleaseProxy withdraws a proxy's hold on an activity. A proxy claim is
// the grantor's commitment made through a delegate, so the grantor may
// take it back directly; a member's own assignment can only be released
// through an approved delist request.
func ReleaseProxy(
	ctx context.Context,
	client ReleaseProxyClient,
	logger *zap.Logger,
	activityID string,
	actingMemberID string,
	proxyID string,
) (*ReleaseProxyResult, error) {
	logger.Debug("Starting releaseProxy",
		zap.String("activity_id", activityID),
		zap.String("acting_member_id", actingMemberID),
		zap.String("proxy_id", proxyID))

	activity, err := client.GetActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}

	if activity.Assigned == nil {
		return nil, fmt.Errorf("activity %s is not assigned", activityID)
	}
	if activity.Assigned.ID != proxyID {
		return nil, fmt.Errorf("activity %s is held by %s, not by proxy %s",
			activityID, activity.Assigned.ID, proxyID)
	}

	grantor, ok := activity.AssignedForProxy.Value()
	if !ok || grantor == nil {
		return nil, fmt.Errorf("activity %s is not held via proxy; release it through a delist request", activityID)
	}
	if grantor.ID != actingMemberID {
		return nil, fmt.Errorf("only the delegating grantor %s may release proxy %s from activity %s",
			grantor.ID, proxyID, activityID)
	}

	logger.Debug("Releasing proxy assignment")
	if err := client.ReleaseForProxy(ctx, activityID, proxyID); err != nil {
		return nil, err
	}

	updated, err := client.GetActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}

	logger.Info("Proxy assignment released",
		zap.String("activity_id", activityID),
		zap.String("proxy_id", proxyID))

	return &ReleaseProxyResult{Activity: updated}, nil
}
