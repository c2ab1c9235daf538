package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/model"
)

// ConfirmCompletionClient defines the backend operations needed for
// attendance confirmation
type ConfirmCompletionClient interface {
	GetActivity(ctx context.Context, activityID string) (*model.Activity, error)
	GetMember(ctx context.Context, memberID string) (*model.Member, error)
	SetCompleted(ctx context.Context, activityID string, state model.CompletionState) error
}

// ConfirmCompletion marks a concluded activity as attended or missed.
// Staff only, and only once the owning event has ended; an activity that
// is never confirmed stays unconfirmed indefinitely.
func ConfirmCompletion(
	ctx context.Context,
	client ConfirmCompletionClient,
	logger *zap.Logger,
	activityID string,
	actingMemberID string,
	state model.CompletionState,
	now time.Time,
) (*model.Activity, error) {
	logger.Debug("Starting confirmCompletion",
		zap.String("activity_id", activityID),
		zap.String("acting_member_id", actingMemberID),
		zap.String("state", state.String()))

	actor, err := client.GetMember(ctx, actingMemberID)
	if err != nil {
		return nil, err
	}
	if !actor.IsStaff {
		return nil, fmt.Errorf("member %s is not staff and may not confirm completion", actingMemberID)
	}

	activity, err := client.GetActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}

	// Hard client-side gate; the backend may or may not check this
	if !activity.Event.HasEnded(now) {
		return nil, fmt.Errorf("event %s has not ended yet (ends %s)",
			activity.Event.Name, activity.Event.EndDate.Format(time.RFC3339))
	}

	if err := client.SetCompleted(ctx, activityID, state); err != nil {
		return nil, err
	}

	updated, err := client.GetActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}

	logger.Info("Completion recorded",
		zap.String("activity_id", activityID),
		zap.String("state", updated.Completed.String()))

	return updated, nil
}
