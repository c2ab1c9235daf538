package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/model"
)

// PurgeDelistClient defines the backend operations needed for purging a
// decided delist request
type PurgeDelistClient interface {
	GetDelistRequestForActivity(ctx context.Context, activityID string) (*model.DelistRequest, error)
	DeleteDelistRequest(ctx context.Context, requestID string) error
}

// PurgeDelist deletes a decided (approved or rejected) delist request as
// history cleanup. It has no further state effect on the activity. A
// pending request cannot be purged - that is the requester's cancel.
func PurgeDelist(
	ctx context.Context,
	client PurgeDelistClient,
	logger *zap.Logger,
	activityID string,
) (string, error) {
	logger.Debug("Starting purgeDelist", zap.String("activity_id", activityID))

	request, err := client.GetDelistRequestForActivity(ctx, activityID)
	if err != nil {
		return "", err
	}
	if request == nil {
		return "", fmt.Errorf("activity %s has no delist request", activityID)
	}
	if !request.Decided() {
		return "", fmt.Errorf("delist request %s is still pending; only its requester may cancel it", request.ID)
	}

	if err := client.DeleteDelistRequest(ctx, request.ID); err != nil {
		return "", err
	}

	logger.Info("Delist request purged",
		zap.String("request_id", request.ID),
		zap.String("state", request.State.String()))

	return request.ID, nil
}
