package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/model"
)

// ErrCancelNotConfirmed is returned when a cancel is attempted without
// explicit confirmation. Cancelling is destructive in the sense that the
// commitment is retained and the approval process starts over.
var ErrCancelNotConfirmed = errors.New("cancelling a delist request requires explicit confirmation")

// CancelDelistClient defines the backend operations needed for cancelling
// a pending delist request
type CancelDelistClient interface {
	GetActivity(ctx context.Context, activityID string) (*model.Activity, error)
	GetDelistRequestForActivity(ctx context.Context, activityID string) (*model.DelistRequest, error)
	DeleteDelistRequest(ctx context.Context, requestID string) error
}

// CancelDelistResult contains the fresh activity after the cancel
type CancelDelistResult struct {
	CancelledRequestID string
	Activity           *model.Activity
}

// CancelDelist withdraws a pending delist request. Only the original
// requester may cancel; the activity stays assigned to them.
func CancelDelist(
	ctx context.Context,
	client CancelDelistClient,
	logger *zap.Logger,
	activityID string,
	memberID string,
	confirmed bool,
) (*CancelDelistResult, error) {
	logger.Debug("Starting cancelDelist",
		zap.String("activity_id", activityID),
		zap.String("member_id", memberID))

	if !confirmed {
		return nil, ErrCancelNotConfirmed
	}

	request, err := client.GetDelistRequestForActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fmt.Errorf("activity %s has no delist request", activityID)
	}
	if request.MemberID != memberID {
		return nil, fmt.Errorf("only the original requester may cancel delist request %s", request.ID)
	}
	if request.Decided() {
		return nil, fmt.Errorf("delist request %s is already %s and can only be purged", request.ID, request.State)
	}

	logger.Debug("Deleting delist request", zap.String("request_id", request.ID))
	if err := client.DeleteDelistRequest(ctx, request.ID); err != nil {
		return nil, err
	}

	updated, err := client.GetActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}

	logger.Info("Delist request cancelled",
		zap.String("request_id", request.ID),
		zap.String("activity_id", activityID))

	return &CancelDelistResult{CancelledRequestID: request.ID, Activity: updated}, nil
}
