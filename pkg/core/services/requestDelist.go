package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/clients/clubclient"
	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/booking"
	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/model"
)

// RequestDelistClient defines the backend operations needed for opening
// a delist request
type RequestDelistClient interface {
	GetActivity(ctx context.Context, activityID string) (*model.Activity, error)
	GetMember(ctx context.Context, memberID string) (*model.Member, error)
	CreateDelistRequest(ctx context.Context, input clubclient.CreateDelistRequestInput) error
	GetDelistRequestForActivity(ctx context.Context, activityID string) (*model.DelistRequest, error)
}

// RequestDelistResult contains the created request and the fresh activity
type RequestDelistResult struct {
	Request  *model.DelistRequest
	Activity *model.Activity
}

// RequestDelist opens a delist request for an activity the member holds.
// The eligibility check is advisory; the backend re-checks it at create
// time and its answer wins.
func RequestDelist(
	ctx context.Context,
	client RequestDelistClient,
	logger *zap.Logger,
	activityID string,
	memberID string,
	reason string,
) (*RequestDelistResult, error) {
	logger.Debug("Starting requestDelist",
		zap.String("activity_id", activityID),
		zap.String("member_id", memberID))

	input := clubclient.CreateDelistRequestInput{
		Member:   memberID,
		Activity: activityID,
		Reason:   reason,
	}
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("delist request validation failed: %w", err)
	}

	activity, err := client.GetActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}

	if !activity.IsAssignedTo(memberID) {
		return nil, fmt.Errorf("member %s does not hold activity %s", memberID, activityID)
	}

	// An activity carries at most one outstanding request
	if activity.HasPendingDelistRequest() {
		return nil, fmt.Errorf("activity %s already has a pending delist request", activityID)
	}

	member, err := client.GetMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if err := booking.CheckUnlistEligibility(*member, *activity); err != nil {
		return nil, err
	}

	logger.Debug("Creating delist request")
	if err := client.CreateDelistRequest(ctx, input); err != nil {
		return nil, err
	}

	// Read back the created request and the affected activity
	request, err := client.GetDelistRequestForActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fmt.Errorf("delist request for activity %s not found after create", activityID)
	}

	updated, err := client.GetActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}

	logger.Info("Delist request created",
		zap.String("request_id", request.ID),
		zap.String("activity_id", activityID),
		zap.String("member_id", memberID))

	return &RequestDelistResult{Request: request, Activity: updated}, nil
}
