package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/marcus-sonestedt/t13activityweb-cli/internal/config"
	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/booking"
	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/model"
)

// ClaimActivityClient defines the backend operations needed for claiming
// an activity
type ClaimActivityClient interface {
	GetActivity(ctx context.Context, activityID string) (*model.Activity, error)
	GetMember(ctx context.Context, memberID string) (*model.Member, error)
	EnlistActivity(ctx context.Context, activityID string) error
	ClaimForProxy(ctx context.Context, activityID, proxyID string) error
}

// ClaimActivityResult contains the claim outcome
type ClaimActivityResult struct {
	// Activity is the fresh post-claim snapshot. On a lost race it shows
	// the current holder instead of the caller.
	Activity *model.Activity
	ViaProxy bool
	// Conflict is true when someone else claimed the activity first.
	// The claim is never retried automatically.
	Conflict bool
}

// ClaimActivity claims an activity for the acting member, or for one of
// their proxies when proxyID is set. The bookable check here is advisory;
// the backend performs the assignment atomically and its answer wins.
func ClaimActivity(
	ctx context.Context,
	client ClaimActivityClient,
	cfg *config.Config,
	logger *zap.Logger,
	activityID string,
	actingMemberID string,
	proxyID string,
) (*ClaimActivityResult, error) {
	logger.Debug("Starting claimActivity",
		zap.String("activity_id", activityID),
		zap.String("acting_member_id", actingMemberID),
		zap.String("proxy_id", proxyID))

	activity, err := client.GetActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}

	overrides, err := convertBookingOverrides(cfg.BookingOverrides)
	if err != nil {
		return nil, err
	}

	if err := booking.CheckBookable(*activity, time.Now(), overrides); err != nil {
		return nil, err
	}

	if proxyID != "" {
		actingMember, err := client.GetMember(ctx, actingMemberID)
		if err != nil {
			return nil, err
		}
		if !actingMember.HasProxies {
			return nil, fmt.Errorf("member %s has no registered proxies", actingMemberID)
		}
	}

	logger.Debug("Sending claim intent")
	if proxyID != "" {
		err = client.ClaimForProxy(ctx, activityID, proxyID)
	} else {
		err = client.EnlistActivity(ctx, activityID)
	}

	var assignedErr *model.AlreadyAssignedError
	if errors.As(err, &assignedErr) {
		// Lost the race. Surface the fresh holder, never retry.
		logger.Warn("Activity claimed by someone else", zap.String("activity_id", activityID))
		current, fetchErr := client.GetActivity(ctx, activityID)
		if fetchErr != nil {
			return nil, fetchErr
		}
		return &ClaimActivityResult{Activity: current, ViaProxy: proxyID != "", Conflict: true}, nil
	}
	if err != nil {
		return nil, err
	}

	// Converge on server truth with a read-back
	updated, err := client.GetActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}

	logger.Info("Activity claimed",
		zap.String("activity_id", activityID),
		zap.Bool("via_proxy", proxyID != ""))

	return &ClaimActivityResult{Activity: updated, ViaProxy: proxyID != ""}, nil
}
