package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/model"
	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/db"
)

// DecideDelistClient defines the backend operations needed for ruling on
// a delist request
type DecideDelistClient interface {
	GetActivity(ctx context.Context, activityID string) (*model.Activity, error)
	GetMember(ctx context.Context, memberID string) (*model.Member, error)
	GetDelistRequestForActivity(ctx context.Context, activityID string) (*model.DelistRequest, error)
	ApproveDelistRequest(ctx context.Context, requestID, approverID string) error
	RejectDelistRequest(ctx context.Context, requestID, approverID, rejectReason string) error
}

// DecideDelistResult contains the decided request and the fresh activity
type DecideDelistResult struct {
	Request  *model.DelistRequest
	Activity *model.Activity
	Released bool
}

// ApproveDelist approves a pending delist request. Approval is the only
// path that returns a held activity to the unassigned pool.
func ApproveDelist(
	ctx context.Context,
	client DecideDelistClient,
	store db.DecisionStore,
	logger *zap.Logger,
	activityID string,
	approverID string,
) (*DecideDelistResult, error) {
	return decideDelist(ctx, client, store, logger, activityID, approverID, true, "")
}

// RejectDelist rejects a pending delist request with a reason. The
// activity stays assigned to the original member.
func RejectDelist(
	ctx context.Context,
	client DecideDelistClient,
	store db.DecisionStore,
	logger *zap.Logger,
	activityID string,
	approverID string,
	rejectReason string,
) (*DecideDelistResult, error) {
	if rejectReason == "" {
		return nil, fmt.Errorf("rejecting a delist request requires a reason")
	}
	return decideDelist(ctx, client, store, logger, activityID, approverID, false, rejectReason)
}

func decideDelist(
	ctx context.Context,
	client DecideDelistClient,
	store db.DecisionStore,
	logger *zap.Logger,
	activityID string,
	approverID string,
	approve bool,
	rejectReason string,
) (*DecideDelistResult, error) {
	logger.Debug("Starting decideDelist",
		zap.String("activity_id", activityID),
		zap.String("approver_id", approverID),
		zap.Bool("approve", approve))

	approver, err := client.GetMember(ctx, approverID)
	if err != nil {
		return nil, err
	}
	if !approver.IsStaff {
		return nil, &model.UnauthorizedApprovalError{MemberID: approverID}
	}

	request, err := client.GetDelistRequestForActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fmt.Errorf("activity %s has no delist request", activityID)
	}
	if request.Decided() {
		return nil, fmt.Errorf("delist request %s is already %s", request.ID, request.State)
	}

	logger.Debug("Sending decision", zap.String("request_id", request.ID))
	if approve {
		err = client.ApproveDelistRequest(ctx, request.ID, approverID)
	} else {
		err = client.RejectDelistRequest(ctx, request.ID, approverID, rejectReason)
	}
	if err != nil {
		return nil, err
	}

	// Read back both sides of the transition
	decided, err := client.GetDelistRequestForActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if decided == nil {
		return nil, fmt.Errorf("delist request %s not found after decision", request.ID)
	}

	activity, err := client.GetActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}

	released := activity.Assigned == nil
	if approve && !released {
		// The backend owns the release; disagreement here means our view
		// is stale or the decision did not take.
		logger.Warn("Activity still assigned after approval",
			zap.String("activity_id", activityID),
			zap.String("request_id", request.ID))
	}

	decision := db.DelistDecision{
		ID:           uuid.New().String(),
		RequestID:    request.ID,
		ActivityID:   activityID,
		MemberID:     request.MemberID,
		ApproverID:   approverID,
		Approved:     approve,
		RejectReason: rejectReason,
		DecidedAt:    time.Now(),
	}
	if err := store.InsertDelistDecision(ctx, decision); err != nil {
		// History is a local convenience; the authoritative transition
		// has already happened on the backend.
		logger.Warn("Failed to record delist decision locally", zap.Error(err))
	}

	logger.Info("Delist request decided",
		zap.String("request_id", request.ID),
		zap.String("state", decided.State.String()),
		zap.Bool("released", released))

	return &DecideDelistResult{Request: decided, Activity: activity, Released: released}, nil
}
