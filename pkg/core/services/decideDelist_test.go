package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/model"
)

func delistFixture() *fakeBackend {
	backend := newFakeBackend()
	backend.members["m-staff"] = &model.Member{ID: "m-staff", IsStaff: true}
	backend.members["m-plain"] = &model.Member{ID: "m-plain", IsStaff: false}
	backend.activities["act-1"] = &model.Activity{
		ID:       "act-1",
		Assigned: &model.Member{ID: "m-1", FullName: "Anna Ek"},
		DelistRequest: model.Known(
			&model.DelistRequestRef{ID: "adr-1", MemberID: "m-1", State: model.ApprovalPending}),
	}
	backend.requests["act-1"] = &model.DelistRequest{
		ID: "adr-1", MemberID: "m-1", ActivityID: "act-1", Reason: "away", State: model.ApprovalPending,
	}
	return backend
}

func TestApproveDelist_ReleasesActivity(t *testing.T) {
	backend := delistFixture()
	backend.approveFunc = func(requestID, approverID string) error {
		request := backend.requests["act-1"]
		request.State = model.ApprovalApproved
		request.ApproverID = approverID
		// Approval is the only path back to the unassigned pool
		backend.activities["act-1"].Assigned = nil
		backend.activities["act-1"].DelistRequest = model.Known(
			&model.DelistRequestRef{ID: "adr-1", MemberID: "m-1", State: model.ApprovalApproved})
		return nil
	}
	store := &fakeHistoryStore{}

	result, err := ApproveDelist(context.Background(), backend, store, zap.NewNop(), "act-1", "m-staff")

	require.NoError(t, err)
	assert.Equal(t, model.ApprovalApproved, result.Request.State)
	assert.True(t, result.Released)
	assert.Nil(t, result.Activity.Assigned)

	require.Len(t, store.decisions, 1)
	decision := store.decisions[0]
	assert.Equal(t, "adr-1", decision.RequestID)
	assert.Equal(t, "m-staff", decision.ApproverID)
	assert.True(t, decision.Approved)
}

func TestRejectDelist_ActivityStaysAssigned(t *testing.T) {
	backend := delistFixture()
	backend.rejectFunc = func(requestID, approverID, rejectReason string) error {
		request := backend.requests["act-1"]
		request.State = model.ApprovalRejected
		request.ApproverID = approverID
		request.RejectReason = rejectReason
		return nil
	}
	store := &fakeHistoryStore{}

	result, err := RejectDelist(context.Background(), backend, store, zap.NewNop(), "act-1", "m-staff", "insufficient notice")

	require.NoError(t, err)
	assert.Equal(t, model.ApprovalRejected, result.Request.State)
	assert.Equal(t, "insufficient notice", result.Request.RejectReason)
	assert.False(t, result.Released)
	require.NotNil(t, result.Activity.Assigned)
	assert.Equal(t, "m-1", result.Activity.Assigned.ID)

	require.Len(t, store.decisions, 1)
	assert.False(t, store.decisions[0].Approved)
	assert.Equal(t, "insufficient notice", store.decisions[0].RejectReason)
}

func TestRejectDelist_RequiresReason(t *testing.T) {
	backend := delistFixture()

	_, err := RejectDelist(context.Background(), backend, &fakeHistoryStore{}, zap.NewNop(), "act-1", "m-staff", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a reason")
}

func TestDecideDelist_StaffOnly(t *testing.T) {
	backend := delistFixture()

	_, err := ApproveDelist(context.Background(), backend, &fakeHistoryStore{}, zap.NewNop(), "act-1", "m-plain")

	var authErr *model.UnauthorizedApprovalError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, "m-plain", authErr.MemberID)
}

func TestDecideDelist_NoRequest(t *testing.T) {
	backend := delistFixture()
	delete(backend.requests, "act-1")

	_, err := ApproveDelist(context.Background(), backend, &fakeHistoryStore{}, zap.NewNop(), "act-1", "m-staff")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no delist request")
}

func TestDecideDelist_AlreadyDecided(t *testing.T) {
	backend := delistFixture()
	backend.requests["act-1"].State = model.ApprovalApproved

	_, err := ApproveDelist(context.Background(), backend, &fakeHistoryStore{}, zap.NewNop(), "act-1", "m-staff")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already approved")
}

func TestDecideDelist_HistoryFailureIsNotFatal(t *testing.T) {
	backend := delistFixture()
	backend.approveFunc = func(requestID, approverID string) error {
		backend.requests["act-1"].State = model.ApprovalApproved
		backend.activities["act-1"].Assigned = nil
		return nil
	}
	store := &fakeHistoryStore{insertErr: errors.New("disk full")}

	result, err := ApproveDelist(context.Background(), backend, store, zap.NewNop(), "act-1", "m-staff")

	require.NoError(t, err, "the backend transition already happened")
	assert.True(t, result.Released)
}
