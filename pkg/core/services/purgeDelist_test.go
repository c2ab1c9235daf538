package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/model"
)

func TestPurgeDelist_DecidedRequestIsPurged(t *testing.T) {
	backend := newFakeBackend()
	backend.requests["act-1"] = &model.DelistRequest{ID: "adr-1", MemberID: "m-1", State: model.ApprovalRejected}

	purgedID, err := PurgeDelist(context.Background(), backend, zap.NewNop(), "act-1")

	require.NoError(t, err)
	assert.Equal(t, "adr-1", purgedID)
	assert.Equal(t, 1, backend.deleteCalls)
}

func TestPurgeDelist_PendingRequestIsProtected(t *testing.T) {
	backend := newFakeBackend()
	backend.requests["act-1"] = &model.DelistRequest{ID: "adr-1", MemberID: "m-1", State: model.ApprovalPending}

	_, err := PurgeDelist(context.Background(), backend, zap.NewNop(), "act-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "still pending")
	assert.Zero(t, backend.deleteCalls)
}

func TestPurgeDelist_NoRequest(t *testing.T) {
	backend := newFakeBackend()

	_, err := PurgeDelist(context.Background(), backend, zap.NewNop(), "act-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no delist request")
}
