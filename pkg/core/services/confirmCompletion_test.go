package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/model"
)

func completionFixture(eventEnd time.Time) *fakeBackend {
	backend := newFakeBackend()
	backend.members["m-staff"] = &model.Member{ID: "m-staff", IsStaff: true}
	backend.members["m-plain"] = &model.Member{ID: "m-plain"}
	backend.activities["act-1"] = &model.Activity{
		ID:       "act-1",
		Assigned: &model.Member{ID: "m-1"},
		Event: model.Event{
			ID:        "ev-1",
			Name:      "Club race",
			StartDate: eventEnd.Add(-3 * time.Hour),
			EndDate:   eventEnd,
		},
	}
	return backend
}

func TestConfirmCompletion_MarksAttended(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
	backend := completionFixture(now.Add(-time.Hour))
	backend.setCompletedFunc = func(activityID string, state model.CompletionState) error {
		backend.activities[activityID].Completed = state
		return nil
	}

	activity, err := ConfirmCompletion(context.Background(), backend, zap.NewNop(),
		"act-1", "m-staff", model.CompletionAttended, now)

	require.NoError(t, err)
	assert.Equal(t, model.CompletionAttended, activity.Completed)
}

func TestConfirmCompletion_StaffOnly(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
	backend := completionFixture(now.Add(-time.Hour))

	_, err := ConfirmCompletion(context.Background(), backend, zap.NewNop(),
		"act-1", "m-plain", model.CompletionAttended, now)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not staff")
}

func TestConfirmCompletion_EventMustHaveEnded(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
	backend := completionFixture(now.Add(time.Hour))

	_, err := ConfirmCompletion(context.Background(), backend, zap.NewNop(),
		"act-1", "m-staff", model.CompletionMissed, now)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "has not ended yet")
}

func TestConfirmCompletion_CanRevertToUnconfirmed(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
	backend := completionFixture(now.Add(-time.Hour))
	backend.activities["act-1"].Completed = model.CompletionMissed
	backend.setCompletedFunc = func(activityID string, state model.CompletionState) error {
		backend.activities[activityID].Completed = state
		return nil
	}

	activity, err := ConfirmCompletion(context.Background(), backend, zap.NewNop(),
		"act-1", "m-staff", model.CompletionUnconfirmed, now)

	require.NoError(t, err)
	assert.Equal(t, model.CompletionUnconfirmed, activity.Completed)
}
