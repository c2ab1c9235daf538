package booking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/model"
)

func TestCanRequestUnlist_AboveMinimum(t *testing.T) {
	// bookedWeight=3, minSignups=2, weight=1: 3-1=2 >= 2
	member := model.Member{ID: "m-1", BookedWeight: 3, MinSignups: 2}
	activity := model.Activity{ID: "act-1", Weight: 1}

	assert.True(t, CanRequestUnlist(member, activity))
	assert.NoError(t, CheckUnlistEligibility(member, activity))
}

func TestCanRequestUnlist_WouldDropBelowMinimum(t *testing.T) {
	// bookedWeight=2, minSignups=2, weight=1: 2-1=1 < 2
	member := model.Member{ID: "m-1", BookedWeight: 2, MinSignups: 2}
	activity := model.Activity{ID: "act-1", Weight: 1}

	assert.False(t, CanRequestUnlist(member, activity))

	err := CheckUnlistEligibility(member, activity)
	require.Error(t, err)

	var policyErr *model.BelowMinSignupsError
	require.True(t, errors.As(err, &policyErr))
	assert.Equal(t, "m-1", policyErr.MemberID)
	assert.Equal(t, 2, policyErr.BookedWeight)
	assert.Equal(t, 1, policyErr.Weight)
	assert.Equal(t, 2, policyErr.MinSignups)
}

func TestCanRequestUnlist_ExactBoundary(t *testing.T) {
	member := model.Member{ID: "m-1", BookedWeight: 2, MinSignups: 0}
	activity := model.Activity{ID: "act-1", Weight: 2}

	assert.True(t, CanRequestUnlist(member, activity), "landing exactly on the minimum is allowed")
}

func TestCanRequestUnlist_PolicyLaw(t *testing.T) {
	// For all weights >= 0: eligible iff bookedWeight - weight >= minSignups
	for bookedWeight := 0; bookedWeight <= 6; bookedWeight++ {
		for weight := 0; weight <= 6; weight++ {
			for minSignups := 0; minSignups <= 4; minSignups++ {
				member := model.Member{ID: "m-1", BookedWeight: bookedWeight, MinSignups: minSignups}
				activity := model.Activity{ID: "act-1", Weight: weight}

				want := bookedWeight-weight >= minSignups
				assert.Equal(t, want, CanRequestUnlist(member, activity),
					"bookedWeight=%d weight=%d minSignups=%d", bookedWeight, weight, minSignups)
			}
		}
	}
}
