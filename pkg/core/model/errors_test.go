package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBelowMinSignupsError_RendersFigures(t *testing.T) {
	err := &BelowMinSignupsError{MemberID: "m-1", BookedWeight: 2, Weight: 1, MinSignups: 2}
	assert.Equal(t, "member m-1 cannot unlist: 2 - 1 is below the minimum of 2", err.Error())
}

func TestBelowMinSignupsError_RendersBackendReason(t *testing.T) {
	// A server-side rejection has no figures; the message must carry the
	// backend's text rather than zeroed numbers
	err := &BelowMinSignupsError{MemberID: "m-1", Reason: "would drop below minimum signups"}
	assert.Equal(t, "member m-1 cannot unlist: would drop below minimum signups", err.Error())
	assert.NotContains(t, err.Error(), "0 - 0")
}

func TestAlreadyAssignedError_RendersWithAndWithoutHolder(t *testing.T) {
	withHolder := &AlreadyAssignedError{ActivityID: "act-1", HolderName: "Anna Ek"}
	assert.Equal(t, "activity act-1 is already assigned to Anna Ek", withHolder.Error())

	withoutHolder := &AlreadyAssignedError{ActivityID: "act-1"}
	assert.Equal(t, "activity act-1 is already assigned", withoutHolder.Error())
}
