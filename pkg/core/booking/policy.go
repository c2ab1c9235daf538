// Package booking holds the pure client-side booking policy: delist
// eligibility and the bookable-window computation. Everything here is
// advisory - the backend re-checks each rule and stays authoritative.
package booking

import (
	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/model"
)

// CanRequestUnlist reports whether the member may ask to be released from
// the activity. Releasing must not drop the member's remaining committed
// weight below their minimum signup quota.
func CanRequestUnlist(member model.Member, activity model.Activity) bool {
	return member.BookedWeight-activity.Weight >= member.MinSignups
}

// CheckUnlistEligibility returns a typed policy error when the member is
// not eligible to request a delist, nil otherwise.
func CheckUnlistEligibility(member model.Member, activity model.Activity) error {
	if CanRequestUnlist(member, activity) {
		return nil
	}
	return &model.BelowMinSignupsError{
		MemberID:     member.ID,
		BookedWeight: member.BookedWeight,
		Weight:       activity.Weight,
		MinSignups:   member.MinSignups,
	}
}
