package model

import "fmt"

// AlreadyAssignedError signals a lost claim race: the activity was taken
// by another party between read and write. Callers must re-fetch and show
// the current holder instead of retrying.
type AlreadyAssignedError struct {
	ActivityID string
	HolderName string
}

func (e *AlreadyAssignedError) Error() string {
	if e.HolderName != "" {
		return fmt.Sprintf("activity %s is already assigned to %s", e.ActivityID, e.HolderName)
	}
	return fmt.Sprintf("activity %s is already assigned", e.ActivityID)
}

// NotBookableError signals a claim against an activity whose booking
// window has not opened or which has been cancelled.
type NotBookableError struct {
	ActivityID string
	Reason     string
}

func (e *NotBookableError) Error() string {
	return fmt.Sprintf("activity %s is not bookable: %s", e.ActivityID, e.Reason)
}

// BelowMinSignupsError signals a delist request that would drop the
// member's committed weight below the club minimum. The figures are only
// set when the local policy check produced the error; a server-side
// rejection carries the backend's text in Reason instead.
type BelowMinSignupsError struct {
	MemberID     string
	BookedWeight int
	Weight       int
	MinSignups   int
	Reason       string
}

func (e *BelowMinSignupsError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("member %s cannot unlist: %s", e.MemberID, e.Reason)
	}
	return fmt.Sprintf("member %s cannot unlist: %d - %d is below the minimum of %d",
		e.MemberID, e.BookedWeight, e.Weight, e.MinSignups)
}

// UnauthorizedApprovalError signals a staff-only operation attempted by a
// non-staff member. Fatal to the operation, never retried.
type UnauthorizedApprovalError struct {
	MemberID string
}

func (e *UnauthorizedApprovalError) Error() string {
	return fmt.Sprintf("member %s is not staff and may not decide delist requests", e.MemberID)
}
