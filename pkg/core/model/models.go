package model

import "time"

// Member represents a club member as served by the backend
type Member struct {
	ID           string `json:"id"`
	FullName     string `json:"fullname"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	BookedWeight int    `json:"booked_weight"`
	MinSignups   int    `json:"min_signups"`
	HasProxies   bool   `json:"has_proxies"`
	IsStaff      bool   `json:"is_staff"`
}

// Event represents the scheduled event an activity belongs to
type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// HasEnded reports whether the event's end time has passed at the given instant
func (e Event) HasEnded(now time.Time) bool {
	return now.After(e.EndDate)
}

// Activity represents a bookable volunteer task tied to an event.
//
// The backend owns this record; the client treats it as a snapshot and
// re-fetches after every mutating call. Assigned is nil while the activity
// sits in the unassigned pool. AssignedForProxy and DelistRequest use the
// Loaded wrapper because list endpoints omit them while detail endpoints
// serve them explicitly (possibly as null).
type Activity struct {
	ID                   string                   `json:"id"`
	Name                 string                   `json:"name"`
	Comment              string                   `json:"comment"`
	Event                Event                    `json:"event"`
	Weight               int                      `json:"weight"`
	Assigned             *Member                  `json:"assigned"`
	AssignedForProxy     Loaded[*Member]          `json:"assigned_for_proxy"`
	Bookable             bool                     `json:"bookable"`
	Cancelled            bool                     `json:"cancelled"`
	EarliestBookableDate *time.Time               `json:"earliest_bookable_date"`
	DelistRequest        Loaded[*DelistRequestRef] `json:"active_delist_request"`
	Completed            CompletionState          `json:"completed"`
}

// IsAssignedTo reports whether the member holds this activity, either
// directly or through one of their proxies.
func (a *Activity) IsAssignedTo(memberID string) bool {
	if a.Assigned != nil && a.Assigned.ID == memberID {
		return true
	}
	if grantor, ok := a.AssignedForProxy.Value(); ok && grantor != nil && grantor.ID == memberID {
		return true
	}
	return false
}

// HasPendingDelistRequest reports whether the activity carries an
// outstanding delist request. An activity never carries more than one.
func (a *Activity) HasPendingDelistRequest() bool {
	ref, ok := a.DelistRequest.Value()
	return ok && ref != nil && ref.State == ApprovalPending
}

// DelistRequestRef is the compact delist-request shape embedded in an
// activity payload. Lookups always go by ID, never by comparing references.
type DelistRequestRef struct {
	ID       string        `json:"id"`
	MemberID string        `json:"member"`
	State    ApprovalState `json:"approved"`
}

// DelistRequest represents a member's request to be released from a held
// activity, subject to staff approval.
type DelistRequest struct {
	ID           string        `json:"id"`
	MemberID     string        `json:"member"`
	ActivityID   string        `json:"activity"`
	Reason       string        `json:"reason"`
	State        ApprovalState `json:"approved"`
	ApproverID   string        `json:"approver"`
	RejectReason string        `json:"reject_reason"`
}

// Decided reports whether staff have already ruled on the request
func (r *DelistRequest) Decided() bool {
	return r.State != ApprovalPending
}
