package db

import "time"

// DelistDecision records one staff ruling on a delist request
type DelistDecision struct {
	ID           string
	RequestID    string
	ActivityID   string
	MemberID     string
	ApproverID   string
	Approved     bool
	RejectReason string
	DecidedAt    time.Time
}

// ConflictRun records one execution of the double-booking report
type ConflictRun struct {
	ID              string
	RanAt           time.Time
	AssignmentCount int
	ConflictCount   int
}

// ConflictRecord is one flagged double-booking belonging to a run
type ConflictRecord struct {
	ID               string
	RunID            string
	MemberID         string
	MemberName       string
	Kind             string
	FirstActivityID  string
	SecondActivityID string
	Description      string
}
