package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ApprovalState is the decision state of a delist request.
// The backend serializes it as a nullable boolean (null=pending,
// true=approved, false=rejected); the enum keeps the three legal values
// explicit and exhaustively matchable on the client.
type ApprovalState int

const (
	ApprovalPending ApprovalState = iota
	ApprovalApproved
	ApprovalRejected
)

func (s ApprovalState) String() string {
	switch s {
	case ApprovalApproved:
		return "approved"
	case ApprovalRejected:
		return "rejected"
	default:
		return "pending"
	}
}

// UnmarshalJSON maps the wire's nullable boolean onto the enum
func (s *ApprovalState) UnmarshalJSON(data []byte) error {
	v, err := decodeTriState(data)
	if err != nil {
		return fmt.Errorf("failed to decode approval state: %w", err)
	}
	switch {
	case v == nil:
		*s = ApprovalPending
	case *v:
		*s = ApprovalApproved
	default:
		*s = ApprovalRejected
	}
	return nil
}

// MarshalJSON emits the wire's nullable boolean form
func (s ApprovalState) MarshalJSON() ([]byte, error) {
	switch s {
	case ApprovalApproved:
		return []byte("true"), nil
	case ApprovalRejected:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

// CompletionState is the attendance state of a concluded activity.
// Tri-state on purpose: it distinguishes "acknowledged attended",
// "acknowledged missed" and "never reviewed". Wire form is a nullable
// boolean, same as ApprovalState.
type CompletionState int

const (
	CompletionUnconfirmed CompletionState = iota
	CompletionAttended
	CompletionMissed
)

func (s CompletionState) String() string {
	switch s {
	case CompletionAttended:
		return "attended"
	case CompletionMissed:
		return "missed"
	default:
		return "unconfirmed"
	}
}

func (s *CompletionState) UnmarshalJSON(data []byte) error {
	v, err := decodeTriState(data)
	if err != nil {
		return fmt.Errorf("failed to decode completion state: %w", err)
	}
	switch {
	case v == nil:
		*s = CompletionUnconfirmed
	case *v:
		*s = CompletionAttended
	default:
		*s = CompletionMissed
	}
	return nil
}

func (s CompletionState) MarshalJSON() ([]byte, error) {
	switch s {
	case CompletionAttended:
		return []byte("true"), nil
	case CompletionMissed:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

func decodeTriState(data []byte) (*bool, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	return &b, nil
}
