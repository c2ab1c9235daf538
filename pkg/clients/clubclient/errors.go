package clubclient

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/model"
)

// APIError is a non-success response from the backend, carrying its
// error text verbatim
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

// classifyClaimError maps a claim rejection onto the domain error
// taxonomy. The backend resolves claim races with an atomic compare-and-
// set and answers the loser with a conflict; policy rejections carry
// explanatory text.
func classifyClaimError(err error, activityID string) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	message := strings.ToLower(apiErr.Message)
	switch {
	case apiErr.StatusCode == http.StatusConflict,
		strings.Contains(message, "assigned"), strings.Contains(message, "taken"):
		return &model.AlreadyAssignedError{ActivityID: activityID}
	case strings.Contains(message, "bookable"), strings.Contains(message, "cancelled"),
		strings.Contains(message, "not open"):
		return &model.NotBookableError{ActivityID: activityID, Reason: apiErr.Message}
	default:
		return err
	}
}

// classifyDelistCreateError maps a create rejection onto the policy
// taxonomy. The eligibility rule is enforced server-side as well, so a
// forced request from an ineligible member comes back here.
func classifyDelistCreateError(err error, memberID string) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	message := strings.ToLower(apiErr.Message)
	if strings.Contains(message, "minimum") || strings.Contains(message, "min_signups") ||
		strings.Contains(message, "signup") {
		return &model.BelowMinSignupsError{MemberID: memberID, Reason: apiErr.Message}
	}
	return err
}

// classifyDecisionError maps an approve/reject rejection. A forbidden
// answer means a non-staff member reached a staff-only transition, which
// is fatal to the operation.
func classifyDecisionError(err error, approverID string) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	if apiErr.StatusCode == http.StatusForbidden || apiErr.StatusCode == http.StatusUnauthorized {
		return &model.UnauthorizedApprovalError{MemberID: approverID}
	}
	return err
}
