package clubclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/model"
)

// DoubleBookedEntry is one (member, activity) assignment row from the
// backend's double-booking report
type DoubleBookedEntry struct {
	MemberID     string    `json:"member_id"`
	MemberName   string    `json:"member_name"`
	ActivityID   string    `json:"activity_id"`
	ActivityName string    `json:"activity_name"`
	Comment      string    `json:"comment"`
	EventStart   time.Time `json:"event_start"`
	EventEnd     time.Time `json:"event_end"`
}

// GetMember fetches a fresh member snapshot
func (c *Client) GetMember(ctx context.Context, memberID string) (*model.Member, error) {
	var member model.Member
	path := fmt.Sprintf("/api/members/%s", memberID)
	if err := c.do(ctx, http.MethodGet, path, nil, &member); err != nil {
		return nil, fmt.Errorf("failed to fetch member %s: %w", memberID, err)
	}
	return &member, nil
}

// SetCompleted records the attendance decision for a concluded activity.
// The wire form is the backend's nullable boolean.
func (c *Client) SetCompleted(ctx context.Context, activityID string, state model.CompletionState) error {
	path := fmt.Sprintf("/api/members/set_completed/%s", activityID)
	body := struct {
		Completed model.CompletionState `json:"completed"`
	}{Completed: state}
	if err := c.do(ctx, http.MethodPatch, path, body, nil); err != nil {
		return fmt.Errorf("failed to set completion for activity %s: %w", activityID, err)
	}
	return nil
}

// GetDoubleBookedPage fetches one page of the double-booking report
func (c *Client) GetDoubleBookedPage(ctx context.Context, page, pageSize int) (*Page[DoubleBookedEntry], error) {
	query := url.Values{}
	query.Set("page", fmt.Sprintf("%d", page))
	query.Set("page_size", fmt.Sprintf("%d", pageSize))

	var result Page[DoubleBookedEntry]
	path := "/api/members/double_booked?" + query.Encode()
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch double-booked page %d: %w", page, err)
	}
	return &result, nil
}

// GetDoubleBookedAll walks the paged report to the end and returns the
// full assignment list
func (c *Client) GetDoubleBookedAll(ctx context.Context, pageSize int) ([]DoubleBookedEntry, error) {
	var entries []DoubleBookedEntry
	for page := 1; ; page++ {
		result, err := c.GetDoubleBookedPage(ctx, page, pageSize)
		if err != nil {
			return nil, err
		}
		entries = append(entries, result.Results...)
		if !result.HasNext() {
			break
		}
	}
	return entries, nil
}
