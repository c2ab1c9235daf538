package booking

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/model"
)

// WindowOverride supplies a default booking window for recurring event
// series that the backend leaves without an explicit
// earliest_bookable_date. Activities on matching event dates only open
// OpenDaysBefore days before the event starts.
type WindowOverride struct {
	Rule           *rrule.RRule
	OpenDaysBefore int
}

// AppliesTo reports whether the override's recurrence rule hits the day
// of the given event start.
func (o WindowOverride) AppliesTo(eventStart time.Time) bool {
	if o.Rule == nil {
		return false
	}

	day := eventStart.Format("2006-01-02")
	searchStart := eventStart.AddDate(-1, 0, 0)
	searchEnd := eventStart.AddDate(0, 0, 1)

	o.Rule.DTStart(searchStart)
	for _, occurrence := range o.Rule.Between(searchStart, searchEnd, true) {
		if occurrence.Format("2006-01-02") == day {
			return true
		}
	}
	return false
}

// EarliestBookable resolves the lower bound of the activity's booking
// window. The activity's own earliest_bookable_date wins; otherwise the
// first matching override derives one from the event start. The second
// return is false when no bound applies and the window is open-ended.
func EarliestBookable(activity model.Activity, overrides []WindowOverride) (time.Time, bool) {
	if activity.EarliestBookableDate != nil {
		return *activity.EarliestBookableDate, true
	}
	for _, override := range overrides {
		if override.AppliesTo(activity.Event.StartDate) {
			return activity.Event.StartDate.AddDate(0, 0, -override.OpenDaysBefore), true
		}
	}
	return time.Time{}, false
}

// Bookable recomputes the activity's derived claim eligibility at the
// given instant: unassigned, not cancelled, and inside the booking window.
func Bookable(activity model.Activity, now time.Time, overrides []WindowOverride) bool {
	if activity.Assigned != nil || activity.Cancelled {
		return false
	}
	if earliest, ok := EarliestBookable(activity, overrides); ok && now.Before(earliest) {
		return false
	}
	return true
}

// CheckBookable returns a typed policy error describing why the activity
// cannot be claimed right now, nil when it can.
func CheckBookable(activity model.Activity, now time.Time, overrides []WindowOverride) error {
	if activity.Cancelled {
		return &model.NotBookableError{ActivityID: activity.ID, Reason: "activity is cancelled"}
	}
	if activity.Assigned != nil {
		return &model.AlreadyAssignedError{ActivityID: activity.ID, HolderName: activity.Assigned.FullName}
	}
	if earliest, ok := EarliestBookable(activity, overrides); ok && now.Before(earliest) {
		return &model.NotBookableError{
			ActivityID: activity.ID,
			Reason:     fmt.Sprintf("booking opens %s", earliest.Format("2006-01-02")),
		}
	}
	return nil
}
