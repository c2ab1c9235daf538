package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"

	"github.com/marcus-sonestedt/t13activityweb-cli/internal/config"
	"github.com/marcus-sonestedt/t13activityweb-cli/pkg/core/booking"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// convertBookingOverrides parses the config's rrule-based booking-window
// overrides into the booking package's form. Config validation has
// already checked the rrule syntax, but load order is not guaranteed, so
// parse failures are still surfaced.
func convertBookingOverrides(overrides []config.BookingOverride) ([]booking.WindowOverride, error) {
	result := make([]booking.WindowOverride, 0, len(overrides))
	for i, override := range overrides {
		rule, err := rrule.StrToRRule(override.RRule)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rrule for bookingOverrides[%d]: %w", i, err)
		}
		result = append(result, booking.WindowOverride{
			Rule:           rule,
			OpenDaysBefore: override.OpenDaysBefore,
		})
	}
	return result, nil
}
