package engine

import (
	"rtm/src/types"
	"time"
)

const dateLayout = "2006-01-02"

// IsBookable reports whether reservations may be taken for the given date.
// Only exceptions with status "closed" block a date; "limited" days remain
// bookable because limited availability still accepts reservations, only
// with reduced capacity handled elsewhere.
func IsBookable(exceptions []types.SpecialAvailability, date time.Time) bool {
	day := date.Format(dateLayout)
	for _, sa := range exceptions {
		if sa.Date == day && sa.Status == types.AVAILABILITY_CLOSED {
			return false
		}
	}
	return true
}

// ClosedDates returns the dates blocked for booking, for date-picker
// filters.
func ClosedDates(exceptions []types.SpecialAvailability) []string {
	dates := []string{}
	for _, sa := range exceptions {
		if sa.Status == types.AVAILABILITY_CLOSED {
			dates = append(dates, sa.Date)
		}
	}
	return dates
}
