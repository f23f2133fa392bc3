package engine

import (
	"rtm/src/types"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsBookable(t *testing.T) {
	exceptions := []types.SpecialAvailability{
		{Date: "2025-12-25", Reason: "Holiday", Status: types.AVAILABILITY_CLOSED},
		{Date: "2025-12-31", Reason: "Private Event", Status: types.AVAILABILITY_LIMITED},
		{Date: "2025-12-26", Status: types.AVAILABILITY_OPEN},
	}

	closed := time.Date(2025, time.December, 25, 15, 0, 0, 0, time.UTC)
	assert.False(t, IsBookable(exceptions, closed))

	// Limited days still take bookings.
	limited := time.Date(2025, time.December, 31, 15, 0, 0, 0, time.UTC)
	assert.True(t, IsBookable(exceptions, limited))

	open := time.Date(2025, time.December, 26, 15, 0, 0, 0, time.UTC)
	assert.True(t, IsBookable(exceptions, open))

	plain := time.Date(2025, time.December, 27, 15, 0, 0, 0, time.UTC)
	assert.True(t, IsBookable(exceptions, plain))
}

func TestIsBookableNoExceptions(t *testing.T) {
	assert.True(t, IsBookable(nil, time.Now()))
}

func TestClosedDates(t *testing.T) {
	exceptions := []types.SpecialAvailability{
		{Date: "2025-12-25", Status: types.AVAILABILITY_CLOSED},
		{Date: "2025-12-31", Status: types.AVAILABILITY_LIMITED},
		{Date: "2026-01-01", Status: types.AVAILABILITY_CLOSED},
	}
	assert.Equal(t, []string{"2025-12-25", "2026-01-01"}, ClosedDates(exceptions))
	assert.Empty(t, ClosedDates(nil))
}
