package engine

import (
	"rtm/src/models"
	"rtm/src/types"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func resFor(tableID string, at time.Time, status types.ReservationStatus) models.Reservation {
	return models.Reservation{
		ID:              "res-" + tableID + at.Format("150405"),
		TableID:         &tableID,
		ReservationTime: at,
		NumberOfGuests:  2,
		Status:          status,
	}
}

func TestResolveTableStatus(t *testing.T) {
	now := date(2025, time.March, 10, 12, 10)
	table := models.Table{ID: "t1", MinCapacity: 2, MaxCapacity: 4}

	tests := []struct {
		name         string
		reservations []models.Reservation
		want         types.TableStatus
	}{
		{
			name: "no reservations",
			want: types.TABLE_AVAILABLE,
		},
		{
			name: "completed reservation occupies",
			reservations: []models.Reservation{
				resFor("t1", date(2025, time.March, 10, 11, 0), types.RESERVATION_COMPLETED),
			},
			want: types.TABLE_OCCUPIED,
		},
		{
			name: "completed wins over future confirmed",
			reservations: []models.Reservation{
				resFor("t1", date(2025, time.March, 10, 19, 0), types.RESERVATION_CONFIRMED),
				resFor("t1", date(2025, time.March, 10, 11, 0), types.RESERVATION_COMPLETED),
			},
			want: types.TABLE_OCCUPIED,
		},
		{
			name: "reservation in current hour occupies",
			reservations: []models.Reservation{
				resFor("t1", date(2025, time.March, 10, 12, 45), types.RESERVATION_PENDING),
			},
			want: types.TABLE_OCCUPIED,
		},
		{
			name: "confirmed later today reserves",
			reservations: []models.Reservation{
				resFor("t1", date(2025, time.March, 10, 13, 20), types.RESERVATION_CONFIRMED),
			},
			want: types.TABLE_RESERVED,
		},
		{
			name: "future beyond fifteen minutes still reserves",
			reservations: []models.Reservation{
				resFor("t1", date(2025, time.March, 10, 19, 0), types.RESERVATION_PENDING),
			},
			want: types.TABLE_RESERVED,
		},
		{
			name: "cancelled reservations are ignored",
			reservations: []models.Reservation{
				resFor("t1", date(2025, time.March, 10, 12, 30), types.RESERVATION_CANCELED),
				resFor("t1", date(2025, time.March, 10, 19, 0), types.RESERVATION_CANCELED),
			},
			want: types.TABLE_AVAILABLE,
		},
		{
			name: "other table's reservations do not count",
			reservations: []models.Reservation{
				resFor("t2", date(2025, time.March, 10, 12, 30), types.RESERVATION_CONFIRMED),
			},
			want: types.TABLE_AVAILABLE,
		},
		{
			name: "past reservation leaves table available",
			reservations: []models.Reservation{
				resFor("t1", date(2025, time.March, 10, 9, 0), types.RESERVATION_CONFIRMED),
			},
			want: types.TABLE_AVAILABLE,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveTableStatus(table, tt.reservations, now))
		})
	}
}

func TestResolveTableStatusReservedWindowCrossesHour(t *testing.T) {
	// Ten minutes out but in the next hour bucket: the fifteen-minute
	// window applies, not current-hour occupancy.
	now := date(2025, time.March, 10, 12, 50)
	table := models.Table{ID: "t1", MinCapacity: 2, MaxCapacity: 4}
	res := resFor("t1", date(2025, time.March, 10, 13, 0), types.RESERVATION_CONFIRMED)
	assert.Equal(t, types.TABLE_RESERVED, ResolveTableStatus(table, []models.Reservation{res}, now))
}

func TestResolveTableStatusIdempotent(t *testing.T) {
	now := date(2025, time.March, 10, 12, 10)
	tables := []models.Table{
		{ID: "t1", MinCapacity: 2, MaxCapacity: 4},
		{ID: "t2", MinCapacity: 4, MaxCapacity: 8},
	}
	reservations := []models.Reservation{
		resFor("t1", date(2025, time.March, 10, 12, 20), types.RESERVATION_CONFIRMED),
		resFor("t2", date(2025, time.March, 10, 20, 0), types.RESERVATION_PENDING),
	}
	first := ResolveAll(tables, reservations, now)
	second := ResolveAll(tables, reservations, now)
	assert.Equal(t, first, second)
	assert.Equal(t, types.TABLE_OCCUPIED, first["t1"])
	assert.Equal(t, types.TABLE_RESERVED, first["t2"])
}

func TestResolveTableStatusEndToEnd(t *testing.T) {
	now := date(2025, time.June, 1, 12, 52)
	table := models.Table{ID: "t1", MinCapacity: 2, MaxCapacity: 4}

	// Fresh table, no reservations.
	assert.Equal(t, types.TABLE_AVAILABLE, ResolveTableStatus(table, nil, now))

	// Confirmed booking ten minutes out flips it to reserved.
	res := resFor("t1", now.Add(10*time.Minute), types.RESERVATION_CONFIRMED)
	assert.Equal(t, types.TABLE_RESERVED, ResolveTableStatus(table, []models.Reservation{res}, now))

	// Check-in flips it to occupied.
	res.Status = types.RESERVATION_COMPLETED
	assert.Equal(t, types.TABLE_OCCUPIED, ResolveTableStatus(table, []models.Reservation{res}, now))
}

func TestGroupReservationsByHour(t *testing.T) {
	now := date(2025, time.March, 10, 12, 10)
	hours := ParseOpeningHours("10:00-22:00")
	reservations := []models.Reservation{
		resFor("t1", date(2025, time.March, 10, 11, 30), types.RESERVATION_CONFIRMED),
		resFor("t2", date(2025, time.March, 10, 11, 45), types.RESERVATION_PENDING),
		resFor("t1", date(2025, time.March, 10, 18, 0), types.RESERVATION_CONFIRMED),
	}

	buckets := GroupReservationsByHour(reservations, hours, now)

	// Opening range clipped one hour before closing: 10:00 through 21:00.
	assert.Len(t, buckets, 12)
	assert.Equal(t, 10, buckets[0].Hour)
	assert.Equal(t, 21, buckets[len(buckets)-1].Hour)

	byHour := map[int]HourBucket{}
	for _, b := range buckets {
		byHour[b.Hour] = b
	}
	assert.Len(t, byHour[11].Reservations, 2)
	assert.Len(t, byHour[18].Reservations, 1)
	assert.Empty(t, byHour[14].Reservations)

	assert.True(t, byHour[11].Past)
	assert.True(t, byHour[12].Current)
	assert.False(t, byHour[18].Past)
	assert.Equal(t, "18:00", byHour[18].Label)
}

func TestAvailableTablesForReservation(t *testing.T) {
	now := date(2025, time.March, 10, 12, 10)
	assigned := "t2"
	reservation := models.Reservation{
		ID:              "r1",
		TableID:         &assigned,
		NumberOfGuests:  4,
		ReservationTime: date(2025, time.March, 10, 19, 0),
		Status:          types.RESERVATION_CONFIRMED,
	}
	tables := []models.Table{
		{ID: "t1", MinCapacity: 2, MaxCapacity: 4},
		{ID: "t2", MinCapacity: 2, MaxCapacity: 6},
		{ID: "t3", MinCapacity: 6, MaxCapacity: 10}, // too big for a party of 4
		{ID: "t4", MinCapacity: 2, MaxCapacity: 4},
	}
	// t4 is taken by somebody else right now.
	other := []models.Reservation{
		reservation,
		resFor("t4", date(2025, time.March, 10, 12, 30), types.RESERVATION_CONFIRMED),
	}

	got := AvailableTablesForReservation(reservation, tables, other, now)
	ids := make([]string, len(got))
	for i, tb := range got {
		ids[i] = tb.ID
	}
	// t1 is free, t2 is the reservation's own table (kept even though its
	// future reservation marks it reserved), t3 fails capacity, t4 is occupied.
	assert.Equal(t, []string{"t1", "t2"}, ids)
}
