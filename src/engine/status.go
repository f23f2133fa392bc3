package engine

import (
	"fmt"
	"rtm/src/models"
	"rtm/src/types"
	"time"
)

// ReservedWindow is how far ahead a confirmed reservation marks its table
// "reserved" rather than merely upcoming.
const ReservedWindow = 15 * time.Minute

// ResolveTableStatus derives a table's status from the reservation set at
// evaluation time. The stored table status is only a cache hint; this is
// the source of truth at render time. Highest-priority rule wins:
//
//  1. a completed (checked-in) reservation occupies the table
//  2. a non-cancelled reservation inside the current hour occupies it
//  3. a confirmed reservation starting within the next 15 minutes reserves it
//  4. any future non-cancelled reservation reserves it
//  5. otherwise the table is available
func ResolveTableStatus(table models.Table, reservations []models.Reservation, now time.Time) types.TableStatus {
	var upcoming, future bool
	for _, res := range reservations {
		if res.TableID == nil || *res.TableID != table.ID {
			continue
		}
		if res.Status == types.RESERVATION_COMPLETED {
			return types.TABLE_OCCUPIED
		}
		if res.Status == types.RESERVATION_CANCELED {
			continue
		}
		t := res.ReservationTime
		if sameDay(t, now) && t.Hour() == now.Hour() {
			return types.TABLE_OCCUPIED
		}
		until := t.Sub(now)
		if res.Status == types.RESERVATION_CONFIRMED && until > 0 && until <= ReservedWindow {
			upcoming = true
		}
		if t.After(now) {
			future = true
		}
	}
	if upcoming || future {
		return types.TABLE_RESERVED
	}
	return types.TABLE_AVAILABLE
}

// ResolveAll derives the status of every table against the same
// reservation snapshot. Running it twice over an unchanged snapshot yields
// identical results.
func ResolveAll(tables []models.Table, reservations []models.Reservation, now time.Time) map[string]types.TableStatus {
	statuses := make(map[string]types.TableStatus, len(tables))
	for _, table := range tables {
		statuses[table.ID] = ResolveTableStatus(table, reservations, now)
	}
	return statuses
}

// HourBucket groups one opening hour's reservations for the operator's
// agenda view. Past and Current flag display treatment only; past buckets
// stay queryable.
type HourBucket struct {
	Hour         int                  `json:"hour"`
	Label        string               `json:"label"`
	Past         bool                 `json:"past"`
	Current      bool                 `json:"current"`
	Reservations []models.Reservation `json:"reservations"`
}

// GroupReservationsByHour buckets reservations by the hour component of
// their local reservation time. Buckets span the opening range, clipped to
// end one hour before closing.
func GroupReservationsByHour(reservations []models.Reservation, hours OpeningHours, now time.Time) []HourBucket {
	if hours.EndHour <= hours.StartHour {
		return []HourBucket{}
	}
	buckets := make([]HourBucket, 0, hours.EndHour-hours.StartHour)
	for hour := hours.StartHour; hour < hours.EndHour; hour++ {
		bucket := HourBucket{
			Hour:         hour,
			Label:        fmt.Sprintf("%02d:00", hour),
			Past:         hour < now.Hour(),
			Current:      hour == now.Hour(),
			Reservations: []models.Reservation{},
		}
		for _, res := range reservations {
			if res.ReservationTime.Hour() == hour {
				bucket.Reservations = append(bucket.Reservations, res)
			}
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

// AvailableTablesForReservation returns the tables that could service the
// reservation: its currently assigned table plus every table derived
// available, restricted to tables whose capacity range covers the party.
func AvailableTablesForReservation(res models.Reservation, tables []models.Table, reservations []models.Reservation, now time.Time) []models.Table {
	matches := []models.Table{}
	for _, table := range tables {
		if !table.Fits(res.NumberOfGuests) {
			continue
		}
		assigned := res.TableID != nil && *res.TableID == table.ID
		if assigned || ResolveTableStatus(table, reservations, now) == types.TABLE_AVAILABLE {
			matches = append(matches, table)
		}
	}
	return matches
}
