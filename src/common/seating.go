package common

import (
	"fmt"
	"log"
	"rtm/src/db"
	"rtm/src/lib"
	"rtm/src/models"
	"rtm/src/types"
	"time"

	"gorm.io/gorm"
)

// SeatWaitlistEntry walks a waiting party to a table: the table is marked
// occupied, seating is recorded as a reservation starting now, and the
// entry transitions to seated.
//
// The three steps are applied in order with no rollback. A failure
// part-way leaves the earlier effects in place and returns an error naming
// the step that failed; the caller reconciles by re-fetching authoritative
// state, mirroring the reload-after-mutation model the clients already use.
func SeatWaitlistEntry(restaurantID, entryID, tableID string, now time.Time) (*models.Reservation, error) {
	dbconn := db.GetDb()

	var entry models.WaitlistEntry
	err := dbconn.
		Model(&models.WaitlistEntry{}).
		Where(&models.WaitlistEntry{ID: entryID, RestaurantID: restaurantID}).
		First(&entry).
		Error
	if err != nil {
		return nil, fmt.Errorf("seat: loading waitlist entry [%s]: %w", entryID, err)
	}
	if entry.Status != types.WAITLIST_WAITING {
		return nil, fmt.Errorf("seat: entry [%s]: %w", entryID, ErrEntryNotWaiting)
	}

	var table models.Table
	err = dbconn.
		Model(&models.Table{}).
		Where(&models.Table{ID: tableID, RestaurantID: restaurantID}).
		First(&table).
		Error
	if err != nil {
		return nil, fmt.Errorf("seat: %w: %s", ErrTableNotFound, tableID)
	}

	// Step 1: occupy the table.
	err = dbconn.
		Model(&models.Table{}).
		Where(&models.Table{ID: tableID}).
		Update("status", types.TABLE_OCCUPIED).
		Error
	if err != nil {
		return nil, fmt.Errorf("seat: occupying table [%s]: %w", tableID, err)
	}

	// Step 2: record the seating as a reservation starting now.
	reservation := models.Reservation{
		RestaurantID:    restaurantID,
		TableID:         &tableID,
		ReservationTime: now,
		NumberOfGuests:  entry.PartySize,
		Status:          types.RESERVATION_CONFIRMED,
		PhoneNumber:     entry.PhoneNumber,
	}
	if err := dbconn.Create(&reservation).Error; err != nil {
		return nil, fmt.Errorf("seat: creating reservation for entry [%s]: %w", entryID, err)
	}

	// Step 3: the entry leaves the queue.
	err = dbconn.
		Model(&models.WaitlistEntry{}).
		Where(&models.WaitlistEntry{ID: entryID}).
		Update("status", types.WAITLIST_SEATED).
		Error
	if err != nil {
		return &reservation, fmt.Errorf("seat: updating waitlist entry [%s]: %w", entryID, err)
	}

	lib.InvalidateTableCache(restaurantID)
	if err := RefreshTableStatuses(restaurantID, now); err != nil {
		log.Printf("Could not refresh table statuses after seating: %s\n", err.Error())
	}
	return &reservation, nil
}

// CancelWaitlistEntry transitions a waiting entry to cancelled. Seated and
// cancelled entries are terminal.
func CancelWaitlistEntry(restaurantID, entryID string) error {
	dbconn := db.GetDb()
	return dbconn.Transaction(func(tx *gorm.DB) error {
		var entry models.WaitlistEntry
		err := tx.
			Model(&models.WaitlistEntry{}).
			Where(&models.WaitlistEntry{ID: entryID, RestaurantID: restaurantID}).
			First(&entry).
			Error
		if err != nil {
			return err
		}
		if entry.Status != types.WAITLIST_WAITING {
			return fmt.Errorf("cancel: entry [%s]: %w", entryID, ErrEntryNotWaiting)
		}
		return tx.
			Model(&models.WaitlistEntry{}).
			Where(&models.WaitlistEntry{ID: entryID}).
			Update("status", types.WAITLIST_CANCELED).
			Error
	})
}

// ExpireStaleWaitlistEntries cancels waiting entries created before the
// start of the current day. Walk-ins do not carry over to the next
// service; the sweep runs from the background scheduler.
func ExpireStaleWaitlistEntries() {
	dbconn := db.GetDb()
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	err := dbconn.Transaction(func(tx *gorm.DB) error {
		return tx.
			Model(&models.WaitlistEntry{}).
			Where("status = ?", types.WAITLIST_WAITING).
			Where("created_at < ?", startOfDay).
			Update("status", types.WAITLIST_CANCELED).
			Error
	})
	if err != nil {
		log.Printf("Error while expiring stale waitlist entries: %s\n", err.Error())
	}
}
