package common

import (
	"fmt"
	"log"
	"rtm/src/db"
	"rtm/src/engine"
	"rtm/src/lib"
	"rtm/src/models"
	"rtm/src/types"
	"time"

	"gorm.io/gorm"
)

// CancelReservation transitions a reservation to cancelled. Completed
// reservations are terminal; cancelling one is rejected with the reason.
func CancelReservation(restaurantID, reservationID string) error {
	dbconn := db.GetDb()
	err := dbconn.Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		err := tx.
			Model(&models.Reservation{}).
			Where(&models.Reservation{ID: reservationID, RestaurantID: restaurantID}).
			First(&res).
			Error
		if err != nil {
			return err
		}
		if res.Status == types.RESERVATION_COMPLETED {
			return fmt.Errorf("cannot cancel reservation [%s]: %w", reservationID, ErrReservationFinalized)
		}
		return tx.
			Model(&models.Reservation{}).
			Where(&models.Reservation{ID: reservationID}).
			Update("status", types.RESERVATION_CANCELED).
			Error
	})
	if err != nil {
		return err
	}
	lib.InvalidateTableCache(restaurantID)
	return RefreshTableStatuses(restaurantID, time.Now())
}

// CheckInReservation marks a reservation completed and forces its table
// occupied. Check-in is terminal.
func CheckInReservation(restaurantID, reservationID string) error {
	dbconn := db.GetDb()
	err := dbconn.Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		err := tx.
			Model(&models.Reservation{}).
			Where(&models.Reservation{ID: reservationID, RestaurantID: restaurantID}).
			First(&res).
			Error
		if err != nil {
			return err
		}
		if res.Finalized() {
			return fmt.Errorf("cannot check in reservation [%s]: %w", reservationID, ErrReservationFinalized)
		}
		err = tx.
			Model(&models.Reservation{}).
			Where(&models.Reservation{ID: reservationID}).
			Update("status", types.RESERVATION_COMPLETED).
			Error
		if err != nil {
			return err
		}
		if res.TableID != nil {
			err = tx.
				Model(&models.Table{}).
				Where(&models.Table{ID: *res.TableID}).
				Update("status", types.TABLE_OCCUPIED).
				Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	lib.InvalidateTableCache(restaurantID)
	return RefreshTableStatuses(restaurantID, time.Now())
}

// ReassignTable moves a reservation to a different table and forces its
// status to confirmed. Rejected once the reservation is completed: the
// table a party was seated at is immutable history.
func ReassignTable(restaurantID, reservationID, tableID string) error {
	dbconn := db.GetDb()
	err := dbconn.Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		err := tx.
			Model(&models.Reservation{}).
			Where(&models.Reservation{ID: reservationID, RestaurantID: restaurantID}).
			First(&res).
			Error
		if err != nil {
			return err
		}
		if res.Status == types.RESERVATION_COMPLETED {
			return fmt.Errorf("cannot reassign reservation [%s]: %w", reservationID, ErrReservationFinalized)
		}
		var table models.Table
		err = tx.
			Model(&models.Table{}).
			Where(&models.Table{ID: tableID, RestaurantID: restaurantID}).
			First(&table).
			Error
		if err != nil {
			return fmt.Errorf("%w: %s", ErrTableNotFound, tableID)
		}
		return tx.
			Model(&models.Reservation{}).
			Where(&models.Reservation{ID: reservationID}).
			Updates(map[string]any{
				"table_id": tableID,
				"status":   types.RESERVATION_CONFIRMED,
			}).
			Error
	})
	if err != nil {
		return err
	}
	lib.InvalidateTableCache(restaurantID)
	return RefreshTableStatuses(restaurantID, time.Now())
}

// RefreshTableStatuses re-derives every table's status from today's
// reservation set and persists the result. The stored column is only a
// cache of the last derivation; reads recompute regardless.
func RefreshTableStatuses(restaurantID string, now time.Time) error {
	dbconn := db.GetDb()
	return dbconn.Transaction(func(tx *gorm.DB) error {
		var tables []models.Table
		err := tx.
			Model(&models.Table{}).
			Where(&models.Table{RestaurantID: restaurantID}).
			Find(&tables).
			Error
		if err != nil {
			return err
		}
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		var reservations []models.Reservation
		err = tx.
			Model(&models.Reservation{}).
			Where(&models.Reservation{RestaurantID: restaurantID}).
			Where("reservation_time >= ?", startOfDay).
			Find(&reservations).
			Error
		if err != nil {
			return err
		}
		statuses := engine.ResolveAll(tables, reservations, now)
		for _, table := range tables {
			status := statuses[table.ID]
			if status == table.Status {
				continue
			}
			err := tx.
				Model(&models.Table{}).
				Where(&models.Table{ID: table.ID}).
				Update("status", status).
				Error
			if err != nil {
				log.Printf("Could not refresh status for table [%s]: %s\n", table.ID, err.Error())
				return err
			}
		}
		return nil
	})
}
