package models

import (
	"rtm/src/types"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Reservation struct {
	ID              string                  `gorm:"primarykey;type:uuid" json:"id"`
	RestaurantID    string                  `gorm:"index" json:"restaurantId"`
	UserID          string                  `gorm:"index" json:"userId,omitempty"`
	TableID         *string                 `gorm:"index" json:"tableId,omitempty"`
	ReservationTime time.Time               `json:"reservationTime"`
	NumberOfGuests  int                     `json:"numberOfGuests"`
	Status          types.ReservationStatus `gorm:"default:'pending'" json:"status,omitempty"`
	PhoneNumber     string                  `json:"phoneNumber,omitempty"`

	Restaurant Restaurant `gorm:"foreignKey:restaurant_id" json:"-"`
	Table      *Table     `gorm:"foreignKey:table_id" json:"table,omitempty"`

	types.Timestamps
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Finalized reports whether the reservation reached a terminal state.
// Terminal reservations reject cancellation and table reassignment.
func (r *Reservation) Finalized() bool {
	return r.Status == types.RESERVATION_CANCELED || r.Status == types.RESERVATION_COMPLETED
}
