package models

import (
	"rtm/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Table positions (X, Y) are center coordinates on the floor plan, adjusted
// by operators through drag moves. Status is a cache of the last derived
// value; the engine recomputes it from the reservation set at read time.
type Table struct {
	ID           string            `gorm:"primarykey;type:uuid" json:"id"`
	RestaurantID string            `gorm:"index" json:"restaurantId"`
	Name         string            `json:"name,omitempty"`
	MinCapacity  int               `json:"minCapacity"`
	MaxCapacity  int               `json:"maxCapacity"`
	Status       types.TableStatus `gorm:"default:'available'" json:"status,omitempty"`
	X            *float64          `json:"x,omitempty"`
	Y            *float64          `json:"y,omitempty"`

	Restaurant Restaurant `gorm:"foreignKey:restaurant_id" json:"-"`

	types.Timestamps
}

func (t *Table) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// Fits reports whether the table's capacity range covers the party size.
func (t *Table) Fits(partySize int) bool {
	return partySize >= t.MinCapacity && partySize <= t.MaxCapacity
}
