package models

import (
	"rtm/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WaitlistEntry struct {
	ID                string               `gorm:"primarykey;type:uuid" json:"id"`
	RestaurantID      string               `gorm:"index" json:"restaurantId"`
	Name              string               `json:"name"`
	PartySize         int                  `json:"partySize"`
	PartyAhead        int                  `json:"partyAhead"`
	EstimatedWaitTime *int                 `json:"estimatedWaitTime,omitempty"`
	PhoneNumber       string               `json:"phoneNumber,omitempty"`
	Status            types.WaitlistStatus `gorm:"default:'waiting'" json:"status,omitempty"`

	Restaurant Restaurant `gorm:"foreignKey:restaurant_id" json:"-"`

	types.Timestamps
}

func (w *WaitlistEntry) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
