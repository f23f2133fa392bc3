package models

import (
	"encoding/json"
	"rtm/src/types"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Restaurant struct {
	ID                  string                 `gorm:"primarykey;type:uuid" json:"id"`
	Name                string                 `json:"name"`
	Slug                string                 `gorm:"uniqueIndex" json:"slug,omitempty"`
	Location            string                 `json:"location"`
	Description         string                 `json:"description,omitempty"`
	Phone               string                 `json:"phone,omitempty"`
	OpeningHours        string                 `json:"openingHours,omitempty"`
	Img                 string                 `json:"img,omitempty"`
	Status              types.RestaurantStatus `gorm:"default:'pending'" json:"status,omitempty"`
	SpecialAvailability datatypes.JSON         `json:"specialAvailability,omitempty"`

	Tables       []Table       `gorm:"foreignKey:restaurant_id" json:"tables,omitempty"`
	Reservations []Reservation `gorm:"foreignKey:restaurant_id" json:"reservations,omitempty"`

	types.Timestamps
}

func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Availability decodes the special_availability JSON column. A missing or
// malformed column reads as no exceptions.
func (r *Restaurant) Availability() []types.SpecialAvailability {
	if len(r.SpecialAvailability) == 0 {
		return nil
	}
	var out []types.SpecialAvailability
	if err := json.Unmarshal(r.SpecialAvailability, &out); err != nil {
		return nil
	}
	return out
}

func (r *Restaurant) SetAvailability(entries []types.SpecialAvailability) error {
	b, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	r.SpecialAvailability = datatypes.JSON(b)
	return nil
}
