package types

import (
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type RestaurantStatus string

const (
	RESTAURANT_PENDING RestaurantStatus = "pending"
	RESTAURANT_OPEN    RestaurantStatus = "open"
	RESTAURANT_CLOSED  RestaurantStatus = "closed"
)

type TableStatus string

const (
	TABLE_AVAILABLE TableStatus = "available"
	TABLE_OCCUPIED  TableStatus = "occupied"
	TABLE_RESERVED  TableStatus = "reserved"
)

type ReservationStatus string

const (
	RESERVATION_PENDING   ReservationStatus = "pending"
	RESERVATION_CONFIRMED ReservationStatus = "confirmed"
	RESERVATION_CANCELED  ReservationStatus = "cancelled"
	RESERVATION_COMPLETED ReservationStatus = "completed"
)

type WaitlistStatus string

const (
	WAITLIST_WAITING  WaitlistStatus = "waiting"
	WAITLIST_SEATED   WaitlistStatus = "seated"
	WAITLIST_CANCELED WaitlistStatus = "cancelled"
)

type AvailabilityStatus string

const (
	AVAILABILITY_OPEN    AvailabilityStatus = "open"
	AVAILABILITY_CLOSED  AvailabilityStatus = "closed"
	AVAILABILITY_LIMITED AvailabilityStatus = "limited"
)

// SpecialAvailability is a per-date exception to a restaurant's regular
// opening hours, e.g. {"date": "2025-12-25", "reason": "Holiday", "status": "closed"}.
type SpecialAvailability struct {
	Date   string             `json:"date"`
	Reason string             `json:"reason,omitempty"`
	Status AvailabilityStatus `json:"status"`
}

type CreateRestaurantRequestBody struct {
	Name                string                `json:"name" binding:"required"`
	Location            string                `json:"location" binding:"required"`
	Description         string                `json:"description,omitempty"`
	Phone               string                `json:"phone,omitempty"`
	OpeningHours        string                `json:"openingHours,omitempty"`
	Img                 string                `json:"img,omitempty"`
	SpecialAvailability []SpecialAvailability `json:"specialAvailability,omitempty"`
}

type UpdateRestaurantRequestBody struct {
	Name                string                `json:"name,omitempty"`
	Location            string                `json:"location,omitempty"`
	Description         string                `json:"description,omitempty"`
	Phone               string                `json:"phone,omitempty"`
	OpeningHours        string                `json:"openingHours,omitempty"`
	Img                 string                `json:"img,omitempty"`
	Status              RestaurantStatus      `json:"status,omitempty"`
	SpecialAvailability []SpecialAvailability `json:"specialAvailability,omitempty"`
}

type CreateTableRequestBody struct {
	Name        string `json:"name,omitempty"`
	MinCapacity int    `json:"minCapacity" binding:"required,min=1"`
	MaxCapacity int    `json:"maxCapacity" binding:"required,gtefield=MinCapacity"`
}

type UpdateTableRequestBody struct {
	Name        *string      `json:"name,omitempty"`
	MinCapacity *int         `json:"minCapacity,omitempty"`
	MaxCapacity *int         `json:"maxCapacity,omitempty"`
	Status      *TableStatus `json:"status,omitempty"`
	X           *float64     `json:"x,omitempty"`
	Y           *float64     `json:"y,omitempty"`
}

type CreateReservationRequestBody struct {
	ReservationTime string `json:"reservationTime" binding:"required,bookabletime" time_format:"2006-01-02T15:04:05Z07:00"`
	NumberOfGuests  int    `json:"numberOfGuests" binding:"required,min=1"`
	PhoneNumber     string `json:"phoneNumber" binding:"required"`
	Email           string `json:"email,omitempty" binding:"omitempty,email"`
}

type UpdateReservationRequestBody struct {
	ReservationTime string `json:"reservationTime,omitempty" binding:"omitempty,bookabletime"`
	NumberOfGuests  int    `json:"numberOfGuests,omitempty" binding:"omitempty,min=1"`
	PhoneNumber     string `json:"phoneNumber,omitempty"`
}

type AssignTableRequestBody struct {
	TableID string `json:"tableId" binding:"required"`
}

type CreateWaitlistEntryRequestBody struct {
	Name        string `json:"name" binding:"required"`
	PartySize   int    `json:"partySize" binding:"required,min=1"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

type SeatWaitlistEntryRequestBody struct {
	TableID string `json:"tableId" binding:"required"`
}

type RestaurantRequestParams struct {
	RestaurantID string `uri:"restaurantId" binding:"required,uuid"`
}

type TableRequestParams struct {
	RestaurantID string `uri:"restaurantId" binding:"required,uuid"`
	TableID      string `uri:"tableId" binding:"required,uuid"`
}

type ReservationRequestParams struct {
	RestaurantID  string `uri:"restaurantId" binding:"required,uuid"`
	ReservationID string `uri:"reservationId" binding:"required,uuid"`
}

type WaitlistRequestParams struct {
	RestaurantID string `uri:"restaurantId" binding:"required,uuid"`
	EntryID      string `uri:"entryId" binding:"required,uuid"`
}
