package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusReady     = "ready"
	OrderStatusPicked    = "picked"
	OrderStatusCancelled = "cancelled"
)

// DateLayout is the wire and storage format for pickup dates.
const DateLayout = "2006-01-02"

// PreOrder reserves a dish quantity for pickup within a slot on a date.
// TotalAmount is fixed at creation and not recomputed when the dish price
// changes later. OrderNumber is an opaque unique 8-char identifier.
type PreOrder struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	UserID              uint       `gorm:"not null;index" json:"user_id"`
	User                User       `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	DishID              uint       `gorm:"not null" json:"dish_id"`
	Dish                Dish       `gorm:"foreignKey:DishID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"dish"`
	Quantity            int        `gorm:"not null" json:"quantity"`
	PickupSlotID        uint       `gorm:"not null;index" json:"pickup_slot_id"`
	PickupSlot          PickupSlot `gorm:"foreignKey:PickupSlotID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"pickup_slot"`
	Date                string     `gorm:"type:varchar(10);not null;index" json:"date"`
	Status              string     `gorm:"type:varchar(10);not null;default:'pending'" json:"status"`
	SpecialInstructions string     `gorm:"type:text" json:"special_instructions"`
	TotalAmount         float64    `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	OrderNumber         string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"order_number"`
	CreatedAt           time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"not null" json:"updated_at"`
}

// ActiveOrderStatuses are the statuses that count against slot capacity.
var ActiveOrderStatuses = []string{OrderStatusPending, OrderStatusConfirmed}
