package models

import "time"

// PickupSlot is a daily time window students can reserve a pickup in.
// MaxOrders caps active orders per slot per calendar date, not globally.
type PickupSlot struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	StartTime string `gorm:"type:varchar(5);not null" json:"start_time"` // HH:MM
	EndTime   string `gorm:"type:varchar(5);not null" json:"end_time"`   // HH:MM
	IsActive  bool   `gorm:"not null;default:true" json:"is_active"`
	MaxOrders int    `gorm:"not null;default:50" json:"max_orders"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *PickupSlot) Label() string {
	return s.StartTime + " - " + s.EndTime
}
