package services

import (
	"gorm.io/gorm"

	"github.com/campusbites/canteen-app/models"
)

// SlotService computes advisory slot availability. The check is a plain
// read: it reserves nothing, so two concurrent creations can both pass it
// and jointly exceed capacity (see the known limitations in README.md).
type SlotService struct {
	DB *gorm.DB
}

func NewSlotService(db *gorm.DB) *SlotService {
	return &SlotService{DB: db}
}

// IsAvailable reports whether the slot still has capacity on the given
// date. Capacity is counted per (slot, date) over pending and confirmed
// orders only. A missing slot counts as available; that is a data bug
// upstream, not a condition handled here.
func (s *SlotService) IsAvailable(slotID uint, date string) bool {
	var slot models.PickupSlot
	if err := s.DB.First(&slot, slotID).Error; err != nil {
		return true
	}
	return s.remaining(&slot, date) > 0
}

// ActiveOrderCount returns the number of orders counting against the
// slot's capacity on the given date.
func (s *SlotService) ActiveOrderCount(slotID uint, date string) int64 {
	var count int64
	s.DB.Model(&models.PreOrder{}).
		Where("pickup_slot_id = ? AND date = ? AND status IN ?", slotID, date, models.ActiveOrderStatuses).
		Count(&count)
	return count
}

func (s *SlotService) remaining(slot *models.PickupSlot, date string) int64 {
	return int64(slot.MaxOrders) - s.ActiveOrderCount(slot.ID, date)
}
