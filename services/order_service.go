package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/campusbites/canteen-app/models"
)

const (
	MinQuantity = 1
	MaxQuantity = 10

	// Orders must be placed at least one day and at most a week ahead.
	orderWindowDays = 7

	orderNumberLength  = 8
	orderNumberRetries = 5
)

const orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// statusTransitions is the allowed forward-only edge set for staff updates.
// cancelled is reachable from pending/confirmed only; picked and cancelled
// are terminal.
var statusTransitions = map[string][]string{
	models.OrderStatusPending:   {models.OrderStatusConfirmed, models.OrderStatusCancelled},
	models.OrderStatusConfirmed: {models.OrderStatusReady, models.OrderStatusCancelled},
	models.OrderStatusReady:     {models.OrderStatusPicked},
	models.OrderStatusPicked:    {},
	models.OrderStatusCancelled: {},
}

// OrderService owns pre-order creation, cancellation and status transitions.
// The clock is injected so the date-window validation is deterministic in
// tests.
type OrderService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db, Now: time.Now}
}

type CreateOrderInput struct {
	UserID              uint
	DishID              uint
	Quantity            int
	PickupSlotID        uint
	Date                string
	SpecialInstructions string
}

// Create validates the reservation request and persists a pending order.
// Validation order: dish, quantity, date window, slot state. The slot
// capacity check is advisory and happens in the listing layer, not here
// (see SlotService).
func (s *OrderService) Create(in CreateOrderInput) (*models.PreOrder, error) {
	var dish models.Dish
	if err := s.DB.Where("id = ? AND is_available = ?", in.DishID, true).First(&dish).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if in.Quantity < MinQuantity || in.Quantity > MaxQuantity {
		return nil, newValidationError(fmt.Sprintf("quantity must be between %d and %d", MinQuantity, MaxQuantity))
	}

	date, err := time.Parse(models.DateLayout, in.Date)
	if err != nil {
		return nil, newValidationError("date must be in YYYY-MM-DD format")
	}
	today := s.today()
	earliest := today.AddDate(0, 0, 1)
	latest := today.AddDate(0, 0, orderWindowDays)
	if date.Before(earliest) {
		return nil, newValidationError("orders must be placed at least one day in advance")
	}
	if date.After(latest) {
		return nil, newValidationError(fmt.Sprintf("orders can only be placed up to %d days in advance", orderWindowDays))
	}

	var slot models.PickupSlot
	if err := s.DB.First(&slot, in.PickupSlotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !slot.IsActive {
		return nil, newValidationError("pickup slot is not active")
	}

	number, err := s.generateOrderNumber()
	if err != nil {
		return nil, err
	}

	now := s.Now()
	order := models.PreOrder{
		UserID:              in.UserID,
		DishID:              dish.ID,
		Quantity:            in.Quantity,
		PickupSlotID:        slot.ID,
		Date:                date.Format(models.DateLayout),
		Status:              models.OrderStatusPending,
		SpecialInstructions: in.SpecialInstructions,
		TotalAmount:         dish.Price * float64(in.Quantity),
		OrderNumber:         number,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := s.DB.Create(&order).Error; err != nil {
		return nil, err
	}

	order.Dish = dish
	order.PickupSlot = slot
	return &order, nil
}

// Cancel moves an order owned by userID to cancelled. Only pending and
// confirmed orders can be cancelled.
func (s *OrderService) Cancel(orderID, userID uint) (*models.PreOrder, error) {
	var order models.PreOrder
	if err := s.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if order.Status != models.OrderStatusPending && order.Status != models.OrderStatusConfirmed {
		return nil, newValidationError("cannot cancel this order")
	}

	order.Status = models.OrderStatusCancelled
	order.UpdatedAt = s.Now()
	if err := s.DB.Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// SetStatus applies a staff status transition. Disallowed edges are
// rejected; the caller is expected to have passed the staff gate already.
func (s *OrderService) SetStatus(orderID uint, newStatus string) (*models.PreOrder, error) {
	if _, known := statusTransitions[newStatus]; !known {
		return nil, newValidationError(fmt.Sprintf("unknown order status %q", newStatus))
	}

	var order models.PreOrder
	if err := s.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !transitionAllowed(order.Status, newStatus) {
		return nil, newValidationError(fmt.Sprintf("cannot move order from %s to %s", order.Status, newStatus))
	}

	order.Status = newStatus
	order.UpdatedAt = s.Now()
	if err := s.DB.Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func transitionAllowed(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Today returns the server's current date in storage format.
func (s *OrderService) Today() string {
	return s.today().Format(models.DateLayout)
}

func (s *OrderService) today() time.Time {
	now := s.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// generateOrderNumber draws random 8-char uppercase alphanumeric candidates
// and checks them against existing orders, bounded by orderNumberRetries.
// Collisions are unlikely but uniqueness is also backed by the unique index.
func (s *OrderService) generateOrderNumber() (string, error) {
	for attempt := 0; attempt < orderNumberRetries; attempt++ {
		candidate := randomOrderNumber()
		var count int64
		if err := s.DB.Model(&models.PreOrder{}).Where("order_number = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
	return "", ErrOrderNumberConflict
}

func randomOrderNumber() string {
	b := make([]byte, orderNumberLength)
	for i := range b {
		b[i] = orderNumberAlphabet[rand.Intn(len(orderNumberAlphabet))]
	}
	return string(b)
}
