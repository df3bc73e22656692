package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campusbites/canteen-app/middlewares"
	"github.com/campusbites/canteen-app/models"
	"github.com/campusbites/canteen-app/services"
	"github.com/campusbites/canteen-app/utils"
)

type OrderController struct {
	DB     *gorm.DB
	Orders *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db, Orders: services.NewOrderService(db)}
}

// CreateOrder places a pre-order for the authenticated student.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var body struct {
		DishID              uint   `json:"dish_id" binding:"required"`
		Quantity            int    `json:"quantity" binding:"required"`
		PickupSlotID        uint   `json:"pickup_slot_id" binding:"required"`
		Date                string `json:"date" binding:"required"`
		SpecialInstructions string `json:"special_instructions"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.Create(services.CreateOrderInput{
		UserID:              userID,
		DishID:              body.DishID,
		Quantity:            body.Quantity,
		PickupSlotID:        body.PickupSlotID,
		Date:                body.Date,
		SpecialInstructions: body.SpecialInstructions,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Pre-order %s placed by user %d", order.OrderNumber, userID)

	utils.RespondJSON(c, http.StatusCreated, "Pre-order placed", order)
}

// GetMyOrders lists the requester's orders, optionally filtered by status,
// with per-status counts for the dashboard.
func (oc *OrderController) GetMyOrders(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	query := oc.DB.Preload("Dish").Preload("PickupSlot").
		Where("user_id = ?", userID).
		Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.PreOrder
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	counts := map[string]int64{}
	rows, err := oc.DB.Model(&models.PreOrder{}).
		Where("user_id = ?", userID).
		Select("status, COUNT(*) as count").
		Group("status").Rows()
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var status string
			var count int64
			if err := rows.Scan(&status, &count); err == nil {
				counts[status] = count
			}
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Your orders", gin.H{
		"orders": orders,
		"counts": counts,
	})
}

// CancelOrder cancels one of the requester's own orders.
func (oc *OrderController) CancelOrder(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	orderID, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	order, err := oc.Orders.Cancel(uint(orderID), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order cancelled", order)
}

// GetAllOrders is the staff listing, defaulting to today's pickups with
// optional date and status filters.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = oc.Orders.Today()
	}

	query := oc.DB.Preload("User").Preload("Dish").Preload("PickupSlot").
		Where("date = ?", date).
		Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.PreOrder
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Orders for "+date, orders)
}

// UpdateOrderStatus applies a staff status transition; disallowed edges
// come back as 400s from the service.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.SetStatus(uint(orderID), body.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %s moved to %s", order.OrderNumber, order.Status)

	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}
