package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campusbites/canteen-app/models"
	"github.com/campusbites/canteen-app/services"
	"github.com/campusbites/canteen-app/utils"
)

type SlotController struct {
	DB    *gorm.DB
	Slots *services.SlotService
}

func NewSlotController(db *gorm.DB) *SlotController {
	return &SlotController{DB: db, Slots: services.NewSlotService(db)}
}

type slotListing struct {
	models.PickupSlot
	Label       string `json:"label"`
	IsAvailable bool   `json:"is_available"`
}

// GetSlots lists active pickup slots with their advisory availability for
// the requested date (default tomorrow). Availability is per slot per
// date: a full slot on one day says nothing about the next.
func (sc *SlotController) GetSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().AddDate(0, 0, 1).Format(models.DateLayout)
	} else if _, err := time.Parse(models.DateLayout, date); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("date must be in YYYY-MM-DD format"))
		return
	}

	var slots []models.PickupSlot
	if err := sc.DB.Where("is_active = ?", true).Order("start_time asc").Find(&slots).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	listings := make([]slotListing, 0, len(slots))
	for _, slot := range slots {
		listings = append(listings, slotListing{
			PickupSlot:  slot,
			Label:       slot.Label(),
			IsAvailable: sc.Slots.IsAvailable(slot.ID, date),
		})
	}

	utils.RespondJSON(c, http.StatusOK, "Pickup slots", gin.H{
		"date":  date,
		"slots": listings,
	})
}
