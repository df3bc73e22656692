package Controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbites/canteen-app/models"
)

func TestMenuListsOnlyAvailableDishes(t *testing.T) {
	f := setupFixture(t)

	soldOut := models.Dish{
		Name:        "Sold Out Special",
		CategoryID:  f.dish.CategoryID,
		DishType:    models.DishTypeVeg,
		Price:       60,
		IsAvailable: false,
	}
	require.NoError(t, f.db.Create(&soldOut).Error)

	w := doJSON(t, f.router, http.MethodGet, "/menu", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	dishes := data["dishes"].([]interface{})
	require.Len(t, dishes, 1)
	first := dishes[0].(map[string]interface{})
	assert.Equal(t, "Veg Thali", first["name"])
}

func TestMenuSearchFilter(t *testing.T) {
	f := setupFixture(t)

	other := models.Dish{
		Name:        "Masala Chai",
		Description: "Spiced tea",
		CategoryID:  f.dish.CategoryID,
		DishType:    models.DishTypeBeverage,
		Price:       10,
		IsAvailable: true,
	}
	require.NoError(t, f.db.Create(&other).Error)

	w := doJSON(t, f.router, http.MethodGet, "/menu?search=Chai", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	dishes := data["dishes"].([]interface{})
	require.Len(t, dishes, 1)
	assert.Equal(t, "Masala Chai", dishes[0].(map[string]interface{})["name"])

	w = doJSON(t, f.router, http.MethodGet, "/menu?dish_type=beverage", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data = resp["data"].(map[string]interface{})
	assert.Len(t, data["dishes"].([]interface{}), 1)
}

func TestDishDetailWithReviews(t *testing.T) {
	f := setupFixture(t)
	url := fmt.Sprintf("/dishes/%d", f.dish.ID)

	// review the dish, then check the aggregate on the detail page
	w := doJSON(t, f.router, http.MethodPost, url+"/reviews", f.studentToken, map[string]interface{}{
		"rating":  4,
		"comment": "solid thali",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, f.router, http.MethodGet, url, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 4.0, data["average_rating"])
	assert.Equal(t, 1.0, data["total_reviews"])
	assert.Len(t, data["reviews"].([]interface{}), 1)
}

func TestReviewResubmissionUpdatesInPlace(t *testing.T) {
	f := setupFixture(t)
	url := fmt.Sprintf("/dishes/%d/reviews", f.dish.ID)

	w := doJSON(t, f.router, http.MethodPost, url, f.studentToken, map[string]interface{}{"rating": 5})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, f.router, http.MethodPost, url, f.studentToken, map[string]interface{}{"rating": 3})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 1.0, data["total_reviews"])
	assert.Equal(t, 3.0, data["average_rating"])

	var count int64
	f.db.Model(&models.Review{}).Where("dish_id = ?", f.dish.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestToggleDishAvailability(t *testing.T) {
	f := setupFixture(t)
	url := fmt.Sprintf("/staff/dishes/%d/toggle", f.dish.ID)

	t.Run("student is denied", func(t *testing.T) {
		w := doJSON(t, f.router, http.MethodPost, url, f.studentToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)

		var dish models.Dish
		require.NoError(t, f.db.First(&dish, f.dish.ID).Error)
		assert.True(t, dish.IsAvailable)
	})

	t.Run("staff toggles", func(t *testing.T) {
		w := doJSON(t, f.router, http.MethodPost, url, f.staffToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var dish models.Dish
		require.NoError(t, f.db.First(&dish, f.dish.ID).Error)
		assert.False(t, dish.IsAvailable)
	})
}

func TestSlotListingShowsAvailability(t *testing.T) {
	f := setupFixture(t)

	full := models.PickupSlot{StartTime: "08:00", EndTime: "09:00", IsActive: true, MaxOrders: 1}
	require.NoError(t, f.db.Create(&full).Error)
	require.NoError(t, f.db.Create(&models.PreOrder{
		UserID:       f.studentID,
		DishID:       f.dish.ID,
		Quantity:     1,
		PickupSlotID: full.ID,
		Date:         pickupDate(),
		Status:       models.OrderStatusPending,
		TotalAmount:  80,
		OrderNumber:  "SLOTFULL",
	}).Error)

	w := doJSON(t, f.router, http.MethodGet, "/slots?date="+pickupDate(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	slots := data["slots"].([]interface{})
	require.Len(t, slots, 2)

	byLabel := map[string]bool{}
	for _, raw := range slots {
		slot := raw.(map[string]interface{})
		byLabel[slot["label"].(string)] = slot["is_available"].(bool)
	}
	assert.False(t, byLabel["08:00 - 09:00"])
	assert.True(t, byLabel["12:00 - 13:00"])
}
