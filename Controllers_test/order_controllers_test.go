package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/campusbites/canteen-app/models"
	"github.com/campusbites/canteen-app/router"
	"github.com/campusbites/canteen-app/utils"
)

type fixture struct {
	db           *gorm.DB
	router       *gin.Engine
	dish         models.Dish
	slot         models.PickupSlot
	studentToken string
	staffToken   string
	studentID    uint
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Category{},
		&models.PickupSlot{},
		&models.Dish{},
		&models.Review{},
		&models.PreOrder{},
	))

	category := models.Category{Name: "Main Course", IsActive: true}
	require.NoError(t, db.Create(&category).Error)

	dish := models.Dish{
		Name:        "Veg Thali",
		CategoryID:  category.ID,
		DishType:    models.DishTypeVeg,
		Price:       80,
		IsAvailable: true,
	}
	require.NoError(t, db.Create(&dish).Error)

	slot := models.PickupSlot{StartTime: "12:00", EndTime: "13:00", IsActive: true, MaxOrders: 50}
	require.NoError(t, db.Create(&slot).Error)

	student := models.User{Name: "Student", Email: "student@college.edu", Password: "x"}
	require.NoError(t, db.Create(&student).Error)
	require.NoError(t, db.Create(&models.UserProfile{UserID: student.ID, Role: models.RoleStudent}).Error)

	staff := models.User{Name: "Staff", Email: "staff@canteen.com", Password: "x"}
	require.NoError(t, db.Create(&staff).Error)
	require.NoError(t, db.Create(&models.UserProfile{UserID: staff.ID, Role: models.RoleStaff}).Error)

	studentToken, err := utils.GenerateToken(student.ID)
	require.NoError(t, err)
	staffToken, err := utils.GenerateToken(staff.ID)
	require.NoError(t, err)

	return &fixture{
		db:           db,
		router:       router.SetupRouter(db),
		dish:         dish,
		slot:         slot,
		studentToken: studentToken,
		staffToken:   staffToken,
		studentID:    student.ID,
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func pickupDate() string {
	return time.Now().AddDate(0, 0, 2).Format(models.DateLayout)
}

func (f *fixture) createOrder(t *testing.T) uint {
	t.Helper()
	w := doJSON(t, f.router, http.MethodPost, "/orders", f.studentToken, map[string]interface{}{
		"dish_id":        f.dish.ID,
		"quantity":       2,
		"pickup_slot_id": f.slot.ID,
		"date":           pickupDate(),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	return uint(data["id"].(float64))
}

func TestCreateOrderEndpoint(t *testing.T) {
	f := setupFixture(t)

	w := doJSON(t, f.router, http.MethodPost, "/orders", f.studentToken, map[string]interface{}{
		"dish_id":        f.dish.ID,
		"quantity":       2,
		"pickup_slot_id": f.slot.ID,
		"date":           pickupDate(),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, 160.0, data["total_amount"])
	assert.Len(t, data["order_number"], 8)
}

func TestCreateOrderEndpointRejectsBadInput(t *testing.T) {
	f := setupFixture(t)

	t.Run("quantity out of range", func(t *testing.T) {
		w := doJSON(t, f.router, http.MethodPost, "/orders", f.studentToken, map[string]interface{}{
			"dish_id":        f.dish.ID,
			"quantity":       11,
			"pickup_slot_id": f.slot.ID,
			"date":           pickupDate(),
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("date out of window", func(t *testing.T) {
		w := doJSON(t, f.router, http.MethodPost, "/orders", f.studentToken, map[string]interface{}{
			"dish_id":        f.dish.ID,
			"quantity":       1,
			"pickup_slot_id": f.slot.ID,
			"date":           time.Now().Format(models.DateLayout),
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown dish", func(t *testing.T) {
		w := doJSON(t, f.router, http.MethodPost, "/orders", f.studentToken, map[string]interface{}{
			"dish_id":        99999,
			"quantity":       1,
			"pickup_slot_id": f.slot.ID,
			"date":           pickupDate(),
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("no token", func(t *testing.T) {
		w := doJSON(t, f.router, http.MethodPost, "/orders", "", map[string]interface{}{
			"dish_id":        f.dish.ID,
			"quantity":       1,
			"pickup_slot_id": f.slot.ID,
			"date":           pickupDate(),
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCancelOrderEndpoint(t *testing.T) {
	f := setupFixture(t)
	orderID := f.createOrder(t)

	url := "/orders/" + strconv.Itoa(int(orderID)) + "/cancel"
	w := doJSON(t, f.router, http.MethodPost, url, f.studentToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var order models.PreOrder
	require.NoError(t, f.db.First(&order, orderID).Error)
	assert.Equal(t, models.OrderStatusCancelled, order.Status)

	// cancelling a cancelled order is rejected
	w = doJSON(t, f.router, http.MethodPost, url, f.studentToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStaffStatusEndpoint(t *testing.T) {
	f := setupFixture(t)
	orderID := f.createOrder(t)
	url := "/staff/orders/" + strconv.Itoa(int(orderID)) + "/status"

	t.Run("student is denied", func(t *testing.T) {
		w := doJSON(t, f.router, http.MethodPatch, url, f.studentToken, map[string]string{"status": "confirmed"})
		assert.Equal(t, http.StatusForbidden, w.Code)

		var order models.PreOrder
		require.NoError(t, f.db.First(&order, orderID).Error)
		assert.Equal(t, models.OrderStatusPending, order.Status)
	})

	t.Run("staff confirms", func(t *testing.T) {
		w := doJSON(t, f.router, http.MethodPatch, url, f.staffToken, map[string]string{"status": "confirmed"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var order models.PreOrder
		require.NoError(t, f.db.First(&order, orderID).Error)
		assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	})

	t.Run("illegal transition", func(t *testing.T) {
		w := doJSON(t, f.router, http.MethodPatch, url, f.staffToken, map[string]string{"status": "pending"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetMyOrdersEndpoint(t *testing.T) {
	f := setupFixture(t)
	f.createOrder(t)
	f.createOrder(t)

	w := doJSON(t, f.router, http.MethodGet, "/orders", f.studentToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	orders := data["orders"].([]interface{})
	assert.Len(t, orders, 2)
	counts := data["counts"].(map[string]interface{})
	assert.Equal(t, 2.0, counts["pending"])
}
