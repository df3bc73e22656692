package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campusbites/canteen-app/models"
	"github.com/campusbites/canteen-app/services"
	"github.com/campusbites/canteen-app/utils"
)

const menuPageSize = 12

type DishController struct {
	DB      *gorm.DB
	Reviews *services.ReviewService
}

func NewDishController(db *gorm.DB) *DishController {
	return &DishController{DB: db, Reviews: services.NewReviewService(db)}
}

type dishListing struct {
	models.Dish
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int64   `json:"total_reviews"`
}

// GetMenu lists available dishes with search, category/type filters, sort
// and pagination.
func (dc *DishController) GetMenu(c *gin.Context) {
	query := dc.DB.Model(&models.Dish{}).
		Preload("Category").
		Where("dishes.is_available = ?", true)

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("dishes.name LIKE ? OR dishes.description LIKE ? OR dishes.ingredients LIKE ?", like, like, like)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("dishes.category_id = ?", category)
	}
	if dishType := c.Query("dish_type"); dishType != "" {
		query = query.Where("dishes.dish_type = ?", dishType)
	}

	var total int64
	query.Count(&total)

	switch c.Query("sort") {
	case "price":
		query = query.Order("dishes.price asc")
	case "rating":
		query = query.
			Joins("LEFT JOIN reviews ON reviews.dish_id = dishes.id").
			Group("dishes.id").
			Order("AVG(reviews.rating) DESC")
	default:
		query = query.Order("dishes.name asc")
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	var dishes []models.Dish
	if err := query.Offset((page - 1) * menuPageSize).Limit(menuPageSize).Find(&dishes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	listings := make([]dishListing, 0, len(dishes))
	for _, dish := range dishes {
		listings = append(listings, dishListing{
			Dish:          dish,
			AverageRating: dc.Reviews.AverageRating(dish.ID),
			TotalReviews:  dc.Reviews.TotalReviews(dish.ID),
		})
	}

	var categories []models.Category
	dc.DB.Where("is_active = ?", true).Find(&categories)

	utils.RespondJSON(c, http.StatusOK, "Menu", gin.H{
		"dishes":     listings,
		"categories": categories,
		"page":       page,
		"page_size":  menuPageSize,
		"total":      total,
	})
}

// GetDish returns one dish with its reviews and aggregate rating.
func (dc *DishController) GetDish(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("dish_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid dish id"))
		return
	}

	var dish models.Dish
	if err := dc.DB.Preload("Category").First(&dish, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var reviews []models.Review
	dc.DB.Where("dish_id = ?", dish.ID).Order("created_at desc").Find(&reviews)

	utils.RespondJSON(c, http.StatusOK, "Dish detail", gin.H{
		"dish":           dish,
		"reviews":        reviews,
		"average_rating": dc.Reviews.AverageRating(dish.ID),
		"total_reviews":  dc.Reviews.TotalReviews(dish.ID),
	})
}

// GetAllDishes is the staff listing including unavailable dishes.
func (dc *DishController) GetAllDishes(c *gin.Context) {
	var dishes []models.Dish
	if err := dc.DB.Preload("Category").Order("name asc").Find(&dishes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All dishes", dishes)
}

// ToggleAvailability flips a dish between available and sold out.
func (dc *DishController) ToggleAvailability(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("dish_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid dish id"))
		return
	}

	var dish models.Dish
	if err := dc.DB.First(&dish, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	dish.IsAvailable = !dish.IsAvailable
	if err := dc.DB.Save(&dish).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	state := "available"
	if !dish.IsAvailable {
		state = "sold out"
	}
	utils.InfoLogger.Printf("Dish %q marked as %s", dish.Name, state)

	utils.RespondJSON(c, http.StatusOK, "Dish availability updated", dish)
}
