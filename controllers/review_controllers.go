package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campusbites/canteen-app/middlewares"
	"github.com/campusbites/canteen-app/services"
	"github.com/campusbites/canteen-app/utils"
)

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{Reviews: services.NewReviewService(db)}
}

// SubmitReview creates or overwrites the requester's review for a dish.
// There is no separate update endpoint; a resubmission replaces the rating
// and comment of the existing review.
func (rc *ReviewController) SubmitReview(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	dishID, err := strconv.Atoi(c.Param("dish_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid dish id"))
		return
	}

	var input struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	review, err := rc.Reviews.Upsert(uint(dishID), userID, input.Rating, input.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Review submitted", gin.H{
		"review":         review,
		"average_rating": rc.Reviews.AverageRating(uint(dishID)),
		"total_reviews":  rc.Reviews.TotalReviews(uint(dishID)),
	})
}

// GetMyReview returns the requester's review for a dish, if any.
func (rc *ReviewController) GetMyReview(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	dishID, err := strconv.Atoi(c.Param("dish_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid dish id"))
		return
	}

	review := rc.Reviews.ReviewFor(uint(dishID), userID)
	if review == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("no review for this dish"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Your review", review)
}
