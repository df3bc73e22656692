package services

import (
	"database/sql"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/campusbites/canteen-app/models"
)

// ReviewService maintains the one-review-per-(dish,user) ledger and the
// derived aggregate rating.
type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// Upsert creates the review for (dishID, userID) or overwrites the rating
// and comment of the existing one. The created timestamp is preserved on
// update.
func (s *ReviewService) Upsert(dishID, userID uint, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, newValidationError("rating must be between 1 and 5")
	}

	var dish models.Dish
	if err := s.DB.First(&dish, dishID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	now := time.Now()
	var review models.Review
	err := s.DB.Where("dish_id = ? AND user_id = ?", dishID, userID).First(&review).Error
	switch {
	case err == nil:
		review.Rating = rating
		review.Comment = comment
		review.UpdatedAt = now
		if err := s.DB.Save(&review).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		review = models.Review{
			DishID:    dishID,
			UserID:    userID,
			Rating:    rating,
			Comment:   comment,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.DB.Create(&review).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return &review, nil
}

// AverageRating returns the mean rating of a dish rounded to one decimal
// place, or 0 when the dish has no reviews.
func (s *ReviewService) AverageRating(dishID uint) float64 {
	var avg sql.NullFloat64
	row := s.DB.Model(&models.Review{}).
		Where("dish_id = ?", dishID).
		Select("AVG(rating)").
		Row()
	if err := row.Scan(&avg); err != nil || !avg.Valid {
		return 0
	}
	return math.Round(avg.Float64*10) / 10
}

// TotalReviews returns the review count for a dish.
func (s *ReviewService) TotalReviews(dishID uint) int64 {
	var count int64
	s.DB.Model(&models.Review{}).Where("dish_id = ?", dishID).Count(&count)
	return count
}

// ReviewFor returns the review userID left on dishID, or nil when there is
// none.
func (s *ReviewService) ReviewFor(dishID, userID uint) *models.Review {
	var review models.Review
	if err := s.DB.Where("dish_id = ? AND user_id = ?", dishID, userID).First(&review).Error; err != nil {
		return nil
	}
	return &review
}
