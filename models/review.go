package models

import "time"

// Review holds at most one rating per (dish, user) pair; a resubmission
// updates the existing row in place.
type Review struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	DishID    uint   `gorm:"not null;uniqueIndex:idx_review_dish_user" json:"dish_id"`
	Dish      Dish   `gorm:"foreignKey:DishID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_review_dish_user" json:"user_id"`
	User      User   `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Rating    int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
