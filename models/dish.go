package models

import "time"

const (
	DishTypeVeg      = "veg"
	DishTypeNonVeg   = "non_veg"
	DishTypeBeverage = "beverage"
)

type Dish struct {
	ID              uint     `gorm:"primaryKey" json:"id"`
	Name            string   `gorm:"type:varchar(100);not null" json:"name"`
	Description     string   `gorm:"type:text" json:"description"`
	CategoryID      uint     `gorm:"not null" json:"category_id"`
	Category        Category `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	DishType        string   `gorm:"type:varchar(10);not null;default:'veg'" json:"dish_type"`
	Price           float64  `gorm:"type:decimal(8,2);not null" json:"price"`
	IsAvailable     bool     `gorm:"not null;default:true" json:"is_available"`
	IsFeatured      bool     `gorm:"not null;default:false" json:"is_featured"`
	Ingredients     string   `gorm:"type:text" json:"ingredients"`
	PreparationTime int      `gorm:"not null;default:15" json:"preparation_time"` // minutes
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

func (d *Dish) IsVegetarian() bool {
	return d.DishType == DishTypeVeg
}
