package database

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/campusbites/canteen-app/models"
	"github.com/campusbites/canteen-app/utils"
)

// Seed populates the database with sample reference data and demo accounts.
// Every entity is created with get-or-create semantics so seeding is safe
// to run repeatedly.
func Seed(db *gorm.DB) error {
	if err := seedCategories(db); err != nil {
		return err
	}
	if err := seedPickupSlots(db); err != nil {
		return err
	}
	if err := seedDishes(db); err != nil {
		return err
	}
	if err := seedUsers(db); err != nil {
		return err
	}
	utils.InfoLogger.Println("Sample data created successfully")
	return nil
}

func seedCategories(db *gorm.DB) error {
	categories := []models.Category{
		{Name: "Main Course", Description: "Full meals and main dishes", IsActive: true},
		{Name: "Snacks", Description: "Light snacks and appetizers", IsActive: true},
		{Name: "Beverages", Description: "Drinks and beverages", IsActive: true},
		{Name: "Desserts", Description: "Sweet treats and desserts", IsActive: true},
	}
	for _, category := range categories {
		if err := db.Where(models.Category{Name: category.Name}).FirstOrCreate(&category).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedPickupSlots(db *gorm.DB) error {
	slots := []models.PickupSlot{
		{StartTime: "08:00", EndTime: "09:00", IsActive: true, MaxOrders: 50},
		{StartTime: "12:00", EndTime: "13:00", IsActive: true, MaxOrders: 50},
		{StartTime: "13:00", EndTime: "14:00", IsActive: true, MaxOrders: 50},
		{StartTime: "17:00", EndTime: "18:00", IsActive: true, MaxOrders: 50},
		{StartTime: "19:00", EndTime: "20:00", IsActive: true, MaxOrders: 50},
	}
	for _, slot := range slots {
		if err := db.Where(models.PickupSlot{StartTime: slot.StartTime, EndTime: slot.EndTime}).
			FirstOrCreate(&slot).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedDishes(db *gorm.DB) error {
	categoryID := func(name string) uint {
		var category models.Category
		db.Where("name = ?", name).First(&category)
		return category.ID
	}
	mainCourse := categoryID("Main Course")
	snacks := categoryID("Snacks")
	beverages := categoryID("Beverages")
	desserts := categoryID("Desserts")

	dishes := []models.Dish{
		{
			Name:            "Chicken Biryani",
			Description:     "Aromatic basmati rice cooked with tender chicken pieces and spices",
			CategoryID:      mainCourse,
			DishType:        models.DishTypeNonVeg,
			Price:           150.00,
			Ingredients:     "Basmati rice, chicken, onions, yogurt, spices",
			PreparationTime: 25,
			IsAvailable:     true,
			IsFeatured:      true,
		},
		{
			Name:            "Paneer Butter Masala",
			Description:     "Creamy tomato-based curry with soft paneer cubes",
			CategoryID:      mainCourse,
			DishType:        models.DishTypeVeg,
			Price:           120.00,
			Ingredients:     "Paneer, tomatoes, cream, butter, spices",
			PreparationTime: 20,
			IsAvailable:     true,
			IsFeatured:      true,
		},
		{
			Name:            "Fish Curry Rice",
			Description:     "Traditional fish curry served with steamed rice",
			CategoryID:      mainCourse,
			DishType:        models.DishTypeNonVeg,
			Price:           140.00,
			Ingredients:     "Fish, rice, coconut, curry leaves, spices",
			PreparationTime: 30,
			IsAvailable:     true,
		},
		{
			Name:            "Samosa",
			Description:     "Crispy fried pastry with spiced potato filling",
			CategoryID:      snacks,
			DishType:        models.DishTypeVeg,
			Price:           15.00,
			Ingredients:     "Flour, potatoes, peas, spices",
			PreparationTime: 10,
			IsAvailable:     true,
		},
		{
			Name:            "Masala Chai",
			Description:     "Spiced Indian tea with milk",
			CategoryID:      beverages,
			DishType:        models.DishTypeBeverage,
			Price:           10.00,
			Ingredients:     "Tea, milk, sugar, cardamom, ginger",
			PreparationTime: 5,
			IsAvailable:     true,
		},
		{
			Name:            "Fresh Lime Soda",
			Description:     "Refreshing lime drink with soda",
			CategoryID:      beverages,
			DishType:        models.DishTypeBeverage,
			Price:           20.00,
			Ingredients:     "Lime, soda, sugar, salt",
			PreparationTime: 3,
			IsAvailable:     true,
		},
		{
			Name:            "Gulab Jamun",
			Description:     "Soft milk solids dumplings in sugar syrup",
			CategoryID:      desserts,
			DishType:        models.DishTypeVeg,
			Price:           40.00,
			Ingredients:     "Milk powder, flour, sugar, cardamom",
			PreparationTime: 20,
			IsAvailable:     true,
		},
		{
			Name:            "Ice Cream",
			Description:     "Vanilla ice cream with chocolate sauce",
			CategoryID:      desserts,
			DishType:        models.DishTypeVeg,
			Price:           30.00,
			Ingredients:     "Milk, cream, vanilla, chocolate",
			PreparationTime: 2,
			IsAvailable:     true,
		},
	}
	for _, dish := range dishes {
		if err := db.Where(models.Dish{Name: dish.Name}).FirstOrCreate(&dish).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedUsers(db *gorm.DB) error {
	studentID := "ST001"
	accounts := []struct {
		name     string
		email    string
		password string
		profile  models.UserProfile
	}{
		{"Admin User", "admin@canteen.com", "admin123", models.UserProfile{Role: models.RoleAdmin, Phone: "9876543210"}},
		{"Staff Member", "staff@canteen.com", "staff123", models.UserProfile{Role: models.RoleStaff, Phone: "9876543211"}},
		{"John Doe", "student@college.edu", "student123", models.UserProfile{Role: models.RoleStudent, Phone: "9876543212", StudentID: &studentID}},
	}

	for _, account := range accounts {
		var existing models.User
		if err := db.Where("email = ?", account.email).First(&existing).Error; err == nil {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(account.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := models.User{Name: account.name, Email: account.email, Password: string(hashed)}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			profile := account.profile
			profile.UserID = user.ID
			return tx.Create(&profile).Error
		})
		if err != nil {
			return err
		}
		utils.InfoLogger.Printf("Created %s account: %s", account.profile.Role, account.email)
	}
	return nil
}
