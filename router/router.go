package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campusbites/canteen-app/controllers"
	"github.com/campusbites/canteen-app/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	accountCtrl := controllers.NewAccountController(db)
	dishCtrl := controllers.NewDishController(db)
	reviewCtrl := controllers.NewReviewController(db)
	slotCtrl := controllers.NewSlotController(db)
	orderCtrl := controllers.NewOrderController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/signup", accountCtrl.Signup)
		public.POST("/login", accountCtrl.Login)
	}

	r.GET("/menu", dishCtrl.GetMenu)
	r.GET("/dishes/:dish_id", dishCtrl.GetDish)
	r.GET("/slots", slotCtrl.GetSlots)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/profile", accountCtrl.GetProfile)
		auth.PATCH("/profile", accountCtrl.UpdateProfile)

		auth.POST("/orders", orderCtrl.CreateOrder)
		auth.GET("/orders", orderCtrl.GetMyOrders)
		auth.POST("/orders/:order_id/cancel", orderCtrl.CancelOrder)

		auth.POST("/dishes/:dish_id/reviews", reviewCtrl.SubmitReview)
		auth.GET("/dishes/:dish_id/reviews/mine", reviewCtrl.GetMyReview)
	}

	// ----------------------------------------------------------------
	//                      STAFF ROUTES
	// ----------------------------------------------------------------
	staff := r.Group("/staff")
	staff.Use(middlewares.AuthMiddleware(), middlewares.StaffOnly(db))
	{
		staff.GET("/orders", orderCtrl.GetAllOrders)
		staff.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)

		staff.GET("/dishes", dishCtrl.GetAllDishes)
		staff.POST("/dishes/:dish_id/toggle", dishCtrl.ToggleAvailability)
	}

	return r
}
