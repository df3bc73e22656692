package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campusbites/canteen-app/services"
	"github.com/campusbites/canteen-app/utils"
)

// StaffOnly short-circuits requests from accounts whose profile role is not
// staff or admin. Accounts without a profile are denied.
func StaffOnly(db *gorm.DB) gin.HandlerFunc {
	access := services.NewAccessService(db)
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
			c.Abort()
			return
		}

		if err := access.RequireStaff(userID); err != nil {
			utils.RespondError(c, http.StatusForbidden, errors.New("staff access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}
