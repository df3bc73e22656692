package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/campusbites/canteen-app/middlewares"
	"github.com/campusbites/canteen-app/models"
	"github.com/campusbites/canteen-app/services"
	"github.com/campusbites/canteen-app/utils"
)

type AccountController struct {
	DB     *gorm.DB
	Access *services.AccessService
}

func NewAccountController(db *gorm.DB) *AccountController {
	return &AccountController{DB: db, Access: services.NewAccessService(db)}
}

// Signup registers a new account. Self-service signup always gets the
// student role; staff and admin roles are assigned out of band (seeding or
// direct administration). The profile row is created in the same
// transaction as the account so every identity has exactly one role.
func (ac *AccountController) Signup(c *gin.Context) {
	type request struct {
		Name      string `json:"name" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required,min=8"`
		StudentID string `json:"student_id"`
		Phone     string `json:"phone"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.UserProfile{
			UserID: user.ID,
			Phone:  req.Phone,
			Role:   models.RoleStudent,
		}
		if req.StudentID != "" {
			profile.StudentID = &req.StudentID
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New account registered: %s", user.Email)

	utils.RespondJSON(c, http.StatusCreated, "Account registered", gin.H{
		"user_id": user.ID,
	})
}

// Login checks the credentials and returns a JWT.
func (ac *AccountController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	role := models.RoleStudent
	if profile, err := ac.Access.ProfileFor(user.ID); err == nil {
		role = profile.Role
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"role":  role,
	})
}

// GetProfile returns the account plus its profile.
func (ac *AccountController) GetProfile(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var user models.User
	if err := ac.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	profile, err := ac.Access.ProfileFor(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile data retrieved successfully", gin.H{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"role":       profile.Role,
		"student_id": profile.StudentID,
		"phone":      profile.Phone,
	})
}

// UpdateProfile lets the account change its contact fields. The role is
// never writable here.
func (ac *AccountController) UpdateProfile(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var input struct {
		StudentID *string `json:"student_id"`
		Phone     *string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	profile, err := ac.Access.ProfileFor(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if input.StudentID != nil {
		profile.StudentID = input.StudentID
	}
	if input.Phone != nil {
		profile.Phone = *input.Phone
	}
	if err := ac.DB.Save(profile).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile updated", profile)
}
