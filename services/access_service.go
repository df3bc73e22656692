package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/campusbites/canteen-app/models"
)

// AccessService resolves a requester's role from their profile. A missing
// profile is treated as denied, never as a default role.
type AccessService struct {
	DB *gorm.DB
}

func NewAccessService(db *gorm.DB) *AccessService {
	return &AccessService{DB: db}
}

// ProfileFor returns the profile of the given account.
func (s *AccessService) ProfileFor(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// IsStaff reports whether the account is staff-capable (role staff or
// admin).
func (s *AccessService) IsStaff(userID uint) bool {
	profile, err := s.ProfileFor(userID)
	if err != nil {
		return false
	}
	return profile.IsStaffMember()
}

// RequireStaff returns ErrDenied unless the account is staff-capable.
func (s *AccessService) RequireStaff(userID uint) error {
	if !s.IsStaff(userID) {
		return ErrDenied
	}
	return nil
}
