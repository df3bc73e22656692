package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campusbites/canteen-app/models"
)

func seedUserWithRole(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()
	user := seedUser(t, db, email)
	profile := models.UserProfile{UserID: user.ID, Role: role}
	require.NoError(t, db.Create(&profile).Error)
	return user
}

func TestIsStaff(t *testing.T) {
	db := openTestDB(t)
	svc := NewAccessService(db)

	student := seedUserWithRole(t, db, "student@college.edu", models.RoleStudent)
	staff := seedUserWithRole(t, db, "staff@canteen.com", models.RoleStaff)
	admin := seedUserWithRole(t, db, "admin@canteen.com", models.RoleAdmin)

	assert.False(t, svc.IsStaff(student.ID))
	assert.True(t, svc.IsStaff(staff.ID))
	assert.True(t, svc.IsStaff(admin.ID))
}

func TestMissingProfileIsDenied(t *testing.T) {
	db := openTestDB(t)
	svc := NewAccessService(db)

	// account without a profile row must be denied, not defaulted
	orphan := seedUser(t, db, "orphan@college.edu")

	assert.False(t, svc.IsStaff(orphan.ID))
	assert.ErrorIs(t, svc.RequireStaff(orphan.ID), ErrDenied)
	assert.ErrorIs(t, svc.RequireStaff(999999), ErrDenied)
}

func TestRequireStaff(t *testing.T) {
	db := openTestDB(t)
	svc := NewAccessService(db)

	student := seedUserWithRole(t, db, "s1@college.edu", models.RoleStudent)
	staff := seedUserWithRole(t, db, "s2@canteen.com", models.RoleStaff)

	assert.ErrorIs(t, svc.RequireStaff(student.ID), ErrDenied)
	assert.NoError(t, svc.RequireStaff(staff.ID))
}
