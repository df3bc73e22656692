package models

import "time"

const (
	RoleStudent = "student"
	RoleStaff   = "staff"
	RoleAdmin   = "admin"
)

// UserProfile is created together with the User row at signup, so every
// account always has exactly one role.
type UserProfile struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	UserID    uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	User      User    `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	StudentID *string `gorm:"type:varchar(20)" json:"student_id,omitempty"`
	Phone     string  `gorm:"type:varchar(15)" json:"phone"`
	Role      string  `gorm:"type:varchar(10);not null;default:'student'" json:"role"`
	CreatedAt time.Time
}

// IsStaffMember reports whether the profile grants staff-level access.
func (p *UserProfile) IsStaffMember() bool {
	return p.Role == RoleStaff || p.Role == RoleAdmin
}
