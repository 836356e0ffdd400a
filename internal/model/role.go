package model

// DefaultRoleName is the role every new user is linked to. The row is
// created lazily on first use.
const DefaultRoleName = "user"

type Role struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

func (Role) TableName() string { return "roles" }

// UserRole links one user to one role.
type UserRole struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"not null;index"`
	RoleID uint `gorm:"not null;index"`
}

func (UserRole) TableName() string { return "user_roles" }
