package model

import (
	"time"
)

// User is a customer account. Email and CPF are unique across all
// users. Password holds the bcrypt hash, never the plain text.
type User struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"not null;index"`
	Email     string  `gorm:"uniqueIndex;not null"`
	Phone     *string
	CPF       string `gorm:"column:cpf;uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Orders    []Order    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Addresses []Address  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Roles     []UserRole `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string { return "users" }

// SetPassword replaces the stored hash with a fresh bcrypt hash of plain.
func (u *User) SetPassword(plain string) error {
	hash, err := hashPassword(plain)
	if err != nil {
		return err
	}
	u.Password = hash
	return nil
}

// CheckPassword reports whether plain matches the stored hash.
// A malformed or empty stored hash counts as a mismatch.
func (u *User) CheckPassword(plain string) bool {
	return checkPassword(u.Password, plain)
}
