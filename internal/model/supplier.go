package model

import (
	"time"
)

// Supplier is a goods provider account. Email and CNPJ are unique
// across all suppliers. Password holds the bcrypt hash, never the
// plain text.
type Supplier struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"not null;index"`
	Email string `gorm:"uniqueIndex;not null"`
	CNPJ  string `gorm:"column:cnpj;uniqueIndex;not null"`
	Phone *string
	Password  string `gorm:"not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Orders    []Order   `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE"`
	Addresses []Address `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE"`
}

func (Supplier) TableName() string { return "suppliers" }

// SetPassword replaces the stored hash with a fresh bcrypt hash of plain.
func (s *Supplier) SetPassword(plain string) error {
	hash, err := hashPassword(plain)
	if err != nil {
		return err
	}
	s.Password = hash
	return nil
}

// CheckPassword reports whether plain matches the stored hash.
// A malformed or empty stored hash counts as a mismatch.
func (s *Supplier) CheckPassword(plain string) bool {
	return checkPassword(s.Password, plain)
}
