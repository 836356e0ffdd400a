package model

import (
	"time"
)

// OrderStatusPending is the status every new order starts in. Status is
// free-form beyond that; there is no closed enum.
const OrderStatusPending = "Pending"

// Order links a user to a supplier for a quantity of some product type.
type Order struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	SupplierID  uint   `gorm:"not null;index"`
	ProductType string `gorm:"not null"`
	Quantity    int    `gorm:"not null"`
	Status      string `gorm:"not null;default:'Pending'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Order) TableName() string { return "orders" }
