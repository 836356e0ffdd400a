package model

// Address belongs to a user, a supplier, both, or neither. Ownership is
// optional on both sides and nothing enforces exclusivity.
type Address struct {
	ID         uint   `gorm:"primaryKey"`
	CEP        string `gorm:"column:cep;not null"`
	Street     string `gorm:"not null"`
	Complement *string
	State      string `gorm:"not null"`
	Number     string `gorm:"not null"`
	UserID     *uint  `gorm:"index"`
	SupplierID *uint  `gorm:"index"`
}

func (Address) TableName() string { return "addresses" }
