package models

import "gorm.io/gorm"

// Roles a user can hold. Sellers manage the catalog, customers shop.
const (
	RoleCustomer = "customer"
	RoleSeller   = "seller"
)

// User represents a registered account of the store.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // Never serialized
	Role       string `json:"role" gorm:"type:varchar(16)" validate:"required,oneof=customer seller"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
