package repositories

import (
	"storefront/internal/models"
)

// ProductRepository defines the interface for catalog data access.
// DecrementStock is the conditional stock mutation used by the checkout
// commit; it must never drive stock_qty below zero.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetByName(name string) (*models.Product, error)
	GetOnSale() ([]models.Product, error)
	GetByCategory(categoryID string) ([]models.Product, error)
	Create(product *models.Product) error
	UpdateFields(id string, assignments map[string]interface{}) error
	Delete(id string) error
	DecrementStock(productID string, amount int) error

	GetCategoryByName(name string) (*models.Category, error)
	CreateCategory(category *models.Category) error
}
