package services

import (
	"github.com/shopspring/decimal"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// ProductService handles business logic related to the product catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetOnSaleProducts retrieves all products flagged as on sale.
func (s *ProductService) GetOnSaleProducts() ([]models.Product, error) {
	return s.repo.GetOnSale()
}

// GetProductsByCategory retrieves all products of one category.
func (s *ProductService) GetProductsByCategory(categoryID string) ([]models.Product, error) {
	return s.repo.GetByCategory(categoryID)
}

// CreateProduct creates a new product under an existing category, referred
// to by name.
func (s *ProductService) CreateProduct(product *models.Product, categoryName string) error {
	if !validPrice(product.Price) {
		return apperrors.New(apperrors.KindValidation, "price must be a positive number with up to two decimal places")
	}
	if product.StockQty < 0 {
		return apperrors.New(apperrors.KindValidation, "stock quantity must be a non-negative integer")
	}
	category, err := s.repo.GetCategoryByName(categoryName)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return apperrors.New(apperrors.KindValidation, "incorrect category")
		}
		return err
	}
	product.CategoryID = category.ID
	return s.repo.Create(product)
}

// UpdateProduct applies a partial update to an existing product.
func (s *ProductService) UpdateProduct(id string, patch models.ProductPatch) (*models.Product, error) {
	if patch.Price != nil && !validPrice(*patch.Price) {
		return nil, apperrors.New(apperrors.KindValidation, "price must be a positive number with up to two decimal places")
	}
	assignments := patch.Assignments()
	if len(assignments) == 0 {
		return nil, apperrors.New(apperrors.KindValidation, "no fields provided for update")
	}
	if err := s.repo.UpdateFields(id, assignments); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}

// validPrice reports whether p is positive with at most two decimal places.
func validPrice(p decimal.Decimal) bool {
	return p.IsPositive() && p.Exponent() >= -2
}
