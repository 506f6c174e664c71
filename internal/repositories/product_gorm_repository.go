package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/apperrors"
	"storefront/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products from the database.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "failed to get all products")
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "product with ID %s not found", id)
		}
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "failed to get product by ID %s", id)
	}
	return &product, nil
}

// GetByName retrieves a single product by its unique name.
func (r *GORMProductRepository) GetByName(name string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "product not found")
		}
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "failed to get product by name %s", name)
	}
	return &product, nil
}

// GetOnSale retrieves all products currently flagged as on sale.
func (r *GORMProductRepository) GetOnSale() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("on_sale = ?", true).Find(&products).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "failed to get on-sale products")
	}
	return products, nil
}

// GetByCategory retrieves all products belonging to the given category.
func (r *GORMProductRepository) GetByCategory(categoryID string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("category_id = ?", categoryID).Find(&products).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "failed to get products for category %s", categoryID)
	}
	return products, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return apperrors.Wrap(apperrors.KindInternal, err, "failed to create product")
	}
	return nil
}

// UpdateFields applies the given column assignments to an existing product.
func (r *GORMProductRepository) UpdateFields(id string, assignments map[string]interface{}) error {
	res := r.db.Model(&models.Product{}).Where("id = ?", id).Updates(assignments)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.KindInternal, res.Error, "failed to update product %s", id)
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.KindNotFound, "product with ID %s not found for update", id)
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.KindInternal, res.Error, "failed to delete product %s", id)
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.KindNotFound, "product with ID %s not found for deletion", id)
	}
	return nil
}

// DecrementStock subtracts amount from the product's stock, guarded so the
// stock can never go negative. Zero rows affected means the remaining stock
// is insufficient (or the product is gone).
func (r *GORMProductRepository) DecrementStock(productID string, amount int) error {
	return decrementStock(r.db, productID, amount)
}

// decrementStock is the conditional update shared with the checkout commit,
// which runs it inside its transaction.
func decrementStock(db *gorm.DB, productID string, amount int) error {
	res := db.Model(&models.Product{}).
		Where("id = ? AND stock_qty >= ?", productID, amount).
		UpdateColumn("stock_qty", gorm.Expr("stock_qty - ?", amount))
	if res.Error != nil {
		return apperrors.Wrap(apperrors.KindInternal, res.Error, "failed to decrement stock for product %s", productID)
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.KindInsufficientStock, "insufficient stock for product %s", productID)
	}
	return nil
}

// GetCategoryByName retrieves a category by its unique name.
func (r *GORMProductRepository) GetCategoryByName(name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "category %s not found", name)
		}
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "failed to get category by name %s", name)
	}
	return &category, nil
}

// CreateCategory creates a new category in the database.
func (r *GORMProductRepository) CreateCategory(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.Create(category).Error; err != nil {
		return apperrors.Wrap(apperrors.KindInternal, err, "failed to create category")
	}
	return nil
}
