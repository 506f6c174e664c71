package services_test

import (
	"testing"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCartRepository is a mock implementation of repositories.CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetByUser(userID string) (*models.Cart, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartRepository) Create(cart *models.Cart) error {
	args := m.Called(cart)
	return args.Error(0)
}

func (m *MockCartRepository) GetItem(cartID, productID string) (*models.CartItem, error) {
	args := m.Called(cartID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartRepository) CreateItem(item *models.CartItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockCartRepository) UpdateItemQuantity(cartID, productID string, quantity int) error {
	args := m.Called(cartID, productID, quantity)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteItem(cartID, productID string) error {
	args := m.Called(cartID, productID)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteByUser(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockCartRepository) GetLines(userID string) ([]models.CartLine, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartLine), args.Error(1)
}

func (m *MockCartRepository) GetCheckoutLines(userID string) ([]models.CheckoutLine, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CheckoutLine), args.Error(1)
}

func notFound(format string, args ...interface{}) *apperrors.Error {
	return apperrors.New(apperrors.KindNotFound, format, args...)
}

func TestCartService_AddItem_CreatesCartLazily(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewCartService(mockCarts, mockProducts)

	product := &models.Product{ID: "prod-1", Name: "Laptop", Price: decimal.NewFromFloat(1200.00), StockQty: 10}
	mockProducts.On("GetByName", "Laptop").Return(product, nil).Once()
	mockCarts.On("GetByUser", "user-1").Return(nil, notFound("the cart is empty or does not exist")).Once()
	mockCarts.On("Create", mock.AnythingOfType("*models.Cart")).Return(nil).Once()
	mockCarts.On("GetItem", mock.AnythingOfType("string"), "prod-1").Return(nil, notFound("this product is not present in the cart")).Once()
	mockCarts.On("CreateItem", mock.AnythingOfType("*models.CartItem")).Return(nil).Once()

	created, err := service.AddItem("user-1", "Laptop", 2)

	assert.NoError(t, err)
	assert.True(t, created)
	mockCarts.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewCartService(mockCarts, mockProducts)

	mockProducts.On("GetByName", "Ghost").Return(nil, notFound("product not found")).Once()

	_, err := service.AddItem("user-1", "Ghost", 1)

	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	mockCarts.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCartService_AddItem_ExceedsStockOnEmptyCart(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewCartService(mockCarts, mockProducts)

	product := &models.Product{ID: "prod-1", Name: "Mouse", Price: decimal.NewFromFloat(25.00), StockQty: 3}
	cart := &models.Cart{ID: "cart-1", UserID: "user-1"}
	mockProducts.On("GetByName", "Mouse").Return(product, nil).Once()
	mockCarts.On("GetByUser", "user-1").Return(cart, nil).Once()
	mockCarts.On("GetItem", "cart-1", "prod-1").Return(nil, notFound("this product is not present in the cart")).Once()

	_, err := service.AddItem("user-1", "Mouse", 5)

	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindCapacityExceeded))
	assert.Contains(t, err.Error(), "Available stock: 3")
	assert.Contains(t, err.Error(), "quantity already in the cart: 0")
	mockCarts.AssertNotCalled(t, "CreateItem", mock.Anything)
}

func TestCartService_AddItem_SumsQuantities(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewCartService(mockCarts, mockProducts)

	product := &models.Product{ID: "prod-1", Name: "Mouse", Price: decimal.NewFromFloat(25.00), StockQty: 10}
	cart := &models.Cart{ID: "cart-1", UserID: "user-1"}
	held := &models.CartItem{CartID: "cart-1", ProductID: "prod-1", Quantity: 3}
	mockProducts.On("GetByName", "Mouse").Return(product, nil).Once()
	mockCarts.On("GetByUser", "user-1").Return(cart, nil).Once()
	mockCarts.On("GetItem", "cart-1", "prod-1").Return(held, nil).Once()
	mockCarts.On("UpdateItemQuantity", "cart-1", "prod-1", 7).Return(nil).Once()

	created, err := service.AddItem("user-1", "Mouse", 4)

	assert.NoError(t, err)
	assert.False(t, created)
	mockCarts.AssertExpectations(t)
}

func TestCartService_AddItem_CombinedQuantityExceedsStock(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewCartService(mockCarts, mockProducts)

	product := &models.Product{ID: "prod-1", Name: "Mouse", Price: decimal.NewFromFloat(25.00), StockQty: 5}
	cart := &models.Cart{ID: "cart-1", UserID: "user-1"}
	held := &models.CartItem{CartID: "cart-1", ProductID: "prod-1", Quantity: 4}
	mockProducts.On("GetByName", "Mouse").Return(product, nil).Once()
	mockCarts.On("GetByUser", "user-1").Return(cart, nil).Once()
	mockCarts.On("GetItem", "cart-1", "prod-1").Return(held, nil).Once()

	_, err := service.AddItem("user-1", "Mouse", 2)

	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindCapacityExceeded))
	assert.Contains(t, err.Error(), "Available stock: 5")
	assert.Contains(t, err.Error(), "quantity already in the cart: 4")
	mockCarts.AssertNotCalled(t, "UpdateItemQuantity", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewCartService(mockCarts, mockProducts)

	_, err := service.AddItem("user-1", "Mouse", 0)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = service.AddItem("user-1", "Mouse", -2)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	mockProducts.AssertNotCalled(t, "GetByName", mock.Anything)
}

func TestCartService_SetItemQuantity_ZeroDeletesIdempotently(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewCartService(mockCarts, mockProducts)

	cart := &models.Cart{ID: "cart-1", UserID: "user-1"}
	mockCarts.On("GetByUser", "user-1").Return(cart, nil).Twice()
	mockCarts.On("DeleteItem", "cart-1", "prod-1").Return(nil).Once()
	// Second delete hits an absent line; zero means "absent", so it succeeds.
	mockCarts.On("DeleteItem", "cart-1", "prod-1").Return(notFound("the product does not exist in the cart")).Once()

	assert.NoError(t, service.SetItemQuantity("user-1", "prod-1", 0))
	assert.NoError(t, service.SetItemQuantity("user-1", "prod-1", 0))
	mockCarts.AssertExpectations(t)
}

func TestCartService_SetItemQuantity_NoCart(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewCartService(mockCarts, mockProducts)

	mockCarts.On("GetByUser", "user-1").Return(nil, notFound("the cart is empty or does not exist")).Once()

	err := service.SetItemQuantity("user-1", "prod-1", 0)
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestCartService_SetItemQuantity_LineMissing(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewCartService(mockCarts, mockProducts)

	cart := &models.Cart{ID: "cart-1", UserID: "user-1"}
	mockCarts.On("GetByUser", "user-1").Return(cart, nil).Once()
	mockCarts.On("UpdateItemQuantity", "cart-1", "prod-9", 3).Return(notFound("this product is not present in the cart")).Once()

	err := service.SetItemQuantity("user-1", "prod-9", 3)
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestCartService_SetItemQuantity_RejectsNegative(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewCartService(mockCarts, mockProducts)

	err := service.SetItemQuantity("user-1", "prod-1", -1)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	mockCarts.AssertNotCalled(t, "GetByUser", mock.Anything)
}

func TestCartService_RemoveItem(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewCartService(mockCarts, mockProducts)

	cart := &models.Cart{ID: "cart-1", UserID: "user-1"}
	mockCarts.On("GetByUser", "user-1").Return(cart, nil).Twice()
	mockCarts.On("DeleteItem", "cart-1", "prod-1").Return(nil).Once()
	mockCarts.On("DeleteItem", "cart-1", "prod-9").Return(notFound("the product does not exist in the cart")).Once()

	assert.NoError(t, service.RemoveItem("user-1", "prod-1"))

	err := service.RemoveItem("user-1", "prod-9")
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	mockCarts.AssertExpectations(t)
}

func TestCartService_ClearCart(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewCartService(mockCarts, mockProducts)

	mockCarts.On("DeleteByUser", "user-1").Return(nil).Once()

	assert.NoError(t, service.ClearCart("user-1"))
	mockCarts.AssertExpectations(t)
}

func TestCartService_GetCart_EmptyIsNotAnError(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewCartService(mockCarts, mockProducts)

	mockCarts.On("GetLines", "user-1").Return([]models.CartLine{}, nil).Once()

	lines, err := service.GetCart("user-1")
	assert.NoError(t, err)
	assert.Empty(t, lines)
}
