package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"smallbazaar/internal/models"
	"smallbazaar/internal/services"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) ToggleStatus(id uint) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) UpdateFields(id uint, price *float64, stock *int) (int64, error) {
	args := m.Called(id, price, stock)
	return args.Get(0).(int64), args.Error(1)
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func uintPtr(v uint) *uint        { return &v }

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProducts := []models.Product{
		{ID: 1, Name: "Pen", Price: 10.0, Stock: 100, Status: models.ProductActive},
		{ID: 2, Name: "Notepad", Price: 25.5, Stock: 40, Status: models.ProductInactive},
	}

	mockRepo.On("GetAll").Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_AddProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	req := models.AddProductRequest{
		Name:        "Pen",
		Description: "Blue ink",
		Price:       floatPtr(10),
		Stock:       intPtr(100),
	}

	// Status defaults to Active when omitted.
	mockRepo.On("Create", mock.MatchedBy(func(p *models.Product) bool {
		return p.Name == "Pen" && p.Price == 10 && p.Stock == 100 && p.Status == models.ProductActive
	})).Return(nil).Once()

	product, err := service.AddProduct(req)
	assert.NoError(t, err)
	assert.Equal(t, models.ProductActive, product.Status)
	mockRepo.AssertExpectations(t)

	// An explicit status is passed through.
	req.Status = models.ProductInactive
	mockRepo.On("Create", mock.MatchedBy(func(p *models.Product) bool {
		return p.Status == models.ProductInactive
	})).Return(nil).Once()

	product, err = service.AddProduct(req)
	assert.NoError(t, err)
	assert.Equal(t, models.ProductInactive, product.Status)
	mockRepo.AssertExpectations(t)

	// Repository failure surfaces as an error.
	mockRepo.On("Create", mock.Anything).Return(fmt.Errorf("database error")).Once()
	_, err = service.AddProduct(req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_ToggleStatus(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	// Existing row toggled.
	mockRepo.On("ToggleStatus", uint(1)).Return(int64(1), nil).Once()
	assert.NoError(t, service.ToggleStatus(1))
	mockRepo.AssertExpectations(t)

	// Unknown id: zero rows affected is a silent no-op, not an error.
	mockRepo.On("ToggleStatus", uint(99)).Return(int64(0), nil).Once()
	assert.NoError(t, service.ToggleStatus(99))
	mockRepo.AssertExpectations(t)

	// Database failure surfaces.
	mockRepo.On("ToggleStatus", uint(1)).Return(int64(0), fmt.Errorf("database error")).Once()
	assert.Error(t, service.ToggleStatus(1))
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	req := models.UpdateProductRequest{
		ID:    uintPtr(1),
		Price: floatPtr(12),
	}

	// Only the provided fields reach the repository.
	mockRepo.On("UpdateFields", uint(1), req.Price, (*int)(nil)).Return(int64(1), nil).Once()
	assert.NoError(t, service.UpdateProduct(req))
	mockRepo.AssertExpectations(t)

	// Unknown id: silent no-op.
	req.ID = uintPtr(99)
	mockRepo.On("UpdateFields", uint(99), req.Price, (*int)(nil)).Return(int64(0), nil).Once()
	assert.NoError(t, service.UpdateProduct(req))
	mockRepo.AssertExpectations(t)
}
