package services_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"smallbazaar/internal/models"
	"smallbazaar/internal/services"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) ToggleStatus(id uint) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func placeRequest() models.PlaceOrderRequest {
	return models.PlaceOrderRequest{
		Items:           json.RawMessage(`[{"product_name":"Pen","unit_price":10,"qty":3,"amount":30}]`),
		CustomerName:    "Bob",
		CustomerAddress: "12 High St",
		CustomerContact: "+91 9876543210",
		ModeOfPayment:   models.PaymentCod,
		Status:          models.OrderInProcess,
		TotalAmount:     30,
	}
}

func TestOrderService_GetAllOrders(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	expectedOrders := []models.Order{
		{ID: 1, CustomerName: "Alice", Status: models.OrderInProcess},
		{ID: 2, CustomerName: "Bob", Status: models.OrderDelivered},
	}

	mockRepo.On("GetAll").Return(expectedOrders, nil).Once()

	orders, err := service.GetAllOrders()
	assert.NoError(t, err)
	assert.Equal(t, expectedOrders, orders)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_PlaceOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	mockRepo.On("Create", mock.MatchedBy(func(o *models.Order) bool {
		return o.CustomerName == "Bob" &&
			o.ModeOfPayment == models.PaymentCod &&
			o.Status == models.OrderInProcess &&
			o.TotalAmount == 30
	})).Return(nil).Once()

	order, err := service.PlaceOrder(placeRequest())
	assert.NoError(t, err)

	items, err := order.DecodeItems()
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 30.0, items[0].Amount)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_PlaceOrder_TrustsSubmittedTotal(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	// The stored total is exactly what the caller sent, even when it does
	// not match the item sum.
	req := placeRequest()
	req.TotalAmount = 999

	mockRepo.On("Create", mock.MatchedBy(func(o *models.Order) bool {
		return o.TotalAmount == 999
	})).Return(nil).Once()

	order, err := service.PlaceOrder(req)
	assert.NoError(t, err)
	assert.Equal(t, 999.0, order.TotalAmount)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_PlaceOrder_StatusDefaultsToInProcess(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	req := placeRequest()
	req.Status = ""

	mockRepo.On("Create", mock.MatchedBy(func(o *models.Order) bool {
		return o.Status == models.OrderInProcess
	})).Return(nil).Once()

	_, err := service.PlaceOrder(req)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_PlaceOrder_Validation(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	// Missing customer_name.
	req := placeRequest()
	req.CustomerName = ""
	_, err := service.PlaceOrder(req)
	assert.ErrorIs(t, err, services.ErrValidation)

	// Missing items.
	req = placeRequest()
	req.Items = nil
	_, err = service.PlaceOrder(req)
	assert.ErrorIs(t, err, services.ErrValidation)

	// An empty item array is allowed; only presence is required.
	req = placeRequest()
	req.Items = json.RawMessage(`[]`)
	mockRepo.On("Create", mock.Anything).Return(nil).Once()
	_, err = service.PlaceOrder(req)
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestOrderService_PlaceOrder_RepositoryFailure(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	mockRepo.On("Create", mock.Anything).Return(fmt.Errorf("database error")).Once()

	_, err := service.PlaceOrder(placeRequest())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrValidation)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestOrderService_ToggleStatus(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	mockRepo.On("ToggleStatus", uint(1)).Return(int64(1), nil).Once()
	assert.NoError(t, service.ToggleStatus(1))

	// Unknown id: silent no-op.
	mockRepo.On("ToggleStatus", uint(99)).Return(int64(0), nil).Once()
	assert.NoError(t, service.ToggleStatus(99))

	mockRepo.On("ToggleStatus", uint(1)).Return(int64(0), fmt.Errorf("database error")).Once()
	assert.Error(t, service.ToggleStatus(1))

	mockRepo.AssertExpectations(t)
}
