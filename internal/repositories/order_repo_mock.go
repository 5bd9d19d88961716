package repositories

import (
	"sort"
	"sync"
	"time"

	"smallbazaar/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders map[uint]models.Order
	nextID uint
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[uint]models.Order),
		nextID: 1,
	}
}

// GetAll returns all orders ordered by id.
func (r *MockOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orderList = append(orderList, order)
	}
	sort.Slice(orderList, func(i, j int) bool { return orderList[i].ID < orderList[j].ID })
	return orderList, nil
}

// Create adds a new order, assigning the next numeric id.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == 0 {
		order.ID = r.nextID
		r.nextID++
	} else if order.ID >= r.nextID {
		r.nextID = order.ID + 1
	}
	if order.Status == "" {
		order.Status = models.OrderInProcess
	}
	if order.OrderedAt.IsZero() {
		order.OrderedAt = time.Now()
	}
	r.orders[order.ID] = *order
	return nil
}

// ToggleStatus flips the status of the order with the given id. Unknown
// ids affect zero rows, matching the SQL implementation.
func (r *MockOrderRepository) ToggleStatus(id uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return 0, nil
	}
	order.Status = order.Status.Toggle()
	r.orders[id] = order
	return 1, nil
}
