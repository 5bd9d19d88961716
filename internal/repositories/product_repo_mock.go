package repositories

import (
	"fmt"
	"sort"
	"sync"

	"smallbazaar/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[uint]models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// GetAll returns all products ordered by id.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	sort.Slice(productList, func(i, j int) bool { return productList[i].ID < productList[j].ID })
	return productList, nil
}

// Create adds a new product, assigning the next numeric id.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		product.ID = r.nextID
		r.nextID++
	} else if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	if product.Status == "" {
		product.Status = models.ProductActive
	}
	r.products[product.ID] = *product
	return nil
}

// ToggleStatus flips the status of the product with the given id. Unknown
// ids affect zero rows, matching the SQL implementation.
func (r *MockProductRepository) ToggleStatus(id uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return 0, nil
	}
	product.Status = product.Status.Toggle()
	r.products[id] = product
	return 1, nil
}

// UpdateFields overwrites the provided fields of the product with the
// given id.
func (r *MockProductRepository) UpdateFields(id uint, price *float64, stock *int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return 0, nil
	}
	if price != nil {
		if *price < 0 {
			return 0, fmt.Errorf("price must be non-negative")
		}
		product.Price = *price
	}
	if stock != nil {
		if *stock < 0 {
			return 0, fmt.Errorf("stock must be non-negative")
		}
		product.Stock = *stock
	}
	r.products[id] = product
	return 1, nil
}
