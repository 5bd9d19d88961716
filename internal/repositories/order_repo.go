package repositories

import (
	"smallbazaar/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// never deleted; status is the only mutable field after creation.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	Create(order *models.Order) error
	ToggleStatus(id uint) (int64, error)
}
