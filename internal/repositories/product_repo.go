package repositories

import (
	"smallbazaar/internal/models"
)

// ProductRepository defines the interface for product data access.
// ToggleStatus and UpdateFields return the number of rows affected so
// callers can observe (and log) silent no-ops on unknown ids.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	Create(product *models.Product) error
	ToggleStatus(id uint) (int64, error)
	UpdateFields(id uint, price *float64, stock *int) (int64, error)
}
