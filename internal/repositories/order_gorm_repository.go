package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"smallbazaar/internal/models"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all orders. Items stays in its stored JSON string form.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// Create inserts a new order row.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.Status == "" {
		order.Status = models.OrderInProcess
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// ToggleStatus flips InProcess<->Delivered in a single bound-parameter
// UPDATE mirroring OrderStatus.Toggle. An unknown id affects zero rows and
// is not an error.
func (r *GORMOrderRepository) ToggleStatus(id uint) (int64, error) {
	res := r.db.Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", gorm.Expr(
			"CASE WHEN status = ? THEN ? ELSE ? END",
			models.OrderInProcess, models.OrderDelivered, models.OrderInProcess,
		))
	if res.Error != nil {
		return 0, fmt.Errorf("failed to toggle status for order %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}
