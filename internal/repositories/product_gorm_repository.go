package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"smallbazaar/internal/models"
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

// GetAll retrieves all products, every status included.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// Create inserts a new product row.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.Status == "" {
		product.Status = models.ProductActive
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// ToggleStatus flips Active<->Inactive in a single bound-parameter UPDATE.
// The CASE expression mirrors ProductStatus.Toggle: any value other than
// Active becomes Active. An unknown id affects zero rows and is not an
// error.
func (r *GORMProductRepository) ToggleStatus(id uint) (int64, error) {
	res := r.db.Model(&models.Product{}).
		Where("id = ?", id).
		Update("status", gorm.Expr(
			"CASE WHEN status = ? THEN ? ELSE ? END",
			models.ProductActive, models.ProductInactive, models.ProductActive,
		))
	if res.Error != nil {
		return 0, fmt.Errorf("failed to toggle status for product %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// UpdateFields overwrites only the fields that were provided. An unknown id
// affects zero rows and is not an error.
func (r *GORMProductRepository) UpdateFields(id uint, price *float64, stock *int) (int64, error) {
	updates := map[string]interface{}{}
	if price != nil {
		updates["price"] = *price
	}
	if stock != nil {
		updates["stock"] = *stock
	}
	if len(updates) == 0 {
		return 0, nil
	}

	res := r.db.Model(&models.Product{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update product %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}
