package models

import "time"

// ProductStatus is the two-state visibility flag on a product.
type ProductStatus string

const (
	ProductActive   ProductStatus = "Active"
	ProductInactive ProductStatus = "Inactive"
)

// Toggle returns the other state. The mapping is total: any stored value
// that is not Active (Inactive included) maps to Active, which is also what
// the CASE expression in the repositories does.
func (s ProductStatus) Toggle() ProductStatus {
	if s == ProductActive {
		return ProductInactive
	}
	return ProductActive
}

// Product represents a product in the store catalog.
type Product struct {
	ID          uint          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string        `json:"name" gorm:"not null"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	Stock       int           `json:"stock"`
	Status      ProductStatus `json:"status" gorm:"type:varchar(16);default:'Active'"`
	CreatedAt   time.Time     `json:"created_at" gorm:"autoCreateTime"`
}

// AddProductRequest is the body of POST /products/add. Price and Stock are
// pointers so a present zero passes the required check while an absent
// field fails it.
type AddProductRequest struct {
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description" validate:"required"`
	Price       *float64      `json:"price" validate:"required,gte=0"`
	Stock       *int          `json:"stock" validate:"required,gte=0"`
	Status      ProductStatus `json:"status"`
}

// UpdateProductRequest is the body of PUT /products/update. Only the fields
// present in the request are overwritten.
type UpdateProductRequest struct {
	ID    *uint    `json:"id" validate:"required"`
	Price *float64 `json:"price" validate:"omitempty,gte=0"`
	Stock *int     `json:"stock" validate:"omitempty,gte=0"`
}
