package services

import (
	"errors"
	"fmt"
	"log"

	"smallbazaar/internal/models"
	"smallbazaar/internal/repositories"
)

// ErrValidation marks a request rejected for a missing or invalid field.
// Handlers map it to 400.
var ErrValidation = errors.New("validation failed")

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products, all statuses included.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// AddProduct creates a new product from the request. The status defaults to
// Active when omitted.
func (s *ProductService) AddProduct(req models.AddProductRequest) (*models.Product, error) {
	status := req.Status
	if status == "" {
		status = models.ProductActive
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       *req.Stock,
		Status:      status,
	}

	if err := s.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// ToggleStatus flips the product's status between Active and Inactive. An
// unknown id is a silent no-op; it is logged but not an error.
func (s *ProductService) ToggleStatus(id uint) error {
	rows, err := s.repo.ToggleStatus(id)
	if err != nil {
		return fmt.Errorf("failed to toggle product status: %w", err)
	}
	if rows == 0 {
		log.Printf("Product status toggle for id %d affected no rows", id)
	}
	return nil
}

// UpdateProduct overwrites the price and/or stock fields that were provided.
// An unknown id is a silent no-op.
func (s *ProductService) UpdateProduct(req models.UpdateProductRequest) error {
	rows, err := s.repo.UpdateFields(*req.ID, req.Price, req.Stock)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if rows == 0 {
		log.Printf("Product update for id %d affected no rows", *req.ID)
	}
	return nil
}
