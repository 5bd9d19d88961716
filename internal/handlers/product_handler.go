package handlers

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"smallbazaar/internal/models"
	"smallbazaar/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/all", h.HandleGetProducts)
	productRoutes.Post("/add", h.HandleAddProduct)
	productRoutes.Put("/status", h.HandleToggleStatus)
	productRoutes.Put("/update", h.HandleUpdateProduct)
}

// HandleGetProducts retrieves all products, all statuses included. The
// storefront filters to Active client-side; the admin console shows every
// row.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleAddProduct creates a new product. Name, description, price and
// stock are required; status defaults to Active.
func (h *ProductHandler) HandleAddProduct(c *fiber.Ctx) error {
	var req models.AddProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	product, err := h.service.AddProduct(req)
	if err != nil {
		log.Printf("Error adding product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product created",
		"id":      product.ID,
	})
}

// ToggleStatusRequest is the body for both status toggle endpoints. ID is a
// pointer so that a missing id is distinguishable from id 0.
type ToggleStatusRequest struct {
	ID *uint `json:"id" validate:"required"`
}

// HandleToggleStatus flips the product's status between Active and
// Inactive. Toggling an unknown id succeeds with zero effect.
func (h *ProductHandler) HandleToggleStatus(c *fiber.Ctx) error {
	var req ToggleStatusRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing toggle status request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if req.ID == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product id is required.",
		})
	}

	if err := h.service.ToggleStatus(*req.ID); err != nil {
		log.Printf("Error toggling status for product %d: %v", *req.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not toggle product status",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message":   "Product status toggled",
		"productId": *req.ID,
	})
}

// HandleUpdateProduct overwrites the price and/or stock of an existing
// product. Only the fields present in the request are written; updating an
// unknown id succeeds with zero effect.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req models.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	if err := h.service.UpdateProduct(req); err != nil {
		log.Printf("Error updating product %d: %v", *req.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message":   "Product updated",
		"productId": *req.ID,
	})
}
