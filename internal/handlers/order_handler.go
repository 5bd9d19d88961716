package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"smallbazaar/internal/models"
	"smallbazaar/internal/services"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/all", h.HandleGetOrders)
	orderRoutes.Post("/place", h.HandlePlaceOrder)
	orderRoutes.Put("/update", h.HandleToggleStatus)
}

// HandleGetOrders retrieves all orders. Items stays in its stored JSON
// string form; the admin console decodes it client-side.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandlePlaceOrder creates a new order. items and customer_name are the
// required minimum; the submitted total_amount is stored as given.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var req models.PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing place order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	order, err := h.service.PlaceOrder(req)
	if err != nil {
		log.Printf("Error placing order: %v", err)
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Order placement failed",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to place order",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Order added successfully",
		"orderId": order.ID,
		"order":   order,
	})
}

// HandleToggleStatus flips the order's status between InProcess and
// Delivered. Toggling an unknown id succeeds with zero effect.
func (h *OrderHandler) HandleToggleStatus(c *fiber.Ctx) error {
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
			"message": "Order id is required.",
		})
	}

	if err := h.service.ToggleStatus(*req.ID); err != nil {
		log.Printf("Error toggling status for order %d: %v", *req.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not toggle order status",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Order status toggled",
		"orderId": *req.ID,
	})
}
