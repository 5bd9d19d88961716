package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"smallbazaar/internal/models"
	"smallbazaar/internal/repositories"
	"smallbazaar/pkg/rabbitmq"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	mqClient  *rabbitmq.Client
}

// NewOrderService creates a new OrderService. mqClient may be nil, in which
// case event publication is skipped.
func NewOrderService(orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		mqClient:  mqClient,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// PlaceOrder validates the minimum required fields, persists the order and
// publishes an order.placed event. The submitted total_amount is stored
// exactly as given; the server does not recompute it from the items.
func (s *OrderService) PlaceOrder(req models.PlaceOrderRequest) (*models.Order, error) {
	if req.CustomerName == "" {
		return nil, fmt.Errorf("%w: customer_name is required", ErrValidation)
	}

	items, err := req.NormalizeItems()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	status := req.Status
	if status == "" {
		status = models.OrderInProcess
	}

	order := &models.Order{
		Items:           items,
		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		CustomerContact: req.CustomerContact,
		ModeOfPayment:   req.ModeOfPayment,
		Status:          status,
		TotalAmount:     req.TotalAmount,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publishEvent("order.placed", order.ID, map[string]interface{}{
		"status":       order.Status,
		"total_amount": order.TotalAmount,
	})
	return order, nil
}

// ToggleStatus flips the order's status between InProcess and Delivered and
// publishes an order.status_toggled event. An unknown id is a silent no-op;
// it is logged and no event is published.
func (s *OrderService) ToggleStatus(id uint) error {
	rows, err := s.orderRepo.ToggleStatus(id)
	if err != nil {
		return fmt.Errorf("failed to toggle order status: %w", err)
	}
	if rows == 0 {
		log.Printf("Order status toggle for id %d affected no rows", id)
		return nil
	}

	s.publishEvent("order.status_toggled", id, nil)
	return nil
}

// publishEvent sends an order event to RabbitMQ. Publish failures are
// logged, never surfaced to the caller: the order is already persisted and
// the HTTP contract has no retry semantics.
func (s *OrderService) publishEvent(event string, orderID uint, fields map[string]interface{}) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}

	payload := map[string]interface{}{
		"event_id":    uuid.New().String(),
		"event":       event,
		"order_id":    orderID,
		"occurred_at": time.Now().Format(time.RFC3339),
	}
	for k, v := range fields {
		payload[k] = v
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event for order %d: %v", event, orderID, err)
		return
	}

	if err := s.mqClient.Publish(event, body); err != nil {
		log.Printf("Warning: Failed to publish %s event for order %d: %v", event, orderID, err)
	} else {
		log.Printf("Published %s event for order %d", event, orderID)
	}
}
