// Package cart implements the shopper's in-progress selection. A cart lives
// for one browsing session, is mutated only by direct user action, and is
// not safe for concurrent use.
package cart

import (
	"encoding/json"
	"fmt"

	"smallbazaar/internal/models"
)

// Customer holds the checkout contact fields copied onto the order.
type Customer struct {
	Name    string
	Address string
	Contact string
}

// Cart maintains an ordered list of line items.
type Cart struct {
	items []models.LineItem
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts qty units of product into the cart. If a line item with the same
// product name already exists its quantity grows by qty and the amount is
// recomputed; otherwise a new line item is appended with a name/price
// snapshot of the product.
func (c *Cart) Add(product models.Product, qty int) error {
	if qty < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", qty)
	}

	for i := range c.items {
		if c.items[i].ProductName == product.Name {
			c.items[i].Qty += qty
			c.items[i].Amount = float64(c.items[i].Qty) * c.items[i].UnitPrice
			return nil
		}
	}

	c.items = append(c.items, models.LineItem{
		ProductName: product.Name,
		UnitPrice:   product.Price,
		Qty:         qty,
		Amount:      float64(qty) * product.Price,
	})
	return nil
}

// UpdateQty sets the quantity of the line item at index and recomputes its
// amount.
func (c *Cart) UpdateQty(index, qty int) error {
	if index < 0 || index >= len(c.items) {
		return fmt.Errorf("no cart item at index %d", index)
	}
	if qty < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", qty)
	}
	c.items[index].Qty = qty
	c.items[index].Amount = float64(qty) * c.items[index].UnitPrice
	return nil
}

// Remove deletes the line item at index. Items after it shift down one
// position.
func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.items) {
		return fmt.Errorf("no cart item at index %d", index)
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return nil
}

// Total returns the sum of line amounts, 0 for an empty cart.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Amount
	}
	return total
}

// Items returns a copy of the current line items.
func (c *Cart) Items() []models.LineItem {
	items := make([]models.LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of line items.
func (c *Cart) Len() int {
	return len(c.items)
}

// Clear empties the cart. Callers must only clear after the server has
// confirmed order placement.
func (c *Cart) Clear() {
	c.items = nil
}

// OrderPayload serializes the cart into an order placement request: items
// are JSON-encoded the way the storefront submits them, the total is
// computed from the current items, and the status starts as InProcess.
func (c *Cart) OrderPayload(customer Customer, mode models.PaymentMode) (models.PlaceOrderRequest, error) {
	encoded, err := json.Marshal(c.Items())
	if err != nil {
		return models.PlaceOrderRequest{}, fmt.Errorf("failed to encode cart items: %w", err)
	}

	quoted, err := json.Marshal(string(encoded))
	if err != nil {
		return models.PlaceOrderRequest{}, fmt.Errorf("failed to encode cart items: %w", err)
	}

	return models.PlaceOrderRequest{
		Items:           json.RawMessage(quoted),
		CustomerName:    customer.Name,
		CustomerAddress: customer.Address,
		CustomerContact: customer.Contact,
		ModeOfPayment:   mode,
		Status:          models.OrderInProcess,
		TotalAmount:     c.Total(),
	}, nil
}
