// Package storeclient is the Go counterpart of the browser storefront: it
// reads the active catalog, submits a cart as an order and reads back
// placed orders with their line items decoded.
package storeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"smallbazaar/internal/cart"
	"smallbazaar/internal/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// ActiveProducts returns the catalog filtered to Active products, which is
// all the storefront ever shows.
func (c *Client) ActiveProducts(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products/all", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product listing failed with status: %d", resp.StatusCode)
	}

	var all []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&all); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	active := make([]models.Product, 0, len(all))
	for _, p := range all {
		if p.Status == models.ProductActive {
			active = append(active, p)
		}
	}
	return active, nil
}

// PlacedOrder is the order echo returned by a successful checkout.
type PlacedOrder struct {
	Message string       `json:"message"`
	OrderID uint         `json:"orderId"`
	Order   models.Order `json:"order"`
}

// Checkout serializes the cart into an order submission and posts it. The
// cart is cleared only after the server confirms placement; on any failure
// it is left untouched so the shopper can retry.
func (c *Client) Checkout(ctx context.Context, shopperCart *cart.Cart, customer cart.Customer, mode models.PaymentMode) (*PlacedOrder, error) {
	payload, err := shopperCart.OrderPayload(customer, mode)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders/place", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("order placement failed with status: %d", resp.StatusCode)
	}

	var placed PlacedOrder
	if err := json.NewDecoder(resp.Body).Decode(&placed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	shopperCart.Clear()
	return &placed, nil
}

// OrderWithItems pairs an order with its decoded line items.
type OrderWithItems struct {
	models.Order
	LineItems []models.LineItem
}

// Orders returns all orders with line items decoded from the stored JSON
// string form, the way the admin console reads them.
func (c *Client) Orders(ctx context.Context) ([]OrderWithItems, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/orders/all", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("order listing failed with status: %d", resp.StatusCode)
	}

	var orders []models.Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	result := make([]OrderWithItems, 0, len(orders))
	for _, o := range orders {
		items, err := o.DecodeItems()
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", o.ID, err)
		}
		result = append(result, OrderWithItems{Order: o, LineItems: items})
	}
	return result, nil
}
