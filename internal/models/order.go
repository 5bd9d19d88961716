package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// OrderStatus is the two-state fulfilment flag on an order.
type OrderStatus string

const (
	OrderInProcess OrderStatus = "InProcess"
	OrderDelivered OrderStatus = "Delivered"
)

// Toggle returns the other state. As with ProductStatus the mapping is
// total: anything that is not InProcess maps back to InProcess.
func (s OrderStatus) Toggle() OrderStatus {
	if s == OrderInProcess {
		return OrderDelivered
	}
	return OrderInProcess
}

// PaymentMode is recorded with the order but never processed.
type PaymentMode string

const (
	PaymentCod      PaymentMode = "Cod"
	PaymentRazorpay PaymentMode = "Razorpay"
)

// LineItem is one product entry within an order or cart. It carries a
// name/price snapshot taken at cart-add time and has no foreign key to the
// live product row, so the order stays valid evidence of the transaction
// even after the product is changed or deactivated.
type LineItem struct {
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Qty         int     `json:"qty"`
	Amount      float64 `json:"amount"`
}

// Order represents a placed customer order. Items is the JSON-encoded
// []LineItem exactly as stored; callers decode it with DecodeItems.
type Order struct {
	ID              uint        `json:"id" gorm:"primaryKey;autoIncrement"`
	Items           string      `json:"items" gorm:"type:text"`
	CustomerName    string      `json:"customer_name"`
	CustomerAddress string      `json:"customer_address"`
	CustomerContact string      `json:"customer_contact"`
	ModeOfPayment   PaymentMode `json:"modeOfPayment" gorm:"column:mode_of_payment;type:varchar(16)"`
	Status          OrderStatus `json:"status" gorm:"type:varchar(16);default:'InProcess'"`
	TotalAmount     float64     `json:"total_amount"`
	OrderedAt       time.Time   `json:"ordered_at" gorm:"autoCreateTime"`
}

// DecodeItems unmarshals the stored Items string.
func (o *Order) DecodeItems() ([]LineItem, error) {
	var items []LineItem
	if err := json.Unmarshal([]byte(o.Items), &items); err != nil {
		return nil, fmt.Errorf("failed to decode order items: %w", err)
	}
	return items, nil
}

// PlaceOrderRequest is the body of POST /orders/place. The storefront sends
// items as a JSON-encoded string; the raw array form is accepted too.
type PlaceOrderRequest struct {
	Items           json.RawMessage `json:"items"`
	CustomerName    string          `json:"customer_name"`
	CustomerAddress string          `json:"customer_address"`
	CustomerContact string          `json:"customer_contact"`
	ModeOfPayment   PaymentMode     `json:"modeOfPayment"`
	Status          OrderStatus     `json:"status"`
	TotalAmount     float64         `json:"total_amount"`
}

// NormalizeItems returns the canonical string form of the request items:
// a string value is unwrapped and checked to hold a line-item array, an
// array value is kept as-is. Absent items return an error; an empty array
// is accepted.
func (r *PlaceOrderRequest) NormalizeItems() (string, error) {
	if len(r.Items) == 0 {
		return "", fmt.Errorf("items is required")
	}

	raw := r.Items
	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		raw = json.RawMessage(inner)
	}

	var items []LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return "", fmt.Errorf("items is not a line item array: %w", err)
	}

	encoded, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to encode items: %w", err)
	}
	return string(encoded), nil
}
