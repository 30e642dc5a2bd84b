package models

import (
	"time"

	"github.com/google/uuid"
)

// TaxRate is the flat rate applied to every order. Shipping is free.
const TaxRate = 0.08

// ShippingInfo is the validated checkout form, minus the payment method.
type ShippingInfo struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
}

// Order is the result of a successful checkout: a frozen copy of the cart
// plus the shipping details, never mutated afterwards.
//
// Amounts are stored at full precision. Rounding to two decimals happens
// only where an amount is rendered, so repeated reads never compound
// rounding error.
type Order struct {
	ID            string       `json:"id"`
	Items         []LineItem   `json:"items"`
	Shipping      ShippingInfo `json:"shipping"`
	PaymentMethod string       `json:"payment_method"`
	Subtotal      float64      `json:"subtotal"`
	TaxAmount     float64      `json:"tax_amount"`
	ShippingCost  float64      `json:"shipping_cost"`
	Total         float64      `json:"total"`
	PlacedAt      time.Time    `json:"placed_at"`
}

// NewOrder builds an order from a cart snapshot and a validated form.
func NewOrder(items []LineItem, form CheckoutForm) Order {
	var subtotal float64
	for _, it := range items {
		subtotal += it.UnitPrice * float64(it.Quantity)
	}

	return Order{
		ID:    newOrderRef(),
		Items: items,
		Shipping: ShippingInfo{
			Email:     form.Email,
			FirstName: form.FirstName,
			LastName:  form.LastName,
			Address:   form.Address,
			City:      form.City,
			Zip:       form.Zip,
			Country:   form.Country,
		},
		PaymentMethod: form.PaymentMethod,
		Subtotal:      subtotal,
		TaxAmount:     subtotal * TaxRate,
		ShippingCost:  0,
		Total:         subtotal * (1 + TaxRate),
		PlacedAt:      time.Now(),
	}
}

// newOrderRef generates a unique order reference.
// Example: 20250908130500-<uuid4>
func newOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
