package models

// Payment methods accepted at checkout.
const (
	PaymentMethodCard   = "card"
	PaymentMethodPaypal = "paypal"
)

// CheckoutForm carries the shipping and payment fields submitted from the
// checkout page. The validate tags mirror the storefront's form schema;
// the checkout package turns violations into per-field errors.
type CheckoutForm struct {
	Email         string `json:"email" validate:"required,email"`
	FirstName     string `json:"first_name" validate:"required,min=2"`
	LastName      string `json:"last_name" validate:"required,min=2"`
	Address       string `json:"address" validate:"required,min=5"`
	City          string `json:"city" validate:"required,min=2"`
	Zip           string `json:"zip" validate:"required,min=4"`
	Country       string `json:"country" validate:"required,min=2"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=card paypal"`
}

// FieldError points at one invalid form field. A failed validation returns
// every field's error at once so the UI can annotate the whole form.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
