// Package checkout drives the checkout flow for a single cart:
// editing -> validating -> submitting -> confirmed, returning to editing
// whenever the form fails validation.
package checkout

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/lumina-commerce/storefront-api/models"
)

var (
	// ErrEmptyCart means checkout was attempted with no line items. It is
	// not a form error; it short-circuits before any field is looked at.
	ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

	// ErrValidation means one or more form fields failed their
	// constraints. FieldErrors carries the full set.
	ErrValidation = errors.New("checkout form failed validation")
)

// State is where the checkout flow currently stands.
type State string

const (
	StateEditing    State = "editing"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateConfirmed  State = "confirmed"
)

func (s State) String() string {
	return string(s)
}

var validate = validator.New()

// fieldMessages maps the form's struct fields to the wire name and message
// the storefront shows under the input.
var fieldMessages = map[string]models.FieldError{
	"Email":         {Field: "email", Message: "Invalid email address"},
	"FirstName":     {Field: "first_name", Message: "First name is required"},
	"LastName":      {Field: "last_name", Message: "Last name is required"},
	"Address":       {Field: "address", Message: "Address is required"},
	"City":          {Field: "city", Message: "City is required"},
	"Zip":           {Field: "zip", Message: "Zip code is required"},
	"Country":       {Field: "country", Message: "Country is required"},
	"PaymentMethod": {Field: "payment_method", Message: "Select a valid payment method"},
}

// Checkout is the state machine for one submission flow over one cart.
// Dropping the value before a successful Submit abandons the flow and
// leaves the cart untouched.
type Checkout struct {
	cart        *models.Cart
	state       State
	fieldErrors []models.FieldError
}

// New enters checkout for the given cart. An empty cart cannot enter
// checkout at all.
func New(cart *models.Cart) (*Checkout, error) {
	if cart == nil || cart.ItemCount() == 0 {
		return nil, ErrEmptyCart
	}
	return &Checkout{cart: cart, state: StateEditing}, nil
}

func (co *Checkout) State() State {
	return co.state
}

// FieldErrors returns the failures from the most recent Submit, one per
// invalid field.
func (co *Checkout) FieldErrors() []models.FieldError {
	return co.fieldErrors
}

// Submit validates the form and, if every field passes, confirms the
// order. Confirmation builds the order from the cart snapshot and clears
// the cart before returning, so no caller can observe one effect without
// the other.
//
// On validation failure the machine returns to editing with the full set
// of field errors; the submitted values are the caller's to keep, so
// nothing is lost on a partial failure.
func (co *Checkout) Submit(form models.CheckoutForm) (*models.Order, error) {
	// The cart may have been emptied since New; the guard stays ahead of
	// field validation.
	if co.cart.ItemCount() == 0 {
		co.state = StateEditing
		return nil, ErrEmptyCart
	}

	if form.PaymentMethod == "" {
		form.PaymentMethod = models.PaymentMethodCard
	}

	co.state = StateValidating
	if errs := validateForm(form); len(errs) > 0 {
		co.fieldErrors = errs
		co.state = StateEditing
		return nil, ErrValidation
	}
	co.fieldErrors = nil

	co.state = StateSubmitting
	order := models.NewOrder(co.cart.Snapshot(), form)
	co.cart.Clear()
	co.state = StateConfirmed

	return &order, nil
}

func validateForm(form models.CheckoutForm) []models.FieldError {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []models.FieldError{{Field: "form", Message: err.Error()}}
	}

	fieldErrors := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		if msg, ok := fieldMessages[fe.StructField()]; ok {
			fieldErrors = append(fieldErrors, msg)
		} else {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field:   fe.Field(),
				Message: "Invalid value",
			})
		}
	}
	return fieldErrors
}
