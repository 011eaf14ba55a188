package model

import (
	"regexp"
	"strings"
)

// Payment is the buyer's chosen payment method.
type Payment string

const (
	PaymentUnset Payment = ""
	PaymentCard  Payment = "card"
	PaymentCash  Payment = "cash"
)

// BuyerData is a snapshot of the buyer's draft order details. Mutating a
// snapshot never affects the model.
type BuyerData struct {
	Payment Payment
	Email   string
	Phone   string
	Address string
}

// Validation is the result of a step validator. A failed validation is a
// normal state communicated to the form, never an error value.
type Validation struct {
	Error   string
	IsValid bool
}

// Validation messages. When both fields of a step fail, the combined
// message takes precedence over either single-field message.
const (
	msgAddressAndPayment = "Select a payment method and enter a delivery address"
	msgPaymentMissing    = "Select a payment method"
	msgAddressTooShort   = "Address must be longer than 5 characters"
	msgEmailAndPhone     = "Enter your email and phone number"
	msgEmailInvalid      = "Enter a valid email"
	msgPhoneInvalid      = "Enter a valid phone number"
)

// phonePattern accepts digits, "+", "-", spaces, and parentheses.
var phonePattern = regexp.MustCompile(`^[0-9+\-() ]+$`)

// Buyer is the mutable draft of delivery and contact details collected
// across the two checkout steps. Setters only assign; the coordinator
// decides when to re-validate and re-render. Nothing is persisted.
type Buyer struct {
	payment Payment
	email   string
	phone   string
	address string
}

// NewBuyer returns an empty draft.
func NewBuyer() *Buyer {
	return &Buyer{}
}

func (b *Buyer) SetPayment(p Payment) { b.payment = p }
func (b *Buyer) SetEmail(v string)    { b.email = v }
func (b *Buyer) SetPhone(v string)    { b.phone = v }
func (b *Buyer) SetAddress(v string)  { b.address = v }

// Data returns a snapshot copy of all four fields.
func (b *Buyer) Data() BuyerData {
	return BuyerData{
		Payment: b.payment,
		Email:   b.email,
		Phone:   b.phone,
		Address: b.address,
	}
}

// Clear resets all four fields to empty.
func (b *Buyer) Clear() {
	b.payment = PaymentUnset
	b.email = ""
	b.phone = ""
	b.address = ""
}

func (b *Buyer) paymentValid() bool { return b.payment != PaymentUnset }
func (b *Buyer) addressValid() bool { return len(b.address) > 5 }

func (b *Buyer) emailValid() bool {
	return strings.Contains(b.email, "@") && len(b.email) > 3
}

func (b *Buyer) phoneValid() bool {
	return len(b.phone) >= 10 && phonePattern.MatchString(b.phone)
}

// ValidateAddressStep gates the first checkout step: a payment method
// must be chosen and the address must be longer than 5 characters.
func (b *Buyer) ValidateAddressStep() Validation {
	payment, address := b.paymentValid(), b.addressValid()
	switch {
	case !payment && !address:
		return Validation{Error: msgAddressAndPayment}
	case !payment:
		return Validation{Error: msgPaymentMissing}
	case !address:
		return Validation{Error: msgAddressTooShort}
	}
	return Validation{IsValid: true}
}

// ValidateContactsStep gates the second checkout step: the email must
// look like an email and the phone must be at least 10 characters of
// digits, "+", "-", spaces, or parentheses.
func (b *Buyer) ValidateContactsStep() Validation {
	email, phone := b.emailValid(), b.phoneValid()
	switch {
	case !email && !phone:
		return Validation{Error: msgEmailAndPhone}
	case !email:
		return Validation{Error: msgEmailInvalid}
	case !phone:
		return Validation{Error: msgPhoneInvalid}
	}
	return Validation{IsValid: true}
}

// Validate is the final pre-submit check requiring all four field
// predicates at once. Per-step UI uses the step validators instead.
func (b *Buyer) Validate() Validation {
	if step := b.ValidateAddressStep(); !step.IsValid {
		return step
	}
	if step := b.ValidateContactsStep(); !step.IsValid {
		return step
	}
	return Validation{IsValid: true}
}
