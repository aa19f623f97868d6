package order

import (
	"fmt"

	"printflow/internal/pkg/errs"
)

// DeliveryMethod describes how the customer receives the finished order.
type DeliveryMethod int

const (
	// DeliveryMethodUnknown represents an invalid or undefined method.
	DeliveryMethodUnknown DeliveryMethod = iota

	// MethodDelivery means a driver brings the order to the customer.
	MethodDelivery

	// MethodCustomerPickup means the customer collects the order.
	MethodCustomerPickup
)

func getDeliveryMethodStrings() map[DeliveryMethod]string {
	return map[DeliveryMethod]string{
		DeliveryMethodUnknown: "unknown",
		MethodDelivery:        "delivery",
		MethodCustomerPickup:  "customer_pickup",
	}
}

// DeliveryMethodFromString parses a delivery method wire name.
func DeliveryMethodFromString(s string) (DeliveryMethod, error) {
	for method, name := range getDeliveryMethodStrings() {
		if method != DeliveryMethodUnknown && name == s {
			return method, nil
		}
	}
	return DeliveryMethodUnknown,
		errs.NewValueIsInvalidErrorWithCause("delivery method", fmt.Errorf("%q is not a valid delivery method", s))
}

// Validate checks if the DeliveryMethod value is valid.
func (m DeliveryMethod) Validate() error {
	if m != MethodDelivery && m != MethodCustomerPickup {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery method", fmt.Errorf("%d is not a valid delivery method", m))
	}
	return nil
}

// String returns the wire name of the method. Implements fmt.Stringer.
func (m DeliveryMethod) String() string {
	if str, ok := getDeliveryMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// PaymentStatus tracks how much of the order total has been settled.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// Unpaid means nothing has been received yet.
	Unpaid

	// Partial means part of the total has been received.
	Partial

	// Paid means the order is fully settled.
	Paid
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown: "unknown",
		Unpaid:               "unpaid",
		Partial:              "partial",
		Paid:                 "paid",
	}
}

// PaymentStatusFromString parses a payment status wire name.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, name := range getPaymentStatusStrings() {
		if status != PaymentStatusUnknown && name == s {
			return status, nil
		}
	}
	return PaymentStatusUnknown,
		errs.NewValueIsInvalidErrorWithCause("payment status", fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the PaymentStatus value is valid.
func (p PaymentStatus) Validate() error {
	if p != Unpaid && p != Partial && p != Paid {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status", fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// String returns the wire name of the payment status. Implements fmt.Stringer.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "unknown"
}
