package planner

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when an input record violates one of its
	// field constraints. It is always wrapped with a message naming the field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPaymentTooLow is returned when a payment does not cover the
	// interest accruing in a single month, so the balance can never shrink.
	ErrPaymentTooLow = errors.New("the monthly payment does not cover the accruing interest")

	// ErrInsufficientIncome is returned when the minimum payments of all
	// debts together exceed the income available for debt service.
	ErrInsufficientIncome = errors.New("the minimum payments exceed the available monthly income")
)

// DebtUnpayableError identifies the debt whose minimum payment cannot
// amortize its own interest. It wraps ErrPaymentTooLow so callers can
// check for either.
type DebtUnpayableError struct {
	Name string
}

func (e DebtUnpayableError) Error() string {
	return fmt.Sprintf("the minimum payment for debt %q does not cover its accruing interest", e.Name)
}

func (e DebtUnpayableError) Unwrap() error {
	return ErrPaymentTooLow
}
