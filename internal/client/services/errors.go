package services

import "errors"

var (
	// ErrValidation signals that local form checks failed; field-level
	// details are available on the checkout. Nothing was sent remotely.
	ErrValidation = errors.New("validation failed")

	// ErrCartEmpty guards checkout against an empty cart.
	ErrCartEmpty = errors.New("cart is empty")

	// ErrNotAuthenticated guards checkout against anonymous sessions.
	ErrNotAuthenticated = errors.New("not authenticated")
)
