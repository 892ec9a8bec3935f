package models

import "errors"

// Domain errors. Handlers map these to HTTP status codes; anything else
// is reported as a generic internal failure.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyCart    = errors.New("cart is empty")
	ErrGateway      = errors.New("payment gateway error")
)
