package services

import "errors"

// Error taxonomy: validation failures map to 400, not-found sentinels to
// 404; anything else surfaces as a generic 500 at the controller.
var (
	ErrValidation       = errors.New("validation failed")
	ErrBusinessNotFound = errors.New("business not found")
	ErrOrderNotFound    = errors.New("order not found")
)
