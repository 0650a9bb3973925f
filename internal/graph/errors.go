package graph

import (
	"errors"
	"fmt"
)

// Wire-visible error messages. Clients match on these strings, so they stay
// exactly as shipped. The authorization errors live in internal/policy.
var (
	ErrEmailRegistered = errors.New("Email already registered")
	ErrUserNotFound    = errors.New("User not found")
	ErrInvalidPassword = errors.New("Invalid password")
	ErrOrderNotFound   = errors.New("Order not found")
)

// outOfStockError names the product so the storefront can point at the
// offending line item.
func outOfStockError(name string) error {
	return fmt.Errorf("Product %s is out of stock", name)
}

// signupFailed wraps every signup failure the same way.
func signupFailed(err error) error {
	return fmt.Errorf("Signup failed: %w", err)
}
