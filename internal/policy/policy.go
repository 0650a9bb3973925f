// Package policy holds the authorization rules as pure functions of
// (identity, target). Resolvers call these before touching the store.
package policy

import (
	"errors"

	"github.com/farmdirect/farmdirect-golang/internal/auth"
	"github.com/farmdirect/farmdirect-golang/internal/models"
)

// The messages below are part of the API surface; clients match on them.
var (
	ErrNotAuthenticated = errors.New("Not authenticated")
	ErrUnauthorized     = errors.New("Not authorized")

	// ErrNotFoundOrUnauthorized deliberately merges "no such product" and
	// "not yours" so a caller cannot probe for the existence of other
	// sellers' listings.
	ErrNotFoundOrUnauthorized = errors.New("Product not found or not authorized")

	ErrOrderStatusUnauthorized = errors.New("Not authorized to update order status")
)

// RequireUser passes for any authenticated identity.
func RequireUser(identity *auth.Identity) error {
	if identity == nil {
		return ErrNotAuthenticated
	}
	return nil
}

// RequireFarmer passes only for authenticated farmers. Anonymous callers get
// the same rejection as non-farmers.
func RequireFarmer(identity *auth.Identity) error {
	if identity == nil || identity.Role != models.RoleFarmer {
		return ErrUnauthorized
	}
	return nil
}

// CanMutateProduct checks that the acting farmer owns the product. A missing
// product and a foreign product are indistinguishable to the caller.
func CanMutateProduct(identity *auth.Identity, product *models.Product) error {
	if err := RequireFarmer(identity); err != nil {
		return err
	}
	if product == nil || product.Seller != identity.ID {
		return ErrNotFoundOrUnauthorized
	}
	return nil
}

// CanUpdateOrderStatus gates status transitions to farmers. Whether the
// farmer actually sold anything in the order is not checked; that matches the
// behavior shipped clients depend on.
func CanUpdateOrderStatus(identity *auth.Identity) error {
	if identity.Role != models.RoleFarmer {
		return ErrOrderStatusUnauthorized
	}
	return nil
}
