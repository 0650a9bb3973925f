package graph

import (
	"errors"

	"github.com/graphql-go/graphql"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmdirect/farmdirect-golang/internal/auth"
	"github.com/farmdirect/farmdirect-golang/internal/models"
	"github.com/farmdirect/farmdirect-golang/internal/policy"
)

var errInvalidID = errors.New("invalid id")

func objectIDArg(args map[string]interface{}, key string) (primitive.ObjectID, error) {
	hex, _ := args[key].(string)
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, errInvalidID
	}
	return id, nil
}

// GetUser returns a user by id, or null when none exists.
func (r *Resolver) GetUser(p graphql.ResolveParams) (interface{}, error) {
	id, err := objectIDArg(p.Args, "id")
	if err != nil {
		return nil, err
	}
	user, err := r.Store.FindUserByID(p.Context, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return user, nil
}

// GetProducts lists every product with its seller attached. Public.
func (r *Resolver) GetProducts(p graphql.ResolveParams) (interface{}, error) {
	products, err := r.Store.FindProducts(p.Context)
	if err != nil {
		return nil, err
	}
	if err := r.attachSellers(p.Context, products...); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *Resolver) GetProduct(p graphql.ResolveParams) (interface{}, error) {
	id, err := objectIDArg(p.Args, "id")
	if err != nil {
		return nil, err
	}
	product, err := r.Store.FindProductByID(p.Context, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if err := r.attachSellers(p.Context, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProductsByCategory filters on the raw category string; an unknown
// category simply matches nothing.
func (r *Resolver) GetProductsByCategory(p graphql.ResolveParams) (interface{}, error) {
	category, _ := p.Args["category"].(string)
	products, err := r.Store.FindProductsByCategory(p.Context, models.Category(category))
	if err != nil {
		return nil, err
	}
	if err := r.attachSellers(p.Context, products...); err != nil {
		return nil, err
	}
	return products, nil
}

// GetUserProducts returns the caller's own listings.
func (r *Resolver) GetUserProducts(p graphql.ResolveParams) (interface{}, error) {
	identity := auth.IdentityFromContext(p.Context)
	if err := policy.RequireUser(identity); err != nil {
		return nil, err
	}
	products, err := r.Store.FindProductsBySeller(p.Context, identity.ID)
	if err != nil {
		return nil, err
	}
	if err := r.attachSellers(p.Context, products...); err != nil {
		return nil, err
	}
	return products, nil
}

// GetFarmerOrders returns every order touching one of the farmer's listings.
func (r *Resolver) GetFarmerOrders(p graphql.ResolveParams) (interface{}, error) {
	identity := auth.IdentityFromContext(p.Context)
	if err := policy.RequireFarmer(identity); err != nil {
		return nil, err
	}
	orders, err := r.findOrdersTouchingSeller(p, identity.ID, nil)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetBuyerOrders returns the caller's own orders.
func (r *Resolver) GetBuyerOrders(p graphql.ResolveParams) (interface{}, error) {
	identity := auth.IdentityFromContext(p.Context)
	if err := policy.RequireUser(identity); err != nil {
		return nil, err
	}
	orders, err := r.Store.FindOrdersByBuyer(p.Context, identity.ID)
	if err != nil {
		return nil, err
	}
	if err := r.populateOrders(p.Context, orders...); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetTransactions returns the farmer's settled orders.
func (r *Resolver) GetTransactions(p graphql.ResolveParams) (interface{}, error) {
	identity := auth.IdentityFromContext(p.Context)
	if err := policy.RequireFarmer(identity); err != nil {
		return nil, err
	}
	orders, err := r.findOrdersTouchingSeller(p, identity.ID, []string{"completed", "delivered"})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetDashboardStats aggregates per role. Farmer totals count orders over the
// farmer's own listings marked "completed"; buyer totals count all of the
// buyer's orders regardless of status.
func (r *Resolver) GetDashboardStats(p graphql.ResolveParams) (interface{}, error) {
	identity := auth.IdentityFromContext(p.Context)
	if err := policy.RequireUser(identity); err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{RecentTransactions: []*models.Order{}}

	var orders []*models.Order
	if identity.Role == models.RoleFarmer {
		products, err := r.Store.FindProductsBySeller(p.Context, identity.ID)
		if err != nil {
			return nil, err
		}
		stats.ActiveListings = len(products)

		ids := make([]primitive.ObjectID, len(products))
		for i, product := range products {
			ids[i] = product.ID
		}
		orders, err = r.Store.FindOrdersByProducts(p.Context, ids, []string{"completed"})
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		orders, err = r.Store.FindOrdersByBuyer(p.Context, identity.ID)
		if err != nil {
			return nil, err
		}
	}

	stats.TotalOrders = len(orders)
	for _, order := range orders {
		stats.TotalRevenue += order.Total
	}

	recent := orders
	if len(recent) > 5 {
		recent = recent[:5]
	}
	if err := r.populateOrders(p.Context, recent...); err != nil {
		return nil, err
	}
	stats.RecentTransactions = recent

	return stats, nil
}

// findOrdersTouchingSeller loads the seller's product ids, finds orders
// containing any of them (optionally status-filtered) and populates them.
func (r *Resolver) findOrdersTouchingSeller(p graphql.ResolveParams, seller primitive.ObjectID, statuses []string) ([]*models.Order, error) {
	products, err := r.Store.FindProductsBySeller(p.Context, seller)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, len(products))
	for i, product := range products {
		ids[i] = product.ID
	}

	orders, err := r.Store.FindOrdersByProducts(p.Context, ids, statuses)
	if err != nil {
		return nil, err
	}
	if err := r.populateOrders(p.Context, orders...); err != nil {
		return nil, err
	}
	return orders, nil
}
