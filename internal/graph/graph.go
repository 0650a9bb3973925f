// Package graph exposes the marketplace as a GraphQL schema: queries and
// mutations over users, products and orders, plus the dashboard aggregates.
package graph

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmdirect/farmdirect-golang/internal/auth"
	"github.com/farmdirect/farmdirect-golang/internal/models"
)

// Store is the persistence surface the resolvers need. *store.Store
// implements it; tests substitute an in-memory fake.
type Store interface {
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	InsertUser(ctx context.Context, user *models.User) error

	FindProductByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindProducts(ctx context.Context) ([]*models.Product, error)
	FindProductsByCategory(ctx context.Context, category models.Category) ([]*models.Product, error)
	FindProductsBySeller(ctx context.Context, seller primitive.ObjectID) ([]*models.Product, error)
	InsertProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, id primitive.ObjectID, product *models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) error
	DecrementProductQuantity(ctx context.Context, id primitive.ObjectID, n int) error
	IncrementProductQuantity(ctx context.Context, id primitive.ObjectID, n int) error

	InsertOrder(ctx context.Context, order *models.Order) error
	FindOrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	FindOrdersByBuyer(ctx context.Context, buyer primitive.ObjectID) ([]*models.Order, error)
	FindOrdersByProducts(ctx context.Context, productIDs []primitive.ObjectID, statuses []string) ([]*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error)
}

// Resolver holds all dependencies for the query and mutation resolvers.
type Resolver struct {
	Store  Store
	Tokens *auth.TokenManager
}
