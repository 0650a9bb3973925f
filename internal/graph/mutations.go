package graph

import (
	"errors"
	"log"

	"github.com/graphql-go/graphql"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmdirect/farmdirect-golang/internal/auth"
	"github.com/farmdirect/farmdirect-golang/internal/models"
	"github.com/farmdirect/farmdirect-golang/internal/policy"
	"github.com/farmdirect/farmdirect-golang/internal/store"
)

// Signup registers a new user and logs them straight in.
func (r *Resolver) Signup(p graphql.ResolveParams) (interface{}, error) {
	in, err := decodeSignupInput(p.Args["input"])
	if err != nil {
		return nil, signupFailed(err)
	}
	role, err := models.ParseRole(in.Role)
	if err != nil {
		return nil, signupFailed(err)
	}

	existing, err := r.Store.FindUserByEmail(p.Context, in.Email)
	if err != nil {
		return nil, signupFailed(err)
	}
	if existing != nil {
		return nil, signupFailed(ErrEmailRegistered)
	}

	var password models.Password
	if err := password.Set(in.Password); err != nil {
		return nil, signupFailed(err)
	}

	user := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: password.Hash,
		Role:         role,
		CreatedAt:    models.NowStamp(),
	}
	if err := r.Store.InsertUser(p.Context, user); err != nil {
		return nil, signupFailed(err)
	}

	token, err := r.Tokens.Generate(user)
	if err != nil {
		return nil, signupFailed(err)
	}
	return &models.AuthPayload{Token: token, User: user}, nil
}

// Login verifies credentials and issues a token.
func (r *Resolver) Login(p graphql.ResolveParams) (interface{}, error) {
	in, err := decodeLoginInput(p.Args["input"])
	if err != nil {
		return nil, err
	}

	user, err := r.Store.FindUserByEmail(p.Context, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	password := models.Password{Hash: user.PasswordHash}
	ok, err := password.Matches(in.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidPassword
	}

	token, err := r.Tokens.Generate(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthPayload{Token: token, User: user}, nil
}

// CreateProduct lists a new product owned by the acting farmer.
func (r *Resolver) CreateProduct(p graphql.ResolveParams) (interface{}, error) {
	identity := auth.IdentityFromContext(p.Context)
	if err := policy.RequireFarmer(identity); err != nil {
		return nil, err
	}

	in, category, err := decodeProductInput(p.Args["input"])
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Category:    category,
		Seller:      identity.ID,
		Quantity:    in.Quantity,
		CreatedAt:   models.NowStamp(),
	}
	if err := r.Store.InsertProduct(p.Context, product); err != nil {
		return nil, err
	}
	if err := r.attachSellers(p.Context, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct overwrites an owned listing's fields.
func (r *Resolver) UpdateProduct(p graphql.ResolveParams) (interface{}, error) {
	identity := auth.IdentityFromContext(p.Context)
	if err := policy.RequireFarmer(identity); err != nil {
		return nil, err
	}

	id, err := objectIDArg(p.Args, "id")
	if err != nil {
		return nil, policy.ErrNotFoundOrUnauthorized
	}
	product, err := r.Store.FindProductByID(p.Context, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanMutateProduct(identity, product); err != nil {
		return nil, err
	}

	in, category, err := decodeProductInput(p.Args["input"])
	if err != nil {
		return nil, err
	}

	updated, err := r.Store.UpdateProduct(p.Context, id, &models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Category:    category,
		Quantity:    in.Quantity,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// Deleted between the ownership check and the write.
		return nil, policy.ErrNotFoundOrUnauthorized
	}
	if err := r.attachSellers(p.Context, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteProduct removes an owned listing.
func (r *Resolver) DeleteProduct(p graphql.ResolveParams) (interface{}, error) {
	identity := auth.IdentityFromContext(p.Context)
	if err := policy.RequireFarmer(identity); err != nil {
		return nil, err
	}

	id, err := objectIDArg(p.Args, "id")
	if err != nil {
		return nil, policy.ErrNotFoundOrUnauthorized
	}
	product, err := r.Store.FindProductByID(p.Context, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanMutateProduct(identity, product); err != nil {
		return nil, err
	}

	if err := r.Store.DeleteProduct(p.Context, id); err != nil {
		return nil, err
	}
	return true, nil
}

// CreateOrder is the fulfillment flow: per item in input order it checks
// stock, atomically decrements it and records a line item priced at order
// time. A failure on any item restocks everything decremented before it, so
// the flow is all-or-nothing.
func (r *Resolver) CreateOrder(p graphql.ResolveParams) (interface{}, error) {
	identity := auth.IdentityFromContext(p.Context)
	if err := policy.RequireUser(identity); err != nil {
		return nil, err
	}

	rawItems, ok := p.Args["products"].([]interface{})
	if !ok || len(rawItems) == 0 {
		return nil, errors.New("order contains no items")
	}

	var items []models.OrderItem
	restock := func() {
		for _, item := range items {
			if err := r.Store.IncrementProductQuantity(p.Context, item.Product, item.Quantity); err != nil {
				log.Printf("Failed to restock product %s after aborted order: %v", item.Product.Hex(), err)
			}
		}
	}

	var total float64
	for _, raw := range rawItems {
		in, err := decodeOrderItemInput(raw)
		if err != nil {
			restock()
			return nil, err
		}
		productID, err := primitive.ObjectIDFromHex(in.ProductID)
		if err != nil {
			restock()
			return nil, errInvalidID
		}

		product, err := r.Store.FindProductByID(p.Context, productID)
		if err != nil {
			restock()
			return nil, err
		}
		if product == nil {
			restock()
			return nil, outOfStockError(in.ProductID)
		}

		// The decrement re-checks stock atomically; the product we loaded
		// above only supplies the name and the unit price.
		if err := r.Store.DecrementProductQuantity(p.Context, productID, in.Quantity); err != nil {
			restock()
			if errors.Is(err, store.ErrInsufficientStock) {
				return nil, outOfStockError(product.Name)
			}
			return nil, err
		}

		item := models.OrderItem{
			Product:     productID,
			Quantity:    in.Quantity,
			Price:       product.Price * float64(in.Quantity),
			ProductInfo: product,
		}
		items = append(items, item)
		total += item.Price
	}

	order := &models.Order{
		Buyer:     identity.ID,
		Products:  items,
		Total:     total,
		Status:    models.StatusPending,
		CreatedAt: models.NowStamp(),
	}
	if err := r.Store.InsertOrder(p.Context, order); err != nil {
		restock()
		return nil, err
	}

	if err := r.populateOrders(p.Context, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateOrderStatus writes a new status onto an order. Farmer-only.
func (r *Resolver) UpdateOrderStatus(p graphql.ResolveParams) (interface{}, error) {
	identity := auth.IdentityFromContext(p.Context)
	if err := policy.RequireUser(identity); err != nil {
		return nil, err
	}

	id, err := objectIDArg(p.Args, "id")
	if err != nil {
		return nil, ErrOrderNotFound
	}
	order, err := r.Store.FindOrderByID(p.Context, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if err := policy.CanUpdateOrderStatus(identity); err != nil {
		return nil, err
	}

	status, err := models.ParseOrderStatus(stringArg(p.Args, "status"))
	if err != nil {
		return nil, err
	}

	updated, err := r.Store.UpdateOrderStatus(p.Context, id, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrOrderNotFound
	}
	if err := r.populateOrders(p.Context, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// RegisterUser and LoginUser are declared in the schema for compatibility
// with older clients but have never been implemented; signup and login are
// the live paths.
func (r *Resolver) RegisterUser(p graphql.ResolveParams) (interface{}, error) {
	return nil, errors.New("registerUser is not implemented; use signup")
}

func (r *Resolver) LoginUser(p graphql.ResolveParams) (interface{}, error) {
	return nil, errors.New("loginUser is not implemented; use login")
}
