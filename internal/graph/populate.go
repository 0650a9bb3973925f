package graph

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmdirect/farmdirect-golang/internal/models"
)

// Population resolves cross-collection references before a document leaves
// the resolver layer, the moral equivalent of a mongoose populate(). Small
// per-call caches keep repeated references to one lookup each.

func (r *Resolver) attachSellers(ctx context.Context, products ...*models.Product) error {
	cache := map[primitive.ObjectID]*models.User{}
	for _, product := range products {
		if product == nil || product.SellerInfo != nil {
			continue
		}
		seller, ok := cache[product.Seller]
		if !ok {
			var err error
			seller, err = r.Store.FindUserByID(ctx, product.Seller)
			if err != nil {
				return err
			}
			cache[product.Seller] = seller
		}
		product.SellerInfo = seller
	}
	return nil
}

// populateOrders attaches the buyer and, for every line item, the product
// with its seller. A reference to a since-deleted document stays nil.
func (r *Resolver) populateOrders(ctx context.Context, orders ...*models.Order) error {
	users := map[primitive.ObjectID]*models.User{}
	products := map[primitive.ObjectID]*models.Product{}

	findUser := func(id primitive.ObjectID) (*models.User, error) {
		if user, ok := users[id]; ok {
			return user, nil
		}
		user, err := r.Store.FindUserByID(ctx, id)
		if err != nil {
			return nil, err
		}
		users[id] = user
		return user, nil
	}

	for _, order := range orders {
		if order == nil {
			continue
		}
		if order.BuyerInfo == nil {
			buyer, err := findUser(order.Buyer)
			if err != nil {
				return err
			}
			order.BuyerInfo = buyer
		}
		for i := range order.Products {
			item := &order.Products[i]
			if item.ProductInfo == nil {
				product, ok := products[item.Product]
				if !ok {
					var err error
					product, err = r.Store.FindProductByID(ctx, item.Product)
					if err != nil {
						return err
					}
					products[item.Product] = product
				}
				item.ProductInfo = product
			}
			if item.ProductInfo != nil && item.ProductInfo.SellerInfo == nil {
				seller, err := findUser(item.ProductInfo.Seller)
				if err != nil {
					return err
				}
				item.ProductInfo.SellerInfo = seller
			}
		}
	}
	return nil
}
