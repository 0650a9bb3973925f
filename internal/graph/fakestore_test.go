package graph

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmdirect/farmdirect-golang/internal/models"
	"github.com/farmdirect/farmdirect-golang/internal/store"
)

// fakeStore is an in-memory Store. Its quantity decrement mirrors the real
// store's guarded atomic update: check and decrement under one lock.
type fakeStore struct {
	mu       sync.Mutex
	users    map[primitive.ObjectID]*models.User
	products map[primitive.ObjectID]*models.Product
	orders   map[primitive.ObjectID]*models.Order
	orderSeq []primitive.ObjectID
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    map[primitive.ObjectID]*models.User{},
		products: map[primitive.ObjectID]*models.Product{},
		orders:   map[primitive.ObjectID]*models.Order{},
	}
}

func copyUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func copyProduct(p *models.Product) *models.Product {
	if p == nil {
		return nil
	}
	c := *p
	c.SellerInfo = nil
	return &c
}

func copyOrder(o *models.Order) *models.Order {
	if o == nil {
		return nil
	}
	c := *o
	c.BuyerInfo = nil
	c.Products = make([]models.OrderItem, len(o.Products))
	for i, item := range o.Products {
		item.ProductInfo = nil
		c.Products[i] = item
	}
	return &c
}

func (f *fakeStore) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyUser(f.users[id]), nil
}

func (f *fakeStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

func (f *fakeStore) InsertUser(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = primitive.NewObjectID()
	f.users[user.ID] = copyUser(user)
	return nil
}

func (f *fakeStore) FindProductByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyProduct(f.products[id]), nil
}

func (f *fakeStore) FindProducts(ctx context.Context) ([]*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Product{}
	for _, p := range f.products {
		out = append(out, copyProduct(p))
	}
	return out, nil
}

func (f *fakeStore) FindProductsByCategory(ctx context.Context, category models.Category) ([]*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Product{}
	for _, p := range f.products {
		if p.Category == category {
			out = append(out, copyProduct(p))
		}
	}
	return out, nil
}

func (f *fakeStore) FindProductsBySeller(ctx context.Context, seller primitive.ObjectID) ([]*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Product{}
	for _, p := range f.products {
		if p.Seller == seller {
			out = append(out, copyProduct(p))
		}
	}
	return out, nil
}

func (f *fakeStore) InsertProduct(ctx context.Context, product *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	product.ID = primitive.NewObjectID()
	f.products[product.ID] = copyProduct(product)
	return nil
}

func (f *fakeStore) UpdateProduct(ctx context.Context, id primitive.ObjectID, product *models.Product) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	existing.Image = product.Image
	existing.Category = product.Category
	existing.Quantity = product.Quantity
	return copyProduct(existing), nil
}

func (f *fakeStore) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.products, id)
	return nil
}

func (f *fakeStore) DecrementProductQuantity(ctx context.Context, id primitive.ObjectID, n int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok || p.Quantity < n {
		return store.ErrInsufficientStock
	}
	p.Quantity -= n
	return nil
}

func (f *fakeStore) IncrementProductQuantity(ctx context.Context, id primitive.ObjectID, n int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.products[id]; ok {
		p.Quantity += n
	}
	return nil
}

func (f *fakeStore) InsertOrder(ctx context.Context, order *models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order.ID = primitive.NewObjectID()
	f.orders[order.ID] = copyOrder(order)
	f.orderSeq = append(f.orderSeq, order.ID)
	return nil
}

func (f *fakeStore) FindOrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyOrder(f.orders[id]), nil
}

func (f *fakeStore) FindOrdersByBuyer(ctx context.Context, buyer primitive.ObjectID) ([]*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Order{}
	for _, id := range f.orderSeq {
		if o := f.orders[id]; o != nil && o.Buyer == buyer {
			out = append(out, copyOrder(o))
		}
	}
	return out, nil
}

func (f *fakeStore) FindOrdersByProducts(ctx context.Context, productIDs []primitive.ObjectID, statuses []string) ([]*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	wanted := map[primitive.ObjectID]bool{}
	for _, id := range productIDs {
		wanted[id] = true
	}
	statusOK := func(s models.OrderStatus) bool {
		if len(statuses) == 0 {
			return true
		}
		for _, want := range statuses {
			if string(s) == want {
				return true
			}
		}
		return false
	}

	out := []*models.Order{}
	for _, id := range f.orderSeq {
		o := f.orders[id]
		if o == nil || !statusOK(o.Status) {
			continue
		}
		for _, item := range o.Products {
			if wanted[item.Product] {
				out = append(out, copyOrder(o))
				break
			}
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	o.Status = status
	return copyOrder(o), nil
}

var _ Store = (*fakeStore)(nil)
