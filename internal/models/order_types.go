package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the closed set of states a placed order moves through.
// Transitions are a free-form field write by farmers, there is no enforced
// transition graph.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered:
		return OrderStatus(s), nil
	}
	return "", errors.New("invalid order status")
}

// OrderItem is a line item embedded in an order document.
type OrderItem struct {
	Product  primitive.ObjectID `bson:"product" json:"-"`
	Quantity int                `bson:"quantity" json:"quantity"`
	// Price is the line total (unit price at order time x quantity). It is
	// never recomputed, so later product price changes leave placed orders
	// untouched.
	Price float64 `bson:"price" json:"price"`

	// Join (not stored, populated manually)
	ProductInfo *Product `bson:"-" json:"product,omitempty"`
}

// Order is the document model for the 'orders' collection.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Buyer     primitive.ObjectID `bson:"buyer" json:"-"`
	Products  []OrderItem        `bson:"products" json:"products"`
	Total     float64            `bson:"total" json:"total"`
	Status    OrderStatus        `bson:"status" json:"status"`
	CreatedAt string             `bson:"createdAt" json:"createdAt"`

	// Join (not stored, populated manually)
	BuyerInfo *User `bson:"-" json:"buyer,omitempty"`
}

// DashboardStats is the aggregate view returned by getDashboardStats.
type DashboardStats struct {
	TotalOrders        int      `json:"totalOrders"`
	TotalRevenue       float64  `json:"totalRevenue"`
	ActiveListings     int      `json:"activeListings"`
	RecentTransactions []*Order `json:"recentTransactions"`
}

// AuthPayload is returned by signup and login.
type AuthPayload struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
