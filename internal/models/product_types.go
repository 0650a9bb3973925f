package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is the fixed set of product categories the marketplace accepts.
type Category string

// Categories lists every valid category, in the order the storefront shows them.
var Categories = []Category{
	"Vegetables",
	"Fruits",
	"Flowers",
	"Honey",
	"Crops",
	"Farm Tools",
	"Manure",
	"Pesticides",
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if Category(s) == c {
			return c, nil
		}
	}
	return "", errors.New("invalid category")
}

// Product is the document model for the 'products' collection.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Image       string             `bson:"image" json:"image"`
	Category    Category           `bson:"category" json:"category"`
	Seller      primitive.ObjectID `bson:"seller" json:"-"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	CreatedAt   string             `bson:"createdAt" json:"createdAt"`

	// Join (not stored, populated manually)
	SellerInfo *User `bson:"-" json:"seller,omitempty"`
}
