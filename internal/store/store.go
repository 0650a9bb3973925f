// Package store is the persistence layer over the three document
// collections. Every method takes the request context and returns plain
// model structs; "not found" is (nil, nil), not an error, so callers decide
// what a missing document means for their operation.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/farmdirect/farmdirect-golang/internal/models"
)

// Store owns the collection handles. It is constructed once in main and
// injected into the resolver layer.
type Store struct {
	users    *mongo.Collection
	products *mongo.Collection
	orders   *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		users:    db.Collection("users"),
		products: db.Collection("products"),
		orders:   db.Collection("orders"),
	}
}

// ErrInsufficientStock is returned by DecrementProductQuantity when the
// product is missing or holds less stock than requested.
var ErrInsufficientStock = errors.New("insufficient stock")

func (s *Store) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// InsertUser stores a new user and fills in its generated id.
func (s *Store) InsertUser(ctx context.Context, user *models.User) error {
	res, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}
