package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/farmdirect/farmdirect-golang/internal/models"
)

func (s *Store) FindProductByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := s.products.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Store) FindProducts(ctx context.Context) ([]*models.Product, error) {
	return s.findProducts(ctx, bson.M{})
}

func (s *Store) FindProductsByCategory(ctx context.Context, category models.Category) ([]*models.Product, error) {
	return s.findProducts(ctx, bson.M{"category": category})
}

func (s *Store) FindProductsBySeller(ctx context.Context, seller primitive.ObjectID) ([]*models.Product, error) {
	return s.findProducts(ctx, bson.M{"seller": seller})
}

func (s *Store) findProducts(ctx context.Context, filter bson.M) ([]*models.Product, error) {
	cursor, err := s.products.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []*models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// InsertProduct stores a new listing and fills in its generated id.
func (s *Store) InsertProduct(ctx context.Context, product *models.Product) error {
	res, err := s.products.InsertOne(ctx, product)
	if err != nil {
		return err
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// UpdateProduct overwrites the listing's mutable fields and returns the
// updated document, or (nil, nil) if it no longer exists.
func (s *Store) UpdateProduct(ctx context.Context, id primitive.ObjectID, product *models.Product) (*models.Product, error) {
	update := bson.M{"$set": bson.M{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"image":       product.Image,
		"category":    product.Category,
		"quantity":    product.Quantity,
	}}

	var updated models.Product
	err := s.products.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.products.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DecrementProductQuantity atomically takes n units of stock. The filter
// re-checks the available quantity inside the same update, so concurrent
// orders can never drive quantity negative (no read-modify-write window).
func (s *Store) DecrementProductQuantity(ctx context.Context, id primitive.ObjectID, n int) error {
	filter := bson.M{"_id": id, "quantity": bson.M{"$gte": n}}
	update := bson.M{"$inc": bson.M{"quantity": -n}}

	err := s.products.FindOneAndUpdate(ctx, filter, update).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrInsufficientStock
	}
	return err
}

// IncrementProductQuantity returns n units of stock. Used to compensate
// decrements when a later item in the same order fails.
func (s *Store) IncrementProductQuantity(ctx context.Context, id primitive.ObjectID, n int) error {
	update := bson.M{"$inc": bson.M{"quantity": n}}
	_, err := s.products.UpdateByID(ctx, id, update)
	return err
}
