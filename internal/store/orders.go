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

// InsertOrder stores a new order with its embedded line items and fills in
// the generated id.
func (s *Store) InsertOrder(ctx context.Context, order *models.Order) error {
	res, err := s.orders.InsertOne(ctx, order)
	if err != nil {
		return err
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *Store) FindOrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := s.orders.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Store) FindOrdersByBuyer(ctx context.Context, buyer primitive.ObjectID) ([]*models.Order, error) {
	return s.findOrders(ctx, bson.M{"buyer": buyer})
}

// FindOrdersByProducts returns orders containing a line item for any of the
// given products, optionally restricted to the given statuses. This is the
// "orders touching a seller's listings" join used by the farmer views.
func (s *Store) FindOrdersByProducts(ctx context.Context, productIDs []primitive.ObjectID, statuses []string) ([]*models.Order, error) {
	filter := bson.M{"products.product": bson.M{"$in": productIDs}}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}
	return s.findOrders(ctx, filter)
}

func (s *Store) findOrders(ctx context.Context, filter bson.M) ([]*models.Order, error) {
	cursor, err := s.orders.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []*models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus writes the new status and returns the updated order, or
// (nil, nil) if the order does not exist.
func (s *Store) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	var updated models.Order
	err := s.orders.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
