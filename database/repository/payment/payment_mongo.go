package paymentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mockview/database"
	"mockview/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPaymentRepo is the MongoDB-backed payment repository.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

func NewMongoPaymentRepo() *MongoPaymentRepo {
	return &MongoPaymentRepo{coll: database.Collection("payments")}
}

func (repo *MongoPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	now := time.Now()
	payment.CreatedAt = now
	payment.UpdatedAt = now
	if _, err := repo.coll.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("error creating payment: %w", err)
	}
	return nil
}

func (repo *MongoPaymentRepo) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	return repo.findOne(ctx, bson.M{"id": id})
}

func (repo *MongoPaymentRepo) GetByBookingID(ctx context.Context, bookingID string) (*models.Payment, error) {
	return repo.findOne(ctx, bson.M{"bookingId": bookingID})
}

func (repo *MongoPaymentRepo) GetByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	return repo.findOne(ctx, bson.M{"orderId": orderID})
}

func (repo *MongoPaymentRepo) findOne(ctx context.Context, filter bson.M) (*models.Payment, error) {
	var payment models.Payment
	err := repo.coll.FindOne(ctx, filter).Decode(&payment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching payment: %w", err)
	}
	return &payment, nil
}

func (repo *MongoPaymentRepo) SetProviderOrder(ctx context.Context, paymentID, orderID string) error {
	filter := bson.M{"id": paymentID}
	update := bson.M{"$set": bson.M{"orderId": orderID, "updatedAt": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error recording order on payment %s: %w", paymentID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *MongoPaymentRepo) Complete(ctx context.Context, paymentID, providerPaymentID, signature string) error {
	filter := bson.M{"id": paymentID, "status": models.PaymentPending}
	update := bson.M{"$set": bson.M{
		"status":            models.PaymentCompleted,
		"providerPaymentId": providerPaymentID,
		"signature":         signature,
		"updatedAt":         time.Now(),
	}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error completing payment %s: %w", paymentID, err)
	}
	if res.MatchedCount == 0 {
		return ErrInvalidTransition
	}
	return nil
}

func (repo *MongoPaymentRepo) Fail(ctx context.Context, paymentID string) error {
	filter := bson.M{"id": paymentID, "status": models.PaymentPending}
	update := bson.M{"$set": bson.M{"status": models.PaymentFailed, "updatedAt": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error failing payment %s: %w", paymentID, err)
	}
	if res.MatchedCount == 0 {
		return ErrInvalidTransition
	}
	return nil
}
