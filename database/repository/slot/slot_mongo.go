package slotRepo

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

// MongoSlotRepo is the MongoDB-backed slot repository.
type MongoSlotRepo struct {
	coll *mongo.Collection
}

func NewMongoSlotRepo() *MongoSlotRepo {
	return &MongoSlotRepo{coll: database.Collection("slots")}
}

func (repo *MongoSlotRepo) Create(ctx context.Context, slot *models.Slot) error {
	now := time.Now()
	slot.CreatedAt = now
	slot.UpdatedAt = now
	if slot.Status == "" {
		slot.Status = models.SlotAvailable
	}
	if _, err := repo.coll.InsertOne(ctx, slot); err != nil {
		return fmt.Errorf("error creating slot: %w", err)
	}
	return nil
}

func (repo *MongoSlotRepo) GetByID(ctx context.Context, id string) (*models.Slot, error) {
	var slot models.Slot
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&slot)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching slot %s: %w", id, err)
	}
	return &slot, nil
}

// Reserve performs the guarded available -> pending_payment transition.
// The filter re-checks status and version so that of two racing
// reservations exactly one matches; the loser gets ErrNotReservable.
func (repo *MongoSlotRepo) Reserve(ctx context.Context, slotID, bookingID string, expectedVersion int) error {
	filter := bson.M{
		"id":      slotID,
		"status":  models.SlotAvailable,
		"version": expectedVersion,
	}
	update := bson.M{
		"$set": bson.M{
			"status":           models.SlotPendingPayment,
			"currentBookingId": bookingID,
			"updatedAt":        time.Now(),
		},
		"$inc": bson.M{"version": 1},
	}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error reserving slot %s: %w", slotID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotReservable
	}
	return nil
}

func (repo *MongoSlotRepo) ConfirmBooked(ctx context.Context, slotID, bookingID string) error {
	filter := bson.M{
		"id":               slotID,
		"status":           models.SlotPendingPayment,
		"currentBookingId": bookingID,
	}
	update := bson.M{
		"$set": bson.M{
			"status":    models.SlotBooked,
			"updatedAt": time.Now(),
		},
		"$inc": bson.M{"version": 1},
	}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error confirming slot %s: %w", slotID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotReservable
	}
	return nil
}

func (repo *MongoSlotRepo) Release(ctx context.Context, slotID, bookingID string) error {
	filter := bson.M{
		"id":               slotID,
		"status":           models.SlotPendingPayment,
		"currentBookingId": bookingID,
	}
	update := bson.M{
		"$set": bson.M{
			"status":    models.SlotAvailable,
			"updatedAt": time.Now(),
		},
		"$unset": bson.M{"currentBookingId": ""},
		"$inc":   bson.M{"version": 1},
	}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error releasing slot %s: %w", slotID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotReservable
	}
	return nil
}
