package interviewerRepo

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

// ErrNotFound is returned when no interviewer profile matches the lookup.
var ErrNotFound = errors.New("interviewer profile not found")

// Repository defines data access for interviewer profiles.
type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Interviewer, error)
	FindByUserID(ctx context.Context, userID string) (*models.Interviewer, error)
	SetVerificationStatus(ctx context.Context, id string, status models.VerificationStatus) error

	// CreditBalance adds a captured payout amount to the interviewer's
	// running balance.
	CreditBalance(ctx context.Context, id string, amount float64) error

	EnsureIndexes() error
}

// MongoInterviewerRepo is the MongoDB-backed interviewer repository.
type MongoInterviewerRepo struct {
	coll *mongo.Collection
}

func NewMongoInterviewerRepo() *MongoInterviewerRepo {
	return &MongoInterviewerRepo{coll: database.Collection("interviewers")}
}

func (repo *MongoInterviewerRepo) GetByID(ctx context.Context, id string) (*models.Interviewer, error) {
	return repo.findOne(ctx, bson.M{"id": id})
}

func (repo *MongoInterviewerRepo) FindByUserID(ctx context.Context, userID string) (*models.Interviewer, error) {
	return repo.findOne(ctx, bson.M{"userId": userID})
}

func (repo *MongoInterviewerRepo) findOne(ctx context.Context, filter bson.M) (*models.Interviewer, error) {
	var interviewer models.Interviewer
	err := repo.coll.FindOne(ctx, filter).Decode(&interviewer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching interviewer: %w", err)
	}
	return &interviewer, nil
}

func (repo *MongoInterviewerRepo) SetVerificationStatus(ctx context.Context, id string, status models.VerificationStatus) error {
	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"verificationStatus": status, "updatedAt": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating verification status for interviewer %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *MongoInterviewerRepo) CreditBalance(ctx context.Context, id string, amount float64) error {
	filter := bson.M{"id": id}
	update := bson.M{
		"$inc": bson.M{"totalBalance": amount},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error crediting balance for interviewer %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
