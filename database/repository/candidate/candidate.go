package candidateRepo

import (
	"context"
	"errors"
	"fmt"

	"mockview/database"
	"mockview/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no candidate profile matches the lookup.
var ErrNotFound = errors.New("candidate profile not found")

// Repository is the candidate directory: profile lookup for the reservation
// precondition checks.
type Repository interface {
	FindByUserID(ctx context.Context, userID string) (*models.Candidate, error)
	GetByID(ctx context.Context, id string) (*models.Candidate, error)
	EnsureIndexes() error
}

// MongoCandidateRepo is the MongoDB-backed candidate directory.
type MongoCandidateRepo struct {
	coll *mongo.Collection
}

func NewMongoCandidateRepo() *MongoCandidateRepo {
	return &MongoCandidateRepo{coll: database.Collection("candidates")}
}

func (repo *MongoCandidateRepo) FindByUserID(ctx context.Context, userID string) (*models.Candidate, error) {
	return repo.findOne(ctx, bson.M{"userId": userID})
}

func (repo *MongoCandidateRepo) GetByID(ctx context.Context, id string) (*models.Candidate, error) {
	return repo.findOne(ctx, bson.M{"id": id})
}

func (repo *MongoCandidateRepo) findOne(ctx context.Context, filter bson.M) (*models.Candidate, error) {
	var candidate models.Candidate
	err := repo.coll.FindOne(ctx, filter).Decode(&candidate)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching candidate: %w", err)
	}
	return &candidate, nil
}
