package approvalRepo

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

// ErrNotFound is returned when no approval request matches the lookup.
var ErrNotFound = errors.New("approval request not found")

// ErrInvalidTransition is returned when a guarded status transition matched
// no document: the request is no longer pending.
var ErrInvalidTransition = errors.New("approval request is not pending")

// Repository defines data access for interviewer verification requests.
type Repository interface {
	Create(ctx context.Context, req *models.ApprovalRequest) error
	GetByID(ctx context.Context, id string) (*models.ApprovalRequest, error)
	FindPendingByInterviewer(ctx context.Context, interviewerID string) (*models.ApprovalRequest, error)

	// Transition moves a pending request to a terminal status. Guarded on
	// status pending so a request cannot be processed twice.
	Transition(ctx context.Context, requestID string, to models.ApprovalStatus) error

	EnsureIndexes() error
}

// MongoApprovalRepo is the MongoDB-backed approval request repository.
type MongoApprovalRepo struct {
	coll *mongo.Collection
}

func NewMongoApprovalRepo() *MongoApprovalRepo {
	return &MongoApprovalRepo{coll: database.Collection("approval_requests")}
}

func (repo *MongoApprovalRepo) Create(ctx context.Context, req *models.ApprovalRequest) error {
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now
	if req.Status == "" {
		req.Status = models.ApprovalPending
	}
	if _, err := repo.coll.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("error creating approval request: %w", err)
	}
	return nil
}

func (repo *MongoApprovalRepo) GetByID(ctx context.Context, id string) (*models.ApprovalRequest, error) {
	var req models.ApprovalRequest
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching approval request %s: %w", id, err)
	}
	return &req, nil
}

func (repo *MongoApprovalRepo) FindPendingByInterviewer(ctx context.Context, interviewerID string) (*models.ApprovalRequest, error) {
	var req models.ApprovalRequest
	filter := bson.M{"interviewerId": interviewerID, "status": models.ApprovalPending}
	err := repo.coll.FindOne(ctx, filter).Decode(&req)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching pending approval request: %w", err)
	}
	return &req, nil
}

func (repo *MongoApprovalRepo) Transition(ctx context.Context, requestID string, to models.ApprovalStatus) error {
	filter := bson.M{"id": requestID, "status": models.ApprovalPending}
	update := bson.M{"$set": bson.M{"status": to, "updatedAt": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error transitioning approval request %s: %w", requestID, err)
	}
	if res.MatchedCount == 0 {
		return ErrInvalidTransition
	}
	return nil
}
