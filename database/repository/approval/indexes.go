package approvalRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the approval_requests
// collection.
func (repo *MongoApprovalRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "interviewerId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("interviewer_status_idx"),
		},
		{
			Keys:    bson.D{{Key: "requestedDate", Value: -1}},
			Options: options.Index().SetName("requested_date_idx"),
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create approval request indexes: %w", err)
	}
	return nil
}
