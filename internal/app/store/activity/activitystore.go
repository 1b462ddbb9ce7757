// internal/app/store/activity/activitystore.go
package activity

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

// Store wraps the activities collection. Append-only; there is no
// update path.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("activities")}
}

// Insert appends one activity record.
func (s *Store) Insert(ctx context.Context, a *models.Activity) error {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := s.c.InsertOne(ctx, a)
	return err
}

// ListForResource returns the newest activity records for one resource.
func (s *Store) ListForResource(ctx context.Context, resourceID primitive.ObjectID, limit int64) ([]models.Activity, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{"resource_id": resourceID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Activity
	for cur.Next(ctx) {
		var a models.Activity
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, cur.Err()
}

// ListForUser returns the newest activity records by one user.
func (s *Store) ListForUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.Activity, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Activity
	for cur.Next(ctx) {
		var a models.Activity
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, cur.Err()
}

// DeleteForResources removes activity for the given resources, used on
// workspace deletion.
func (s *Store) DeleteForResources(ctx context.Context, resourceIDs []primitive.ObjectID) error {
	if len(resourceIDs) == 0 {
		return nil
	}
	_, err := s.c.DeleteMany(ctx, bson.M{"resource_id": bson.M{"$in": resourceIDs}})
	return err
}

// EnsureIndexes creates the indexes the activities collection needs.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "resource_id", Value: 1},
			{Key: "created_at", Value: -1},
		}},
		{Keys: bson.D{
			{Key: "user", Value: 1},
			{Key: "created_at", Value: -1},
		}},
	})
	return err
}
