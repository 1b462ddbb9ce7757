// internal/app/store/workspaces/workspacestore.go
package workspaces

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dalemusser/waffle/pantry/text"

	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

var ErrNotFound = errors.New("workspace not found")

// Store wraps the workspaces collection. Membership mutations load the
// whole document, edit the members slice in memory, and write the slice
// back with ReplaceMembers, matching the embedded-membership model.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("workspaces")}
}

// Create inserts a workspace. The caller is expected to have seeded
// Members with the owner membership.
func (s *Store) Create(ctx context.Context, w *models.Workspace) error {
	now := time.Now().UTC()
	if w.ID.IsZero() {
		w.ID = primitive.NewObjectID()
	}
	w.NameCI = text.Fold(w.Name)
	w.CreatedAt = now
	w.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, w)
	return err
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Workspace, error) {
	var w models.Workspace
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&w)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// ListForUser returns every workspace that has userID in its members
// array, newest first.
func (s *Store) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Workspace, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"members.user": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Workspace
	for cur.Next(ctx) {
		var w models.Workspace
		if err := cur.Decode(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, cur.Err()
}

// Update applies the given field set to one workspace document.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	if name, ok := set["name"].(string); ok {
		set["name_ci"] = text.Fold(name)
	}
	set["updated_at"] = time.Now().UTC()
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplaceMembers rewrites the whole members array. All membership
// changes (join, role change, removal, transfer) go through here so the
// document is the single source of truth.
func (s *Store) ReplaceMembers(ctx context.Context, id primitive.ObjectID, members []models.Membership) error {
	return s.Update(ctx, id, bson.M{"members": members})
}

// SetOwner rewrites owner and members together, for ownership transfer.
func (s *Store) SetOwner(ctx context.Context, id primitive.ObjectID, owner primitive.ObjectID, members []models.Membership) error {
	return s.Update(ctx, id, bson.M{"owner": owner, "members": members})
}

// Delete removes the workspace document itself. Dependent collections
// are cleaned up by the caller.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the workspaces collection needs.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "members.user", Value: 1}}},
		{Keys: bson.D{{Key: "owner", Value: 1}}},
		{Keys: bson.D{{Key: "name_ci", Value: 1}}},
	})
	return err
}
