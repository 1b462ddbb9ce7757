// internal/app/store/invites/invitestore.go
package invites

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

var ErrNotFound = errors.New("invite not found")

// Store wraps the workspace_invites collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("workspace_invites")}
}

// Create inserts a new invite row.
func (s *Store) Create(ctx context.Context, inv *models.WorkspaceInvite) error {
	now := time.Now().UTC()
	if inv.ID.IsZero() {
		inv.ID = primitive.NewObjectID()
	}
	inv.Email = strings.ToLower(strings.TrimSpace(inv.Email))
	inv.CreatedAt = now
	inv.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, inv)
	return err
}

// DeleteForEmailAndWorkspace removes every prior invite for the
// (email, workspace) pair. Issuing a fresh invite always supersedes any
// older ones, expired or not.
func (s *Store) DeleteForEmailAndWorkspace(ctx context.Context, email string, workspaceID primitive.ObjectID) error {
	_, err := s.c.DeleteMany(ctx, bson.M{
		"email":        strings.ToLower(strings.TrimSpace(email)),
		"workspace_id": workspaceID,
	})
	return err
}

// FindLatestForUserOrEmail returns the newest invite for the workspace
// matching either the user reference or the email, preferring the most
// recently created row when several exist.
func (s *Store) FindLatestForUserOrEmail(ctx context.Context, workspaceID primitive.ObjectID, userID primitive.ObjectID, email string) (*models.WorkspaceInvite, error) {
	filter := bson.M{
		"workspace_id": workspaceID,
		"$or": []bson.M{
			{"user": userID},
			{"email": strings.ToLower(strings.TrimSpace(email))},
		},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	var inv models.WorkspaceInvite
	err := s.c.FindOne(ctx, filter, opts).Decode(&inv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// SetUser backfills the user reference on an invite that was issued to
// an email before the account existed.
func (s *Store) SetUser(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"user":       userID,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes one invite row.
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

// DeleteForWorkspace removes every invite belonging to a workspace,
// used on workspace deletion.
func (s *Store) DeleteForWorkspace(ctx context.Context, workspaceID primitive.ObjectID) error {
	_, err := s.c.DeleteMany(ctx, bson.M{"workspace_id": workspaceID})
	return err
}

// EnsureIndexes creates the indexes the invites collection needs.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "workspace_id", Value: 1},
			{Key: "email", Value: 1},
		}},
		{Keys: bson.D{
			{Key: "workspace_id", Value: 1},
			{Key: "user", Value: 1},
		}},
	})
	return err
}
