// internal/app/store/projects/projectstore.go
package projects

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

var ErrNotFound = errors.New("project not found")

// Store wraps the projects collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("projects")}
}

func (s *Store) Create(ctx context.Context, p *models.Project) error {
	now := time.Now().UTC()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.Status == "" {
		p.Status = models.ProjectPlanning
	}
	p.TitleCI = text.Fold(p.Title)
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, p)
	return err
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var p models.Project
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListForWorkspace returns the workspace's non-archived projects,
// newest first.
func (s *Store) ListForWorkspace(ctx context.Context, workspaceID primitive.ObjectID) ([]models.Project, error) {
	filter := bson.M{"workspace_id": workspaceID, "is_archived": false}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Project
	for cur.Next(ctx) {
		var p models.Project
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}

// ListAllForWorkspace returns every project in the workspace, archived
// included, newest first. Used for workspace-level aggregation.
func (s *Store) ListAllForWorkspace(ctx context.Context, workspaceID primitive.ObjectID) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"workspace_id": workspaceID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Project
	for cur.Next(ctx) {
		var p models.Project
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}

// IDsForWorkspace returns just the _ids of a workspace's projects,
// archived included, for cascade deletes and task scoping.
func (s *Store) IDsForWorkspace(ctx context.Context, workspaceID primitive.ObjectID) ([]primitive.ObjectID, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cur, err := s.c.Find(ctx, bson.M{"workspace_id": workspaceID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var ids []primitive.ObjectID
	for cur.Next(ctx) {
		var row struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		ids = append(ids, row.ID)
	}
	return ids, cur.Err()
}

// Update applies the given field set to one project document.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	if title, ok := set["title"].(string); ok {
		set["title_ci"] = text.Fold(title)
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

// DeleteForWorkspace removes every project in the workspace, used on
// workspace deletion.
func (s *Store) DeleteForWorkspace(ctx context.Context, workspaceID primitive.ObjectID) error {
	_, err := s.c.DeleteMany(ctx, bson.M{"workspace_id": workspaceID})
	return err
}

// EnsureIndexes creates the indexes the projects collection needs.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "workspace_id", Value: 1},
			{Key: "created_at", Value: -1},
		}},
		{Keys: bson.D{{Key: "members.user", Value: 1}}},
	})
	return err
}
