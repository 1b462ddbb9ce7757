// internal/app/store/tasks/taskstore.go
package tasks

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

var ErrNotFound = errors.New("task not found")

// Store wraps the tasks collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("tasks")}
}

func (s *Store) Create(ctx context.Context, t *models.Task) error {
	now := time.Now().UTC()
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	if t.Status == "" {
		t.Status = models.TaskToDo
	}
	if t.Priority == "" {
		t.Priority = models.PriorityMedium
	}
	t.CreatedAt = now
	t.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, t)
	return err
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	var t models.Task
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListForProject returns the project's non-archived tasks, newest first.
func (s *Store) ListForProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Task, error) {
	filter := bson.M{"project_id": projectID, "is_archived": false}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Task
	for cur.Next(ctx) {
		var t models.Task
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, cur.Err()
}

// ListForProjects returns every task in the given projects, archived
// included, for workspace-level aggregation.
func (s *Store) ListForProjects(ctx context.Context, projectIDs []primitive.ObjectID) ([]models.Task, error) {
	if len(projectIDs) == 0 {
		return nil, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"project_id": bson.M{"$in": projectIDs}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Task
	for cur.Next(ctx) {
		var t models.Task
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, cur.Err()
}

// ListAssignedTo returns non-archived tasks where userID is an
// assignee, across all projects, newest first.
func (s *Store) ListAssignedTo(ctx context.Context, userID primitive.ObjectID) ([]models.Task, error) {
	filter := bson.M{"assignees": userID, "is_archived": false}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Task
	for cur.Next(ctx) {
		var t models.Task
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, cur.Err()
}

// Update applies the given field set to one task document.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
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

// DeleteForProjects removes every task in the given projects, used on
// project and workspace deletion.
func (s *Store) DeleteForProjects(ctx context.Context, projectIDs []primitive.ObjectID) error {
	if len(projectIDs) == 0 {
		return nil
	}
	_, err := s.c.DeleteMany(ctx, bson.M{"project_id": bson.M{"$in": projectIDs}})
	return err
}

// EnsureIndexes creates the indexes the tasks collection needs.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "project_id", Value: 1},
			{Key: "created_at", Value: -1},
		}},
		{Keys: bson.D{{Key: "assignees", Value: 1}}},
	})
	return err
}
