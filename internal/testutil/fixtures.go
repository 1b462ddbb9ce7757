package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a verified local-auth test user.
func (f *Fixtures) CreateUser(ctx context.Context, name, email string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:              primitive.NewObjectID(),
		Name:            name,
		NameCI:          text.Fold(name),
		Email:           email,
		EmailCI:         text.Fold(email),
		AuthProvider:    models.AuthProviderLocal,
		IsEmailVerified: true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateWorkspace creates a workspace owned by ownerID, with the owner
// as its sole member.
func (f *Fixtures) CreateWorkspace(ctx context.Context, name string, ownerID primitive.ObjectID) models.Workspace {
	f.t.Helper()

	now := time.Now().UTC()
	ws := models.Workspace{
		ID:     primitive.NewObjectID(),
		Name:   name,
		NameCI: text.Fold(name),
		Owner:  ownerID,
		Members: []models.Membership{{
			User:     ownerID,
			Role:     models.RoleOwner,
			JoinedAt: now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("workspaces").InsertOne(ctx, ws); err != nil {
		f.t.Fatalf("failed to create test workspace: %v", err)
	}
	return ws
}

// AddMember appends a membership to an existing workspace document.
func (f *Fixtures) AddMember(ctx context.Context, wsID, userID primitive.ObjectID, role string) {
	f.t.Helper()

	m := models.Membership{User: userID, Role: role, JoinedAt: time.Now().UTC()}
	_, err := f.db.Collection("workspaces").UpdateByID(ctx, wsID,
		map[string]interface{}{"$push": map[string]interface{}{"members": m}})
	if err != nil {
		f.t.Fatalf("failed to add test member: %v", err)
	}
}

// CreateInvite inserts a pending invite row.
func (f *Fixtures) CreateInvite(ctx context.Context, email string, wsID primitive.ObjectID, role, token string, expiresAt time.Time) models.WorkspaceInvite {
	f.t.Helper()

	now := time.Now().UTC()
	inv := models.WorkspaceInvite{
		ID:          primitive.NewObjectID(),
		Email:       email,
		WorkspaceID: wsID,
		Token:       token,
		Role:        role,
		ExpiresAt:   expiresAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("workspace_invites").InsertOne(ctx, inv); err != nil {
		f.t.Fatalf("failed to create test invite: %v", err)
	}
	return inv
}

// CreateProject creates a project in the workspace with managerID as
// project manager.
func (f *Fixtures) CreateProject(ctx context.Context, title string, wsID, managerID primitive.ObjectID) models.Project {
	f.t.Helper()

	now := time.Now().UTC()
	proj := models.Project{
		ID:          primitive.NewObjectID(),
		WorkspaceID: wsID,
		Title:       title,
		TitleCI:     text.Fold(title),
		Status:      models.ProjectPlanning,
		Members:     []models.ProjectMember{{User: managerID, Role: models.ProjectRoleManager}},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("projects").InsertOne(ctx, proj); err != nil {
		f.t.Fatalf("failed to create test project: %v", err)
	}
	return proj
}

// CreateTask creates a task in the project.
func (f *Fixtures) CreateTask(ctx context.Context, title string, projectID primitive.ObjectID) models.Task {
	f.t.Helper()

	now := time.Now().UTC()
	task := models.Task{
		ID:        primitive.NewObjectID(),
		ProjectID: projectID,
		Title:     title,
		Status:    models.TaskToDo,
		Priority:  models.PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("tasks").InsertOne(ctx, task); err != nil {
		f.t.Fatalf("failed to create test task: %v", err)
	}
	return task
}
