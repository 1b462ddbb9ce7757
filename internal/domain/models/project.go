// internal/domain/models/project.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project statuses.
const (
	ProjectPlanning   = "Planning"
	ProjectInProgress = "In Progress"
	ProjectOnHold     = "On Hold"
	ProjectCompleted  = "Completed"
	ProjectCancelled  = "Cancelled"
)

// Project member roles within a project (distinct from workspace roles).
const (
	ProjectRoleManager     = "manager"
	ProjectRoleContributor = "contributor"
	ProjectRoleViewer      = "viewer"
)

// Project belongs to exactly one workspace. Its members must be a subset
// of the workspace's members.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WorkspaceID primitive.ObjectID `bson:"workspace_id" json:"workspace"`
	Title       string             `bson:"title" json:"title"`
	TitleCI     string             `bson:"title_ci" json:"-"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      string             `bson:"status" json:"status"`
	StartDate   *time.Time         `bson:"start_date,omitempty" json:"startDate,omitempty"`
	DueDate     *time.Time         `bson:"due_date,omitempty" json:"dueDate,omitempty"`

	Members []ProjectMember `bson:"members" json:"members"`
	Tags    []string        `bson:"tags,omitempty" json:"tags,omitempty"`

	IsArchived bool `bson:"is_archived" json:"isArchived"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// ProjectMember links a workspace member into a project with a
// project-scoped role.
type ProjectMember struct {
	User primitive.ObjectID `bson:"user" json:"user"`
	Role string             `bson:"role" json:"role"`
}

// HasMember reports whether userID is a member of the project.
func (p Project) HasMember(userID primitive.ObjectID) bool {
	for _, m := range p.Members {
		if m.User == userID {
			return true
		}
	}
	return false
}
