// internal/domain/models/task.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task statuses.
const (
	TaskToDo       = "To Do"
	TaskInProgress = "In Progress"
	TaskDone       = "Done"
)

// Task priorities.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Task belongs to exactly one project.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProjectID   primitive.ObjectID `bson:"project_id" json:"project"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      string             `bson:"status" json:"status"`
	Priority    string             `bson:"priority" json:"priority"`

	Assignees []primitive.ObjectID `bson:"assignees,omitempty" json:"assignees,omitempty"`
	Watchers  []primitive.ObjectID `bson:"watchers,omitempty" json:"watchers,omitempty"`

	DueDate    *time.Time `bson:"due_date,omitempty" json:"dueDate,omitempty"`
	IsArchived bool       `bson:"is_archived" json:"isArchived"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsWatcher reports whether userID is watching the task.
func (t Task) IsWatcher(userID primitive.ObjectID) bool {
	for _, w := range t.Watchers {
		if w == userID {
			return true
		}
	}
	return false
}
