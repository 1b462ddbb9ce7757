// internal/domain/models/activity.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity is an append-only record of something a user did to a
// resource. The service writes these fire-and-forget; nothing in the
// write path ever reads them back.
type Activity struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User         primitive.ObjectID `bson:"user" json:"user"`
	Action       string             `bson:"action" json:"action"`
	ResourceType string             `bson:"resource_type" json:"resourceType"`
	ResourceID   primitive.ObjectID `bson:"resource_id" json:"resourceId"`
	Details      map[string]string  `bson:"details,omitempty" json:"details,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
}
