// internal/domain/models/invite.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkspaceInvite is a pending offer of membership. User is nil when the
// invited email has no account yet; it is backfilled when the invite is
// accepted by a signed-up user. Expired rows are not purged proactively:
// they stay in place until a new invite for the same pair supersedes them.
type WorkspaceInvite struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	User        *primitive.ObjectID `bson:"user,omitempty" json:"user,omitempty"`
	Email       string              `bson:"email" json:"email"`
	WorkspaceID primitive.ObjectID  `bson:"workspace_id" json:"workspaceId"`
	Token       string              `bson:"token" json:"-"`
	Role        string              `bson:"role" json:"role"` // admin | member | viewer
	ExpiresAt   time.Time           `bson:"expires_at" json:"expiresAt"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Expired reports whether the invite's row expiry has passed at now.
func (i WorkspaceInvite) Expired(now time.Time) bool {
	return i.ExpiresAt.Before(now)
}
