// internal/domain/models/workspace.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workspace member roles, from most to least privileged.
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
	RoleViewer = "viewer"
)

// ValidMemberRole reports whether role is an assignable (non-owner) role.
// Owner is only ever assigned at workspace creation.
func ValidMemberRole(role string) bool {
	switch role {
	case RoleAdmin, RoleMember, RoleViewer:
		return true
	}
	return false
}

// Workspace is the top-level tenant container. Membership is embedded:
// every membership change rewrites the members array on the workspace
// document, which keeps the one-user-one-membership invariant checkable
// in a single place.
type Workspace struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	NameCI      string             `bson:"name_ci" json:"-"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Color       string             `bson:"color,omitempty" json:"color,omitempty"`

	Owner   primitive.ObjectID `bson:"owner" json:"owner"`
	Members []Membership       `bson:"members" json:"members"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Membership is a (user, role, joined-at) tuple embedded in a Workspace.
type Membership struct {
	User     primitive.ObjectID `bson:"user" json:"user"`
	Role     string             `bson:"role" json:"role"` // owner | admin | member | viewer
	JoinedAt time.Time          `bson:"joined_at" json:"joinedAt"`
}

// MemberRole returns the role of userID in the workspace and whether the
// user is a member at all.
func (w Workspace) MemberRole(userID primitive.ObjectID) (string, bool) {
	for _, m := range w.Members {
		if m.User == userID {
			return m.Role, true
		}
	}
	return "", false
}

// HasMember reports whether userID appears in the members array.
func (w Workspace) HasMember(userID primitive.ObjectID) bool {
	_, ok := w.MemberRole(userID)
	return ok
}
