// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Auth providers for User.AuthProvider.
const (
	AuthProviderLocal  = "local"
	AuthProviderGoogle = "google"
)

// User represents an account. Workspace membership is not embedded here;
// it lives in the members array of each Workspace document.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email      string             `bson:"email" json:"email"` // stored lowercase, unique
	EmailCI    string             `bson:"email_ci" json:"-"`
	Name       string             `bson:"name" json:"name"`
	NameCI     string             `bson:"name_ci" json:"-"`

	// Password is the bcrypt hash. Empty for Google accounts.
	// Never serialized to JSON.
	Password string `bson:"password,omitempty" json:"-"`

	AuthProvider    string     `bson:"auth_provider" json:"-"` // local | google
	ProfilePicture  string     `bson:"profile_picture,omitempty" json:"profilePicture,omitempty"`
	IsEmailVerified bool       `bson:"is_email_verified" json:"isEmailVerified"`
	LastLogin       *time.Time `bson:"last_login,omitempty" json:"lastLogin,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Public returns a copy safe to embed in API responses alongside other
// users' data (display attributes only).
func (u User) Public() UserSummary {
	return UserSummary{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
	}
}

// UserSummary is the display projection of a user used when expanding
// member references on read paths.
type UserSummary struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	ProfilePicture string             `bson:"profile_picture,omitempty" json:"profilePicture,omitempty"`
}
