// internal/app/features/workspaces/types.go
package workspaces

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

type createRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type updateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

type inviteRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type acceptTokenRequest struct {
	Token string `json:"token"`
}

type roleRequest struct {
	Role string `json:"role"`
}

type transferRequest struct {
	NewOwnerID string `json:"newOwnerId"`
}

// expandedMember is the read-side join of a membership with the user's
// display attributes.
type expandedMember struct {
	User     models.UserSummary `json:"user"`
	Role     string             `json:"role"`
	JoinedAt time.Time          `json:"joinedAt"`
}

// detailsResponse is a workspace with members expanded.
type detailsResponse struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Color       string             `json:"color,omitempty"`
	Owner       primitive.ObjectID `json:"owner"`
	Members     []expandedMember   `json:"members"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}
