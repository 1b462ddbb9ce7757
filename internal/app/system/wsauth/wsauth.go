// Package wsauth holds the workspace-level authorization gates. The
// gates are pure functions over a loaded Workspace so the rules can be
// tested without a database.
package wsauth

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

// CanView reports whether userID may read the workspace and its
// contents. Any member qualifies.
func CanView(w *models.Workspace, userID primitive.ObjectID) bool {
	return w.HasMember(userID)
}

// CanManage reports whether userID may change workspace settings,
// invite members, change member roles, or remove members. Owner and
// admin qualify.
func CanManage(w *models.Workspace, userID primitive.ObjectID) bool {
	role, ok := w.MemberRole(userID)
	return ok && (role == models.RoleOwner || role == models.RoleAdmin)
}

// IsOwner reports whether userID is the workspace owner. Deletion and
// ownership transfer require this, checked against the owner field
// rather than the embedded role so the two can never disagree.
func IsOwner(w *models.Workspace, userID primitive.ObjectID) bool {
	return w.Owner == userID
}

// CanContribute reports whether userID may create or edit projects and
// tasks in the workspace. Viewers are read-only.
func CanContribute(w *models.Workspace, userID primitive.ObjectID) bool {
	role, ok := w.MemberRole(userID)
	return ok && role != models.RoleViewer
}
