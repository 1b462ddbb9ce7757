// internal/app/features/workspaces/get.go
package workspaces

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	userstore "github.com/Yashh-Garg/Trackwise/internal/app/store/users"
	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/timeouts"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/wsauth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeGet handles GET /api/workspaces/{id}.
//
// Membership-gated: only members may read the workspace.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user := sysauth.CurrentUser(r)
	ws := h.loadWorkspace(ctx, w, r)
	if ws == nil {
		return
	}
	if !wsauth.CanView(ws, user.ID) {
		httpjson.Error(w, http.StatusForbidden, "You are not a member of this workspace")
		return
	}
	httpjson.Write(w, http.StatusOK, ws)
}

// ServeDetails handles GET /api/workspaces/{id}/details.
//
// Returns the workspace with the members expanded to user display
// attributes. Requires authentication but, unlike ServeGet, does not
// require membership.
func (h *Handler) ServeDetails(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ws := h.loadWorkspace(ctx, w, r)
	if ws == nil {
		return
	}

	ids := make([]primitive.ObjectID, 0, len(ws.Members))
	for _, m := range ws.Members {
		ids = append(ids, m.User)
	}
	users, err := userstore.New(h.DB).GetManyByIDs(ctx, ids)
	if err != nil {
		h.Log.Error("expand members failed", zap.Error(err), zap.String("workspace_id", ws.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := detailsResponse{
		ID:          ws.ID,
		Name:        ws.Name,
		Description: ws.Description,
		Color:       ws.Color,
		Owner:       ws.Owner,
		Members:     make([]expandedMember, 0, len(ws.Members)),
		CreatedAt:   ws.CreatedAt,
		UpdatedAt:   ws.UpdatedAt,
	}
	for _, m := range ws.Members {
		em := expandedMember{Role: m.Role, JoinedAt: m.JoinedAt}
		if u, ok := users[m.User]; ok {
			em.User = u.Public()
		} else {
			// Member whose account was deleted; keep the reference.
			em.User.ID = m.User
		}
		resp.Members = append(resp.Members, em)
	}
	httpjson.Write(w, http.StatusOK, resp)
}
