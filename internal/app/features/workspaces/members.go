// internal/app/features/workspaces/members.go
package workspaces

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	workspacestore "github.com/Yashh-Garg/Trackwise/internal/app/store/workspaces"
	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/timeouts"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/wsauth"
	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

// HandleUpdateMemberRole handles PUT /api/workspaces/{id}/members/{memberId}/role.
//
// Owner or admin only. The owner's role cannot be changed here; use
// ownership transfer.
func (h *Handler) HandleUpdateMemberRole(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user := sysauth.CurrentUser(r)
	ws := h.loadWorkspace(ctx, w, r)
	if ws == nil {
		return
	}
	if !wsauth.CanManage(ws, user.ID) {
		httpjson.Error(w, http.StatusForbidden, "You don't have permission to update member roles")
		return
	}
	memberID, ok := urlObjectID(w, r, "memberId")
	if !ok {
		return
	}

	var req roleRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !models.ValidMemberRole(req.Role) {
		httpjson.Error(w, http.StatusBadRequest, "Invalid role")
		return
	}
	if memberID == ws.Owner {
		httpjson.Error(w, http.StatusBadRequest, "Cannot change the workspace owner's role")
		return
	}

	found := false
	members := make([]models.Membership, len(ws.Members))
	copy(members, ws.Members)
	for i := range members {
		if members[i].User == memberID {
			members[i].Role = req.Role
			found = true
			break
		}
	}
	if !found {
		httpjson.Error(w, http.StatusNotFound, "Member not found in this workspace")
		return
	}

	store := workspacestore.New(h.DB)
	if err := store.ReplaceMembers(ctx, ws.ID, members); err != nil {
		h.Log.Error("update member role failed", zap.Error(err), zap.String("workspace_id", ws.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.ActLog.MemberRoleUpdated(ctx, user.ID, ws.ID, memberID, req.Role)
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Member role updated"})
}

// HandleRemoveMember handles DELETE /api/workspaces/{id}/members/{memberId}.
//
// Owner or admin only, self-removal included. The owner can never be
// removed.
func (h *Handler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user := sysauth.CurrentUser(r)
	ws := h.loadWorkspace(ctx, w, r)
	if ws == nil {
		return
	}
	if !wsauth.CanManage(ws, user.ID) {
		httpjson.Error(w, http.StatusForbidden, "You don't have permission to remove members")
		return
	}
	memberID, ok := urlObjectID(w, r, "memberId")
	if !ok {
		return
	}
	if memberID == ws.Owner {
		httpjson.Error(w, http.StatusBadRequest, "Cannot remove the workspace owner")
		return
	}

	members := ws.Members[:0:0]
	found := false
	for _, m := range ws.Members {
		if m.User == memberID {
			found = true
			continue
		}
		members = append(members, m)
	}
	if !found {
		httpjson.Error(w, http.StatusNotFound, "Member not found in this workspace")
		return
	}

	store := workspacestore.New(h.DB)
	if err := store.ReplaceMembers(ctx, ws.ID, members); err != nil {
		h.Log.Error("remove member failed", zap.Error(err), zap.String("workspace_id", ws.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.ActLog.MemberRemoved(ctx, user.ID, ws.ID, memberID)
	ws.Members = members
	httpjson.Write(w, http.StatusOK, map[string]any{
		"message":   "Member removed from workspace",
		"workspace": ws,
	})
}

// HandleTransferOwnership handles PUT /api/workspaces/{id}/transfer-ownership.
//
// Owner only. The new owner must already be a member; the old owner
// stays on as admin.
func (h *Handler) HandleTransferOwnership(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user := sysauth.CurrentUser(r)
	ws := h.loadWorkspace(ctx, w, r)
	if ws == nil {
		return
	}
	if !wsauth.IsOwner(ws, user.ID) {
		httpjson.Error(w, http.StatusForbidden, "Only the workspace owner can transfer ownership")
		return
	}

	var req transferRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	newOwnerID, err := primitive.ObjectIDFromHex(req.NewOwnerID)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid newOwnerId")
		return
	}
	if newOwnerID == ws.Owner {
		httpjson.Error(w, http.StatusBadRequest, "User is already the workspace owner")
		return
	}
	if !ws.HasMember(newOwnerID) {
		httpjson.Error(w, http.StatusBadRequest, "New owner must be a member of the workspace")
		return
	}

	members := make([]models.Membership, len(ws.Members))
	copy(members, ws.Members)
	for i := range members {
		switch members[i].User {
		case newOwnerID:
			members[i].Role = models.RoleOwner
		case ws.Owner:
			members[i].Role = models.RoleAdmin
		}
	}

	store := workspacestore.New(h.DB)
	if err := store.SetOwner(ctx, ws.ID, newOwnerID, members); err != nil {
		h.Log.Error("transfer ownership failed", zap.Error(err), zap.String("workspace_id", ws.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.ActLog.OwnershipTransferred(ctx, user.ID, ws.ID, newOwnerID)
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Ownership transferred successfully"})
}
