// internal/app/features/workspaces/acceptinvite.go
package workspaces

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	invitestore "github.com/Yashh-Garg/Trackwise/internal/app/store/invites"
	workspacestore "github.com/Yashh-Garg/Trackwise/internal/app/store/workspaces"
	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/invitetoken"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/timeouts"
	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

// HandleAcceptInviteToken handles POST /api/workspaces/accept-invite-token.
//
// Redeems an emailed invitation. The token carries the workspace, role
// and invited email; the caller must be signed in with that email
// (compared case-insensitively). The token's claims take precedence
// over the stored row for both the joining user and the role. On
// success the stored invite row is consumed; on row expiry it is left
// in place.
func (h *Handler) HandleAcceptInviteToken(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	user := sysauth.CurrentUser(r)

	var req acceptTokenRequest
	if err := httpjson.Decode(r, &req); err != nil || req.Token == "" {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	claims, err := h.Invites.Verify(req.Token)
	if err != nil {
		if err == invitetoken.ErrExpired {
			httpjson.Error(w, http.StatusUnauthorized, "Invitation has expired")
			return
		}
		httpjson.Error(w, http.StatusUnauthorized, "Invalid invitation token")
		return
	}
	if !strings.EqualFold(claims.Email, user.Email) {
		httpjson.Error(w, http.StatusForbidden, "This invitation is for a different email address. Please log in with the invited email.")
		return
	}

	// The token's embedded user id, when present, names who joins.
	memberID := user.ID
	if claims.User != nil {
		memberID = *claims.User
	}

	wsStore := workspacestore.New(h.DB)
	ws, err := wsStore.GetByID(ctx, claims.WorkspaceID)
	if err != nil {
		if err == workspacestore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "Workspace not found")
			return
		}
		h.Log.Error("accept invite load workspace failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if ws.HasMember(memberID) {
		httpjson.Error(w, http.StatusBadRequest, "User already a member of this workspace")
		return
	}

	// Find the stored row matching the token's invite, newest first.
	// Concurrent invites can leave several rows; the newest wins.
	invites := invitestore.New(h.DB)
	inv, err := invites.FindLatestForUserOrEmail(ctx, ws.ID, memberID, claims.Email)
	if err != nil {
		if err == invitestore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "Invitation not found")
			return
		}
		h.Log.Error("accept invite lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if inv.Expired(time.Now().UTC()) {
		// The row is retained; a fresh invite will supersede it.
		httpjson.Error(w, http.StatusBadRequest, "Invitation has expired")
		return
	}

	// Backfill the user reference on invites issued before the account
	// existed.
	if inv.User == nil {
		if err := invites.SetUser(ctx, inv.ID, memberID); err != nil {
			h.Log.Warn("backfill invite user failed", zap.Error(err), zap.String("invite_id", inv.ID.Hex()))
		}
	}

	// The token's role wins over the stored row's; a re-invite with a
	// different role only takes effect through its own fresh token.
	role := claims.Role
	if role == "" {
		role = inv.Role
	}
	if role == "" {
		role = models.RoleMember
	}

	members := append(ws.Members, models.Membership{
		User:     memberID,
		Role:     role,
		JoinedAt: time.Now().UTC(),
	})
	if err := wsStore.ReplaceMembers(ctx, ws.ID, members); err != nil {
		h.Log.Error("add member failed", zap.Error(err), zap.String("workspace_id", ws.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := invites.Delete(ctx, inv.ID); err != nil {
		h.Log.Warn("consume invite failed", zap.Error(err), zap.String("invite_id", inv.ID.Hex()))
	}
	h.ActLog.MemberJoined(ctx, memberID, ws.ID, ws.Name)

	h.Log.Info("invitation accepted",
		zap.String("workspace_id", ws.ID.Hex()),
		zap.String("user_id", memberID.Hex()),
		zap.String("role", role))
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Invitation accepted"})
}

// HandleAcceptGenerateInvite handles POST /api/workspaces/{id}/accept-generate-invite.
//
// Open join: any authenticated user who knows the workspace id joins as
// a member, no token required.
func (h *Handler) HandleAcceptGenerateInvite(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user := sysauth.CurrentUser(r)
	ws := h.loadWorkspace(ctx, w, r)
	if ws == nil {
		return
	}
	if ws.HasMember(user.ID) {
		httpjson.Error(w, http.StatusBadRequest, "User already a member of this workspace")
		return
	}

	members := append(ws.Members, models.Membership{
		User:     user.ID,
		Role:     models.RoleMember,
		JoinedAt: time.Now().UTC(),
	})
	store := workspacestore.New(h.DB)
	if err := store.ReplaceMembers(ctx, ws.ID, members); err != nil {
		h.Log.Error("join workspace failed", zap.Error(err), zap.String("workspace_id", ws.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.ActLog.MemberJoined(ctx, user.ID, ws.ID, ws.Name)

	h.Log.Info("joined workspace via link",
		zap.String("workspace_id", ws.ID.Hex()),
		zap.String("user_id", user.ID.Hex()))
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Invitation accepted"})
}
