// internal/app/features/workspaces/invite.go
package workspaces

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	invitestore "github.com/Yashh-Garg/Trackwise/internal/app/store/invites"
	userstore "github.com/Yashh-Garg/Trackwise/internal/app/store/users"
	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/mailer"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/timeouts"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/wsauth"
	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

// HandleInviteMember handles POST /api/workspaces/{id}/invite-member.
//
// Owner or admin only. If the invited email already belongs to an
// account that is a member, 400. Any prior invites for the same
// (email, workspace) pair are deleted before the new one is stored, so
// the newest invite always supersedes older ones. There is no unique
// index on the pair: two concurrent invites can both land, and the
// acceptance path resolves the race by reading the newest row.
func (h *Handler) HandleInviteMember(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	user := sysauth.CurrentUser(r)
	ws := h.loadWorkspace(ctx, w, r)
	if ws == nil {
		return
	}
	if !wsauth.CanManage(ws, user.ID) {
		httpjson.Error(w, http.StatusForbidden, "You don't have permission to invite members")
		return
	}

	var req inviteRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" {
		httpjson.Error(w, http.StatusBadRequest, "Email is required")
		return
	}
	if req.Role == "" {
		req.Role = models.RoleMember
	}
	if !models.ValidMemberRole(req.Role) {
		httpjson.Error(w, http.StatusBadRequest, "Invalid role")
		return
	}

	// If the email maps to an existing account, refuse when it is
	// already a member and carry the user reference in the invite.
	var invitedUser *models.User
	users := userstore.New(h.DB)
	existing, err := users.GetByEmail(ctx, req.Email)
	switch err {
	case nil:
		if ws.HasMember(existing.ID) {
			httpjson.Error(w, http.StatusBadRequest, "User already a member of this workspace")
			return
		}
		invitedUser = existing
	case userstore.ErrNotFound:
		// Inviting an email with no account yet is fine.
	default:
		h.Log.Error("invite lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	invites := invitestore.New(h.DB)
	if err := invites.DeleteForEmailAndWorkspace(ctx, req.Email, ws.ID); err != nil {
		h.Log.Error("delete prior invites failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var invitedUserID *primitive.ObjectID
	if invitedUser != nil {
		invitedUserID = &invitedUser.ID
	}
	token, expires, err := h.Invites.Sign(req.Email, ws.ID, req.Role, invitedUserID, time.Now().UTC())
	if err != nil {
		h.Log.Error("sign invite token failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	inv := models.WorkspaceInvite{
		User:        invitedUserID,
		Email:       req.Email,
		WorkspaceID: ws.ID,
		Token:       token,
		Role:        req.Role,
		ExpiresAt:   expires,
	}
	if err := invites.Create(ctx, &inv); err != nil {
		h.Log.Error("store invite failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	link := fmt.Sprintf("%s/workspace-invite/%s?tk=%s", h.FrontendURL, ws.ID.Hex(), token)
	email := mailer.BuildInviteEmail(mailer.InviteEmailData{
		SiteName:      SiteName,
		WorkspaceName: ws.Name,
		InviterName:   user.Name,
		InviteLink:    link,
		ExpiresIn:     "7 days",
	})
	email.To = req.Email
	if err := h.Mail.Send(email); err != nil {
		h.Log.Error("send invite email failed",
			zap.Error(err),
			zap.String("workspace_id", ws.ID.Hex()))
	}

	h.Log.Info("member invited",
		zap.String("workspace_id", ws.ID.Hex()),
		zap.String("role", req.Role),
		zap.String("inviter_id", user.ID.Hex()))
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Invitation sent successfully"})
}
