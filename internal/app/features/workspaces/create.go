// internal/app/features/workspaces/create.go
package workspaces

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	workspacestore "github.com/Yashh-Garg/Trackwise/internal/app/store/workspaces"
	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/htmlsanitize"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/timeouts"
	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

// HandleCreate handles POST /api/workspaces.
//
// The creator becomes owner and the sole initial member.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user := sysauth.CurrentUser(r)

	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		httpjson.Error(w, http.StatusBadRequest, "Workspace name is required")
		return
	}

	ws := models.Workspace{
		Name:        req.Name,
		Description: htmlsanitize.Clean(req.Description),
		Color:       req.Color,
		Owner:       user.ID,
		Members: []models.Membership{{
			User:     user.ID,
			Role:     models.RoleOwner,
			JoinedAt: time.Now().UTC(),
		}},
	}
	store := workspacestore.New(h.DB)
	if err := store.Create(ctx, &ws); err != nil {
		h.Log.Error("create workspace failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.ActLog.WorkspaceCreated(ctx, user.ID, ws.ID, ws.Name)

	h.Log.Info("workspace created",
		zap.String("workspace_id", ws.ID.Hex()),
		zap.String("owner_id", user.ID.Hex()))
	httpjson.Write(w, http.StatusCreated, ws)
}
