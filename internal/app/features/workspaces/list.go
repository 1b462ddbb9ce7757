// internal/app/features/workspaces/list.go
package workspaces

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	workspacestore "github.com/Yashh-Garg/Trackwise/internal/app/store/workspaces"
	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/timeouts"
	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

// ServeList handles GET /api/workspaces.
//
// Returns every workspace the caller is a member of, newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user := sysauth.CurrentUser(r)

	store := workspacestore.New(h.DB)
	list, err := store.ListForUser(ctx, user.ID)
	if err != nil {
		h.Log.Error("list workspaces failed", zap.Error(err), zap.String("user_id", user.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if list == nil {
		list = []models.Workspace{}
	}
	httpjson.Write(w, http.StatusOK, list)
}
