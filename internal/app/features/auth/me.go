// internal/app/features/auth/me.go
package auth

import (
	"net/http"

	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
)

// ServeMe handles GET /api/auth/me.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	user := sysauth.CurrentUser(r)
	if user == nil {
		httpjson.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"user": user})
}
