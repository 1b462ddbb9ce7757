// internal/app/features/auth/verifyemail.go
package auth

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	userstore "github.com/Yashh-Garg/Trackwise/internal/app/store/users"
	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/timeouts"
)

// HandleVerifyEmail handles POST /api/auth/verify-email.
//
// Redeems the token from the verification link. Verifying an already
// verified account is a no-op success so a double-clicked link does not
// show an error.
func (h *Handler) HandleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var req tokenRequest
	if err := httpjson.Decode(r, &req); err != nil || req.Token == "" {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, err := h.Auth.Verify(req.Token, sysauth.PurposeVerifyEmail)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid or expired verification link")
		return
	}

	store := userstore.New(h.DB)
	if err := store.MarkEmailVerified(ctx, userID); err != nil {
		if err == userstore.ErrNotFound {
			httpjson.Error(w, http.StatusBadRequest, "Invalid or expired verification link")
			return
		}
		h.Log.Error("mark email verified failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.Log.Info("email verified", zap.String("user_id", userID.Hex()))
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Email verified successfully"})
}
