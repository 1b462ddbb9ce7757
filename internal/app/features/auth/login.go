// internal/app/features/auth/login.go
package auth

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userstore "github.com/Yashh-Garg/Trackwise/internal/app/store/users"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/timeouts"
	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

// HandleLogin handles POST /api/auth/login.
//
// Unknown email and wrong password produce the same message so the
// endpoint cannot be used to enumerate accounts.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	store := userstore.New(h.DB)
	user, err := store.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == userstore.ErrNotFound {
			httpjson.Error(w, http.StatusBadRequest, "Invalid email or password")
			return
		}
		h.Log.Error("login lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if user.AuthProvider != models.AuthProviderLocal || user.Password == "" {
		httpjson.Error(w, http.StatusBadRequest, "This account uses Google sign-in")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid email or password")
		return
	}
	if !user.IsEmailVerified {
		httpjson.Error(w, http.StatusBadRequest, "Email not verified. Please check your email and verify your account.")
		return
	}

	token, err := h.Auth.IssueAccessToken(user.ID)
	if err != nil {
		h.Log.Error("sign access token failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	now := time.Now().UTC()
	if err := store.SetLastLogin(ctx, user.ID, now); err != nil {
		h.Log.Warn("set last login failed", zap.Error(err), zap.String("user_id", user.ID.Hex()))
	}
	user.LastLogin = &now

	h.Log.Info("user logged in", zap.String("user_id", user.ID.Hex()))
	httpjson.Write(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   token,
		User:    *user,
	})
}
