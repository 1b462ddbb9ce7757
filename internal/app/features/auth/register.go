// internal/app/features/auth/register.go
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userstore "github.com/Yashh-Garg/Trackwise/internal/app/store/users"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/mailer"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/timeouts"
	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

// HandleRegister handles POST /api/auth/register.
//
// Creates an unverified local account and emails a verification link.
// Login is refused until the link is redeemed.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var req registerRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" {
		httpjson.Error(w, http.StatusBadRequest, "Name and email are required")
		return
	}
	if len(req.Password) < 8 {
		httpjson.Error(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Log.Error("bcrypt hash failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		Password:     string(hash),
		AuthProvider: models.AuthProviderLocal,
	}
	store := userstore.New(h.DB)
	if err := store.Create(ctx, &user); err != nil {
		if err == userstore.ErrDuplicate {
			httpjson.Error(w, http.StatusBadRequest, "Email address already in use")
			return
		}
		h.Log.Error("create user failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.sendVerificationEmail(&user)

	h.Log.Info("user registered", zap.String("user_id", user.ID.Hex()))
	httpjson.Write(w, http.StatusCreated, map[string]string{
		"message": "Verification email sent to your email. Please check and verify your account.",
	})
}

// sendVerificationEmail signs a short-lived token and emails the
// verification link. Failures are logged, not surfaced: the account
// exists and the user can request a fresh link by registering again.
func (h *Handler) sendVerificationEmail(user *models.User) {
	token, err := h.Auth.IssueVerifyEmailToken(user.ID)
	if err != nil {
		h.Log.Error("sign verification token failed", zap.Error(err))
		return
	}
	email := mailer.BuildVerifyEmail(mailer.VerifyEmailData{
		SiteName:   SiteName,
		VerifyLink: fmt.Sprintf("%s/verify-email?tk=%s", h.Cfg.FrontendURL, token),
		ExpiresIn:  "1 hour",
	})
	email.To = user.Email
	if err := h.Mail.Send(email); err != nil {
		h.Log.Error("send verification email failed",
			zap.Error(err),
			zap.String("user_id", user.ID.Hex()))
	}
}
