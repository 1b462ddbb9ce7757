// internal/app/features/auth/resetpassword.go
package auth

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userstore "github.com/Yashh-Garg/Trackwise/internal/app/store/users"
	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/mailer"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/timeouts"
)

// HandleResetPasswordRequest handles POST /api/auth/reset-password-request.
//
// Always answers 200 with the same message. Whether the email maps to
// an account is not disclosed.
func (h *Handler) HandleResetPasswordRequest(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var req resetRequestRequest
	if err := httpjson.Decode(r, &req); err != nil || req.Email == "" {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	store := userstore.New(h.DB)
	user, err := store.GetByEmail(ctx, req.Email)
	if err == nil && user.IsEmailVerified {
		token, signErr := h.Auth.IssueResetPasswordToken(user.ID)
		if signErr != nil {
			h.Log.Error("sign reset token failed", zap.Error(signErr))
		} else {
			email := mailer.BuildResetPasswordEmail(mailer.ResetPasswordData{
				SiteName:  SiteName,
				ResetLink: fmt.Sprintf("%s/reset-password?tk=%s", h.Cfg.FrontendURL, token),
				ExpiresIn: "15 minutes",
			})
			email.To = user.Email
			if sendErr := h.Mail.Send(email); sendErr != nil {
				h.Log.Error("send reset email failed", zap.Error(sendErr), zap.String("user_id", user.ID.Hex()))
			}
		}
	} else if err != nil && err != userstore.ErrNotFound {
		h.Log.Error("reset request lookup failed", zap.Error(err))
	}

	httpjson.Write(w, http.StatusOK, map[string]string{
		"message": "If that email is registered, a reset link has been sent.",
	})
}

// HandleResetPassword handles POST /api/auth/reset-password.
func (h *Handler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var req resetPasswordRequest
	if err := httpjson.Decode(r, &req); err != nil || req.Token == "" {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.NewPassword) < 8 {
		httpjson.Error(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}

	userID, err := h.Auth.Verify(req.Token, sysauth.PurposeResetPassword)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid or expired reset link")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		h.Log.Error("bcrypt hash failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	store := userstore.New(h.DB)
	if err := store.SetPassword(ctx, userID, string(hash)); err != nil {
		if err == userstore.ErrNotFound {
			httpjson.Error(w, http.StatusBadRequest, "Invalid or expired reset link")
			return
		}
		h.Log.Error("set password failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.Log.Info("password reset", zap.String("user_id", userID.Hex()))
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Password reset successfully"})
}
