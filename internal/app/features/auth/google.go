// internal/app/features/auth/google.go
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	userstore "github.com/Yashh-Garg/Trackwise/internal/app/store/users"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/timeouts"
	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

// oauth2Config returns the Google OAuth2 configuration for the SPA
// code flow. The SPA runs the consent screen itself and posts us the
// resulting authorization code, so the redirect is "postmessage".
func (h *Handler) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.Cfg.GoogleClientID,
		ClientSecret: h.Cfg.GoogleClientSecret,
		RedirectURL:  "postmessage",
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// googleUserInfo represents user info returned from Google.
type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// fetchGoogleUserInfo retrieves user information from Google's userinfo endpoint.
func fetchGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))

	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}

	return &info, nil
}

// HandleGoogleSignIn handles POST /api/auth/google.
//
// Exchanges the SPA's authorization code, fetches the Google profile,
// and signs the user in. First-time sign-ins create an account; Google
// vouches for the email so it is marked verified immediately.
func (h *Handler) HandleGoogleSignIn(w http.ResponseWriter, r *http.Request) {
	if h.Cfg.GoogleClientID == "" || h.Cfg.GoogleClientSecret == "" {
		httpjson.Error(w, http.StatusBadRequest, "Google sign-in is not configured")
		return
	}

	var req googleSignInRequest
	if err := httpjson.Decode(r, &req); err != nil || req.Code == "" {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.oauth2Config().Exchange(r.Context(), req.Code)
	if err != nil {
		h.Log.Warn("google code exchange failed", zap.Error(err))
		httpjson.Error(w, http.StatusBadRequest, "Google sign-in failed")
		return
	}

	googleUser, err := fetchGoogleUserInfo(r.Context(), token)
	if err != nil {
		h.Log.Error("fetch google user info failed", zap.Error(err))
		httpjson.Error(w, http.StatusBadRequest, "Google sign-in failed")
		return
	}
	if googleUser.Email == "" || !googleUser.EmailVerified {
		httpjson.Error(w, http.StatusBadRequest, "Google account email is not verified")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := userstore.New(h.DB)
	user, err := store.GetByEmail(ctx, googleUser.Email)
	switch err {
	case nil:
		// Existing account, local or Google.
	case userstore.ErrNotFound:
		user = &models.User{
			Name:            googleUser.Name,
			Email:           googleUser.Email,
			AuthProvider:    models.AuthProviderGoogle,
			ProfilePicture:  googleUser.Picture,
			IsEmailVerified: true,
		}
		if err := store.Create(ctx, user); err != nil {
			// A concurrent first sign-in may have just created the
			// account; fall back to reading it.
			if err == userstore.ErrDuplicate {
				user, err = store.GetByEmail(ctx, googleUser.Email)
			}
			if err != nil {
				h.Log.Error("create google user failed", zap.Error(err))
				httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
				return
			}
		}
	default:
		h.Log.Error("google sign-in lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	accessToken, err := h.Auth.IssueAccessToken(user.ID)
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

	h.Log.Info("user logged in via Google", zap.String("user_id", user.ID.Hex()))
	httpjson.Write(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   accessToken,
		User:    *user,
	})
}
