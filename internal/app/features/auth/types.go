// internal/app/features/auth/types.go
package auth

import "github.com/Yashh-Garg/Trackwise/internal/domain/models"

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse carries the bearer token the SPA stores for subsequent
// requests.
type loginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    models.User `json:"user"`
}

type tokenRequest struct {
	Token string `json:"token"`
}

type resetRequestRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

type googleSignInRequest struct {
	// Code is the authorization code the SPA obtained from Google's
	// consent flow with the postmessage redirect.
	Code string `json:"code"`
}
