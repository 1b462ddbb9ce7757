// internal/app/features/auth/routes.go
package auth

import (
	"github.com/go-chi/chi/v5"

	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
)

// Routes mounts the account routes. Everything except /me is public.
func Routes(h *Handler, authMgr *sysauth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.HandleRegister)
	r.Post("/login", h.HandleLogin)
	r.Post("/verify-email", h.HandleVerifyEmail)
	r.Post("/reset-password-request", h.HandleResetPasswordRequest)
	r.Post("/reset-password", h.HandleResetPassword)
	r.Post("/google", h.HandleGoogleSignIn)

	r.Group(func(r chi.Router) {
		r.Use(authMgr.RequireUser)
		r.Get("/me", h.ServeMe)
	})

	return r
}
