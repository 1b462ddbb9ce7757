// internal/app/features/auth/handler.go
package auth

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/mailer"
)

// SiteName appears in outbound email subjects and bodies.
const SiteName = "Trackwise"

// Config holds the feature's external configuration.
type Config struct {
	// FrontendURL is the SPA origin used to build the links embedded
	// in verification and reset emails.
	FrontendURL string

	// Google OAuth credentials for the SPA sign-in code exchange.
	GoogleClientID     string
	GoogleClientSecret string
}

// Handler provides HTTP handlers for account management and sign-in.
type Handler struct {
	DB   *mongo.Database
	Auth *sysauth.Manager
	Mail mailer.Sender
	Cfg  Config
	Log  *zap.Logger
}

// NewHandler creates a new auth Handler.
func NewHandler(db *mongo.Database, authMgr *sysauth.Manager, mail mailer.Sender, cfg Config, logger *zap.Logger) *Handler {
	return &Handler{
		DB:   db,
		Auth: authMgr,
		Mail: mail,
		Cfg:  cfg,
		Log:  logger,
	}
}
