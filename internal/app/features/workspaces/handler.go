// internal/app/features/workspaces/handler.go
package workspaces

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/Yashh-Garg/Trackwise/internal/app/system/activitylog"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/invitetoken"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/mailer"
)

// SiteName appears in outbound invitation emails.
const SiteName = "Trackwise"

// Handler provides HTTP handlers for workspaces, membership and the
// invitation lifecycle.
type Handler struct {
	DB          *mongo.Database
	Invites     *invitetoken.Signer
	ActLog      *activitylog.Logger
	Mail        mailer.Sender
	FrontendURL string
	Log         *zap.Logger
}

// NewHandler creates a new workspaces Handler.
func NewHandler(db *mongo.Database, signer *invitetoken.Signer, actLog *activitylog.Logger, mail mailer.Sender, frontendURL string, logger *zap.Logger) *Handler {
	return &Handler{
		DB:          db,
		Invites:     signer,
		ActLog:      actLog,
		Mail:        mail,
		FrontendURL: frontendURL,
		Log:         logger,
	}
}
