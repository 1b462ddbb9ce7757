// internal/app/features/projects/handler.go
package projects

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/Yashh-Garg/Trackwise/internal/app/system/activitylog"
)

// Handler provides HTTP handlers for project management.
type Handler struct {
	DB     *mongo.Database
	ActLog *activitylog.Logger
	Log    *zap.Logger
}

// NewHandler creates a new projects Handler.
func NewHandler(db *mongo.Database, actLog *activitylog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		ActLog: actLog,
		Log:    logger,
	}
}
