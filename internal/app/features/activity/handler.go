// internal/app/features/activity/handler.go
package activity

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides HTTP handlers for reading activity feeds.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler creates a new activity Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:  db,
		Log: logger,
	}
}
