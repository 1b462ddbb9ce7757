// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	activitystore "github.com/Yashh-Garg/Trackwise/internal/app/store/activity"
	invitestore "github.com/Yashh-Garg/Trackwise/internal/app/store/invites"
	projectstore "github.com/Yashh-Garg/Trackwise/internal/app/store/projects"
	taskstore "github.com/Yashh-Garg/Trackwise/internal/app/store/tasks"
	userstore "github.com/Yashh-Garg/Trackwise/internal/app/store/users"
	workspacestore "github.com/Yashh-Garg/Trackwise/internal/app/store/workspaces"
)

// ConnectDB establishes the MongoDB connection and bundles it into DBDeps.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return DBDeps{}, fmt.Errorf("ping MongoDB: %w", err)
	}

	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))
	return DBDeps{
		TrackwiseMongoClient:   client,
		TrackwiseMongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the indexes every collection needs.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.TrackwiseMongoDatabase
	for name, ensure := range map[string]func(context.Context) error{
		"users":             userstore.New(db).EnsureIndexes,
		"workspaces":        workspacestore.New(db).EnsureIndexes,
		"workspace_invites": invitestore.New(db).EnsureIndexes,
		"projects":          projectstore.New(db).EnsureIndexes,
		"tasks":             taskstore.New(db).EnsureIndexes,
		"activities":        activitystore.New(db).EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			return fmt.Errorf("ensure indexes for %s: %w", name, err)
		}
		logger.Debug("ensured indexes", zap.String("collection", name))
	}
	return nil
}
