// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	activityfeature "github.com/Yashh-Garg/Trackwise/internal/app/features/activity"
	authfeature "github.com/Yashh-Garg/Trackwise/internal/app/features/auth"
	healthfeature "github.com/Yashh-Garg/Trackwise/internal/app/features/health"
	projectsfeature "github.com/Yashh-Garg/Trackwise/internal/app/features/projects"
	tasksfeature "github.com/Yashh-Garg/Trackwise/internal/app/features/tasks"
	workspacesfeature "github.com/Yashh-Garg/Trackwise/internal/app/features/workspaces"
	activitystore "github.com/Yashh-Garg/Trackwise/internal/app/store/activity"
	userstore "github.com/Yashh-Garg/Trackwise/internal/app/store/users"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/activitylog"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/invitetoken"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/mailer"
	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. Trackwise is a JSON API consumed by a
// SPA: the router applies CORS for the frontend origin, mounts the public
// auth routes, and puts everything else behind the bearer middleware.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.TrackwiseMongoDatabase

	// The bearer middleware fetches a fresh user record on each request
	// so profile updates and deletions take effect immediately.
	users := userstore.New(db)
	authMgr := auth.NewManager(appCfg.JWTSecret, func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
		return users.GetByID(ctx, id)
	}, logger)

	inviteSigner := invitetoken.NewSigner(appCfg.JWTSecret)
	actLog := activitylog.New(activitystore.New(db), logger)

	var sender mailer.Sender
	if appCfg.MailEnabled {
		sender = &mailer.SMTPSender{
			Host:     appCfg.MailSMTPHost,
			Port:     appCfg.MailSMTPPort,
			Username: appCfg.MailSMTPUser,
			Password: appCfg.MailSMTPPass,
			From:     appCfg.MailFrom,
		}
	} else {
		sender = &mailer.LogSender{Log: logger}
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{appCfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.TrackwiseMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Authentication (public routes plus /me behind the middleware)
	authHandler := authfeature.NewHandler(db, authMgr, sender, authfeature.Config{
		FrontendURL:        appCfg.FrontendURL,
		GoogleClientID:     appCfg.GoogleClientID,
		GoogleClientSecret: appCfg.GoogleClientSecret,
	}, logger)
	r.Mount("/api/auth", authfeature.Routes(authHandler, authMgr))

	// Workspaces, membership and invitations
	wsHandler := workspacesfeature.NewHandler(db, inviteSigner, actLog, sender, appCfg.FrontendURL, logger)
	r.Mount("/api/workspaces", workspacesfeature.Routes(wsHandler, authMgr))

	// Projects
	projHandler := projectsfeature.NewHandler(db, actLog, logger)
	r.Mount("/api/projects", projectsfeature.Routes(projHandler, authMgr))

	// Tasks
	taskHandler := tasksfeature.NewHandler(db, actLog, logger)
	r.Mount("/api/tasks", tasksfeature.Routes(taskHandler, authMgr))

	// Activity feeds
	actHandler := activityfeature.NewHandler(db, logger)
	r.Mount("/api/activities", activityfeature.Routes(actHandler, authMgr))

	return r, nil
}
