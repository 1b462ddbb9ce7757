// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging level); AppConfig is
// everything specific to Trackwise.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// JWT signing secret for access tokens, invite tokens, and the
	// email verification / password reset flows.
	JWTSecret string

	// Email/SMTP configuration
	MailSMTPHost string // SMTP server host (e.g., localhost for Mailpit)
	MailSMTPPort int    // SMTP server port (e.g., 1025 for Mailpit, 587 for SES)
	MailSMTPUser string // SMTP username
	MailSMTPPass string // SMTP password
	MailFrom     string // From email address (e.g., noreply@trackwise.app)
	MailEnabled  bool   // When false, emails are logged instead of sent

	// FrontendURL is the SPA origin used both for CORS and for building
	// the links embedded in emails (invites, verification, reset).
	FrontendURL string

	// Google OAuth configuration
	GoogleClientID     string
	GoogleClientSecret string
}
