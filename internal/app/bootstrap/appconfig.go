// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, CORS); AppConfig is everything specific to this service:
// database connection details, the admin token secret, and feature
// flags like demo-data seeding.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Admin API authentication
	AuthJWTSecret string // HMAC secret shared with the auth service that issues admin tokens

	// Demo data
	SeedDemoData bool // Load demo programs into an empty database on startup
}
