package types

// RunMode is the deployment mode of the application
type RunMode string

const (
	// ModeLocal runs the API server with local developer defaults
	ModeLocal RunMode = "local"
	// ModeAPI runs only the API server
	ModeAPI RunMode = "api"
)

// LogLevel is the level of logging
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// AuthProvider is the authentication provider backing token validation
type AuthProvider string

const (
	AuthProviderSupabase AuthProvider = "supabase"
)
