package types

// RunMode is the mode in which the service runs
type RunMode string

const (
	ModeLocal RunMode = "local"
	ModeProd  RunMode = "prod"
)

// LogLevel is the level of logging
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// AuthProvider identifies the staff authentication backend
type AuthProvider string

const (
	AuthProviderHirestream AuthProvider = "hirestream"
)
