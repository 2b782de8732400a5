package logger

// Log format and level strings accepted by ParseConfig
const (
	LogFormatJSON   = "json"
	LogFormatText   = "text"
	LogLevelWarning = "warning"
)

// Defaults for records with no service or version configured
const (
	DefaultServiceName = "greenlegacy"
	DefaultVersion     = "dev"
	EnvironmentDev     = "dev"
)

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
