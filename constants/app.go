package constants

// Environment variables read by config.AppConfig.
const (
	EnvGoEnv   = "GO_ENV"
	EnvLogMode = "LOG_MODE"
)

// CLI defaults for cmd/brevetcli.
const (
	DefaultSkipTrim = false
)
