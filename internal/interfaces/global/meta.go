// Package global
package global

import "flag"

var (
	DebugMode      = flag.Bool("debug", false, "Enable debug mode")
	ConfigFilePath = flag.String("config", "./config.json", "Path to configuration file")
	EnvFilePath    = flag.String("env", ".env", "Path to environment file")
)

const (
	AppVersion    = "1.0.2"
	ConfigVersion = "1.0.0"

	DefaultFilePermissions     = 0644
	DefaultDirectoryPermission = 0755

	SessionTokenLength = 48

	EnvDatabaseUrl   = "DATABASE_URL"
	EnvSessionSecret = "SESSION_SECRET"
	EnvHttpPort      = "PORT"
)
