// Path: internal/config/constants.go
package config

import "time"

const (
	// Server configuration defaults
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultClientTimeout   = 30 * time.Second
)

const (
	DefaultConfigFile        = "config/.env"
	DefaultAPIHost           = "127.0.0.1"
	DefaultPort              = 5000
	DefaultDescriptorPattern = "*.config"
	DefaultVersionField      = "FileVersion"
	DefaultLogFile           = "app.log"
)
