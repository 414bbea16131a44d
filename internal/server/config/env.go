package config

import (
	"os"
	"strings"
	"time"
)

// parseEnv overlays Config fields from environment variables. A .env file, if
// present, is loaded into the environment by the entry point before this
// runs.
//
// Recognized variables:
//
//	ADDRESS              HTTP bind address (e.g. ":3000")
//	DATABASE_DSN         PostgreSQL DSN
//	JWT_SECRET           HMAC secret for session tokens
//	JWT_EXPIRY_TIME      token validity as a Go duration string (e.g. "24h")
//	CORS_ALLOWED_ORIGINS comma-separated list of allowed origins
//
// An unparseable JWT_EXPIRY_TIME is ignored and the previous value is kept;
// a broken secret or DSN will surface later as a startup or signing error.
func parseEnv(config *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddrHTTP = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("JWT_EXPIRY_TIME"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		config.CORSAllowedOrigins = origins
	}
}
