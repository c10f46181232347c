package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// AllowedOrigins is a comma separated list of CORS origins.
	AllowedOrigins string `mapstructure:"allowed_origins" default:"*"`
	// BodyLimitMB caps the size of uploaded workbooks.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"16"`
}

// Origins returns the trimmed, non-empty CORS origins, defaulting to "*".
func (c Config) Origins() string {
	parts := strings.Split(c.AllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return "*"
	}
	return strings.Join(out, ",")
}

// BodyLimit returns the upload limit in bytes.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 16 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}
