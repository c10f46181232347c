// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration structure: listen port, API key, CORS origins and upload size limit.
package server
