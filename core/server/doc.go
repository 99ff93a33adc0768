// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration structure: the HTTP port, the optional API key and the request
// body limit (prefab documents can be large).
package server
