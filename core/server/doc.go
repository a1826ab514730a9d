// Package server holds the HTTP server configuration.
//
// It is deliberately tiny: the Fiber application itself is assembled in
// the start command, and this package only carries the settings it needs
// (listen port and the API key the auth middleware enforces).
package server
