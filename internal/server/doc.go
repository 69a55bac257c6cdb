// Package server runs the mobile side: the HTTP server and its background
// workers, with graceful shutdown on SIGTERM, SIGINT and SIGQUIT.
package server
