// Package server runs the HTTP server of the remote store.
//
// It handles startup, signal handling and graceful shutdown.
package server
