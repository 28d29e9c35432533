// Package server runs the relay's HTTP server.
//
// It owns startup, signal handling and graceful shutdown. The signal
// context is also the base context of every request, so open websocket
// bridges end when the relay is asked to stop.
package server
