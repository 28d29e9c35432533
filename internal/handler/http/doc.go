// Package http implements the relay's HTTP surface.
//
// It serves the browser chat page from a static directory, reports the relay
// version at /api/version/ and upgrades /ws to a websocket that is handed to
// the bridge service. Request tracing, access logging and panic recovery
// wrap every route; static files are additionally gzip-compressed.
package http
