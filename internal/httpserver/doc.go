// Package httpserver provides the demo's HTTP server: a Start/Stop
// lifecycle around http.Server, JSON response envelopes, health checks and
// the recovery, request ID and request logging middleware.
package httpserver
