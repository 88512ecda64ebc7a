// Package preview implements the development preview server.
//
// It serves the rendered entry page over HTTP, watches the project files
// and pushes live-reload messages to connected browsers over WebSocket.
// Prometheus render metrics are exposed on /metrics.
//
// This is a devtool: nothing in the core render or scope packages depends
// on it.
package preview
