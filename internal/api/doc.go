// Package api exposes the task service over HTTP. Handlers translate
// requests into TaskService calls and map results and errors to status codes
// and JSON bodies.
package api
