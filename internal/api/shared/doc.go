// Package shared holds the request and response helpers used by the HTTP
// handlers and middleware: JSON encoding of bodies and errors, request
// decoding and validation, and the per-request trace ID.
package shared
