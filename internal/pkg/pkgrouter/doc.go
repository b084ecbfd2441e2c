// Package pkgrouter wraps HTTP routing and common middleware used by the API.
//
// It provides a small router abstraction over httprouter plus shared concerns
// like JSON and attachment encoding, error mapping, logging, recovery, rate
// limiting, body size limits and correlation ID propagation.
package pkgrouter
