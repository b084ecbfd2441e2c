// Package pkgerror defines shared error types and sentinel errors used across
// the application.
//
// Handlers and usecases return *Error values carrying the message shown to the
// client and a Code; the router turns the Code into an HTTP status and the
// message into the {"error": ...} body. Anything else surfaces as a 500.
package pkgerror
