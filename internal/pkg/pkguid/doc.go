// Package pkguid provides helpers for generating unique identifiers.
//
// UUIDv7 strings tag HTTP requests (correlation IDs) and Snowflake numbers tag
// each file processing run in the logs.
package pkguid
