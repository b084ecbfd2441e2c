// Package pkgconfig provides a small abstraction for reading configuration values.
//
// Modules depend on the Config interface; the Viper implementation reads a YAML
// file and lets environment variables override individual keys.
package pkgconfig
