// Package pkgfile holds helpers for turning client-supplied file names into
// names that are safe to use as on-disk storage keys.
package pkgfile
