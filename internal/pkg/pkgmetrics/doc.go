// Package pkgmetrics exposes Prometheus instrumentation for the HTTP layer and
// the tabular file pipeline.
package pkgmetrics
