// Package observe provides telemetry for the caching packages.
//
// The caches themselves never log; observe is the host-facing layer. It
// provides an Observer wiring OpenTelemetry tracing and metrics providers,
// a cache-event Metrics interface with OTel and no-op implementations, and
// a structured JSON logger.
package observe
